// Package cli wires the match engine into a small command-line front end:
// vf2iso match for a single query against a single data graph, and vf2iso
// batch for a query directory run against every graph in a data file, in
// the spirit of the original reader's "time every query file against one
// database" driver loop. Neither command persists any state between runs.
package cli
