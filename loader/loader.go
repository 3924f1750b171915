package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vf2iso/graph"
)

// ErrMalformedLine reports a line that does not parse as a "t", "v", or
// "e" record, or that has the wrong number of fields, or a vertex id that
// arrives out of sequence.
var ErrMalformedLine = errors.New("loader: malformed line")

// ErrVertexOutOfRange is graph's own out-of-range sentinel, re-exported so
// callers checking loader errors never need to import package graph just
// to call errors.Is.
var ErrVertexOutOfRange = graph.ErrVertexOutOfRange

// LoadGraphs reads every graph out of r and returns them in file order. r
// is read to EOF; the caller decides which file(s) to concatenate or feed
// in sequence, unlike the original reader this format descends from, which
// baked a multi-file count budget into the read loop itself.
func LoadGraphs(r io.Reader) ([]*graph.Graph, error) {
	var (
		graphs []*graph.Graph
		b      *graph.Builder
		nVerts int
		opened bool
	)

	flush := func(lineNo int) error {
		if !opened {
			return nil
		}
		g, err := b.Build()
		if err != nil {
			return fmt.Errorf("loader: line %d: %w", lineNo, err)
		}
		graphs = append(graphs, g)
		return nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "t":
			if err := flush(lineNo); err != nil {
				return nil, err
			}
			b = graph.NewBuilder()
			nVerts = 0
			opened = true

		case "v":
			if !opened {
				return nil, fmt.Errorf("%w: line %d: vertex record before any \"t\" header", ErrMalformedLine, lineNo)
			}
			vid, label, err := parseTwoInts(fields)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %s", ErrMalformedLine, lineNo, err)
			}
			if vid != nVerts {
				return nil, fmt.Errorf("%w: line %d: vertex id %d out of sequence, expected %d", ErrMalformedLine, lineNo, vid, nVerts)
			}
			b.AddVertex(label)
			nVerts++

		case "e":
			if !opened {
				return nil, fmt.Errorf("%w: line %d: edge record before any \"t\" header", ErrMalformedLine, lineNo)
			}
			u, v, label, err := parseThreeInts(fields)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %s", ErrMalformedLine, lineNo, err)
			}
			b.AddEdge(u, v, label)

		default:
			return nil, fmt.Errorf("%w: line %d: unrecognized record %q", ErrMalformedLine, lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// No flush at EOF: a graph is only closed by the *next* "t" line, so a
	// stream missing its trailing sentinel "t" record silently drops the
	// graph it was still accumulating. This matches readGraph in the
	// original engine, which never flushes on end-of-input either.
	return graphs, nil
}

// parseTwoInts parses a "v <a> <b>" record's trailing pair of integers.
func parseTwoInts(fields []string) (a, b int, err error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("want 3 fields, got %d", len(fields))
	}
	if a, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, err
	}
	if b, err = strconv.Atoi(fields[2]); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// parseThreeInts parses an "e <a> <b> <c>" record's trailing integer triple.
func parseThreeInts(fields []string) (a, b, c int, err error) {
	if len(fields) != 4 {
		return 0, 0, 0, fmt.Errorf("want 4 fields, got %d", len(fields))
	}
	if a, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, err
	}
	if b, err = strconv.Atoi(fields[2]); err != nil {
		return 0, 0, 0, err
	}
	if c, err = strconv.Atoi(fields[3]); err != nil {
		return 0, 0, 0, err
	}
	return a, b, c, nil
}
