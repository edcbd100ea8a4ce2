// Package pathio reads shortest-path problems from, and writes engine results
// to, the plain-text integer formats used by the lvlpath command.
//
// Input (whitespace/newline separated integers):
//
//	<numVertices>
//	<sourceVertex>
//	<numEdges>
//	<src> <dst> <cost>     (numEdges lines)
//
// Vertices are numbered 1..numVertices; vertex 0 is allocated but unused.
// Tokens after the last edge are ignored.
//
// Single-source output (Bellman-Ford, Dijkstra):
//
//	<numVertices>
//	<vertex> <distance> <predecessor>     (one line per vertex 1..n)
//
// All-pairs output (Floyd-Warshall):
//
//	<numVertices>
//	<n space-separated distances>         (n rows)
package pathio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvlpath/core"
)

// MaxVertices bounds the declared vertex count. Floyd-Warshall allocates n²
// distances, so anything past this is rejected as malformed.
const MaxVertices = 1 << 16

// Sentinel errors returned by the reader.
var (
	// ErrTruncatedInput indicates the stream ended before a required field.
	ErrTruncatedInput = errors.New("pathio: unexpected end of input")

	// ErrMalformedInput indicates a token that is not a valid integer for its field.
	ErrMalformedInput = errors.New("pathio: malformed input")

	// ErrSourceOutOfRange indicates a source vertex outside 1..numVertices.
	ErrSourceOutOfRange = errors.New("pathio: source vertex out of range")
)

// Problem is one parsed input file.
type Problem struct {
	NumVertices int
	Source      int
	NumEdges    int
	Graph       *core.Graph
}

// ReadProblemFile opens path and parses it with ReadProblem.
func ReadProblemFile(path string, opts ...core.Option) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pathio: open input: %w", err)
	}
	defer f.Close()

	p, err := ReadProblem(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// ReadProblem parses the input format from r and builds a frozen graph.
// opts are passed to core.NewBuilder (for example core.WithLookup).
//
// Errors are wrapped with the field being read, e.g. "edge 3 destination".
// Edge endpoint errors keep their core type (*core.InvalidEdgeError).
func ReadProblem(r io.Reader, opts ...core.Option) (*Problem, error) {
	tr := newTokenReader(r)

	// 1) Header.
	n, err := tr.readInt("vertex count")
	if err != nil {
		return nil, err
	}
	if n < 1 || n > MaxVertices {
		return nil, fmt.Errorf("%w: vertex count %d not in 1..%d", ErrMalformedInput, n, MaxVertices)
	}
	source, err := tr.readInt("source vertex")
	if err != nil {
		return nil, err
	}
	if source < 1 || source > n {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrSourceOutOfRange, source, n)
	}
	m, err := tr.readInt("edge count")
	if err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: edge count %d", ErrMalformedInput, m)
	}

	// 2) Vertices 0..n.
	b := core.NewBuilder(opts...)
	if err = b.AddVertexRange(core.Reserved, n); err != nil {
		return nil, err
	}

	// 3) Edges.
	var src, dst int
	var cost int64
	for i := 1; i <= m; i++ {
		if src, err = tr.readInt(fmt.Sprintf("edge %d source", i)); err != nil {
			return nil, err
		}
		if dst, err = tr.readInt(fmt.Sprintf("edge %d destination", i)); err != nil {
			return nil, err
		}
		if cost, err = tr.readInt64(fmt.Sprintf("edge %d cost", i)); err != nil {
			return nil, err
		}
		if err = b.AddEdge(src, dst, cost); err != nil {
			return nil, fmt.Errorf("pathio: edge %d: %w", i, err)
		}
	}

	return &Problem{
		NumVertices: n,
		Source:      source,
		NumEdges:    m,
		Graph:       b.Build(),
	}, nil
}

// tokenReader yields whitespace-separated tokens.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

func (tr *tokenReader) next(field string) (string, error) {
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return "", fmt.Errorf("pathio: reading %s: %w", field, err)
		}

		return "", fmt.Errorf("%w: missing %s", ErrTruncatedInput, field)
	}

	return tr.sc.Text(), nil
}

func (tr *tokenReader) readInt64(field string) (int64, error) {
	tok, err := tr.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrMalformedInput, field, tok)
	}

	return v, nil
}

func (tr *tokenReader) readInt(field string) (int, error) {
	tok, err := tr.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrMalformedInput, field, tok)
	}

	return v, nil
}
