package pathio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/floydwarshall"
)

// ErrNilResult indicates a nil result passed to a writer.
var ErrNilResult = errors.New("pathio: result is nil")

// WriteSingleSource writes a Bellman-Ford or Dijkstra result: the vertex
// count, then "vertex distance predecessor" for vertices 1..n. Unreached
// vertices print core.Infinity and core.None.
func WriteSingleSource(w io.Writer, res *core.Result) error {
	if res == nil {
		return ErrNilResult
	}
	bw := bufio.NewWriter(w)
	n := res.Order()

	var buf []byte
	buf = strconv.AppendInt(buf, int64(n), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for v := 1; v <= n; v++ {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, res.Dist[v], 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(res.Prev[v]), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteAllPairs writes a Floyd-Warshall matrix: the vertex count, then one
// row of space-separated distances per vertex.
func WriteAllPairs(w io.Writer, m *floydwarshall.Matrix) error {
	if m == nil {
		return ErrNilResult
	}
	bw := bufio.NewWriter(w)
	n := m.Order()

	var buf []byte
	buf = strconv.AppendInt(buf, int64(n), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		buf = buf[:0]
		for j, d := range row {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, d, 10)
		}
		buf = append(buf, '\n')
		if _, err = bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path, hands it to fn, and returns the
// number of bytes written. The file is removed if fn fails.
func WriteFile(path string, fn func(io.Writer) error) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("pathio: create output: %w", err)
	}

	cw := &countingWriter{w: f}
	if err = fn(cw); err != nil {
		f.Close()
		os.Remove(path)

		return cw.n, fmt.Errorf("pathio: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return cw.n, fmt.Errorf("pathio: close %s: %w", path, err)
	}

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
