package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DeadToken marks a dead cell in the text format
	DeadToken = "."
	// AliveToken marks a live cell in the text format
	AliveToken = "O"
)

// CommentPrefix starts a line ParseGrid ignores
const CommentPrefix = "#"

// ParseGrid reads a grid written one row per line with whitespace separated
// "." and "O" tokens. Blank lines and lines starting with "#" are skipped;
// every other line must hold the same number of tokens as the first.
func ParseGrid(r io.Reader) (*Grid, error) {
	var (
		rows    [][]bool
		lineNum int
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		tokens := strings.Fields(line)

		row := make([]bool, len(tokens))
		for j, tok := range tokens {
			switch tok {
			case AliveToken:
				row[j] = true
			case DeadToken:
			default:
				return nil, errors.Wrapf(ErrMalformedGrid, "[ParseGrid] line %d: unexpected token %q", lineNum, tok)
			}
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, errors.Wrapf(ErrMalformedGrid, "[ParseGrid] line %d: %d cells, expected %d",
				lineNum, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseGrid] failed to read grid")
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrMalformedGrid, "[ParseGrid] no rows")
	}

	return &Grid{
		rows:  len(rows),
		cols:  len(rows[0]),
		cells: rows,
	}, nil
}

// WriteGrid writes g in the format read by ParseGrid
func WriteGrid(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for i := range g.rows {
		for j := range g.cols {
			if j > 0 {
				bw.WriteByte(' ')
			}
			if g.cells[i][j] {
				bw.WriteString(AliveToken)
			} else {
				bw.WriteString(DeadToken)
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[WriteGrid] failed to write grid")
	}
	return nil
}

// LoadGrid parses the grid stored in filename
func LoadGrid(filename string) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] failed to open file: %+v", filename)
	}
	defer f.Close()

	g, err := ParseGrid(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] file: %+v", filename)
	}
	return g, nil
}

// LoadEngine creates an engine at generation 0 from the grid stored in filename
func LoadEngine(filename string, opts ...EngineOption) (*Engine, error) {
	g, err := LoadGrid(filename)
	if err != nil {
		return nil, err
	}
	return newEngine(g, opts), nil
}

// SaveGrid writes g to filename, replacing any existing file
func SaveGrid(filename string, g *Grid) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[SaveGrid] failed to create file: %+v", filename)
	}
	if err = WriteGrid(f, g); err != nil {
		f.Close()
		return errors.Wrapf(err, "[SaveGrid] file: %+v", filename)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "[SaveGrid] failed to close file: %+v", filename)
	}
	return nil
}
