// Package table renders fixed-width, bordered text tables.
//
// The layout contract: cells are left-justified to the widest value in
// their column, separated by "| ", and the whole block is framed by
// dash borders above the heading, under the heading, and after the
// last row. Rendering the same rows twice produces identical bytes.
package table

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ShapeError reports a row whose cell count does not match the heading
// row.
type ShapeError struct {
	Row  int // 0-based data row index
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("table row %d has %d cells, heading has %d", e.Row, e.Got, e.Want)
}

// Table lays out a heading row plus data rows as aligned, bordered
// text. The heading row occupies index 0 of the layout.
type Table struct {
	ncols int
	data  [][]any
}

// New builds a table, failing before any rendering if a row's arity
// differs from the headings.
func New(headings []string, rows [][]any) (*Table, error) {
	head := make([]any, len(headings))
	for i, h := range headings {
		head[i] = h
	}
	data := make([][]any, 0, len(rows)+1)
	data = append(data, head)
	for i, row := range rows {
		if len(row) != len(headings) {
			return nil, &ShapeError{Row: i, Want: len(headings), Got: len(row)}
		}
		data = append(data, row)
	}
	return &Table{ncols: len(headings), data: data}, nil
}

// Render returns the table as plain text with no trailing newline.
func (t *Table) Render() string {
	return strings.Join(t.lines(), "\n")
}

// Fprint writes the rendered table and a trailing newline to w.
func (t *Table) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("print table: %w", err)
	}
	return nil
}

// WriteFile writes the rendered table to path. Append mode separates
// the table from existing content with a blank line; otherwise the
// file is truncated.
func (t *Table) WriteFile(path string, appendTo bool) error {
	flags := os.O_CREATE | os.O_WRONLY
	prefix := ""
	if appendTo {
		flags |= os.O_APPEND
		prefix = "\n"
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(prefix + t.Render() + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// lines renders every row and inserts the dash borders.
func (t *Table) lines() []string {
	widths := t.columnWidths()
	rows := make([]string, 0, len(t.data))
	for _, row := range t.data {
		rows = append(rows, t.formatRow(row, widths))
	}
	border := strings.Repeat("-", runewidth.StringWidth(rows[0]))
	out := make([]string, 0, len(rows)+3)
	out = append(out, border, rows[0], border)
	out = append(out, rows[1:]...)
	return append(out, border)
}

// columnWidths computes the widest stringified cell per column, heading
// row included.
func (t *Table) columnWidths() []int {
	widths := make([]int, t.ncols)
	for _, row := range t.data {
		for i, cell := range row {
			if w := runewidth.StringWidth(cellText(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (t *Table) formatRow(row []any, widths []int) string {
	var sb strings.Builder
	sb.WriteString("| ")
	for i, cell := range row {
		sb.WriteString(runewidth.FillRight(cellText(cell), widths[i]))
		sb.WriteString(" | ")
	}
	return strings.TrimRight(sb.String(), " ")
}

// cellText stringifies a cell value. Stringer values (including JSON
// tree nodes) render through their String method, so numbers keep
// their source text and series render as compact JSON.
func cellText(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
