package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Cell is emitted verbatim. Width is the number of terminal cells Text
// occupies and is what padding is computed from, so Text may carry escapes.
type Cell struct {
	Text  string
	Width int
}

func NewCell(text string) Cell {
	return Cell{Text: text, Width: ansi.StringWidth(text)}
}

// StyledCell decorates plain with style and keeps the width of plain.
func StyledCell(plain string, style func(string) string) Cell {
	if style == nil {
		return NewCell(plain)
	}
	return Cell{Text: style(plain), Width: ansi.StringWidth(plain)}
}

type TableStyles struct {
	Border func(string) string
	Header func(string) string
}

type Table struct {
	headers []Cell
	rows    [][]Cell
	styles  TableStyles
}

type borderGlyphs struct {
	left, fill, mid, right string
}

var (
	topBorder    = borderGlyphs{left: "╭", fill: "─", mid: "┬", right: "╮"}
	headBorder   = borderGlyphs{left: "├", fill: "─", mid: "┼", right: "┤"}
	dottedBorder = borderGlyphs{left: "├", fill: "╌", mid: "┼", right: "┤"}
	bottomBorder = borderGlyphs{left: "╰", fill: "─", mid: "┴", right: "╯"}
)

const columnSeparator = "│"

func NewTable(styles TableStyles, headers ...string) *Table {
	cells := make([]Cell, len(headers))
	for i, h := range headers {
		cells[i] = StyledCell(h, styles.Header)
	}
	return &Table{headers: cells, styles: styles}
}

func (t *Table) AddRow(cells ...Cell) {
	row := make([]Cell, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *Table) Render() string {
	widths := t.columnWidths()
	var b strings.Builder

	t.writeBorder(&b, widths, topBorder)
	t.writeRow(&b, t.headers, widths)
	t.writeBorder(&b, widths, headBorder)
	for i, row := range t.rows {
		t.writeRow(&b, row, widths)
		if i < len(t.rows)-1 {
			t.writeBorder(&b, widths, dottedBorder)
		}
	}
	t.writeBorder(&b, widths, bottomBorder)

	return b.String()
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = h.Width
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && cell.Width > widths[i] {
				widths[i] = cell.Width
			}
		}
	}
	return widths
}

func (t *Table) writeBorder(b *strings.Builder, widths []int, g borderGlyphs) {
	segments := make([]string, len(widths))
	for i, w := range widths {
		segments[i] = strings.Repeat(g.fill, w+2)
	}
	b.WriteString(t.border(g.left + strings.Join(segments, g.mid) + g.right))
	b.WriteString("\n")
}

func (t *Table) writeRow(b *strings.Builder, cells []Cell, widths []int) {
	sep := t.border(columnSeparator)
	b.WriteString(sep)
	for i, w := range widths {
		var cell Cell
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(" ")
		b.WriteString(cell.Text)
		b.WriteString(strings.Repeat(" ", max(w-cell.Width, 0)))
		b.WriteString(" ")
		b.WriteString(sep)
	}
	b.WriteString("\n")
}

func (t *Table) border(s string) string {
	if t.styles.Border == nil {
		return s
	}
	return t.styles.Border(s)
}
