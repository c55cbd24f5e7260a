package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table formatting constants.
const (
	tablePadding   = 2
	minColumnWidth = 4
	ellipsis       = "…"
)

// Table renders rows of plain cells as aligned columns that fit a terminal
// width. The last column absorbs any truncation.
type Table struct {
	styles  *Styles
	width   int
	headers []string
	rows    [][]string
	dimmed  []bool
}

// NewTable creates a table limited to width columns.
func NewTable(styles *Styles, width int, headers ...string) *Table {
	if width <= 0 {
		width = defaultTermWidth
	}
	return &Table{styles: styles, width: width, headers: headers}
}

// AddRow appends a row. A dimmed row is rendered with TableDisabled.
func (t *Table) AddRow(dimmed bool, cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
	t.dimmed = append(t.dimmed, dimmed)
}

// Render returns the formatted table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := t.columnWidths()

	var builder strings.Builder
	header := make([]string, len(t.headers))
	for i, h := range t.headers {
		header[i] = t.styles.TableHeader.Render(pad(h, widths[i]))
	}
	builder.WriteString(strings.TrimRight(strings.Join(header, strings.Repeat(" ", tablePadding)), " "))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat("-", t.totalWidth(widths))))
	builder.WriteString("\n")

	for r, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(truncate(cell, widths[i]), widths[i])
		}
		line := strings.TrimRight(strings.Join(cells, strings.Repeat(" ", tablePadding)), " ")
		if t.dimmed[r] {
			line = t.styles.TableDisabled.Render(line)
		}
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	return builder.String()
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	last := len(widths) - 1
	if overflow := t.totalWidth(widths) - t.width; overflow > 0 {
		widths[last] = max(minColumnWidth, widths[last]-overflow)
	}
	return widths
}

func (t *Table) totalWidth(widths []int) int {
	total := tablePadding * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return total
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+lipgloss.Width(ellipsis) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
