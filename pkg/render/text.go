package render

import (
	"strconv"
	"strings"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
)

// RenderText dumps b as a plain-text grid for terminal debugging.
// Each cell renders as its value if singleton, or its domain
// otherwise; row and column targets are printed alongside the grid.
func RenderText(b *board.Board) string {
	var sb strings.Builder

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			cell := b.Cell(board.Coord{Row: r, Col: c})
			if v, ok := cell.Value(); ok {
				sb.WriteString(padCenter(strconv.Itoa(v), 10))
			} else {
				sb.WriteString(padCenter(cell.Domain.String(), 10))
			}
		}
		row := b.Rows[r]
		sb.WriteString("  | sum=")
		sb.WriteString(strconv.Itoa(row.SumTarget))
		sb.WriteString(" zeros=")
		sb.WriteString(strconv.Itoa(row.ZeroTarget))
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat("-", 5*10))
	sb.WriteString("\n")
	for c := 0; c < 5; c++ {
		col := b.Cols[c]
		sb.WriteString(padCenter("s"+strconv.Itoa(col.SumTarget)+"/z"+strconv.Itoa(col.ZeroTarget), 10))
	}
	sb.WriteString("\n")

	return sb.String()
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
