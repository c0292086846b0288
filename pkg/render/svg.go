package render

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
)

// SVGOptions configures the board snapshot export.
type SVGOptions struct {
	CellSize   int    // Pixel size of one grid cell
	Margin     int    // Canvas margin in pixels
	Title      string // Optional title drawn above the grid
	ShowDomain bool   // Draw each hidden cell's remaining domain
}

// DefaultSVGOptions returns sensible defaults for a 5x5 grid.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:   80,
		Margin:     40,
		Title:      "Board",
		ShowDomain: true,
	}
}

// ExportSVG renders b as a 5x5 grid: revealed cells show their value,
// forced cells show their deduced value in a distinct color, hidden
// cells optionally show their remaining domain.
func ExportSVG(b *board.Board, opts SVGOptions) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("render: board is nil")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 80
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	gridSize := 5 * opts.CellSize
	width := gridSize + 2*opts.Margin
	height := gridSize + 2*opts.Margin + 40

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(width/2, 25, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	originY := opts.Margin + 40
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			cell := b.Cell(board.Coord{Row: r, Col: c})
			x := opts.Margin + c*opts.CellSize
			y := originY + r*opts.CellSize
			drawCell(canvas, cell, x, y, opts)
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

func drawCell(canvas *svg.SVG, cell *board.Cell, x, y int, opts SVGOptions) {
	fill := cellFill(cell)
	canvas.Rect(x, y, opts.CellSize, opts.CellSize,
		fmt.Sprintf("fill:%s;stroke:#4a5568;stroke-width:1", fill))

	cx := x + opts.CellSize/2
	cy := y + opts.CellSize/2

	if v, ok := cell.Value(); ok {
		canvas.Text(cx, cy+6, fmt.Sprintf("%d", v),
			"text-anchor:middle;font-size:28px;font-weight:bold;fill:#1a1a2e;font-family:sans-serif")
		return
	}

	if opts.ShowDomain {
		canvas.Text(cx, cy+5, cell.Domain.String(),
			"text-anchor:middle;font-size:13px;fill:#e2e8f0;font-family:monospace")
	}
}

func cellFill(cell *board.Cell) string {
	switch {
	case cell.Hazard():
		return "#f56565"
	case cell.Forced():
		return "#48bb78"
	case cell.Revealed():
		return "#ecc94b"
	case cell.Safe():
		return "#2d3748"
	default:
		return "#4a5568"
	}
}
