package propagate

import "github.com/kaelstrom/voltorb-oracle/pkg/board"

// ExtractDeductions classifies every cell in a post-propagation board
// (spec 4.2): safe cells have a domain entirely within {1,2,3},
// hazard cells have domain exactly {0}, and forced cells are
// singleton-domain cells whose value was not given in the original
// request.
func ExtractDeductions(b *board.Board) (safe, hazard []board.Coord, forced []board.ForcedValue) {
	for _, cell := range b.AllCells() {
		if cell.Safe() {
			safe = append(safe, cell.Coord())
		}
		if cell.Hazard() {
			hazard = append(hazard, cell.Coord())
		}
		if cell.Forced() {
			v, _ := cell.Value()
			forced = append(forced, board.ForcedValue{Row: cell.Row, Col: cell.Col, Value: v})
		}
	}
	return safe, hazard, forced
}
