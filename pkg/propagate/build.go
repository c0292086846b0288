package propagate

import (
	"fmt"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
)

// Build initializes a Board from a Request: unrevealed cells start at
// FullMask, revealed cells collapse to a singleton domain marked
// Given. Build assumes the Request already passed validate.Validate;
// it still refuses an internally inconsistent revealed list rather
// than silently building a bad board.
func Build(req *board.Request) (*board.Board, error) {
	b := board.NewBoard(req.Rows, req.Cols)

	for _, rc := range req.Revealed {
		if rc.Value < 0 || rc.Value > 3 {
			return nil, fmt.Errorf("propagate: build: revealed value %d out of range at %v", rc.Value, rc.Position)
		}
		cell := b.Cell(rc.Position)
		cell.Domain = board.SingletonMask(rc.Value)
		cell.Given = true
	}

	return b, nil
}
