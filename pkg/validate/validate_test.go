package validate

import (
	"testing"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
)

func uniformSpecs(sum, voltorbs int) [5]board.LineSpec {
	var specs [5]board.LineSpec
	for i := range specs {
		specs[i] = board.LineSpec{Sum: sum, Voltorbs: voltorbs}
	}
	return specs
}

func validRequest() *board.Request {
	return &board.Request{
		Mode: board.ModeLevel,
		Rows: uniformSpecs(5, 0),
		Cols: uniformSpecs(5, 0),
	}
}

func TestValidateAcceptsWellFormedRequest(t *testing.T) {
	if err := Validate(validRequest()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBadRange(t *testing.T) {
	req := validRequest()
	req.Rows[0] = board.LineSpec{Sum: 20, Voltorbs: 0}

	err := Validate(req)
	if err == nil {
		t.Fatal("Validate() = nil, want BadRange error")
	}
	vErr, ok := err.(*Error)
	if !ok || vErr.Kind != BadRange {
		t.Errorf("Validate() error = %v, want BadRange", err)
	}
}

func TestValidateRejectsBadTotals(t *testing.T) {
	req := validRequest()
	req.Cols[0] = board.LineSpec{Sum: 6, Voltorbs: 0}
	req.Cols[1] = board.LineSpec{Sum: 6, Voltorbs: 0}

	err := Validate(req)
	if err == nil {
		t.Fatal("Validate() = nil, want BadTotals error")
	}
	vErr, ok := err.(*Error)
	if !ok || vErr.Kind != BadTotals {
		t.Errorf("Validate() error = %v, want BadTotals", err)
	}
}

func TestValidateRejectsOutOfBoundsReveal(t *testing.T) {
	req := validRequest()
	req.Revealed = []board.RevealedCell{{Position: board.Coord{Row: 5, Col: 0}, Value: 1}}

	err := Validate(req)
	if err == nil {
		t.Fatal("Validate() = nil, want OutOfBounds error")
	}
	vErr, ok := err.(*Error)
	if !ok || vErr.Kind != OutOfBounds {
		t.Errorf("Validate() error = %v, want OutOfBounds", err)
	}
}

func TestValidateRejectsBadRevealValue(t *testing.T) {
	req := validRequest()
	req.Revealed = []board.RevealedCell{{Position: board.Coord{Row: 0, Col: 0}, Value: 9}}

	err := Validate(req)
	if err == nil {
		t.Fatal("Validate() = nil, want BadReveal error")
	}
	vErr, ok := err.(*Error)
	if !ok || vErr.Kind != BadReveal {
		t.Errorf("Validate() error = %v, want BadReveal", err)
	}
}

func TestValidateRejectsDuplicateReveal(t *testing.T) {
	req := validRequest()
	req.Revealed = []board.RevealedCell{
		{Position: board.Coord{Row: 0, Col: 0}, Value: 1},
		{Position: board.Coord{Row: 0, Col: 0}, Value: 2},
	}

	err := Validate(req)
	if err == nil {
		t.Fatal("Validate() = nil, want BadReveal error")
	}
	vErr, ok := err.(*Error)
	if !ok || vErr.Kind != BadReveal {
		t.Errorf("Validate() error = %v, want BadReveal", err)
	}
}

func TestValidateRejectsNilRequest(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Fatal("Validate(nil) = nil, want BadShape error")
	}
}
