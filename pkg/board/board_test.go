package board

import "testing"

func uniformSpecs(sum, voltorbs int) [5]LineSpec {
	var specs [5]LineSpec
	for i := range specs {
		specs[i] = LineSpec{Sum: sum, Voltorbs: voltorbs}
	}
	return specs
}

func TestNewBoardWiring(t *testing.T) {
	b := NewBoard(uniformSpecs(5, 0), uniformSpecs(5, 0))

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if b.Cells[r][c].Domain != FullMask {
				t.Errorf("cell (%d,%d) domain = %v, want FullMask", r, c, b.Cells[r][c].Domain)
			}
		}
	}

	for i := 0; i < 5; i++ {
		if b.Rows[i].Cells[0] != &b.Cells[i][0] {
			t.Errorf("row %d cell 0 does not point into the grid", i)
		}
		if b.Cols[i].Cells[0] != &b.Cells[0][i] {
			t.Errorf("col %d cell 0 does not point into the grid", i)
		}
	}
}

func TestLinesOrder(t *testing.T) {
	b := NewBoard(uniformSpecs(5, 0), uniformSpecs(5, 0))
	lines := b.Lines()
	if len(lines) != 10 {
		t.Fatalf("Lines() returned %d lines, want 10", len(lines))
	}
	for i := 0; i < 5; i++ {
		if lines[i].Kind != KindRow || lines[i].Index != i {
			t.Errorf("lines[%d] = %s, want row[%d]", i, lines[i], i)
		}
	}
	for i := 0; i < 5; i++ {
		if lines[5+i].Kind != KindCol || lines[5+i].Index != i {
			t.Errorf("lines[%d] = %s, want col[%d]", 5+i, lines[5+i], i)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	b := NewBoard(uniformSpecs(5, 0), uniformSpecs(5, 0))
	clone := b.Clone()

	clone.Cell(Coord{Row: 0, Col: 0}).Domain = SingletonMask(1)
	if b.Cell(Coord{Row: 0, Col: 0}).Domain == SingletonMask(1) {
		t.Error("mutating clone affected original board")
	}

	for i := 0; i < 5; i++ {
		if clone.Rows[i].Cells[0] != &clone.Cells[i][0] {
			t.Errorf("clone row %d does not rewire into clone's own cells", i)
		}
		if clone.Cols[i].Cells[0] != &clone.Cells[0][i] {
			t.Errorf("clone col %d does not rewire into clone's own cells", i)
		}
	}
}

func TestHiddenCells(t *testing.T) {
	b := NewBoard(uniformSpecs(5, 0), uniformSpecs(5, 0))
	b.Cell(Coord{Row: 2, Col: 2}).Domain = SingletonMask(1)

	hidden := b.HiddenCells()
	if len(hidden) != 24 {
		t.Errorf("HiddenCells() returned %d cells, want 24", len(hidden))
	}
}
