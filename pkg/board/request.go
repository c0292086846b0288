package board

// Mode selects the active recommendation objective (spec 6.1).
type Mode string

const (
	// ModeLevel is the survival-first objective: minimize hazard
	// probability.
	ModeLevel Mode = "level"
	// ModeProfit is the reward-first objective: maximize risk-adjusted
	// expected value.
	ModeProfit Mode = "profit"
)

// LineSpec is the sum/zero-count pair the player is told about one
// row or column.
type LineSpec struct {
	Sum      int `json:"sum" yaml:"sum"`
	Voltorbs int `json:"voltorbs" yaml:"voltorbs"`
}

// RevealedCell is one already-revealed cell in the incoming request.
type RevealedCell struct {
	Position Coord `json:"position"`
	Value    int   `json:"value"`
}

// Request is the structured input to Analyze (spec 6.1). Transport
// framing (HTTP, wire JSON shape negotiation) is explicitly out of
// scope; this type is the boundary the core actually consumes.
type Request struct {
	Mode     Mode           `json:"mode"`
	Rows     [5]LineSpec    `json:"rows"`
	Cols     [5]LineSpec    `json:"cols"`
	Revealed []RevealedCell `json:"revealed"`
}
