package model

// MoveRecord is one entry of the board's move log. It holds live
// references: Piece reflects the piece's state after any later moves,
// and Captured keeps a taken piece alive after it leaves the grid.
// Records are never mutated or removed once appended.
type MoveRecord struct {
	Piece    *Piece   `json:"piece"`
	From     Position `json:"from"`
	To       Position `json:"to"`
	Captured *Piece   `json:"capturedPiece"`
}

// WSMove is the move command as it arrives over the wire.
type WSMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}
