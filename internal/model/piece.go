package model

// Piece is created once at board setup. The board mutates its position
// and HasMoved in place as it moves; a piece leaves the grid only when
// captured.
type Piece struct {
	Kind     PieceKind `json:"kind"`
	Color    Color     `json:"color"`
	Position Position  `json:"position"`
	HasMoved bool      `json:"hasMoved"`
	Glyph    string    `json:"glyph"`
}

// glyphs maps every (color, kind) pair to its Unicode chess symbol.
var glyphs = map[Color]map[PieceKind]string{
	White: {
		Pawn:   "♙",
		Rook:   "♖",
		Knight: "♘",
		Bishop: "♗",
		Queen:  "♕",
		King:   "♔",
	},
	Black: {
		Pawn:   "♟",
		Rook:   "♜",
		Knight: "♞",
		Bishop: "♝",
		Queen:  "♛",
		King:   "♚",
	},
}

func NewPiece(kind PieceKind, color Color, row, col int) *Piece {
	return &Piece{
		Kind:     kind,
		Color:    color,
		Position: Position{Row: row, Col: col},
		Glyph:    glyphs[color][kind],
	}
}

// PossibleMoves would enumerate the squares this piece can move to.
// Move generation is not implemented; Board.MovePiece never consults
// it.
func (p *Piece) PossibleMoves(b *Board) []Position {
	return nil
}
