package model

import "fmt"

// BoardSize is the only grid size the engine is exercised with.
const BoardSize = 8

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceKind string

const (
	Pawn   PieceKind = "pawn"
	Rook   PieceKind = "rook"
	Knight PieceKind = "knight"
	Bishop PieceKind = "bishop"
	Queen  PieceKind = "queen"
	King   PieceKind = "king"
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the square in algebraic notation, e.g. {6,4} -> "e2".
func (p Position) String() string {
	return fmt.Sprintf("%c%d", p.Col+'a', BoardSize-p.Row)
}

// Board tracks piece placement, the side to move, and an append-only
// move log. It enforces occupancy and turn order only: whether a given
// kind of piece may geometrically make a move is not checked anywhere.
type Board struct {
	Size        int          `json:"size"`
	Grid        [][]*Piece   `json:"grid"`
	ToMove      Color        `json:"toMove"`
	MoveHistory []MoveRecord `json:"moveHistory"`
}

var backRank = []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns a board with the standard opening position, white
// on rows 6 and 7, black on rows 0 and 1, and white to move.
func NewBoard() *Board {
	b := &Board{
		Size:        BoardSize,
		ToMove:      White,
		MoveHistory: make([]MoveRecord, 0),
	}
	b.Grid = make([][]*Piece, b.Size)
	for row := range b.Grid {
		b.Grid[row] = make([]*Piece, b.Size)
	}
	for col, kind := range backRank {
		b.Grid[0][col] = NewPiece(kind, Black, 0, col)
		b.Grid[b.Size-1][col] = NewPiece(kind, White, b.Size-1, col)
	}
	for col := 0; col < b.Size; col++ {
		b.Grid[1][col] = NewPiece(Pawn, Black, 1, col)
		b.Grid[b.Size-2][col] = NewPiece(Pawn, White, b.Size-2, col)
	}
	return b
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.Size && col >= 0 && col < b.Size
}

// PieceAt returns the piece occupying (row, col), or nil for an empty
// square.
func (b *Board) PieceAt(row, col int) *Piece {
	return b.Grid[row][col]
}

// IsValidMove reports whether piece may be placed on (toRow, toCol):
// the target must be on the board and not hold a piece of the same
// color. Nothing more: no move shapes, no path blocking, no check
// detection.
func (b *Board) IsValidMove(piece *Piece, toRow, toCol int) bool {
	if !b.inBounds(toRow, toCol) {
		return false
	}
	if dest := b.Grid[toRow][toCol]; dest != nil && dest.Color == piece.Color {
		return false
	}
	return true
}

// MovePiece relocates the piece on the source square to the
// destination for the side to move. It returns false without touching
// any state when the source square is empty, the piece belongs to the
// side not on move, or the destination fails IsValidMove. On success
// the occupant of the destination, if any, is detached from the grid
// and retained by the appended MoveRecord, the mover's position and
// HasMoved are updated, and the turn flips.
func (b *Board) MovePiece(fromRow, fromCol, toRow, toCol int) bool {
	piece := b.Grid[fromRow][fromCol]
	if piece == nil {
		return false
	}
	if piece.Color != b.ToMove {
		return false
	}
	if !b.IsValidMove(piece, toRow, toCol) {
		return false
	}

	captured := b.Grid[toRow][toCol]
	b.MoveHistory = append(b.MoveHistory, MoveRecord{
		Piece:    piece,
		From:     Position{Row: fromRow, Col: fromCol},
		To:       Position{Row: toRow, Col: toCol},
		Captured: captured,
	})

	b.Grid[toRow][toCol] = piece
	b.Grid[fromRow][fromCol] = nil
	piece.Position = Position{Row: toRow, Col: toCol}
	piece.HasMoved = true

	b.ToMove = b.ToMove.Opposite()
	return true
}
