package model

import "errors"

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrOutOfBounds   = errors.New("coordinates out of bounds")
	ErrGameFull      = errors.New("game is full")
	ErrNotAuthorized = errors.New("not authorized to join this game")
	ErrAlreadyQueued = errors.New("player already in queue")
)
