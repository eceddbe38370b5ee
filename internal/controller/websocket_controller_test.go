package controller

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/boardsim/chessboard-backend/internal/model"
	"github.com/boardsim/chessboard-backend/internal/ws"
)

func moveMessage(t *testing.T, move model.WSMove) ws.Message {
	t.Helper()
	payload, err := json.Marshal(move)
	if err != nil {
		t.Fatalf("marshal move: %v", err)
	}
	return ws.Message{Type: ws.MessageTypeMove, Payload: payload}
}

func TestHandleMessageAppliesMove(t *testing.T) {
	_, gameService := newTestApp()
	wsc := NewWebSocketController(gameService)

	gameID, err := gameService.CreateGame()
	if err != nil {
		t.Fatalf("create game: %v", err)
	}

	msg := moveMessage(t, model.WSMove{
		From: model.Position{Row: 6, Col: 4},
		To:   model.Position{Row: 4, Col: 4},
	})
	if err := wsc.handleMessage(gameID, "alice", msg); err != nil {
		t.Fatalf("apply move: %v", err)
	}

	state, err := gameService.GetGameState(gameID)
	if err != nil {
		t.Fatalf("fetch state: %v", err)
	}
	if state.Board.ToMove != model.Black {
		t.Fatalf("expected black to move, got %s", state.Board.ToMove)
	}
}

func TestHandleMessageSurfacesIllegalMove(t *testing.T) {
	_, gameService := newTestApp()
	wsc := NewWebSocketController(gameService)

	gameID, err := gameService.CreateGame()
	if err != nil {
		t.Fatalf("create game: %v", err)
	}

	msg := moveMessage(t, model.WSMove{
		From: model.Position{Row: 1, Col: 0},
		To:   model.Position{Row: 2, Col: 0},
	})
	if err := wsc.handleMessage(gameID, "alice", msg); !errors.Is(err, model.ErrIllegalMove) {
		t.Fatalf("out-of-turn move got %v, want ErrIllegalMove", err)
	}
}

func TestHandleMessageRejectsUnknownType(t *testing.T) {
	_, gameService := newTestApp()
	wsc := NewWebSocketController(gameService)

	err := wsc.handleMessage("any", "alice", ws.Message{Type: "resign"})
	if err == nil {
		t.Fatal("expected error for unknown message type")
	}
}
