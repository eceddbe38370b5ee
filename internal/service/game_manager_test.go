package service

import (
	"errors"
	"testing"
	"time"

	"github.com/boardsim/chessboard-backend/internal/model"
)

func TestCreateGameRejectsDuplicateID(t *testing.T) {
	gm := NewGameManager()

	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := gm.CreateGame("g1"); !errors.Is(err, ErrGameExists) {
		t.Fatalf("duplicate create got %v, want ErrGameExists", err)
	}
}

func TestLookupsOnUnknownGame(t *testing.T) {
	gm := NewGameManager()

	if _, err := gm.GetGameState("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("GetGameState got %v, want ErrGameNotFound", err)
	}
	if _, err := gm.AddPlayerToGame("missing", "alice"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("AddPlayerToGame got %v, want ErrGameNotFound", err)
	}
	move := model.WSMove{From: model.Position{Row: 6, Col: 4}, To: model.Position{Row: 4, Col: 4}}
	if err := gm.MakeMove("missing", "alice", move); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("MakeMove got %v, want ErrGameNotFound", err)
	}
}

func TestMakeMoveThroughManager(t *testing.T) {
	gm := NewGameManager()
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("create: %v", err)
	}

	move := model.WSMove{From: model.Position{Row: 6, Col: 4}, To: model.Position{Row: 4, Col: 4}}
	if err := gm.MakeMove("g1", "alice", move); err != nil {
		t.Fatalf("apply move: %v", err)
	}

	state, err := gm.GetGameState("g1")
	if err != nil {
		t.Fatalf("fetch state: %v", err)
	}
	if state.Board.ToMove != model.Black {
		t.Fatalf("expected black to move, got %s", state.Board.ToMove)
	}

	bad := model.WSMove{From: model.Position{Row: 1, Col: 0}, To: model.Position{Row: 1, Col: 1}}
	if err := gm.MakeMove("g1", "bob", bad); !errors.Is(err, model.ErrIllegalMove) {
		t.Fatalf("same-color capture got %v, want ErrIllegalMove", err)
	}
}

func TestMatchPlayersPairsTwoQueued(t *testing.T) {
	gm := NewGameManager()

	ch1 := make(chan model.MatchFoundEvent, 1)
	ch2 := make(chan model.MatchFoundEvent, 1)
	gm.RegisterMatchmakingChannel("alice", ch1)
	gm.RegisterMatchmakingChannel("bob", ch2)

	if err := gm.JoinMatchmaking("alice"); err != nil {
		t.Fatalf("queue alice: %v", err)
	}
	if err := gm.JoinMatchmaking("bob"); err != nil {
		t.Fatalf("queue bob: %v", err)
	}

	gm.matchPlayers()

	var ev1, ev2 model.MatchFoundEvent
	select {
	case ev1 = <-ch1:
	case <-time.After(time.Second):
		t.Fatal("no match event for alice")
	}
	select {
	case ev2 = <-ch2:
	case <-time.After(time.Second):
		t.Fatal("no match event for bob")
	}

	if ev1.GameID == "" || ev1.GameID != ev2.GameID {
		t.Fatalf("players paired into different games: %q vs %q", ev1.GameID, ev2.GameID)
	}
	if ev1.Color == ev2.Color {
		t.Fatalf("both players seated as %s", ev1.Color)
	}

	game, err := gm.GetGame(ev1.GameID)
	if err != nil {
		t.Fatalf("paired game not registered: %v", err)
	}
	if !game.IsPlayerInGame("alice") || !game.IsPlayerInGame("bob") {
		t.Fatal("paired players not seated in the game")
	}
}

func TestReregisterMatchmakingChannelClosesPrevious(t *testing.T) {
	gm := NewGameManager()

	old := make(chan model.MatchFoundEvent, 1)
	gm.RegisterMatchmakingChannel("alice", old)
	gm.RegisterMatchmakingChannel("alice", make(chan model.MatchFoundEvent, 1))

	select {
	case _, ok := <-old:
		if ok {
			t.Fatal("expected closed channel, got event")
		}
	case <-time.After(time.Second):
		t.Fatal("previous channel was not closed")
	}
}
