package model

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/boardsim/chessboard-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

const initialClockTime = 600 * time.Second

// GameConnections holds the live sockets for one game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is one board session: the board itself, the two seats, the
// clocks, and the sockets watching it. All rule decisions live in the
// Board; Game only relays its verdict.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       GameState
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
}

// GameState is the full JSON projection a rendering client consumes:
// the grid with per-piece glyphs, the side to move, the move history,
// and both seats.
type GameState struct {
	Board    *Board      `json:"board"`
	Players  Players     `json:"players"`
	LastMove *SimpleMove `json:"lastMove"`
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		state:       newGameState(),
		connections: NewGameConnections(),
		whiteClock:  NewClock(initialClockTime),
		blackClock:  NewClock(initialClockTime),
	}
}

func newGameState() GameState {
	return GameState{
		Board: NewBoard(),
	}
}

// AddPlayer seats playerID, white first. Returns the assigned color.
func (g *Game) AddPlayer(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Players.White.ID == "" {
		g.state.Players.White = ClientPlayer{
			ID:       playerID,
			Color:    White,
			TimeLeft: clockTenths(g.whiteClock),
		}
		return White, nil
	}
	if g.state.Players.Black.ID == "" {
		g.state.Players.Black = ClientPlayer{
			ID:       playerID,
			Color:    Black,
			TimeLeft: clockTenths(g.blackClock),
		}
		return Black, nil
	}
	return "", ErrGameFull
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if g.state.Players.White.ID != "" && g.state.Players.White.ID == playerID {
		return true
	}
	if g.state.Players.Black.ID != "" && g.state.Players.Black.ID == playerID {
		return true
	}
	return false
}

// CanSpectate reports whether the game still has an open seat;
// connections from non-players are accepted while it does.
func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.state.Players.White.ID == "" || g.state.Players.Black.ID == ""
}

// MakeMove applies a move command to the board. The board's boolean
// verdict is surfaced as ErrIllegalMove; out-of-range source squares
// are rejected before the board is consulted. Clocks swap and state is
// broadcast only when the move applies.
func (g *Game) MakeMove(move WSMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	board := g.state.Board
	if !board.inBounds(move.From.Row, move.From.Col) || !board.inBounds(move.To.Row, move.To.Col) {
		return ErrOutOfBounds
	}

	mover := board.ToMove
	if !board.MovePiece(move.From.Row, move.From.Col, move.To.Row, move.To.Col) {
		return ErrIllegalMove
	}

	if mover == White {
		g.whiteClock.Stop()
		g.blackClock.Start()
	} else {
		g.blackClock.Stop()
		g.whiteClock.Start()
	}
	g.state.Players.White.TimeLeft = clockTenths(g.whiteClock)
	g.state.Players.Black.TimeLeft = clockTenths(g.blackClock)

	g.state.LastMove = &SimpleMove{From: move.From, To: move.To}

	go g.broadcastState()

	return nil
}

func clockTenths(c *Clock) int {
	return int(c.TimeLeft().Milliseconds() / 100)
}

// RegisterConnection attaches a socket to this game. Players and, while
// a seat is open, spectators are accepted; a second connection for the
// same player is closed and rejected.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	authorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !authorized {
		return ErrNotAuthorized
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, playerID)
}

// broadcastState sends the current GameState to every registered
// connection, dropping connections that fail to write.
func (g *Game) broadcastState() {
	g.mu.Lock()
	payload, err := json.Marshal(g.state)
	g.mu.Unlock()
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}

	g.connections.mu.RLock()
	active := make(map[string]*websocket.Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		active[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range active {
		err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		})
		if err != nil {
			log.Printf("game %s: send state to %s: %v", g.ID, playerID, err)
			g.connections.mu.Lock()
			delete(g.connections.connections, playerID)
			g.connections.mu.Unlock()
		}
	}
}
