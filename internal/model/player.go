package model

type Player struct {
	ID string
}

// ClientPlayer is the seat view sent to clients. TimeLeft is in tenths
// of a second.
type ClientPlayer struct {
	ID       string `json:"name"`
	Color    Color  `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}
