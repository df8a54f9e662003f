package ports

import "context"

// TrickRecord summarizes one completed trick for persistence.
type TrickRecord struct {
	Number   int    `json:"number"`
	WinnerID string `json:"winner_id"`
	Points   int    `json:"points"`
}

// HandRecord mirrors a settled hand.
type HandRecord struct {
	HandNumber    int            `json:"hand_number"`
	Scores        map[string]int `json:"scores"`
	MoonShooterID string         `json:"moon_shooter_id,omitempty"`
	Tricks        []TrickRecord  `json:"tricks"`
}

// GameRecord mirrors a finished game.
type GameRecord struct {
	WinnerID string         `json:"winner_id"`
	Scores   map[string]int `json:"scores"`
	Hands    int            `json:"hands"`
}

// GameRecorder persists hand and game outcomes after the engine has settled
// them. The engine itself performs no I/O; the transport layer records in
// response to the events it receives.
type GameRecorder interface {
	RecordHand(ctx context.Context, matchID string, record HandRecord) error
	RecordGame(ctx context.Context, matchID string, record GameRecord) error
}
