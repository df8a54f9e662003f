package app

import "hearts/internal/domain"

// Events holds the optional callbacks the engine fires as a game advances.
// Nil callbacks are skipped. Callbacks run synchronously on the engine's
// caller and must not call back into the engine.
type Events struct {
	StateChanged    func()
	PlayerJoined    func(PlayerJoinedEvent)
	PlayerLeft      func(PlayerLeftEvent)
	HandStarted     func(HandStartedEvent)
	CardsDealt      func(CardsDealtEvent)
	ExchangeStarted func(ExchangeStartedEvent)
	PlayingStarted  func(PlayingStartedEvent)
	CardPlayed      func(CardPlayedEvent)
	TrickCompleted  func(TrickCompletedEvent)
	HandCompleted   func(HandCompletedEvent)
	GameCompleted   func(GameCompletedEvent)
	Error           func(error)
}

type PlayerJoinedEvent struct {
	PlayerID string
	Name     string
	Position domain.Position
}

type PlayerLeftEvent struct {
	PlayerID string
	Paused   bool
}

type HandStartedEvent struct {
	HandNumber int
	Direction  domain.PassDirection
}

// CardsDealtEvent carries every dealt hand; transports must deliver each
// hand only to its owner.
type CardsDealtEvent struct {
	HandNumber int
	Hands      map[string][]domain.Card
}

type ExchangeStartedEvent struct {
	HandNumber int
	Direction  domain.PassDirection
}

type PlayingStartedEvent struct {
	HandNumber int
	LeaderID   string
}

type CardPlayedEvent struct {
	PlayerID    string
	Card        domain.Card
	TrickNumber int
	NextTurnID  string // empty when the play completed the trick
}

type TrickCompletedEvent struct {
	TrickNumber int
	WinnerID    string
	Points      int
}

type HandCompletedEvent struct {
	Result domain.HandResult
}

type GameCompletedEvent struct {
	WinnerID string
	Scores   map[string]int
}
