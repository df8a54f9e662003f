package domain

const (
	// DeckSize is the number of cards in a standard deck.
	DeckSize = 52
	// MaxPlayers is the number of seats at a Hearts table.
	MaxPlayers = 4
	// HandSize is the number of cards dealt to each player per hand.
	HandSize = 13
	// TrickSize is the number of cards in a completed trick.
	TrickSize = 4
	// TricksPerHand is the number of tricks played before a hand settles.
	TricksPerHand = 13
	// ExchangeSize is the number of cards each player passes before a hand.
	ExchangeSize = 3
	// MoonPoints is the full point total; collecting it all shoots the moon.
	MoonPoints = 26
	// DefaultEndScore ends the game once any player reaches it.
	DefaultEndScore = 100
)
