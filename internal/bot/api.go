package bot

import "hearts/internal/domain"

// Move is the card a bot decided to play.
type Move struct {
	CardID int
}

// Brain is the interface all bot strategies implement. Both methods receive
// the shared rules state read-only and must never mutate it.
type Brain interface {
	// ChooseExchange picks the three card IDs to pass before a hand.
	ChooseExchange(p *domain.Player) []int

	// ChoosePlay picks a legal card for the bot's turn.
	ChoosePlay(state *domain.GameState, p *domain.Player) (Move, error)
}
