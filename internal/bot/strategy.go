package bot

import (
	"fmt"
	"sort"

	"hearts/internal/domain"
)

// RuleBot is a straightforward strategy: pass the most dangerous cards, duck
// tricks when following, and dump point cards when void of the lead suit.
type RuleBot struct{}

// ChooseExchange passes the three most dangerous cards: the queen of spades
// first, then high spades, then the highest-ranked remainder.
func (b *RuleBot) ChooseExchange(p *domain.Player) []int {
	cards := append([]domain.Card(nil), p.Hand...)
	sort.Slice(cards, func(i, j int) bool {
		return dangerScore(cards[i]) > dangerScore(cards[j])
	})

	n := domain.ExchangeSize
	if len(cards) < n {
		n = len(cards)
	}
	ids := make([]int, 0, n)
	for _, c := range cards[:n] {
		ids = append(ids, c.ID)
	}
	return ids
}

// dangerScore ranks how badly a card wants to leave the hand.
func dangerScore(c domain.Card) int {
	switch {
	case c.IsQueenOfSpades():
		return 1000
	case c.Suit == domain.Spades && c.Rank > domain.Queen:
		return 900 + c.RankValue()
	case c.IsHearts():
		return 800 + c.RankValue()
	}
	return c.RankValue()
}

// ChoosePlay picks from the legal moves: the lowest card when leading or
// following suit, the most damaging discard when void.
func (b *RuleBot) ChoosePlay(state *domain.GameState, p *domain.Player) (Move, error) {
	legal := state.LegalMoves(p.ID)
	if len(legal) == 0 {
		return Move{}, fmt.Errorf("no legal move for %s", p.ID)
	}

	trick := state.CurrentTrick()
	discarding := false
	if trick != nil {
		if leadSuit, led := trick.LeadSuit(); led && !hasSuit(legal, leadSuit) {
			discarding = true
		}
	}

	if discarding {
		// Void of the lead suit: unload the worst card we can.
		best := legal[0]
		for _, c := range legal[1:] {
			if dangerScore(c) > dangerScore(best) {
				best = c
			}
		}
		return Move{CardID: best.ID}, nil
	}

	low := legal[0]
	for _, c := range legal[1:] {
		if c.RankValue() < low.RankValue() {
			low = c
		}
	}
	return Move{CardID: low.ID}, nil
}

func hasSuit(cards []domain.Card, suit domain.Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}
