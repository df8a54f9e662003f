package app

import "hearts/internal/domain"

// PlayerManager owns the seated players' hands, exchange selections and
// per-trick flags. It does not guard against duplicate IDs or positions;
// uniqueness is the engine's responsibility.
type PlayerManager struct {
	players    map[string]*domain.Player
	byPosition map[domain.Position]string
	order      []string
}

// NewPlayerManager creates an empty roster.
func NewPlayerManager() *PlayerManager {
	return &PlayerManager{
		players:    make(map[string]*domain.Player),
		byPosition: make(map[domain.Position]string),
	}
}

// AddPlayer seats a new player at the next compass position in join order
// and returns the constructed record.
func (m *PlayerManager) AddPlayer(id, name string) *domain.Player {
	p := &domain.Player{
		ID:       id,
		Name:     name,
		Position: domain.PositionByIndex(len(m.order)),
	}
	m.players[id] = p
	m.byPosition[p.Position] = id
	m.order = append(m.order, id)
	return p
}

// Player returns the seated player with the given ID.
func (m *PlayerManager) Player(id string) (*domain.Player, bool) {
	p, ok := m.players[id]
	return p, ok
}

// PlayerAt returns the player seated at the given position.
func (m *PlayerManager) PlayerAt(pos domain.Position) (*domain.Player, bool) {
	id, ok := m.byPosition[pos]
	if !ok {
		return nil, false
	}
	return m.Player(id)
}

// Players returns the seated players in join order.
func (m *PlayerManager) Players() []*domain.Player {
	out := make([]*domain.Player, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.players[id])
	}
	return out
}

// Count returns the number of seated players.
func (m *PlayerManager) Count() int {
	return len(m.order)
}

// DealCards replaces the player's hand and re-sorts it.
func (m *PlayerManager) DealCards(playerID string, cards []domain.Card) bool {
	p, ok := m.players[playerID]
	if !ok {
		return false
	}
	p.Hand = append([]domain.Card(nil), cards...)
	domain.SortHand(p.Hand)
	return true
}

// PlayCard removes the card from the player's hand and marks them as having
// played this trick. A missing player or card yields ok=false, never a panic.
func (m *PlayerManager) PlayCard(playerID string, cardID int) (domain.Card, bool) {
	p, ok := m.players[playerID]
	if !ok {
		return domain.Card{}, false
	}
	for i, c := range p.Hand {
		if c.ID == cardID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			p.HasPlayedInTrick = true
			return c, true
		}
	}
	return domain.Card{}, false
}

// AddCardToHand appends a card and re-sorts the hand.
func (m *PlayerManager) AddCardToHand(playerID string, card domain.Card) bool {
	p, ok := m.players[playerID]
	if !ok {
		return false
	}
	p.Hand = append(p.Hand, card)
	domain.SortHand(p.Hand)
	return true
}

// RemoveCardsFromHand removes each listed card if present and returns the
// subset actually removed, in input order.
func (m *PlayerManager) RemoveCardsFromHand(playerID string, cardIDs []int) []domain.Card {
	p, ok := m.players[playerID]
	if !ok {
		return nil
	}
	removed := make([]domain.Card, 0, len(cardIDs))
	for _, id := range cardIDs {
		for i, c := range p.Hand {
			if c.ID == id {
				p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
				removed = append(removed, c)
				break
			}
		}
	}
	return removed
}

// SetExchangeCards moves exactly three cards out of the hand into the
// pending exchange. If any listed card is missing the hand is restored
// unchanged and the call fails.
func (m *PlayerManager) SetExchangeCards(playerID string, cardIDs []int) bool {
	p, ok := m.players[playerID]
	if !ok || len(cardIDs) != domain.ExchangeSize {
		return false
	}
	removed := m.RemoveCardsFromHand(playerID, cardIDs)
	if len(removed) != domain.ExchangeSize {
		for _, c := range removed {
			m.AddCardToHand(playerID, c)
		}
		return false
	}
	p.Exchange = removed
	p.HasExchanged = true
	return true
}

// ExchangeCards returns the player's pending exchange selection.
func (m *PlayerManager) ExchangeCards(playerID string) []domain.Card {
	p, ok := m.players[playerID]
	if !ok {
		return nil
	}
	return p.Exchange
}

// ClearExchangeCards drops the player's pending exchange selection.
func (m *PlayerManager) ClearExchangeCards(playerID string) {
	if p, ok := m.players[playerID]; ok {
		p.Exchange = nil
	}
}

// UpdateScore records the hand score and folds it into the cumulative total.
func (m *PlayerManager) UpdateScore(playerID string, handScore int) {
	if p, ok := m.players[playerID]; ok {
		p.HandScore = handScore
		p.TotalScore += handScore
	}
}

// ResetTrickFlags clears the played-in-trick flag for everyone.
func (m *PlayerManager) ResetTrickFlags() {
	for _, p := range m.players {
		p.HasPlayedInTrick = false
	}
}

// ResetForNewHand clears hands, exchange state and hand scores. Cumulative
// scores persist for the life of the game.
func (m *PlayerManager) ResetForNewHand() {
	for _, p := range m.players {
		p.Hand = nil
		p.Exchange = nil
		p.HasExchanged = false
		p.HasPlayedInTrick = false
		p.HandScore = 0
	}
}

// HasCard reports hand membership by card ID.
func (m *PlayerManager) HasCard(playerID string, cardID int) bool {
	p, ok := m.players[playerID]
	return ok && p.HasCard(cardID)
}

// AllPlayersExchanged reports whether every seated player has submitted an
// exchange selection.
func (m *PlayerManager) AllPlayersExchanged() bool {
	for _, p := range m.players {
		if !p.HasExchanged {
			return false
		}
	}
	return true
}

// AllPlayersPlayedInTrick reports whether every seated player has played
// into the current trick.
func (m *PlayerManager) AllPlayersPlayedInTrick() bool {
	for _, p := range m.players {
		if !p.HasPlayedInTrick {
			return false
		}
	}
	return true
}
