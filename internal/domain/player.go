package domain

// Player holds the mutable per-seat state for one participant. The hand is
// kept sorted by card sort key; Exchange holds an in-flight three-card pass
// that has already left the hand.
type Player struct {
	ID       string
	Name     string
	Position Position

	Hand             []Card
	Exchange         []Card
	HasExchanged     bool
	HasPlayedInTrick bool

	HandScore  int
	TotalScore int
}

// HasCard reports whether the card with the given ID is in the hand.
func (p *Player) HasCard(cardID int) bool {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return true
		}
	}
	return false
}

// HasSuit reports whether the hand holds any card of the given suit.
func (p *Player) HasSuit(suit Suit) bool {
	for _, c := range p.Hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// HoldsOnlyHearts reports whether every card left in the hand is a heart.
func (p *Player) HoldsOnlyHearts() bool {
	if len(p.Hand) == 0 {
		return false
	}
	for _, c := range p.Hand {
		if !c.IsHearts() {
			return false
		}
	}
	return true
}

// HoldsTwoOfClubs reports whether the hand contains the opening card.
func (p *Player) HoldsTwoOfClubs() bool {
	for _, c := range p.Hand {
		if c.IsTwoOfClubs() {
			return true
		}
	}
	return false
}
