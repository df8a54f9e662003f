package domain

// CanPlayCard is the legal-move predicate. The checks run in order and
// short-circuit on the first failure:
//
//  1. an uncompleted trick must be open
//  2. it must be this player's turn
//  3. the card must be in the player's hand
//  4. no point card on the first trick of the first hand
//  5. the two of clubs must open trick one of every hand
//  6. a held card of the lead suit must be followed
//  7. hearts cannot lead until broken, unless the hand is all hearts
func (g *GameState) CanPlayCard(playerID string, card Card) bool {
	t := g.CurrentTrick()
	if t == nil || t.Completed {
		return false
	}
	if g.CurrentTurn != playerID {
		return false
	}
	p, ok := g.players[playerID]
	if !ok || !p.HasCard(card.ID) {
		return false
	}

	if g.HandNumber == 1 && g.TrickNumber == 1 && card.HasPoints() {
		return false
	}

	if g.TrickNumber == 1 && p.HoldsTwoOfClubs() && !card.IsTwoOfClubs() {
		return false
	}

	if leadSuit, led := t.LeadSuit(); led {
		if card.Suit != leadSuit && p.HasSuit(leadSuit) {
			return false
		}
	} else if card.IsHearts() && !g.HeartsBroken && !p.HoldsOnlyHearts() {
		return false
	}

	return true
}

// LegalMoves filters the player's hand through CanPlayCard.
func (g *GameState) LegalMoves(playerID string) []Card {
	p, ok := g.players[playerID]
	if !ok {
		return nil
	}
	legal := make([]Card, 0, len(p.Hand))
	for _, c := range p.Hand {
		if g.CanPlayCard(playerID, c) {
			legal = append(legal, c)
		}
	}
	return legal
}
