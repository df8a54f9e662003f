package domain

// PlayedCard records one card played into a trick.
type PlayedCard struct {
	PlayerID string
	Card     Card
	Order    int // 1-based play order within the trick
}

// Trick is one round of four plays, won by the highest card of the suit led.
type Trick struct {
	Number       int // 1-based within the hand
	LeadPlayerID string
	Cards        []PlayedCard
	WinnerID     string
	Points       int
	Completed    bool
}

// NewTrick starts an empty trick led by the given player.
func NewTrick(number int, leadPlayerID string) *Trick {
	return &Trick{
		Number:       number,
		LeadPlayerID: leadPlayerID,
		Cards:        make([]PlayedCard, 0, TrickSize),
	}
}

// AddCard appends a play to the trick in order.
func (t *Trick) AddCard(playerID string, card Card) {
	t.Cards = append(t.Cards, PlayedCard{
		PlayerID: playerID,
		Card:     card,
		Order:    len(t.Cards) + 1,
	})
}

// LeadSuit returns the suit of the first card played, if any.
func (t *Trick) LeadSuit() (Suit, bool) {
	if len(t.Cards) == 0 {
		return 0, false
	}
	return t.Cards[0].Card.Suit, true
}

// Complete settles the trick: the winner is whoever played the highest-rank
// card of the lead suit, scanning in play order and replacing the running
// winner only on a strictly greater rank. Returns false unless exactly four
// cards have been played.
func (t *Trick) Complete() bool {
	if t.Completed || len(t.Cards) != TrickSize {
		return false
	}

	winner := t.Cards[0]
	leadSuit := t.Cards[0].Card.Suit
	points := 0
	for _, pc := range t.Cards {
		points += pc.Card.Points
		if pc.Order == 1 {
			continue
		}
		if pc.Card.Suit == leadSuit && pc.Card.RankValue() > winner.Card.RankValue() {
			winner = pc
		}
	}

	t.WinnerID = winner.PlayerID
	t.Points = points
	t.Completed = true
	return true
}
