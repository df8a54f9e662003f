package domain

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Deck owns the canonical 52-card set plus a working set that shrinks as
// cards are dealt. Lookups run against the canonical set so dealt cards stay
// discoverable by identity.
type Deck struct {
	original []Card
	cards    []Card
	rng      *rand.Rand
}

// NewDeck builds the 52-card universe, one card per suit and rank, with IDs
// assigned 1..52 in suit-major, rank-minor order. rng may be nil to use a
// time-seeded default.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	original := make([]Card, 0, DeckSize)
	id := 1
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			original = append(original, NewCard(id, suit, rank))
			id++
		}
	}

	d := &Deck{original: original, rng: rng}
	d.Reset()
	return d
}

// Shuffle permutes the working set in place.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the first n cards of the working set in order.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("cannot deal %d cards: only %d remaining", n, len(d.cards))
	}
	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt, nil
}

// DealToPlayers deals numPlayers hands of perPlayer cards round-robin,
// consuming the cards from the working set in encounter order.
func (d *Deck) DealToPlayers(numPlayers, perPlayer int) ([][]Card, error) {
	total := numPlayers * perPlayer
	if total > len(d.cards) {
		return nil, fmt.Errorf("cannot deal %d cards: only %d remaining", total, len(d.cards))
	}

	hands := make([][]Card, numPlayers)
	for i := range hands {
		hands[i] = make([]Card, 0, perPlayer)
	}
	for i := 0; i < total; i++ {
		hands[i%numPlayers] = append(hands[i%numPlayers], d.cards[i])
	}
	d.cards = d.cards[total:]
	return hands, nil
}

// Reset restores the working set to the canonical construction order.
func (d *Deck) Reset() {
	d.cards = append([]Card(nil), d.original...)
}

// Cards returns a copy of the undealt working set.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// AllCards returns a copy of the canonical 52-card set.
func (d *Deck) AllCards() []Card {
	return append([]Card(nil), d.original...)
}

// CardByID looks a card up in the canonical set.
func (d *Deck) CardByID(id int) (Card, bool) {
	for _, c := range d.original {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// FindCard looks a card up by suit and rank in the canonical set.
func (d *Deck) FindCard(suit Suit, rank Rank) (Card, bool) {
	for _, c := range d.original {
		if c.Suit == suit && c.Rank == rank {
			return c, true
		}
	}
	return Card{}, false
}

// RemainingCount returns the number of undealt cards.
func (d *Deck) RemainingCount() int {
	return len(d.cards)
}

// IsEmpty reports whether every card has been dealt.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// SortHand orders cards by their sort key: suit groups in display order,
// ascending rank within each suit.
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].SortKey < cards[j].SortKey
	})
}
