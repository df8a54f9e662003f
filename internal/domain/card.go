package domain

import "strconv"

// Suit identifies one of the four French suits. The numeric order doubles as
// the hand-display order: Clubs, Diamonds, Spades, Hearts.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Spades
	Hearts
)

// Letter returns the single-letter suit code used in card codes.
func (s Suit) Letter() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Spades:
		return "S"
	case Hearts:
		return "H"
	}
	return "?"
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	}
	return "Unknown"
}

// Suits returns the four suits in display order.
func Suits() [4]Suit {
	return [4]Suit{Clubs, Diamonds, Spades, Hearts}
}

// Rank is the face value of a card. The numeric value runs 2..14, Ace high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Code returns the rank portion of a card code ("2".."10", "J", "Q", "K", "A").
func (r Rank) Code() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return strconv.Itoa(int(r))
}

// Ranks returns the thirteen ranks in ascending order.
func Ranks() [13]Rank {
	return [13]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Card is an immutable playing card. All derived fields are computed at
// construction and never change afterwards; two cards are equal iff their IDs
// match.
type Card struct {
	ID      int
	Suit    Suit
	Rank    Rank
	Code    string // suit letter + rank code, e.g. "SQ", "H10"
	Points  int    // hearts score 1 each, the queen of spades 13
	SortKey int    // suit-major, rank-minor total order
}

// NewCard builds a card with its derived fields populated.
func NewCard(id int, suit Suit, rank Rank) Card {
	return Card{
		ID:      id,
		Suit:    suit,
		Rank:    rank,
		Code:    suit.Letter() + rank.Code(),
		Points:  cardPoints(suit, rank),
		SortKey: int(suit)*100 + int(rank),
	}
}

func cardPoints(suit Suit, rank Rank) int {
	if suit == Hearts {
		return 1
	}
	if suit == Spades && rank == Queen {
		return 13
	}
	return 0
}

// RankValue returns the numeric rank, 2..14 with Ace high.
func (c Card) RankValue() int {
	return int(c.Rank)
}

// Equal reports card identity. Cards are compared by ID only.
func (c Card) Equal(other Card) bool {
	return c.ID == other.ID
}

func (c Card) IsHearts() bool {
	return c.Suit == Hearts
}

func (c Card) IsQueenOfSpades() bool {
	return c.Suit == Spades && c.Rank == Queen
}

func (c Card) IsTwoOfClubs() bool {
	return c.Suit == Clubs && c.Rank == Two
}

// HasPoints reports whether playing this card can score against someone.
func (c Card) HasPoints() bool {
	return c.Points > 0
}

func (c Card) String() string {
	return c.Code
}
