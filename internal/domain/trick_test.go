package domain

import "testing"

type play struct {
	player string
	suit   Suit
	rank   Rank
}

func playTrick(t *testing.T, plays []play) *Trick {
	t.Helper()
	trick := NewTrick(1, plays[0].player)
	for i, p := range plays {
		trick.AddCard(p.player, NewCard(i+1, p.suit, p.rank))
	}
	return trick
}

func TestCompleteTrickWinner(t *testing.T) {
	tests := []struct {
		name       string
		plays      []play
		wantWinner string
		wantPoints int
	}{
		{
			name: "highest of lead suit wins",
			plays: []play{
				{"p1", Clubs, Five},
				{"p2", Clubs, King},
				{"p3", Clubs, Nine},
				{"p4", Clubs, Two},
			},
			wantWinner: "p2",
			wantPoints: 0,
		},
		{
			name: "off-suit cards never win",
			plays: []play{
				{"p1", Clubs, Five},
				{"p2", Hearts, Ace},
				{"p3", Spades, Ace},
				{"p4", Diamonds, Ace},
			},
			wantWinner: "p1",
			wantPoints: 1,
		},
		{
			name: "leader eats a dumped queen and hearts",
			plays: []play{
				{"p1", Diamonds, Jack},
				{"p2", Spades, Queen},
				{"p3", Hearts, Four},
				{"p4", Hearts, Ten},
			},
			wantWinner: "p1",
			wantPoints: 15,
		},
		{
			name: "equal rank off lead does not replace",
			plays: []play{
				{"p1", Spades, Ten},
				{"p2", Hearts, Ten},
				{"p3", Spades, Ten},
				{"p4", Clubs, Ten},
			},
			wantWinner: "p1",
			wantPoints: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trick := playTrick(t, tt.plays)
			if !trick.Complete() {
				t.Fatalf("Complete() should settle a four-card trick")
			}
			if trick.WinnerID != tt.wantWinner {
				t.Fatalf("winner = %s, want %s", trick.WinnerID, tt.wantWinner)
			}
			if trick.Points != tt.wantPoints {
				t.Fatalf("points = %d, want %d", trick.Points, tt.wantPoints)
			}
		})
	}
}

func TestCompleteRejectsPartialTrick(t *testing.T) {
	trick := NewTrick(1, "p1")
	trick.AddCard("p1", NewCard(1, Clubs, Two))
	trick.AddCard("p2", NewCard(2, Clubs, Three))

	if trick.Complete() {
		t.Fatalf("Complete() must refuse a two-card trick")
	}
	if trick.Completed || trick.WinnerID != "" {
		t.Fatalf("partial trick was mutated: %+v", trick)
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	trick := playTrick(t, []play{
		{"p1", Clubs, Five},
		{"p2", Clubs, King},
		{"p3", Clubs, Nine},
		{"p4", Clubs, Two},
	})
	if !trick.Complete() {
		t.Fatalf("first Complete() failed")
	}
	if trick.Complete() {
		t.Fatalf("second Complete() should report false")
	}
}

func TestLeadSuit(t *testing.T) {
	trick := NewTrick(1, "p1")
	if _, led := trick.LeadSuit(); led {
		t.Fatalf("empty trick has no lead suit")
	}

	trick.AddCard("p1", NewCard(40, Hearts, Two))
	suit, led := trick.LeadSuit()
	if !led || suit != Hearts {
		t.Fatalf("LeadSuit = %v, %v, want Hearts", suit, led)
	}
}

func TestAddCardAssignsOrder(t *testing.T) {
	trick := NewTrick(3, "p1")
	trick.AddCard("p1", NewCard(1, Clubs, Two))
	trick.AddCard("p2", NewCard(2, Clubs, Three))

	if trick.Cards[0].Order != 1 || trick.Cards[1].Order != 2 {
		t.Fatalf("orders = %d, %d, want 1, 2", trick.Cards[0].Order, trick.Cards[1].Order)
	}
}
