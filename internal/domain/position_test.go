package domain

import "testing"

func TestPositionByIndexWraps(t *testing.T) {
	tests := []struct {
		index int
		want  Position
	}{
		{0, North},
		{1, East},
		{2, South},
		{3, West},
		{4, North},
		{-1, West},
	}
	for _, tt := range tests {
		if got := PositionByIndex(tt.index); got != tt.want {
			t.Fatalf("PositionByIndex(%d) = %s, want %s", tt.index, got, tt.want)
		}
	}
}

func TestNextPositionCycle(t *testing.T) {
	order := []Position{North, East, South, West, North}
	for i := 0; i < len(order)-1; i++ {
		if got := NextPosition(order[i]); got != order[i+1] {
			t.Fatalf("NextPosition(%s) = %s, want %s", order[i], got, order[i+1])
		}
	}
}

func TestDirectionForHandCycle(t *testing.T) {
	tests := []struct {
		hand int
		want PassDirection
	}{
		{1, PassLeft},
		{2, PassRight},
		{3, PassAcross},
		{4, PassNone},
		{5, PassLeft},
		{8, PassNone},
		{9, PassLeft},
	}
	for _, tt := range tests {
		if got := DirectionForHand(tt.hand); got != tt.want {
			t.Fatalf("DirectionForHand(%d) = %s, want %s", tt.hand, got, tt.want)
		}
	}
}

func TestDirectionOffsets(t *testing.T) {
	tests := []struct {
		direction PassDirection
		want      int
	}{
		{PassLeft, 1},
		{PassAcross, 2},
		{PassRight, 3},
		{PassNone, 0},
	}
	for _, tt := range tests {
		if got := tt.direction.Offset(); got != tt.want {
			t.Fatalf("%s.Offset() = %d, want %d", tt.direction, got, tt.want)
		}
	}
}
