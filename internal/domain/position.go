package domain

// Position is a compass seat at the table, fixed when a player joins.
type Position string

const (
	North Position = "north"
	East  Position = "east"
	South Position = "south"
	West  Position = "west"
)

// Positions returns the seat cycle in play order.
func Positions() [4]Position {
	return [4]Position{North, East, South, West}
}

// NextPosition advances one seat clockwise, wrapping West back to North.
func NextPosition(p Position) Position {
	positions := Positions()
	for i, pos := range positions {
		if pos == p {
			return positions[(i+1)%len(positions)]
		}
	}
	return North
}

// PositionByIndex maps a join index to a seat, wrapping modulo 4.
func PositionByIndex(i int) Position {
	positions := Positions()
	i %= len(positions)
	if i < 0 {
		i += len(positions)
	}
	return positions[i]
}

// PassDirection determines which opponent receives a player's three passed
// cards for a hand. The cycle is Left, Right, Across, None.
type PassDirection string

const (
	PassLeft   PassDirection = "left"
	PassRight  PassDirection = "right"
	PassAcross PassDirection = "across"
	PassNone   PassDirection = "none"
)

// DirectionForHand returns the exchange direction for a 1-based hand number.
func DirectionForHand(handNumber int) PassDirection {
	cycle := [4]PassDirection{PassLeft, PassRight, PassAcross, PassNone}
	return cycle[(handNumber-1)%len(cycle)]
}

// Offset returns how many seats ahead, in join order, the exchange target
// sits. PassNone has no target and returns 0.
func (d PassDirection) Offset() int {
	switch d {
	case PassLeft:
		return 1
	case PassAcross:
		return 2
	case PassRight:
		return 3
	}
	return 0
}
