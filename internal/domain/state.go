package domain

import "time"

// Status is the administrative state of a game instance.
type Status string

const (
	StatusPlaying   Status = "playing"
	StatusFinished  Status = "finished"
	StatusPaused    Status = "paused"
	StatusAbandoned Status = "abandoned"
)

// Phase is the stage within the hand lifecycle.
type Phase string

const (
	// PhaseWaiting is the pre-game state where players can join.
	PhaseWaiting Phase = "waiting"
	// PhaseDealing is the transient state while a new hand is dealt.
	PhaseDealing Phase = "dealing"
	// PhaseExchanging is the three-card pass before play, skipped on
	// no-pass hands.
	PhaseExchanging Phase = "exchanging"
	// PhasePlaying covers the thirteen tricks of a hand.
	PhasePlaying Phase = "playing"
	// PhaseCompleted is terminal; the game is over.
	PhaseCompleted Phase = "completed"
)

// HandResult records the settled outcome of one hand.
type HandResult struct {
	HandNumber    int
	Scores        map[string]int
	MoonShooterID string // empty when nobody shot the moon
	Tricks        []*Trick
}

// GameState is the authoritative state machine for one Hearts game. It owns
// the trick history and cumulative scores; hands live on the shared Player
// records registered through AddPlayer.
type GameState struct {
	ID     string
	Status Status
	Phase  Phase

	players map[string]*Player
	order   []string // join order

	HandNumber   int
	TrickNumber  int
	CurrentTurn  string
	HeartsBroken bool
	Direction    PassDirection

	Tricks  []*Trick
	History []HandResult
	Scores  map[string]int

	EndScore int

	StartedAt   time.Time
	CompletedAt time.Time
}

// NewGameState creates a fresh game in the waiting phase. A non-positive
// endScore falls back to the default; configuration validation is the
// loader's job.
func NewGameState(id string, endScore int) *GameState {
	if endScore <= 0 {
		endScore = DefaultEndScore
	}
	return &GameState{
		ID:        id,
		Status:    StatusPlaying,
		Phase:     PhaseWaiting,
		players:   make(map[string]*Player),
		Scores:    make(map[string]int),
		EndScore:  endScore,
		StartedAt: time.Now().UTC(),
	}
}

// AddPlayer registers a player and initializes their cumulative score.
// Returns false once four players are seated.
func (g *GameState) AddPlayer(p *Player) bool {
	if len(g.order) >= MaxPlayers {
		return false
	}
	g.players[p.ID] = p
	g.order = append(g.order, p.ID)
	g.Scores[p.ID] = 0
	return true
}

// Player returns the registered player with the given ID.
func (g *GameState) Player(id string) (*Player, bool) {
	p, ok := g.players[id]
	return p, ok
}

// PlayerIDs returns the player IDs in join order.
func (g *GameState) PlayerIDs() []string {
	return append([]string(nil), g.order...)
}

// NextPlayerID returns the player seated after the given one in join order,
// wrapping from the last back to the first.
func (g *GameState) NextPlayerID(id string) string {
	for i, pid := range g.order {
		if pid == id {
			return g.order[(i+1)%len(g.order)]
		}
	}
	if len(g.order) > 0 {
		return g.order[0]
	}
	return ""
}

// IsFull reports whether all four seats are taken.
func (g *GameState) IsFull() bool {
	return len(g.order) == MaxPlayers
}

// IsGameReady reports whether the game can start: full and still waiting.
func (g *GameState) IsGameReady() bool {
	return g.IsFull() && g.Phase == PhaseWaiting
}

// StartNewHand advances the hand counter, clears per-hand state and
// recomputes the exchange direction. The phase moves to dealing; the engine
// deals and transitions onward.
func (g *GameState) StartNewHand() {
	g.HandNumber++
	g.TrickNumber = 0
	g.HeartsBroken = false
	g.Tricks = nil
	g.Phase = PhaseDealing
	g.Direction = DirectionForHand(g.HandNumber)
}

// StartNewTrick opens the next trick with the given lead player to move.
func (g *GameState) StartNewTrick(leadPlayerID string) {
	g.TrickNumber++
	g.CurrentTurn = leadPlayerID
	g.Tricks = append(g.Tricks, NewTrick(g.TrickNumber, leadPlayerID))
}

// CurrentTrick returns the trick in progress, or nil before the first trick
// of a hand.
func (g *GameState) CurrentTrick() *Trick {
	if len(g.Tricks) == 0 {
		return nil
	}
	return g.Tricks[len(g.Tricks)-1]
}

// AddCardToCurrentTrick appends a play to the open trick. Any hearts card
// breaks hearts for the rest of the hand; legality is the caller's concern
// via CanPlayCard.
func (g *GameState) AddCardToCurrentTrick(playerID string, card Card) bool {
	t := g.CurrentTrick()
	if t == nil || t.Completed {
		return false
	}
	t.AddCard(playerID, card)
	if card.IsHearts() {
		g.HeartsBroken = true
	}
	return true
}

// CompleteCurrentTrick settles the open trick once four cards are down and
// hands the lead to the winner. Returns nil, false on a partial trick.
func (g *GameState) CompleteCurrentTrick() (*Trick, bool) {
	t := g.CurrentTrick()
	if t == nil || !t.Complete() {
		return nil, false
	}
	g.CurrentTurn = t.WinnerID
	return t, true
}

// CompleteHand sums each player's trick points for the hand, applies the
// shoot-the-moon inversion, folds the result into the cumulative scores and
// appends it to the history.
func (g *GameState) CompleteHand() HandResult {
	scores := make(map[string]int, len(g.order))
	for _, id := range g.order {
		scores[id] = 0
	}
	for _, t := range g.Tricks {
		if t.Completed {
			scores[t.WinnerID] += t.Points
		}
	}

	shooter := ""
	for _, id := range g.order {
		if scores[id] == MoonPoints {
			shooter = id
			break
		}
	}
	if shooter != "" {
		for _, id := range g.order {
			if id == shooter {
				scores[id] = 0
			} else {
				scores[id] = MoonPoints
			}
		}
	}

	for _, id := range g.order {
		g.Scores[id] += scores[id]
	}

	result := HandResult{
		HandNumber:    g.HandNumber,
		Scores:        scores,
		MoonShooterID: shooter,
		Tricks:        g.Tricks,
	}
	g.History = append(g.History, result)
	return result
}

// IsGameCompleted reports whether any player has reached the end score.
func (g *GameState) IsGameCompleted() bool {
	for _, id := range g.order {
		if g.Scores[id] >= g.EndScore {
			return true
		}
	}
	return false
}

// WinnerID returns the player with the lowest cumulative score once the game
// has completed; empty otherwise. An exact tie goes to whoever joined first.
func (g *GameState) WinnerID() string {
	if !g.IsGameCompleted() {
		return ""
	}
	winner := ""
	best := 0
	for i, id := range g.order {
		if i == 0 || g.Scores[id] < best {
			winner = id
			best = g.Scores[id]
		}
	}
	return winner
}

// Finish marks the game terminal.
func (g *GameState) Finish() {
	g.Phase = PhaseCompleted
	g.Status = StatusFinished
	g.CompletedAt = time.Now().UTC()
}
