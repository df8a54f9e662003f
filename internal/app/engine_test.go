package app

import (
	"math/rand"
	"testing"

	"hearts/internal/domain"
)

type eventCounters struct {
	joined     int
	left       int
	hands      int
	dealt      int
	exchanges  int
	playing    int
	cards      int
	tricks     int
	completed  int
	finished   int
	errors     int
	lastLeft   PlayerLeftEvent
	lastHand   HandCompletedEvent
	lastFinish GameCompletedEvent
	lastDealt  CardsDealtEvent
}

func (c *eventCounters) events() Events {
	return Events{
		PlayerJoined:    func(PlayerJoinedEvent) { c.joined++ },
		PlayerLeft:      func(ev PlayerLeftEvent) { c.left++; c.lastLeft = ev },
		HandStarted:     func(HandStartedEvent) { c.hands++ },
		CardsDealt:      func(ev CardsDealtEvent) { c.dealt++; c.lastDealt = ev },
		ExchangeStarted: func(ExchangeStartedEvent) { c.exchanges++ },
		PlayingStarted:  func(PlayingStartedEvent) { c.playing++ },
		CardPlayed:      func(CardPlayedEvent) { c.cards++ },
		TrickCompleted:  func(TrickCompletedEvent) { c.tricks++ },
		HandCompleted:   func(ev HandCompletedEvent) { c.completed++; c.lastHand = ev },
		GameCompleted:   func(ev GameCompletedEvent) { c.finished++; c.lastFinish = ev },
		Error:           func(error) { c.errors++ },
	}
}

var enginePlayerIDs = []string{"p1", "p2", "p3", "p4"}

func newTestEngine(t *testing.T, seed int64, endScore int, counters *eventCounters) *Engine {
	t.Helper()
	var events Events
	if counters != nil {
		events = counters.events()
	}
	e := NewEngine("game-1", endScore, rand.New(rand.NewSource(seed)), events)
	for _, id := range enginePlayerIDs {
		if !e.AddPlayer(Profile{ID: id, Name: id}) {
			t.Fatalf("AddPlayer(%s) failed", id)
		}
	}
	return e
}

// exchangeAll submits the first three cards of every unexchanged hand.
func exchangeAll(t *testing.T, e *Engine) {
	t.Helper()
	for _, id := range enginePlayerIDs {
		p, ok := e.Player(id)
		if !ok {
			t.Fatalf("player %s missing", id)
		}
		if p.HasExchanged {
			continue
		}
		ids := []int{p.Hand[0].ID, p.Hand[1].ID, p.Hand[2].ID}
		if !e.ExchangeCards(id, ids) {
			t.Fatalf("ExchangeCards(%s, %v) failed", id, ids)
		}
	}
}

func TestAddPlayerRejectsDuplicatesAndOverflow(t *testing.T) {
	counters := &eventCounters{}
	e := newTestEngine(t, 1, 100, counters)

	if e.AddPlayer(Profile{ID: "p1", Name: "again"}) {
		t.Fatalf("duplicate ID must be rejected")
	}
	if e.AddPlayer(Profile{ID: "p5", Name: "p5"}) {
		t.Fatalf("fifth player must be rejected")
	}
	if counters.joined != 4 {
		t.Fatalf("PlayerJoined fired %d times, want 4", counters.joined)
	}
}

func TestStartGameRequiresFullTable(t *testing.T) {
	e := NewEngine("game-1", 100, rand.New(rand.NewSource(1)), Events{})
	e.AddPlayer(Profile{ID: "p1", Name: "p1"})
	e.AddPlayer(Profile{ID: "p2", Name: "p2"})

	if e.StartGame() {
		t.Fatalf("two players cannot start a game")
	}
}

func TestStartGameDealsAndOpensExchange(t *testing.T) {
	counters := &eventCounters{}
	e := newTestEngine(t, 1, 100, counters)

	if !e.StartGame() {
		t.Fatalf("StartGame failed on a full table")
	}
	if e.StartGame() {
		t.Fatalf("a started game must not start again")
	}

	state := e.State()
	if state.HandNumber != 1 || state.Phase != domain.PhaseExchanging {
		t.Fatalf("hand=%d phase=%s after start", state.HandNumber, state.Phase)
	}
	if state.Direction != domain.PassLeft {
		t.Fatalf("hand 1 direction = %s, want left", state.Direction)
	}
	if counters.hands != 1 || counters.dealt != 1 || counters.exchanges != 1 {
		t.Fatalf("events: hands=%d dealt=%d exchanges=%d", counters.hands, counters.dealt, counters.exchanges)
	}

	seen := make(map[int]bool, domain.DeckSize)
	for _, id := range enginePlayerIDs {
		hand := e.PlayerHand(id)
		if len(hand) != domain.HandSize {
			t.Fatalf("%s holds %d cards, want %d", id, len(hand), domain.HandSize)
		}
		for _, c := range hand {
			if seen[c.ID] {
				t.Fatalf("card %s dealt twice", c.Code)
			}
			seen[c.ID] = true
		}
	}
	if len(counters.lastDealt.Hands) != 4 {
		t.Fatalf("CardsDealt carried %d hands", len(counters.lastDealt.Hands))
	}
}

func TestExchangeTransfersLeft(t *testing.T) {
	counters := &eventCounters{}
	e := newTestEngine(t, 3, 100, counters)
	if !e.StartGame() {
		t.Fatalf("StartGame failed")
	}

	passed := make(map[string][]int, 4)
	for _, id := range enginePlayerIDs {
		p, _ := e.Player(id)
		passed[id] = []int{p.Hand[0].ID, p.Hand[1].ID, p.Hand[2].ID}
	}

	for _, id := range enginePlayerIDs {
		if !e.ExchangeCards(id, passed[id]) {
			t.Fatalf("ExchangeCards(%s) failed", id)
		}
	}

	state := e.State()
	if state.Phase != domain.PhasePlaying {
		t.Fatalf("phase = %s after all exchanges, want playing", state.Phase)
	}
	if counters.playing != 1 {
		t.Fatalf("PlayingStarted fired %d times", counters.playing)
	}

	// Hand one passes left: p1's cards land with p2, p4's with p1.
	receiver := map[string]string{"p1": "p2", "p2": "p3", "p3": "p4", "p4": "p1"}
	for source, target := range receiver {
		hand := e.PlayerHand(target)
		for _, cardID := range passed[source] {
			found := false
			for _, c := range hand {
				if c.ID == cardID {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("card %d passed by %s missing from %s's hand", cardID, source, target)
			}
		}
	}

	// The two of clubs holder leads trick one.
	leader := e.CurrentTurn()
	p, _ := e.Player(leader)
	if !p.HoldsTwoOfClubs() {
		t.Fatalf("leader %s does not hold the two of clubs", leader)
	}
}

func TestExchangeValidation(t *testing.T) {
	e := newTestEngine(t, 1, 100, nil)

	if e.ExchangeCards("p1", []int{1, 2, 3}) {
		t.Fatalf("exchange before the game starts must fail")
	}

	if !e.StartGame() {
		t.Fatalf("StartGame failed")
	}

	p, _ := e.Player("p1")
	ids := []int{p.Hand[0].ID, p.Hand[1].ID, p.Hand[2].ID}
	if e.ExchangeCards("p1", ids[:2]) {
		t.Fatalf("two cards are not a legal selection")
	}
	if e.ExchangeCards("ghost", ids) {
		t.Fatalf("unknown player cannot exchange")
	}
	if !e.ExchangeCards("p1", ids) {
		t.Fatalf("valid selection rejected")
	}
	p2, _ := e.Player("p1")
	remaining := []int{p2.Hand[0].ID, p2.Hand[1].ID, p2.Hand[2].ID}
	if e.ExchangeCards("p1", remaining) {
		t.Fatalf("a second selection must be rejected")
	}
}

func TestPlayCardValidation(t *testing.T) {
	e := newTestEngine(t, 1, 100, nil)

	if e.PlayCard("p1", 1) {
		t.Fatalf("no plays before the game starts")
	}

	if !e.StartGame() {
		t.Fatalf("StartGame failed")
	}
	exchangeAll(t, e)

	leader := e.CurrentTurn()
	other := e.State().NextPlayerID(leader)
	legal := e.LegalMoves(other)
	if len(legal) != 0 {
		t.Fatalf("non-leader has legal moves before their turn: %v", legal)
	}

	if e.PlayCard(leader, 999) {
		t.Fatalf("unknown card ID must be rejected")
	}
	if !e.IsValidMove(leader, e.LegalMoves(leader)[0].ID) {
		t.Fatalf("first legal move reported invalid")
	}
}

func TestFullGameRunsToCompletion(t *testing.T) {
	counters := &eventCounters{}
	e := newTestEngine(t, 42, 25, counters)
	if !e.StartGame() {
		t.Fatalf("StartGame failed")
	}

	for i := 0; i < 20000; i++ {
		state := e.State()
		if state.Status == domain.StatusFinished {
			break
		}
		switch state.Phase {
		case domain.PhaseExchanging:
			exchangeAll(t, e)
		case domain.PhasePlaying:
			current := e.CurrentTurn()
			legal := e.LegalMoves(current)
			if len(legal) == 0 {
				t.Fatalf("no legal moves for %s in hand %d trick %d", current, state.HandNumber, state.TrickNumber)
			}
			if !e.PlayCard(current, legal[0].ID) {
				t.Fatalf("legal card %s rejected for %s", legal[0].Code, current)
			}
		default:
			t.Fatalf("unexpected phase %s mid-game", state.Phase)
		}
	}

	state := e.State()
	if state.Status != domain.StatusFinished {
		t.Fatalf("game did not finish: status=%s scores=%v", state.Status, e.Scores())
	}
	if counters.finished != 1 {
		t.Fatalf("GameCompleted fired %d times", counters.finished)
	}
	if counters.errors != 0 {
		t.Fatalf("engine reported %d errors", counters.errors)
	}
	if counters.tricks != counters.completed*domain.TricksPerHand {
		t.Fatalf("tricks=%d for %d hands", counters.tricks, counters.completed)
	}

	// Every settled hand redistributes exactly the deck's 26 points, or
	// three times that after a moon inversion.
	for _, hand := range state.History {
		sum := 0
		for _, s := range hand.Scores {
			sum += s
		}
		want := domain.MoonPoints
		if hand.MoonShooterID != "" {
			want = 3 * domain.MoonPoints
		}
		if sum != want {
			t.Fatalf("hand %d scores sum to %d, want %d", hand.HandNumber, sum, want)
		}
	}

	// The winner holds the lowest cumulative score.
	winner := counters.lastFinish.WinnerID
	for id, score := range counters.lastFinish.Scores {
		if score < counters.lastFinish.Scores[winner] {
			t.Fatalf("winner %s outscored by %s (%d < %d)", winner, id, score, counters.lastFinish.Scores[winner])
		}
	}
}

func TestRemovePlayerPausesMidGame(t *testing.T) {
	counters := &eventCounters{}
	e := newTestEngine(t, 1, 100, counters)
	if !e.StartGame() {
		t.Fatalf("StartGame failed")
	}

	before := e.PlayerHand("p2")
	if !e.RemovePlayer("p2") {
		t.Fatalf("RemovePlayer failed for a seated player")
	}
	if e.State().Status != domain.StatusPaused {
		t.Fatalf("status = %s, want paused", e.State().Status)
	}
	if !counters.lastLeft.Paused {
		t.Fatalf("PlayerLeft should report the pause")
	}
	if len(e.PlayerHand("p2")) != len(before) {
		t.Fatalf("hand must survive a departure")
	}

	if !e.ReconnectPlayer("p2") {
		t.Fatalf("ReconnectPlayer failed")
	}
	if e.State().Status != domain.StatusPlaying {
		t.Fatalf("status = %s after reconnect, want playing", e.State().Status)
	}

	if e.RemovePlayer("ghost") {
		t.Fatalf("unknown player cannot leave")
	}
}

func TestRemovePlayerInLobbyDoesNotPause(t *testing.T) {
	counters := &eventCounters{}
	e := newTestEngine(t, 1, 100, counters)

	if !e.RemovePlayer("p3") {
		t.Fatalf("RemovePlayer failed")
	}
	if e.State().Status == domain.StatusPaused {
		t.Fatalf("a lobby departure must not pause")
	}
	if counters.lastLeft.Paused {
		t.Fatalf("PlayerLeft reported a pause in the lobby")
	}
}

func TestAbandonGame(t *testing.T) {
	e := newTestEngine(t, 1, 100, nil)
	if !e.AbandonGame() {
		t.Fatalf("AbandonGame failed")
	}
	if e.State().Status != domain.StatusAbandoned {
		t.Fatalf("status = %s, want abandoned", e.State().Status)
	}
	if e.AbandonGame() {
		t.Fatalf("an abandoned game cannot be abandoned again")
	}
}

func TestScoreAccessors(t *testing.T) {
	e := newTestEngine(t, 1, 100, nil)

	if e.Score("ghost") != 0 {
		t.Fatalf("unknown player score must be 0")
	}
	scores := e.Scores()
	if len(scores) != 4 {
		t.Fatalf("scores map has %d entries", len(scores))
	}
	scores["p1"] = 99
	if e.Score("p1") == 99 {
		t.Fatalf("Scores must return a copy")
	}
}

func TestNoPassHandSkipsExchange(t *testing.T) {
	counters := &eventCounters{}
	e := newTestEngine(t, 7, 100, counters)
	if !e.StartGame() {
		t.Fatalf("StartGame failed")
	}

	// Drive through hands until hand four, the no-pass hand.
	for i := 0; i < 20000 && e.State().HandNumber < 4; i++ {
		state := e.State()
		if state.Status == domain.StatusFinished {
			t.Fatalf("game finished before hand four")
		}
		switch state.Phase {
		case domain.PhaseExchanging:
			exchangeAll(t, e)
		case domain.PhasePlaying:
			current := e.CurrentTurn()
			legal := e.LegalMoves(current)
			if len(legal) == 0 {
				t.Fatalf("no legal moves for %s", current)
			}
			e.PlayCard(current, legal[0].ID)
		}
	}

	state := e.State()
	if state.HandNumber != 4 {
		t.Fatalf("hand = %d, want 4", state.HandNumber)
	}
	if state.Direction != domain.PassNone {
		t.Fatalf("hand 4 direction = %s, want none", state.Direction)
	}
	if state.Phase != domain.PhasePlaying {
		t.Fatalf("the no-pass hand must go straight to playing, got %s", state.Phase)
	}
	if counters.exchanges != 3 {
		t.Fatalf("ExchangeStarted fired %d times over four hands, want 3", counters.exchanges)
	}
}
