package app

import (
	"fmt"
	"math/rand"

	"hearts/internal/domain"
)

// Profile identifies a player joining a game. The engine trusts the caller
// to have validated the account behind it.
type Profile struct {
	ID   string
	Name string
}

// Engine orchestrates one Hearts game: a deck, the player roster and the
// rules state machine. Expected rule failures come back as false or nil
// results; panics inside an operation are funneled into the Error callback
// and the operation reports failure. The engine is not safe for concurrent
// use; callers must serialize access per instance.
type Engine struct {
	state   *domain.GameState
	players *PlayerManager
	deck    *domain.Deck
	events  Events
}

// NewEngine builds an engine for a single game. endScore must come from
// validated configuration; rng may be nil for a time-seeded default.
func NewEngine(gameID string, endScore int, rng *rand.Rand, events Events) *Engine {
	return &Engine{
		state:   domain.NewGameState(gameID, endScore),
		players: NewPlayerManager(),
		deck:    domain.NewDeck(rng),
		events:  events,
	}
}

// recoverTo keeps panics from crossing the engine boundary: the operation
// reports false and the panic surfaces through the Error callback.
func (e *Engine) recoverTo(ok *bool) {
	if r := recover(); r != nil {
		*ok = false
		e.emitError(fmt.Errorf("engine operation panicked: %v", r))
	}
}

func (e *Engine) emitError(err error) {
	if e.events.Error != nil {
		e.events.Error(err)
	}
}

func (e *Engine) emitStateChanged() {
	if e.events.StateChanged != nil {
		e.events.StateChanged()
	}
}

// AddPlayer seats a player, keeping the roster and rules state in sync.
// Fails once the table is full.
func (e *Engine) AddPlayer(profile Profile) (ok bool) {
	defer e.recoverTo(&ok)

	if e.state.IsFull() {
		return false
	}
	if _, exists := e.players.Player(profile.ID); exists {
		return false
	}

	p := e.players.AddPlayer(profile.ID, profile.Name)
	if !e.state.AddPlayer(p) {
		return false
	}

	if e.events.PlayerJoined != nil {
		e.events.PlayerJoined(PlayerJoinedEvent{PlayerID: p.ID, Name: p.Name, Position: p.Position})
	}
	e.emitStateChanged()
	return true
}

// RemovePlayer handles a mid-game departure by pausing the game; the seat,
// hand and cumulative score stay intact so the player can reclaim them.
func (e *Engine) RemovePlayer(playerID string) (ok bool) {
	defer e.recoverTo(&ok)

	if _, exists := e.players.Player(playerID); !exists {
		return false
	}

	paused := false
	if e.state.Phase != domain.PhaseWaiting {
		e.state.Status = domain.StatusPaused
		paused = true
	}

	if e.events.PlayerLeft != nil {
		e.events.PlayerLeft(PlayerLeftEvent{PlayerID: playerID, Paused: paused})
	}
	e.emitStateChanged()
	return true
}

// ReconnectPlayer resumes a paused game when a seated player returns.
func (e *Engine) ReconnectPlayer(playerID string) (ok bool) {
	defer e.recoverTo(&ok)

	p, exists := e.players.Player(playerID)
	if !exists {
		return false
	}
	if e.state.Status == domain.StatusPaused {
		e.state.Status = domain.StatusPlaying
	}

	if e.events.PlayerJoined != nil {
		e.events.PlayerJoined(PlayerJoinedEvent{PlayerID: p.ID, Name: p.Name, Position: p.Position})
	}
	e.emitStateChanged()
	return true
}

// AbandonGame marks a game nobody will resume. The state stays readable so
// callers can record or inspect the final position.
func (e *Engine) AbandonGame() (ok bool) {
	defer e.recoverTo(&ok)

	if e.state.Status == domain.StatusFinished || e.state.Status == domain.StatusAbandoned {
		return false
	}
	e.state.Status = domain.StatusAbandoned
	e.emitStateChanged()
	return true
}

// StartGame begins the first hand. The table must be full and still waiting.
func (e *Engine) StartGame() (ok bool) {
	defer e.recoverTo(&ok)

	if !e.state.IsGameReady() {
		return false
	}
	return e.startNewHand()
}

func (e *Engine) startNewHand() bool {
	e.state.StartNewHand()
	if !e.dealCards() {
		return false
	}

	if e.events.HandStarted != nil {
		e.events.HandStarted(HandStartedEvent{HandNumber: e.state.HandNumber, Direction: e.state.Direction})
	}
	if e.events.CardsDealt != nil {
		hands := make(map[string][]domain.Card, e.players.Count())
		for _, p := range e.players.Players() {
			hands[p.ID] = append([]domain.Card(nil), p.Hand...)
		}
		e.events.CardsDealt(CardsDealtEvent{HandNumber: e.state.HandNumber, Hands: hands})
	}

	if e.state.Direction == domain.PassNone {
		return e.startPlayingPhase()
	}

	e.state.Phase = domain.PhaseExchanging
	if e.events.ExchangeStarted != nil {
		e.events.ExchangeStarted(ExchangeStartedEvent{HandNumber: e.state.HandNumber, Direction: e.state.Direction})
	}
	e.emitStateChanged()
	return true
}

func (e *Engine) dealCards() bool {
	e.deck.Reset()
	e.deck.Shuffle()

	hands, err := e.deck.DealToPlayers(domain.MaxPlayers, domain.HandSize)
	if err != nil {
		e.emitError(err)
		return false
	}
	for i, id := range e.state.PlayerIDs() {
		e.players.DealCards(id, hands[i])
	}
	return true
}

// ExchangeCards records a player's three-card pass. Once all four players
// have submitted, the cards are transferred and play begins.
func (e *Engine) ExchangeCards(playerID string, cardIDs []int) (ok bool) {
	defer e.recoverTo(&ok)

	if e.state.Phase != domain.PhaseExchanging {
		return false
	}
	p, exists := e.players.Player(playerID)
	if !exists || p.HasExchanged {
		return false
	}
	if !e.players.SetExchangeCards(playerID, cardIDs) {
		return false
	}
	e.emitStateChanged()

	if e.players.AllPlayersExchanged() {
		e.transferExchanges()
		return e.startPlayingPhase()
	}
	return true
}

// transferExchanges moves each pending selection to its target: the seat
// Offset() places ahead in join order. Every player therefore receives from
// the seat at the inverse offset.
func (e *Engine) transferExchanges() {
	ids := e.state.PlayerIDs()
	offset := e.state.Direction.Offset()

	for i, id := range ids {
		source := ids[(i+len(ids)-offset)%len(ids)]
		for _, c := range e.players.ExchangeCards(source) {
			e.players.AddCardToHand(id, c)
		}
	}
	for _, id := range ids {
		e.players.ClearExchangeCards(id)
	}
}

// startPlayingPhase opens trick one, led by whoever holds the two of clubs.
func (e *Engine) startPlayingPhase() bool {
	e.state.Phase = domain.PhasePlaying

	ids := e.state.PlayerIDs()
	if len(ids) == 0 {
		return false
	}
	leader := ids[0]
	for _, p := range e.players.Players() {
		if p.HoldsTwoOfClubs() {
			leader = p.ID
			break
		}
	}

	if e.events.PlayingStarted != nil {
		e.events.PlayingStarted(PlayingStartedEvent{HandNumber: e.state.HandNumber, LeaderID: leader})
	}
	e.state.StartNewTrick(leader)
	e.emitStateChanged()
	return true
}

// PlayCard validates and applies a single play, completing the trick and
// hand as they fill up. Illegal moves report false with no state change.
func (e *Engine) PlayCard(playerID string, cardID int) (ok bool) {
	defer e.recoverTo(&ok)

	if e.state.Phase != domain.PhasePlaying {
		return false
	}
	card, found := e.deck.CardByID(cardID)
	if !found {
		return false
	}
	if !e.state.CanPlayCard(playerID, card) {
		return false
	}
	if _, removed := e.players.PlayCard(playerID, cardID); !removed {
		return false
	}
	if !e.state.AddCardToCurrentTrick(playerID, card) {
		e.players.AddCardToHand(playerID, card)
		return false
	}

	trick := e.state.CurrentTrick()
	if len(trick.Cards) == domain.TrickSize {
		if e.events.CardPlayed != nil {
			e.events.CardPlayed(CardPlayedEvent{PlayerID: playerID, Card: card, TrickNumber: trick.Number})
		}
		return e.completeTrick()
	}

	next := e.state.NextPlayerID(playerID)
	e.state.CurrentTurn = next
	if e.events.CardPlayed != nil {
		e.events.CardPlayed(CardPlayedEvent{PlayerID: playerID, Card: card, TrickNumber: trick.Number, NextTurnID: next})
	}
	e.emitStateChanged()
	return true
}

func (e *Engine) completeTrick() bool {
	trick, done := e.state.CompleteCurrentTrick()
	if !done {
		return false
	}
	e.players.ResetTrickFlags()

	if e.events.TrickCompleted != nil {
		e.events.TrickCompleted(TrickCompletedEvent{TrickNumber: trick.Number, WinnerID: trick.WinnerID, Points: trick.Points})
	}

	if trick.Number == domain.TricksPerHand {
		return e.completeHand()
	}

	e.state.StartNewTrick(trick.WinnerID)
	e.emitStateChanged()
	return true
}

func (e *Engine) completeHand() bool {
	result := e.state.CompleteHand()
	for _, id := range e.state.PlayerIDs() {
		e.players.UpdateScore(id, result.Scores[id])
	}

	if e.events.HandCompleted != nil {
		e.events.HandCompleted(HandCompletedEvent{Result: result})
	}

	if e.state.IsGameCompleted() {
		e.state.Finish()
		if e.events.GameCompleted != nil {
			e.events.GameCompleted(GameCompletedEvent{WinnerID: e.state.WinnerID(), Scores: e.Scores()})
		}
		e.emitStateChanged()
		return true
	}

	e.players.ResetForNewHand()
	return e.startNewHand()
}

// IsValidMove is the read-only legality check.
func (e *Engine) IsValidMove(playerID string, cardID int) bool {
	card, found := e.deck.CardByID(cardID)
	if !found {
		return false
	}
	return e.state.CanPlayCard(playerID, card)
}

// LegalMoves returns the cards the player may play right now.
func (e *Engine) LegalMoves(playerID string) []domain.Card {
	return e.state.LegalMoves(playerID)
}

// PlayerHand returns a copy of the player's current hand.
func (e *Engine) PlayerHand(playerID string) []domain.Card {
	p, exists := e.players.Player(playerID)
	if !exists {
		return nil
	}
	return append([]domain.Card(nil), p.Hand...)
}

// HasPlayer reports whether the player is seated in this game.
func (e *Engine) HasPlayer(playerID string) bool {
	_, exists := e.players.Player(playerID)
	return exists
}

// Player returns the seated player record.
func (e *Engine) Player(playerID string) (*domain.Player, bool) {
	return e.players.Player(playerID)
}

// Players returns the seated players in join order.
func (e *Engine) Players() []*domain.Player {
	return e.players.Players()
}

// CurrentTurn returns the ID of the player whose move is awaited.
func (e *Engine) CurrentTurn() string {
	return e.state.CurrentTurn
}

// Score returns the player's cumulative score, zero for unknown players.
func (e *Engine) Score(playerID string) int {
	return e.state.Scores[playerID]
}

// Scores returns a copy of the cumulative score map.
func (e *Engine) Scores() map[string]int {
	out := make(map[string]int, len(e.state.Scores))
	for id, s := range e.state.Scores {
		out[id] = s
	}
	return out
}

// State exposes the underlying rules state for read-only inspection.
func (e *Engine) State() *domain.GameState {
	return e.state
}
