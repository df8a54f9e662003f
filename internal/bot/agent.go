package bot

import (
	"fmt"

	"hearts/internal/domain"
)

// Agent is an autonomous bot occupying a seat.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent builds an agent with the default rule-based strategy.
func NewAgent(id, name string) *Agent {
	return &Agent{ID: id, Name: name, Strategy: &RuleBot{}}
}

// Exchange picks the agent's three-card pass.
func (a *Agent) Exchange(state *domain.GameState) ([]int, error) {
	p, ok := state.Player(a.ID)
	if !ok {
		return nil, fmt.Errorf("agent %s is not seated in this game", a.ID)
	}
	return a.Strategy.ChooseExchange(p), nil
}

// Play asks the agent for its move in the current trick.
func (a *Agent) Play(state *domain.GameState) (Move, error) {
	p, ok := state.Player(a.ID)
	if !ok {
		return Move{}, fmt.Errorf("agent %s is not seated in this game", a.ID)
	}
	return a.Strategy.ChoosePlay(state, p)
}
