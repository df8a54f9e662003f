package nakama

import (
	"hearts/internal/domain"
	"hearts/internal/ports"
)

// wireCard is the JSON card representation sent to clients.
type wireCard struct {
	ID     int    `json:"id"`
	Suit   string `json:"suit"`
	Rank   int    `json:"rank"`
	Code   string `json:"code"`
	Points int    `json:"points"`
}

func toWireCard(c domain.Card) wireCard {
	return wireCard{
		ID:     c.ID,
		Suit:   c.Suit.Letter(),
		Rank:   int(c.Rank),
		Code:   c.Code,
		Points: c.Points,
	}
}

func toWireCards(cards []domain.Card) []wireCard {
	out := make([]wireCard, len(cards))
	for i, c := range cards {
		out[i] = toWireCard(c)
	}
	return out
}

// Server event payloads.

type playerJoinedMessage struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type playerLeftMessage struct {
	PlayerID string `json:"player_id"`
	Paused   bool   `json:"paused"`
}

type handStartedMessage struct {
	HandNumber int    `json:"hand_number"`
	Direction  string `json:"direction"`
}

type handDealtMessage struct {
	HandNumber int        `json:"hand_number"`
	Hand       []wireCard `json:"hand"`
}

type exchangeStartedMessage struct {
	HandNumber int    `json:"hand_number"`
	Direction  string `json:"direction"`
}

type playingStartedMessage struct {
	HandNumber int    `json:"hand_number"`
	LeaderID   string `json:"leader_id"`
}

type cardPlayedMessage struct {
	PlayerID    string   `json:"player_id"`
	Card        wireCard `json:"card"`
	TrickNumber int      `json:"trick_number"`
	NextTurnID  string   `json:"next_turn_id,omitempty"`
}

type trickCompletedMessage struct {
	TrickNumber int    `json:"trick_number"`
	WinnerID    string `json:"winner_id"`
	Points      int    `json:"points"`
}

type handCompletedMessage struct {
	HandNumber    int            `json:"hand_number"`
	Scores        map[string]int `json:"scores"`
	TotalScores   map[string]int `json:"total_scores"`
	MoonShooterID string         `json:"moon_shooter_id,omitempty"`
}

type gameCompletedMessage struct {
	WinnerID string         `json:"winner_id"`
	Scores   map[string]int `json:"scores"`
}

type gameErrorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// playerSnapshot is the public view of one seat.
type playerSnapshot struct {
	PlayerID       string `json:"player_id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	CardsRemaining int    `json:"cards_remaining"`
	Score          int    `json:"score"`
	HasExchanged   bool   `json:"has_exchanged"`
	IsBot          bool   `json:"is_bot"`
	Connected      bool   `json:"connected"`
}

// matchSnapshot is the full public match view broadcast after roster changes.
type matchSnapshot struct {
	Phase        string           `json:"phase"`
	Status       string           `json:"status"`
	HandNumber   int              `json:"hand_number"`
	TrickNumber  int              `json:"trick_number"`
	CurrentTurn  string           `json:"current_turn"`
	HeartsBroken bool             `json:"hearts_broken"`
	Direction    string           `json:"direction"`
	Players      []playerSnapshot `json:"players"`
	Scores       map[string]int   `json:"scores"`
}

// Client request payloads.

type exchangeCardsRequest struct {
	CardIDs []int `json:"card_ids"`
}

type playCardRequest struct {
	CardID int `json:"card_id"`
}

// toHandRecord flattens a settled hand for persistence.
func toHandRecord(result domain.HandResult) ports.HandRecord {
	tricks := make([]ports.TrickRecord, 0, len(result.Tricks))
	for _, t := range result.Tricks {
		tricks = append(tricks, ports.TrickRecord{
			Number:   t.Number,
			WinnerID: t.WinnerID,
			Points:   t.Points,
		})
	}
	return ports.HandRecord{
		HandNumber:    result.HandNumber,
		Scores:        result.Scores,
		MoonShooterID: result.MoonShooterID,
		Tricks:        tricks,
	}
}
