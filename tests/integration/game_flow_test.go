package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

// Opcodes mirrored from the server module; this module is deliberately
// standalone so it can run against a deployed server.
const (
	OpStartGame     int64 = 1
	OpExchangeCards int64 = 2
	OpPlayCard      int64 = 3

	OpHandStarted     int64 = 103
	OpHandDealt       int64 = 104
	OpExchangeStarted int64 = 105
	OpPlayingStarted  int64 = 106
)

type wireCard struct {
	ID     int    `json:"id"`
	Suit   string `json:"suit"`
	Rank   int    `json:"rank"`
	Code   string `json:"code"`
	Points int    `json:"points"`
}

type handDealtMessage struct {
	HandNumber int        `json:"hand_number"`
	Hand       []wireCard `json:"hand"`
}

type playingStartedMessage struct {
	HandNumber int    `json:"hand_number"`
	LeaderID   string `json:"leader_id"`
}

func TestFullHandStart(t *testing.T) {
	// 1. Create 4 clients
	clients := make([]*TestClient, 4)
	for i := 0; i < 4; i++ {
		clients[i] = NewTestClient(t)
		defer clients[i].Close()
	}
	t.Log("Created 4 clients")

	// 2. Client 0 creates a match via quick_match
	matchID := clients[0].QuickMatch(t)
	t.Logf("Client 0 created/joined match: %s", matchID)

	// 3. Other clients join the SAME match
	for i := 1; i < 4; i++ {
		if _, err := clients[i].Socket.JoinMatch(context.Background(), nil, matchID, nil); err != nil {
			t.Fatalf("Client %d failed to join match: %v", i, err)
		}
		t.Logf("Client %d joined match", i)
	}

	// Wait a bit for presences to sync
	time.Sleep(1 * time.Second)

	// 4. Client 0 (owner) starts the game
	t.Log("Client 0 sending StartGame...")
	clients[0].SendJSON(t, matchID, OpStartGame, map[string]interface{}{})

	// 5. Every client receives a private 13-card hand
	hands := make([]handDealtMessage, 4)
	for i, c := range clients {
		data := c.WaitForMatchState(t, OpHandDealt, 5*time.Second)

		if err := json.Unmarshal(data.Data, &hands[i]); err != nil {
			t.Fatalf("Client %d failed to unmarshal dealt hand: %v", i, err)
		}
		if len(hands[i].Hand) != 13 {
			t.Errorf("Client %d expected 13 cards, got %d", i, len(hands[i].Hand))
		}
	}

	// Hand one passes left, so the exchange phase must open.
	clients[0].WaitForMatchState(t, OpExchangeStarted, 5*time.Second)

	// 6. Everyone passes their first three cards
	for i, c := range clients {
		ids := []int{hands[i].Hand[0].ID, hands[i].Hand[1].ID, hands[i].Hand[2].ID}
		c.SendJSON(t, matchID, OpExchangeCards, map[string]interface{}{"card_ids": ids})
	}

	// 7. Play begins, led by whoever holds the two of clubs
	data := clients[0].WaitForMatchState(t, OpPlayingStarted, 5*time.Second)
	var started playingStartedMessage
	if err := json.Unmarshal(data.Data, &started); err != nil {
		t.Fatalf("Failed to unmarshal PlayingStarted: %v", err)
	}
	if started.LeaderID == "" {
		t.Fatalf("PlayingStarted carried no leader")
	}
	t.Logf("Play started, leader: %s", started.LeaderID)
}
