package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Identity describes one bot profile available for auto-fill.
type Identity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// Pool is a fixed set of bot identities. Construct one per process and pass
// it to whoever seats bots; there is no package-level registry.
type Pool struct {
	identities []Identity
	byID       map[string]Identity
}

// NewPool builds a pool from the given identities. An empty slice is fine;
// Identity lookups then fall back to generated profiles.
func NewPool(identities []Identity) *Pool {
	p := &Pool{identities: identities, byID: make(map[string]Identity, len(identities))}
	for _, id := range identities {
		if id.UserID != "" {
			p.byID[id.UserID] = id
		}
	}
	return p
}

// LoadPool reads bot identities from a JSON file.
func LoadPool(path string) (*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bot identities: %w", err)
	}
	var identities []Identity
	if err := json.Unmarshal(data, &identities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bot identities: %w", err)
	}
	return NewPool(identities), nil
}

// Identity returns a profile for the bot at the given index, wrapping around
// the pool and generating a fallback when the pool is empty.
func (p *Pool) Identity(index int) Identity {
	if len(p.identities) == 0 {
		return Identity{
			UserID:      fmt.Sprintf("bot-%d", index),
			Username:    fmt.Sprintf("bot_%d", index),
			DisplayName: fmt.Sprintf("AI Player %d", index+1),
		}
	}
	return p.identities[index%len(p.identities)]
}

// DisplayName returns the display name for a bot ID, or empty for unknowns.
func (p *Pool) DisplayName(userID string) string {
	if id, ok := p.byID[userID]; ok {
		if id.DisplayName != "" {
			return id.DisplayName
		}
		return id.Username
	}
	return ""
}

// IsBot reports whether the user ID belongs to the pool or the generated
// fallback namespace.
func (p *Pool) IsBot(userID string) bool {
	if _, ok := p.byID[userID]; ok {
		return true
	}
	return strings.HasPrefix(userID, "bot-")
}
