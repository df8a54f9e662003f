package bot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_identities.json")
	contents := `[
		{"user_id": "bot-a", "username": "bot_a", "display_name": "Alpha"},
		{"user_id": "bot-b", "username": "bot_b", "display_name": "Beta"}
	]`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write identities file: %v", err)
	}

	pool, err := LoadPool(path)
	if err != nil {
		t.Fatalf("LoadPool error: %v", err)
	}

	if id := pool.Identity(0); id.UserID != "bot-a" {
		t.Fatalf("Identity(0) = %s, want bot-a", id.UserID)
	}
	// Indexes wrap around the pool.
	if id := pool.Identity(3); id.UserID != "bot-b" {
		t.Fatalf("Identity(3) = %s, want bot-b", id.UserID)
	}
	if name := pool.DisplayName("bot-b"); name != "Beta" {
		t.Fatalf("DisplayName(bot-b) = %q, want Beta", name)
	}
	if !pool.IsBot("bot-a") {
		t.Fatalf("bot-a should be recognized as a bot")
	}
	if pool.IsBot("user-1") {
		t.Fatalf("user-1 is not a bot")
	}
}

func TestLoadPoolMissingFile(t *testing.T) {
	if _, err := LoadPool(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("LoadPool should fail for a missing file")
	}
}

func TestEmptyPoolGeneratesFallbackIdentities(t *testing.T) {
	pool := NewPool(nil)

	id := pool.Identity(2)
	if id.UserID != "bot-2" {
		t.Fatalf("fallback UserID = %s, want bot-2", id.UserID)
	}
	if !pool.IsBot(id.UserID) {
		t.Fatalf("generated identity must count as a bot")
	}
	if pool.DisplayName("bot-2") != "" {
		t.Fatalf("generated identities are not registered by ID")
	}
}
