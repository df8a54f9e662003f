package ports

import "context"

// Profile is the identity data the game needs for a seated player.
type Profile struct {
	UserID      string
	Username    string
	DisplayName string
	Active      bool
}

// ProfilePort resolves and updates player profile data. The rules engine
// never validates accounts itself; callers fetch profiles through this port
// before seating a player.
type ProfilePort interface {
	// GetProfile fetches the profile for a user.
	GetProfile(ctx context.Context, userID string) (Profile, error)

	// UpdateProfile applies username/displayName to the account.
	UpdateProfile(ctx context.Context, userID, username, displayName string) error
}
