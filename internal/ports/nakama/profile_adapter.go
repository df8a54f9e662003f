package nakama

import (
	"context"
	"fmt"

	"hearts/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// ProfileAdapter implements ports.ProfilePort using Nakama's account API.
type ProfileAdapter struct {
	nk runtime.NakamaModule
}

// NewProfileAdapter creates a new profile adapter.
func NewProfileAdapter(nk runtime.NakamaModule) *ProfileAdapter {
	return &ProfileAdapter{nk: nk}
}

// GetProfile fetches the account behind userID and maps it to a game profile.
func (a *ProfileAdapter) GetProfile(ctx context.Context, userID string) (ports.Profile, error) {
	account, err := a.nk.AccountGetId(ctx, userID)
	if err != nil {
		return ports.Profile{}, fmt.Errorf("failed to fetch account %s: %w", userID, err)
	}

	profile := ports.Profile{
		UserID: userID,
		Active: account.GetDisableTime() == nil,
	}
	if user := account.GetUser(); user != nil {
		profile.Username = user.GetUsername()
		profile.DisplayName = user.GetDisplayName()
	}
	return profile, nil
}

// UpdateProfile applies username and display name to the account.
func (a *ProfileAdapter) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	return a.nk.AccountUpdateId(ctx, userID, username, nil, displayName, "", "", "", "")
}

var _ ports.ProfilePort = (*ProfileAdapter)(nil)
