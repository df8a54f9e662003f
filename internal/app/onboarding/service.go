package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"hearts/internal/ports"
)

// Service handles post-auth onboarding for new users: every fresh account
// gets a generated table name so other players never see a bare device ID.
type Service struct {
	profiles ports.ProfilePort
	rng      *rand.Rand
}

// NewService constructs an onboarding service. profiles must be non-nil;
// rng may be nil to use a time-seeded default.
func NewService(profiles ports.ProfilePort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{profiles: profiles, rng: rng}
}

// OnboardNewUser assigns a friendly display name to a newly created account.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (string, error) {
	if s.profiles == nil {
		return "", fmt.Errorf("onboarding service not configured")
	}

	displayName := s.generateFriendlyName()
	if err := s.profiles.UpdateProfile(ctx, userID, displayName, displayName); err != nil {
		return "", fmt.Errorf("failed to update profile: %w", err)
	}
	return displayName, nil
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Happy", "Shiny", "Brave", "Clever", "Swift", "Calm", "Mighty", "Witty", "Sly", "Wild"}
	nouns := []string{"Panda", "Tiger", "Eagle", "Dolphin", "Wolf", "Otter", "Falcon", "Bear", "Fox", "Lion"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
