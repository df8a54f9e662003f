package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"hearts/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RejoinTokenRequest asks for a grant to reclaim a seat in the given match.
type RejoinTokenRequest struct {
	MatchID string `json:"match_id"`
}

// RejoinTokenResponse carries the signed grant. Clients present it as the
// "rejoin_token" metadata value when joining the match again.
type RejoinTokenResponse struct {
	Token string `json:"token"`
}

func makeRpcRejoinToken(tokens *app.RejoinTokenService) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", fmt.Errorf("authentication required")
		}

		var request RejoinTokenRequest
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			return "", fmt.Errorf("invalid payload: %w", err)
		}
		if request.MatchID == "" {
			return "", fmt.Errorf("match_id is required")
		}

		token, err := tokens.IssueToken(userID, request.MatchID)
		if err != nil {
			logger.Error("rpcRejoinToken: Failed to issue token for %s: %v", userID, err)
			return "", err
		}

		b, _ := json.Marshal(RejoinTokenResponse{Token: token})
		return string(b), nil
	}
}
