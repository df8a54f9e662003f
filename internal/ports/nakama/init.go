package nakama

import (
	"context"
	"database/sql"
	"os"
	"time"

	"hearts/internal/app"
	"hearts/internal/bot"
	"hearts/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	defaultConfigPath        = "data/game_config.json"
	defaultBotIdentitiesPath = "data/bot_identities.json"
)

// InitModule wires configuration, RPCs, hooks and the match handler for the
// Nakama runtime. All dependencies are constructed here and passed down;
// nothing in the module relies on package-level state.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	cfg, err := loadGameConfig(env, logger)
	if err != nil {
		return err
	}

	pool := loadBotPool(env, logger)
	tokens := newTokenService(env, logger)

	if err := RegisterRPCs(initializer, tokens); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameHearts, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return newMatchHandler(cfg, pool, tokens), nil
	}); err != nil {
		return err
	}

	if err := initializer.RegisterAfterAuthenticateDevice(AfterAuthenticateDevice); err != nil {
		return err
	}

	logger.Info("Hearts Go module loaded.")
	return nil
}

// loadGameConfig reads the game configuration. A missing file falls back to
// defaults; an invalid file aborts startup.
func loadGameConfig(env map[string]string, logger runtime.Logger) (*config.GameConfig, error) {
	path := env["hearts_config_path"]
	if path == "" {
		path = defaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		logger.Warn("InitModule: No game config at %s, using defaults.", path)
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Error("InitModule: Invalid game config at %s: %v", path, err)
		return nil, err
	}
	return cfg, nil
}

func loadBotPool(env map[string]string, logger runtime.Logger) *bot.Pool {
	path := env["hearts_bot_identities_path"]
	if path == "" {
		path = defaultBotIdentitiesPath
	}

	pool, err := bot.LoadPool(path)
	if err != nil {
		logger.Warn("InitModule: Could not load bot identities: %v", err)
		return bot.NewPool(nil)
	}
	return pool
}

func newTokenService(env map[string]string, logger runtime.Logger) *app.RejoinTokenService {
	secret := env["hearts_token_secret"]
	issuer := env["hearts_token_issuer"]
	if secret == "" || issuer == "" {
		logger.Warn("InitModule: hearts_token_secret/hearts_token_issuer not set; rejoin tokens disabled.")
	}
	return app.NewRejoinTokenService(secret, issuer, time.Hour)
}
