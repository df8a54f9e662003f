package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"hearts/internal/app"
	"hearts/internal/bot"
	"hearts/internal/config"
	"hearts/internal/domain"
	"hearts/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// abandonAfterTicks is how long a paused match survives with no humans
// connected before it is marked abandoned and terminated.
const abandonAfterTicks = 300

// outboundMessage is a queued broadcast. An empty recipients slice means
// everyone; otherwise only the listed user IDs (connected ones) receive it.
type outboundMessage struct {
	opCode     int64
	payload    interface{}
	recipients []string
}

// MatchState holds the authoritative runtime state for one Hearts match.
// The engine owns the rules; this layer owns seats, presences and delivery.
type MatchState struct {
	Seats     [4]string
	Presences map[string]runtime.Presence
	MatchID   string
	Tick      int64

	Engine *app.Engine

	TurnDuration int
	TurnDeadline int64
	LastTurn     string
	LastPhase    domain.Phase

	BotsEnabled      bool
	BotMinDelay      int
	BotMaxDelay      int
	BotAutoFillDelay int
	BotWaitUntil     int64
	SoloHumanSince   int64
	Bots             map[string]*bot.Agent
	Pool             *bot.Pool

	EmptySince int64

	Profiles ports.ProfilePort
	Recorder ports.GameRecorder
	Tokens   *app.RejoinTokenService

	rng *rand.Rand

	outbox       []outboundMessage
	pendingHands []ports.HandRecord
	pendingGame  *ports.GameRecord
}

// queue schedules a broadcast for the next flush.
func (ms *MatchState) queue(opCode int64, payload interface{}, recipients []string) {
	ms.outbox = append(ms.outbox, outboundMessage{opCode: opCode, payload: payload, recipients: recipients})
}

func (ms *MatchState) isBotUserID(userID string) bool {
	if _, ok := ms.Bots[userID]; ok {
		return true
	}
	return ms.Pool != nil && ms.Pool.IsBot(userID)
}

func (ms *MatchState) humanSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !ms.isBotUserID(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) openSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1.
// That occupant is the match owner and the only one who may start the game.
func (ms *MatchState) findFirstHumanSeat() int {
	for i, userID := range ms.Seats {
		if userID != "" && !ms.isBotUserID(userID) {
			return i
		}
	}
	return -1
}

type matchHandler struct {
	cfg    *config.GameConfig
	pool   *bot.Pool
	tokens *app.RejoinTokenService
}

func newMatchHandler(cfg *config.GameConfig, pool *bot.Pool, tokens *app.RejoinTokenService) *matchHandler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &matchHandler{cfg: cfg, pool: pool, tokens: tokens}
}

// matchLabel is the indexed JSON label used for match listing queries.
type matchLabel struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing Hearts match handler.")

	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)

	state := &MatchState{
		Presences:        make(map[string]runtime.Presence),
		MatchID:          matchID,
		Tick:             time.Now().Unix(),
		TurnDuration:     mh.cfg.TurnDurationSeconds,
		BotsEnabled:      mh.cfg.BotsEnabled,
		BotMinDelay:      mh.cfg.BotMinDelaySeconds,
		BotMaxDelay:      mh.cfg.BotMaxDelaySeconds,
		BotAutoFillDelay: mh.cfg.BotAutoFillDelaySeconds,
		Bots:             make(map[string]*bot.Agent),
		Pool:             mh.pool,
		Profiles:         NewProfileAdapter(nk),
		Recorder:         NewStorageRecorder(nk),
		Tokens:           mh.tokens,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Per-match environment overrides for bot pacing.
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if val, ok := env["hearts_bots_enabled"]; ok {
			state.BotsEnabled = val == "true"
		}
		if val, ok := env["hearts_bot_min_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotMinDelay = i
			}
		}
		if val, ok := env["hearts_bot_max_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotMaxDelay = i
			}
		}
		if val, ok := env["hearts_bot_auto_fill_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotAutoFillDelay = i
			}
		}
	}

	state.Engine = app.NewEngine(matchID, mh.cfg.EndScore, state.rng, app.Events{
		PlayerJoined: func(ev app.PlayerJoinedEvent) {
			state.queue(OpPlayerJoined, playerJoinedMessage{
				PlayerID: ev.PlayerID,
				Name:     ev.Name,
				Position: string(ev.Position),
			}, nil)
		},
		PlayerLeft: func(ev app.PlayerLeftEvent) {
			state.queue(OpPlayerLeft, playerLeftMessage{PlayerID: ev.PlayerID, Paused: ev.Paused}, nil)
		},
		HandStarted: func(ev app.HandStartedEvent) {
			state.queue(OpHandStarted, handStartedMessage{
				HandNumber: ev.HandNumber,
				Direction:  string(ev.Direction),
			}, nil)
		},
		CardsDealt: func(ev app.CardsDealtEvent) {
			// One private message per hand owner.
			for playerID, hand := range ev.Hands {
				state.queue(OpHandDealt, handDealtMessage{
					HandNumber: ev.HandNumber,
					Hand:       toWireCards(hand),
				}, []string{playerID})
			}
		},
		ExchangeStarted: func(ev app.ExchangeStartedEvent) {
			state.queue(OpExchangeStarted, exchangeStartedMessage{
				HandNumber: ev.HandNumber,
				Direction:  string(ev.Direction),
			}, nil)
		},
		PlayingStarted: func(ev app.PlayingStartedEvent) {
			state.queue(OpPlayingStarted, playingStartedMessage{
				HandNumber: ev.HandNumber,
				LeaderID:   ev.LeaderID,
			}, nil)
		},
		CardPlayed: func(ev app.CardPlayedEvent) {
			state.queue(OpCardPlayed, cardPlayedMessage{
				PlayerID:    ev.PlayerID,
				Card:        toWireCard(ev.Card),
				TrickNumber: ev.TrickNumber,
				NextTurnID:  ev.NextTurnID,
			}, nil)
		},
		TrickCompleted: func(ev app.TrickCompletedEvent) {
			state.queue(OpTrickCompleted, trickCompletedMessage{
				TrickNumber: ev.TrickNumber,
				WinnerID:    ev.WinnerID,
				Points:      ev.Points,
			}, nil)
		},
		HandCompleted: func(ev app.HandCompletedEvent) {
			state.queue(OpHandCompleted, handCompletedMessage{
				HandNumber:    ev.Result.HandNumber,
				Scores:        ev.Result.Scores,
				TotalScores:   state.Engine.Scores(),
				MoonShooterID: ev.Result.MoonShooterID,
			}, nil)
			state.pendingHands = append(state.pendingHands, toHandRecord(ev.Result))
		},
		GameCompleted: func(ev app.GameCompletedEvent) {
			state.queue(OpGameCompleted, gameCompletedMessage{
				WinnerID: ev.WinnerID,
				Scores:   ev.Scores,
			}, nil)
			state.pendingGame = &ports.GameRecord{
				WinnerID: ev.WinnerID,
				Scores:   ev.Scores,
				Hands:    state.Engine.State().HandNumber,
			}
		},
		Error: func(err error) {
			logger.Error("Engine error in match %s: %v", matchID, err)
			state.queue(OpGameError, gameErrorMessage{Code: 500, Message: err.Error()}, nil)
		},
	})

	labelBytes, err := json.Marshal(matchLabel{Open: true, Game: "hearts", Phase: string(domain.PhaseWaiting)})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	userID := presence.GetUserId()
	gameState := matchState.Engine.State()

	if gameState.Phase == domain.PhaseWaiting {
		if matchState.Engine.HasPlayer(userID) || !gameState.IsFull() {
			return matchState, true, ""
		}
		return matchState, false, "match full"
	}

	// Mid-game joins are reserved for seated players returning with a grant.
	if !matchState.Engine.HasPlayer(userID) {
		return matchState, false, "match in progress"
	}
	token := metadata["rejoin_token"]
	if token == "" {
		return matchState, false, "rejoin token required"
	}
	tokenUser, tokenMatch, err := matchState.Tokens.ValidateToken(token)
	if err != nil || tokenUser != userID || tokenMatch != matchState.MatchID {
		logger.Warn("MatchJoinAttempt: Rejected rejoin for %s: %v", userID, err)
		return matchState, false, "rejoin token invalid"
	}
	return matchState, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		matchState.Presences[userID] = p
		matchState.EmptySince = 0

		if matchState.Engine.HasPlayer(userID) {
			matchState.Engine.ReconnectPlayer(userID)
			logger.Info("MatchJoin: Player %s reclaimed their seat.", userID)
			continue
		}

		seat := -1
		for i, occupant := range matchState.Seats {
			if occupant == "" {
				seat = i
				break
			}
		}
		if seat == -1 {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", userID)
			continue
		}

		name := p.GetUsername()
		if profile, err := matchState.Profiles.GetProfile(ctx, userID); err != nil {
			logger.Warn("MatchJoin: Could not resolve profile for %s: %v", userID, err)
		} else if profile.DisplayName != "" {
			name = profile.DisplayName
		} else if profile.Username != "" {
			name = profile.Username
		}

		if !matchState.Engine.AddPlayer(app.Profile{ID: userID, Name: name}) {
			logger.Warn("MatchJoin: Engine refused to seat %s.", userID)
			continue
		}
		matchState.Seats[seat] = userID
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.flush(ctx, matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave pauses the game for mid-hand departures. The seat, hand and
// score stay reserved; the leaver can return with a rejoin token.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		delete(matchState.Presences, userID)
		matchState.Engine.RemovePlayer(userID)
		logger.Debug("MatchLeave: User %s disconnected.", userID)
	}

	if len(matchState.Presences) == 0 {
		if matchState.Engine.State().Phase == domain.PhaseWaiting {
			logger.Info("MatchLeave: Terminating empty lobby.")
			return nil
		}
		if matchState.EmptySince == 0 {
			matchState.EmptySince = matchState.Tick
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.flush(ctx, matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick
	gameState := matchState.Engine.State()

	// A paused match with nobody connected is eventually abandoned.
	if matchState.EmptySince != 0 && tick-matchState.EmptySince >= abandonAfterTicks {
		logger.Info("MatchLoop: Abandoning match %s after %d empty ticks.", matchState.MatchID, abandonAfterTicks)
		matchState.Engine.AbandonGame()
		return nil
	}

	paused := gameState.Status == domain.StatusPaused

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg)
		case OpExchangeCards:
			if paused {
				mh.sendError(matchState, dispatcher, logger, msg.GetUserId(), 409, "game is paused")
				continue
			}
			mh.handleExchangeCards(matchState, dispatcher, logger, msg)
		case OpPlayCard:
			if paused {
				mh.sendError(matchState, dispatcher, logger, msg.GetUserId(), 409, "game is paused")
				continue
			}
			mh.handlePlayCard(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if !paused {
		if matchState.BotsEnabled {
			mh.processBots(matchState, dispatcher, logger)
		}
		mh.enforceTurnDeadline(matchState, logger)
	}

	mh.flush(ctx, matchState, dispatcher, logger)

	if matchState.Engine.State().Phase != matchState.LastPhase {
		matchState.LastPhase = matchState.Engine.State().Phase
		mh.updateLabel(matchState, dispatcher, logger)
	}

	if matchState.Engine.State().Status == domain.StatusFinished {
		logger.Info("MatchLoop: Game finished, terminating match %s.", matchState.MatchID)
		return nil
	}

	return matchState
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	ownerSeat := state.findFirstHumanSeat()
	if ownerSeat < 0 || state.Seats[ownerSeat] != senderID {
		logger.Warn("StartGame: User %s tried to start the game but is not the owner.", senderID)
		mh.sendError(state, dispatcher, logger, senderID, 403, "only the match owner can start the game")
		return
	}

	if !state.Engine.StartGame() {
		logger.Warn("StartGame: Table not ready (%d/%d seats).", domain.MaxPlayers-state.openSeatCount(), domain.MaxPlayers)
		mh.sendError(state, dispatcher, logger, senderID, 400, "table is not ready to start")
		return
	}

	mh.updateLabel(state, dispatcher, logger)
	logger.Info("StartGame: Game started by %s.", senderID)
}

func (mh *matchHandler) handleExchangeCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	var request exchangeCardsRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("ExchangeCards: Invalid payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "invalid exchange payload")
		return
	}

	if !state.Engine.ExchangeCards(senderID, request.CardIDs) {
		logger.Warn("ExchangeCards: Rejected selection %v from %s.", request.CardIDs, senderID)
		mh.sendError(state, dispatcher, logger, senderID, 400, "exchange selection rejected")
		return
	}
}

func (mh *matchHandler) handlePlayCard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	var request playCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("PlayCard: Invalid payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "invalid play payload")
		return
	}

	if !state.Engine.PlayCard(senderID, request.CardID) {
		logger.Warn("PlayCard: Rejected card %d from %s.", request.CardID, senderID)
		mh.sendError(state, dispatcher, logger, senderID, 400, "illegal move")
		return
	}
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	gameState := state.Engine.State()

	// 1. Auto-fill the lobby once a solo human has waited long enough.
	if gameState.Phase == domain.PhaseWaiting {
		if state.humanSeatCount() == 1 && state.openSeatCount() > 0 {
			if state.SoloHumanSince == 0 {
				state.SoloHumanSince = state.Tick
				logger.Debug("processBots: Solo player detected, starting auto-fill timer.")
			}
			if state.Tick-state.SoloHumanSince >= int64(state.BotAutoFillDelay) {
				mh.fillSeatsWithBots(state, dispatcher, logger)
				state.SoloHumanSince = 0
			}
		} else {
			state.SoloHumanSince = 0
		}
		return
	}

	// 2. Bots submit their exchange selections immediately.
	if gameState.Phase == domain.PhaseExchanging {
		for botID, agent := range state.Bots {
			p, ok := gameState.Player(botID)
			if !ok || p.HasExchanged {
				continue
			}
			cardIDs, err := agent.Exchange(gameState)
			if err != nil {
				logger.Error("processBots: Bot %s failed to pick an exchange: %v", botID, err)
				continue
			}
			if !state.Engine.ExchangeCards(botID, cardIDs) {
				logger.Error("processBots: Engine rejected exchange %v from bot %s.", cardIDs, botID)
			}
		}
		return
	}

	// 3. Bot turns during play, after a small human-like delay.
	if gameState.Phase != domain.PhasePlaying {
		return
	}
	currentID := state.Engine.CurrentTurn()
	agent, isBot := state.Bots[currentID]
	if !isBot {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelay
		if state.BotMaxDelay > state.BotMinDelay {
			delay += state.rng.Intn(state.BotMaxDelay - state.BotMinDelay + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s will act at tick %d.", currentID, state.BotWaitUntil)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	move, err := agent.Play(gameState)
	if err != nil {
		logger.Error("processBots: Bot %s failed to calculate a move: %v", currentID, err)
		return
	}
	if !state.Engine.PlayCard(currentID, move.CardID) {
		logger.Error("processBots: Engine rejected card %d from bot %s.", move.CardID, currentID)
	}
}

func (mh *matchHandler) fillSeatsWithBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	added := false
	for i, seat := range state.Seats {
		if seat != "" {
			continue
		}
		identity := state.Pool.Identity(i)
		agent := bot.NewAgent(identity.UserID, identity.DisplayName)
		if !state.Engine.AddPlayer(app.Profile{ID: identity.UserID, Name: identity.DisplayName}) {
			logger.Error("fillSeatsWithBots: Engine refused bot %s.", identity.UserID)
			continue
		}
		state.Seats[i] = identity.UserID
		state.Bots[identity.UserID] = agent
		logger.Info("fillSeatsWithBots: Added bot %s (%s) to seat %d.", identity.DisplayName, identity.UserID, i)
		added = true
	}
	if added {
		mh.updateLabel(state, dispatcher, logger)
		mh.broadcastSnapshot(state, dispatcher, logger)
	}
}

// enforceTurnDeadline plays a reasonable card on behalf of a human who has
// stalled past the configured turn duration, keeping the table moving.
func (mh *matchHandler) enforceTurnDeadline(state *MatchState, logger runtime.Logger) {
	if state.TurnDuration <= 0 {
		return
	}
	gameState := state.Engine.State()
	if gameState.Phase != domain.PhasePlaying {
		state.LastTurn = ""
		return
	}

	currentID := state.Engine.CurrentTurn()
	if currentID != state.LastTurn {
		state.LastTurn = currentID
		state.TurnDeadline = state.Tick + int64(state.TurnDuration)
		return
	}
	if state.Tick < state.TurnDeadline {
		return
	}
	if _, isBot := state.Bots[currentID]; isBot {
		return
	}

	p, ok := gameState.Player(currentID)
	if !ok {
		return
	}
	strategy := &bot.RuleBot{}
	move, err := strategy.ChoosePlay(gameState, p)
	if err != nil {
		logger.Error("enforceTurnDeadline: No forced move for %s: %v", currentID, err)
		return
	}
	logger.Info("enforceTurnDeadline: Forcing card %d for stalled player %s.", move.CardID, currentID)
	if !state.Engine.PlayCard(currentID, move.CardID) {
		logger.Error("enforceTurnDeadline: Engine rejected forced card %d for %s.", move.CardID, currentID)
	}
}

// flush delivers queued broadcasts and persists settled hands and games.
func (mh *matchHandler) flush(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for _, msg := range state.outbox {
		data, err := json.Marshal(msg.payload)
		if err != nil {
			logger.Error("flush: Failed to marshal payload for op %d: %v", msg.opCode, err)
			continue
		}

		var recipients []runtime.Presence
		if len(msg.recipients) > 0 {
			for _, userID := range msg.recipients {
				if p, ok := state.Presences[userID]; ok {
					recipients = append(recipients, p)
				}
			}
			// Targeted messages with no connected recipient (bots,
			// disconnected players) must not leak to everyone else.
			if len(recipients) == 0 {
				continue
			}
		}

		if err := dispatcher.BroadcastMessage(msg.opCode, data, recipients, nil, true); err != nil {
			logger.Error("flush: Broadcast failed for op %d: %v", msg.opCode, err)
		}
	}
	state.outbox = nil

	for _, record := range state.pendingHands {
		if err := state.Recorder.RecordHand(ctx, state.MatchID, record); err != nil {
			logger.Error("flush: Failed to record hand %d: %v", record.HandNumber, err)
		}
	}
	state.pendingHands = nil

	if state.pendingGame != nil {
		if err := state.Recorder.RecordGame(ctx, state.MatchID, *state.pendingGame); err != nil {
			logger.Error("flush: Failed to record game: %v", err)
		}
		state.pendingGame = nil
	}
}

func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	gameState := state.Engine.State()

	players := make([]playerSnapshot, 0, domain.MaxPlayers)
	for _, p := range state.Engine.Players() {
		_, connected := state.Presences[p.ID]
		players = append(players, playerSnapshot{
			PlayerID:       p.ID,
			Name:           p.Name,
			Position:       string(p.Position),
			CardsRemaining: len(p.Hand),
			Score:          p.TotalScore,
			HasExchanged:   p.HasExchanged,
			IsBot:          state.isBotUserID(p.ID),
			Connected:      connected || state.isBotUserID(p.ID),
		})
	}

	snapshot := matchSnapshot{
		Phase:        string(gameState.Phase),
		Status:       string(gameState.Status),
		HandNumber:   gameState.HandNumber,
		TrickNumber:  gameState.TrickNumber,
		CurrentTurn:  gameState.CurrentTurn,
		HeartsBroken: gameState.HeartsBroken,
		Direction:    string(gameState.Direction),
		Players:      players,
		Scores:       state.Engine.Scores(),
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastSnapshot: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(OpMatchSnapshot, data, nil, nil, true); err != nil {
		logger.Error("broadcastSnapshot: Broadcast failed: %v", err)
	}
}

// sendError queues a targeted error event for one user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	if _, ok := state.Presences[userID]; !ok {
		logger.Warn("sendError: Cannot reach %s, presence not found.", userID)
		return
	}
	state.queue(OpGameError, gameErrorMessage{Code: code, Message: message}, []string{userID})
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	gameState := state.Engine.State()
	label := matchLabel{
		Open:  gameState.Phase == domain.PhaseWaiting && !gameState.IsFull(),
		Game:  "hearts",
		Phase: string(gameState.Phase),
	}
	labelBytes, err := json.Marshal(label)
	if err != nil {
		logger.Error("updateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d seconds grace.", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
