package engine

import (
	"fmt"
	"time"

	"wargame/game"
	"wargame/history"
	"wargame/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

// Engine owns one game: its current state, the undo/redo history and the
// random source used for dealing and combat. It is not safe for concurrent use.
type Engine struct {
	state   *game.GameState
	history *history.History[*game.GameState]
	rules   game.Rules
	random  game.Random
	logger  zerolog.Logger
	metrics metrics.Collector
}

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// WithSeed makes dealing and combat reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.random = rand.New(rand.NewSource(seed))
	}
}

func WithRandom(random game.Random) Option {
	return func(e *Engine) {
		if random != nil {
			e.random = random
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// New deals a game for playerCount players.
func New(playerCount int, options ...Option) (*Engine, error) {
	e := &Engine{ // Default values
		history: history.New[*game.GameState](),
		rules:   game.NewStandardRules(),
		logger:  log.Logger.With().Str("component", "engine").Logger(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.random == nil {
		e.random = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	state, err := game.NewGameState(playerCount, e.rules, e.random)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	e.state = state

	e.logger.Info().Int("players", playerCount).Msgf("player %d is starting", state.Player())
	return e, nil
}

// Dispatch applies one action. Undo and Redo restore recorded snapshots
// verbatim; a successful ResetGame starts a new history; every other action
// records the state it was applied to before changing it.
func (e *Engine) Dispatch(action game.Action) *game.GameState {
	before := e.state

	switch action.Type {
	case game.UndoAction:
		if snapshot, ok := e.history.Undo(e.state); ok {
			e.state = snapshot
			e.metrics.AddUndo()
			e.recordOutcome()
			e.logger.Debug().Int("cursor", e.history.Cursor()).Msg("undo")
		}
		return e.State()

	case game.RedoAction:
		if snapshot, ok := e.history.Redo(); ok {
			e.state = snapshot
			e.metrics.AddRedo()
			e.recordOutcome()
			e.logger.Debug().Int("cursor", e.history.Cursor()).Msg("redo")
		}
		return e.State()

	case game.ResetGameAction:
		if fresh, err := game.NewGameState(action.PlayerCount, e.rules, e.random); err == nil {
			e.history.Clear()
			e.state = fresh
			e.metrics.AddReset()
			e.logger.Info().Int("players", action.PlayerCount).Msgf("game reset, player %d is starting", fresh.Player())
			return e.State()
		}
	}

	e.history.Push(before)
	e.state = before.Play(action, e.random)
	e.observe(action, before, e.state)
	return e.State()
}

func (e *Engine) observe(action game.Action, before, after *game.GameState) {
	rejected := before.Hash() == after.Hash()
	e.metrics.AddAction(rejected)

	e.logger.Debug().
		Str("action", action.Type.String()).
		Str("phase", after.Phase.String()).
		Bool("rejected", rejected).
		Msg(after.Message)

	defender, _ := before.Territory(action.ToID)
	if action.Type == game.AttackTerritoryAction && !rejected && defender.Owner != before.Player() {
		to, _ := after.Territory(action.ToID)
		conquered := to.Owner == before.Player()
		e.metrics.AddAttack(conquered)
		e.logger.Debug().
			Int("from", action.FromID).
			Int("to", action.ToID).
			Bool("conquered", conquered).
			Msg("attack resolved")
	}

	if after.IsOver() && !before.IsOver() {
		e.metrics.SetWinner(int(after.Winner))
		e.logger.Info().Int("winner", int(after.Winner)).Msg(after.Message)
		return
	}
	if after.Player() != before.Player() {
		e.metrics.AddTurn()
		e.logger.Info().Msgf("player %d's turn", after.Player())
	}
}

// recordOutcome keeps the winner metric in step with a state reached by navigation.
func (e *Engine) recordOutcome() {
	if e.state.IsOver() {
		e.metrics.SetWinner(int(e.state.Winner))
		return
	}
	e.metrics.ClearWinner()
}

// State returns a copy of the current state.
func (e *Engine) State() *game.GameState {
	return e.state.Copy()
}

func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// HistoryLen is the number of recorded snapshots.
func (e *Engine) HistoryLen() int {
	return e.history.Len()
}

func (e *Engine) Metrics() metrics.GameMetric {
	return e.metrics.Complete()
}

func (e *Engine) Rules() game.Rules {
	return e.rules
}
