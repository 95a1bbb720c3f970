package engine

import (
	"wargame/game"
	"wargame/metrics"
)

// Dispatcher applies actions to a single game, one at a time.
type Dispatcher interface {
	// Dispatch applies an action and returns the full replacement state
	Dispatch(action game.Action) *game.GameState
	State() *game.GameState
	CanUndo() bool
	CanRedo() bool
	Metrics() metrics.GameMetric
}
