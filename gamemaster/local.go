package gamemaster

import (
	"sync/atomic"

	"wargame/engine"

	"github.com/rs/zerolog"
)

// LocalEngines returns a factory for in-process engines. With a non-zero
// seed every game gets its own reproducible source derived from it.
func LocalEngines(seed uint64, logger zerolog.Logger, options ...engine.Option) EngineFactory {
	var created atomic.Uint64
	return func(playerCount int) (engine.Dispatcher, error) {
		n := created.Add(1)
		opts := append([]engine.Option{
			engine.WithLogger(logger.With().Uint64("game_seq", n).Logger()),
			engine.WithMetrics(),
		}, options...)
		if seed != 0 {
			opts = append(opts, engine.WithSeed(seed+n))
		}
		eng, err := engine.New(playerCount, opts...)
		if err != nil {
			return nil, err
		}
		return eng, nil
	}
}
