package gamemaster

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"wargame/engine"
	"wargame/game"
	"wargame/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("game not found")

// EngineFactory deals a new game.
type EngineFactory func(playerCount int) (engine.Dispatcher, error)

// View is what a front end needs to draw one game.
type View struct {
	ID      string          `json:"id"`
	State   *game.GameState `json:"state"`
	CanUndo bool            `json:"canUndo"`
	CanRedo bool            `json:"canRedo"`
	Targets []int           `json:"targets"` // territories the selection can attack
	Created time.Time       `json:"created"`
	Updated time.Time       `json:"updated"`
}

type session struct {
	mu      sync.Mutex // serializes dispatch for one game
	id      string
	engine  engine.Dispatcher
	created time.Time
	updated time.Time
}

func (s *session) view() View {
	state := s.engine.State()
	var targets []int
	if state.Selected != game.NoSelection {
		targets = state.AttackTargets(state.Selected)
	}
	return View{
		ID:      s.id,
		State:   state,
		CanUndo: s.engine.CanUndo(),
		CanRedo: s.engine.CanRedo(),
		Targets: targets,
		Created: s.created,
		Updated: s.updated,
	}
}

// GameMaster keeps independent games in memory. Games share no state; each
// one is driven by its own engine.
type GameMaster struct {
	mu        sync.RWMutex
	games     map[string]*session
	newEngine EngineFactory
	logger    zerolog.Logger
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(factory EngineFactory, logger zerolog.Logger) *GameMaster {
	return &GameMaster{
		games:     make(map[string]*session),
		newEngine: factory,
		logger:    logger.With().Str("component", "gamemaster").Logger(),
	}
}

// Create deals a new game and registers it under a fresh ID.
func (gm *GameMaster) Create(playerCount int) (View, error) {
	eng, err := gm.newEngine(playerCount)
	if err != nil {
		return View{}, fmt.Errorf("create game: %w", err)
	}
	now := time.Now()
	s := &session{
		id:      uuid.NewString(),
		engine:  eng,
		created: now,
		updated: now,
	}

	// The view is taken before the session is reachable by other callers.
	view := s.view()

	gm.mu.Lock()
	gm.games[s.id] = s
	count := len(gm.games)
	gm.mu.Unlock()

	gm.logger.Info().Str("game", s.id).Int("players", playerCount).Int("games", count).Msg("game created")
	return view, nil
}

func (gm *GameMaster) lookup(id string) (*session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	s, ok := gm.games[id]
	if !ok {
		return nil, fmt.Errorf("game %s: %w", id, ErrNotFound)
	}
	return s, nil
}

func (gm *GameMaster) Get(id string) (View, error) {
	s, err := gm.lookup(id)
	if err != nil {
		return View{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

// Dispatch applies an action to one game.
func (gm *GameMaster) Dispatch(id string, action game.Action) (View, error) {
	s, err := gm.lookup(id)
	if err != nil {
		return View{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Dispatch(action)
	s.updated = time.Now()
	return s.view(), nil
}

// Click translates a click on a territory into an action and dispatches it.
func (gm *GameMaster) Click(id string, territoryID int) (View, error) {
	s, err := gm.lookup(id)
	if err != nil {
		return View{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	action := game.ClickAction(*s.engine.State(), territoryID)
	s.engine.Dispatch(action)
	s.updated = time.Now()
	return s.view(), nil
}

func (gm *GameMaster) Metrics(id string) (metrics.GameMetric, error) {
	s, err := gm.lookup(id)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Metrics(), nil
}

func (gm *GameMaster) Delete(id string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if _, ok := gm.games[id]; !ok {
		return fmt.Errorf("game %s: %w", id, ErrNotFound)
	}
	delete(gm.games, id)
	gm.logger.Info().Str("game", id).Msg("game deleted")
	return nil
}

// Len is the number of games in memory.
func (gm *GameMaster) Len() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
