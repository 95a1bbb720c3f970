package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

type Phase int

const (
	DeployPhase Phase = iota
	AttackPhase
	GameOverPhase
)

var phaseNames = []string{"DEPLOY", "ATTACK", "GAME_OVER"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	i := slices.Index(phaseNames, string(text))
	if i < 0 {
		return fmt.Errorf("unknown phase %q", text)
	}
	*p = Phase(i)
	return nil
}

// GameState is the full state of one game. It is treated as a value: Play
// returns a new state and never mutates its receiver.
type GameState struct {
	Players      *Registry   `json:"players"`
	Territories  []Territory `json:"territories"` // indexed by territory ID
	Phase        Phase       `json:"phase"`
	Selected     int         `json:"selected"` // NoSelection when nothing is selected
	Winner       PlayerID    `json:"winner"`   // NoPlayer until the game is won
	Message      string      `json:"message"`
	CardSelected bool        `json:"cardSelected"`
	Rules        Rules       `json:"-"` // shared, never mutated
}

// NewGameState deals a fresh game for playerCount players.
func NewGameState(playerCount int, rules Rules, r Random) (*GameState, error) {
	if playerCount < rules.MinPlayers() || playerCount > rules.MaxPlayers() {
		return nil, fmt.Errorf("%d players, want %d to %d: %w",
			playerCount, rules.MinPlayers(), rules.MaxPlayers(), ErrPlayerCount)
	}

	players := NewPlayers(playerCount, rules.CardValues(), r)
	territories := NewTerritories(rules.GridSize(), playerCount, r)

	registry := NewRegistry(players)
	registry.Recount(territories)

	gs := &GameState{
		Players:     registry,
		Territories: territories,
		Phase:       DeployPhase,
		Selected:    NoSelection,
		Winner:      NoPlayer,
		Rules:       rules,
	}
	gs.Message = fmt.Sprintf("%s's turn - Deploy a troop", gs.CurrentPlayer().Name)
	return gs, nil
}

func (gs GameState) Copy() *GameState {
	players := gs.Players
	if players != nil {
		players = players.Clone()
	}
	return &GameState{
		Players:      players,
		Territories:  slices.Clone(gs.Territories),
		Phase:        gs.Phase,
		Selected:     gs.Selected,
		Winner:       gs.Winner,
		Message:      gs.Message,
		CardSelected: gs.CardSelected,
		Rules:        gs.Rules, // Rules are immutable
	}
}

// withMessage is the result of every rejected action: the same state with a new message.
func (gs GameState) withMessage(format string, args ...any) *GameState {
	out := gs.Copy()
	out.Message = fmt.Sprintf(format, args...)
	return out
}

// Territory looks up a territory by ID.
func (gs GameState) Territory(id int) (Territory, bool) {
	if id < 0 || id >= len(gs.Territories) {
		return Territory{}, false
	}
	return gs.Territories[id], true
}

// CurrentPlayer returns the player whose turn it is.
func (gs GameState) CurrentPlayer() Player {
	if gs.Players == nil {
		return Player{}
	}
	return gs.Players.Current()
}

// Player returns the identifier of the current player.
func (gs GameState) Player() PlayerID {
	return gs.CurrentPlayer().ID
}

// IsOver reports whether the game reached a terminal state.
func (gs GameState) IsOver() bool {
	return gs.Phase == GameOverPhase
}

// CheckWinner returns the winning player, or NoPlayer. A sole survivor wins
// before the territory threshold is considered.
func (gs GameState) CheckWinner() PlayerID {
	if gs.Players == nil {
		return NoPlayer
	}
	active := gs.Players.Active()
	if len(active) == 1 {
		return active[0].ID
	}

	threshold := gs.Rules.WinThreshold(len(gs.Territories))
	for _, p := range gs.Players.Players() {
		if p.Territories >= threshold {
			return p.ID
		}
	}
	return NoPlayer
}

// AttackTargets lists the enemy territories the given territory can attack
// right now. It is empty outside the attack phase or when the source cannot
// attack at all.
func (gs GameState) AttackTargets(fromID int) []int {
	from, ok := gs.Territory(fromID)
	if !ok || gs.Phase != AttackPhase || from.Owner != gs.Player() || from.Troops < 2 {
		return nil
	}
	var targets []int
	for _, t := range gs.Territories {
		if t.Owner != from.Owner && Adjacent(from, t) {
			targets = append(targets, t.ID)
		}
	}
	return targets
}

// Hash identifies the game-relevant content of a state. The message is not included.
func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Player()))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Phase))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Selected))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Winner))
	binary.Write(hasher, binary.LittleEndian, gs.CardSelected)

	for _, t := range gs.Territories {
		binary.Write(hasher, binary.LittleEndian, int64(t.Owner))
		binary.Write(hasher, binary.LittleEndian, int64(t.Troops))
	}

	if gs.Players != nil {
		for _, p := range gs.Players.players {
			binary.Write(hasher, binary.LittleEndian, int64(p.ID))
			binary.Write(hasher, binary.LittleEndian, int64(len(p.Cards)))
			for _, c := range p.Cards {
				binary.Write(hasher, binary.LittleEndian, int64(c))
			}
		}
	}

	return StateHash(hasher.Sum64())
}
