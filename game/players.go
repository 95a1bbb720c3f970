package game

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"
)

var playerNames = []string{"Red", "Green", "Blue", "Yellow"}

var playerColors = []string{"#FF5252", "#4CAF50", "#2196F3", "#FFC107"}

// Player is a plain value; ring order is kept by Registry.
type Player struct {
	ID          PlayerID `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Territories int      `json:"territories"`
	Eliminated  bool     `json:"eliminated"`
	Cards       []int    `json:"cards"`
}

// NewPlayers creates count players with default names and colors and a
// freshly dealt card hand each.
func NewPlayers(count int, cards []int, r Random) []Player {
	players := make([]Player, count)
	for i := range players {
		players[i] = Player{
			ID:    PlayerID(i + 1),
			Name:  defaultName(i),
			Color: defaultColor(i),
			Cards: DealHand(cards, r),
		}
	}
	return players
}

func defaultName(i int) string {
	if i < len(playerNames) {
		return playerNames[i]
	}
	return fmt.Sprintf("Player%d", i+1)
}

func defaultColor(i int) string {
	return playerColors[i%len(playerColors)]
}

// Registry is a fixed-size ring of players with a current position.
// Membership and order never change after construction.
type Registry struct {
	players []Player
	current int
}

func NewRegistry(players []Player) *Registry {
	return &Registry{players: clonePlayers(players)}
}

func clonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		p.Cards = slices.Clone(p.Cards)
		out[i] = p
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.players)
}

// Players returns a copy of the ring in order, starting from the first player.
func (r *Registry) Players() []Player {
	return clonePlayers(r.players)
}

// Find returns the first player matching pred.
func (r *Registry) Find(pred func(Player) bool) (Player, bool) {
	i := slices.IndexFunc(r.players, pred)
	if i < 0 {
		return Player{}, false
	}
	return r.players[i], true
}

// Get looks a player up by ID.
func (r *Registry) Get(id PlayerID) (Player, bool) {
	return r.Find(func(p Player) bool { return p.ID == id })
}

// Current returns the player whose turn it is. An empty registry yields the zero Player.
func (r *Registry) Current() Player {
	if len(r.players) == 0 {
		return Player{}
	}
	return r.players[r.current]
}

// SetCurrent moves the ring to the first player matching pred.
func (r *Registry) SetCurrent(pred func(Player) bool) bool {
	i := slices.IndexFunc(r.players, pred)
	if i < 0 {
		return false
	}
	r.current = i
	return true
}

// Next advances one step with wraparound and returns the new current player.
func (r *Registry) Next() Player {
	if len(r.players) == 0 {
		return Player{}
	}
	r.current = (r.current + 1) % len(r.players)
	return r.players[r.current]
}

// Rotate passes the turn to the next player that is still in the game. It
// scans at most one full lap; ok is false when every player is eliminated.
func (r *Registry) Rotate() (next Player, ok bool) {
	for range r.players {
		p := r.Next()
		if !p.Eliminated {
			return p, true
		}
	}
	return Player{}, false
}

// Recount recomputes every player's territory count and eliminated flag
// from scratch.
func (r *Registry) Recount(territories []Territory) {
	counts := make(map[PlayerID]int, len(r.players))
	for _, t := range territories {
		if t.Owner != NoPlayer {
			counts[t.Owner]++
		}
	}
	for i := range r.players {
		r.players[i].Territories = counts[r.players[i].ID]
		r.players[i].Eliminated = r.players[i].Territories == 0
	}
}

// Active returns the players that are not eliminated.
func (r *Registry) Active() []Player {
	var active []Player
	for _, p := range r.players {
		if !p.Eliminated {
			active = append(active, p)
		}
	}
	return active
}

// Update applies fn to the player with the given ID. Unknown IDs are ignored.
func (r *Registry) Update(id PlayerID, fn func(p *Player)) bool {
	i := slices.IndexFunc(r.players, func(p Player) bool { return p.ID == id })
	if i < 0 {
		return false
	}
	fn(&r.players[i])
	return true
}

func (r *Registry) Clone() *Registry {
	return &Registry{
		players: clonePlayers(r.players),
		current: r.current,
	}
}

type registryJSON struct {
	Players []Player `json:"players"`
	Current PlayerID `json:"current"`
}

func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(registryJSON{
		Players: r.players,
		Current: r.Current().ID,
	})
}

func (r *Registry) UnmarshalJSON(data []byte) error {
	var raw registryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.players = raw.Players
	r.current = 0
	r.SetCurrent(func(p Player) bool { return p.ID == raw.Current })
	return nil
}
