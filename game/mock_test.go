package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mockRandom replays scripted draws and never reorders anything, so an
// N-player game deals territory i to player i%N+1.
type mockRandom struct {
	floats []float64
}

func (m *mockRandom) Float64() float64 {
	if len(m.floats) == 0 {
		return 0.5
	}
	f := m.floats[0]
	m.floats = m.floats[1:]
	return f
}

func (m *mockRandom) Shuffle(n int, swap func(i, j int)) {}

func newTestState(t *testing.T, playerCount int) *GameState {
	t.Helper()
	gs, err := NewGameState(playerCount, NewStandardRules(), &mockRandom{})
	require.NoError(t, err)
	return gs
}

// withOwners reassigns every territory and recounts the players.
func withOwners(gs *GameState, owner func(id int) PlayerID) *GameState {
	out := gs.Copy()
	for i := range out.Territories {
		out.Territories[i].Owner = owner(i)
	}
	out.Players.Recount(out.Territories)
	return out
}

func inAttack(gs *GameState) *GameState {
	out := gs.Copy()
	out.Phase = AttackPhase
	out.Selected = NoSelection
	return out
}
