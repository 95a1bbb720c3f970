package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// In every two-player test state Red owns the even columns and Green the odd ones.

func TestNewGameState(t *testing.T) {
	t.Run("deals a fresh game", func(t *testing.T) {
		gs := newTestState(t, 2)

		require.Equal(t, DeployPhase, gs.Phase)
		require.Equal(t, NoSelection, gs.Selected)
		require.Equal(t, NoPlayer, gs.Winner)
		require.Equal(t, PlayerID(1), gs.Player())
		require.Equal(t, "Red's turn - Deploy a troop", gs.Message)
		require.Len(t, gs.Territories, 36)
		for _, p := range gs.Players.Players() {
			require.Equal(t, 18, p.Territories)
			require.Equal(t, []int{1, 2, 3, 5, 8}, p.Cards)
		}
	})

	t.Run("rejects unsupported player counts", func(t *testing.T) {
		for _, n := range []int{0, 1, 5} {
			_, err := NewGameState(n, NewStandardRules(), &mockRandom{})
			require.ErrorIs(t, err, ErrPlayerCount, "%d players should be rejected", n)
		}
	})
}

func TestPlayDoesNotMutate(t *testing.T) {
	gs := newTestState(t, 2)
	before := gs.Copy()

	gs.Play(DeployTroop(0), &mockRandom{})
	gs.Play(SelectCard(true), &mockRandom{})
	inAttack(gs).Play(AttackTerritory(0, 1), &mockRandom{})

	require.Equal(t, before, gs, "Play should never change its receiver")
}

func TestSelectTerritory(t *testing.T) {
	gs := newTestState(t, 2)

	t.Run("selecting own territory to deploy", func(t *testing.T) {
		got := gs.Play(SelectTerritory(0), &mockRandom{})

		require.Equal(t, 0, got.Selected)
		require.Equal(t, "Deploy a troop to this territory", got.Message)
	})

	t.Run("selecting an enemy territory to deploy", func(t *testing.T) {
		got := gs.Play(SelectTerritory(1), &mockRandom{})

		require.Equal(t, gs.Hash(), got.Hash(), "Rejected selection should not change the game")
		require.Equal(t, "You can only deploy troops to your own territories", got.Message)
	})

	t.Run("selecting a missing territory", func(t *testing.T) {
		got := gs.Play(SelectTerritory(99), &mockRandom{})

		require.Equal(t, gs.Hash(), got.Hash())
		require.Equal(t, "Territory 99 does not exist", got.Message)
	})

	attack := inAttack(gs)
	attack.Territories[0].Troops = 2

	t.Run("selecting an attack source", func(t *testing.T) {
		got := attack.Play(SelectTerritory(0), &mockRandom{})
		require.Equal(t, 0, got.Selected)
		require.Equal(t, "Select an enemy territory to attack", got.Message)

		got = attack.Play(SelectTerritory(2), &mockRandom{})
		require.Equal(t, NoSelection, got.Selected)
		require.Equal(t, "You need at least 2 troops to attack", got.Message)

		got = attack.Play(SelectTerritory(1), &mockRandom{})
		require.Equal(t, NoSelection, got.Selected)
		require.Equal(t, "You can only attack from your own territories", got.Message)
	})

	t.Run("second selection clears the source", func(t *testing.T) {
		selected := attack.Play(SelectTerritory(0), &mockRandom{})

		got := selected.Play(SelectTerritory(0), &mockRandom{})
		require.Equal(t, NoSelection, got.Selected)
		require.Equal(t, "Red's turn - Select territory to attack from", got.Message)

		got = selected.Play(SelectTerritory(2), &mockRandom{})
		require.Equal(t, NoSelection, got.Selected)
		require.Equal(t, "You cannot attack your own territories", got.Message)

		got = selected.Play(SelectTerritory(3), &mockRandom{})
		require.Equal(t, NoSelection, got.Selected)
		require.Equal(t, "You can only attack adjacent territories", got.Message)

		got = selected.Play(SelectTerritory(1), &mockRandom{})
		require.Equal(t, NoSelection, got.Selected)
	})
}

func TestDeployTroop(t *testing.T) {
	gs := newTestState(t, 2)

	t.Run("deploying the standard reinforcement", func(t *testing.T) {
		got := gs.Play(DeployTroop(0), &mockRandom{})

		require.Equal(t, 2, got.Territories[0].Troops)
		require.Equal(t, AttackPhase, got.Phase)
		require.Equal(t, NoSelection, got.Selected)
		require.Equal(t, PlayerID(1), got.Player(), "Deploying should not end the turn")
		require.Equal(t, "Red's turn - Select territory to attack from or end turn", got.Message)
	})

	t.Run("deploying a card", func(t *testing.T) {
		withCard := gs.Play(SelectCard(true), &mockRandom{})
		require.True(t, withCard.CardSelected)

		got := withCard.Play(DeployTroop(0), &mockRandom{})

		require.Equal(t, 9, got.Territories[0].Troops, "Top card should add 8 troops")
		require.False(t, got.CardSelected)
		require.Equal(t, []int{1, 2, 3, 5}, got.CurrentPlayer().Cards)
	})

	t.Run("deploying a card from an empty hand", func(t *testing.T) {
		empty := gs.Play(SelectCard(true), &mockRandom{})
		empty.Players.Update(1, func(p *Player) { p.Cards = nil })

		got := empty.Play(DeployTroop(0), &mockRandom{})

		require.Equal(t, 2, got.Territories[0].Troops, "Empty hand should fall back to one troop")
		require.Equal(t, AttackPhase, got.Phase)
	})

	t.Run("deploying to an enemy territory", func(t *testing.T) {
		got := gs.Play(DeployTroop(1), &mockRandom{})

		require.Equal(t, gs.Hash(), got.Hash())
		require.Equal(t, "You can only deploy troops to your own territories", got.Message)
	})

	t.Run("deploying twice in a turn", func(t *testing.T) {
		deployed := gs.Play(DeployTroop(0), &mockRandom{})
		got := deployed.Play(DeployTroop(0), &mockRandom{})

		require.Equal(t, deployed.Hash(), got.Hash())
		require.Equal(t, "Troops can only be deployed at the start of your turn", got.Message)
	})
}

func TestAttackTerritory(t *testing.T) {
	gs := newTestState(t, 2).Play(DeployTroop(0), &mockRandom{})

	t.Run("successful attack", func(t *testing.T) {
		got := gs.Play(AttackTerritory(0, 1), &mockRandom{floats: []float64{0.9, 0.1}})

		require.Equal(t, PlayerID(1), got.Territories[1].Owner)
		require.Equal(t, 1, got.Territories[0].Troops)
		require.Equal(t, 1, got.Territories[1].Troops)
		require.Equal(t, "Attack successful! Conquered territory at [0,1]", got.Message)
		red, _ := got.Players.Get(1)
		green, _ := got.Players.Get(2)
		require.Equal(t, 19, red.Territories)
		require.Equal(t, 17, green.Territories)
		require.Equal(t, AttackPhase, got.Phase)
	})

	t.Run("failed attack", func(t *testing.T) {
		got := gs.Play(AttackTerritory(0, 1), &mockRandom{floats: []float64{0.1, 0.9}})

		require.Equal(t, PlayerID(2), got.Territories[1].Owner)
		require.Equal(t, 1, got.Territories[0].Troops)
		require.Equal(t, 1, got.Territories[1].Troops)
		require.Equal(t, "Attack failed! Lost troops attacking [0,1]", got.Message)
	})

	t.Run("attack clears the selection", func(t *testing.T) {
		selected := gs.Play(SelectTerritory(0), &mockRandom{})
		got := selected.Play(AttackTerritory(0, 1), &mockRandom{floats: []float64{0.1, 0.9}})

		require.Equal(t, NoSelection, got.Selected)
	})

	t.Run("targeting own territory moves the selection", func(t *testing.T) {
		got := gs.Play(AttackTerritory(0, 2), &mockRandom{})

		require.Equal(t, 2, got.Selected)
		require.Equal(t, gs.Territories, got.Territories)
	})

	t.Run("invalid attacks", func(t *testing.T) {
		cases := []struct {
			name    string
			state   *GameState
			action  Action
			message string
		}{
			{"too few troops", gs, AttackTerritory(2, 1), "You need at least 2 troops to attack"},
			{"not adjacent", gs, AttackTerritory(0, 3), "You can only attack adjacent territories"},
			{"enemy source", gs, AttackTerritory(1, 0), "You can only attack from your own territories"},
			{"missing target", gs, AttackTerritory(0, 36), "Territory 36 does not exist"},
			{"deploy phase", newTestState(t, 2), AttackTerritory(0, 1), "You can only attack during the attack phase"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got := tc.state.Play(tc.action, &mockRandom{floats: []float64{0.9, 0.1}})

				require.Equal(t, tc.state.Hash(), got.Hash())
				require.Equal(t, tc.message, got.Message)
			})
		}
	})
}

func TestAttackTargets(t *testing.T) {
	gs := newTestState(t, 2)
	require.Empty(t, gs.AttackTargets(0), "No targets outside the attack phase")

	deployed := gs.Play(DeployTroop(0), &mockRandom{})
	require.Equal(t, []int{1, 7}, deployed.AttackTargets(0))
	require.Empty(t, deployed.AttackTargets(2), "A single troop cannot attack")
	require.Empty(t, deployed.AttackTargets(1), "Enemy territories are not sources")
}

func TestWinning(t *testing.T) {
	t.Run("reaching the territory threshold", func(t *testing.T) {
		for _, players := range []int{2, 3, 4} {
			t.Run(fmt.Sprintf("%d players", players), func(t *testing.T) {
				gs := withOwners(newTestState(t, players), func(id int) PlayerID {
					if id <= 25 {
						return 1
					}
					return PlayerID(2 + id%(players-1))
				})
				gs = inAttack(gs)
				gs.Territories[25].Troops = 5
				require.Equal(t, NoPlayer, gs.CheckWinner(), "26 of 36 territories is not enough")

				got := gs.Play(AttackTerritory(25, 26), &mockRandom{floats: []float64{0.9, 0.1}})

				red, _ := got.Players.Get(1)
				require.Equal(t, 27, red.Territories)
				require.Equal(t, GameOverPhase, got.Phase)
				require.Equal(t, PlayerID(1), got.Winner)
				require.Equal(t, "Red has conquered the map and won the game!", got.Message)
			})
		}
	})

	t.Run("eliminating the last opponent", func(t *testing.T) {
		gs := withOwners(newTestState(t, 2), func(id int) PlayerID {
			if id == 35 {
				return 2
			}
			return 1
		})
		gs = inAttack(gs)
		gs.Territories[28].Troops = 3

		got := gs.Play(AttackTerritory(28, 35), &mockRandom{floats: []float64{0.9, 0.1}})

		green, _ := got.Players.Get(2)
		require.True(t, green.Eliminated)
		require.Equal(t, PlayerID(1), got.Winner)
		require.True(t, got.IsOver())
	})

	t.Run("eliminated players lose their turns", func(t *testing.T) {
		gs := withOwners(newTestState(t, 3), func(id int) PlayerID {
			switch {
			case id == 35:
				return 3
			case id < 16 || id == 29:
				return 1
			default:
				return 2
			}
		})
		gs = inAttack(gs)
		gs.Territories[29].Troops = 4

		got := gs.Play(AttackTerritory(29, 35), &mockRandom{floats: []float64{0.9, 0.1}})
		blue, _ := got.Players.Get(3)
		require.True(t, blue.Eliminated)
		require.Equal(t, NoPlayer, got.Winner, "Two players remain below the threshold")
		require.Equal(t, AttackPhase, got.Phase)

		got = got.Play(EndTurn(), &mockRandom{})
		require.Equal(t, PlayerID(2), got.Player())
		got = got.Play(DeployTroop(16), &mockRandom{}).Play(EndTurn(), &mockRandom{})
		require.Equal(t, PlayerID(1), got.Player(), "Blue should be skipped")
	})

	t.Run("game over rejects play", func(t *testing.T) {
		over := newTestState(t, 2).Copy()
		over.Phase = GameOverPhase
		over.Winner = 1

		require.Equal(t, "The game is over", over.Play(SelectTerritory(0), &mockRandom{}).Message)
		require.Equal(t, "The game is over", over.Play(EndTurn(), &mockRandom{}).Message)
		require.Equal(t, "Troops can only be deployed at the start of your turn", over.Play(DeployTroop(0), &mockRandom{}).Message)
		require.Equal(t, "You can only attack during the attack phase", over.Play(AttackTerritory(0, 1), &mockRandom{}).Message)
		require.Equal(t, over.Hash(), over.Play(EndTurn(), &mockRandom{}).Hash())
	})
}

func TestEndTurn(t *testing.T) {
	gs := newTestState(t, 2)

	t.Run("ending the turn before deploying", func(t *testing.T) {
		got := gs.Play(EndTurn(), &mockRandom{})

		require.Equal(t, gs.Hash(), got.Hash())
		require.Equal(t, "Deploy a troop before ending your turn", got.Message)
	})

	t.Run("ending the turn passes to the next player", func(t *testing.T) {
		got := gs.Play(DeployTroop(0), &mockRandom{}).Play(EndTurn(), &mockRandom{})

		require.Equal(t, PlayerID(2), got.Player())
		require.Equal(t, DeployPhase, got.Phase)
		require.Equal(t, NoSelection, got.Selected)
		require.Equal(t, "Green's turn - Deploy a troop", got.Message)
	})

	t.Run("nobody left to play", func(t *testing.T) {
		stuck := inAttack(gs)
		stuck.Players = NewRegistry([]Player{{ID: 1, Eliminated: true}, {ID: 2, Eliminated: true}})

		got := stuck.Play(EndTurn(), &mockRandom{})

		require.Equal(t, GameOverPhase, got.Phase)
		require.Equal(t, NoPlayer, got.Winner)
		require.Equal(t, "All players have been eliminated. Game over!", got.Message)
	})
}

func TestResetGame(t *testing.T) {
	gs := newTestState(t, 2).Play(DeployTroop(0), &mockRandom{})

	t.Run("reset deals a new game", func(t *testing.T) {
		for _, players := range []int{2, 3, 4} {
			t.Run(fmt.Sprintf("%d players", players), func(t *testing.T) {
				got := gs.Play(ResetGame(players), &mockRandom{})

				require.Equal(t, players, got.Players.Len())
				require.Equal(t, DeployPhase, got.Phase)
				require.Equal(t, NoSelection, got.Selected)
				require.Equal(t, NoPlayer, got.Winner)
				require.Equal(t, PlayerID(1), got.Player())
				require.Equal(t, "Red's turn - Deploy a troop", got.Message)
				for _, territory := range got.Territories {
					require.Equal(t, 1, territory.Troops)
					require.GreaterOrEqual(t, int(territory.Owner), 1, "Every territory should have an owner")
					require.LessOrEqual(t, int(territory.Owner), players)
				}
				for _, p := range got.Players.Players() {
					require.False(t, p.Eliminated, "Player %d should start in the game", p.ID)
					require.Equal(t, 36/players, p.Territories)
				}
			})
		}
	})

	t.Run("reset with an unsupported player count", func(t *testing.T) {
		got := gs.Play(ResetGame(5), &mockRandom{})

		require.Equal(t, gs.Hash(), got.Hash())
		require.Equal(t, "A game needs between 2 and 4 players", got.Message)
	})
}

func TestHash(t *testing.T) {
	gs := newTestState(t, 2)

	relabelled := gs.Copy()
	relabelled.Message = "something else"
	require.Equal(t, gs.Hash(), relabelled.Hash(), "Message should not affect the hash")

	reinforced := gs.Copy()
	reinforced.Territories[0].Troops++
	require.NotEqual(t, gs.Hash(), reinforced.Hash())

	carded := gs.Copy()
	carded.CardSelected = true
	require.NotEqual(t, gs.Hash(), carded.Hash())
}
