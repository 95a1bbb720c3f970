package game

import "errors"

// PlayerID identifies a player. IDs are stable and run from 1 to the player count.
type PlayerID int

// NoPlayer is the zero PlayerID, used for "no owner" and "no winner".
const NoPlayer PlayerID = 0

// NoSelection marks that no territory is selected.
const NoSelection = -1

type StateHash uint64

// Random is the single source of nondeterminism in a game. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Random interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// ErrPlayerCount is returned when a game is created with an unsupported number of players.
var ErrPlayerCount = errors.New("unsupported player count")
