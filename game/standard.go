package game

import (
	"math"
	"wargame/meta"

	"golang.org/x/exp/slices"
)

type StandardRules struct {
	Size              int
	Players           [2]int // min, max
	ReinforcementSize int
	WinRatio          float64
	Cards             []int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Size:              meta.GRID_SIZE,
		Players:           [2]int{meta.MIN_PLAYERS, meta.MAX_PLAYERS},
		ReinforcementSize: meta.REINFORCEMENT,
		WinRatio:          meta.WIN_RATIO,
		Cards:             slices.Clone(meta.CARD_VALUES),
	}
}

// WithGridSize returns a copy of the rules played on a size×size grid.
func (sr *StandardRules) WithGridSize(size int) *StandardRules {
	out := *sr
	out.Cards = slices.Clone(sr.Cards)
	if size > 0 {
		out.Size = size
	}
	return &out
}

func (sr *StandardRules) GridSize() int {
	return sr.Size
}

func (sr *StandardRules) MinPlayers() int {
	return sr.Players[0]
}

func (sr *StandardRules) MaxPlayers() int {
	return sr.Players[1]
}

func (sr *StandardRules) Reinforcement() int {
	return sr.ReinforcementSize
}

func (sr *StandardRules) WinThreshold(totalTerritories int) int {
	return int(math.Floor(float64(totalTerritories) * sr.WinRatio))
}

func (sr *StandardRules) CardValues() []int {
	return slices.Clone(sr.Cards)
}
