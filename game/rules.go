package game

type Rules interface {
	GridSize() int
	MinPlayers() int
	MaxPlayers() int
	// Reinforcement is the number of troops a deploy adds when no card is played.
	Reinforcement() int
	// WinThreshold is the territory count that wins the game outright.
	WinThreshold(totalTerritories int) int
	CardValues() []int
}
