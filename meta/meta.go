// meta/meta.go
package meta

// GRID_SIZE is the width and height of the square territory grid.
const GRID_SIZE = 6

// MIN_PLAYERS and MAX_PLAYERS bound the player count of a game.
const MIN_PLAYERS = 2
const MAX_PLAYERS = 4

// DEFAULT_PLAYERS is used when a game is created without a player count.
const DEFAULT_PLAYERS = 2

// REINFORCEMENT is the number of troops deployed without a card.
const REINFORCEMENT = 1

// WIN_RATIO is the share of the grid a player must own to win outright.
const WIN_RATIO = 0.75

// CARD_VALUES are the reinforcement cards dealt to every player.
var CARD_VALUES = []int{1, 2, 3, 5, 8}
