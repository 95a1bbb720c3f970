package game

import "golang.org/x/exp/slices"

// DealHand returns a shuffled copy of the reinforcement card values.
func DealHand(values []int, r Random) []int {
	hand := slices.Clone(values)
	r.Shuffle(len(hand), func(i, j int) {
		hand[i], hand[j] = hand[j], hand[i]
	})
	return hand
}

// DrawCard takes the top (last) card of a hand.
func DrawCard(hand []int) (value int, rest []int, ok bool) {
	if len(hand) == 0 {
		return 0, hand, false
	}
	last := len(hand) - 1
	return hand[last], hand[:last:last], true
}
