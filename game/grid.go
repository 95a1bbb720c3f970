package game

// Territory is one grid cell and the unit of ownership.
type Territory struct {
	ID     int      `json:"id"`
	Owner  PlayerID `json:"owner"`
	Troops int      `json:"troops"`
	Row    int      `json:"row"`
	Col    int      `json:"col"`
}

// NewTerritories builds a size×size grid indexed by ID (row*size+col). Cells
// are dealt to players round-robin in a random order so every player starts
// with an equal share, give or take one, and a single troop on each.
func NewTerritories(size, playerCount int, r Random) []Territory {
	territories := make([]Territory, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			territories = append(territories, Territory{
				ID:  row*size + col,
				Row: row,
				Col: col,
			})
		}
	}

	order := make([]int, len(territories))
	for i := range order {
		order[i] = i
	}
	r.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	for i, id := range order {
		territories[id].Owner = PlayerID(i%playerCount + 1)
		territories[id].Troops = 1
	}
	return territories
}

// Adjacent reports whether two territories touch, diagonals included. A
// territory is adjacent to itself; callers that forbid self-targeting must
// check that separately.
func Adjacent(t1, t2 Territory) bool {
	return abs(t1.Row-t2.Row) <= 1 && abs(t1.Col-t2.Col) <= 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
