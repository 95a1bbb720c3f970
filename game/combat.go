package game

// Outcome is the result of a single attack.
type Outcome struct {
	Conquered      bool
	AttackerTroops int // troops left on the attacking territory
	DefenderTroops int // troops left on the defending territory
}

// ResolveAttack settles one attack. Each side draws a uniform value scaled by
// its troop count and the attacker wins only on a strictly greater draw.
// A conquest splits the attacking army, the larger half staying behind; a
// repelled attack costs each side one troop but never empties the defender.
func ResolveAttack(r Random, attackerTroops, defenderTroops int) Outcome {
	attackerStrength := r.Float64() * float64(attackerTroops)
	defenderStrength := r.Float64() * float64(defenderTroops)

	if attackerStrength > defenderStrength {
		moved := attackerTroops / 2
		return Outcome{
			Conquered:      true,
			AttackerTroops: attackerTroops - moved,
			DefenderTroops: moved,
		}
	}
	return Outcome{
		Conquered:      false,
		AttackerTroops: attackerTroops - 1,
		DefenderTroops: max(defenderTroops-1, 1),
	}
}
