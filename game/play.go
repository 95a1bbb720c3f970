package game

import "fmt"

// Play applies one action and returns the resulting state. The receiver is
// never modified. Invalid actions are not errors: they return the same
// state with an explanatory Message.
//
// Undo and Redo need the game history and are handled by the engine; Play
// leaves the state untouched for them.
func (gs GameState) Play(action Action, r Random) *GameState {
	switch action.Type {
	case SelectTerritoryAction:
		return gs.selectTerritory(action.TerritoryID)
	case DeployTroopAction:
		return gs.deployTroop(action.TerritoryID)
	case AttackTerritoryAction:
		return gs.attackTerritory(action.FromID, action.ToID, r)
	case EndTurnAction:
		return gs.endTurn()
	case ResetGameAction:
		return gs.resetGame(action.PlayerCount, r)
	case SelectCardAction:
		out := gs.Copy()
		out.CardSelected = action.CardSelected
		return out
	case UndoAction, RedoAction:
		return gs.Copy()
	default:
		return gs.withMessage("Unknown action %s", action.Type)
	}
}

func (gs GameState) selectTerritory(id int) *GameState {
	territory, ok := gs.Territory(id)
	if !ok {
		return gs.withMessage("Territory %d does not exist", id)
	}
	current := gs.CurrentPlayer()

	switch gs.Phase {
	case DeployPhase:
		if territory.Owner != current.ID {
			return gs.withMessage("You can only deploy troops to your own territories")
		}
		out := gs.withMessage("Deploy a troop to this territory")
		out.Selected = territory.ID
		return out

	case AttackPhase:
		if gs.Selected == NoSelection {
			if territory.Owner != current.ID {
				return gs.withMessage("You can only attack from your own territories")
			}
			if territory.Troops < 2 {
				return gs.withMessage("You need at least 2 troops to attack")
			}
			out := gs.withMessage("Select an enemy territory to attack")
			out.Selected = territory.ID
			return out
		}

		source, ok := gs.Territory(gs.Selected)
		out := gs.Copy()
		out.Selected = NoSelection
		switch {
		case !ok:
		case territory.ID == source.ID:
			out.Message = fmt.Sprintf("%s's turn - Select territory to attack from", current.Name)
		case territory.Owner == current.ID:
			out.Message = "You cannot attack your own territories"
		case !Adjacent(source, territory):
			out.Message = "You can only attack adjacent territories"
		}
		return out

	default:
		return gs.withMessage("The game is over")
	}
}

func (gs GameState) deployTroop(id int) *GameState {
	if gs.Phase != DeployPhase {
		return gs.withMessage("Troops can only be deployed at the start of your turn")
	}
	territory, ok := gs.Territory(id)
	if !ok {
		return gs.withMessage("Territory %d does not exist", id)
	}
	current := gs.CurrentPlayer()
	if territory.Owner != current.ID {
		return gs.withMessage("You can only deploy troops to your own territories")
	}

	out := gs.Copy()
	troops := gs.Rules.Reinforcement()
	if gs.CardSelected {
		out.Players.Update(current.ID, func(p *Player) {
			if value, rest, ok := DrawCard(p.Cards); ok {
				troops = value
				p.Cards = rest
			}
		})
	}

	out.Territories[id].Troops += troops
	out.CardSelected = false
	out.Selected = NoSelection
	out.Phase = AttackPhase
	out.Message = fmt.Sprintf("%s's turn - Select territory to attack from or end turn", current.Name)
	return out
}

func (gs GameState) attackTerritory(fromID, toID int, r Random) *GameState {
	if gs.Phase != AttackPhase {
		return gs.withMessage("You can only attack during the attack phase")
	}
	from, ok := gs.Territory(fromID)
	if !ok {
		return gs.withMessage("Territory %d does not exist", fromID)
	}
	to, ok := gs.Territory(toID)
	if !ok {
		return gs.withMessage("Territory %d does not exist", toID)
	}
	current := gs.CurrentPlayer()

	if from.Owner != current.ID {
		return gs.withMessage("You can only attack from your own territories")
	}
	if to.Owner == current.ID {
		out := gs.Copy()
		out.Selected = to.ID
		return out
	}
	if from.Troops < 2 {
		return gs.withMessage("You need at least 2 troops to attack")
	}
	if !Adjacent(from, to) {
		return gs.withMessage("You can only attack adjacent territories")
	}

	outcome := ResolveAttack(r, from.Troops, to.Troops)

	out := gs.Copy()
	out.Selected = NoSelection
	out.Territories[fromID].Troops = outcome.AttackerTroops
	out.Territories[toID].Troops = outcome.DefenderTroops
	if outcome.Conquered {
		out.Territories[toID].Owner = current.ID
	}
	out.Players.Recount(out.Territories)

	if !outcome.Conquered {
		out.Message = fmt.Sprintf("Attack failed! Lost troops attacking [%d,%d]", to.Row, to.Col)
		return out
	}

	if winner := out.CheckWinner(); winner != NoPlayer {
		p, _ := out.Players.Get(winner)
		out.Winner = winner
		out.Phase = GameOverPhase
		out.Message = fmt.Sprintf("%s has conquered the map and won the game!", p.Name)
		return out
	}
	out.Message = fmt.Sprintf("Attack successful! Conquered territory at [%d,%d]", to.Row, to.Col)
	return out
}

func (gs GameState) endTurn() *GameState {
	switch gs.Phase {
	case DeployPhase:
		return gs.withMessage("Deploy a troop before ending your turn")
	case GameOverPhase:
		return gs.withMessage("The game is over")
	}

	out := gs.Copy()
	out.Selected = NoSelection
	next, ok := out.Players.Rotate()
	if !ok {
		out.Phase = GameOverPhase
		out.Winner = NoPlayer
		out.Message = "All players have been eliminated. Game over!"
		return out
	}
	out.Phase = DeployPhase
	out.Message = fmt.Sprintf("%s's turn - Deploy a troop", next.Name)
	return out
}

func (gs GameState) resetGame(playerCount int, r Random) *GameState {
	rules := gs.Rules
	if rules == nil {
		rules = NewStandardRules()
	}
	fresh, err := NewGameState(playerCount, rules, r)
	if err != nil {
		return gs.withMessage("A game needs between %d and %d players", rules.MinPlayers(), rules.MaxPlayers())
	}
	return fresh
}
