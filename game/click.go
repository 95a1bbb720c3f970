package game

// ClickAction translates a click on a territory into the action a board
// front end should dispatch.
func ClickAction(gs GameState, territoryID int) Action {
	switch {
	case gs.Selected == NoSelection:
		return SelectTerritory(territoryID)
	case gs.Phase == DeployPhase && gs.Selected == territoryID:
		return DeployTroop(territoryID)
	case gs.Phase == AttackPhase && gs.Selected != territoryID:
		return AttackTerritory(gs.Selected, territoryID)
	default:
		return SelectTerritory(territoryID)
	}
}
