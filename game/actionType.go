package game

import "fmt"

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	SelectTerritoryAction ActionType = iota
	DeployTroopAction
	AttackTerritoryAction
	EndTurnAction
	ResetGameAction
	SelectCardAction
	UndoAction
	RedoAction
)

var actionNames = map[ActionType]string{
	SelectTerritoryAction: "SELECT_TERRITORY",
	DeployTroopAction:     "DEPLOY_TROOP",
	AttackTerritoryAction: "ATTACK_TERRITORY",
	EndTurnAction:         "END_TURN",
	ResetGameAction:       "RESET_GAME",
	SelectCardAction:      "SELECT_CARD",
	UndoAction:            "UNDO",
	RedoAction:            "REDO",
}

func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ActionType(%d)", int(t))
}

func (t ActionType) MarshalText() ([]byte, error) {
	if _, ok := actionNames[t]; !ok {
		return nil, fmt.Errorf("unknown action type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *ActionType) UnmarshalText(text []byte) error {
	for at, name := range actionNames {
		if name == string(text) {
			*t = at
			return nil
		}
	}
	return fmt.Errorf("unknown action type %q", text)
}

// Action is one player input. Only the fields relevant to Type are read.
type Action struct {
	Type         ActionType `json:"type"`
	TerritoryID  int        `json:"territoryId,omitempty"`
	FromID       int        `json:"fromId,omitempty"`
	ToID         int        `json:"toId,omitempty"`
	PlayerCount  int        `json:"playerCount,omitempty"`
	CardSelected bool       `json:"cardSelected,omitempty"`
}

func SelectTerritory(id int) Action {
	return Action{Type: SelectTerritoryAction, TerritoryID: id}
}

func DeployTroop(id int) Action {
	return Action{Type: DeployTroopAction, TerritoryID: id}
}

func AttackTerritory(fromID, toID int) Action {
	return Action{Type: AttackTerritoryAction, FromID: fromID, ToID: toID}
}

func EndTurn() Action {
	return Action{Type: EndTurnAction}
}

func ResetGame(playerCount int) Action {
	return Action{Type: ResetGameAction, PlayerCount: playerCount}
}

func SelectCard(selected bool) Action {
	return Action{Type: SelectCardAction, CardSelected: selected}
}

func Undo() Action {
	return Action{Type: UndoAction}
}

func Redo() Action {
	return Action{Type: RedoAction}
}

// IsStochastic reports whether applying the action draws from the random source.
func (a Action) IsStochastic() bool {
	return a.Type == AttackTerritoryAction || a.Type == ResetGameAction
}

// IsNavigation reports whether the action moves through history instead of changing the game.
func (a Action) IsNavigation() bool {
	return a.Type == UndoAction || a.Type == RedoAction
}
