package game

// ActionType represents the type of order a player can give a unit.
type ActionType int

const (
	MoveAction ActionType = iota
	AttackAction
	ResupplyAction
	ReinforceAction
	UpgradeAction
	MountAction
	UnmountAction
	DisembarkAction
	PassAction
)

var actionNames = [...]string{
	"move", "attack", "resupply", "reinforce", "upgrade",
	"mount", "unmount", "disembark", "pass",
}

func (a ActionType) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}
