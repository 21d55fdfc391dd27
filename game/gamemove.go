package game

// Order is one action given to a unit. Fields not used by the action type are ignored.
type Order struct {
	Type   ActionType
	UnitID int

	// MoveAction
	Row  int
	Col  int
	Cost int

	// AttackAction: the defender and the losses already decided by combat resolution
	TargetID       int
	DefenderLosses int
	AttackerLosses int

	// ResupplyAction and ReinforceAction
	Ammo     int
	Fuel     int
	Strength int

	// UpgradeAction
	EquipmentID int
	TransportID int
}
