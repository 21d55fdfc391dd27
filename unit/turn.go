package unit

// EndTurn closes the unit's turn. A unit that stayed put with its full
// movement allowance digs in one more level. Movement is restored from the
// unit's own equipment even if it ends the turn mounted.
func (u *Unit) EndTurn() {
	allowance := u.Equipment(true).MovPoints
	if !u.HasMoved && u.MoveLeft == allowance {
		u.Entrenchment++
	}
	u.MoveLeft = allowance
	u.HasMoved = false
	u.HasFired = false
	u.HasResupplied = false
	u.IsMounted = false
	u.TempSpotted = false
	u.Hits = 0
}
