package unit

import (
	"panzer/equipment"
	"panzer/meta"
)

// FuelCost converts a movement cost into the fuel it burns. Costs at or above
// meta.BlockedTerrainCost carry stop-move/no-enter sentinels that are folded
// back into a plain cost.
func FuelCost(cost int) int {
	if cost >= meta.BlockedTerrainCost {
		return cost/meta.BlockedTerrainCost + cost%meta.BlockedTerrainCost
	}
	return cost
}

// Move spends cost movement points. Only recon units keep the points they did
// not use; everything else, and any unit moving mounted, is done for the turn.
func (u *Unit) Move(cost int) {
	u.Entrenchment = 0
	fuelUsed := FuelCost(cost)

	if u.IsMounted && u.Transport != nil {
		u.HasFired = true // no firing after a ride in the transport
		if u.env.Rules.UnitUsesFuel(u.Transport) {
			u.Transport.Fuel -= fuelUsed
		}
		u.MoveLeft = 0
	} else {
		if u.env.Rules.UnitUsesFuel(u) && u.Carrier == meta.NoCarrier {
			u.Fuel -= fuelUsed
		}
		if u.Stats().Class != equipment.Recon {
			u.MoveLeft = 0
		} else {
			u.MoveLeft -= cost
		}
	}
	if u.MoveLeft <= 0 {
		u.HasMoved = true
	}
}

// Fire spends one round of the unit's own ammo, even when mounted. Support
// and defensive fire leave the unit free to attack later in the turn.
func (u *Unit) Fire(isAttacking bool) {
	u.TempSpotted = true
	u.Ammo--
	if isAttacking {
		u.HasFired = true
	}
}

// Hit removes losses strength points. Strength is not clamped at zero.
func (u *Unit) Hit(losses int) {
	u.Strength -= losses
	u.Hits++
	if u.Entrenchment > 0 {
		u.Entrenchment--
	}
	if u.Strength <= 0 {
		u.Destroyed = true
	}
}

// Resupply refills the pools the unit is using and ends its turn.
func (u *Unit) Resupply(ammo, fuel int) {
	if u.IsMounted && u.Transport != nil {
		u.Transport.Ammo += ammo
		u.Transport.Fuel += fuel
	} else {
		u.Ammo += ammo
		u.Fuel += fuel
	}
	u.endActions()
}

// Reinforce adds strength points and ends the unit's turn.
func (u *Unit) Reinforce(strength int) {
	u.Strength += strength
	u.endActions()
}

func (u *Unit) endActions() {
	u.HasMoved = true
	u.HasFired = true
	u.HasResupplied = true
}
