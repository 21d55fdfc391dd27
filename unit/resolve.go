package unit

import (
	"panzer/equipment"
	"panzer/meta"
)

// source names the record that answers a query about a unit.
type source int

const (
	fromUnit source = iota
	fromTransport
	fromCarrier
)

// resolve picks the authoritative record: carrier, then mounted transport,
// then the unit itself. Ammo and fuel are never taken from a carrier, so those
// queries pass withCarrier=false.
func (u *Unit) resolve(forceBase, withCarrier bool) source {
	switch {
	case forceBase:
		return fromUnit
	case withCarrier && u.Carrier != meta.NoCarrier:
		return fromCarrier
	case u.IsMounted && u.Transport != nil:
		return fromTransport
	default:
		return fromUnit
	}
}

// Equipment returns the stats of the equipment currently moving the unit: its
// carrier, its transport when mounted, or its own. forceBase always returns its own.
func (u *Unit) Equipment(forceBase bool) equipment.Stats {
	switch u.resolve(forceBase, true) {
	case fromCarrier:
		return u.env.stats(u.Carrier)
	case fromTransport:
		return u.Transport.Stats()
	default:
		return u.env.stats(u.EquipmentID)
	}
}

// Stats is Equipment(false).
func (u *Unit) Stats() equipment.Stats {
	return u.Equipment(false)
}

// MovesLeft returns the movement points the unit can still spend. Carried and
// mounted units always report the full allowance of what carries them.
func (u *Unit) MovesLeft() int {
	switch u.resolve(false, true) {
	case fromCarrier:
		return u.env.stats(u.Carrier).MovPoints
	case fromTransport:
		return u.Transport.Stats().MovPoints
	default:
		return u.MoveLeft
	}
}

// AmmoLeft returns the transport's ammo when mounted, the unit's otherwise.
func (u *Unit) AmmoLeft() int {
	if u.resolve(false, false) == fromTransport {
		return u.Transport.Ammo
	}
	return u.Ammo
}

// FuelLeft returns the transport's fuel when mounted, the unit's otherwise.
func (u *Unit) FuelLeft() int {
	if u.resolve(false, false) == fromTransport {
		return u.Transport.Fuel
	}
	return u.Fuel
}

// Icon returns the icon of the equipment the unit is shown as.
func (u *Unit) Icon() string {
	return u.Equipment(false).Icon
}
