package game

import "panzer/equipment"

// Equipped is anything whose equipment type the rules need to inspect: a unit
// (resolved through its carrier or transport) or a transport on its own.
type Equipped interface {
	Stats() equipment.Stats
}

type Rules interface {
	// UnitUsesFuel reports whether moving e drains a fuel pool.
	UnitUsesFuel(e Equipped) bool
	// IsTransportable reports whether equipment of this type may be given a transport.
	IsTransportable(equipmentID int) bool
}
