package unit

import (
	"panzer/meta"

	"github.com/rs/zerolog/log"
)

// Upgrade swaps the unit to equipmentID and, when the new type can be
// transported, gives it transport transportID. An equipmentID <= 0 keeps the
// current equipment so only the transport changes. It returns false and leaves
// the unit untouched when the new type is unknown or of another class.
func (u *Unit) Upgrade(equipmentID, transportID int) bool {
	if equipmentID <= 0 {
		equipmentID = u.EquipmentID
	}
	next, ok := u.env.Catalog.Get(equipmentID)
	if !ok {
		log.Debug().Int("unit", u.ID).Int("equipment", equipmentID).Msg("upgrade rejected: unknown equipment")
		return false
	}
	current := u.env.stats(u.EquipmentID)
	if current.Class != next.Class {
		log.Debug().Int("unit", u.ID).
			Stringer("from", current.Class).
			Stringer("to", next.Class).
			Msg("upgrade rejected: class change")
		return false
	}

	u.EquipmentID = equipmentID

	if u.env.Rules.IsTransportable(u.EquipmentID) {
		if transportID > 0 {
			u.SetTransport(transportID)
		}
	} else {
		u.Transport = nil
	}

	u.Entrenchment = 0

	// reserve units may still act after an upgrade
	if u.deployed {
		u.endActions()
	}
	return true
}

// SetTransport assigns a transport of type id. An existing transport changes
// type in place and keeps its ammo and fuel.
func (u *Unit) SetTransport(id int) {
	if u.Transport == nil {
		u.Transport = NewTransport(u.env.Catalog, id)
		return
	}
	u.Transport.EquipmentID = id
}

func (u *Unit) Mount() {
	u.IsMounted = true
}

func (u *Unit) Unmount() {
	u.IsMounted = false
}

// Embark is where carrier assignment will go; carriers are set directly for now.
func (u *Unit) Embark() {}

// Disembark leaves the carrier.
func (u *Unit) Disembark() {
	u.Carrier = meta.NoCarrier
}
