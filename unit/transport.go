package unit

import "panzer/equipment"

// Transport is the vehicle assigned to carry a unit. It owns its own ammo and
// fuel; its movement is never tracked because moving mounted uses up the turn.
type Transport struct {
	EquipmentID int
	Ammo        int
	Fuel        int

	catalog equipment.Catalog
}

// NewTransport creates a transport of the given type with full pools.
func NewTransport(catalog equipment.Catalog, equipmentID int) *Transport {
	s := equipment.Lookup(catalog, equipmentID)
	return &Transport{
		EquipmentID: equipmentID,
		Ammo:        s.Ammo,
		Fuel:        s.Fuel,
		catalog:     catalog,
	}
}

// CopyFrom overwrites t with the type and pools of other.
func (t *Transport) CopyFrom(other *Transport) {
	if other == nil {
		return
	}
	t.EquipmentID = other.EquipmentID
	t.Ammo = other.Ammo
	t.Fuel = other.Fuel
}

// Stats returns the catalog entry of the transport's equipment.
func (t *Transport) Stats() equipment.Stats {
	return equipment.Lookup(t.catalog, t.EquipmentID)
}
