package game

import "panzer/equipment"

type StandardRules struct {
	Catalog equipment.Catalog
}

func NewStandardRules(catalog equipment.Catalog) *StandardRules {
	return &StandardRules{
		Catalog: catalog,
	}
}

func (sr *StandardRules) UnitUsesFuel(e Equipped) bool {
	s := e.Stats()
	if s.Fuel <= 0 {
		return false
	}
	return !walks(s.MoveMethod)
}

func (sr *StandardRules) IsTransportable(equipmentID int) bool {
	s, ok := sr.Catalog.Get(equipmentID)
	if !ok {
		return false
	}
	return walks(s.MoveMethod)
}

// walks is true for equipment that marches or is towed rather than driven.
func walks(m equipment.MoveMethod) bool {
	return m == equipment.Leg || m == equipment.Towed
}
