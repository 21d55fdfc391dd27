package unit

import (
	"panzer/equipment"
	"panzer/game"
)

// Env is the read-only context units consult for per-type stats and rule
// decisions. One Env is shared by every unit of a game.
type Env struct {
	Catalog equipment.Catalog
	Rules   game.Rules
}

// NewEnv builds an Env using the standard rules over catalog.
func NewEnv(catalog equipment.Catalog) *Env {
	return &Env{
		Catalog: catalog,
		Rules:   game.NewStandardRules(catalog),
	}
}

func (e *Env) stats(id int) equipment.Stats {
	return equipment.Lookup(e.Catalog, id)
}
