package engine

import (
	"errors"

	"panzer/game"
)

// MaxOrders caps the orders a single player may give in one turn.
const MaxOrders = 200

// ErrIllegalOrder is wrapped by every error Apply returns for an order the
// rules do not allow. The units are left untouched in that case.
var ErrIllegalOrder = errors.New("illegal order")

// Picker chooses the next order for owner. ok is false when the player ends the turn.
type Picker interface {
	NextOrder(e *Engine, owner int) (order game.Order, ok bool)
}
