package player

// Player represents one side of the game. Units hold their own copy of it.
type Player struct {
	ID       int
	Name     string
	Side     int
	Country  int
	Prestige int
}

// NewPlayer creates a new Player instance.
func NewPlayer(id int, name string) *Player {
	return &Player{
		ID:   id,
		Name: name,
	}
}

// Copy returns an independent copy of the player.
func (p *Player) Copy() *Player {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
