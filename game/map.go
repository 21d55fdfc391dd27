package game

// NoUnit marks an empty hex.
const NoUnit = -1

// Hex is one board cell. The board model here only records positions and
// occupancy; adjacency and terrain costs are resolved elsewhere.
type Hex struct {
	Row  int
	Col  int
	Unit int // id of the unit standing on the hex, NoUnit if empty
}

// Position returns the row and column of the hex.
func (h *Hex) Position() (row, col int) {
	return h.Row, h.Col
}

// Map is a rectangular grid of hexes.
type Map struct {
	Rows  int
	Cols  int
	Hexes [][]*Hex // indexed [row][col]
}

// NewMap creates and returns a new empty Map.
func NewMap(rows, cols int) *Map {
	m := &Map{
		Rows:  rows,
		Cols:  cols,
		Hexes: make([][]*Hex, rows),
	}
	for r := range m.Hexes {
		m.Hexes[r] = make([]*Hex, cols)
		for c := range m.Hexes[r] {
			m.Hexes[r][c] = &Hex{Row: r, Col: c, Unit: NoUnit}
		}
	}
	return m
}

// HexAt returns the hex at row, col or false when it is off the map.
func (m *Map) HexAt(row, col int) (*Hex, bool) {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return nil, false
	}
	return m.Hexes[row][col], true
}
