package game

// Maze maps each dug coordinate to the items on its ground. A coordinate
// without an entry is solid rock, not an empty room.
type Maze map[Coordinate]ItemSet

// Clone copies the room index. Ground sets are shared since they are never
// modified in place.
func (m Maze) Clone() Maze {
	out := make(Maze, len(m))
	for c, ground := range m {
		out[c] = ground
	}
	return out
}

// Ground returns the items lying at c, or an empty set when c is not a room.
func (m Maze) Ground(c Coordinate) ItemSet {
	if ground, ok := m[c]; ok {
		return ground
	}
	return NewItemSet()
}

// FindExits lists the directions from c that lead into an existing room.
func FindExits(c Coordinate, m Maze) []Direction {
	var exits []Direction
	for _, d := range Directions {
		if _, ok := m[c.Add(d)]; ok {
			exits = append(exits, d)
		}
	}
	return exits
}

// HasExit reports whether moving from c in direction d lands in a room.
func HasExit(c Coordinate, m Maze, d Direction) bool {
	for _, exit := range FindExits(c, m) {
		if exit == d {
			return true
		}
	}
	return false
}
