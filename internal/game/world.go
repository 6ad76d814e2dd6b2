package game

// World is the whole game state. Treat it as a value: handlers return a new
// World instead of changing the one they were given.
type World struct {
	Maze      Maze
	Inventory ItemSet
	Position  Coordinate
	// Equipped is empty when nothing is wielded. Otherwise it is in Inventory.
	Equipped Item
	Aliases  Aliases
}

// RoomSeed is a room that exists before anything is dug.
type RoomSeed struct {
	At     Coordinate
	Ground []Item
}

// Setup describes the world at the start of a session.
type Setup struct {
	Start   Coordinate
	Rooms   []RoomSeed
	Aliases []AliasSpec
}

// TreasureRoom is where the default setup hides the big prize.
var TreasureRoom = Coordinate{X: 1, Y: 1, Z: 5}

// DefaultSetup is the sledge at the origin and a far-off treasure room.
func DefaultSetup() Setup {
	return Setup{
		Start: Origin,
		Rooms: []RoomSeed{
			{At: Origin, Ground: []Item{Sledge}},
			{At: TreasureRoom, Ground: []Item{LotsOfGold}},
		},
		Aliases: DefaultAliases,
	}
}

// NewWorld builds the opening state from s. A nil s.Aliases seeds
// DefaultAliases; an empty non-nil slice seeds no aliases at all.
func NewWorld(s Setup) World {
	aliases := s.Aliases
	if aliases == nil {
		aliases = DefaultAliases
	}
	maze := make(Maze, len(s.Rooms))
	for _, r := range s.Rooms {
		maze[r.At] = union(maze.Ground(r.At), NewItemSet(r.Ground...))
	}
	if _, ok := maze[s.Start]; !ok {
		maze[s.Start] = NewItemSet()
	}
	return World{
		Maze:      maze,
		Inventory: NewItemSet(),
		Position:  s.Start,
		Aliases:   SeedAliases(aliases),
	}
}

// Clone returns a copy whose maze and alias table can be changed without
// touching w.
func (w World) Clone() World {
	next := w
	next.Maze = w.Maze.Clone()
	next.Aliases = w.Aliases.Clone()
	return next
}

// Ground is the item set of the room the player stands in.
func (w World) Ground() ItemSet {
	return w.Maze.Ground(w.Position)
}

// Exits lists the ways out of the current room.
func (w World) Exits() []Direction {
	return FindExits(w.Position, w.Maze)
}
