package game

import "fmt"

// Coordinate is a room position in the maze.
type Coordinate struct {
	X, Y, Z int
}

// Origin is where the player starts unless the world file says otherwise.
var Origin = Coordinate{}

// Add returns the coordinate one step away from c in direction d.
func (c Coordinate) Add(d Direction) Coordinate {
	o := d.Offset()
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Direction names one of the six axis-aligned moves.
type Direction string

const (
	North Direction = "north"
	West  Direction = "west"
	South Direction = "south"
	East  Direction = "east"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions lists every direction in the order exits are reported.
var Directions = []Direction{North, West, South, East, Up, Down}

var offsets = map[Direction]Coordinate{
	North: {X: 0, Y: 1, Z: 0},
	West:  {X: -1, Y: 0, Z: 0},
	South: {X: 0, Y: -1, Z: 0},
	East:  {X: 1, Y: 0, Z: 0},
	Up:    {X: 0, Y: 0, Z: 1},
	Down:  {X: 0, Y: 0, Z: -1},
}

// Offset is the unit vector for d. Unknown directions have a zero offset.
func (d Direction) Offset() Coordinate {
	return offsets[d]
}

// ParseDirection accepts only the six direction names.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(s)
	if _, ok := offsets[d]; !ok {
		return "", false
	}
	return d, true
}

// Item is a tag for an interchangeable thing lying around or carried.
type Item string

const (
	Gold       Item = "gold"
	Sledge     Item = "sledge"
	Ladder     Item = "ladder"
	LotsOfGold Item = "lots-of-gold"
)
