// Package structure loads NBT structure templates and places them in
// the world under mirroring and offset transformations.
package structure

import "github.com/go-theft-craft/decorator/pkg/vec"

// Direction is one of the six axis directions.
type Direction string

const (
	XPlus  Direction = "x_plus"
	XMinus Direction = "x_minus"
	YPlus  Direction = "y_plus"
	YMinus Direction = "y_minus"
	ZPlus  Direction = "z_plus"
	ZMinus Direction = "z_minus"
)

// Compass aliases for the axis directions.
const (
	North = ZMinus
	East  = XPlus
	South = ZPlus
	West  = XMinus
	Up    = YPlus
	Down  = YMinus
)

// Cardinal lists the four horizontal directions clockwise from north.
var Cardinal = []Direction{North, East, South, West}

var opposites = map[Direction]Direction{
	XPlus: XMinus, XMinus: XPlus,
	YPlus: YMinus, YMinus: YPlus,
	ZPlus: ZMinus, ZMinus: ZPlus,
}

var rights = map[Direction]Direction{
	North: East, East: South, South: West, West: North,
}

var lefts = map[Direction]Direction{
	North: West, West: South, South: East, East: North,
}

var directionVectors = map[Direction]vec.Vec3{
	XPlus:  {X: 1},
	XMinus: {X: -1},
	YPlus:  {Y: 1},
	YMinus: {Y: -1},
	ZPlus:  {Z: 1},
	ZMinus: {Z: -1},
}

var directionText = map[Direction]string{
	North: "north",
	East:  "east",
	South: "south",
	West:  "west",
	Up:    "up",
	Down:  "down",
}

var textDirection = map[string]Direction{
	"north": North,
	"east":  East,
	"south": South,
	"west":  West,
	"up":    Up,
	"down":  Down,
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return opposites[d] }

// Right returns the horizontal direction a quarter turn clockwise.
// Vertical directions map to themselves.
func (d Direction) Right() Direction {
	if r, ok := rights[d]; ok {
		return r
	}
	return d
}

// Left returns the horizontal direction a quarter turn counterclockwise.
func (d Direction) Left() Direction {
	if l, ok := lefts[d]; ok {
		return l
	}
	return d
}

// Vector returns the unit vector of the direction.
func (d Direction) Vector() vec.Vec3 { return directionVectors[d] }

// Text returns the Minecraft block state value for the direction, such
// as "north".
func (d Direction) Text() string { return directionText[d] }

// FromText parses a Minecraft block state direction value.
func FromText(s string) (Direction, bool) {
	d, ok := textDirection[s]
	return d, ok
}
