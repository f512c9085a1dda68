package structure

import (
	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

// Transformation mirrors, pseudo-rotates and offsets a structure
// template. Rotation is expressed as a diagonal mirror (swapping the X
// and Z axes), which combined with the axis mirrors covers all four
// orientations.
type Transformation struct {
	Offset         vec.Vec3
	Mirror         [3]bool // mirror along the X, Y and Z axes
	DiagonalMirror bool    // swap the X and Z axes
}

var mirrorTables = [3]map[Direction]Direction{
	{XPlus: XMinus, XMinus: XPlus, YPlus: YPlus, YMinus: YMinus, ZPlus: ZPlus, ZMinus: ZMinus},
	{XPlus: XPlus, XMinus: XMinus, YPlus: YMinus, YMinus: YPlus, ZPlus: ZPlus, ZMinus: ZMinus},
	{XPlus: XPlus, XMinus: XMinus, YPlus: YPlus, YMinus: YMinus, ZPlus: ZMinus, ZMinus: ZPlus},
}

var diagonalTable = map[Direction]Direction{
	XPlus: ZPlus, XMinus: ZMinus,
	YPlus: YPlus, YMinus: YMinus,
	ZPlus: XPlus, ZMinus: XMinus,
}

// ApplyToDirection maps a direction through the transformation's
// mirrors.
func (t Transformation) ApplyToDirection(d Direction) Direction {
	for dim := 0; dim < 3; dim++ {
		if t.Mirror[dim] {
			d = mirrorTables[dim][d]
		}
	}
	if t.DiagonalMirror {
		d = diagonalTable[d]
	}
	return d
}

func (t Transformation) applyToText(s string) string {
	d, ok := FromText(s)
	if !ok {
		return s
	}
	return t.ApplyToDirection(d).Text()
}

// ApplyToBlock rewrites a block's direction-bearing states. State names
// that are directions (multi-face blocks) are renamed; direction values,
// x/z axis values and hinge sides are remapped.
func (t Transformation) ApplyToBlock(b block.Block) block.Block {
	if len(b.States) == 0 {
		return b
	}
	states := make(map[string]string, len(b.States))
	for name, value := range b.States {
		switch {
		case isDirectionText(name):
			states[t.applyToText(name)] = value
		case isDirectionText(value):
			states[name] = t.applyToText(value)
		case (value == "x" || value == "z") && t.DiagonalMirror:
			states[name] = map[string]string{"x": "z", "z": "x"}[value]
		case (value == "right" || value == "left") && t.Mirror[2]:
			states[name] = map[string]string{"right": "left", "left": "right"}[value]
		default:
			states[name] = value
		}
	}
	return block.Block{ID: b.ID, States: states, Data: b.Data}
}

// ApplyToPalette returns a transformed copy of a block palette.
func (t Transformation) ApplyToPalette(palette []block.Block) []block.Block {
	out := make([]block.Block, len(palette))
	for i, b := range palette {
		out[i] = t.ApplyToBlock(b)
	}
	return out
}

// ApplyToPoint maps a template-local point to its world position, given
// the template's origin point.
func (t Transformation) ApplyToPoint(point, origin vec.Vec3) vec.Vec3 {
	if t.Mirror[0] {
		point.X = -point.X
	}
	if t.Mirror[2] {
		point.Z = -point.Z
	}
	if t.DiagonalMirror {
		point.X, point.Z = point.Z, point.X
	}
	return point.Sub(t.applyToOrigin(origin)).Add(t.Offset)
}

func (t Transformation) applyToOrigin(origin vec.Vec3) vec.Vec3 {
	if t.Mirror[0] {
		origin.X = -origin.X
	}
	if t.Mirror[2] {
		origin.Z = -origin.Z
	}
	if t.DiagonalMirror {
		origin.X, origin.Z = origin.Z, origin.X
	}
	return origin
}

func isDirectionText(s string) bool {
	_, ok := FromText(s)
	return ok
}
