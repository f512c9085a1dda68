package block

import "strconv"

// Transformation helpers for the orientation-related block state strings
// "axis" (x/y/z), "facing" (north/east/south/west/up/down) and "rotation"
// (0-15, used by signs). Rotations are quarter-turns around the Y axis.

var facingRing = []string{"north", "east", "south", "west"}

// RotateAxis rotates an "axis" state string; "y" is unaffected.
func RotateAxis(axis string, rotation int) string {
	if axis != "x" && axis != "z" {
		return axis
	}
	if ((rotation%2)+2)%2 == 1 {
		if axis == "x" {
			return "z"
		}
		return "x"
	}
	return axis
}

// TransformAxis returns the transformed "axis" state string. Flipping is
// a no-op for axis strings, so only rotation applies.
func TransformAxis(axis string, rotation int) string {
	return RotateAxis(axis, rotation)
}

// RotateFacing rotates a "facing" state string; "up" and "down" are
// unaffected.
func RotateFacing(facing string, rotation int) string {
	for i, f := range facingRing {
		if f == facing {
			return facingRing[(((i+rotation)%4)+4)%4]
		}
	}
	return facing
}

// FlipFacing mirrors a "facing" state string along the flipped axes.
func FlipFacing(facing string, flip [3]bool) string {
	if flip[0] {
		switch facing {
		case "east":
			return "west"
		case "west":
			return "east"
		}
	}
	if flip[1] {
		switch facing {
		case "up":
			return "down"
		case "down":
			return "up"
		}
	}
	if flip[2] {
		switch facing {
		case "north":
			return "south"
		case "south":
			return "north"
		}
	}
	return facing
}

// TransformFacing returns the transformed "facing" state string. Flips
// first, rotates second.
func TransformFacing(facing string, rotation int, flip [3]bool) string {
	return RotateFacing(FlipFacing(facing, flip), rotation)
}

// InvertFacing returns the opposite "facing" state string.
func InvertFacing(facing string) string {
	switch facing {
	case "north":
		return "south"
	case "south":
		return "north"
	case "east":
		return "west"
	case "west":
		return "east"
	case "up":
		return "down"
	case "down":
		return "up"
	}
	return facing
}

// RotateRotation rotates a "rotation" state string (0-15) by quarter
// turns.
func RotateRotation(state string, rotation int) string {
	v, err := strconv.Atoi(state)
	if err != nil {
		return state
	}
	return strconv.Itoa((((v + 4*rotation) % 16) + 16) % 16)
}

// FlipRotation mirrors a "rotation" state string along the flipped axes.
func FlipRotation(state string, flip [3]bool) string {
	v, err := strconv.Atoi(state)
	if err != nil {
		return state
	}
	if flip[0] {
		v = (16 - v) % 16
	}
	if flip[2] {
		v = ((8-v)%16 + 16) % 16
	}
	return strconv.Itoa(v)
}

// TransformRotation returns the transformed "rotation" state string.
// Flips first, rotates second.
func TransformRotation(state string, rotation int, flip [3]bool) string {
	return RotateRotation(FlipRotation(state, flip), rotation)
}
