package vec

import "iter"

// Box is an axis-aligned cuboid, defined by an offset (lowest corner) and
// a non-negative size.
type Box struct {
	Offset Vec3
	Size   Vec3
}

// BoxBetween returns the smallest Box containing both corners (inclusive).
func BoxBetween(cornerA, cornerB Vec3) Box {
	begin := Vec3{
		minInt(cornerA.X, cornerB.X),
		minInt(cornerA.Y, cornerB.Y),
		minInt(cornerA.Z, cornerB.Z),
	}
	end := Vec3{
		maxInt(cornerA.X, cornerB.X),
		maxInt(cornerA.Y, cornerB.Y),
		maxInt(cornerA.Z, cornerB.Z),
	}
	return Box{Offset: begin, Size: end.Sub(begin).Add(Vec3{1, 1, 1})}
}

// Begin returns the lowest corner (equal to Offset).
func (b Box) Begin() Vec3 { return b.Offset }

// End returns the corner one past the highest contained point.
func (b Box) End() Vec3 { return b.Offset.Add(b.Size) }

// Last returns the highest contained point.
func (b Box) Last() Vec3 { return b.End().Sub(Vec3{1, 1, 1}) }

// Center returns the center, rounded down.
func (b Box) Center() Vec3 {
	return b.Offset.Add(Vec3{b.Size.X / 2, b.Size.Y / 2, b.Size.Z / 2})
}

// Volume returns the number of contained points.
func (b Box) Volume() int { return b.Size.X * b.Size.Y * b.Size.Z }

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Vec3) bool {
	return p.X >= b.Offset.X && p.Y >= b.Offset.Y && p.Z >= b.Offset.Z &&
		p.X < b.Offset.X+b.Size.X && p.Y < b.Offset.Y+b.Size.Y && p.Z < b.Offset.Z+b.Size.Z
}

// ToRect projects the box onto the XZ-plane.
func (b Box) ToRect() Rect {
	return Rect{Offset: DropY(b.Offset), Size: DropY(b.Size)}
}

// Inner iterates over every contained point, X-major.
func (b Box) Inner() iter.Seq[Vec3] {
	return func(yield func(Vec3) bool) {
		for x := b.Offset.X; x < b.Offset.X+b.Size.X; x++ {
			for y := b.Offset.Y; y < b.Offset.Y+b.Size.Y; y++ {
				for z := b.Offset.Z; z < b.Offset.Z+b.Size.Z; z++ {
					if !yield(Vec3{x, y, z}) {
						return
					}
				}
			}
		}
	}
}

// Shell iterates over the points on the box's surface.
func (b Box) Shell() iter.Seq[Vec3] {
	return func(yield func(Vec3) bool) {
		if b.Size.X <= 0 || b.Size.Y <= 0 || b.Size.Z <= 0 {
			return
		}
		if b.Size.X <= 2 || b.Size.Y <= 2 || b.Size.Z <= 2 {
			// Every point touches a face.
			for p := range b.Inner() {
				if !yield(p) {
					return
				}
			}
			return
		}
		first, last := b.Begin(), b.Last()
		// Bottom and top faces.
		for x := first.X; x <= last.X; x++ {
			for z := first.Z; z <= last.Z; z++ {
				if !yield(Vec3{x, first.Y, z}) || !yield(Vec3{x, last.Y, z}) {
					return
				}
			}
		}
		// Side faces, excluding the rows already covered above.
		for y := first.Y + 1; y < last.Y; y++ {
			for p := range b.ToRect().Outline() {
				if !yield(Vec3{p.X, y, p.Z}) {
					return
				}
			}
		}
	}
}

// Wireframe iterates over the points on the box's edges.
func (b Box) Wireframe() iter.Seq[Vec3] {
	return func(yield func(Vec3) bool) {
		if b.Size.X <= 0 || b.Size.Y <= 0 || b.Size.Z <= 0 {
			return
		}
		first, last := b.Begin(), b.Last()
		// Horizontal edge loops at the bottom and top.
		for p := range b.ToRect().Outline() {
			if !yield(Vec3{p.X, first.Y, p.Z}) {
				return
			}
			if last.Y != first.Y && !yield(Vec3{p.X, last.Y, p.Z}) {
				return
			}
		}
		// Vertical edges.
		for y := first.Y + 1; y < last.Y; y++ {
			if !yield(Vec3{first.X, y, first.Z}) ||
				!yield(Vec3{first.X, y, last.Z}) ||
				!yield(Vec3{last.X, y, first.Z}) ||
				!yield(Vec3{last.X, y, last.Z}) {
				return
			}
		}
	}
}
