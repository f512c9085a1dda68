package vec

import "iter"

// Rect is an axis-aligned rectangle in the XZ-plane, defined by an offset
// (lowest corner) and a non-negative size.
type Rect struct {
	Offset Vec2
	Size   Vec2
}

// RectBetween returns the smallest Rect containing both corners
// (inclusive).
func RectBetween(cornerA, cornerB Vec2) Rect {
	begin := Vec2{minInt(cornerA.X, cornerB.X), minInt(cornerA.Z, cornerB.Z)}
	end := Vec2{maxInt(cornerA.X, cornerB.X), maxInt(cornerA.Z, cornerB.Z)}
	return Rect{Offset: begin, Size: end.Sub(begin).Add(Vec2{1, 1})}
}

// Begin returns the lowest corner (equal to Offset).
func (r Rect) Begin() Vec2 { return r.Offset }

// End returns the corner one past the highest contained point.
func (r Rect) End() Vec2 { return r.Offset.Add(r.Size) }

// Last returns the highest contained point.
func (r Rect) Last() Vec2 { return r.End().Sub(Vec2{1, 1}) }

// Center returns the center, rounded down.
func (r Rect) Center() Vec2 { return r.Offset.Add(Vec2{r.Size.X / 2, r.Size.Z / 2}) }

// Area returns the number of contained points.
func (r Rect) Area() int { return r.Size.X * r.Size.Z }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Offset.X && p.Z >= r.Offset.Z &&
		p.X < r.Offset.X+r.Size.X && p.Z < r.Offset.Z+r.Size.Z
}

// Dilated returns the rectangle grown by d in every direction.
func (r Rect) Dilated(d int) Rect {
	return Rect{
		Offset: r.Offset.Sub(Vec2{d, d}),
		Size:   r.Size.Add(Vec2{2 * d, 2 * d}),
	}
}

// Eroded returns the rectangle shrunk by d in every direction.
func (r Rect) Eroded(d int) Rect { return r.Dilated(-d) }

// ToBox extends the rectangle into a Box spanning [offsetY, offsetY+sizeY).
func (r Rect) ToBox(offsetY, sizeY int) Box {
	return Box{
		Offset: Vec3{r.Offset.X, offsetY, r.Offset.Z},
		Size:   Vec3{r.Size.X, sizeY, r.Size.Z},
	}
}

// Inner iterates over every contained point, X-major.
func (r Rect) Inner() iter.Seq[Vec2] {
	return func(yield func(Vec2) bool) {
		for x := r.Offset.X; x < r.Offset.X+r.Size.X; x++ {
			for z := r.Offset.Z; z < r.Offset.Z+r.Size.Z; z++ {
				if !yield(Vec2{x, z}) {
					return
				}
			}
		}
	}
}

// Outline iterates over the perimeter points, clockwise from Begin.
// Degenerate rectangles (a width or depth below 2) yield the inner points.
func (r Rect) Outline() iter.Seq[Vec2] {
	return func(yield func(Vec2) bool) {
		if r.Size.X <= 0 || r.Size.Z <= 0 {
			return
		}
		if r.Size.X < 2 || r.Size.Z < 2 {
			for p := range r.Inner() {
				if !yield(p) {
					return
				}
			}
			return
		}
		first, last := r.Begin(), r.Last()
		for x := first.X; x < last.X; x++ {
			if !yield(Vec2{x, first.Z}) {
				return
			}
		}
		for z := first.Z; z < last.Z; z++ {
			if !yield(Vec2{last.X, z}) {
				return
			}
		}
		for x := last.X; x > first.X; x-- {
			if !yield(Vec2{x, last.Z}) {
				return
			}
		}
		for z := last.Z; z > first.Z; z-- {
			if !yield(Vec2{first.X, z}) {
				return
			}
		}
	}
}
