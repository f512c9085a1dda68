package vec

import "iter"

// Line3D yields the points of a straight line from begin to end
// (inclusive), stepping one block at a time along the dominant axis.
func Line3D(begin, end Vec3) iter.Seq[Vec3] {
	return func(yield func(Vec3) bool) {
		delta := end.Sub(begin)
		steps := maxInt(abs(delta.X), maxInt(abs(delta.Y), abs(delta.Z)))
		if steps == 0 {
			yield(begin)
			return
		}
		for i := 0; i <= steps; i++ {
			p := Vec3{
				begin.X + roundDiv(delta.X*i, steps),
				begin.Y + roundDiv(delta.Y*i, steps),
				begin.Z + roundDiv(delta.Z*i, steps),
			}
			if !yield(p) {
				return
			}
		}
	}
}

// roundDiv divides a by b, rounding half away from zero.
func roundDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	if (a < 0) != (b < 0) {
		return (a - b/2) / b
	}
	return (a + b/2) / b
}

// Circle yields the XZ points of a disk with the given diameter whose
// bounding square's lowest corner is at center-(d/2). With tube set, only
// the outline is yielded.
func Circle(center Vec2, diameter int, tube bool) iter.Seq[Vec2] {
	return func(yield func(Vec2) bool) {
		if diameter <= 0 {
			return
		}
		r := diameter / 2
		for x := -r; x <= r; x++ {
			for z := -r; z <= r; z++ {
				if !inDisk(x, z, diameter) {
					continue
				}
				if tube && !onDiskEdge(x, z, diameter) {
					continue
				}
				if !yield(center.Add(Vec2{x, z})) {
					return
				}
			}
		}
	}
}

func inDisk(x, z, diameter int) bool {
	// Compare against (d/2)^2 using the block's center, which keeps
	// even and odd diameters symmetric.
	fx := float64(x)
	fz := float64(z)
	rad := float64(diameter) / 2.0
	return fx*fx+fz*fz <= rad*rad
}

func onDiskEdge(x, z, diameter int) bool {
	return !inDisk(x+1, z, diameter) || !inDisk(x-1, z, diameter) ||
		!inDisk(x, z+1, diameter) || !inDisk(x, z-1, diameter)
}

// CylinderY yields the points of a vertical cylinder with its base disk
// centered at baseCenter, extending length blocks upward. With tube set,
// only the outline of each disk is yielded; with hollow set, the inner
// disks are outlines but the bottom and top disks stay filled.
func CylinderY(baseCenter Vec3, diameter, length int, tube, hollow bool) iter.Seq[Vec3] {
	return func(yield func(Vec3) bool) {
		if length <= 0 {
			return
		}
		center := DropY(baseCenter)
		for dy := 0; dy < length; dy++ {
			onCap := dy == 0 || dy == length-1
			ring := tube || (hollow && !onCap)
			for p := range Circle(center, diameter, ring) {
				if !yield(AddY(p, baseCenter.Y+dy)) {
					return
				}
			}
		}
	}
}
