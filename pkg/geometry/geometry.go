// Package geometry places blocks in geometric shapes through any block
// placer, such as an editor.
package geometry

import (
	"context"
	"iter"

	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

// Placer places a palette-sampled block at a position. Implemented by
// the editor.
type Placer interface {
	Place(ctx context.Context, pos vec.Vec3, palette []block.Block, replace []string) error
}

func placeAll(ctx context.Context, p Placer, points iter.Seq[vec.Vec3], palette []block.Block, replace []string) error {
	for pos := range points {
		if err := p.Place(ctx, pos, palette, replace); err != nil {
			return err
		}
	}
	return nil
}

// Cuboid fills the box with blocks sampled from palette.
func Cuboid(ctx context.Context, p Placer, box vec.Box, palette []block.Block, replace []string) error {
	return placeAll(ctx, p, box.Inner(), palette, replace)
}

// CuboidHollow places the box's shell, leaving the inside untouched.
func CuboidHollow(ctx context.Context, p Placer, box vec.Box, palette []block.Block, replace []string) error {
	return placeAll(ctx, p, box.Shell(), palette, replace)
}

// CuboidWireframe places only the box's edges.
func CuboidWireframe(ctx context.Context, p Placer, box vec.Box, palette []block.Block, replace []string) error {
	return placeAll(ctx, p, box.Wireframe(), palette, replace)
}

// Rect fills a horizontal rectangle at height y.
func Rect(ctx context.Context, p Placer, rect vec.Rect, y int, palette []block.Block, replace []string) error {
	return placeAll(ctx, p, liftRect(rect.Inner(), y), palette, replace)
}

// RectOutline places the perimeter of a horizontal rectangle at height y.
func RectOutline(ctx context.Context, p Placer, rect vec.Rect, y int, palette []block.Block, replace []string) error {
	return placeAll(ctx, p, liftRect(rect.Outline(), y), palette, replace)
}

// Line places a straight line of blocks from begin to end, inclusive.
func Line(ctx context.Context, p Placer, begin, end vec.Vec3, palette []block.Block, replace []string) error {
	return placeAll(ctx, p, vec.Line3D(begin, end), palette, replace)
}

// Cylinder places a vertical cylinder. With tube set, only the rim of
// each disk is placed; with hollow set, the sides plus the top and
// bottom disks.
func Cylinder(ctx context.Context, p Placer, baseCenter vec.Vec3, diameter, length int, tube, hollow bool, palette []block.Block, replace []string) error {
	return placeAll(ctx, p, vec.CylinderY(baseCenter, diameter, length, tube, hollow), palette, replace)
}

func liftRect(points iter.Seq[vec.Vec2], y int) iter.Seq[vec.Vec3] {
	return func(yield func(vec.Vec3) bool) {
		for pt := range points {
			if !yield(vec.Vec3{X: pt.X, Y: y, Z: pt.Z}) {
				return
			}
		}
	}
}
