package decor

import (
	"context"

	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/geometry"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

// ClearArea removes everything between the lowest and highest terrain
// height over the build rectangle.
func ClearArea(ctx context.Context, site *Site) error {
	min, max := site.HeightBounds()
	if max <= min {
		return nil
	}
	site.Log.Info("clearing build area", "from", min, "to", max)

	air := []block.Block{block.New("minecraft:air")}
	box := site.Rect.ToBox(min, max-min+1)
	return geometry.Cuboid(ctx, site.Editor, box, air, nil)
}

// PlacePerimeterWall builds a wall of the given block along the build
// rectangle's outline, following the terrain and rising height blocks
// above it.
func PlacePerimeterWall(ctx context.Context, site *Site, wall block.Block, height int) error {
	palette := []block.Block{wall}
	for point := range site.Rect.Outline() {
		base := site.GroundHeight(point)
		for y := base; y < base+height; y++ {
			pos := vec.Vec3{X: point.X, Y: y, Z: point.Z}
			if err := site.Editor.Place(ctx, pos, palette, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

// PlaceBeacon places a beacon centerpiece: an emerald disk, the beacon
// itself and a stained glass cap tinting the beam.
func PlaceBeacon(ctx context.Context, site *Site, center vec.Vec2, baseY int, glass string) error {
	e := site.Editor
	base := vec.Vec3{X: center.X, Y: baseY, Z: center.Z}

	emerald := []block.Block{block.New("minecraft:emerald_block")}
	if err := geometry.Cylinder(ctx, e, base, 5, 1, false, false, emerald, nil); err != nil {
		return err
	}
	if err := e.PlaceBlock(ctx, base.AddY(1), block.New("minecraft:beacon")); err != nil {
		return err
	}
	return e.PlaceBlock(ctx, base.AddY(2), block.New(glass))
}
