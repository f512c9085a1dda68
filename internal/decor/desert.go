package decor

import (
	"context"
	"fmt"

	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/geometry"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

func init() {
	Register("desert", func() Decorator { return &desertDecorator{} })
}

// desertDecorator builds a lava oasis: a lava disk with a beacon in the
// middle, ringed by sculk, warped fences and slabs.
type desertDecorator struct{}

func (d *desertDecorator) Name() string { return "desert" }

func (d *desertDecorator) Decorate(ctx context.Context, site *Site) error {
	if err := ClearArea(ctx, site); err != nil {
		return fmt.Errorf("desert: clear area: %w", err)
	}

	center := site.Rect.Center()
	baseY := site.GroundHeight(center)
	base := vec.Vec3{X: center.X, Y: baseY, Z: center.Z}
	e := site.Editor

	site.Log.Info("building lava oasis", "center", center, "base", baseY)
	lava := []block.Block{block.New("minecraft:lava")}
	if err := geometry.Cylinder(ctx, e, base, 39, 1, false, false, lava, nil); err != nil {
		return fmt.Errorf("desert: lava disk: %w", err)
	}

	if err := PlaceBeacon(ctx, site, center, baseY, "minecraft:purple_stained_glass"); err != nil {
		return fmt.Errorf("desert: beacon: %w", err)
	}

	// Boundary rings around the oasis, inside out.
	sculk := []block.Block{block.New("minecraft:sculk")}
	if err := geometry.Cylinder(ctx, e, base, 41, 1, true, false, sculk, nil); err != nil {
		return fmt.Errorf("desert: sculk ring: %w", err)
	}
	fence := []block.Block{block.New("minecraft:warped_fence")}
	if err := geometry.Cylinder(ctx, e, base.AddY(1), 41, 2, true, false, fence, nil); err != nil {
		return fmt.Errorf("desert: fence ring: %w", err)
	}
	slab := []block.Block{block.New("minecraft:stone_brick_slab")}
	if err := geometry.Cylinder(ctx, e, base, 43, 1, true, false, slab, nil); err != nil {
		return fmt.Errorf("desert: slab ring: %w", err)
	}

	return e.FlushBuffer(ctx)
}
