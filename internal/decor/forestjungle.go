package decor

import (
	"context"
	"fmt"

	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/geometry"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

func init() {
	Register("forest_jungle", func() Decorator { return &forestJungleDecorator{} })
}

// forestJungleDecorator builds a walled bamboo grove: a grass platform
// with a beacon, concentric bamboo rings and a log-and-slab border with
// a water moat.
type forestJungleDecorator struct{}

func (d *forestJungleDecorator) Name() string { return "forest_jungle" }

func (d *forestJungleDecorator) Decorate(ctx context.Context, site *Site) error {
	if err := ClearArea(ctx, site); err != nil {
		return fmt.Errorf("forest_jungle: clear area: %w", err)
	}
	if err := PlacePerimeterWall(ctx, site, block.New("minecraft:mossy_stone_bricks"), 7); err != nil {
		return fmt.Errorf("forest_jungle: perimeter wall: %w", err)
	}

	center := site.Rect.Center()
	baseY := site.GroundHeight(center)
	base := vec.Vec3{X: center.X, Y: baseY, Z: center.Z}
	e := site.Editor

	site.Log.Info("building bamboo grove", "center", center, "base", baseY)
	grass := []block.Block{block.New("minecraft:grass_block")}
	if err := geometry.Cylinder(ctx, e, base.AddY(-1), 55, 1, false, false, grass, nil); err != nil {
		return fmt.Errorf("forest_jungle: platform: %w", err)
	}

	if err := PlaceBeacon(ctx, site, center, baseY, "minecraft:yellow_stained_glass"); err != nil {
		return fmt.Errorf("forest_jungle: beacon: %w", err)
	}

	// Border rings: logs with a slab walkway on top, then an outer log
	// ring with a slab rim.
	logs := []block.Block{block.New("minecraft:dark_oak_log")}
	slab := []block.Block{block.New("minecraft:stone_brick_slab")}
	water := []block.Block{block.New("minecraft:water")}
	rings := []struct {
		base     vec.Vec3
		diameter int
		palette  []block.Block
	}{
		{base, 41, logs},
		{base.AddY(1), 41, slab},
		{base, 47, logs},
		{base, 49, slab},
	}
	for _, ring := range rings {
		if err := geometry.Cylinder(ctx, e, ring.base, ring.diameter, 1, true, false, ring.palette, nil); err != nil {
			return fmt.Errorf("forest_jungle: border ring d=%d: %w", ring.diameter, err)
		}
	}

	// Water moat between the two log rings.
	for diameter := 43; diameter < 46; diameter += 2 {
		if err := geometry.Cylinder(ctx, e, base, diameter, 1, true, false, water, nil); err != nil {
			return fmt.Errorf("forest_jungle: moat ring d=%d: %w", diameter, err)
		}
	}

	// The grove itself: concentric bamboo rings.
	bamboo := []block.Block{block.New("minecraft:bamboo")}
	for diameter := 7; diameter < 36; diameter += 2 {
		if err := geometry.Cylinder(ctx, e, base, diameter, 1, true, false, bamboo, nil); err != nil {
			return fmt.Errorf("forest_jungle: bamboo ring d=%d: %w", diameter, err)
		}
	}

	return e.FlushBuffer(ctx)
}
