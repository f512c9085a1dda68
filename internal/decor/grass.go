package decor

import (
	"context"
	"fmt"

	"github.com/go-theft-craft/decorator/internal/structure"
	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/geometry"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

func init() {
	Register("grass", func() Decorator { return &grassDecorator{} })
}

// grassDecorator builds the grassland centerpiece: a perimeter wall, a
// layered cylinder tower in the middle, a log hut off-center and
// scattered vegetation.
type grassDecorator struct{}

func (d *grassDecorator) Name() string { return "grass" }

// towerLayers describes the center tower bottom-up. Each layer is a
// cylinder relative to the tower base.
var towerLayers = []struct {
	yOffset  int
	diameter int
	length   int
	tube     bool
	block    string
}{
	{0, 30, 10, true, "minecraft:dark_oak_planks"},
	{9, 28, 1, true, "minecraft:glowstone"},
	{10, 22, 5, false, "minecraft:stone_bricks"},
	{15, 28, 5, true, "minecraft:dark_oak_planks"},
	{19, 26, 1, true, "minecraft:glowstone"},
	{20, 20, 5, false, "minecraft:stone_bricks"},
	{25, 26, 5, true, "minecraft:dark_oak_planks"},
	{29, 24, 1, true, "minecraft:glowstone"},
	{30, 18, 5, false, "minecraft:stone_bricks"},
	{35, 24, 5, true, "minecraft:dark_oak_planks"},
	{39, 22, 1, true, "minecraft:glowstone"},
	{40, 16, 5, false, "minecraft:stone_bricks"},
	{45, 22, 5, true, "minecraft:dark_oak_planks"},
	{49, 20, 1, true, "minecraft:glowstone"},
	{50, 14, 5, false, "minecraft:stone_bricks"},
	{55, 16, 10, true, "minecraft:dark_oak_planks"},
	{65, 20, 4, false, "minecraft:stone_bricks"},
	{68, 18, 1, true, "minecraft:glowstone"},
	{69, 16, 4, false, "minecraft:stone_bricks"},
	{73, 14, 4, false, "minecraft:stone_bricks"},
	{77, 12, 4, false, "minecraft:stone_bricks"},
	{81, 10, 4, false, "minecraft:stone_bricks"},
	{85, 24, 4, false, "minecraft:stone_bricks"},
}

func (d *grassDecorator) Decorate(ctx context.Context, site *Site) error {
	if err := ClearArea(ctx, site); err != nil {
		return fmt.Errorf("grass: clear area: %w", err)
	}
	if err := PlacePerimeterWall(ctx, site, block.New("minecraft:mossy_stone_bricks"), 7); err != nil {
		return fmt.Errorf("grass: perimeter wall: %w", err)
	}

	center := site.Rect.Center()
	baseY := site.GroundHeight(center)

	site.Log.Info("building center tower", "center", center, "base", baseY)
	for _, layer := range towerLayers {
		base := vec.Vec3{X: center.X, Y: baseY + layer.yOffset, Z: center.Z}
		palette := []block.Block{block.New(layer.block)}
		if err := geometry.Cylinder(ctx, site.Editor, base, layer.diameter, layer.length, layer.tube, false, palette, nil); err != nil {
			return fmt.Errorf("grass: tower layer at +%d: %w", layer.yOffset, err)
		}
	}

	if err := d.placeHut(ctx, site, center.Add(vec.Vec2{X: 20, Z: 20}), baseY); err != nil {
		return fmt.Errorf("grass: hut: %w", err)
	}
	if err := d.placeTemplate(ctx, site); err != nil {
		return fmt.Errorf("grass: template: %w", err)
	}
	if err := scatterVegetation(ctx, site, grassVegetation); err != nil {
		return fmt.Errorf("grass: vegetation: %w", err)
	}
	return site.Editor.FlushBuffer(ctx)
}

// placeHut builds a small two-part hut: a hollow log core with a mossy
// stone shell above it.
func (d *grassDecorator) placeHut(ctx context.Context, site *Site, at vec.Vec2, baseY int) error {
	ground := vec.Vec3{X: at.X, Y: baseY, Z: at.Z}

	core := vec.BoxBetween(ground.Add(vec.Vec3{X: -1, Z: -1}), ground.Add(vec.Vec3{X: 1, Y: 2, Z: 1}))
	logs := []block.Block{block.New("minecraft:spruce_log")}
	if err := geometry.CuboidHollow(ctx, site.Editor, core, logs, nil); err != nil {
		return err
	}

	shell := vec.BoxBetween(ground.Add(vec.Vec3{X: -3, Y: 3, Z: -3}), ground.Add(vec.Vec3{X: 3, Y: 8, Z: 3}))
	bricks := []block.Block{block.New("minecraft:mossy_stone_bricks")}
	return geometry.CuboidHollow(ctx, site.Editor, shell, bricks, nil)
}

// placeTemplate builds the grass tower NBT template at the rectangle's
// begin corner, when the asset pack provides one.
func (d *grassDecorator) placeTemplate(ctx context.Context, site *Site) error {
	if site.Assets == nil {
		return nil
	}
	tmpl, ok := site.Assets.Template("grass_tower")
	if !ok {
		return nil
	}
	begin := site.Rect.Begin()
	offset := vec.Vec3{X: begin.X, Y: site.GroundHeight(begin), Z: begin.Z}
	return structure.Build(ctx, site.Editor, tmpl.Structure, structure.BuildOptions{
		Transform:  structure.Transformation{Offset: offset},
		Origin:     tmpl.OriginVec(),
		DoNotPlace: tmpl.DoNotPlace,
	})
}

var grassVegetation = []block.Block{
	block.New("minecraft:short_grass"),
	block.New("minecraft:short_grass"),
	block.New("minecraft:poppy"),
	block.New("minecraft:dandelion"),
}

// scatterVegetation places plants on grass columns where the noise
// field is positive enough.
func scatterVegetation(ctx context.Context, site *Site, plants []block.Block) error {
	if site.Noise == nil {
		return nil
	}
	for column := range site.Rect.Inner() {
		v := site.Noise.Octave(float64(column.X)*0.1, float64(column.Z)*0.1, 4, 0.5)
		if v < 0.2 {
			continue
		}
		y := site.GroundHeight(column)
		ground, err := site.Editor.GetBlock(ctx, vec.Vec3{X: column.X, Y: y - 1, Z: column.Z})
		if err != nil {
			return err
		}
		if ground.ID != "minecraft:grass_block" {
			continue
		}
		pos := vec.Vec3{X: column.X, Y: y, Z: column.Z}
		if err := site.Editor.Place(ctx, pos, plants, []string{"minecraft:air"}); err != nil {
			return err
		}
	}
	return nil
}
