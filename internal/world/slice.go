// Package world provides a cached snapshot of a box of the Minecraft
// world, with heightmaps derived from the block data.
package world

import (
	"context"
	"fmt"

	"github.com/go-theft-craft/decorator/internal/gdmc"
	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

// Heightmap variants. Values are the world Y of the highest matching
// block plus one, so the value is the lowest Y where the criterion no
// longer holds.
const (
	WorldSurface           = "WORLD_SURFACE"             // highest non-air block
	MotionBlocking         = "MOTION_BLOCKING"           // highest block that blocks motion or is a fluid
	MotionBlockingNoLeaves = "MOTION_BLOCKING_NO_LEAVES" // like MOTION_BLOCKING, ignoring leaves
	OceanFloor             = "OCEAN_FLOOR"               // highest solid block, ignoring fluids and leaves
)

// Variants lists all supported heightmap names.
var Variants = []string{WorldSurface, MotionBlocking, MotionBlockingNoLeaves, OceanFloor}

// Source is the subset of the GDMC client a Slice is loaded from.
type Source interface {
	Blocks(ctx context.Context, pos, size vec.Vec3) ([]gdmc.PlacedBlock, error)
	Biomes(ctx context.Context, pos, size vec.Vec3) ([]gdmc.BiomeSample, error)
}

// Slice is an immutable snapshot of the blocks in a box of the world.
// Reads against a Slice do not touch the GDMC interface.
type Slice struct {
	box        vec.Box
	blocks     []block.Block // index: (x*size.Z + z)*size.Y + y, local coords
	biomes     []string      // per column, index: x*size.Z + z
	heightmaps map[string][]int
}

// Load reads the blocks and biomes of box from src and builds a Slice.
func Load(ctx context.Context, src Source, box vec.Box) (*Slice, error) {
	if box.Size.X <= 0 || box.Size.Y <= 0 || box.Size.Z <= 0 {
		return nil, fmt.Errorf("world slice box must have positive size, got %v", box.Size)
	}

	placed, err := src.Blocks(ctx, box.Offset, box.Size)
	if err != nil {
		return nil, fmt.Errorf("load world slice blocks: %w", err)
	}

	s := &Slice{
		box:    box,
		blocks: make([]block.Block, box.Size.X*box.Size.Y*box.Size.Z),
		biomes: make([]string, box.Size.X*box.Size.Z),
	}
	for _, pb := range placed {
		i, ok := s.index(pb.Pos.Sub(box.Offset))
		if !ok {
			continue
		}
		s.blocks[i] = pb.Block
	}

	// One biome sample per column, taken at the slice's top layer.
	top := box.Offset.AddY(box.Size.Y - 1)
	samples, err := src.Biomes(ctx, top, vec.Vec3{X: box.Size.X, Y: 1, Z: box.Size.Z})
	if err != nil {
		return nil, fmt.Errorf("load world slice biomes: %w", err)
	}
	for _, bs := range samples {
		local := bs.Pos.Sub(box.Offset)
		if local.X < 0 || local.X >= box.Size.X || local.Z < 0 || local.Z >= box.Size.Z {
			continue
		}
		s.biomes[local.X*box.Size.Z+local.Z] = bs.ID
	}

	s.computeHeightmaps()
	return s, nil
}

func (s *Slice) index(local vec.Vec3) (int, bool) {
	if local.X < 0 || local.X >= s.box.Size.X ||
		local.Y < 0 || local.Y >= s.box.Size.Y ||
		local.Z < 0 || local.Z >= s.box.Size.Z {
		return 0, false
	}
	return (local.X*s.box.Size.Z+local.Z)*s.box.Size.Y + local.Y, true
}

// Box returns the world-space box the slice covers.
func (s *Slice) Box() vec.Box { return s.box }

// Rect returns the world-space ground rectangle the slice covers.
func (s *Slice) Rect() vec.Rect { return s.box.ToRect() }

// Block returns the block at slice-local coordinates. Out-of-bounds
// positions read as void air.
func (s *Slice) Block(local vec.Vec3) block.Block {
	i, ok := s.index(local)
	if !ok {
		return block.New("minecraft:void_air")
	}
	b := s.blocks[i]
	if b.IsNothing() {
		return block.New("minecraft:void_air")
	}
	return b
}

// BlockGlobal returns the block at world coordinates.
func (s *Slice) BlockGlobal(pos vec.Vec3) block.Block {
	return s.Block(pos.Sub(s.box.Offset))
}

// Biome returns the biome ID of the given world column, or "" when the
// column is outside the slice.
func (s *Slice) Biome(column vec.Vec2) string {
	local := column.Sub(s.box.ToRect().Offset)
	if local.X < 0 || local.X >= s.box.Size.X || local.Z < 0 || local.Z >= s.box.Size.Z {
		return ""
	}
	return s.biomes[local.X*s.box.Size.Z+local.Z]
}

// Heightmap returns the named heightmap, indexed by x*size.Z + z in
// slice-local coordinates, or nil for an unknown variant.
func (s *Slice) Heightmap(variant string) []int {
	return s.heightmaps[variant]
}

// HeightAt returns the heightmap value for a world column. The value is
// the world Y above the highest matching block. Columns outside the
// slice and unknown variants report the bottom of the slice.
func (s *Slice) HeightAt(variant string, column vec.Vec2) int {
	hm := s.heightmaps[variant]
	if hm == nil {
		return s.box.Offset.Y
	}
	local := column.Sub(s.box.ToRect().Offset)
	if local.X < 0 || local.X >= s.box.Size.X || local.Z < 0 || local.Z >= s.box.Size.Z {
		return s.box.Offset.Y
	}
	return hm[local.X*s.box.Size.Z+local.Z]
}

// IsWaterAt reports whether the terrain surface of a world column is
// water. Leaf canopies above the water do not count.
func (s *Slice) IsWaterAt(column vec.Vec2) bool {
	y := s.HeightAt(MotionBlockingNoLeaves, column) - 1
	local := vec.Vec3{X: column.X, Y: y, Z: column.Z}.Sub(s.box.Offset)
	return block.IsWater(s.Block(local).ID)
}

func (s *Slice) computeHeightmaps() {
	criteria := map[string]func(id string) bool{
		WorldSurface:   func(id string) bool { return !block.IsAir(id) },
		MotionBlocking: block.IsMotionBlocking,
		MotionBlockingNoLeaves: func(id string) bool {
			return block.IsMotionBlocking(id) && !block.IsLeaves(id)
		},
		// Leaf canopies over water would otherwise read as the floor.
		OceanFloor: func(id string) bool {
			return block.IsSolid(id) && !block.IsLeaves(id)
		},
	}

	s.heightmaps = make(map[string][]int, len(criteria))
	for variant, matches := range criteria {
		hm := make([]int, s.box.Size.X*s.box.Size.Z)
		for x := 0; x < s.box.Size.X; x++ {
			for z := 0; z < s.box.Size.Z; z++ {
				// Default to the slice bottom when the whole column is empty.
				height := s.box.Offset.Y
				for y := s.box.Size.Y - 1; y >= 0; y-- {
					i, _ := s.index(vec.Vec3{X: x, Y: y, Z: z})
					// Positions the interface never reported stay empty; skip them.
					if s.blocks[i].ID == "" {
						continue
					}
					if matches(s.blocks[i].ID) {
						height = s.box.Offset.Y + y + 1
						break
					}
				}
				hm[x*s.box.Size.Z+z] = height
			}
		}
		s.heightmaps[variant] = hm
	}
}
