package structure

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/nbt"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

// Structure is a parsed NBT structure template: a sparse set of
// positions indexing into a block palette.
type Structure struct {
	Blocks  map[vec.Vec3]int
	Palette []block.Block
	Size    vec.Vec3
}

// Load parses a structure template NBT file, gzipped or plain.
func Load(path string) (*Structure, error) {
	_, root, err := nbt.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return fromCompound(root, path)
}

// LoadBytes parses a structure template from raw NBT data.
func LoadBytes(data []byte) (*Structure, error) {
	_, root, err := nbt.ReadBytes(data)
	if err != nil {
		return nil, err
	}
	return fromCompound(root, "structure data")
}

func fromCompound(root nbt.Compound, name string) (*Structure, error) {
	s := &Structure{Blocks: map[vec.Vec3]int{}}

	rawPalette, ok := root.List("palette")
	if !ok {
		return nil, fmt.Errorf("%s: no palette tag", name)
	}
	for i, entry := range rawPalette {
		c, ok := entry.(nbt.Compound)
		if !ok {
			return nil, fmt.Errorf("%s: palette entry %d is not a compound", name, i)
		}
		id, ok := c.String("Name")
		if !ok {
			return nil, fmt.Errorf("%s: palette entry %d has no Name", name, i)
		}
		b := block.New(id)
		if props, ok := c.Compound("Properties"); ok {
			b.States = map[string]string{}
			for pname, pvalue := range props {
				if sv, ok := pvalue.(string); ok {
					b.States[pname] = sv
				}
			}
		}
		s.Palette = append(s.Palette, b)
	}

	rawBlocks, ok := root.List("blocks")
	if !ok {
		return nil, fmt.Errorf("%s: no blocks tag", name)
	}
	for i, entry := range rawBlocks {
		c, ok := entry.(nbt.Compound)
		if !ok {
			return nil, fmt.Errorf("%s: block entry %d is not a compound", name, i)
		}
		pos, ok := c.IntList("pos")
		if !ok || len(pos) != 3 {
			return nil, fmt.Errorf("%s: block entry %d has a malformed pos", name, i)
		}
		state, ok := c.Int("state")
		if !ok || state < 0 || state >= len(s.Palette) {
			return nil, fmt.Errorf("%s: block entry %d has an invalid palette index", name, i)
		}
		s.Blocks[vec.Vec3{X: pos[0], Y: pos[1], Z: pos[2]}] = state
	}

	if size, ok := root.IntList("size"); ok && len(size) == 3 {
		s.Size = vec.Vec3{X: size[0], Y: size[1], Z: size[2]}
	} else {
		s.Size = extent(s.Blocks)
	}
	return s, nil
}

func extent(blocks map[vec.Vec3]int) vec.Vec3 {
	var max vec.Vec3
	for pos := range blocks {
		if pos.X > max.X {
			max.X = pos.X
		}
		if pos.Y > max.Y {
			max.Y = pos.Y
		}
		if pos.Z > max.Z {
			max.Z = pos.Z
		}
	}
	return max.Add(vec.Vec3{X: 1, Y: 1, Z: 1})
}

// Placer places a palette-sampled block at a position. Implemented by
// the editor.
type Placer interface {
	Place(ctx context.Context, pos vec.Vec3, palette []block.Block, replace []string) error
}

// BuildOptions controls how a structure template is placed.
type BuildOptions struct {
	Transform  Transformation
	Origin     vec.Vec3               // template-local anchor the transform pivots on
	PlaceAir   bool                   // place the template's air blocks instead of skipping them
	DoNotPlace []string               // block IDs to skip, with or without the minecraft: prefix
	Swap       func(id string) string // optional material palette swap
}

// Build places the structure through p, applying the transformation to
// both positions and block states.
func Build(ctx context.Context, p Placer, s *Structure, opts BuildOptions) error {
	palette := opts.Transform.ApplyToPalette(s.Palette)

	skip := make(map[string]bool, len(opts.DoNotPlace))
	for _, id := range opts.DoNotPlace {
		skip[id] = true
	}

	for pos, index := range s.Blocks {
		b := palette[index]
		if skip[b.ID] || skip[strings.TrimPrefix(b.ID, "minecraft:")] {
			continue
		}
		if b.ID == "minecraft:air" && !opts.PlaceAir {
			continue
		}
		if opts.Swap != nil {
			b = b.Copy()
			b.ID = opts.Swap(b.ID)
		}
		world := opts.Transform.ApplyToPoint(pos, opts.Origin)
		if err := p.Place(ctx, world, []block.Block{b}, nil); err != nil {
			return fmt.Errorf("build structure block at %v: %w", world, err)
		}
	}
	return nil
}
