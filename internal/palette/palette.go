// Package palette swaps the building materials of block IDs between
// named material palettes.
package palette

import "strings"

// Palette names the materials a structure template is built from. Swap
// rewrites block IDs from one palette's materials to another's.
type Palette struct {
	Name               string `json:"name" yaml:"name"`
	PrimaryWood        string `json:"primary_wood" yaml:"primary_wood"`
	SecondaryWood      string `json:"secondary_wood" yaml:"secondary_wood"`
	PrimaryStone       string `json:"primary_stone" yaml:"primary_stone"`
	PrimaryStoneAccent string `json:"primary_stone_accent" yaml:"primary_stone_accent"`
}

// Default is the material palette templates are authored in.
func Default() Palette {
	return Palette{
		Name:               "default",
		PrimaryWood:        "oak",
		SecondaryWood:      "spruce",
		PrimaryStone:       "cobblestone",
		PrimaryStoneAccent: "stone_brick",
	}
}

func (p Palette) materials() [4]string {
	return [4]string{p.PrimaryWood, p.SecondaryWood, p.PrimaryStone, p.PrimaryStoneAccent}
}

// Swap rewrites blockID's material from the `from` palette to the `to`
// palette. The first matching material wins; IDs without a matching
// material are returned unchanged.
func Swap(blockID string, from, to Palette) string {
	fromMats := from.materials()
	toMats := to.materials()

	for i, target := range fromMats {
		if target == "" || !strings.Contains(blockID, target) {
			continue
		}
		// Don't mistake dark_oak for oak.
		if target == "oak" && strings.Contains(blockID, "dark_oak") {
			continue
		}
		result := toMats[i]
		swapped := strings.ReplaceAll(blockID, target, result)

		// "brick" materials need their plural normalized: standalone
		// brick blocks end in "bricks", material names end in "brick".
		if strings.HasSuffix(target, "brick") && strings.HasSuffix(blockID, "bricks") && !strings.HasSuffix(result, "brick") {
			swapped = strings.TrimSuffix(swapped, "s")
		}
		if strings.HasSuffix(swapped, "brick") {
			swapped += "s"
		}
		return swapped
	}
	return blockID
}

// Swapper returns a single-argument swap function between two palettes,
// in the shape structure building expects.
func Swapper(from, to Palette) func(string) string {
	return func(id string) string { return Swap(id, from, to) }
}
