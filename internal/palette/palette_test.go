package palette

import "testing"

func desert() Palette {
	return Palette{
		Name:               "desert",
		PrimaryWood:        "jungle",
		SecondaryWood:      "acacia",
		PrimaryStone:       "sandstone",
		PrimaryStoneAccent: "cut_sandstone",
	}
}

func TestSwapWood(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"minecraft:oak_planks", "minecraft:jungle_planks"},
		{"minecraft:oak_stairs", "minecraft:jungle_stairs"},
		{"minecraft:spruce_fence", "minecraft:acacia_fence"},
		{"minecraft:cobblestone", "minecraft:sandstone"},
		{"minecraft:glass", "minecraft:glass"},
	}
	for _, tt := range tests {
		if got := Swap(tt.in, Default(), desert()); got != tt.want {
			t.Errorf("Swap(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSwapDarkOakNotOak(t *testing.T) {
	from := Default()
	to := desert()
	if got := Swap("minecraft:dark_oak_planks", from, to); got != "minecraft:dark_oak_planks" {
		t.Errorf("dark_oak swapped as oak: %s", got)
	}
}

func TestSwapBrickPlural(t *testing.T) {
	from := Default() // accent: stone_brick
	to := desert()    // accent: cut_sandstone

	// The standalone block is plural; the swapped ID must not keep the s.
	if got := Swap("minecraft:stone_bricks", from, to); got != "minecraft:cut_sandstone" {
		t.Errorf("stone_bricks = %s, want minecraft:cut_sandstone", got)
	}
	// Derived blocks keep their suffixes.
	if got := Swap("minecraft:stone_brick_stairs", from, to); got != "minecraft:cut_sandstone_stairs" {
		t.Errorf("stone_brick_stairs = %s", got)
	}
}

func TestSwapFirstMatchWins(t *testing.T) {
	// "cut_sandstone" also contains the plain stone material, which
	// comes first in the material order.
	if got := Swap("minecraft:cut_sandstone", desert(), Default()); got != "minecraft:cut_cobblestone" {
		t.Errorf("cut_sandstone = %s, want minecraft:cut_cobblestone", got)
	}
}

func TestSwapIntoBrickGainsPlural(t *testing.T) {
	from := Palette{PrimaryStoneAccent: "polished_granite"}
	to := Palette{PrimaryStoneAccent: "stone_brick"}
	// No block ID ends in a bare "brick"; the swap restores the plural.
	if got := Swap("minecraft:polished_granite", from, to); got != "minecraft:stone_bricks" {
		t.Errorf("polished_granite = %s, want minecraft:stone_bricks", got)
	}
}

func TestSwapper(t *testing.T) {
	swap := Swapper(Default(), desert())
	if got := swap("minecraft:oak_log"); got != "minecraft:jungle_log" {
		t.Errorf("swapper = %s", got)
	}
}
