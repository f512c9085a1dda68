package block

// Category sets used for heightmap computation and terrain queries.
// The sets cover the vanilla blocks the decorators encounter; they are
// not exhaustive over every modded block.

var airs = map[string]bool{
	"minecraft:air":      true,
	"minecraft:cave_air": true,
	"minecraft:void_air": true,
}

var waters = map[string]bool{
	"minecraft:water":         true,
	"minecraft:flowing_water": true,
	"minecraft:bubble_column": true,
	"minecraft:kelp":          true,
	"minecraft:kelp_plant":    true,
	"minecraft:seagrass":      true,
	"minecraft:tall_seagrass": true,
	"minecraft:ice":           true,
}

var lavas = map[string]bool{
	"minecraft:lava":         true,
	"minecraft:flowing_lava": true,
}

// Plant-like blocks without a collision box; they do not register on
// motion-blocking heightmaps.
var nonBlockingPlants = map[string]bool{
	"minecraft:grass":             true,
	"minecraft:short_grass":       true,
	"minecraft:tall_grass":        true,
	"minecraft:fern":              true,
	"minecraft:large_fern":        true,
	"minecraft:dandelion":         true,
	"minecraft:poppy":             true,
	"minecraft:azure_bluet":       true,
	"minecraft:oxeye_daisy":       true,
	"minecraft:cornflower":        true,
	"minecraft:lily_of_the_valley": true,
	"minecraft:dead_bush":         true,
	"minecraft:sugar_cane":        true,
	"minecraft:sweet_berry_bush":  true,
	"minecraft:torch":             true,
	"minecraft:snow":              true,
}

// IsAir reports whether id is one of the air block IDs.
func IsAir(id string) bool { return airs[id] }

// IsWater reports whether id counts as water for terrain purposes,
// including ice and water plants.
func IsWater(id string) bool { return waters[id] }

// IsLava reports whether id is a lava block.
func IsLava(id string) bool { return lavas[id] }

// IsLeaves reports whether id is a leaf block.
func IsLeaves(id string) bool {
	const suffix = "_leaves"
	return len(id) > len(suffix) && id[len(id)-len(suffix):] == suffix
}

// IsMotionBlocking reports whether a column scanner should treat id as
// blocking motion (solid or fluid).
func IsMotionBlocking(id string) bool {
	if IsAir(id) || nonBlockingPlants[id] {
		return false
	}
	return true
}

// IsSolid reports whether id blocks motion and is not a fluid.
func IsSolid(id string) bool {
	return IsMotionBlocking(id) && !waters[id] && !lavas[id]
}
