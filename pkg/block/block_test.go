package block

import "testing"

func TestString(t *testing.T) {
	b := Block{
		ID:     "minecraft:oak_log",
		States: map[string]string{"axis": "x"},
	}
	if got := b.String(); got != "minecraft:oak_log[axis=x]" {
		t.Errorf("String = %q", got)
	}

	b = Block{
		ID:     "minecraft:chest",
		States: map[string]string{"facing": "north", "type": "single"},
		Data:   `{Items:[]}`,
	}
	if got := b.String(); got != "minecraft:chest[facing=north,type=single]{Items:[]}" {
		t.Errorf("String = %q", got)
	}

	if got := (Block{}).String(); got != "" {
		t.Errorf("nothing-block String = %q, want empty", got)
	}
}

func TestTransformFacing(t *testing.T) {
	tests := []struct {
		facing   string
		rotation int
		flip     [3]bool
		want     string
	}{
		{"north", 1, [3]bool{}, "east"},
		{"north", 2, [3]bool{}, "south"},
		{"west", 1, [3]bool{}, "north"},
		{"up", 3, [3]bool{}, "up"},
		{"east", 0, [3]bool{true, false, false}, "west"},
		{"north", 0, [3]bool{false, false, true}, "south"},
		// Flip first, rotate second.
		{"north", 1, [3]bool{false, false, true}, "west"},
	}
	for _, tt := range tests {
		if got := TransformFacing(tt.facing, tt.rotation, tt.flip); got != tt.want {
			t.Errorf("TransformFacing(%q, %d, %v) = %q, want %q",
				tt.facing, tt.rotation, tt.flip, got, tt.want)
		}
	}
}

func TestTransformAxis(t *testing.T) {
	if got := TransformAxis("x", 1); got != "z" {
		t.Errorf("axis x rotated once = %q, want z", got)
	}
	if got := TransformAxis("x", 2); got != "x" {
		t.Errorf("axis x rotated twice = %q, want x", got)
	}
	if got := TransformAxis("y", 3); got != "y" {
		t.Errorf("axis y = %q, want y", got)
	}
}

func TestTransformRotation(t *testing.T) {
	if got := TransformRotation("0", 1, [3]bool{}); got != "4" {
		t.Errorf("rotation 0 + quarter turn = %q, want 4", got)
	}
	if got := TransformRotation("12", 2, [3]bool{}); got != "4" {
		t.Errorf("rotation 12 + half turn = %q, want 4", got)
	}
	if got := TransformRotation("3", 0, [3]bool{true, false, false}); got != "13" {
		t.Errorf("rotation 3 x-flipped = %q, want 13", got)
	}
}

func TestBlockTransform(t *testing.T) {
	b := Block{
		ID:     "minecraft:furnace",
		States: map[string]string{"facing": "north", "lit": "false"},
	}
	got := b.Transformed(1, [3]bool{})
	if got.States["facing"] != "east" {
		t.Errorf("facing = %q, want east", got.States["facing"])
	}
	if got.States["lit"] != "false" {
		t.Errorf("unrelated state changed: %v", got.States)
	}
	// The original must be untouched.
	if b.States["facing"] != "north" {
		t.Error("Transformed mutated the receiver")
	}
}

func TestCategorySets(t *testing.T) {
	if !IsAir("minecraft:air") || IsAir("minecraft:stone") {
		t.Error("IsAir misclassifies")
	}
	if !IsWater("minecraft:water") || !IsWater("minecraft:ice") || IsWater("minecraft:sand") {
		t.Error("IsWater misclassifies")
	}
	if !IsLeaves("minecraft:oak_leaves") || IsLeaves("minecraft:oak_log") {
		t.Error("IsLeaves misclassifies")
	}
	if IsMotionBlocking("minecraft:tall_grass") || !IsMotionBlocking("minecraft:water") {
		t.Error("IsMotionBlocking misclassifies")
	}
	if IsSolid("minecraft:water") || !IsSolid("minecraft:stone") {
		t.Error("IsSolid misclassifies")
	}
}
