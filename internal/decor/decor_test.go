package decor

import (
	"context"
	"log/slog"
	"testing"

	"github.com/go-theft-craft/decorator/internal/editor"
	"github.com/go-theft-craft/decorator/internal/gdmc"
	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/noise"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

// fakeClient serves a block map and records placements into it.
type fakeClient struct {
	world map[vec.Vec3]block.Block
}

func newFakeClient() *fakeClient {
	return &fakeClient{world: map[vec.Vec3]block.Block{}}
}

func (f *fakeClient) Version(ctx context.Context) (string, error) { return "1.19.2", nil }

func (f *fakeClient) BuildArea(ctx context.Context) (vec.Box, error) {
	return vec.Box{}, nil
}

func (f *fakeClient) Blocks(ctx context.Context, pos, size vec.Vec3) ([]gdmc.PlacedBlock, error) {
	if size == (vec.Vec3{}) {
		size = vec.Vec3{X: 1, Y: 1, Z: 1}
	}
	var out []gdmc.PlacedBlock
	for p := range (vec.Box{Offset: pos, Size: size}).Inner() {
		b, ok := f.world[p]
		if !ok {
			b = block.New("minecraft:air")
		}
		out = append(out, gdmc.PlacedBlock{Pos: p, Block: b})
	}
	return out, nil
}

func (f *fakeClient) Biomes(ctx context.Context, pos, size vec.Vec3) ([]gdmc.BiomeSample, error) {
	return nil, nil
}

func (f *fakeClient) PlaceBlocks(ctx context.Context, blocks []gdmc.PlacedBlock, opts gdmc.PlaceOptions) ([]gdmc.Result, error) {
	results := make([]gdmc.Result, len(blocks))
	for i, b := range blocks {
		f.world[b.Pos] = b.Block
		results[i] = gdmc.Result{OK: true}
	}
	return results, nil
}

func (f *fakeClient) Command(ctx context.Context, command string) ([]gdmc.Result, error) {
	return []gdmc.Result{{OK: true}}, nil
}

// flatSite builds a flat grass world over a rect and a matching site.
func flatSite(t *testing.T, sizeX, sizeZ, groundY int) (*Site, *fakeClient) {
	t.Helper()
	f := newFakeClient()
	rect := vec.Rect{Size: vec.Vec2{X: sizeX, Z: sizeZ}}
	for column := range rect.Inner() {
		f.world[vec.Vec3{X: column.X, Y: groundY, Z: column.Z}] = block.New("minecraft:grass_block")
		f.world[vec.Vec3{X: column.X, Y: groundY - 1, Z: column.Z}] = block.New("minecraft:stone")
	}

	e := editor.New(f, editor.Options{Buffering: true, BufferLimit: 1 << 16})
	box := rect.ToBox(groundY-2, 8)
	if err := e.LoadWorldSlice(context.Background(), box); err != nil {
		t.Fatalf("LoadWorldSlice failed: %v", err)
	}
	return &Site{
		Editor: e,
		Rect:   rect,
		Noise:  noise.New(1),
		Log:    slog.Default(),
	}, f
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"grass", "desert", "forest_jungle"} {
		d, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", name, err)
		}
		if d.Name() != name {
			t.Errorf("decorator name = %s, want %s", d.Name(), name)
		}
	}
	if _, err := Load("nether"); err == nil {
		t.Error("expected error for unknown decorator")
	}
	if len(Registered()) < 3 {
		t.Errorf("registered = %v", Registered())
	}
}

func TestGroundHeight(t *testing.T) {
	site, _ := flatSite(t, 4, 4, 64)
	if got := site.GroundHeight(vec.Vec2{X: 1, Z: 1}); got != 65 {
		t.Errorf("ground height = %d, want 65", got)
	}
	min, max := site.HeightBounds()
	if min != 65 || max != 65 {
		t.Errorf("height bounds = %d..%d, want flat 65", min, max)
	}
}

func TestClearArea(t *testing.T) {
	f := newFakeClient()
	rect := vec.Rect{Size: vec.Vec2{X: 3, Z: 3}}
	// Uneven terrain: a pillar sticking out of flat ground.
	for column := range rect.Inner() {
		f.world[vec.Vec3{X: column.X, Y: 64, Z: column.Z}] = block.New("minecraft:stone")
	}
	f.world[vec.Vec3{X: 1, Y: 65, Z: 1}] = block.New("minecraft:stone")
	f.world[vec.Vec3{X: 1, Y: 66, Z: 1}] = block.New("minecraft:stone")

	e := editor.New(f, editor.Options{Buffering: true, BufferLimit: 1 << 16})
	if err := e.LoadWorldSlice(context.Background(), rect.ToBox(60, 10)); err != nil {
		t.Fatal(err)
	}
	site := &Site{Editor: e, Rect: rect, Log: slog.Default()}

	if err := ClearArea(context.Background(), site); err != nil {
		t.Fatalf("ClearArea failed: %v", err)
	}
	if err := e.FlushBuffer(context.Background()); err != nil {
		t.Fatal(err)
	}
	if f.world[vec.Vec3{X: 1, Y: 66, Z: 1}].ID != "minecraft:air" {
		t.Error("pillar not cleared")
	}
}

func TestDesertDecorate(t *testing.T) {
	site, f := flatSite(t, 8, 8, 64)
	d, err := Load("desert")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Decorate(context.Background(), site); err != nil {
		t.Fatalf("Decorate failed: %v", err)
	}

	center := site.Rect.Center()
	baseY := 65
	if got := f.world[vec.Vec3{X: center.X, Y: baseY + 1, Z: center.Z}]; got.ID != "minecraft:beacon" {
		t.Errorf("block above base = %s, want beacon", got.ID)
	}
	if got := f.world[vec.Vec3{X: center.X, Y: baseY + 2, Z: center.Z}]; got.ID != "minecraft:purple_stained_glass" {
		t.Errorf("beacon cap = %s", got.ID)
	}
	// The emerald disk overwrites the lava at the center.
	if got := f.world[vec.Vec3{X: center.X, Y: baseY, Z: center.Z}]; got.ID != "minecraft:emerald_block" {
		t.Errorf("beacon base = %s", got.ID)
	}
	// Just outside the disk the lava remains.
	if got := f.world[vec.Vec3{X: center.X + 5, Y: baseY, Z: center.Z}]; got.ID != "minecraft:lava" {
		t.Errorf("oasis block = %s, want lava", got.ID)
	}
}

func TestForestJungleDecorate(t *testing.T) {
	site, f := flatSite(t, 8, 8, 64)
	d, err := Load("forest_jungle")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Decorate(context.Background(), site); err != nil {
		t.Fatalf("Decorate failed: %v", err)
	}

	center := site.Rect.Center()
	baseY := 65
	if got := f.world[vec.Vec3{X: center.X, Y: baseY + 1, Z: center.Z}]; got.ID != "minecraft:beacon" {
		t.Errorf("block above base = %s, want beacon", got.ID)
	}
	// The innermost bamboo ring passes through the column 3 east of
	// center (diameter 7 tube).
	found := false
	for x := center.X - 4; x <= center.X+4; x++ {
		if f.world[vec.Vec3{X: x, Y: baseY, Z: center.Z}].ID == "minecraft:bamboo" {
			found = true
		}
	}
	if !found {
		t.Error("no bamboo ring found near the center")
	}
	// The platform disk sits one below the base.
	if got := f.world[vec.Vec3{X: center.X + 3, Y: baseY - 1, Z: center.Z}]; got.ID != "minecraft:grass_block" {
		t.Errorf("platform block = %s", got.ID)
	}
}

func TestGrassDecorate(t *testing.T) {
	site, f := flatSite(t, 8, 8, 64)
	d, err := Load("grass")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Decorate(context.Background(), site); err != nil {
		t.Fatalf("Decorate failed: %v", err)
	}

	// The perimeter wall follows the terrain at each outline point.
	corner := site.Rect.Begin()
	wallY := 65
	if got := f.world[vec.Vec3{X: corner.X, Y: wallY, Z: corner.Z}]; got.ID != "minecraft:mossy_stone_bricks" {
		t.Errorf("wall base = %s", got.ID)
	}
	if got := f.world[vec.Vec3{X: corner.X, Y: wallY + 6, Z: corner.Z}]; got.ID != "minecraft:mossy_stone_bricks" {
		t.Errorf("wall top = %s", got.ID)
	}

	// The tower's lowest tube ring exists at the center height.
	center := site.Rect.Center()
	found := false
	for x := center.X - 16; x <= center.X+16; x++ {
		if f.world[vec.Vec3{X: x, Y: 65, Z: center.Z}].ID == "minecraft:dark_oak_planks" {
			found = true
		}
	}
	if !found {
		t.Error("no tower ring found at base height")
	}
}

func TestScatterVegetation(t *testing.T) {
	site, f := flatSite(t, 16, 16, 64)

	if err := scatterVegetation(context.Background(), site, grassVegetation); err != nil {
		t.Fatalf("scatterVegetation failed: %v", err)
	}
	if err := site.Editor.FlushBuffer(context.Background()); err != nil {
		t.Fatal(err)
	}

	plants := 0
	for pos, b := range f.world {
		switch b.ID {
		case "minecraft:short_grass", "minecraft:poppy", "minecraft:dandelion":
			plants++
			if pos.Y != 65 {
				t.Errorf("plant at y=%d, want 65", pos.Y)
			}
			if below := f.world[pos.AddY(-1)]; below.ID != "minecraft:grass_block" {
				t.Errorf("plant above %s", below.ID)
			}
		}
	}
	if plants == 0 {
		t.Skip("noise field placed no plants on this seed area")
	}
}
