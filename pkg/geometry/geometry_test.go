package geometry

import (
	"context"
	"testing"

	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

type recordingPlacer struct {
	placed map[vec.Vec3]bool
	order  []vec.Vec3
}

func newRecordingPlacer() *recordingPlacer {
	return &recordingPlacer{placed: map[vec.Vec3]bool{}}
}

func (r *recordingPlacer) Place(ctx context.Context, pos vec.Vec3, palette []block.Block, replace []string) error {
	r.placed[pos] = true
	r.order = append(r.order, pos)
	return nil
}

var stone = []block.Block{block.New("minecraft:stone")}

func TestCuboid(t *testing.T) {
	p := newRecordingPlacer()
	box := vec.Box{Offset: vec.Vec3{X: 1, Y: 2, Z: 3}, Size: vec.Vec3{X: 2, Y: 3, Z: 4}}

	if err := Cuboid(context.Background(), p, box, stone, nil); err != nil {
		t.Fatal(err)
	}
	if len(p.placed) != box.Volume() {
		t.Errorf("placed %d blocks, want %d", len(p.placed), box.Volume())
	}
	if !p.placed[box.Offset] || !p.placed[box.Last()] {
		t.Error("cuboid corners missing")
	}
}

func TestCuboidHollow(t *testing.T) {
	p := newRecordingPlacer()
	box := vec.Box{Size: vec.Vec3{X: 4, Y: 4, Z: 4}}

	if err := CuboidHollow(context.Background(), p, box, stone, nil); err != nil {
		t.Fatal(err)
	}
	inner := (4 - 2) * (4 - 2) * (4 - 2)
	if len(p.placed) != box.Volume()-inner {
		t.Errorf("placed %d blocks, want %d", len(p.placed), box.Volume()-inner)
	}
	if p.placed[vec.Vec3{X: 1, Y: 1, Z: 1}] {
		t.Error("hollow cuboid filled an interior block")
	}
}

func TestRectAtHeight(t *testing.T) {
	p := newRecordingPlacer()
	rect := vec.Rect{Offset: vec.Vec2{X: 0, Z: 0}, Size: vec.Vec2{X: 3, Z: 2}}

	if err := Rect(context.Background(), p, rect, 70, stone, nil); err != nil {
		t.Fatal(err)
	}
	if len(p.placed) != 6 {
		t.Errorf("placed %d blocks, want 6", len(p.placed))
	}
	for pos := range p.placed {
		if pos.Y != 70 {
			t.Errorf("block at y=%d, want 70", pos.Y)
		}
	}
}

func TestRectOutline(t *testing.T) {
	p := newRecordingPlacer()
	rect := vec.Rect{Size: vec.Vec2{X: 4, Z: 3}}

	if err := RectOutline(context.Background(), p, rect, 64, stone, nil); err != nil {
		t.Fatal(err)
	}
	if len(p.placed) != 10 {
		t.Errorf("placed %d blocks, want 10", len(p.placed))
	}
	if p.placed[vec.Vec3{X: 1, Y: 64, Z: 1}] {
		t.Error("outline filled an interior block")
	}
}

func TestLine(t *testing.T) {
	p := newRecordingPlacer()
	if err := Line(context.Background(), p, vec.Vec3{}, vec.Vec3{X: 4}, stone, nil); err != nil {
		t.Fatal(err)
	}
	if len(p.order) != 5 {
		t.Errorf("line length = %d, want 5", len(p.order))
	}
	if p.order[0] != (vec.Vec3{}) || p.order[4] != (vec.Vec3{X: 4}) {
		t.Errorf("line endpoints wrong: %v", p.order)
	}
}

func TestCylinderSolidVsTube(t *testing.T) {
	solid := newRecordingPlacer()
	if err := Cylinder(context.Background(), solid, vec.Vec3{Y: 60}, 5, 3, false, false, stone, nil); err != nil {
		t.Fatal(err)
	}
	tube := newRecordingPlacer()
	if err := Cylinder(context.Background(), tube, vec.Vec3{Y: 60}, 5, 3, true, false, stone, nil); err != nil {
		t.Fatal(err)
	}
	if len(tube.placed) >= len(solid.placed) {
		t.Errorf("tube (%d) should place fewer blocks than solid (%d)", len(tube.placed), len(solid.placed))
	}
	for pos := range solid.placed {
		if pos.Y < 60 || pos.Y > 62 {
			t.Errorf("cylinder block outside height range: %v", pos)
		}
	}
}
