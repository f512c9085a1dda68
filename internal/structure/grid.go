package structure

import (
	"context"

	"github.com/go-theft-craft/decorator/pkg/vec"
)

// Grid maps between three coordinate spaces when placing templates on a
// regular cell layout: grid coordinates (cell indices), local
// coordinates (blocks relative to the grid origin) and world
// coordinates. Adjacent cells share their boundary blocks, so a cell
// advances by its size minus one.
type Grid struct {
	CellSize vec.Vec3
	Origin   vec.Vec3
}

// NewGrid creates a grid of 7x5x7 cells at the given world origin.
func NewGrid(origin vec.Vec3) Grid {
	return Grid{CellSize: vec.Vec3{X: 7, Y: 5, Z: 7}, Origin: origin}
}

// GridToLocal converts cell indices to local block coordinates.
func (g Grid) GridToLocal(cell vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: cell.X * (g.CellSize.X - 1),
		Y: cell.Y * (g.CellSize.Y - 1),
		Z: cell.Z * (g.CellSize.Z - 1),
	}
}

// LocalToWorld converts local block coordinates to world coordinates.
func (g Grid) LocalToWorld(local vec.Vec3) vec.Vec3 {
	return local.Add(g.Origin)
}

// GridToWorld converts cell indices to world coordinates.
func (g Grid) GridToWorld(cell vec.Vec3) vec.Vec3 {
	return g.LocalToWorld(g.GridToLocal(cell))
}

// LocalToGrid converts local block coordinates to the containing cell.
// Blocks on a shared boundary belong to the higher cell.
func (g Grid) LocalToGrid(local vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: floorDiv(local.X, g.CellSize.X-1),
		Y: floorDiv(local.Y, g.CellSize.Y-1),
		Z: floorDiv(local.Z, g.CellSize.Z-1),
	}
}

// WorldToLocal converts world coordinates to local block coordinates.
func (g Grid) WorldToLocal(world vec.Vec3) vec.Vec3 {
	return world.Sub(g.Origin)
}

// WorldToGrid converts world coordinates to the containing cell.
func (g Grid) WorldToGrid(world vec.Vec3) vec.Vec3 {
	return g.LocalToGrid(g.WorldToLocal(world))
}

// BuildOriented places a template in a grid cell, turned from the
// template's own facing toward the wanted facing by combining diagonal
// and axis mirrors.
func (g Grid) BuildOriented(ctx context.Context, p Placer, s *Structure, opts BuildOptions, cell vec.Vec3, templateFacing, wantFacing Direction) error {
	local := g.GridToLocal(cell).Add(g.Origin)

	transform := Transformation{Offset: local}
	switch {
	case wantFacing == "" || templateFacing == "" || templateFacing == wantFacing:
		// Keep the template's own orientation.
	case templateFacing.Right() == wantFacing:
		transform.DiagonalMirror = true
	case templateFacing.Left() == wantFacing:
		transform = Transformation{
			Offset:         local.Add(vec.Vec3{Z: g.CellSize.Z - 1}),
			DiagonalMirror: true,
			Mirror:         [3]bool{true, false, false},
		}
	case templateFacing.Opposite() == wantFacing:
		transform = Transformation{
			Offset: local.Add(vec.Vec3{X: g.CellSize.X - 1}),
			Mirror: [3]bool{true, false, false},
		}
	}

	opts.Transform = transform
	return Build(ctx, p, s, opts)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
