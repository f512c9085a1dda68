// Package decor contains the biome decorators: routines that clear and
// rebuild the build area with biome-themed features.
package decor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-theft-craft/decorator/internal/assets"
	"github.com/go-theft-craft/decorator/internal/editor"
	"github.com/go-theft-craft/decorator/internal/world"
	"github.com/go-theft-craft/decorator/pkg/noise"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

// Site is everything a decorator works with: the editor, the build
// rectangle and the loaded assets.
type Site struct {
	Editor *editor.Editor
	Rect   vec.Rect
	Assets *assets.Registry
	Noise  *noise.Generator
	Log    *slog.Logger
}

// GroundHeight returns the terrain height of a column, ignoring leaf
// canopies. The editor's world slice must be loaded.
func (s *Site) GroundHeight(column vec.Vec2) int {
	return s.Editor.WorldSlice().HeightAt(world.MotionBlockingNoLeaves, column)
}

// HeightBounds returns the lowest and highest terrain height over the
// build rectangle.
func (s *Site) HeightBounds() (min, max int) {
	first := true
	for column := range s.Rect.Inner() {
		h := s.GroundHeight(column)
		if first {
			min, max = h, h
			first = false
			continue
		}
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	return min, max
}

// Decorator reshapes the build area in one biome's style.
type Decorator interface {
	Name() string
	Decorate(ctx context.Context, site *Site) error
}

var decorators = map[string]func() Decorator{}

// Register makes a decorator available under its name. Called from the
// decorators' init functions.
func Register(name string, factory func() Decorator) {
	decorators[name] = factory
}

// Load returns a fresh decorator by name.
func Load(name string) (Decorator, error) {
	f, ok := decorators[name]
	if !ok {
		return nil, fmt.Errorf("unknown decorator: %s", name)
	}
	return f(), nil
}

// Registered returns the names of all registered decorators.
func Registered() []string {
	names := make([]string, 0, len(decorators))
	for name := range decorators {
		names = append(names, name)
	}
	return names
}
