// Package editor provides buffered, cached access to a Minecraft world
// through the GDMC HTTP interface. All block reads and writes of the
// decoration pipeline go through an Editor.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"

	"github.com/go-theft-craft/decorator/internal/gdmc"
	"github.com/go-theft-craft/decorator/internal/world"
	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/recency"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

// Client is the part of the GDMC client an Editor needs.
type Client interface {
	Version(ctx context.Context) (string, error)
	BuildArea(ctx context.Context) (vec.Box, error)
	Blocks(ctx context.Context, pos, size vec.Vec3) ([]gdmc.PlacedBlock, error)
	Biomes(ctx context.Context, pos, size vec.Vec3) ([]gdmc.BiomeSample, error)
	PlaceBlocks(ctx context.Context, blocks []gdmc.PlacedBlock, opts gdmc.PlaceOptions) ([]gdmc.Result, error)
	Command(ctx context.Context, command string) ([]gdmc.Result, error)
}

// Options configures an Editor.
type Options struct {
	Buffering   bool
	BufferLimit int // flush threshold when buffering, default 1024
	CacheLimit  int // block cache capacity, default 8192, 0 keeps the default
	Place       gdmc.PlaceOptions
	Seed        int64 // seed for palette sampling
	Logger      *slog.Logger
}

// Editor reads and writes world blocks with write buffering and a
// bounded read cache. The cache keeps the most recently touched
// positions; both reads and writes refresh a position's recency.
//
// An Editor is safe for use from multiple goroutines; all operations
// take one internal lock.
type Editor struct {
	mu     sync.Mutex
	client Client
	log    *slog.Logger

	buffering   bool
	bufferLimit int
	buffer      map[vec.Vec3]block.Block
	bufferOrder []vec.Vec3
	commands    []string

	cache *recency.Cache[vec.Vec3, block.Block]

	slice *world.Slice
	decay map[vec.Vec3]struct{}

	buildArea *vec.Box
	place     gdmc.PlaceOptions
	rng       *rand.Rand
}

const (
	defaultBufferLimit = 1024
	defaultCacheLimit  = 8192
)

// New creates an Editor over the given client.
func New(client Client, opts Options) *Editor {
	if opts.BufferLimit <= 0 {
		opts.BufferLimit = defaultBufferLimit
	}
	if opts.CacheLimit <= 0 {
		opts.CacheLimit = defaultCacheLimit
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	cache, err := recency.New[vec.Vec3, block.Block](opts.CacheLimit)
	if err != nil {
		// Limits are clamped positive above.
		panic(err)
	}
	return &Editor{
		client:      client,
		log:         log,
		buffering:   opts.Buffering,
		bufferLimit: opts.BufferLimit,
		buffer:      map[vec.Vec3]block.Block{},
		cache:       cache,
		decay:       map[vec.Vec3]struct{}{},
		place:       opts.Place,
		rng:         rand.New(rand.NewSource(opts.Seed)),
	}
}

// CheckConnection verifies the GDMC HTTP interface is reachable.
func (e *Editor) CheckConnection(ctx context.Context) error {
	_, err := e.client.Version(ctx)
	if err != nil {
		return fmt.Errorf("check connection: %w", err)
	}
	return nil
}

// BuildArea returns the in-game build area, cached after the first call.
func (e *Editor) BuildArea(ctx context.Context) (vec.Box, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.buildArea != nil {
		return *e.buildArea, nil
	}
	ba, err := e.client.BuildArea(ctx)
	if err != nil {
		return vec.Box{}, err
	}
	e.buildArea = &ba
	return ba, nil
}

// LoadWorldSlice snapshots the given box so subsequent reads inside it
// avoid the network. Placing a block marks its position stale, so reads
// there fall back to the cache or the interface.
func (e *Editor) LoadWorldSlice(ctx context.Context, box vec.Box) error {
	s, err := world.Load(ctx, e.client, box)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.slice = s
	e.decay = map[vec.Vec3]struct{}{}
	e.mu.Unlock()
	e.log.Info("loaded world slice", "offset", box.Offset, "size", box.Size)
	return nil
}

// WorldSlice returns the loaded slice, or nil.
func (e *Editor) WorldSlice() *world.Slice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.slice
}

// GetBlock returns the block at pos. The write buffer, the block cache
// and the world slice are consulted before the GDMC interface.
func (e *Editor) GetBlock(ctx context.Context, pos vec.Vec3) (block.Block, error) {
	e.mu.Lock()

	if e.buffering {
		if b, ok := e.buffer[pos]; ok {
			e.mu.Unlock()
			return b, nil
		}
	}
	if b, err := e.cache.Get(pos); err == nil {
		e.mu.Unlock()
		return b, nil
	}
	if e.slice != nil && e.slice.Box().Contains(pos) {
		if _, stale := e.decay[pos]; !stale {
			b := e.slice.BlockGlobal(pos)
			e.cache.Set(pos, b)
			e.mu.Unlock()
			return b, nil
		}
	}
	e.mu.Unlock()

	placed, err := e.client.Blocks(ctx, pos, vec.Vec3{})
	if err != nil {
		return block.Block{}, err
	}
	if len(placed) == 0 {
		return block.Block{}, fmt.Errorf("interface returned no block for %v", pos)
	}
	b := placed[0].Block

	e.mu.Lock()
	e.cache.Set(pos, b)
	e.mu.Unlock()
	return b, nil
}

// PlaceBlock places a single block at pos.
func (e *Editor) PlaceBlock(ctx context.Context, pos vec.Vec3, b block.Block) error {
	return e.Place(ctx, pos, []block.Block{b}, nil)
}

// Place places a block sampled uniformly from palette at pos. An empty
// palette or a sampled empty block is a no-op, which lets palettes
// contain "keep existing" entries. When replace is non-empty, the block
// is only placed if the current block's ID is in replace.
func (e *Editor) Place(ctx context.Context, pos vec.Vec3, palette []block.Block, replace []string) error {
	if len(palette) == 0 {
		return nil
	}

	e.mu.Lock()
	b := palette[e.rng.Intn(len(palette))]
	e.mu.Unlock()
	if b.IsNothing() {
		return nil
	}

	if len(replace) > 0 {
		current, err := e.GetBlock(ctx, pos)
		if err != nil {
			return fmt.Errorf("read block for replace filter: %w", err)
		}
		found := false
		for _, id := range replace {
			if current.ID == id {
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}

	e.mu.Lock()
	if e.buffering {
		if _, ok := e.buffer[pos]; !ok {
			e.bufferOrder = append(e.bufferOrder, pos)
		}
		e.buffer[pos] = b
		e.cache.Set(pos, b)
		e.decay[pos] = struct{}{}
		needFlush := len(e.buffer) >= e.bufferLimit
		e.mu.Unlock()
		if needFlush {
			return e.FlushBuffer(ctx)
		}
		return nil
	}
	e.cache.Set(pos, b)
	e.decay[pos] = struct{}{}
	e.mu.Unlock()

	results, err := e.client.PlaceBlocks(ctx, []gdmc.PlacedBlock{{Pos: pos, Block: b}}, e.place)
	if err != nil {
		return err
	}
	for _, r := range results {
		if !r.OK && r.Message != "" {
			return fmt.Errorf("place %s at %v: %s", b.ID, pos, r.Message)
		}
	}
	return nil
}

// RunCommand runs a Minecraft command on the server. With syncWithBuffer
// set while buffering, the command is deferred until the next flush so
// it runs after the buffered blocks are placed.
func (e *Editor) RunCommand(ctx context.Context, command string, syncWithBuffer bool) error {
	e.mu.Lock()
	if e.buffering && syncWithBuffer {
		e.commands = append(e.commands, command)
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()

	results, err := e.client.Command(ctx, command)
	if err != nil {
		return err
	}
	return commandErrors(results)
}

// FlushBuffer sends all buffered blocks, then all deferred commands.
func (e *Editor) FlushBuffer(ctx context.Context) error {
	e.mu.Lock()
	blocks := make([]gdmc.PlacedBlock, 0, len(e.bufferOrder))
	for _, pos := range e.bufferOrder {
		blocks = append(blocks, gdmc.PlacedBlock{Pos: pos, Block: e.buffer[pos]})
	}
	commands := e.commands
	e.buffer = map[vec.Vec3]block.Block{}
	e.bufferOrder = nil
	e.commands = nil
	e.mu.Unlock()

	if len(blocks) > 0 {
		results, err := e.client.PlaceBlocks(ctx, blocks, e.place)
		if err != nil {
			return fmt.Errorf("flush block buffer: %w", err)
		}
		failed := 0
		for _, r := range results {
			if !r.OK {
				failed++
			}
		}
		if failed > 0 {
			e.log.Warn("some buffered placements failed", "failed", failed, "total", len(blocks))
		}
	}
	if len(commands) > 0 {
		results, err := e.client.Command(ctx, strings.Join(commands, "\n"))
		if err != nil {
			return fmt.Errorf("flush command buffer: %w", err)
		}
		if err := commandErrors(results); err != nil {
			return err
		}
	}
	return nil
}

func commandErrors(results []gdmc.Result) error {
	for _, r := range results {
		if !r.OK && r.Message != "" {
			return fmt.Errorf("command failed: %s", r.Message)
		}
	}
	return nil
}

// SetBuffering toggles write buffering. Disabling it flushes first.
func (e *Editor) SetBuffering(ctx context.Context, on bool) error {
	e.mu.Lock()
	wasOn := e.buffering
	e.buffering = on
	e.mu.Unlock()
	if wasOn && !on {
		return e.FlushBuffer(ctx)
	}
	return nil
}

// BufferedCount returns the number of blocks waiting in the buffer.
func (e *Editor) BufferedCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.buffer)
}

// CacheLimit returns the block cache capacity.
func (e *Editor) CacheLimit() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.Capacity()
}

// SetCacheLimit changes the block cache capacity, evicting the least
// recently used entries if the cache shrinks below its current size.
func (e *Editor) SetCacheLimit(limit int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.SetCapacity(limit)
}
