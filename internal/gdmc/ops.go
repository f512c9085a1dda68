package gdmc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

// blockJSON is the wire shape of a block in /blocks requests and
// responses.
type blockJSON struct {
	ID    string            `json:"id"`
	X     int               `json:"x"`
	Y     int               `json:"y"`
	Z     int               `json:"z"`
	State map[string]string `json:"state,omitempty"`
	Data  string            `json:"data,omitempty"`
}

type biomeJSON struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
	Z  int    `json:"z"`
}

type resultJSON struct {
	Status  *int   `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

type buildAreaJSON struct {
	XFrom int `json:"xFrom"`
	YFrom int `json:"yFrom"`
	ZFrom int `json:"zFrom"`
	XTo   int `json:"xTo"`
	YTo   int `json:"yTo"`
	ZTo   int `json:"zTo"`
}

// Version returns the Minecraft version string of the connected instance.
func (c *Client) Version(ctx context.Context) (string, error) {
	data, _, err := c.do(ctx, http.MethodGet, "/version", nil, nil, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// BuildArea returns the build area configured in-game with
// /setbuildarea. Fails with ErrBuildAreaNotSet when none is configured.
func (c *Client) BuildArea(ctx context.Context) (vec.Box, error) {
	data, status, err := c.do(ctx, http.MethodGet, "/buildarea", nil, nil, nil)
	if err != nil {
		return vec.Box{}, err
	}
	// Older interface versions return the literal -1 instead of an
	// error status when no build area is set.
	if status != http.StatusOK || strings.TrimSpace(string(data)) == "-1" {
		return vec.Box{}, ErrBuildAreaNotSet
	}
	var ba buildAreaJSON
	if err := json.Unmarshal(data, &ba); err != nil {
		return vec.Box{}, fmt.Errorf("decode build area: %w", err)
	}
	return vec.BoxBetween(
		vec.Vec3{X: ba.XFrom, Y: ba.YFrom, Z: ba.ZFrom},
		vec.Vec3{X: ba.XTo, Y: ba.YTo, Z: ba.ZTo},
	), nil
}

// Blocks reads the blocks in the box [pos, pos+size). A zero size reads
// the single block at pos.
func (c *Client) Blocks(ctx context.Context, pos, size vec.Vec3) ([]PlacedBlock, error) {
	q := sizeQuery(pos, size)
	q.Set("includeState", "true")
	q.Set("includeData", "true")

	data, _, err := c.do(ctx, http.MethodGet, "/blocks", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var raw []blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode blocks: %w", err)
	}
	out := make([]PlacedBlock, len(raw))
	for i, b := range raw {
		out[i] = PlacedBlock{
			Pos:   vec.Vec3{X: b.X, Y: b.Y, Z: b.Z},
			Block: block.Block{ID: b.ID, States: b.State, Data: b.Data},
		}
	}
	return out, nil
}

// Biomes reads the biomes in the box [pos, pos+size).
func (c *Client) Biomes(ctx context.Context, pos, size vec.Vec3) ([]BiomeSample, error) {
	data, _, err := c.do(ctx, http.MethodGet, "/biomes", sizeQuery(pos, size), nil, nil)
	if err != nil {
		return nil, err
	}
	var raw []biomeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode biomes: %w", err)
	}
	out := make([]BiomeSample, len(raw))
	for i, b := range raw {
		out[i] = BiomeSample{Pos: vec.Vec3{X: b.X, Y: b.Y, Z: b.Z}, ID: b.ID}
	}
	return out, nil
}

// PlaceBlocks writes blocks in bulk, one Result per input block.
func (c *Client) PlaceBlocks(ctx context.Context, blocks []PlacedBlock, opts PlaceOptions) ([]Result, error) {
	if len(blocks) == 0 {
		return nil, nil
	}
	body := make([]blockJSON, len(blocks))
	for i, b := range blocks {
		body[i] = blockJSON{
			ID:    b.Block.ID,
			X:     b.Pos.X,
			Y:     b.Pos.Y,
			Z:     b.Pos.Z,
			State: b.Block.States,
			Data:  b.Block.Data,
		}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode blocks: %w", err)
	}

	q := url.Values{}
	if opts.CustomFlags != "" {
		q.Set("customFlags", opts.CustomFlags)
	} else {
		q.Set("doBlockUpdates", strconv.FormatBool(opts.DoBlockUpdates))
		q.Set("spawnDrops", strconv.FormatBool(opts.SpawnDrops))
	}

	header := http.Header{"Content-Type": []string{"application/json"}}
	data, _, err := c.do(ctx, http.MethodPut, "/blocks", q, payload, header)
	if err != nil {
		return nil, err
	}
	return decodeResults(data)
}

// Command runs one or more Minecraft commands on the server, separated
// by newlines, one Result per command.
func (c *Client) Command(ctx context.Context, command string) ([]Result, error) {
	data, _, err := c.do(ctx, http.MethodPost, "/command", nil, []byte(command), nil)
	if err != nil {
		return nil, err
	}
	return decodeResults(data)
}

// Chunks reads raw chunk NBT for size.X by size.Z chunks starting at the
// given chunk position.
func (c *Client) Chunks(ctx context.Context, chunkPos, size vec.Vec2) ([]byte, error) {
	q := url.Values{}
	q.Set("x", strconv.Itoa(chunkPos.X))
	q.Set("z", strconv.Itoa(chunkPos.Z))
	q.Set("dx", strconv.Itoa(size.X))
	q.Set("dz", strconv.Itoa(size.Z))

	header := http.Header{"Accept": []string{"application/octet-stream"}}
	data, _, err := c.do(ctx, http.MethodGet, "/chunks", q, nil, header)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func decodeResults(data []byte) ([]Result, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var raw []resultJSON
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	out := make([]Result, len(raw))
	for i, r := range raw {
		if r.Message != "" {
			out[i] = Result{OK: false, Message: r.Message}
			continue
		}
		ok := r.Status == nil || *r.Status == 1
		out[i] = Result{OK: ok}
	}
	return out, nil
}
