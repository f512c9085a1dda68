// Package gdmc is a client for the GDMC HTTP interface, the endpoint a
// Minecraft instance exposes (via the GDMC HTTP mod) for reading world
// state and placing blocks.
package gdmc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

// DefaultHost is the address the GDMC HTTP mod listens on by default.
const DefaultHost = "http://localhost:9000"

var (
	// ErrConnection indicates the GDMC HTTP interface could not be
	// reached, after retries.
	ErrConnection = errors.New("gdmc: could not connect to the GDMC HTTP interface")

	// ErrBuildAreaNotSet indicates no build area was configured with
	// /setbuildarea in-game.
	ErrBuildAreaNotSet = errors.New("gdmc: build area not set; use /setbuildarea in-game")

	// ErrServer indicates the interface reported an internal error.
	ErrServer = errors.New("gdmc: interface reported an internal server error")
)

// Options configures a Client.
type Options struct {
	Dimension string        // "overworld" (default), "the_nether" or "the_end"
	Retries   int           // retries on connection failure
	Timeout   time.Duration // per-request timeout, 0 = none
	Logger    *slog.Logger
}

// Client talks to a single GDMC HTTP interface host.
type Client struct {
	host      string
	dimension string
	http      *retryablehttp.Client
	log       *slog.Logger
}

// New creates a Client for the given host ("" = DefaultHost).
func New(host string, opts Options) *Client {
	if host == "" {
		host = DefaultHost
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = cleanhttp.DefaultPooledClient()
	rc.HTTPClient.Timeout = opts.Timeout
	rc.RetryMax = opts.Retries
	rc.RetryWaitMin = time.Second
	rc.RetryWaitMax = 10 * time.Second
	rc.Logger = nil
	// Only connection failures are retried; HTTP error statuses are
	// reported to the caller immediately.
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return err != nil, nil
	}

	return &Client{
		host:      host,
		dimension: opts.Dimension,
		http:      rc,
		log:       log,
	}
}

// Host returns the configured interface address.
func (c *Client) Host() string { return c.host }

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, header http.Header) ([]byte, int, error) {
	if c.dimension != "" {
		if query == nil {
			query = url.Values{}
		}
		query.Set("dimension", c.dimension)
	}
	u := c.host + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, 0, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w at %s: %v", ErrConnection, c.host, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response of %s %s: %w", method, path, err)
	}
	if resp.StatusCode == http.StatusInternalServerError {
		return data, resp.StatusCode, ErrServer
	}
	return data, resp.StatusCode, nil
}

// sizeQuery encodes a position and an optional size into query values.
// A zero size means "a single block" and omits the d-parameters.
func sizeQuery(pos vec.Vec3, size vec.Vec3) url.Values {
	q := url.Values{}
	q.Set("x", strconv.Itoa(pos.X))
	q.Set("y", strconv.Itoa(pos.Y))
	q.Set("z", strconv.Itoa(pos.Z))
	if size != (vec.Vec3{}) {
		q.Set("dx", strconv.Itoa(size.X))
		q.Set("dy", strconv.Itoa(size.Y))
		q.Set("dz", strconv.Itoa(size.Z))
	}
	return q
}

// PlacedBlock pairs a world position with a block.
type PlacedBlock struct {
	Pos   vec.Vec3
	Block block.Block
}

// BiomeSample pairs a world position with a biome ID.
type BiomeSample struct {
	Pos vec.Vec3
	ID  string
}

// Result is the per-block or per-command outcome of a bulk operation.
// For a failed entry, OK is false and Message holds the server's error.
type Result struct {
	OK      bool
	Message string
}

// PlaceOptions controls block-update behavior for PlaceBlocks.
type PlaceOptions struct {
	DoBlockUpdates bool
	SpawnDrops     bool
	CustomFlags    string // overrides the two booleans when non-empty
}

// DefaultPlaceOptions enables block updates and disables item drops.
func DefaultPlaceOptions() PlaceOptions {
	return PlaceOptions{DoBlockUpdates: true}
}
