package gdmc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-theft-craft/decorator/pkg/block"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, Options{})
}

func TestVersion(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/version" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte("1.19.2\n"))
	}))

	v, err := c.Version(context.Background())
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if v != "1.19.2" {
		t.Errorf("version = %q, want 1.19.2", v)
	}
}

func TestBuildArea(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(buildAreaJSON{
			XFrom: 0, YFrom: 60, ZFrom: 0,
			XTo: 99, YTo: 120, ZTo: 49,
		})
	}))

	ba, err := c.BuildArea(context.Background())
	if err != nil {
		t.Fatalf("BuildArea failed: %v", err)
	}
	want := vec.Box{Offset: vec.Vec3{X: 0, Y: 60, Z: 0}, Size: vec.Vec3{X: 100, Y: 61, Z: 50}}
	if ba != want {
		t.Errorf("build area = %+v, want %+v", ba, want)
	}
}

func TestBuildAreaNotSet(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"error status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no build area is specified", http.StatusNotFound)
		}},
		{"legacy -1", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("-1"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			_, err := c.BuildArea(context.Background())
			if !errors.Is(err, ErrBuildAreaNotSet) {
				t.Errorf("err = %v, want ErrBuildAreaNotSet", err)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("x") != "10" || q.Get("dx") != "2" {
			t.Errorf("query = %v", q)
		}
		if q.Get("includeState") != "true" {
			t.Error("includeState not requested")
		}
		json.NewEncoder(w).Encode([]blockJSON{
			{ID: "minecraft:stone", X: 10, Y: 64, Z: 0},
			{ID: "minecraft:oak_log", X: 11, Y: 64, Z: 0, State: map[string]string{"axis": "y"}},
		})
	}))

	blocks, err := c.Blocks(context.Background(), vec.Vec3{X: 10, Y: 64, Z: 0}, vec.Vec3{X: 2, Y: 1, Z: 1})
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Block.ID != "minecraft:stone" {
		t.Errorf("blocks[0] = %v", blocks[0].Block)
	}
	if blocks[1].Block.States["axis"] != "y" {
		t.Errorf("blocks[1] states = %v", blocks[1].Block.States)
	}
}

func TestBlocksSingleOmitsSize(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("dx") {
			t.Error("single-block read should not send dx")
		}
		json.NewEncoder(w).Encode([]blockJSON{{ID: "minecraft:air", X: 1, Y: 2, Z: 3}})
	}))

	blocks, err := c.Blocks(context.Background(), vec.Vec3{X: 1, Y: 2, Z: 3}, vec.Vec3{})
	if err != nil {
		t.Fatalf("Blocks failed: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Pos != (vec.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("blocks = %v", blocks)
	}
}

func TestPlaceBlocks(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Query().Get("doBlockUpdates") != "true" {
			t.Error("doBlockUpdates not sent")
		}
		var body []blockJSON
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body) != 2 || body[0].ID != "minecraft:stone" {
			t.Errorf("body = %v", body)
		}
		if body[1].State["facing"] != "north" {
			t.Errorf("body[1] state = %v", body[1].State)
		}
		one := 1
		json.NewEncoder(w).Encode([]resultJSON{
			{Status: &one},
			{Message: "invalid block state"},
		})
	}))

	results, err := c.PlaceBlocks(context.Background(), []PlacedBlock{
		{Pos: vec.Vec3{X: 0, Y: 64, Z: 0}, Block: block.New("minecraft:stone")},
		{Pos: vec.Vec3{X: 1, Y: 64, Z: 0}, Block: block.WithStates("minecraft:furnace", map[string]string{"facing": "north"})},
	}, DefaultPlaceOptions())
	if err != nil {
		t.Fatalf("PlaceBlocks failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !results[0].OK {
		t.Error("results[0] should be OK")
	}
	if results[1].OK || results[1].Message != "invalid block state" {
		t.Errorf("results[1] = %+v", results[1])
	}
}

func TestPlaceBlocksEmpty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty placement should not hit the server")
	}))
	results, err := c.PlaceBlocks(context.Background(), nil, DefaultPlaceOptions())
	if err != nil || results != nil {
		t.Errorf("got %v, %v", results, err)
	}
}

func TestCommand(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/command" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		one := 1
		json.NewEncoder(w).Encode([]resultJSON{{Status: &one}})
	}))

	results, err := c.Command(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if len(results) != 1 || !results[0].OK {
		t.Errorf("results = %+v", results)
	}
}

func TestDimensionQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("dimension") != "the_nether" {
			t.Errorf("dimension = %q", r.URL.Query().Get("dimension"))
		}
		w.Write([]byte("1.19.2"))
	}))
	defer srv.Close()

	c := New(srv.URL, Options{Dimension: "the_nether"})
	if _, err := c.Version(context.Background()); err != nil {
		t.Fatalf("Version failed: %v", err)
	}
}

func TestServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	_, err := c.Version(context.Background())
	if !errors.Is(err, ErrServer) {
		t.Errorf("err = %v, want ErrServer", err)
	}
}

func TestConnectionError(t *testing.T) {
	// Point at a closed server so the dial fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host := srv.URL
	srv.Close()

	c := New(host, Options{})
	_, err := c.Version(context.Background())
	if !errors.Is(err, ErrConnection) {
		t.Errorf("err = %v, want ErrConnection", err)
	}
}
