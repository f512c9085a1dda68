// Package assets loads the JSON asset descriptors and NBT templates a
// decoration run is driven by: structure templates with placement
// metadata, and material palettes.
package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-getter"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/go-theft-craft/decorator/internal/palette"
	"github.com/go-theft-craft/decorator/internal/structure"
	"github.com/go-theft-craft/decorator/pkg/vec"
)

// Template describes an NBT structure template: where its file lives,
// how it anchors and faces, and which materials it is authored in.
type Template struct {
	Name       string   `json:"name"`
	File       string   `json:"file"`
	Origin     [3]int   `json:"origin"`
	Facing     string   `json:"facing"`
	Palette    string   `json:"palette"`      // name of the authored material palette
	DoNotPlace []string `json:"do_not_place"` // block IDs never placed from this template

	// Filled in by Link.
	Structure *structure.Structure `json:"-"`
}

// OriginVec returns the template's anchor point.
func (t *Template) OriginVec() vec.Vec3 {
	return vec.Vec3{X: t.Origin[0], Y: t.Origin[1], Z: t.Origin[2]}
}

// FacingDirection returns the template's facing, or "" when unoriented.
func (t *Template) FacingDirection() structure.Direction {
	d, ok := structure.FromText(t.Facing)
	if !ok {
		return ""
	}
	return d
}

// Registry holds all loaded assets by name.
type Registry struct {
	root      string
	log       *slog.Logger
	templates map[string]*Template
	palettes  map[string]palette.Palette
}

var templateSchema = jsonschema.MustCompileString("template.schema.json", `{
	"type": "object",
	"properties": {
		"type": {"const": "nbtasset"},
		"name": {"type": "string", "minLength": 1},
		"file": {"type": "string", "minLength": 1},
		"origin": {
			"type": "array",
			"items": {"type": "integer"},
			"minItems": 3,
			"maxItems": 3
		},
		"facing": {"enum": ["north", "east", "south", "west"]},
		"palette": {"type": "string"},
		"do_not_place": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["type", "name", "file", "origin"]
}`)

var paletteSchema = jsonschema.MustCompileString("palette.schema.json", `{
	"type": "object",
	"properties": {
		"type": {"const": "palette"},
		"name": {"type": "string", "minLength": 1},
		"primary_wood": {"type": "string"},
		"secondary_wood": {"type": "string"},
		"primary_stone": {"type": "string"},
		"primary_stone_accent": {"type": "string"}
	},
	"required": ["type", "name", "primary_wood", "secondary_wood", "primary_stone", "primary_stone_accent"]
}`)

var knownFields = map[string]map[string]bool{
	"nbtasset": {
		"type": true, "name": true, "file": true, "origin": true,
		"facing": true, "palette": true, "do_not_place": true,
	},
	"palette": {
		"type": true, "name": true, "primary_wood": true,
		"secondary_wood": true, "primary_stone": true, "primary_stone_accent": true,
	},
}

// LoadDir walks root for *.json descriptors, validates them and links
// template palettes and NBT files. Invalid descriptors are logged and
// skipped; unknown fields only warn.
func LoadDir(root string, log *slog.Logger) (*Registry, error) {
	if log == nil {
		log = slog.Default()
	}
	r := &Registry{
		root:      root,
		log:       log,
		templates: map[string]*Template{},
		palettes:  map[string]palette.Palette{},
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		if err := r.loadFile(path); err != nil {
			log.Error("skipping asset", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk asset dir %s: %w", root, err)
	}

	if err := r.link(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	typeName, _ := raw["type"].(string)
	if typeName == "" {
		return fmt.Errorf("no type given")
	}

	var schema *jsonschema.Schema
	switch typeName {
	case "nbtasset":
		schema = templateSchema
	case "palette":
		schema = paletteSchema
	default:
		return fmt.Errorf("unknown asset type %q", typeName)
	}
	if err := schema.Validate(raw); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	for field := range raw {
		if !knownFields[typeName][field] {
			r.log.Warn("asset has unknown field", "path", path, "field", field)
		}
	}

	switch typeName {
	case "nbtasset":
		var t Template
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		r.templates[t.Name] = &t
	case "palette":
		var p palette.Palette
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		r.palettes[p.Name] = p
	}
	return nil
}

// link resolves template palette references and loads the NBT files.
func (r *Registry) link() error {
	for name, t := range r.templates {
		if t.Palette != "" {
			if _, ok := r.palettes[t.Palette]; !ok {
				return fmt.Errorf("template %s references unknown palette %q", name, t.Palette)
			}
		}
		s, err := structure.Load(filepath.Join(r.root, t.File))
		if err != nil {
			return fmt.Errorf("template %s: %w", name, err)
		}
		t.Structure = s
	}
	return nil
}

// Template returns a template asset by name.
func (r *Registry) Template(name string) (*Template, bool) {
	t, ok := r.templates[name]
	return t, ok
}

// Palette returns a material palette by name.
func (r *Registry) Palette(name string) (palette.Palette, bool) {
	p, ok := r.palettes[name]
	return p, ok
}

// TemplateNames returns the names of all loaded templates.
func (r *Registry) TemplateNames() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}

// Fetch downloads an asset pack from src into dst. src may be any
// go-getter URL: a local path, a git repository, an archive over http
// and so on.
func Fetch(ctx context.Context, src, dst string) error {
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Mode: getter.ClientModeAny,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("fetch assets from %s: %w", src, err)
	}
	return nil
}
