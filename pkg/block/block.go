// Package block provides the Block type used for placement and retrieval:
// a namespaced ID, optional block states and optional SNBT entity data.
package block

import (
	"sort"
	"strings"
)

// Block is a Minecraft block. An empty ID represents "nothing": placing
// such a block has no effect, which is distinct from placing air. Data
// holds block entity data as an SNBT string, including the braces.
type Block struct {
	ID     string
	States map[string]string
	Data   string
}

// New returns a Block with the given ID and no states or data.
func New(id string) Block {
	return Block{ID: id}
}

// WithStates returns a Block with the given ID and states.
func WithStates(id string, states map[string]string) Block {
	return Block{ID: id, States: states}
}

// IsNothing reports whether the block has no ID and therefore places
// nothing.
func (b Block) IsNothing() bool {
	return b.ID == ""
}

// Copy returns a deep copy of b.
func (b Block) Copy() Block {
	out := Block{ID: b.ID, Data: b.Data}
	if b.States != nil {
		out.States = make(map[string]string, len(b.States))
		for k, v := range b.States {
			out.States[k] = v
		}
	}
	return out
}

// StateString returns the block state string including the outer
// brackets, or "" if there are no states. Keys are sorted for
// deterministic output.
func (b Block) StateString() string {
	if len(b.States) == 0 {
		return ""
	}
	keys := make([]string, 0, len(b.States))
	for k := range b.States {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(b.States[k])
	}
	sb.WriteByte(']')
	return sb.String()
}

// String returns the full block descriptor: id[states]{data}.
func (b Block) String() string {
	if b.IsNothing() {
		return ""
	}
	return b.ID + b.StateString() + b.Data
}

// Transform rewrites the orientation-related block states (axis, facing,
// rotation) in place. Flips first, rotates second.
func (b *Block) Transform(rotation int, flip [3]bool) {
	if b.States == nil {
		return
	}
	if axis, ok := b.States["axis"]; ok {
		b.States["axis"] = TransformAxis(axis, rotation)
	}
	if facing, ok := b.States["facing"]; ok {
		b.States["facing"] = TransformFacing(facing, rotation, flip)
	}
	if rot, ok := b.States["rotation"]; ok {
		b.States["rotation"] = TransformRotation(rot, rotation, flip)
	}
}

// Transformed returns a transformed copy of b. Flips first, rotates
// second.
func (b Block) Transformed(rotation int, flip [3]bool) Block {
	out := b.Copy()
	out.Transform(rotation, flip)
	return out
}

// TransformedPalette transforms every block of a palette.
func TransformedPalette(palette []Block, rotation int, flip [3]bool) []Block {
	out := make([]Block, len(palette))
	for i, b := range palette {
		out[i] = b.Transformed(rotation, flip)
	}
	return out
}
