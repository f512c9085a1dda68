package nbt

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Compound is a parsed NBT compound tag. Values are one of: int8, int16,
// int32, int64, float32, float64, string, []byte, []int32, []int64,
// []any (list) or Compound.
type Compound map[string]any

// Read parses a full NBT document from r. The root tag must be a
// compound; its name (usually empty) and body are returned.
func Read(r io.Reader) (string, Compound, error) {
	br := bufio.NewReader(r)

	tagType, err := br.ReadByte()
	if err != nil {
		return "", nil, fmt.Errorf("read root tag: %w", err)
	}
	if tagType != TagCompound {
		return "", nil, fmt.Errorf("root tag type %d, want compound", tagType)
	}
	name, err := readString(br)
	if err != nil {
		return "", nil, fmt.Errorf("read root name: %w", err)
	}
	c, err := readCompound(br)
	if err != nil {
		return "", nil, err
	}
	return name, c, nil
}

// ReadBytes parses an NBT document from a byte slice.
func ReadBytes(data []byte) (string, Compound, error) {
	return Read(bytes.NewReader(data))
}

// ReadFile parses an NBT file, transparently decompressing gzip.
func ReadFile(path string) (string, Compound, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	var r io.Reader = br
	if magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return "", nil, fmt.Errorf("decompress %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	name, c, err := Read(r)
	if err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return name, c, nil
}

func readCompound(r *bufio.Reader) (Compound, error) {
	c := Compound{}
	for {
		tagType, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read tag type: %w", err)
		}
		if tagType == TagEnd {
			return c, nil
		}
		name, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("read tag name: %w", err)
		}
		value, err := readPayload(r, tagType)
		if err != nil {
			return nil, fmt.Errorf("read tag %q: %w", name, err)
		}
		c[name] = value
	}
}

func readPayload(r *bufio.Reader, tagType byte) (any, error) {
	switch tagType {
	case TagByte:
		b, err := r.ReadByte()
		return int8(b), err
	case TagShort:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		return int16(binary.BigEndian.Uint16(buf[:])), nil
	case TagInt:
		v, err := readInt32(r)
		return v, err
	case TagLong:
		v, err := readInt64(r)
		return v, err
	case TagFloat:
		v, err := readInt32(r)
		return math.Float32frombits(uint32(v)), err
	case TagDouble:
		v, err := readInt64(r)
		return math.Float64frombits(uint64(v)), err
	case TagByteArray:
		n, err := readArrayLen(r)
		if err != nil {
			return nil, err
		}
		data := make([]byte, n)
		_, err = io.ReadFull(r, data)
		return data, err
	case TagString:
		return readString(r)
	case TagList:
		return readList(r)
	case TagCompound:
		return readCompound(r)
	case TagIntArray:
		n, err := readArrayLen(r)
		if err != nil {
			return nil, err
		}
		out := make([]int32, n)
		for i := range out {
			if out[i], err = readInt32(r); err != nil {
				return nil, err
			}
		}
		return out, nil
	case TagLongArray:
		n, err := readArrayLen(r)
		if err != nil {
			return nil, err
		}
		out := make([]int64, n)
		for i := range out {
			if out[i], err = readInt64(r); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown tag type %d", tagType)
}

func readList(r *bufio.Reader) ([]any, error) {
	elemType, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	n, err := readInt32(r)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	out := make([]any, 0, min(n, 256))
	for i := int32(0); i < n; i++ {
		v, err := readPayload(r, elemType)
		if err != nil {
			return nil, fmt.Errorf("list element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// maxArrayLen bounds array tag lengths. Structure templates are small;
// anything near this limit is a corrupt or hostile file.
const maxArrayLen = 1 << 26

func readArrayLen(r *bufio.Reader) (int32, error) {
	n, err := readInt32(r)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > maxArrayLen {
		return 0, fmt.Errorf("array length %d out of range", n)
	}
	return n, nil
}

func readString(r *bufio.Reader) (string, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint16(buf[:])
	if n == 0 {
		return "", nil
	}
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return "", err
	}
	return string(data), nil
}

func readInt32(r *bufio.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func readInt64(r *bufio.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// Compound accessors. Each returns the zero value with ok=false when the
// key is missing or has a different type.

// Compound returns a nested compound tag.
func (c Compound) Compound(name string) (Compound, bool) {
	v, ok := c[name].(Compound)
	return v, ok
}

// List returns a list tag's elements.
func (c Compound) List(name string) ([]any, bool) {
	v, ok := c[name].([]any)
	return v, ok
}

// String returns a string tag.
func (c Compound) String(name string) (string, bool) {
	v, ok := c[name].(string)
	return v, ok
}

// Int returns any integer-width tag widened to int.
func (c Compound) Int(name string) (int, bool) {
	return asInt(c[name])
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}

// IntList returns a list tag of integer elements widened to int.
func (c Compound) IntList(name string) ([]int, bool) {
	list, ok := c.List(name)
	if !ok {
		return nil, false
	}
	out := make([]int, len(list))
	for i, v := range list {
		n, ok := asInt(v)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}
