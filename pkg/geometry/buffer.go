// Package geometry provides an engine-independent intermediate
// representation of triangle-mesh geometry. A Buffer is a plain value
// holding vertex, index, and attribute arrays; it owns no engine
// resource, so it can be built, copied, and inspected on any goroutine.
// Only the conversion into a host-native mesh (a separate gateway, see
// internal/engine/mesh) is tied to the host's designated thread.
//
// Buffers have no internal locking: concurrent reads of an unmutated
// buffer are safe, concurrent mutation must be serialized by the caller.
package geometry

import (
	"fmt"

	"github.com/Faultbox/meshkit/pkg/vecmath"
)

// Handle is an opaque reference to a host-native mesh resource. Handles
// are produced only by a conversion gateway; the core never inspects or
// mutates one.
type Handle any

// HandleTracker receives the host mesh handle produced when a buffer is
// converted. A tracker carries no ownership over the buffer itself.
type HandleTracker interface {
	PublishHandle(Handle)
}

// IndexFormat hints at the integer width used for triangle indices when
// the buffer is converted to a host mesh.
type IndexFormat uint8

const (
	// IndexFormatUint16 stores indices as 16-bit integers.
	IndexFormatUint16 IndexFormat = iota
	// IndexFormatUint32 stores indices as 32-bit integers.
	IndexFormatUint32
)

// WideIndexThreshold is the vertex count at or above which conversion
// ignores the stored hint and forces 32-bit indices.
const WideIndexThreshold = 65535

// EffectiveIndexFormat resolves an index-format hint against the vertex
// count: at or above WideIndexThreshold the wide format wins regardless
// of the hint.
func EffectiveIndexFormat(vertexCount int, hint IndexFormat) IndexFormat {
	if vertexCount >= WideIndexThreshold {
		return IndexFormatUint32
	}
	return hint
}

// Buffer holds triangle-mesh geometry. Vertices is the authoritative
// vertex count; every optional attribute channel is either nil or has
// exactly that length. Triangles holds vertex indices, three per
// triangle.
//
// Bounds is a cached derived value: it reflects the vertex array only
// as of the last RecalculateBounds call (or explicit assignment), never
// automatically.
type Buffer struct {
	Name string

	Vertices  []vecmath.Vec3
	Triangles []uint32

	// Optional per-vertex channels, nil when absent.
	Normals  []vecmath.Vec3
	UV       []vecmath.Vec2
	UV2      []vecmath.Vec2
	UV3      []vecmath.Vec2
	Colors   [][4]float32
	Tangents [][4]float32

	Bounds      Bounds
	IndexFormat IndexFormat

	// Tracker, when set, is handed the host mesh handle after the
	// buffer is converted.
	Tracker HandleTracker
}

// New returns an empty buffer with the given name.
func New(name string) *Buffer {
	return &Buffer{Name: name}
}

// VertexCount returns the number of vertices, zero for an empty buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Vertices)
}

// TriangleCount returns the number of complete triangles.
func (b *Buffer) TriangleCount() int {
	return len(b.Triangles) / 3
}

// Clone returns a deep copy sharing no arrays with b. The tracker
// reference is copied as-is; it is a back-reference, not owned data.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		Name:        b.Name,
		Bounds:      b.Bounds,
		IndexFormat: b.IndexFormat,
		Tracker:     b.Tracker,
	}
	c.Vertices = append(c.Vertices, b.Vertices...)
	c.Triangles = append(c.Triangles, b.Triangles...)
	c.Normals = append(c.Normals, b.Normals...)
	c.UV = append(c.UV, b.UV...)
	c.UV2 = append(c.UV2, b.UV2...)
	c.UV3 = append(c.UV3, b.UV3...)
	c.Colors = append(c.Colors, b.Colors...)
	c.Tangents = append(c.Tangents, b.Tangents...)
	return c
}

// Validate checks the structural invariants: the index array length is
// a multiple of three, every index references an existing vertex, and
// every present attribute channel matches the vertex count. It never
// mutates the buffer.
func (b *Buffer) Validate() error {
	n := len(b.Vertices)

	if len(b.Triangles)%3 != 0 {
		return fmt.Errorf("geometry: buffer %q has %d indices, not a multiple of 3", b.Name, len(b.Triangles))
	}
	for i, idx := range b.Triangles {
		if int(idx) >= n {
			return fmt.Errorf("geometry: buffer %q index %d references vertex %d, have %d vertices", b.Name, i, idx, n)
		}
	}

	channels := []struct {
		name string
		len  int
	}{
		{"normals", len(b.Normals)},
		{"uv", len(b.UV)},
		{"uv2", len(b.UV2)},
		{"uv3", len(b.UV3)},
		{"colors", len(b.Colors)},
		{"tangents", len(b.Tangents)},
	}
	for _, ch := range channels {
		if ch.len != 0 && ch.len != n {
			return fmt.Errorf("geometry: buffer %q channel %s has %d entries, want %d", b.Name, ch.name, ch.len, n)
		}
	}

	return nil
}

// HasNormals reports whether the normals channel is present for every
// vertex.
func (b *Buffer) HasNormals() bool {
	return len(b.Normals) == len(b.Vertices) && len(b.Normals) > 0
}
