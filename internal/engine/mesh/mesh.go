// Package mesh is the gateway between engine-independent geometry
// buffers and host-native OpenGL mesh objects.
//
// Every function that touches GL state is legal only on the thread that
// owns the GL context (the window package locks the main OS thread for
// this). The package does not enforce that; it is the caller's
// obligation, exactly like every other GL call in the engine.
package mesh

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshkit/pkg/geometry"
)

// ErrNilMesh is returned when a buffer is requested from an absent mesh.
var ErrNilMesh = errors.New("mesh: nil source mesh")

// ErrEmptyBuffer is returned when a buffer without geometry is uploaded.
var ErrEmptyBuffer = errors.New("mesh: buffer has no geometry")

// Attribute locations match the shader contract used across the engine.
const (
	locPosition = 0
	locNormal   = 1
	locUV       = 2
	locUV2      = 3
	locUV3      = 4
	locColor    = 5
	locTangent  = 6
)

// Handle identifies the GL objects backing an uploaded mesh. It is the
// concrete value published to a buffer's tracker as geometry.Handle.
type Handle struct {
	VAO uint32
	VBO uint32
	EBO uint32

	IndexCount int32
	// IndexType is gl.UNSIGNED_SHORT for the narrow encoding or
	// gl.UNSIGNED_INT for the wide one.
	IndexType uint32
}

// Mesh is the host-side mesh object: the GL handle plus a retained deep
// copy of the source buffer, so the mesh can be snapshotted back into
// engine-independent form without reading GPU memory.
type Mesh struct {
	Name   string
	Handle Handle

	src *geometry.Buffer
}

// Upload converts a geometry buffer into a GL mesh. It interleaves
// whichever attribute channels are present, picks the element width
// from the buffer's hint (forced wide at or above
// geometry.WideIndexThreshold regardless of the hint), and publishes
// the resulting handle to the buffer's tracker if one is set.
//
// GL thread only.
func Upload(buf *geometry.Buffer) (*Mesh, error) {
	if buf == nil {
		return nil, ErrNilMesh
	}
	if buf.VertexCount() == 0 || len(buf.Triangles) == 0 {
		return nil, fmt.Errorf("mesh: upload %q: %w", buf.Name, ErrEmptyBuffer)
	}
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("mesh: upload %q: %w", buf.Name, err)
	}

	layout := layoutFor(buf)
	data := interleave(buf, layout)

	m := &Mesh{
		Name: buf.Name,
		src:  buf.Clone(),
	}

	gl.GenVertexArrays(1, &m.Handle.VAO)
	gl.BindVertexArray(m.Handle.VAO)

	gl.GenBuffers(1, &m.Handle.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.Handle.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := int32(layout.stride() * 4)
	for _, a := range layout {
		gl.VertexAttribPointerWithOffset(a.location, a.components, gl.FLOAT, false, stride, uintptr(a.offset*4))
		gl.EnableVertexAttribArray(a.location)
	}

	gl.GenBuffers(1, &m.Handle.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.Handle.EBO)

	m.Handle.IndexCount = int32(len(buf.Triangles))
	switch geometry.EffectiveIndexFormat(buf.VertexCount(), buf.IndexFormat) {
	case geometry.IndexFormatUint16:
		m.Handle.IndexType = gl.UNSIGNED_SHORT
		narrow := narrowIndices(buf.Triangles)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(narrow)*2, unsafe.Pointer(&narrow[0]), gl.STATIC_DRAW)
	default:
		m.Handle.IndexType = gl.UNSIGNED_INT
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(buf.Triangles)*4, unsafe.Pointer(&buf.Triangles[0]), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	if buf.Tracker != nil {
		buf.Tracker.PublishHandle(m.Handle)
	}

	return m, nil
}

// Snapshot copies the mesh back into a fresh engine-independent buffer.
// Fails on an absent source. Runs under the same designated-thread
// contract as Upload, since the mesh is a thread-affine resource.
func Snapshot(m *Mesh) (*geometry.Buffer, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	return m.src.Clone(), nil
}

// Draw issues the indexed draw call for the mesh. The VAO carries the
// element buffer binding, so no rebinding beyond the VAO is needed.
// GL thread only.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.Handle.VAO)
	gl.DrawElements(gl.TRIANGLES, m.Handle.IndexCount, m.Handle.IndexType, nil)
	gl.BindVertexArray(0)
}

// Delete releases the GL objects. GL thread only.
func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.Handle.EBO)
	gl.DeleteBuffers(1, &m.Handle.VBO)
	gl.DeleteVertexArrays(1, &m.Handle.VAO)
	m.Handle = Handle{}
}

// Ref tracks the handle of an uploaded mesh on behalf of a buffer
// producer. It implements geometry.HandleTracker; it does not own the
// buffer or the mesh.
type Ref struct {
	handle    geometry.Handle
	published bool
}

// PublishHandle records the handle. Called by Upload.
func (r *Ref) PublishHandle(h geometry.Handle) {
	r.handle = h
	r.published = true
}

// Handle returns the last published handle and whether one exists.
func (r *Ref) Handle() (geometry.Handle, bool) {
	return r.handle, r.published
}
