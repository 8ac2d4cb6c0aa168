package mesh

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshkit/pkg/geometry"
	"github.com/Faultbox/meshkit/pkg/vecmath"
)

func TestLayoutPositionOnly(t *testing.T) {
	buf := geometry.New("bare")
	buf.Vertices = []vecmath.Vec3{{}, {}, {}}

	l := layoutFor(buf)
	if len(l) != 1 {
		t.Fatalf("layout has %d attribs, want 1", len(l))
	}
	if l.stride() != 3 {
		t.Errorf("stride = %d floats, want 3", l.stride())
	}
}

func TestLayoutSkipsAbsentChannels(t *testing.T) {
	buf := geometry.New("pos+uv")
	buf.Vertices = []vecmath.Vec3{{}, {}, {}}
	buf.UV = []vecmath.Vec2{{}, {}, {}}

	l := layoutFor(buf)
	if len(l) != 2 {
		t.Fatalf("layout has %d attribs, want 2", len(l))
	}
	// UV keeps its conventional location even with normals absent.
	if l[1].location != locUV {
		t.Errorf("second attrib location = %d, want %d", l[1].location, locUV)
	}
	if l[1].offset != 3 {
		t.Errorf("uv offset = %d floats, want 3", l[1].offset)
	}
	if l.stride() != 5 {
		t.Errorf("stride = %d floats, want 5", l.stride())
	}
}

func TestInterleaveOrder(t *testing.T) {
	buf := geometry.New("full")
	buf.Vertices = []vecmath.Vec3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}
	buf.Normals = []vecmath.Vec3{{Z: 1}, {Y: 1}}
	buf.UV = []vecmath.Vec2{{X: 0.25, Y: 0.75}, {X: 1, Y: 0}}

	l := layoutFor(buf)
	data := interleave(buf, l)

	want := []float32{
		1, 2, 3, 0, 0, 1, 0.25, 0.75,
		4, 5, 6, 0, 1, 0, 1, 0,
	}
	if len(data) != len(want) {
		t.Fatalf("interleaved length = %d, want %d", len(data), len(want))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestNarrowIndices(t *testing.T) {
	got := narrowIndices([]uint32{0, 1, 65534})
	if got[0] != 0 || got[1] != 1 || got[2] != 65534 {
		t.Errorf("narrowIndices = %v, want [0 1 65534]", got)
	}
}

func TestRefPublish(t *testing.T) {
	var r Ref
	if _, ok := r.Handle(); ok {
		t.Fatal("fresh ref should have no handle")
	}

	h := Handle{VAO: 7, IndexCount: 36, IndexType: gl.UNSIGNED_SHORT}
	r.PublishHandle(h)

	got, ok := r.Handle()
	if !ok {
		t.Fatal("ref should report a published handle")
	}
	if got.(Handle).VAO != 7 {
		t.Errorf("tracked handle = %+v, want VAO 7", got)
	}
}

func TestRefSatisfiesTracker(t *testing.T) {
	var _ geometry.HandleTracker = (*Ref)(nil)
}

// The argument-validation paths below fail before any GL call, so they
// are testable without a live context.

func TestUploadNilBuffer(t *testing.T) {
	if _, err := Upload(nil); err != ErrNilMesh {
		t.Errorf("Upload(nil) error = %v, want ErrNilMesh", err)
	}
}

func TestUploadEmptyBuffer(t *testing.T) {
	_, err := Upload(geometry.New("empty"))
	if err == nil {
		t.Fatal("uploading an empty buffer should fail")
	}
}

func TestUploadInvalidBuffer(t *testing.T) {
	buf := geometry.New("broken")
	buf.Vertices = []vecmath.Vec3{{}, {}, {}}
	buf.Triangles = []uint32{0, 1, 7}
	if _, err := Upload(buf); err == nil {
		t.Fatal("uploading a buffer with out-of-range indices should fail")
	}
}

func TestSnapshotNilMesh(t *testing.T) {
	if _, err := Snapshot(nil); err != ErrNilMesh {
		t.Errorf("Snapshot(nil) error = %v, want ErrNilMesh", err)
	}
}
