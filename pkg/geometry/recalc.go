package geometry

import "github.com/Faultbox/meshkit/pkg/vecmath"

// RecalculateBounds rescans the vertex array and stores the per-axis
// minimum and maximum in Bounds. No-op when the buffer has no vertices;
// no other field is read or written. Bounds goes stale again as soon as
// a vertex is mutated.
func (b *Buffer) RecalculateBounds() {
	if len(b.Vertices) == 0 {
		return
	}

	bounds := Bounds{Min: b.Vertices[0], Max: b.Vertices[0]}
	for _, p := range b.Vertices[1:] {
		bounds.ExpandByPoint(p)
	}
	b.Bounds = bounds
}

// RecalculateNormals rebuilds the normals channel from triangle
// topology. No-op unless both vertices and triangles are present. Each
// triangle contributes its raw edge cross product to all three corner
// normals, so the contribution is weighted by twice the triangle area:
// larger triangles dominate a shared vertex. Normals are normalized in
// a final pass.
//
// A vertex touched only by degenerate (zero-area) triangles, or by no
// triangle at all, accumulates the zero vector and stays the zero
// vector after normalization. That is not an error.
func (b *Buffer) RecalculateNormals() {
	if len(b.Vertices) == 0 || len(b.Triangles) == 0 {
		return
	}

	if len(b.Normals) != len(b.Vertices) {
		b.Normals = make([]vecmath.Vec3, len(b.Vertices))
	} else {
		for i := range b.Normals {
			b.Normals[i] = vecmath.Vec3{}
		}
	}

	for t := 0; t+2 < len(b.Triangles); t += 3 {
		i0 := b.Triangles[t]
		i1 := b.Triangles[t+1]
		i2 := b.Triangles[t+2]

		v0 := b.Vertices[i0]
		face := b.Vertices[i1].Sub(v0).Cross(b.Vertices[i2].Sub(v0))

		b.Normals[i0] = b.Normals[i0].Add(face)
		b.Normals[i1] = b.Normals[i1].Add(face)
		b.Normals[i2] = b.Normals[i2].Add(face)
	}

	for i := range b.Normals {
		b.Normals[i] = b.Normals[i].Normalize()
	}
}
