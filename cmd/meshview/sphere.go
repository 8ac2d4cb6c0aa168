package main

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshkit/pkg/geometry"
	"github.com/Faultbox/meshkit/pkg/vecmath"
)

// buildSphere creates a unit UV sphere with rings latitude bands and
// segments meridians. Texture coordinates come from the cylindrical
// mapping, so the checker shader shows the equal-angle latitude
// spacing. The pole rings collapse to a point; the resulting
// degenerate triangles contribute nothing to the recomputed normals.
func buildSphere(rings, segments int) *geometry.Buffer {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	buf := geometry.New("demo-sphere")

	for r := 0; r <= rings; r++ {
		lat := math32.Pi*float32(r)/float32(rings) - math32.Pi/2
		y := math32.Sin(lat)
		c := math32.Cos(lat)
		for s := 0; s < segments; s++ {
			lon := 2 * math32.Pi * float32(s) / float32(segments)
			p := vecmath.Vec3{X: c * math32.Cos(lon), Y: y, Z: c * math32.Sin(lon)}
			buf.Vertices = append(buf.Vertices, p)
			buf.UV = append(buf.UV, vecmath.CylindricalUV(p))
		}
	}

	ringStart := func(r int) int { return r * segments }
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			s1 := vecmath.CircularIndex(s+1, segments)
			a := uint32(ringStart(r) + s)
			b := uint32(ringStart(r) + s1)
			c := uint32(ringStart(r+1) + s)
			d := uint32(ringStart(r+1) + s1)
			buf.Triangles = append(buf.Triangles, a, d, b, a, c, d)
		}
	}

	buf.RecalculateNormals()
	buf.RecalculateBounds()
	return buf
}
