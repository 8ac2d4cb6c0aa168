package geometry

import "github.com/Faultbox/meshkit/pkg/vecmath"

// Bounds is an axis-aligned bounding box in min/max form.
type Bounds struct {
	Min vecmath.Vec3
	Max vecmath.Vec3
}

// Center returns the midpoint of the box, (min+max)/2.
func (b Bounds) Center() vecmath.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the per-axis extent of the box, max-min.
func (b Bounds) Size() vecmath.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside the box, boundary inclusive.
func (b Bounds) Contains(p vecmath.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ExpandByPoint grows the box to include p.
func (b *Bounds) ExpandByPoint(p vecmath.Vec3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}
