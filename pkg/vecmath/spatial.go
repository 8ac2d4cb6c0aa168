package vecmath

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrZeroPlaneNormal is returned when a projection plane has no
// orientation.
var ErrZeroPlaneNormal = errors.New("vecmath: plane normal is the zero vector")

// Fixed world axes used to derive in-plane bases.
var (
	worldRight   = Vec3{X: 1}
	worldUp      = Vec3{Y: 1}
	worldForward = Vec3{Z: 1}
)

// CircularIndex wraps i into [0, size) with floor-modulo semantics:
// negative i wraps to the high end, so CircularIndex(-1, 5) == 4.
func CircularIndex(i, size int) int {
	return ((i % size) + size) % size
}

// CylindricalUV maps a direction to cylindrical texture coordinates.
// Longitude (U) is atan2(z, x) in turns shifted by +0.5; latitude (V)
// is asin(y) in turns, doubled, shifted by +0.5, so the poles land at
// 0 and 1. The arcsine keeps latitude equal-angle rather than
// equal-height, which changes polar distortion versus a linear remap
// of y; do not simplify it away.
func CylindricalUV(vertex Vec3) Vec2 {
	n := vertex.Normalize()
	u := math32.Atan2(n.Z, n.X)/(2*math32.Pi) + 0.5
	v := math32.Asin(n.Y)/(2*math32.Pi)*2 + 0.5
	return Vec2{u, v}
}

// ProjectPointOntoPlane returns the 2D coordinates of point within the
// plane defined by a unit normal and an origin point. The in-plane
// basis is derived from world up: an approximately up-facing plane uses
// the fixed right/forward axes directly, since crossing with a parallel
// vector would degenerate; any other plane gets X = normalize(up x n)
// and Y = n x X. Y is unit length by construction and is not
// renormalized.
func ProjectPointOntoPlane(point, planeNormal, planeOrigin Vec3) (Vec2, error) {
	if planeNormal == (Vec3{}) {
		return Vec2{}, ErrZeroPlaneNormal
	}

	var axisX, axisY Vec3
	if planeNormal.CloseEqual(worldUp) {
		axisX = worldRight
		axisY = worldForward
	} else {
		axisX = worldUp.Cross(planeNormal).Normalize()
		axisY = planeNormal.Cross(axisX)
	}

	d := point.Sub(planeOrigin)
	return Vec2{d.Dot(axisX), d.Dot(axisY)}, nil
}
