package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// Frustum plane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustumFromMatrix extracts frustum planes from a combined view-projection
// matrix using the Gribb/Hartmann method. Planes are normalized so that
// SignedDistance returns world-space distances.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProjection: the combined projection * view matrix
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(viewProjection mgl32.Mat4) Frustum {
	// mgl32.Mat4 is column-major, so element (row, col) is at index col*4 + row.
	row := func(r int) mgl32.Vec4 {
		return mgl32.Vec4{viewProjection[r], viewProjection[4+r], viewProjection[8+r], viewProjection[12+r]}
	}

	row0 := row(0)
	row1 := row(1)
	row2 := row(2)
	row3 := row(3)

	combine := func(a, b mgl32.Vec4, subtract bool) Plane {
		var v mgl32.Vec4
		if subtract {
			v = a.Sub(b)
		} else {
			v = a.Add(b)
		}
		normal := mgl32.Vec3{v.X(), v.Y(), v.Z()}
		length := normal.Len()
		if length > 0 {
			normal = normal.Mul(1 / length)
			return Plane{Normal: normal, Distance: v.W() / length}
		}
		return Plane{}
	}

	var f Frustum
	f.Planes[FrustumLeft] = combine(row3, row0, false)
	f.Planes[FrustumRight] = combine(row3, row0, true)
	f.Planes[FrustumBottom] = combine(row3, row1, false)
	f.Planes[FrustumTop] = combine(row3, row1, true)
	f.Planes[FrustumNear] = combine(row3, row2, false)
	f.Planes[FrustumFar] = combine(row3, row2, true)
	return f
}

// SignedDistance returns the signed distance from the plane to a point.
// Positive values lie on the inside half-space of a frustum plane.
//
// Parameters:
//   - point: the world-space point to test
//
// Returns:
//   - float32: the signed distance
func (p Plane) SignedDistance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// ContainsSphere reports whether a sphere intersects or lies inside the frustum.
// A sphere is rejected as soon as it lies entirely behind any single plane.
//
// Parameters:
//   - center: the sphere center in world space
//   - radius: the sphere radius
//
// Returns:
//   - bool: true if the sphere is at least partially inside the frustum
func (f Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	for _, plane := range f.Planes {
		if plane.SignedDistance(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether a point lies inside the frustum.
//
// Parameters:
//   - point: the world-space point to test
//
// Returns:
//   - bool: true if the point is inside all six planes
func (f Frustum) ContainsPoint(point mgl32.Vec3) bool {
	return f.ContainsSphere(point, 0)
}
