package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon below which a denominator is treated as zero (parallel primitives).
const Epsilon = 1e-9

type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlane returns the ray parameter at which the ray crosses the plane
// through point with the given normal. The parameter may be negative.
// ok is false when the ray runs parallel to the plane.
func IntersectPlane(r Ray, point, normal mgl64.Vec3) (t float64, ok bool) {
	denom := r.Direction.Dot(normal)
	if math.Abs(denom) < Epsilon {
		return 0, false
	}
	return point.Sub(r.Origin).Dot(normal) / denom, true
}

// IntersectTriangle is a Möller–Trumbore test. Only hits in front of the ray
// origin (t > 0) count.
func IntersectTriangle(r Ray, p0, p1, p2 mgl64.Vec3) (t float64, ok bool) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	h := r.Direction.Cross(e2)
	det := e1.Dot(h)
	if math.Abs(det) < Epsilon {
		return 0, false
	}
	inv := 1 / det
	s := r.Origin.Sub(p0)
	u := s.Dot(h) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t = e2.Dot(q) * inv
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// SegmentDistance returns the shortest distance between the ray and the
// segment a-b. The segment parameter is clamped to [0,1] and the ray
// parameter to t >= 0.
func SegmentDistance(r Ray, a, b mgl64.Vec3) float64 {
	ab := b.Sub(a)
	w := r.Origin.Sub(a)

	dd := r.Direction.Dot(r.Direction)
	de := r.Direction.Dot(ab)
	ee := ab.Dot(ab)
	dw := r.Direction.Dot(w)
	ew := ab.Dot(w)

	if ee < Epsilon {
		return pointRayDistance(r, a)
	}

	det := dd*ee - de*de
	var s float64
	if det < Epsilon*dd*ee {
		// parallel: any point works, measure from the segment start
		s = 0
	} else {
		t := (de*ew - dw*ee) / det
		if t < 0 {
			t = 0
		}
		s = (ew + t*de) / ee
	}
	s = mgl64.Clamp(s, 0, 1)
	return pointRayDistance(r, a.Add(ab.Mul(s)))
}

func pointRayDistance(r Ray, p mgl64.Vec3) float64 {
	dd := r.Direction.Dot(r.Direction)
	if dd < Epsilon {
		return p.Sub(r.Origin).Len()
	}
	t := p.Sub(r.Origin).Dot(r.Direction) / dd
	if t < 0 {
		t = 0
	}
	return p.Sub(r.At(t)).Len()
}

// ClosestPointOnLine returns the point on the infinite line through origin
// along axis that is closest to the ray. ok is false when the ray runs
// parallel to the line.
func ClosestPointOnLine(r Ray, origin, axis mgl64.Vec3) (mgl64.Vec3, bool) {
	normal := r.Direction.Cross(axis).Cross(r.Direction)
	denom := axis.Dot(normal)
	if math.Abs(denom) < Epsilon {
		return origin, false
	}
	d := r.Origin.Sub(origin).Dot(normal) / denom
	return origin.Add(axis.Mul(d)), true
}

// NormalizeSafe normalizes v, returning ok=false for a zero-length vector.
func NormalizeSafe(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}
