package gizmo

import (
	"fmt"
	"math"

	"github.com/gekko3d/gizmo/geom"
)

// Collide returns the handle under the ray, or AxisNone. It does not touch
// any interaction state, so repeated calls with equal inputs agree.
func (s Settings) Collide(mode Mode, g Geometry, r geom.Ray) Axis {
	if g.Scale < geom.Epsilon {
		return AxisNone
	}
	switch mode {
	case ModeTranslate:
		return s.collideTranslation(g, r)
	case ModeRotate:
		return s.collideRotation(g, r)
	case ModeScale:
		return s.nearestAxis(g, r)
	default:
		panic(fmt.Sprintf("gizmo: unknown mode %s", mode))
	}
}

func (s Settings) collideTranslation(g Geometry, r geom.Ray) Axis {
	patches := [...]struct {
		axis Axis
		a, b Axis
	}{
		{AxisXY, AxisX, AxisY},
		{AxisYZ, AxisY, AxisZ},
		{AxisXZ, AxisX, AxisZ},
	}

	best := AxisNone
	tmin := math.Inf(1)
	for _, p := range patches {
		t, ok := geom.IntersectTriangle(r,
			g.Origin,
			g.Origin.Add(g.Handle(p.a).Mul(s.PlanarPatch)),
			g.Origin.Add(g.Handle(p.b).Mul(s.PlanarPatch)),
		)
		if ok && t < tmin {
			tmin = t
			best = p.axis
		}
	}
	if best != AxisNone {
		return best
	}
	return s.nearestAxis(g, r)
}

// nearestAxis picks the axis segment closest to the ray within the influence
// distance. Ties go to the earlier axis in X, Y, Z order.
func (s Settings) nearestAxis(g Geometry, r geom.Ray) Axis {
	best := AxisNone
	bestDist := g.Scale * s.InfluenceDistance
	for _, a := range [...]Axis{AxisX, AxisY, AxisZ} {
		d := geom.SegmentDistance(r, g.Origin, g.Origin.Add(g.Handle(a)))
		if d < bestDist {
			best = a
			bestDist = d
		}
	}
	return best
}

func (s Settings) collideRotation(g Geometry, r geom.Ray) Axis {
	best := AxisNone
	tmin := math.Inf(1)
	var dist float64
	for _, a := range [...]Axis{AxisX, AxisY, AxisZ} {
		t, ok := geom.IntersectPlane(r, g.Origin, g.Direction(a))
		if !ok || t <= 0 || t >= tmin {
			continue
		}
		tmin = t
		best = a
		dist = r.At(t).Sub(g.Origin).Len()
	}
	if best == AxisNone || dist > g.Scale*s.RingTolerance {
		return AxisNone
	}
	return best
}
