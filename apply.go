package gizmo

import (
	"math"

	"github.com/gekko3d/gizmo/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// mouseIntersection projects the mouse ray onto the handle being dragged:
// onto the axis line for a single axis, onto the spanned plane for a pair.
// ok is false when the ray runs parallel to the handle.
func mouseIntersection(g Geometry, r geom.Ray, a Axis) (mgl64.Vec3, bool) {
	if a.IsPlane() {
		t, ok := geom.IntersectPlane(r, g.Origin, g.Normal(a))
		if !ok {
			return g.Origin, false
		}
		return r.At(t), true
	}
	return geom.ClosestPointOnLine(r, g.Origin, g.Direction(a))
}

// snap rounds v to the nearest multiple of step, halves away from zero.
func snap(v, step float64) float64 {
	return math.Trunc((v+sign(v)*step*0.5)/step) * step
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func snapVec(v mgl64.Vec3, step float64) mgl64.Vec3 {
	return mgl64.Vec3{snap(v.X(), step), snap(v.Y(), step), snap(v.Z(), step)}
}

func (c *Controller) translate(g Geometry, r geom.Ray, tr *Transform, cfg Config) bool {
	p, ok := mouseIntersection(g, r, c.axis)
	if !ok {
		return false
	}
	delta := p.Sub(c.prevPoint)
	res := tr.Position.Add(delta)

	if !cfg.Snapping() {
		c.prevPoint = p
		tr.Position = res
		return delta.LenSqr() > 0
	}

	snapped := snapVec(res, cfg.Step)
	if snapped == tr.Position {
		return false
	}
	// the quantized position, not the raw intersection, is the new reference
	c.prevPoint = snapped
	tr.Position = snapped
	return true
}

func (c *Controller) scale(g Geometry, r geom.Ray, tr *Transform) bool {
	p, ok := mouseIntersection(g, r, c.axis)
	if !ok {
		return false
	}
	delta := p.Sub(c.prevPoint)
	if delta.LenSqr() == 0 {
		return false
	}
	s := 1.0
	if delta.Dot(p.Sub(g.Origin)) < 0 {
		s = -1
	}
	c.prevPoint = p
	tr.Scale += delta.Len() * s
	return true
}

// rotateAngle is the signed angle about axis from the drag-start point to
// current, both taken relative to the gizmo origin.
func rotateAngle(g Geometry, axis Axis, start, current mgl64.Vec3) float64 {
	from, ok := geom.NormalizeSafe(start.Sub(g.Origin))
	if !ok {
		return 0
	}
	to, ok := geom.NormalizeSafe(current.Sub(g.Origin))
	if !ok {
		return 0
	}
	side := g.Direction(axis).Cross(to)
	y := mgl64.Clamp(from.Dot(to), -1, 1)
	x := mgl64.Clamp(from.Dot(side), -1, 1)
	return -math.Atan2(x, y)
}

// rotate always works from the drag-start snapshot, never from the previous
// frame, so long drags do not accumulate error.
func (c *Controller) rotate(g Geometry, current mgl64.Vec3, tr *Transform, cfg Config) bool {
	angle := rotateAngle(g, c.axis, c.prevPoint, current)
	if angle == 0 {
		return false
	}
	if cfg.Snapping() {
		step := mgl64.DegToRad(cfg.Step)
		if math.Abs(angle) <= step {
			return false
		}
		angle -= math.Mod(angle, step)
	}
	tr.Rotation = mgl64.QuatRotate(angle, g.Direction(c.axis)).Mul(c.startRot).Normalize()
	return true
}
