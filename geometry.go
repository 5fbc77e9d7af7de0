package gizmo

import (
	"fmt"
	"math"

	"github.com/gekko3d/gizmo/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is the per-frame shape of a gizmo: an origin and three handle
// vectors of equal length, each turned towards the camera.
type Geometry struct {
	Origin  mgl64.Vec3
	X, Y, Z mgl64.Vec3
	Scale   float64
}

// ScreenScale returns the handle length that keeps the gizmo at a constant
// apparent size for the given viewport.
func (s Settings) ScreenScale(vp Viewport, pos mgl64.Vec3) float64 {
	if vp.Ortho {
		return s.OrthoScale
	}
	dist := pos.Sub(vp.Position).Len()
	return math.Tan(vp.Fov*0.5) * dist * 2 / s.ScreenFraction
}

func (s Settings) BuildGeometry(vp Viewport, tr *Transform, coord CoordSystem) Geometry {
	scale := s.ScreenScale(vp, tr.Position)
	g := Geometry{Origin: tr.Position, Scale: scale}

	switch coord {
	case CoordGlobal:
		g.X = mgl64.Vec3{scale, 0, 0}
		g.Y = mgl64.Vec3{0, scale, 0}
		g.Z = mgl64.Vec3{0, 0, scale}
	case CoordLocal:
		g.X = tr.Rotation.Rotate(mgl64.Vec3{scale, 0, 0})
		g.Y = tr.Rotation.Rotate(mgl64.Vec3{0, scale, 0})
		g.Z = tr.Rotation.Rotate(mgl64.Vec3{0, 0, scale})
	default:
		panic(fmt.Sprintf("gizmo: unknown coordinate system %d", coord))
	}

	if camDir, ok := geom.NormalizeSafe(tr.Position.Sub(vp.Position)); ok {
		g.X = faceCamera(g.X, camDir)
		g.Y = faceCamera(g.Y, camDir)
		g.Z = faceCamera(g.Z, camDir)
	}
	return g
}

func faceCamera(v, camDir mgl64.Vec3) mgl64.Vec3 {
	if v.Dot(camDir) > 0 {
		return v.Mul(-1)
	}
	return v
}

// Handle returns the scaled vector of a single-axis handle.
func (g Geometry) Handle(a Axis) mgl64.Vec3 {
	switch a {
	case AxisX:
		return g.X
	case AxisY:
		return g.Y
	case AxisZ:
		return g.Z
	default:
		panic(fmt.Sprintf("gizmo: axis %s is not a single axis", a))
	}
}

// Direction returns the unit direction of a single-axis handle.
func (g Geometry) Direction(a Axis) mgl64.Vec3 {
	return g.Handle(a).Normalize()
}

// Normal returns the unit normal of a planar handle.
func (g Geometry) Normal(a Axis) mgl64.Vec3 {
	switch a {
	case AxisXY:
		return g.Z.Normalize()
	case AxisXZ:
		return g.Y.Normalize()
	case AxisYZ:
		return g.X.Normalize()
	default:
		panic(fmt.Sprintf("gizmo: axis %s is not a plane", a))
	}
}
