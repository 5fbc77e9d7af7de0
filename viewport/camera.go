package viewport

import (
	"math"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/geom"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a Z-up fly camera. Yaw 0 looks down -Y; positive pitch looks up.
type Camera struct {
	Position mgl64.Vec3
	Yaw      float64 // radians
	Pitch    float64 // radians
	Fov      float64 // vertical, degrees

	Ortho     bool
	OrthoSize float64 // half the height of the orthographic view volume

	Near, Far float64
}

func NewCamera() *Camera {
	return &Camera{
		Position:  mgl64.Vec3{0, 2, 20},
		Fov:       60,
		OrthoSize: 10,
		Near:      0.1,
		Far:       1000,
	}
}

func (c *Camera) Forward() mgl64.Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	sp, cp := math.Sincos(c.Pitch)
	return mgl64.Vec3{cp * sy, -cp * cy, sp}
}

// Right stays in the XY plane so it is defined even when looking straight up
// or down.
func (c *Camera) Right() mgl64.Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	return mgl64.Vec3{-cy, -sy, 0}
}

func (c *Camera) Up() mgl64.Vec3 {
	return c.Right().Cross(c.Forward())
}

func (c *Camera) Viewport() gizmo.Viewport {
	return gizmo.Viewport{
		Position: c.Position,
		Fov:      mgl64.DegToRad(c.Fov),
		Ortho:    c.Ortho,
	}
}

func (c *Camera) tanHalfFov() float64 {
	return math.Tan(mgl64.DegToRad(c.Fov) / 2)
}

// PickRay returns the world ray under the screen point (x, y) of a
// width x height window, y growing downwards.
func (c *Camera) PickRay(x, y float64, width, height int) geom.Ray {
	if width <= 0 || height <= 0 {
		return geom.NewRay(c.Position, c.Forward())
	}
	nx := 2*x/float64(width) - 1
	ny := 1 - 2*y/float64(height)
	aspect := float64(width) / float64(height)

	forward, right, up := c.Forward(), c.Right(), c.Up()
	if c.Ortho {
		origin := c.Position.
			Add(right.Mul(nx * aspect * c.OrthoSize)).
			Add(up.Mul(ny * c.OrthoSize))
		return geom.NewRay(origin, forward)
	}

	t := c.tanHalfFov()
	dir := forward.Add(right.Mul(nx * aspect * t)).Add(up.Mul(ny * t))
	return geom.NewRay(c.Position, dir.Normalize())
}

// Project maps a world point to screen coordinates. ok is false for points
// behind a perspective camera.
func (c *Camera) Project(p mgl64.Vec3, width, height int) (screen mgl64.Vec2, ok bool) {
	if width <= 0 || height <= 0 {
		return mgl64.Vec2{}, false
	}
	rel := p.Sub(c.Position)
	x, y, z := rel.Dot(c.Right()), rel.Dot(c.Up()), rel.Dot(c.Forward())
	aspect := float64(width) / float64(height)

	var nx, ny float64
	if c.Ortho {
		nx = x / (c.OrthoSize * aspect)
		ny = y / c.OrthoSize
	} else {
		if z <= geom.Epsilon {
			return mgl64.Vec2{}, false
		}
		t := c.tanHalfFov()
		nx = x / (z * t * aspect)
		ny = y / (z * t)
	}
	return mgl64.Vec2{(nx + 1) * float64(width) / 2, (1 - ny) * float64(height) / 2}, true
}

// RelativeViewProjection is the matrix a renderer applies to gizmo
// vertices, which are already relative to the camera position.
func (c *Camera) RelativeViewProjection(width, height int) mgl32.Mat4 {
	f, u := c.Forward(), c.Up()
	view := mgl32.LookAtV(
		mgl32.Vec3{},
		mgl32.Vec3{float32(f[0]), float32(f[1]), float32(f[2])},
		mgl32.Vec3{float32(u[0]), float32(u[1]), float32(u[2])},
	)

	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	var proj mgl32.Mat4
	if c.Ortho {
		h := float32(c.OrthoSize)
		proj = mgl32.Ortho(-h*aspect, h*aspect, -h, h, float32(c.Near), float32(c.Far))
	} else {
		proj = mgl32.Perspective(mgl32.DegToRad(float32(c.Fov)), aspect, float32(c.Near), float32(c.Far))
	}
	return proj.Mul4(view)
}
