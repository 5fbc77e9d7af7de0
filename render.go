package gizmo

import (
	"fmt"
	"math"

	"github.com/gekko3d/gizmo/geom"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	ringSegments = 25
	ringGrid     = 5
	arcSegments  = 25
	cubeHalfSize = 0.1
)

// painter writes gizmo shapes into the view's vertex buffers. Positions are
// built in float64 relative to the camera and narrowed on write.
type painter struct {
	view     View
	settings Settings
	rel      mgl64.Vec3
}

func newPainter(view View, s Settings, g Geometry) painter {
	return painter{view: view, settings: s, rel: g.Origin.Sub(view.Viewport().Position)}
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func (p painter) axisLines(g Geometry, selected Axis) {
	s := p.settings
	v := p.view.Render(true, 6)
	for i, a := range [...]Axis{AxisX, AxisY, AxisZ} {
		col := s.color(a, selected, s.axisColor(a))
		v[i*2] = Vertex{Pos: vec32(p.rel), Color: col}
		v[i*2+1] = Vertex{Pos: vec32(p.rel.Add(g.Handle(a))), Color: col}
	}
}

func (p painter) drawTranslation(g Geometry, selected Axis) {
	p.axisLines(g, selected)

	s := p.settings
	patches := [...]struct {
		axis Axis
		a, b mgl64.Vec3
		base [4]float32
	}{
		{AxisXY, g.X, g.Y, s.ZColor},
		{AxisYZ, g.Y, g.Z, s.XColor},
		{AxisXZ, g.X, g.Z, s.YColor},
	}
	v := p.view.Render(false, 9)
	for i, patch := range patches {
		col := s.color(patch.axis, selected, patch.base)
		v[i*3] = Vertex{Pos: vec32(p.rel), Color: col}
		v[i*3+1] = Vertex{Pos: vec32(p.rel.Add(patch.a.Mul(s.PlanarPatch))), Color: col}
		v[i*3+2] = Vertex{Pos: vec32(p.rel.Add(patch.b.Mul(s.PlanarPatch))), Color: col}
	}
}

func (p painter) drawScale(g Geometry, selected Axis) {
	p.axisLines(g, selected)
	s := p.settings
	for _, a := range [...]Axis{AxisX, AxisY, AxisZ} {
		p.cube(p.rel.Add(g.Handle(a)), g.Scale, s.color(a, selected, s.axisColor(a)))
	}
}

var (
	cubeCorners = [8]mgl64.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1},
		{-1, 1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, 1, 1},
	}
	cubeIndices = [36]uint8{
		0, 1, 2, 0, 2, 3,
		4, 6, 5, 4, 7, 6,
		0, 4, 5, 0, 5, 1,
		2, 6, 7, 2, 7, 3,
		0, 3, 7, 0, 7, 4,
		1, 2, 6, 1, 6, 5,
	}
)

func (p painter) cube(center mgl64.Vec3, scale float64, col [4]float32) {
	v := p.view.Render(false, len(cubeIndices))
	for i, idx := range cubeIndices {
		pos := center.Add(cubeCorners[idx].Mul(cubeHalfSize * scale))
		v[i] = Vertex{Pos: vec32(pos), Color: col}
	}
}

// drawRotation draws the three quarter-rings shown while idle or hovering.
func (p painter) drawRotation(g Geometry, selected Axis) {
	s := p.settings
	p.quarterRing(g.X, g.Y, s.color(AxisZ, selected, s.ZColor))
	p.quarterRing(g.Y, g.Z, s.color(AxisX, selected, s.XColor))
	p.quarterRing(g.X, g.Z, s.color(AxisY, selected, s.YColor))
}

// drawRotationDrag draws the active ring whole and, when both points are
// known, an arc fan over the angle swept from start to current.
func (p painter) drawRotationDrag(g Geometry, axis Axis, start, current mgl64.Vec3, haveArc bool) {
	var a, b mgl64.Vec3
	switch axis {
	case AxisX:
		a, b = g.Y, g.Z
	case AxisY:
		a, b = g.X, g.Z
	case AxisZ:
		a, b = g.X, g.Y
	default:
		panic(fmt.Sprintf("gizmo: cannot draw rotation ring for axis %s", axis))
	}
	col := p.settings.SelectedColor
	p.quarterRing(a, b, col)
	p.quarterRing(a.Mul(-1), b, col)
	p.quarterRing(a.Mul(-1), b.Mul(-1), col)
	p.quarterRing(a, b.Mul(-1), col)

	if haveArc {
		p.arc(g, start, current)
	}
}

// quarterRing draws a band between radius 1 and 1.1 sweeping from b to a,
// plus a wire grid filling the quarter disc.
func (p painter) quarterRing(a, b mgl64.Vec3, col [4]float32) {
	const step = math.Pi / 2 / ringSegments
	v := p.view.Render(false, ringSegments*6)
	for i := 0; i < ringSegments; i++ {
		angle := float64(i) * step
		s, c := math.Sincos(angle)
		sn, cn := math.Sincos(angle + step)

		p0 := p.rel.Add(a.Mul(s)).Add(b.Mul(c))
		p1 := p.rel.Add(a.Mul(1.1 * s)).Add(b.Mul(1.1 * c))
		p2 := p.rel.Add(a.Mul(1.1 * sn)).Add(b.Mul(1.1 * cn))
		p3 := p.rel.Add(a.Mul(sn)).Add(b.Mul(cn))

		quad := [6]mgl64.Vec3{p0, p1, p2, p0, p2, p3}
		for j, q := range quad {
			v[i*6+j] = Vertex{Pos: vec32(q), Color: col}
		}
	}

	lines := p.view.Render(true, (ringGrid+1)*4)
	for i := 0; i <= ringGrid; i++ {
		t := float64(i) / ringGrid
		ratio := math.Sin(math.Acos(t))
		lines[i*4] = Vertex{Pos: vec32(p.rel.Add(a.Mul(t))), Color: col}
		lines[i*4+1] = Vertex{Pos: vec32(p.rel.Add(a.Mul(t)).Add(b.Mul(ratio))), Color: col}
		lines[i*4+2] = Vertex{Pos: vec32(p.rel.Add(b.Mul(t)).Add(a.Mul(ratio))), Color: col}
		lines[i*4+3] = Vertex{Pos: vec32(p.rel.Add(b.Mul(t))), Color: col}
	}
}

func (p painter) arc(g Geometry, start, current mgl64.Vec3) {
	from, ok := geom.NormalizeSafe(start.Sub(g.Origin))
	if !ok {
		return
	}
	to, ok := geom.NormalizeSafe(current.Sub(g.Origin))
	if !ok {
		return
	}
	v := p.view.Render(false, arcSegments*3)
	for i := 0; i < arcSegments; i++ {
		a := slerp(from, to, float64(i)/arcSegments).Mul(g.Scale)
		b := slerp(from, to, float64(i+1)/arcSegments).Mul(g.Scale)
		v[i*3] = Vertex{Pos: vec32(p.rel), Color: p.settings.ArcColor}
		v[i*3+1] = Vertex{Pos: vec32(p.rel.Add(a)), Color: p.settings.ArcColor}
		v[i*3+2] = Vertex{Pos: vec32(p.rel.Add(b)), Color: p.settings.ArcColor}
	}
}

// slerp interpolates between unit vectors, falling back to a normalized lerp
// when they are (anti)parallel.
func slerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	cos := mgl64.Clamp(a.Dot(b), -1, 1)
	theta := math.Acos(cos)
	sin := math.Sin(theta)
	if sin < 1e-6 {
		l := a.Mul(1 - t).Add(b.Mul(t))
		if l.Len() < 1e-6 {
			return a
		}
		return l.Normalize()
	}
	return a.Mul(math.Sin((1-t)*theta) / sin).Add(b.Mul(math.Sin(t*theta) / sin))
}

func (p painter) draw(mode Mode, g Geometry, selected Axis) {
	switch mode {
	case ModeTranslate:
		p.drawTranslation(g, selected)
	case ModeRotate:
		p.drawRotation(g, selected)
	case ModeScale:
		p.drawScale(g, selected)
	default:
		panic(fmt.Sprintf("gizmo: unknown mode %s", mode))
	}
}
