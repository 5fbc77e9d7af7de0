package gizmo

import (
	"math"

	"github.com/gekko3d/gizmo/geom"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeBatch struct {
	lines    bool
	vertices []Vertex
}

// fakeView is a camera hovering 10 units above the z = 0 plane whose mouse
// ray can be aimed directly.
type fakeView struct {
	vp      Viewport
	ray     geom.Ray
	click   bool
	down    bool
	batches []fakeBatch
}

func newFakeView() *fakeView {
	v := &fakeView{vp: Viewport{Position: mgl64.Vec3{0, 0, 10}, Fov: math.Pi / 3}}
	v.pointAt(100, 100)
	return v
}

// gizmo length of an object at the origin seen by newFakeView
var fakeScale = math.Tan(math.Pi/6) * 10 * 2 / 10

func (f *fakeView) Viewport() Viewport                { return f.vp }
func (f *fakeView) MousePos() mgl64.Vec2              { return mgl64.Vec2{} }
func (f *fakeView) IsMouseClick(btn MouseButton) bool { return btn == MouseLeft && f.click }
func (f *fakeView) IsMouseDown(btn MouseButton) bool  { return btn == MouseLeft && f.down }
func (f *fakeView) Ray(screen mgl64.Vec2) geom.Ray    { return f.ray }

func (f *fakeView) Render(lines bool, count int) []Vertex {
	v := make([]Vertex, count)
	f.batches = append(f.batches, fakeBatch{lines: lines, vertices: v})
	return v
}

// pointAt aims the mouse ray straight down through (x, y, 0).
func (f *fakeView) pointAt(x, y float64) *fakeView {
	f.ray = geom.NewRay(mgl64.Vec3{x, y, 10}, mgl64.Vec3{0, 0, -1})
	return f
}

func (f *fakeView) press() *fakeView {
	f.click, f.down = true, true
	return f
}

func (f *fakeView) hold() *fakeView {
	f.click, f.down = false, true
	return f
}

func (f *fakeView) release() *fakeView {
	f.click, f.down = false, false
	return f
}

func (f *fakeView) clearBatches() {
	f.batches = nil
}
