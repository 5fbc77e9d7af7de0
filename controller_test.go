package gizmo

import (
	"bytes"
	"math"
	"testing"

	"github.com/gekko3d/gizmo/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startDrag hovers and clicks the handle under (x, y) for id.
func startDrag(t *testing.T, c *Controller, id ObjectId, view *fakeView, tr *Transform, cfg Config, x, y float64, axis Axis) {
	t.Helper()
	changed := c.Manipulate(id, view.pointAt(x, y).press(), tr, cfg)
	require.False(t, changed)
	require.Equal(t, id, c.Dragged())
	require.Equal(t, axis, c.Axis())
}

func TestHoverMarksActive(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()
	cfg := DefaultConfig()

	assert.False(t, c.Manipulate(id, view.pointAt(1, 0.1), tr, cfg))
	assert.Equal(t, id, c.Hovered())
	assert.Equal(t, NoObject, c.Dragged())
	assert.True(t, c.IsActive())

	// hovering again with the same inputs keeps the same state
	assert.False(t, c.Manipulate(id, view, tr, cfg))
	assert.Equal(t, id, c.Hovered())

	assert.False(t, c.Manipulate(id, view.pointAt(4, 4), tr, cfg))
	assert.Equal(t, NoObject, c.Hovered())
	assert.False(t, c.IsActive())
}

func TestHoverDoesNotClearOtherObject(t *testing.T) {
	c := NewController()
	a, b := NewObjectId(), NewObjectId()
	view := newFakeView().pointAt(1, 0.1)
	cfg := DefaultConfig()

	c.Manipulate(a, view, NewTransform(), cfg)
	far := NewTransform()
	far.Position = mgl64.Vec3{50, 0, 0}
	c.Manipulate(b, view, far, cfg)
	assert.Equal(t, a, c.Hovered())
}

func TestClickOffHandleDoesNotDrag(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	c.Manipulate(id, view.pointAt(4, 4).press(), NewTransform(), DefaultConfig())
	assert.Equal(t, NoObject, c.Dragged())
	assert.False(t, c.IsActive())
}

func TestTranslateAlongX(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()
	cfg := DefaultConfig()

	startDrag(t, c, id, view, tr, cfg, 1, 0.1, AxisX)

	assert.True(t, c.Manipulate(id, view.pointAt(2, 0.1).hold(), tr, cfg))
	assert.InDelta(t, 1, tr.Position.X(), 1e-9)
	assert.Equal(t, 0.0, tr.Position.Y())
	assert.Equal(t, 0.0, tr.Position.Z())

	// the mouse did not move: nothing to apply
	assert.False(t, c.Manipulate(id, view, tr, cfg))
	assert.InDelta(t, 1, tr.Position.X(), 1e-9)
}

func TestTranslateOnPlane(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()
	cfg := DefaultConfig()

	startDrag(t, c, id, view, tr, cfg, 0.1, 0.1, AxisXY)

	assert.True(t, c.Manipulate(id, view.pointAt(0.6, 0.4).hold(), tr, cfg))
	assert.True(t, tr.Position.ApproxEqualThreshold(mgl64.Vec3{0.5, 0.3, 0}, 1e-9), "got %v", tr.Position)
}

func TestTranslateSnapping(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()
	cfg := Config{Mode: ModeTranslate, CoordSystem: CoordGlobal, Step: 0.5}

	startDrag(t, c, id, view, tr, cfg, 1, 0.1, AxisX)

	assert.False(t, c.Manipulate(id, view.pointAt(1.24, 0.1).hold(), tr, cfg))
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, tr.Position)

	assert.True(t, c.Manipulate(id, view.pointAt(1.26, 0.1), tr, cfg))
	assert.Equal(t, mgl64.Vec3{0.5, 0, 0}, tr.Position)
	assert.Equal(t, tr.Position, c.prevPoint, "reference is the quantized position")

	// deltas are now measured from 0.5: 1.30 lands on 1.5
	assert.True(t, c.Manipulate(id, view.pointAt(1.30, 0.1), tr, cfg))
	assert.Equal(t, mgl64.Vec3{1.5, 0, 0}, tr.Position)
	assert.Equal(t, tr.Position, c.prevPoint)

	assert.False(t, c.Manipulate(id, view.pointAt(1.26, 0.1), tr, cfg))
	assert.Equal(t, mgl64.Vec3{1.5, 0, 0}, tr.Position)
	assert.Equal(t, mgl64.Vec3{1.5, 0, 0}, c.prevPoint, "no commit, reference kept")

	assert.True(t, c.Manipulate(id, view.pointAt(1.80, 0.1), tr, cfg))
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, tr.Position)
}

func TestRotateQuarterTurnAboutZ(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()
	cfg := Config{Mode: ModeRotate, CoordSystem: CoordGlobal}

	startDrag(t, c, id, view, tr, cfg, 1, 0, AxisZ)

	assert.True(t, c.Manipulate(id, view.pointAt(0, 1).hold(), tr, cfg))
	want := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	assert.True(t, tr.Rotation.ApproxEqualThreshold(want, 1e-9), "got %v", tr.Rotation)
	assert.True(t, tr.Rotation.Rotate(mgl64.Vec3{1, 0, 0}).ApproxEqualThreshold(mgl64.Vec3{0, 1, 0}, 1e-9))

	// the angle is measured from the drag start, not accumulated
	assert.True(t, c.Manipulate(id, view.pointAt(0, 1), tr, cfg))
	assert.True(t, tr.Rotation.ApproxEqualThreshold(want, 1e-9))

	// a zero angle is not applied: the last rotation stays
	assert.False(t, c.Manipulate(id, view.pointAt(1, 0), tr, cfg))
	assert.True(t, tr.Rotation.ApproxEqualThreshold(want, 1e-9), "got %v", tr.Rotation)
}

func TestRotateKeepsStartRotation(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()
	start := mgl64.QuatRotate(0.3, mgl64.Vec3{1, 0, 0})
	tr.Rotation = start
	cfg := Config{Mode: ModeRotate, CoordSystem: CoordGlobal}

	startDrag(t, c, id, view, tr, cfg, 0, 1, AxisZ)

	assert.True(t, c.Manipulate(id, view.pointAt(-1, 0).hold(), tr, cfg))
	want := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}).Mul(start)
	assert.True(t, tr.Rotation.ApproxEqualThreshold(want, 1e-9), "got %v", tr.Rotation)
	assert.InDelta(t, 1, tr.Rotation.Len(), 1e-12)
}

func TestRotateSnapping(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()
	cfg := Config{Mode: ModeRotate, CoordSystem: CoordGlobal, Step: 30}
	at := func(deg float64) *fakeView {
		s, co := math.Sincos(mgl64.DegToRad(deg))
		return view.pointAt(co, s)
	}

	startDrag(t, c, id, view, tr, cfg, 1, 0, AxisZ)

	assert.False(t, c.Manipulate(id, at(20).hold(), tr, cfg))
	assert.Equal(t, mgl64.QuatIdent(), tr.Rotation)

	// truncated towards zero, not rounded
	assert.True(t, c.Manipulate(id, at(75), tr, cfg))
	x := tr.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
	assert.InDelta(t, 60, mgl64.RadToDeg(math.Atan2(x.Y(), x.X())), 1e-6)

	assert.True(t, c.Manipulate(id, at(-75), tr, cfg))
	x = tr.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
	assert.InDelta(t, -60, mgl64.RadToDeg(math.Atan2(x.Y(), x.X())), 1e-6)
}

func TestScaleDrag(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()
	cfg := Config{Mode: ModeScale, CoordSystem: CoordGlobal}

	startDrag(t, c, id, view, tr, cfg, 0.8, 0.05, AxisX)

	assert.True(t, c.Manipulate(id, view.pointAt(1.3, 0.05).hold(), tr, cfg))
	assert.InDelta(t, 1.5, tr.Scale, 1e-9)

	assert.True(t, c.Manipulate(id, view.pointAt(0.8, 0.05), tr, cfg))
	assert.InDelta(t, 1.0, tr.Scale, 1e-9)

	assert.False(t, c.Manipulate(id, view, tr, cfg))
	assert.InDelta(t, 1.0, tr.Scale, 1e-9)
}

func TestDragIsExclusive(t *testing.T) {
	c := NewController()
	a, b := NewObjectId(), NewObjectId()
	view := newFakeView()
	trA := NewTransform()
	trB := NewTransform()
	trB.Position = mgl64.Vec3{3, 0, 0}
	cfg := DefaultConfig()

	startDrag(t, c, a, view, trA, cfg, 1, 0.1, AxisX)

	// b's handle is right under the mouse and the button is pressed again
	assert.False(t, c.Manipulate(b, view.pointAt(4, 0.1).press(), trB, cfg))
	assert.Equal(t, mgl64.Vec3{3, 0, 0}, trB.Position)
	assert.Equal(t, a, c.Dragged())

	assert.False(t, c.Manipulate(b, view.hold(), trB, cfg))
	assert.Equal(t, mgl64.Vec3{3, 0, 0}, trB.Position)
	assert.Equal(t, a, c.Dragged())

	assert.True(t, c.Manipulate(a, view, trA, cfg))
	assert.InDelta(t, 3, trA.Position.X(), 1e-9)
}

func TestReleaseEndsDrag(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()
	cfg := DefaultConfig()

	startDrag(t, c, id, view, tr, cfg, 1, 0.1, AxisX)
	assert.True(t, c.Manipulate(id, view.pointAt(2, 0.1).hold(), tr, cfg))

	// released far away from every handle
	assert.False(t, c.Manipulate(id, view.pointAt(40, -40).release(), tr, cfg))
	assert.Equal(t, NoObject, c.Dragged())
	assert.Equal(t, AxisNone, c.Axis())
	assert.InDelta(t, 1, tr.Position.X(), 1e-9)

	assert.False(t, c.Manipulate(id, view, tr, cfg))
	assert.False(t, c.IsActive())
}

func TestDegenerateRayKeepsReference(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()
	cfg := DefaultConfig()

	startDrag(t, c, id, view, tr, cfg, 1, 0.1, AxisX)

	// the ray runs along the X axis: no usable projection this frame
	view.hold().ray.Direction = mgl64.Vec3{1, 0, 0}
	assert.False(t, c.Manipulate(id, view, tr, cfg))
	assert.Equal(t, mgl64.Vec3{}, tr.Position)
	assert.Equal(t, id, c.Dragged())

	assert.True(t, c.Manipulate(id, view.pointAt(1.5, 0.1), tr, cfg))
	assert.InDelta(t, 0.5, tr.Position.X(), 1e-9)
}

func TestDegenerateDragStart(t *testing.T) {
	var out bytes.Buffer
	c := NewController().UseLogger(NewWriterLogger(&out, &out, "", false))
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()
	cfg := DefaultConfig()

	// a ray running along X just below the origin: X is the closest handle
	// but has no usable projection
	view.press().ray = geom.NewRay(mgl64.Vec3{-5, -0.03, 0}, mgl64.Vec3{1, 0, 0})
	assert.False(t, c.Manipulate(id, view, tr, cfg))
	require.Equal(t, id, c.Dragged())
	require.Equal(t, AxisX, c.Axis())
	assert.False(t, c.hasPoint)
	assert.Equal(t, NewTransform(), tr)
	assert.Contains(t, out.String(), "WARN: gizmo: mouse ray runs parallel to handle x")

	// the first usable frame records the reference and moves nothing
	assert.False(t, c.Manipulate(id, view.pointAt(1, 0.1).hold(), tr, cfg))
	assert.True(t, c.hasPoint)
	assert.Equal(t, mgl64.Vec3{}, tr.Position)

	assert.True(t, c.Manipulate(id, view.pointAt(1.4, 0.1), tr, cfg))
	assert.InDelta(t, 0.4, tr.Position.X(), 1e-9)
	assert.InDelta(t, 0, tr.Position.Y(), 1e-9)
}

func TestModeChangeEndsDrag(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()

	startDrag(t, c, id, view, tr, DefaultConfig(), 0.1, 0.1, AxisXY)

	rotate := Config{Mode: ModeRotate}
	assert.False(t, c.Manipulate(id, view.pointAt(0.5, 0.5).hold(), tr, rotate))
	assert.Equal(t, NoObject, c.Dragged())
	assert.Equal(t, mgl64.QuatIdent(), tr.Rotation)
}

func TestReset(t *testing.T) {
	c := NewController()
	id := NewObjectId()
	view := newFakeView()
	startDrag(t, c, id, view, NewTransform(), DefaultConfig(), 1, 0.1, AxisX)

	c.Reset()
	assert.False(t, c.IsActive())
	assert.Equal(t, AxisNone, c.Axis())
}

func TestResetLogsCancelledDrag(t *testing.T) {
	var out bytes.Buffer
	c := NewController().UseLogger(NewWriterLogger(&out, &out, "editor", false))
	id := NewObjectId()
	startDrag(t, c, id, newFakeView(), NewTransform(), DefaultConfig(), 1, 0.1, AxisX)

	c.Reset()
	assert.Contains(t, out.String(), "[editor] INFO: gizmo: translate drag of "+id.String()+" along x cancelled")

	// nothing to cancel the second time
	out.Reset()
	c.Reset()
	assert.Empty(t, out.String())
}

func TestManipulateRejectsNoObject(t *testing.T) {
	c := NewController()
	assert.Panics(t, func() {
		c.Manipulate(NoObject, newFakeView(), NewTransform(), DefaultConfig())
	})
}

func TestControllerLogsDrag(t *testing.T) {
	var out bytes.Buffer
	c := NewController().UseLogger(NewWriterLogger(&out, &out, "editor", true))
	id := NewObjectId()
	view := newFakeView()
	tr := NewTransform()

	startDrag(t, c, id, view, tr, DefaultConfig(), 1, 0.1, AxisX)
	c.Manipulate(id, view.release(), tr, DefaultConfig())

	assert.Contains(t, out.String(), "translate drag of "+id.String()+" along x started")
	assert.Contains(t, out.String(), "translate drag of "+id.String()+" along x ended")
}

func TestCustomSettings(t *testing.T) {
	s := DefaultSettings()
	s.InfluenceDistance = 0.05
	c := NewController().UseSettings(s)
	id := NewObjectId()

	// close enough for the default tolerance, too far for this one
	c.Manipulate(id, newFakeView().pointAt(1, 0.1), NewTransform(), Config{Mode: ModeScale})
	assert.False(t, c.IsActive())
}
