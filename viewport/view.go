package viewport

import (
	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/geom"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
)

// View is a window-backed gizmo.View.
type View struct {
	Camera   *Camera
	Mouse    *Mouse
	Recorder *Recorder

	Width, Height int
}

var _ gizmo.View = (*View)(nil)

func NewView(width, height int) *View {
	return &View{
		Camera:   NewCamera(),
		Mouse:    &Mouse{},
		Recorder: &Recorder{},
		Width:    width,
		Height:   height,
	}
}

// BeginFrame polls the window and drops last frame's vertices.
func (v *View) BeginFrame(w *glfw.Window) {
	v.Mouse.Poll(w)
	v.Width, v.Height = w.GetSize()
	v.Recorder.Reset()
}

func (v *View) Viewport() gizmo.Viewport { return v.Camera.Viewport() }

func (v *View) MousePos() mgl64.Vec2 { return mgl64.Vec2{v.Mouse.X, v.Mouse.Y} }

func (v *View) IsMouseClick(btn gizmo.MouseButton) bool { return v.Mouse.IsClick(btn) }

func (v *View) IsMouseDown(btn gizmo.MouseButton) bool { return v.Mouse.IsDown(btn) }

func (v *View) Ray(screen mgl64.Vec2) geom.Ray {
	return v.Camera.PickRay(screen.X(), screen.Y(), v.Width, v.Height)
}

func (v *View) Render(lines bool, count int) []gizmo.Vertex {
	return v.Recorder.Render(lines, count)
}
