package viewport

import (
	"github.com/gekko3d/gizmo"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const buttonCount = 3

// Mouse keeps the cursor position and button edges of the current frame.
type Mouse struct {
	X, Y float64

	Pressed      [buttonCount]bool
	JustPressed  [buttonCount]bool
	JustReleased [buttonCount]bool
}

// Update advances the mouse one frame.
func (m *Mouse) Update(x, y float64, pressed [buttonCount]bool) {
	m.X, m.Y = x, y
	for btn, down := range pressed {
		m.JustPressed[btn] = down && !m.Pressed[btn]
		m.JustReleased[btn] = !down && m.Pressed[btn]
		m.Pressed[btn] = down
	}
}

var buttonToGlfw = [buttonCount]glfw.MouseButton{
	gizmo.MouseLeft:   glfw.MouseButtonLeft,
	gizmo.MouseRight:  glfw.MouseButtonRight,
	gizmo.MouseMiddle: glfw.MouseButtonMiddle,
}

// Poll reads the window's cursor and buttons. Call it once per frame after
// glfw.PollEvents.
func (m *Mouse) Poll(w *glfw.Window) {
	x, y := w.GetCursorPos()
	var pressed [buttonCount]bool
	for btn, glfwBtn := range buttonToGlfw {
		pressed[btn] = w.GetMouseButton(glfwBtn) == glfw.Press
	}
	m.Update(x, y, pressed)
}

func (m *Mouse) valid(btn gizmo.MouseButton) bool {
	return btn >= 0 && int(btn) < buttonCount
}

func (m *Mouse) IsDown(btn gizmo.MouseButton) bool {
	return m.valid(btn) && m.Pressed[btn]
}

func (m *Mouse) IsClick(btn gizmo.MouseButton) bool {
	return m.valid(btn) && m.JustPressed[btn]
}
