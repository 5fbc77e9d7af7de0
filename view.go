package gizmo

import (
	"github.com/gekko3d/gizmo/geom"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Viewport describes the camera the gizmo is seen through.
type Viewport struct {
	Position mgl64.Vec3
	Fov      float64 // vertical, radians
	Ortho    bool
}

// Vertex is submitted to the renderer. Positions are relative to the
// viewport position so that large world coordinates survive float32.
type Vertex struct {
	Pos   mgl32.Vec3
	Color [4]float32
}

// View is the editor viewport the gizmo lives in: camera, mouse and a
// vertex sink for the renderer.
type View interface {
	Viewport() Viewport
	MousePos() mgl64.Vec2
	IsMouseClick(btn MouseButton) bool
	IsMouseDown(btn MouseButton) bool
	Ray(screen mgl64.Vec2) geom.Ray
	// Render returns a writable buffer of count vertices, drawn as a line
	// list when lines is true and as a triangle list otherwise.
	Render(lines bool, count int) []Vertex
}
