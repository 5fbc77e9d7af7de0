package gizmo

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// ObjectId identifies the object a gizmo manipulates across frames.
type ObjectId = uuid.UUID

// NoObject is the "nobody" value of hovered and dragged ids.
var NoObject = uuid.Nil

func NewObjectId() ObjectId {
	return uuid.New()
}

// Transform is owned by the caller's scene; Manipulate edits it in place.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    float64
}

func NewTransform() *Transform {
	return &Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    1,
	}
}
