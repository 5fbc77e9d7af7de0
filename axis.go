package gizmo

import "fmt"

// Axis identifies a gizmo handle: a single axis or, for translation, the
// plane spanned by two axes.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
	AxisXY
	AxisXZ
	AxisYZ
)

func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "none"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisXY:
		return "xy"
	case AxisXZ:
		return "xz"
	case AxisYZ:
		return "yz"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

func (a Axis) IsPlane() bool {
	return a == AxisXY || a == AxisXZ || a == AxisYZ
}

// Plane returns the plane a rotation ring about a lies in.
func (a Axis) Plane() Axis {
	switch a {
	case AxisX:
		return AxisYZ
	case AxisY:
		return AxisXZ
	case AxisZ:
		return AxisXY
	default:
		panic(fmt.Sprintf("gizmo: axis %s has no ring plane", a))
	}
}
