package gizmo

import "fmt"

type Mode int

const (
	ModeTranslate Mode = iota
	ModeRotate
	ModeScale
)

func (m Mode) String() string {
	switch m {
	case ModeTranslate:
		return "translate"
	case ModeRotate:
		return "rotate"
	case ModeScale:
		return "scale"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type CoordSystem int

const (
	CoordGlobal CoordSystem = iota
	CoordLocal
)

// Config is supplied by the caller on every Manipulate call.
type Config struct {
	Mode        Mode
	CoordSystem CoordSystem
	// Step is the snapping increment: world units when translating, degrees
	// when rotating. Zero or negative disables snapping. Scale never snaps.
	Step float64
}

func DefaultConfig() Config {
	return Config{Mode: ModeTranslate, CoordSystem: CoordGlobal}
}

func (c Config) Snapping() bool {
	return c.Step > 0
}

// Settings holds the handle proportions, hit tolerances and palette.
type Settings struct {
	// InfluenceDistance is the fraction of the handle length within which a
	// ray counts as touching an axis line.
	InfluenceDistance float64
	// RingTolerance is the fraction of the handle length a rotation ring
	// hit may lie from the origin.
	RingTolerance float64
	// PlanarPatch is the fraction of each axis covered by a planar handle.
	PlanarPatch float64
	// OrthoScale is the handle length used by orthographic viewports.
	OrthoScale float64
	// ScreenFraction divides the visible height at the gizmo distance into
	// the perspective handle length.
	ScreenFraction float64

	XColor        [4]float32
	YColor        [4]float32
	ZColor        [4]float32
	SelectedColor [4]float32
	ArcColor      [4]float32
}

func DefaultSettings() Settings {
	return Settings{
		InfluenceDistance: 0.3,
		RingTolerance:     1.2,
		PlanarPatch:       0.5,
		OrthoScale:        2,
		ScreenFraction:    10,

		XColor:        [4]float32{0.81, 0.39, 0.39, 1},
		YColor:        [4]float32{0.39, 0.81, 0.39, 1},
		ZColor:        [4]float32{0.39, 0.39, 0.81, 1},
		SelectedColor: [4]float32{0.81, 0.81, 0.39, 1},
		ArcColor:      [4]float32{1, 0.65, 0, 0.53},
	}
}

func (s Settings) axisColor(a Axis) [4]float32 {
	switch a {
	case AxisX:
		return s.XColor
	case AxisY:
		return s.YColor
	case AxisZ:
		return s.ZColor
	default:
		panic(fmt.Sprintf("gizmo: no colour for axis %s", a))
	}
}

// color returns the base colour of handle, or the highlight when it is the
// selected one.
func (s Settings) color(handle, selected Axis, base [4]float32) [4]float32 {
	if handle == selected {
		return s.SelectedColor
	}
	return base
}
