package gizmo

import (
	"fmt"
	"sync"

	"github.com/gekko3d/gizmo/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Controller owns the interaction state shared by every gizmo in an editor
// session: which object is hovered, which one is being dragged, along which
// handle, and the drag-start snapshot. At most one object is dragged at a
// time; gizmos of other objects stay inert until the drag ends.
//
// Each call holds the controller's lock for its whole duration.
type Controller struct {
	mu       sync.Mutex
	settings Settings
	logger   Logger

	dragged ObjectId
	active  ObjectId
	axis    Axis
	mode    Mode

	// prevPoint is the reference mouse intersection: the drag start for
	// rotation, the last applied point for translation and scale.
	prevPoint mgl64.Vec3
	hasPoint  bool
	startRot  mgl64.Quat
}

func NewController() *Controller {
	return &Controller{
		settings: DefaultSettings(),
		logger:   NewNopLogger(),
		dragged:  NoObject,
		active:   NoObject,
		startRot: mgl64.QuatIdent(),
	}
}

func (c *Controller) UseSettings(s Settings) *Controller {
	c.mu.Lock()
	c.settings = s
	c.mu.Unlock()
	return c
}

func (c *Controller) UseLogger(l Logger) *Controller {
	if l == nil {
		l = NewNopLogger()
	}
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
	return c
}

// IsActive reports whether any gizmo is hovered or dragged. Editors use it to
// keep the mouse away from camera controls.
func (c *Controller) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != NoObject || c.dragged != NoObject
}

func (c *Controller) Dragged() ObjectId {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragged
}

func (c *Controller) Hovered() ObjectId {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Axis returns the handle of the drag in progress, or AxisNone.
func (c *Controller) Axis() Axis {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.axis
}

// Reset drops hover and drag state, e.g. when the selection is cleared.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dragged != NoObject {
		c.logger.Infof("gizmo: %s drag of %s along %s cancelled", c.mode, c.dragged, c.axis)
	}
	c.endDrag()
	c.active = NoObject
}

// Manipulate runs one frame of interaction for the object id: it hit-tests
// or drags the gizmo, edits tr when this object owns the drag and draws the
// gizmo into view. It reports whether tr changed.
//
// A drag belongs to the mode it started in: calling Manipulate for the
// dragged object with a different cfg.Mode ends the drag without editing tr.
func (c *Controller) Manipulate(id ObjectId, view View, tr *Transform, cfg Config) bool {
	if id == NoObject {
		panic("gizmo: Manipulate called with NoObject")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.settings.BuildGeometry(view.Viewport(), tr, cfg.CoordSystem)
	p := newPainter(view, c.settings, g)

	if c.dragged != NoObject && c.dragged != id {
		p.draw(cfg.Mode, g, AxisNone)
		return false
	}

	r := view.Ray(view.MousePos())
	if c.dragged == NoObject {
		c.hover(id, view, p, g, r, tr, cfg)
		return false
	}

	if !view.IsMouseDown(MouseLeft) || cfg.Mode != c.mode {
		c.logger.Debugf("gizmo: %s drag of %s along %s ended", c.mode, id, c.axis)
		c.endDrag()
		p.draw(cfg.Mode, g, AxisNone)
		return false
	}

	return c.drag(p, g, r, tr, cfg)
}

func (c *Controller) hover(id ObjectId, view View, p painter, g Geometry, r geom.Ray, tr *Transform, cfg Config) {
	axis := c.settings.Collide(cfg.Mode, g, r)
	if axis != AxisNone {
		if c.active != id {
			c.logger.Debugf("gizmo: hovering %s axis %s", id, axis)
		}
		c.active = id
	} else if c.active == id {
		c.active = NoObject
	}

	p.draw(cfg.Mode, g, axis)

	if axis == AxisNone || !view.IsMouseClick(MouseLeft) {
		return
	}

	c.dragged = id
	c.axis = axis
	c.mode = cfg.Mode
	c.startRot = tr.Rotation
	c.prevPoint, c.hasPoint = mouseIntersection(g, r, c.dragAxis())
	c.logger.Debugf("gizmo: %s drag of %s along %s started", c.mode, id, axis)
	if !c.hasPoint {
		c.logger.Warnf("gizmo: mouse ray runs parallel to handle %s of %s, waiting for a usable projection", c.dragAxis(), id)
	}
}

// dragAxis is the handle the mouse ray is projected onto while dragging:
// the ring plane for rotation, the selected handle otherwise.
func (c *Controller) dragAxis() Axis {
	if c.mode == ModeRotate {
		return c.axis.Plane()
	}
	return c.axis
}

func (c *Controller) drag(p painter, g Geometry, r geom.Ray, tr *Transform, cfg Config) bool {
	if g.Scale < geom.Epsilon {
		p.draw(cfg.Mode, g, c.axis)
		return false
	}

	if !c.hasPoint {
		// the drag began on a degenerate projection; wait for a usable one
		c.prevPoint, c.hasPoint = mouseIntersection(g, r, c.dragAxis())
		if cfg.Mode == ModeRotate {
			p.drawRotationDrag(g, c.axis, c.prevPoint, c.prevPoint, false)
		} else {
			p.draw(cfg.Mode, g, c.axis)
		}
		return false
	}

	switch cfg.Mode {
	case ModeTranslate:
		p.draw(cfg.Mode, g, c.axis)
		return c.translate(g, r, tr, cfg)
	case ModeScale:
		p.draw(cfg.Mode, g, c.axis)
		return c.scale(g, r, tr)
	case ModeRotate:
		current, ok := mouseIntersection(g, r, c.axis.Plane())
		p.drawRotationDrag(g, c.axis, c.prevPoint, current, ok)
		if !ok {
			return false
		}
		return c.rotate(g, current, tr, cfg)
	default:
		panic(fmt.Sprintf("gizmo: unknown mode %s", cfg.Mode))
	}
}

func (c *Controller) endDrag() {
	c.dragged = NoObject
	c.axis = AxisNone
	c.hasPoint = false
}
