package picking

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gobezier/bezier"
	"github.com/gorustyt/gobezier/common"
)

type State int

const (
	Idle State = iota
	Selecting
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// The anchor is computed on a horizontal plane at pick time, while dragging
// intersects a plane facing +x through the anchor. Only the y part of the
// resulting offset is applied, so a dragged point moves vertically.
var (
	PickPlaneNormal = mgl32.Vec3{0, 1, 0}
	DragPlaneNormal = mgl32.Vec3{1, 0, 0}
)

// Controller is the pick-and-drag state machine for control points.
// It never touches the grid outside Update.
type Controller struct {
	Threshold float32

	state   State
	selI    int
	selJ    int
	anchor  mgl32.Vec3
	mutated bool
}

func NewController(threshold float32) *Controller {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	c := &Controller{Threshold: threshold}
	c.Reset()
	return c
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Selected() (i, j int, ok bool) {
	if c.state != Dragging {
		return -1, -1, false
	}
	return c.selI, c.selJ, true
}

// Anchor is the point fixing the drag plane. Only meaningful while dragging.
func (c *Controller) Anchor() mgl32.Vec3 {
	return c.anchor
}

// Press starts a selection. It is a no-op unless the controller is idle.
func (c *Controller) Press() {
	if c.state == Idle {
		c.state = Selecting
		c.mutated = false
	}
}

// Update feeds the current cursor ray. While selecting it scans for a hit
// and switches to dragging on success. While dragging it moves the selected
// point. It reports whether the grid was modified.
func (c *Controller) Update(r Ray, g *bezier.Grid) bool {
	switch c.state {
	case Selecting:
		c.selectPoint(r, g)
		return false
	case Dragging:
		return c.drag(r, g)
	}
	return false
}

// Release ends the interaction and reports whether any drag frame changed
// the grid since Press.
func (c *Controller) Release() (mutated bool) {
	mutated = c.mutated
	c.Reset()
	return mutated
}

func (c *Controller) Reset() {
	c.state = Idle
	c.selI, c.selJ = -1, -1
	c.anchor = mgl32.Vec3{}
	c.mutated = false
}

func (c *Controller) selectPoint(r Ray, g *bezier.Grid) {
	i, j, ok := Pick(r, g, c.Threshold)
	if !ok {
		return
	}
	p := g.At(i, j)
	anchor, ok := IntersectPlane(r, p, PickPlaneNormal)
	if !ok {
		anchor = p
	}
	c.selI, c.selJ = i, j
	c.anchor = anchor
	c.state = Dragging
}

func (c *Controller) drag(r Ray, g *bezier.Grid) bool {
	hit, ok := IntersectPlane(r, c.anchor, DragPlaneNormal)
	if !ok {
		return false
	}
	offset := hit.Sub(c.anchor)
	offset[0] = 0
	offset[2] = 0
	if !common.Visfinite(offset) || offset[1] == 0 {
		return false
	}
	g.Set(c.selI, c.selJ, g.At(c.selI, c.selJ).Add(offset))
	c.anchor = c.anchor.Add(offset)
	c.mutated = true
	return true
}
