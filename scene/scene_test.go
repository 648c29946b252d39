package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gobezier/bezier"
	"github.com/gorustyt/gobezier/camera"
	"github.com/gorustyt/gobezier/common"
	"github.com/gorustyt/gobezier/config"
	"github.com/gorustyt/gobezier/picking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func assertTrue(t *testing.T, value bool, msg string) {
	t.Helper()
	if !value {
		t.Errorf(msg)
	}
}

// flatScene looks at a flat 5x5 grid from the side so the drag plane is
// never parallel to the cursor ray.
func flatScene(t *testing.T) *Scene {
	cfg := config.NewConfig()
	cfg.Grid.Points = nil
	cfg.Camera.Position = mgl32.Vec3{6, 4, 9}
	target := mgl32.Vec3{2, 0, 2}
	cfg.Camera.Target = &target
	s, err := New(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	return s
}

// screenPos returns the window pixel the point projects to.
func screenPos(s *Scene, p mgl32.Vec3) (x, y float32) {
	win := mgl32.Project(p, s.ViewMatrix(), s.Projection(), 0, 0, int(s.viewport.Width), int(s.viewport.Height))
	return win[0], s.viewport.Height - win[1]
}

func TestNewBuildsMeshes(t *testing.T) {
	s, err := New(config.NewConfig(), nil)
	require.NoError(t, err)

	cm := s.ControlMesh()
	assert.Len(t, cm.Vertices, 25)
	assert.Len(t, cm.Lines, 80)
	assert.Len(t, cm.Triangles, 96)

	sm := s.SurfaceMesh()
	assert.Equal(t, 50, sm.Rows)
	assert.Len(t, sm.Vertices, 50*50)
	assert.Len(t, sm.Lines, 2*2*50*49)
	assert.Len(t, sm.Triangles, 6*49*49)

	assert.Equal(t, DirtyAll, s.TakeDirty())
	assert.Equal(t, DirtyFlags(0), s.TakeDirty())
}

func TestModeToggles(t *testing.T) {
	s := flatScene(t)
	assert.True(t, s.ToggleEditMode())
	assert.True(t, s.EditMode())
	assert.False(t, s.ToggleSurfaceView(), "surface view is locked in edit mode")
	assert.False(t, s.SurfaceView())

	assert.True(t, s.ToggleEditMode())
	assert.True(t, s.ToggleSurfaceView())
	assert.False(t, s.ToggleEditMode(), "edit mode is locked in surface view")
	assert.False(t, s.EditMode())
}

func TestFlyModeInput(t *testing.T) {
	s := flatScene(t)
	c := s.Camera()
	yaw := c.Yaw
	pos := c.Position

	s.CursorMoved(100, 100)
	assert.Equal(t, yaw, c.Yaw, "first motion only latches the cursor")
	s.CursorMoved(110, 100)
	assert.InDelta(t, yaw+1, c.Yaw, 1e-4)

	s.Move(camera.Forward, 1)
	assert.NotEqual(t, pos, c.Position)

	s.Scroll(5)
	assert.Equal(t, float32(40), c.Zoom)
}

func TestEditModeLocksCamera(t *testing.T) {
	s := flatScene(t)
	c := s.Camera()
	yaw, pos, zoom := c.Yaw, c.Position, c.Zoom
	s.ToggleEditMode()

	s.CursorMoved(100, 100)
	s.CursorMoved(300, 50)
	s.Move(camera.Left, 1)
	s.Scroll(10)
	assert.Equal(t, yaw, c.Yaw)
	assert.Equal(t, pos, c.Position)
	assert.Equal(t, zoom, c.Zoom)
}

func TestToggleResetsFirstMouse(t *testing.T) {
	s := flatScene(t)
	s.CursorMoved(100, 100)
	s.ToggleEditMode()
	s.CursorMoved(500, 500)
	s.ToggleEditMode()
	yaw := s.Camera().Yaw
	s.CursorMoved(520, 500)
	assert.Equal(t, yaw, s.Camera().Yaw, "no jump after leaving edit mode")
}

func TestPressIgnoredOutsideEditMode(t *testing.T) {
	s := flatScene(t)
	s.CursorMoved(screenPos(s, s.Grid().At(0, 0)))
	s.SetButton(true)
	assert.Equal(t, picking.Idle, s.DragState())
}

func TestPressWithoutHit(t *testing.T) {
	s := flatScene(t)
	s.TakeDirty()
	s.ToggleEditMode()
	s.CursorMoved(1, 1)
	s.SetButton(true)
	assert.Equal(t, picking.Selecting, s.DragState())
	s.SetButton(false)
	assert.Equal(t, picking.Idle, s.DragState())
	assert.Equal(t, DirtyFlags(0), s.TakeDirty(), "no mutation, no rebuild")
}

func TestDragCornerEndToEnd(t *testing.T) {
	s := flatScene(t)
	flat := bezier.NewFlatGrid(5, 5)
	s.TakeDirty()

	require.True(t, s.ToggleEditMode())
	corner := s.Grid().At(0, 0)
	s.CursorMoved(screenPos(s, corner))
	s.SetButton(true)
	require.Equal(t, picking.Dragging, s.DragState())
	i, j, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 0}, [2]int{i, j})

	s.CursorMoved(screenPos(s, mgl32.Vec3{corner[0], 1, corner[2]}))
	assertTrue(t, s.TakeDirty().Has(DirtyControl), "drag frame marks the control mesh dirty")
	s.CursorMoved(screenPos(s, mgl32.Vec3{corner[0], 2, corner[2]}))

	s.SetButton(false)
	assert.Equal(t, picking.Idle, s.DragState())
	d := s.TakeDirty()
	assertTrue(t, d.Has(DirtyControl) && d.Has(DirtySurface), "release after a drag rebuilds the surface")

	g := s.Grid()
	p := g.At(0, 0)
	assert.InDelta(t, 2, p[1], 1e-2)
	assert.Equal(t, corner[0], p[0])
	assert.Equal(t, corner[2], p[2])
	for idx := 1; idx < g.Len(); idx++ {
		assert.Equal(t, flat.Points[idx], g.Points[idx], "point %d moved", idx)
	}

	require.True(t, s.ToggleEditMode())
	require.True(t, s.ToggleSurfaceView())
	assertTrue(t, common.Vnear(bezier.Evaluate(g, 0, 0), p, 1e-5), "surface corner follows the dragged point")
	sv := s.SurfaceMesh().Vertices[0]
	assert.InDelta(t, p[1], sv[1], 1e-5)
}

func TestLeavingEditModeEndsDrag(t *testing.T) {
	s := flatScene(t)
	s.ToggleEditMode()
	corner := s.Grid().At(0, 0)
	s.CursorMoved(screenPos(s, corner))
	s.SetButton(true)
	s.CursorMoved(screenPos(s, mgl32.Vec3{corner[0], 1.5, corner[2]}))
	require.Equal(t, picking.Dragging, s.DragState())
	s.TakeDirty()

	s.ToggleEditMode()
	assert.Equal(t, picking.Idle, s.DragState())
	assertTrue(t, s.TakeDirty().Has(DirtySurface), "mutated grid is re-tessellated")
}

func TestControlTopologyIsFixed(t *testing.T) {
	s, err := New(config.NewConfig(), nil)
	require.NoError(t, err)
	before := append([]uint32(nil), s.ControlMesh().Triangles...)
	s.Grid().Set(1, 1, mgl32.Vec3{1, 50, 3})
	s.RebuildSurface()
	assert.Equal(t, before, s.ControlMesh().Triangles)
}

func TestDirtyFlags(t *testing.T) {
	assertTrue(t, DirtyAll.Has(DirtyControl), "all has control")
	assertTrue(t, DirtyAll.Has(DirtySurface), "all has surface")
	assertTrue(t, !DirtyControl.Has(DirtySurface), "control is not surface")
}

func TestStatusLines(t *testing.T) {
	s := flatScene(t)
	lines := s.Status().Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "mode FLY")
	assert.Contains(t, lines[0], "view MESH")

	s.ToggleEditMode()
	corner := s.Grid().At(0, 0)
	s.CursorMoved(screenPos(s, corner))
	s.SetButton(true)
	st := s.Status()
	require.True(t, st.Selected)
	lines = st.Lines()
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "mode EDIT")
	assert.Contains(t, lines[2], "point (0,0)")
}
