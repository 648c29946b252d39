package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Status is a snapshot of what the overlay shows.
type Status struct {
	EditMode    bool
	SurfaceView bool
	Selected    bool
	I, J        int
	Point       mgl32.Vec3
	Position    mgl32.Vec3
	Zoom        float32
}

func (s *Scene) Status() Status {
	st := Status{
		EditMode:    s.editMode,
		SurfaceView: s.surfaceView,
		Position:    s.camera.Position,
		Zoom:        s.camera.Zoom,
	}
	st.I, st.J, st.Selected = s.controller.Selected()
	if st.Selected {
		st.Point = s.grid.At(st.I, st.J)
	}
	return st
}

func (st Status) Lines() []string {
	mode := "FLY"
	if st.EditMode {
		mode = "EDIT"
	}
	view := "MESH"
	if st.SurfaceView {
		view = "SURFACE"
	}
	lines := []string{
		fmt.Sprintf("mode %s  view %s  fov %.0f", mode, view, st.Zoom),
		fmt.Sprintf("camera %.2f %.2f %.2f", st.Position[0], st.Position[1], st.Position[2]),
	}
	if st.Selected {
		lines = append(lines, fmt.Sprintf("point (%d,%d) y=%.2f", st.I, st.J, st.Point[1]))
	}
	if st.EditMode {
		lines = append(lines, "LMB drag point  E fly")
	} else {
		lines = append(lines, "WASD move  E edit  B surface  Esc quit")
	}
	return lines
}
