package bezier

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid is a rectangular rows x cols array of control points stored row-major,
// point (i,j) lives at Points[i*Cols+j].
type Grid struct {
	Rows, Cols int
	Points     []mgl32.Vec3
}

func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:   rows,
		Cols:   cols,
		Points: make([]mgl32.Vec3, rows*cols),
	}
}

// NewGridFromRows copies a nested slice into a grid. Every row must have the
// same length.
func NewGridFromRows(rows [][]mgl32.Vec3) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("bezier: empty control grid")
	}
	g := NewGrid(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("bezier: row %d has %d points, want %d", i, len(row), g.Cols)
		}
		copy(g.Points[i*g.Cols:], row)
	}
	return g, nil
}

// NewFlatGrid lays points out on the y=0 plane, x following the column and
// z decreasing with the row, the same orientation as DefaultPoints.
func NewFlatGrid(rows, cols int) *Grid {
	g := NewGrid(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			g.Set(i, j, mgl32.Vec3{float32(j), 0, float32(rows - 1 - i)})
		}
	}
	return g
}

// DefaultPoints is the 5x5 preset the editor starts with.
func DefaultPoints() [][]mgl32.Vec3 {
	return [][]mgl32.Vec3{
		{{0, 0, 4}, {1, 0, 4}, {2, 0, 4}, {3, 0, 4}, {4, 1, 4}},
		{{0, 0, 3}, {1, 1, 3}, {2, 1, 3}, {3, 1, 3}, {4, 1, 3}},
		{{0, 1, 2}, {1, 2, 2}, {2, 6, 2}, {3, 2, 2}, {4, 1, 2}},
		{{0, 0, 1}, {1, 1, 1}, {2, 1, 1}, {3, 1, 1}, {4, 1, 1}},
		{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 1, 0}},
	}
}

func (g *Grid) Index(i, j int) int {
	return i*g.Cols + j
}

func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.Rows && j >= 0 && j < g.Cols
}

func (g *Grid) At(i, j int) mgl32.Vec3 {
	return g.Points[g.Index(i, j)]
}

func (g *Grid) Set(i, j int, p mgl32.Vec3) {
	g.Points[g.Index(i, j)] = p
}

func (g *Grid) Len() int {
	return len(g.Points)
}

func (g *Grid) Clone() *Grid {
	c := &Grid{Rows: g.Rows, Cols: g.Cols, Points: make([]mgl32.Vec3, len(g.Points))}
	copy(c.Points, g.Points)
	return c
}
