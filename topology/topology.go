// Package topology derives GL index lists from a row-major vertex grid.
// Vertex (i,j) is addressed as i*cols+j everywhere.
package topology

import "github.com/go-gl/mathgl/mgl32"

// GenerateLines emits one index pair per grid edge: (i,j)-(i+1,j) and
// (i,j)-(i,j+1). No diagonals.
func GenerateLines(rows, cols int) []uint32 {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	lines := make([]uint32, 0, 2*(rows*(cols-1)+cols*(rows-1)))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if i < rows-1 {
				lines = append(lines, index(i, j, cols), index(i+1, j, cols))
			}
			if j < cols-1 {
				lines = append(lines, index(i, j, cols), index(i, j+1, cols))
			}
		}
	}
	return lines
}

// GenerateTriangles splits every quad in two, choosing the diagonal by height.
// When (i+1,j+1) is at least as high as both (i+1,j) and (i,j+1) the quad is
// split along (i+1,j)-(i,j+1), otherwise along (i,j)-(i+1,j+1). Ties take
// the first branch. points must hold rows*cols vertices.
func GenerateTriangles(points []mgl32.Vec3, rows, cols int) []uint32 {
	if rows < 2 || cols < 2 {
		return nil
	}
	tris := make([]uint32, 0, 6*(rows-1)*(cols-1))
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			a := index(i, j, cols)
			b := index(i+1, j, cols)
			c := index(i, j+1, cols)
			d := index(i+1, j+1, cols)
			hd := points[d][1]
			if max(points[b][1], hd) == hd && max(points[c][1], hd) == hd {
				tris = append(tris, a, b, c, c, d, b)
			} else {
				tris = append(tris, a, b, d, a, d, c)
			}
		}
	}
	return tris
}

// GenerateGridTriangles splits every quad along (i+1,j)-(i,j+1). It depends
// only on the grid shape, so the result can be cached per resolution.
func GenerateGridTriangles(rows, cols int) []uint32 {
	if rows < 2 || cols < 2 {
		return nil
	}
	tris := make([]uint32, 0, 6*(rows-1)*(cols-1))
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			a := index(i, j, cols)
			b := index(i+1, j, cols)
			c := index(i, j+1, cols)
			d := index(i+1, j+1, cols)
			tris = append(tris, a, b, c, c, d, b)
		}
	}
	return tris
}

func index(i, j, cols int) uint32 {
	return uint32(i*cols + j)
}
