package bezier

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gobezier/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func assertTrue(t *testing.T, value bool, msg string) {
	t.Helper()
	if !value {
		t.Errorf(msg)
	}
}

func defaultGrid(t *testing.T) *Grid {
	g, err := NewGridFromRows(DefaultPoints())
	require.NoError(t, err)
	return g
}

func TestBinomial(t *testing.T) {
	for n := 0; n <= 20; n++ {
		assert.Equal(t, 1, Binomial(n, 0), "C(%d,0)", n)
		assert.Equal(t, 1, Binomial(n, n), "C(%d,%d)", n, n)
		assert.Equal(t, 0, Binomial(n, n+1), "C(%d,%d)", n, n+1)
	}
	assert.Equal(t, 10, Binomial(5, 2))
	assert.Equal(t, 10, Binomial(5, 3))
	assert.Equal(t, 6, Binomial(4, 2))
	assert.Equal(t, 184756, Binomial(20, 10))
	assert.Equal(t, 0, Binomial(3, -1))
}

func TestBinomialSymmetry(t *testing.T) {
	for n := 0; n <= 30; n++ {
		for k := 0; k <= n; k++ {
			assert.Equal(t, Binomial(n, k), Binomial(n, n-k), "C(%d,%d)", n, k)
		}
	}
}

func TestBernsteinPartitionOfUnity(t *testing.T) {
	for n := 0; n <= 10; n++ {
		for step := 0; step <= 20; step++ {
			u := float32(step) / 20
			var sum float32
			for k := 0; k <= n; k++ {
				sum += Bernstein(n, k, u)
			}
			assert.InDelta(t, 1, sum, eps, "n=%d t=%v", n, u)
		}
	}
}

func TestBernsteinEndpoints(t *testing.T) {
	assert.Equal(t, float32(1), Bernstein(4, 0, 0))
	assert.Equal(t, float32(0), Bernstein(4, 1, 0))
	assert.Equal(t, float32(1), Bernstein(4, 4, 1))
	assert.Equal(t, float32(0), Bernstein(4, 3, 1))
	assert.Equal(t, float32(0), Bernstein(4, 5, 0.5))
	// 6 * 0.5^2 * 0.5^2
	assert.InDelta(t, 0.375, Bernstein(4, 2, 0.5), eps)
}

func TestEvaluateCorners(t *testing.T) {
	g := defaultGrid(t)
	n, m := g.Rows, g.Cols
	assertTrue(t, common.Vnear(Evaluate(g, 0, 0), g.At(0, 0), eps), "(0,0) interpolates grid[0][0]")
	assertTrue(t, common.Vnear(Evaluate(g, 1, 1), g.At(n-1, m-1), eps), "(1,1) interpolates grid[n-1][m-1]")
	assertTrue(t, common.Vnear(Evaluate(g, 1, 0), g.At(n-1, 0), eps), "(1,0) interpolates grid[n-1][0]")
	assertTrue(t, common.Vnear(Evaluate(g, 0, 1), g.At(0, m-1), eps), "(0,1) interpolates grid[0][m-1]")
}

func TestEvaluateNonSquareGrid(t *testing.T) {
	g := NewFlatGrid(3, 6)
	g.Set(2, 5, mgl32.Vec3{5, 3, 0})
	assertTrue(t, common.Vnear(Evaluate(g, 1, 1), mgl32.Vec3{5, 3, 0}, eps), "corner of a 3x6 grid")
	assertTrue(t, common.Vnear(Evaluate(g, 0, 0), mgl32.Vec3{0, 0, 2}, eps), "origin corner of a 3x6 grid")
}

func TestEvaluateFlatGridIsBilinear(t *testing.T) {
	g := NewFlatGrid(5, 5)
	// A uniformly spaced flat grid reproduces the linear parametrisation.
	p := Evaluate(g, 0.25, 0.5)
	assertTrue(t, common.Vnear(p, mgl32.Vec3{2, 0, 3}, eps), "linear precision")
}

func TestEvaluateConvexHull(t *testing.T) {
	g := defaultGrid(t)
	for _, uv := range [][2]float32{{0.1, 0.9}, {0.5, 0.5}, {0.7, 0.2}} {
		p := Evaluate(g, uv[0], uv[1])
		assert.GreaterOrEqual(t, p[1], float32(0))
		assert.LessOrEqual(t, p[1], float32(6))
	}
}

func TestTessellate(t *testing.T) {
	g := defaultGrid(t)
	const res = 50
	verts := Tessellate(g, res)
	require.Len(t, verts, res*res)
	assertTrue(t, common.Vnear(verts[0], g.At(0, 0), eps), "first sample is the (0,0) corner")
	for _, ij := range [][2]int{{0, 0}, {3, 7}, {49, 49}, {25, 10}} {
		u := float32(ij[0]) / res
		v := float32(ij[1]) / res
		assertTrue(t, common.Vnear(verts[ij[0]*res+ij[1]], Evaluate(g, u, v), eps), "row-major sample layout")
	}
	assert.Nil(t, Tessellate(g, 0))
}

func TestTessellateIsDeterministic(t *testing.T) {
	g := defaultGrid(t)
	assert.Equal(t, Tessellate(g, 16), Tessellate(g, 16))
}

func TestGridFromRows(t *testing.T) {
	g := defaultGrid(t)
	assert.Equal(t, 5, g.Rows)
	assert.Equal(t, 5, g.Cols)
	assert.Equal(t, mgl32.Vec3{2, 6, 2}, g.At(2, 2))
	assert.Equal(t, mgl32.Vec3{4, 1, 0}, g.Points[24])
	assert.Equal(t, 7, g.Index(1, 2))

	_, err := NewGridFromRows([][]mgl32.Vec3{{{0, 0, 0}}, {}})
	assert.Error(t, err)
	_, err = NewGridFromRows(nil)
	assert.Error(t, err)
}

func TestGridClone(t *testing.T) {
	g := defaultGrid(t)
	c := g.Clone()
	c.Set(0, 0, mgl32.Vec3{9, 9, 9})
	assert.Equal(t, mgl32.Vec3{0, 0, 4}, g.At(0, 0))
	assertTrue(t, g.InBounds(4, 4) && !g.InBounds(5, 0) && !g.InBounds(0, -1), "bounds")
}
