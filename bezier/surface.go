package bezier

import "github.com/go-gl/mathgl/mgl32"

// Evaluate returns the surface point at (u,v), u running along the rows and
// v along the columns. Each axis is weighted by the basis of its own degree.
func Evaluate(g *Grid, u, v float32) mgl32.Vec3 {
	return blend(g, basis(g.Rows, u, nil), basis(g.Cols, v, nil))
}

// Tessellate samples the surface on a resolution x resolution grid with
// u=i/resolution, v=j/resolution. The result is row-major, sample (i,j) at
// i*resolution+j, so it can be fed straight to the topology generators.
func Tessellate(g *Grid, resolution int) []mgl32.Vec3 {
	if resolution <= 0 {
		return nil
	}
	bvs := make([][]float32, resolution)
	for j := range bvs {
		bvs[j] = basis(g.Cols, float32(j)/float32(resolution), nil)
	}
	res := make([]mgl32.Vec3, 0, resolution*resolution)
	bu := make([]float32, g.Rows)
	for i := 0; i < resolution; i++ {
		bu = basis(g.Rows, float32(i)/float32(resolution), bu)
		for j := 0; j < resolution; j++ {
			res = append(res, blend(g, bu, bvs[j]))
		}
	}
	return res
}

// basis fills dst with the count Bernstein weights of degree count-1 at t.
func basis(count int, t float32, dst []float32) []float32 {
	if cap(dst) < count {
		dst = make([]float32, count)
	}
	dst = dst[:count]
	for k := range dst {
		dst[k] = Bernstein(count-1, k, t)
	}
	return dst
}

func blend(g *Grid, bu, bv []float32) mgl32.Vec3 {
	var res mgl32.Vec3
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			res = res.Add(g.At(i, j).Mul(bu[i] * bv[j]))
		}
	}
	return res
}
