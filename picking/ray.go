package picking

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gobezier/bezier"
	"github.com/gorustyt/gobezier/common"
)

// DefaultThreshold is the pick tolerance in world units.
const DefaultThreshold = 0.2

// parallelEpsilon is the smallest |dot(dir, normal)| accepted by IntersectPlane.
const parallelEpsilon = 1e-6

type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Viewport is the pixel size of the surface the cursor lives on.
type Viewport struct {
	Width, Height float32
}

// ScreenToWorldRay unprojects a cursor position into a world space direction.
// Pixel y grows downwards while NDC y grows upwards, hence the flip. The eye
// space vector is forced to (x, y, -1, 0) since depth is unknown for a 2D
// click. ok is false when the matrices are singular or the direction
// degenerates.
func ScreenToWorldRay(x, y float32, vp Viewport, view, projection mgl32.Mat4) (dir mgl32.Vec3, ok bool) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return mgl32.Vec3{}, false
	}
	if mgl32.FloatEqual(projection.Det(), 0) || mgl32.FloatEqual(view.Det(), 0) {
		return mgl32.Vec3{}, false
	}
	ndcX := 2*x/vp.Width - 1
	ndcY := 1 - 2*y/vp.Height
	clip := mgl32.Vec4{ndcX, ndcY, -1, 1}

	eye := projection.Inv().Mul4x1(clip)
	eye = mgl32.Vec4{eye[0], eye[1], -1, 0}

	world := view.Inv().Mul4x1(eye).Vec3()
	if world.Len() < common.Epsilon {
		return mgl32.Vec3{}, false
	}
	dir = world.Normalize()
	if !common.Visfinite(dir) {
		return mgl32.Vec3{}, false
	}
	return dir, true
}

// IsPointIntersected reports whether point lies within threshold of the
// infinite line through the ray. t is not bounded, so a point behind the
// origin can match too.
func IsPointIntersected(origin, dir, point mgl32.Vec3, threshold float32) bool {
	t := point.Sub(origin).Dot(dir)
	closest := origin.Add(dir.Mul(t))
	return closest.Sub(point).Len() < threshold
}

// IntersectPlane returns where the ray meets the plane through planePoint
// with the given normal. ok is false when the ray is parallel to the plane
// or the result is not finite.
func IntersectPlane(r Ray, planePoint, normal mgl32.Vec3) (hit mgl32.Vec3, ok bool) {
	denom := r.Dir.Dot(normal)
	if math32.Abs(denom) < parallelEpsilon {
		return mgl32.Vec3{}, false
	}
	t := planePoint.Sub(r.Origin).Dot(normal) / denom
	hit = r.At(t)
	if !common.Visfinite(hit) {
		return mgl32.Vec3{}, false
	}
	return hit, true
}

// Pick scans the grid row-major and returns the first control point hit by
// the ray. Overlapping points resolve by scan order, not by distance.
func Pick(r Ray, g *bezier.Grid, threshold float32) (i, j int, ok bool) {
	for i = 0; i < g.Rows; i++ {
		for j = 0; j < g.Cols; j++ {
			if IsPointIntersected(r.Origin, r.Dir, g.At(i, j), threshold) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}
