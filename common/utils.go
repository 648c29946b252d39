package common

import "github.com/go-gl/mathgl/mgl32"

type Vec3 = mgl32.Vec3
type Vec4 = mgl32.Vec4
type Vec2 = mgl32.Vec2
type Mat4 = mgl32.Mat4

// FlattenVec3 packs points into a tightly laid out x,y,z buffer, the layout
// expected by a GL vertex buffer with a single vec3 attribute.
func FlattenVec3(points []Vec3) []float32 {
	res := make([]float32, 0, len(points)*3)
	for _, p := range points {
		res = append(res, p[0], p[1], p[2])
	}
	return res
}
