package canvas

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/gorustyt/gobezier/common"
	"github.com/gorustyt/gobezier/scene"
)

// MeshBuffers mirrors a scene.Mesh on the GPU: one vertex buffer shared by a
// line VAO and a triangle VAO, each with its own element buffer.
type MeshBuffers struct {
	vbo            uint32
	lineVao        uint32
	lineEbo        uint32
	triVao         uint32
	triEbo         uint32
	vertexCount    int32
	lineCount      int32
	triangleCount  int32
	uploadedIndices bool
}

func NewMeshBuffers() *MeshBuffers {
	b := &MeshBuffers{}
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.lineEbo)
	gl.GenBuffers(1, &b.triEbo)
	b.lineVao = b.makeVao(b.lineEbo)
	b.triVao = b.makeVao(b.triEbo)
	return b
}

func (b *MeshBuffers) makeVao(ebo uint32) uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*GL_FLOAT32_SIZE, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return vao
}

// Upload replaces the whole vertex buffer. Index buffers only change with
// the grid shape, so they are sent once, or again when their length changes.
func (b *MeshBuffers) Upload(m scene.Mesh) {
	verts := common.FlattenVec3(m.Vertices)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(verts) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*GL_FLOAT32_SIZE, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	}
	b.vertexCount = int32(len(m.Vertices))

	if !b.uploadedIndices || int32(len(m.Lines)) != b.lineCount || int32(len(m.Triangles)) != b.triangleCount {
		uploadIndices(b.lineVao, b.lineEbo, m.Lines)
		uploadIndices(b.triVao, b.triEbo, m.Triangles)
		b.lineCount = int32(len(m.Lines))
		b.triangleCount = int32(len(m.Triangles))
		b.uploadedIndices = true
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func uploadIndices(vao, ebo uint32, indices []uint32) {
	if len(indices) == 0 {
		return
	}
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
}

func (b *MeshBuffers) DrawTriangles() {
	gl.BindVertexArray(b.triVao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.triangleCount, gl.UNSIGNED_INT, 0)
}

func (b *MeshBuffers) DrawLines() {
	gl.BindVertexArray(b.lineVao)
	gl.DrawElementsWithOffset(gl.LINES, b.lineCount, gl.UNSIGNED_INT, 0)
}

func (b *MeshBuffers) DrawPoints() {
	gl.BindVertexArray(b.lineVao)
	gl.DrawArrays(gl.POINTS, 0, b.vertexCount)
}

func (b *MeshBuffers) Delete() {
	gl.DeleteVertexArrays(1, &b.lineVao)
	gl.DeleteVertexArrays(1, &b.triVao)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteBuffers(1, &b.lineEbo)
	gl.DeleteBuffers(1, &b.triEbo)
}
