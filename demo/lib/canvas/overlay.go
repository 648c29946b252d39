package canvas

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Overlay draws an RGBA image in the top-left corner of the window.
type Overlay struct {
	program *Program
	vao     uint32
	vbo     uint32
	texture uint32
	width   float32
	height  float32
}

func NewOverlay() (*Overlay, error) {
	program, err := NewProgram(hudVertexShaderSource, hudFragmentShaderSource)
	if err != nil {
		return nil, err
	}
	o := &Overlay{program: program}
	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 24*GL_FLOAT32_SIZE, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*GL_FLOAT32_SIZE, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*GL_FLOAT32_SIZE, 2*GL_FLOAT32_SIZE)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &o.texture)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return o, nil
}

// SetImage uploads img as the overlay texture and resizes the quad to match.
func (o *Overlay) SetImage(img *image.RGBA) {
	if img == nil {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	o.width, o.height = float32(w), float32(h)
	quad := []float32{
		0, 0, 0, 0,
		0, o.height, 0, 1,
		o.width, o.height, 1, 1,
		0, 0, 0, 0,
		o.width, o.height, 1, 1,
		o.width, 0, 1, 0,
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*GL_FLOAT32_SIZE, gl.Ptr(quad))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (o *Overlay) Draw(windowWidth, windowHeight int) {
	if o.width == 0 || o.height == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.program.Use()
	o.program.SetMat4("projection", mgl32.Ortho2D(0, float32(windowWidth), float32(windowHeight), 0))
	o.program.SetInt("hud", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (o *Overlay) Delete() {
	gl.DeleteTextures(1, &o.texture)
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteBuffers(1, &o.vbo)
	o.program.Delete()
}
