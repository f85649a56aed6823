//go:build !android

package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"ringgrid/internal/grid"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the grid into a GLFW window. It is the session's render sink.
type Renderer struct {
	window *glfw.Window
	geo    grid.Geometry
	size   int

	prog        uint32
	uResolution int32

	cellVAO uint32
	cellVBO uint32
	cellBuf []float32

	guideVAO   uint32
	guideVBO   uint32
	guideCount int32
}

func NewRenderer(window *glfw.Window, geo grid.Geometry, size int) (*Renderer, error) {
	prog, err := linkProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		return nil, fmt.Errorf("flat program: %w", err)
	}
	r := &Renderer{
		window: window,
		geo:    geo,
		size:   size,
		prog:   prog,
	}
	gl.UseProgram(prog)
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

	r.cellVAO, r.cellVBO = newVertexArray()

	// Guides never change; upload once.
	guides := guideLines(geo)
	r.guideVAO, r.guideVBO = newVertexArray()
	gl.BufferData(gl.ARRAY_BUFFER, len(guides)*4, gl.Ptr(&guides[0]), gl.STATIC_DRAW)
	r.guideCount = int32(len(guides) / vertexFloats)

	gl.BindVertexArray(0)
	return r, nil
}

// newVertexArray creates a VAO/VBO pair with the flat vertex layout and leaves
// both bound.
func newVertexArray() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(vertexFloats * 4)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	return vao, vbo
}

// Render draws every non-clear cell in its state colour, then the guides, and
// presents the frame.
func (r *Renderer) Render(g *grid.Grid) {
	fbW, fbH := r.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.Uniform2f(r.uResolution, float32(r.size), float32(r.size))

	r.cellBuf = appendCells(r.cellBuf[:0], r.geo, g)
	if n := len(r.cellBuf); n > 0 {
		gl.BindVertexArray(r.cellVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.cellVBO)
		gl.BufferData(gl.ARRAY_BUFFER, n*4, gl.Ptr(&r.cellBuf[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(n/vertexFloats))
	}

	gl.BindVertexArray(r.guideVAO)
	gl.DrawArrays(gl.LINES, 0, r.guideCount)
	gl.BindVertexArray(0)

	r.window.SwapBuffers()
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.cellVBO, r.guideVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.cellVAO, r.guideVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}
