// Package renderer draws editor views with OpenGL. A Renderer owns the GL
// objects every view shares; each View renders into its own framebuffer.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/voxedit/internal/engine/debug"
	"github.com/Faultbox/voxedit/internal/engine/framebuffer"
	"github.com/Faultbox/voxedit/internal/engine/lighting"
	"github.com/Faultbox/voxedit/internal/engine/renderer/shaders"
	"github.com/Faultbox/voxedit/internal/engine/shader"
	"github.com/Faultbox/voxedit/internal/logger"
	"github.com/Faultbox/voxedit/internal/scene"
	"github.com/Faultbox/voxedit/internal/viewport"
	"github.com/Faultbox/voxedit/internal/voxel"
	"github.com/Faultbox/voxedit/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Background    uint32
	DraftSize     float32
	GridDivisions int
	// Light shades voxels. A zero direction selects lighting.Default.
	Light lighting.Light
}

// mesh is a VAO/VBO pair with its vertex count.
type mesh struct {
	vao, vbo uint32
	count    int32
}

func (m *mesh) destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}

// Renderer holds shared programs and meshes.
// IMPORTANT: Must be created AFTER the OpenGL context.
type Renderer struct {
	cfg        Config
	background [3]float32

	voxelProgram *shader.Program
	lineProgram  *shader.Program

	cube mesh // unit cube, position + normal
	wire mesh // unit cube edges, position only
	grid mesh // ground grid, position + colour

	log *zap.Logger
}

// New initializes OpenGL and uploads the shared meshes.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		cfg:        cfg,
		background: scene.ColorFromHex(cfg.Background),
		log:        logger.Named("renderer"),
	}
	if r.cfg.Light.Direction == (math.Vec3{}) {
		r.cfg.Light = lighting.Default()
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	if r.voxelProgram, err = shader.New(shaders.VoxelVertexShader, shaders.VoxelFragmentShader); err != nil {
		return nil, fmt.Errorf("voxel shader: %w", err)
	}
	if r.lineProgram, err = shader.New(shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		r.Close()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.cube = upload(debug.UnitCube(), 3, 3)
	r.wire = upload(debug.UnitCubeWireframe(), 3, 0)
	r.grid = upload(debug.Flatten(debug.GridLines(cfg.DraftSize, cfg.GridDivisions, debug.GridCenterColor, debug.GridLineColor)), 3, 3)

	r.log.Debug("meshes uploaded",
		zap.Int32("cube", r.cube.count),
		zap.Int32("grid", r.grid.count))
	return r, nil
}

// upload creates a VAO with a position attribute (location 0) and an
// optional second attribute (location 1) of extra floats.
func upload(vertices []float32, posSize, extraSize int32) mesh {
	stride := (posSize + extraSize) * 4
	m := mesh{count: int32(len(vertices)) / (posSize + extraSize)}
	if len(vertices) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, posSize, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	if extraSize > 0 {
		gl.VertexAttribPointerWithOffset(1, extraSize, gl.FLOAT, false, stride, uintptr(posSize*4))
		gl.EnableVertexAttribArray(1)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// NewView creates the render target of one editor view.
func (r *Renderer) NewView(name string, width, height int) (*View, error) {
	fb, err := framebuffer.New(int32(width), int32(height))
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", name, err)
	}
	return &View{r: r, name: name, fb: fb}, nil
}

// Close releases shared GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.cube.destroy()
	r.wire.destroy()
	r.grid.destroy()
	if r.voxelProgram != nil {
		r.voxelProgram.Destroy()
	}
	if r.lineProgram != nil {
		r.lineProgram.Destroy()
	}
}

// BeginComposite clears the window before views are blitted onto it.
func (r *Renderer) BeginComposite(width, height int) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.5, 0.5, 0.5, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// View renders one viewport.Frame into its framebuffer. It implements
// viewport.Renderer.
type View struct {
	r    *Renderer
	name string
	fb   *framebuffer.Framebuffer
}

var _ viewport.Renderer = (*View)(nil)

// Render draws frame into the view's framebuffer.
func (v *View) Render(frame viewport.Frame) error {
	if !frame.Viewport.Valid() {
		return nil
	}
	r := v.r

	v.fb.Resize(int32(frame.Viewport.Width), int32(frame.Viewport.Height))
	v.fb.Bind()
	defer v.fb.Unbind()
	v.fb.Clear(r.background[0], r.background[1], r.background[2], 1)

	if frame.Camera == nil || !frame.Camera.Configured() {
		return nil
	}
	viewProj := frame.Camera.ViewProjection()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	// Ground grid
	r.lineProgram.Use()
	r.lineProgram.SetMat4("uMVP", viewProj)
	r.lineProgram.SetVec4("uTint", 1, 1, 1, 1)
	gl.BindVertexArray(r.grid.vao)
	gl.DrawArrays(gl.LINES, 0, r.grid.count)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	defer gl.Disable(gl.BLEND)

	r.voxelProgram.Use()
	r.voxelProgram.SetVec3("uLightDir", r.cfg.Light.Direction)
	r.voxelProgram.SetFloat("uAmbient", r.cfg.Light.Ambient)
	gl.BindVertexArray(r.cube.vao)
	for _, e := range frame.Entities {
		if e.Material == nil || !e.Material.Visible {
			continue
		}
		r.drawCube(viewProj, e.Position, e.Geometry.Side, e.Material.Color, e.Material.Opacity)
	}

	if frame.PreviewVisible {
		side := frame.PreviewSide
		gl.DepthMask(false)
		r.drawCube(viewProj, frame.Preview, side, scene.ColorFromHex(voxel.PreviewColor), voxel.PreviewOpacity)
		gl.DepthMask(true)

		r.lineProgram.Use()
		r.lineProgram.SetMat4("uMVP", viewProj.Mul(model(frame.Preview, side)))
		r.lineProgram.SetVec4("uTint", 1, 1, 1, 1)
		c := scene.ColorFromHex(voxel.PreviewColor)
		gl.BindVertexArray(r.wire.vao)
		gl.VertexAttrib3f(1, c[0], c[1], c[2])
		gl.DrawArrays(gl.LINES, 0, r.wire.count)
	}

	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) drawCube(viewProj math.Mat4, pos math.Vec3, side float32, color [3]float32, opacity float32) {
	r.voxelProgram.SetMat4("uMVP", viewProj.Mul(model(pos, side)))
	r.voxelProgram.SetVec4("uColor", color[0], color[1], color[2], opacity)
	gl.DrawArrays(gl.TRIANGLES, 0, r.cube.count)
}

func model(pos math.Vec3, side float32) math.Mat4 {
	return math.Translate(pos.X, pos.Y, pos.Z).Mul(math.Scale(side, side, side))
}

// Framebuffer returns the view's render target.
func (v *View) Framebuffer() *framebuffer.Framebuffer { return v.fb }

// Name returns the view name.
func (v *View) Name() string { return v.name }

// Destroy releases the view's framebuffer.
func (v *View) Destroy() {
	v.fb.Destroy()
}
