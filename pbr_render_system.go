package flyscene

import (
	"image"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
)

const PbrRenderPriority = -100

// Presenter puts a finished frame on screen.
type Presenter interface {
	Present(img *image.NRGBA)
}

// PbrRenderSystem rasterizes meshes seen by the active camera.
type PbrRenderSystem struct {
	ClearColor  mgl32.Vec4
	Width       int
	Height      int
	RenderScale float32
	Presenter   Presenter

	Camera *CameraEntity
	Meshes []*MeshEntity
	Lights []*LightEntity

	fb  *Framebuffer
	out *image.NRGBA

	drawn int
}

func (rs *PbrRenderSystem) SetCamera(c *CameraEntity) { rs.Camera = c }
func (rs *PbrRenderSystem) AddMesh(m *MeshEntity)     { rs.Meshes = append(rs.Meshes, m) }
func (rs *PbrRenderSystem) AddLight(l *LightEntity)   { rs.Lights = append(rs.Lights, l) }
func (*PbrRenderSystem) Priority() int                { return PbrRenderPriority }

// DrawnTriangles is the number of triangles rasterized by the last Render.
func (rs *PbrRenderSystem) DrawnTriangles() int { return rs.drawn }

func (rs *PbrRenderSystem) Frame() *image.NRGBA {
	if rs.fb == nil {
		return nil
	}
	return rs.fb.Color
}

func (rs *PbrRenderSystem) Remove(e ecs.BasicEntity) {
	if rs.Camera != nil && rs.Camera.ID() == e.ID() {
		rs.Camera = nil
	}
	for i, m := range rs.Meshes {
		if m.ID() == e.ID() {
			rs.Meshes = append(rs.Meshes[:i], rs.Meshes[i+1:]...)
			break
		}
	}
	for i, l := range rs.Lights {
		if l.ID() == e.ID() {
			rs.Lights = append(rs.Lights[:i], rs.Lights[i+1:]...)
			break
		}
	}
}

func (rs *PbrRenderSystem) clearColor() color.NRGBA {
	c := rs.ClearColor
	return color.NRGBA{toByte(c[0]), toByte(c[1]), toByte(c[2]), toByte(c[3])}
}

func (rs *PbrRenderSystem) internalSize() (int, int) {
	scale := rs.RenderScale
	if scale <= 0 || scale > 1 {
		scale = 1
	}
	return int(float32(rs.Width) * scale), int(float32(rs.Height) * scale)
}

// Render draws one frame into the internal framebuffer.
func (rs *PbrRenderSystem) Render() *image.NRGBA {
	w, h := rs.internalSize()
	if rs.fb == nil || rs.fb.Width() != w || rs.fb.Height() != h {
		rs.fb = NewFramebuffer(w, h)
	}
	rs.fb.Clear(rs.clearColor())
	rs.drawn = 0

	if rs.Camera == nil {
		return rs.fb.Color
	}

	viewProj := rs.Camera.Projection().Mul4(rs.Camera.View(&rs.Camera.Transform))
	eye := rs.Camera.Translation()

	lights := make([]shadedLight, 0, len(rs.Lights))
	for _, l := range rs.Lights {
		lights = append(lights, shadedLight{Position: l.Translation(), PointLight: l.Light})
	}

	for _, m := range rs.Meshes {
		if m.Mesh == nil {
			continue
		}
		mat := m.Material
		rs.drawn += rs.fb.DrawMesh(m.Mesh, m.Matrix(), viewProj, func(pos, normal mgl32.Vec3) mgl32.Vec3 {
			return Shade(mat, pos, normal, eye, lights)
		})
	}
	return rs.fb.Color
}

func (rs *PbrRenderSystem) Update(dt float32) {
	frame := rs.Render()
	if rs.Presenter == nil {
		return
	}

	if frame.Bounds().Dx() == rs.Width && frame.Bounds().Dy() == rs.Height {
		rs.Presenter.Present(frame)
		return
	}
	if rs.out == nil || rs.out.Bounds().Dx() != rs.Width || rs.out.Bounds().Dy() != rs.Height {
		rs.out = image.NewNRGBA(image.Rect(0, 0, rs.Width, rs.Height))
	}
	draw.BiLinear.Scale(rs.out, rs.out.Bounds(), frame, frame.Bounds(), draw.Src, nil)
	rs.Presenter.Present(rs.out)
}
