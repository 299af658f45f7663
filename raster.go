package flyscene

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Framebuffer is a color image with a matching depth buffer in [0,1].
type Framebuffer struct {
	Color *image.NRGBA
	Depth []float32

	w, h int
}

func NewFramebuffer(w, h int) *Framebuffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Framebuffer{
		Color: image.NewNRGBA(image.Rect(0, 0, w, h)),
		Depth: make([]float32, w*h),
		w:     w,
		h:     h,
	}
}

func (fb *Framebuffer) Width() int  { return fb.w }
func (fb *Framebuffer) Height() int { return fb.h }

func (fb *Framebuffer) Clear(c color.NRGBA) {
	pix := fb.Color.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
	for i := range fb.Depth {
		fb.Depth[i] = 1
	}
}

type rasterVertex struct {
	clip  mgl32.Vec4
	color mgl32.Vec3
}

type screenVertex struct {
	x, y, z float32
	invW    float32
	color   mgl32.Vec3 // premultiplied by invW
}

// ShadeFunc returns the linear color of a surface point in world space.
type ShadeFunc func(pos, normal mgl32.Vec3) mgl32.Vec3

// DrawMesh shades every vertex with shade and rasterizes the front faces.
// Returns the number of triangles that reached the rasterizer.
func (fb *Framebuffer) DrawMesh(m *Mesh, model, viewProj mgl32.Mat4, shade ShadeFunc) int {
	normalMat := model.Mat3().Inv().Transpose()
	verts := make([]rasterVertex, len(m.Positions))
	for i, p := range m.Positions {
		world := model.Mul4x1(p.Vec4(1))
		var n mgl32.Vec3
		if i < len(m.Normals) {
			n = normalMat.Mul3x1(m.Normals[i])
		}
		verts[i] = rasterVertex{
			clip:  viewProj.Mul4x1(world),
			color: shade(world.Vec3(), n),
		}
	}

	drawn := 0
	var poly [4]rasterVertex
	for t := 0; t+2 < len(m.Indices); t += 3 {
		in := [3]rasterVertex{verts[m.Indices[t]], verts[m.Indices[t+1]], verts[m.Indices[t+2]]}
		n := clipNear(in, &poly)
		for k := 1; k+1 < n; k++ {
			if fb.drawTriangle(poly[0], poly[k], poly[k+1]) {
				drawn++
			}
		}
	}
	return drawn
}

// clipNear clips a triangle against z > -w and writes up to four vertices to out.
func clipNear(in [3]rasterVertex, out *[4]rasterVertex) int {
	n := 0
	for i := 0; i < 3; i++ {
		a := in[i]
		b := in[(i+1)%3]
		da := a.clip[2] + a.clip[3]
		db := b.clip[2] + b.clip[3]
		if da >= 0 {
			out[n] = a
			n++
		}
		if (da >= 0) != (db >= 0) {
			t := da / (da - db)
			out[n] = rasterVertex{
				clip:  a.clip.Add(b.clip.Sub(a.clip).Mul(t)),
				color: a.color.Add(b.color.Sub(a.color).Mul(t)),
			}
			n++
		}
	}
	return n
}

func (fb *Framebuffer) toScreen(v rasterVertex) (screenVertex, bool) {
	w := v.clip[3]
	if w <= 1e-6 {
		return screenVertex{}, false
	}
	inv := 1 / w
	return screenVertex{
		x:     (v.clip[0]*inv + 1) * 0.5 * float32(fb.w),
		y:     (1 - v.clip[1]*inv) * 0.5 * float32(fb.h),
		z:     v.clip[2]*inv*0.5 + 0.5,
		invW:  inv,
		color: v.color.Mul(inv),
	}, true
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func (fb *Framebuffer) drawTriangle(a, b, c rasterVertex) bool {
	s0, ok0 := fb.toScreen(a)
	s1, ok1 := fb.toScreen(b)
	s2, ok2 := fb.toScreen(c)
	if !ok0 || !ok1 || !ok2 {
		return false
	}

	// Screen Y points down, so front faces have negative area here.
	area := edge(s0.x, s0.y, s1.x, s1.y, s2.x, s2.y)
	if area >= 0 {
		return false
	}

	minX := int(math.Floor(float64(minf(s0.x, minf(s1.x, s2.x)))))
	maxX := int(math.Ceil(float64(maxf(s0.x, maxf(s1.x, s2.x)))))
	minY := int(math.Floor(float64(minf(s0.y, minf(s1.y, s2.y)))))
	maxY := int(math.Ceil(float64(maxf(s0.y, maxf(s1.y, s2.y)))))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > fb.w-1 {
		maxX = fb.w - 1
	}
	if maxY > fb.h-1 {
		maxY = fb.h - 1
	}
	if minX > maxX || minY > maxY {
		return false
	}

	invArea := 1 / area
	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edge(s1.x, s1.y, s2.x, s2.y, px, py) * invArea
			w1 := edge(s2.x, s2.y, s0.x, s0.y, px, py) * invArea
			w2 := edge(s0.x, s0.y, s1.x, s1.y, px, py) * invArea
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*s0.z + w1*s1.z + w2*s2.z
			if z < 0 || z > 1 {
				continue
			}
			di := y*fb.w + x
			if z >= fb.Depth[di] {
				continue
			}
			fb.Depth[di] = z

			invW := w0*s0.invW + w1*s1.invW + w2*s2.invW
			col := s0.color.Mul(w0).Add(s1.color.Mul(w1)).Add(s2.color.Mul(w2)).Mul(1 / invW)
			r, g, b := ToneMap(col)
			o := fb.Color.PixOffset(x, y)
			fb.Color.Pix[o] = r
			fb.Color.Pix[o+1] = g
			fb.Color.Pix[o+2] = b
			fb.Color.Pix[o+3] = 255
		}
	}
	return true
}
