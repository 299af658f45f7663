package flyscene

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func flat(c mgl32.Vec3) ShadeFunc {
	return func(pos, normal mgl32.Vec3) mgl32.Vec3 { return c }
}

func TestClipNear(t *testing.T) {
	front := rasterVertex{clip: mgl32.Vec4{0, 0, 0, 1}}
	behind := rasterVertex{clip: mgl32.Vec4{0, 0, -2, 1}}
	var out [4]rasterVertex

	assert.Equal(t, 3, clipNear([3]rasterVertex{front, front, front}, &out))
	assert.Equal(t, 4, clipNear([3]rasterVertex{front, front, behind}, &out))
	assert.Equal(t, 3, clipNear([3]rasterVertex{front, behind, behind}, &out))
	assert.Equal(t, 0, clipNear([3]rasterVertex{behind, behind, behind}, &out))

	for i := 0; i < 3; i++ {
		assert.GreaterOrEqual(t, out[i].clip[2]+out[i].clip[3], float32(-1e-6))
	}
}

func TestDrawMeshCullsBackFaces(t *testing.T) {
	plane, _ := Plane(1, 1).Generate(nil)
	fb := NewFramebuffer(32, 32)
	fb.Clear(color.NRGBA{0, 0, 0, 255})

	cam := Standard3D(32, 32)
	eye := NewTransform()
	eye.SetTranslationXYZ(0, 0, 3)
	viewProj := cam.Projection().Mul4(cam.View(&eye))

	model := NewTransform()
	drawn := fb.DrawMesh(plane, model.Matrix(), viewProj, flat(mgl32.Vec3{1, 1, 1}))
	assert.Equal(t, 2, drawn)
	assert.NotEqual(t, uint8(0), fb.Color.NRGBAAt(16, 16).R)

	fb.Clear(color.NRGBA{0, 0, 0, 255})
	model.PrependRotationYAxis(3.14159265)
	drawn = fb.DrawMesh(plane, model.Matrix(), viewProj, flat(mgl32.Vec3{1, 1, 1}))
	assert.Equal(t, 0, drawn)
	assert.Equal(t, uint8(0), fb.Color.NRGBAAt(16, 16).R)
}

func TestDepthKeepsNearest(t *testing.T) {
	plane, _ := Plane(1, 1).Generate(nil)
	fb := NewFramebuffer(32, 32)
	fb.Clear(color.NRGBA{0, 0, 0, 255})

	cam := Standard3D(32, 32)
	eye := NewTransform()
	eye.SetTranslationXYZ(0, 0, 3)
	viewProj := cam.Projection().Mul4(cam.View(&eye))

	near := NewTransform()
	near.SetTranslationXYZ(0, 0, 1)
	far := NewTransform()

	fb.DrawMesh(plane, near.Matrix(), viewProj, flat(mgl32.Vec3{1, 0, 0}))
	fb.DrawMesh(plane, far.Matrix(), viewProj, flat(mgl32.Vec3{0, 0, 1}))

	px := fb.Color.NRGBAAt(16, 16)
	assert.NotEqual(t, uint8(0), px.R)
	assert.Equal(t, uint8(0), px.B)
}
