package flyscene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d of %v", i, got)
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := NewTransform()
	tr.SetTranslationXYZ(1, 2, 3)
	tr.Scale = mgl32.Vec3{2, 2, 2}

	p := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assertVec(t, mgl32.Vec3{3, 2, 3}, p.Vec3())
}

func TestMoveAlongLocal(t *testing.T) {
	tr := NewTransform()
	tr.SetTranslationXYZ(0, 0, 10)

	tr.MoveAlongLocal(mgl32.Vec3{0, 0, -1}, 0.5)
	assertVec(t, mgl32.Vec3{0, 0, 9.5}, tr.Translation())

	tr.MoveAlongLocal(mgl32.Vec3{}, 100)
	assertVec(t, mgl32.Vec3{0, 0, 9.5}, tr.Translation())

	tr.PrependRotationYAxis(math.Pi / 2)
	tr.MoveAlongLocal(mgl32.Vec3{0, 0, -1}, 1)
	assertVec(t, mgl32.Vec3{-1, 0, 9.5}, tr.Translation())
}

func TestRotationAxes(t *testing.T) {
	tr := NewTransform()
	assertVec(t, mgl32.Vec3{0, 0, -1}, tr.Forward())

	tr.AppendRotationXAxis(mgl32.DegToRad(10))
	assert.Greater(t, tr.Forward()[1], float32(0))

	// Yaw stays around world Y even after pitching.
	tr.PrependRotationYAxis(math.Pi / 2)
	assert.InDelta(t, 0, tr.Right()[1], 1e-5)
}
