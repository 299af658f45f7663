package flyscene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform places an entity in world space.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t *Transform) SetTranslationXYZ(x, y, z float32) *Transform {
	t.Position = mgl32.Vec3{x, y, z}
	return t
}

func (t *Transform) Translation() mgl32.Vec3 { return t.Position }

// Matrix returns T * R * S.
func (t *Transform) Matrix() mgl32.Mat4 {
	tr := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	sc := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return tr.Mul4(t.Rotation.Normalize().Mat4()).Mul4(sc)
}

func (t *Transform) Right() mgl32.Vec3   { return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0}) }
func (t *Transform) Up() mgl32.Vec3      { return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0}) }
func (t *Transform) Forward() mgl32.Vec3 { return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1}) }

// MoveAlongLocal moves distance units along dir expressed in the entity's own axes.
// A zero direction leaves the transform untouched.
func (t *Transform) MoveAlongLocal(dir mgl32.Vec3, distance float32) {
	if dir.Len() < 1e-6 {
		return
	}
	world := t.Rotation.Rotate(dir.Normalize())
	t.Position = t.Position.Add(world.Mul(distance))
}

// AppendRotationXAxis pitches around the local X axis.
func (t *Transform) AppendRotationXAxis(rad float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(rad, mgl32.Vec3{1, 0, 0})).Normalize()
}

// PrependRotationYAxis yaws around the world Y axis.
func (t *Transform) PrependRotationYAxis(rad float32) {
	t.Rotation = mgl32.QuatRotate(rad, mgl32.Vec3{0, 1, 0}).Mul(t.Rotation).Normalize()
}
