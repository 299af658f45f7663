package flyscene

import (
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Aspect float32
	FovY   float32
	ZNear  float32
	ZFar   float32
}

// Standard3D is a perspective camera for a width x height viewport looking down -Z.
func Standard3D(width, height float32) Camera {
	return Camera{
		Aspect: width / height,
		FovY:   math.Pi / 3,
		ZNear:  0.1,
		ZFar:   2000,
	}
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.Aspect, c.ZNear, c.ZFar)
}

func (c Camera) View(t *Transform) mgl32.Mat4 {
	return t.Matrix().Inv()
}

// Material holds metallic/roughness parameters in linear color space.
type Material struct {
	Albedo           mgl32.Vec3
	Metallic         float32
	Roughness        float32
	Emission         mgl32.Vec3
	AmbientOcclusion float32
}

// MaterialDefaults is the material every mesh starts from.
type MaterialDefaults struct {
	Material Material
}

func NewMaterialDefaults() MaterialDefaults {
	return MaterialDefaults{Material: Material{
		Albedo:           mgl32.Vec3{0.5, 0.5, 0.5},
		Metallic:         0,
		Roughness:        0.5,
		AmbientOcclusion: 1,
	}}
}

type PointLight struct {
	Intensity float32
	Color     mgl32.Vec3
	// Radius fades the light to zero at this distance. Zero is unbounded.
	Radius float32
}

func DefaultPointLight() PointLight {
	return PointLight{
		Intensity: 10,
		Color:     mgl32.Vec3{1, 1, 1},
	}
}

// FlyControlTag marks an entity the fly control system may move.
type FlyControlTag struct{}

type HideCursor struct {
	Hide bool
}

type CameraEntity struct {
	ecs.BasicEntity
	Transform
	Camera
	FlyControlTag
}

type MeshEntity struct {
	ecs.BasicEntity
	Transform
	Mesh     *Mesh
	Material Material
}

type LightEntity struct {
	ecs.BasicEntity
	Transform
	Light PointLight
}
