package flyscene

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

func InitializeCamera(rs *PbrRenderSystem, fs *FlyControlSystem) *CameraEntity {
	transform := NewTransform()
	transform.SetTranslationXYZ(0, 0, 10)

	cam := &CameraEntity{
		BasicEntity: ecs.NewBasic(),
		Transform:   transform,
		Camera:      Standard3D(1024, 768),
	}
	rs.SetCamera(cam)

	if err := fs.Add(&cam.BasicEntity, &cam.Transform, &cam.FlyControlTag); err != nil {
		log.WithError(err).Panic("Unable to attach FlyControlTag to camera")
	}
	log.Debugf("Camera %d at %v", cam.ID(), cam.Translation())
	return cam
}

func InitializeSphere(rs *PbrRenderSystem, meshes *MeshCache, defaults MaterialDefaults) (*MeshEntity, error) {
	return initializeMesh(rs, meshes, defaults, Sphere(100, 100))
}

func InitializeSquare(rs *PbrRenderSystem, meshes *MeshCache, defaults MaterialDefaults) (*MeshEntity, error) {
	return initializeMesh(rs, meshes, defaults, Plane(100, 100))
}

func initializeMesh(rs *PbrRenderSystem, meshes *MeshCache, defaults MaterialDefaults, shape Shape) (*MeshEntity, error) {
	mesh, err := meshes.Load(shape)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", shape.Key(), err)
	}

	transform := NewTransform()
	transform.SetTranslationXYZ(0, 0, 0)

	ent := &MeshEntity{
		BasicEntity: ecs.NewBasic(),
		Transform:   transform,
		Mesh:        mesh,
		Material:    defaults.Material,
	}
	rs.AddMesh(ent)
	log.Debugf("Mesh %d (%s) at %v", ent.ID(), shape.Key(), ent.Translation())
	return ent, nil
}

func InitializeLight(rs *PbrRenderSystem) *LightEntity {
	light := DefaultPointLight()
	light.Intensity = 10.0
	light.Color = mgl32.Vec3{1.0, 1.0, 1.0}

	transform := NewTransform()
	transform.SetTranslationXYZ(5.0, 5.0, 20.0)

	ent := &LightEntity{
		BasicEntity: ecs.NewBasic(),
		Transform:   transform,
		Light:       light,
	}
	rs.AddLight(ent)
	log.Debugf("Light %d at %v", ent.ID(), ent.Translation())
	return ent
}
