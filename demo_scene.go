package flyscene

import (
	"bytes"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"
)

var ClearColor = mgl32.Vec4{0.529, 0.808, 0.98, 1.0}

const (
	MoveX = "move_x"
	MoveY = "move_y"
	MoveZ = "move_z"

	BoostButton     = "boost"
	BoostMultiplier = 4

	hudFont = "goregular.ttf"
)

// DemoScene is a camera, a sphere and a light, plus a ground square when Ground is set.
type DemoScene struct {
	Name        string
	Ground      bool
	Width       int
	Height      int
	RenderScale float32
	Bindings    *Bindings

	Cursor    HideCursor
	Materials MaterialDefaults
	Meshes    *MeshCache

	R   common.RenderSystem
	PBR PbrRenderSystem
	Fly *FlyControlSystem
	CS  CursorSystem
	HUD HudSystem

	CameraEntity *CameraEntity
	Sphere       *MeshEntity
	Light        *LightEntity
	Square       *MeshEntity
}

func (*DemoScene) Preload() {
	engo.Files.LoadReaderData(hudFont, bytes.NewReader(goregular.TTF))
}

func (ds *DemoScene) Type() string {
	if ds.Name == "" {
		return "FlyScene"
	}
	return ds.Name
}

// Populate wires the systems together and creates the scene entities.
func (ds *DemoScene) Populate(input interface {
	FlyInput
	CursorInput
}) error {
	ds.Cursor = HideCursor{Hide: true}
	ds.Materials = NewMaterialDefaults()
	ds.Meshes = NewMeshCache()

	ds.Fly = NewFlyControlSystem(MoveX, MoveY, MoveZ).
		WithSensitivity(0.1, 0.1).
		WithBoost(BoostButton, BoostMultiplier)
	ds.Fly.Cursor = &ds.Cursor
	ds.CS.Cursor = &ds.Cursor
	if input != nil {
		ds.Fly.Input = input
		ds.CS.Input = input
	}

	ds.PBR.ClearColor = ClearColor
	ds.PBR.Width = ds.Width
	ds.PBR.Height = ds.Height
	ds.PBR.RenderScale = ds.RenderScale

	ds.CameraEntity = InitializeCamera(&ds.PBR, ds.Fly)

	var err error
	ds.Sphere, err = InitializeSphere(&ds.PBR, ds.Meshes, ds.Materials)
	if err != nil {
		return err
	}
	ds.Light = InitializeLight(&ds.PBR)
	if ds.Ground {
		ds.Square, err = InitializeSquare(&ds.PBR, ds.Meshes, ds.Materials)
		if err != nil {
			return err
		}
	}
	log.Printf("Scene %s ready: %d meshes, %d lights", ds.Type(), len(ds.PBR.Meshes), len(ds.PBR.Lights))
	return nil
}

func (ds *DemoScene) Setup(u engo.Updater) {
	w, _ := u.(*ecs.World)

	c := ClearColor
	common.SetBackground(color.NRGBA{toByte(c[0]), toByte(c[1]), toByte(c[2]), toByte(c[3])})

	bindings := ds.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}
	if err := bindings.Apply(engo.Input); err != nil {
		log.WithError(err).Fatal("Unable to register key bindings")
	}
	engo.Input.RegisterButton(CursorReleaseButton, engo.KeyEscape)

	if err := ds.Populate(&EngoInput{}); err != nil {
		log.WithError(err).Fatal("Unable to build scene")
	}
	ds.CS.SetVisible = SetCursorVisible

	w.AddSystem(&ds.CS)
	w.AddSystem(ds.Fly)
	w.AddSystem(&ds.PBR)
	w.AddSystem(&ds.R)

	if engo.Headless() {
		return
	}
	ds.PBR.Presenter = NewTexturePresenter(&ds.R, float32(ds.Width), float32(ds.Height))

	ds.HUD.Font = &common.Font{
		URL:  hudFont,
		FG:   color.Black,
		Size: 18,
	}
	if err := ds.HUD.Font.CreatePreloaded(); err != nil {
		log.WithError(err).Error("Unable to load HUD font")
		return
	}
	hint := NewHudText(ds.HUD.Font, engo.Point{X: 10, Y: 10})
	ds.R.Add(&hint.BasicEntity, &hint.RenderComponent, &hint.SpaceComponent)
	ds.HUD.Add(&hint.BasicEntity, &hint.RenderComponent, &hint.SpaceComponent, hint.Offset)
	w.AddSystem(&ds.HUD)
}
