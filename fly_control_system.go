package flyscene

import (
	"errors"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

const FlyControlPriority = 10

var ErrNoTransform = errors.New("entity has no transform")

// FlyInput is what the fly controller reads each frame.
type FlyInput interface {
	Axis(name string) float32
	MouseDelta() (dx, dy float32)
	ButtonDown(name string) bool
}

type flyEntity struct {
	*ecs.BasicEntity
	*Transform
	*FlyControlTag
}

// FlyControlSystem moves tagged transforms from movement axes and turns them
// with the mouse while the cursor is hidden.
type FlyControlSystem struct {
	HorizontalAxis   string
	VerticalAxis     string
	LongitudinalAxis string

	Speed        float32
	SensitivityX float32
	SensitivityY float32

	// BoostAction names a button that multiplies Speed by BoostMultiplier
	// while held. Empty disables it.
	BoostAction     string
	BoostMultiplier float32

	Cursor *HideCursor
	Input  FlyInput

	entities []flyEntity
}

// NewFlyControlSystem takes the axis names for local x, y and z movement.
// An empty name disables that axis.
func NewFlyControlSystem(x, y, z string) *FlyControlSystem {
	return &FlyControlSystem{
		HorizontalAxis:   x,
		VerticalAxis:     y,
		LongitudinalAxis: z,
		Speed:            1,
		SensitivityX:     1,
		SensitivityY:     1,
		BoostMultiplier:  1,
	}
}

func (fs *FlyControlSystem) WithSensitivity(x, y float32) *FlyControlSystem {
	fs.SensitivityX = x
	fs.SensitivityY = y
	return fs
}

func (fs *FlyControlSystem) WithSpeed(speed float32) *FlyControlSystem {
	fs.Speed = speed
	return fs
}

func (fs *FlyControlSystem) WithBoost(action string, multiplier float32) *FlyControlSystem {
	fs.BoostAction = action
	fs.BoostMultiplier = multiplier
	return fs
}

func (fs *FlyControlSystem) Add(basic *ecs.BasicEntity, t *Transform, tag *FlyControlTag) error {
	if t == nil {
		return ErrNoTransform
	}
	if tag == nil {
		tag = &FlyControlTag{}
	}
	fs.entities = append(fs.entities, flyEntity{basic, t, tag})
	return nil
}

func (fs *FlyControlSystem) Len() int { return len(fs.entities) }

func (fs *FlyControlSystem) Remove(e ecs.BasicEntity) {
	for i, ent := range fs.entities {
		if ent.ID() == e.ID() {
			fs.entities = append(fs.entities[:i], fs.entities[i+1:]...)
			return
		}
	}
}

func (*FlyControlSystem) Priority() int { return FlyControlPriority }

func (fs *FlyControlSystem) axis(name string) float32 {
	if name == "" || fs.Input == nil {
		return 0
	}
	return fs.Input.Axis(name)
}

func (fs *FlyControlSystem) speed() float32 {
	if fs.BoostAction != "" && fs.BoostMultiplier > 0 && fs.Input.ButtonDown(fs.BoostAction) {
		return fs.Speed * fs.BoostMultiplier
	}
	return fs.Speed
}

func (fs *FlyControlSystem) Update(dt float32) {
	if fs.Input == nil {
		return
	}

	dir := mgl32.Vec3{
		fs.axis(fs.HorizontalAxis),
		fs.axis(fs.VerticalAxis),
		fs.axis(fs.LongitudinalAxis),
	}
	for _, e := range fs.entities {
		e.MoveAlongLocal(dir, fs.speed()*dt)
	}

	// The delta is consumed every frame so motion made while the cursor is
	// released does not turn the camera once it is grabbed again.
	dx, dy := fs.Input.MouseDelta()
	if fs.Cursor != nil && !fs.Cursor.Hide {
		return
	}
	if dx == 0 && dy == 0 {
		return
	}
	for _, e := range fs.entities {
		e.AppendRotationXAxis(mgl32.DegToRad(-dy * fs.SensitivityY))
		e.PrependRotationYAxis(mgl32.DegToRad(-dx * fs.SensitivityX))
	}
}
