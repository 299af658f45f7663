package flyscene

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
)

const (
	hintHidden  = "WASD/QE to fly, mouse to look, Esc to release the cursor"
	hintVisible = "Click to look around"
)

// HintText is the help line shown for the given cursor state.
func HintText(hidden bool) string {
	if hidden {
		return hintHidden
	}
	return hintVisible
}

type HudText struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent

	Offset engo.Point
}

func NewHudText(font *common.Font, offset engo.Point) *HudText {
	t := &HudText{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: common.Text{Font: font, Text: HintText(true)},
			Scale:    engo.Point{X: 1, Y: 1},
		},
		SpaceComponent: common.SpaceComponent{Position: offset},
		Offset:         offset,
	}
	t.RenderComponent.SetShader(common.HUDShader)
	t.RenderComponent.SetZIndex(10)
	return t
}

type HudElement struct {
	*ecs.BasicEntity
	*common.RenderComponent
	*common.SpaceComponent
	Offset engo.Point
}

// HudSystem keeps screen-pinned text in sync with the cursor state.
type HudSystem struct {
	Font *common.Font

	Entities []HudElement

	hidden bool
	dirty  bool
}

func (hs *HudSystem) New(w *ecs.World) {
	hs.hidden = true
	engo.Mailbox.Listen(CursorMessage{}.Type(), func(msg engo.Message) {
		cm, ok := msg.(CursorMessage)
		if !ok {
			return
		}
		hs.SetCursorHidden(cm.Hidden)
	})
}

func (hs *HudSystem) SetCursorHidden(hidden bool) {
	if hs.hidden != hidden {
		hs.dirty = true
	}
	hs.hidden = hidden
}

func (hs *HudSystem) Add(ent *ecs.BasicEntity, rc *common.RenderComponent, sc *common.SpaceComponent, offset engo.Point) {
	hs.Entities = append(hs.Entities, HudElement{ent, rc, sc, offset})
}

func (hs *HudSystem) Remove(e ecs.BasicEntity) {
	for i, el := range hs.Entities {
		if el.BasicEntity.ID() == e.ID() {
			hs.Entities = append(hs.Entities[:i], hs.Entities[i+1:]...)
			return
		}
	}
}

func (hs *HudSystem) Update(dt float32) {
	for _, e := range hs.Entities {
		e.SpaceComponent.Position = e.Offset
		if hs.dirty {
			e.RenderComponent.Drawable = common.Text{Font: hs.Font, Text: HintText(hs.hidden)}
		}
	}
	hs.dirty = false
}
