package flyscene

import (
	"testing"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"github.com/stretchr/testify/assert"
)

func TestHudFollowsCursor(t *testing.T) {
	hud := &HudSystem{}
	text := &HudText{Offset: engo.Point{X: 10, Y: 10}}
	hud.Add(&text.BasicEntity, &text.RenderComponent, &text.SpaceComponent, text.Offset)

	hud.SetCursorHidden(true)
	hud.Update(0)
	assert.Equal(t, common.Text{Text: HintText(true)}, text.Drawable)
	assert.Equal(t, engo.Point{X: 10, Y: 10}, text.Position)

	text.Drawable = nil
	hud.Update(0)
	assert.Nil(t, text.Drawable, "no redraw without a cursor change")

	hud.SetCursorHidden(false)
	hud.Update(0)
	assert.Equal(t, common.Text{Text: HintText(false)}, text.Drawable)

	hud.Remove(text.BasicEntity)
	assert.Empty(t, hud.Entities)
}

func TestHintText(t *testing.T) {
	assert.Contains(t, HintText(true), "Esc")
	assert.Contains(t, HintText(false), "Click")
}
