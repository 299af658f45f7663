package flyscene

import (
	"image"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
)

type screenQuad struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// TexturePresenter shows frames as a full-screen texture through engo's 2D renderer.
type TexturePresenter struct {
	R *common.RenderSystem

	quad  screenQuad
	tex   *common.Texture
	added bool
}

func NewTexturePresenter(rs *common.RenderSystem, width, height float32) *TexturePresenter {
	tp := &TexturePresenter{R: rs}
	tp.quad = screenQuad{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Scale: engo.Point{X: 1, Y: 1},
		},
		SpaceComponent: common.SpaceComponent{
			Width:  width,
			Height: height,
		},
	}
	tp.quad.RenderComponent.SetShader(common.HUDShader)
	tp.quad.RenderComponent.SetZIndex(0)
	return tp
}

func (tp *TexturePresenter) Present(img *image.NRGBA) {
	tex := common.NewTextureSingle(common.NewImageObject(img))
	if tp.tex != nil {
		tp.tex.Close()
	}
	tp.tex = &tex
	tp.quad.Drawable = tp.tex

	if !tp.added {
		tp.R.Add(&tp.quad.BasicEntity, &tp.quad.RenderComponent, &tp.quad.SpaceComponent)
		tp.added = true
	}
}
