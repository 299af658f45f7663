package flyscene

import (
	"github.com/EngoEngine/engo"
)

const CursorReleaseButton = "cursor_release"

// EngoInput reads controls from engo's global input manager.
type EngoInput struct {
	lastX, lastY float32
	primed       bool
}

func (*EngoInput) Axis(name string) float32 {
	return engo.Input.Axis(name).Value()
}

func (*EngoInput) ButtonDown(name string) bool {
	return engo.Input.Button(name).Down()
}

func (ei *EngoInput) MouseDelta() (float32, float32) {
	x, y := engo.Input.Mouse.X, engo.Input.Mouse.Y
	if !ei.primed {
		ei.lastX, ei.lastY, ei.primed = x, y, true
		return 0, 0
	}
	dx, dy := x-ei.lastX, y-ei.lastY
	ei.lastX, ei.lastY = x, y
	return dx, dy
}

func (*EngoInput) EscapeDown() bool {
	return engo.Input.Button(CursorReleaseButton).JustPressed()
}

func (*EngoInput) LeftMouseDown() bool {
	return engo.Input.Mouse.Action == engo.Press && engo.Input.Mouse.Button == engo.MouseButtonLeft
}

// SetCursorVisible shows the cursor, or hides and grabs it. It is a no-op
// without a window.
func SetCursorVisible(visible bool) {
	if engo.Headless() {
		return
	}
	setCursorMode(visible)
}
