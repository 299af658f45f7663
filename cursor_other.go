//go:build !(((darwin && !arm && !arm64) || linux || windows) && !ios && !android && !js && !sdl && !headless && !vulkan)

package flyscene

import (
	"github.com/EngoEngine/engo"
)

func setCursorMode(visible bool) {
	engo.SetCursorVisibility(visible)
}
