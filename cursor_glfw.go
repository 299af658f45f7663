//go:build ((darwin && !arm && !arm64) || linux || windows) && !ios && !android && !js && !sdl && !headless && !vulkan

package flyscene

import (
	"github.com/go-gl/glfw/v3.2/glfw"
)

// cursorMode disables the cursor when hidden so glfw keeps it inside the
// window and reports unbounded motion.
func cursorMode(visible bool) int {
	if visible {
		return glfw.CursorNormal
	}
	return glfw.CursorDisabled
}

func setCursorMode(visible bool) {
	w := glfw.GetCurrentContext()
	if w == nil {
		return
	}
	w.SetInputMode(glfw.CursorMode, cursorMode(visible))
}
