package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window
	s := app.session

	app.inputManager.Attach(window)

	// Framebuffer size callback, the viewport is in pixels
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		s.Renderer.UpdateViewport(fbWidth, fbHeight)
	})

	// Focus callback
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused && !s.Paused {
			s.SetPaused(true)
		}
	})

	// Refresh callback
	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
