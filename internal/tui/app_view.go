package tui

func (a *App) View() string {
	if a.width == 0 || !a.viewportReady {
		return "Loading..."
	}
	return a.viewport.View() + "\n" + a.renderer.StatusBar(a.boot.Running())
}
