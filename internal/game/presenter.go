package game

// Presenter is implemented by hosts that draw the game. The session calls it
// synchronously from its own event loop; implementations record what to show
// and must not call back into the session from these methods.
type Presenter interface {
	RenderScore(value int)
	RenderTime(seconds int)
	ShowTargetAt(x, y int)
	HideTarget()
	ShowStartOverlay()
	HideStartOverlay()
	// PromptForName asks the player for a name. The host answers later
	// by calling Session.SubmitScore.
	PromptForName(score int)
}

// NopPresenter ignores every update. Useful for headless sessions.
type NopPresenter struct{}

func (NopPresenter) RenderScore(int) {}
func (NopPresenter) RenderTime(int) {}
func (NopPresenter) ShowTargetAt(_, _ int) {}
func (NopPresenter) HideTarget() {}
func (NopPresenter) ShowStartOverlay() {}
func (NopPresenter) HideStartOverlay() {}
func (NopPresenter) PromptForName(int) {}
