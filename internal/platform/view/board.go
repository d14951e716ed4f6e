// Package view holds the presentation state shared by the Click Dash hosts.
// A Board records what the session asked to show; hosts draw it and hit-test
// pointer presses against it.
package view

import (
	"github.com/vovakirdan/clickdash/internal/core"
	"github.com/vovakirdan/clickdash/internal/game"
)

// Board is the last state pushed by a game.Session.
type Board struct {
	Score          int
	Time           int
	Target         core.Point // Relative to the play area origin
	TargetVisible  bool
	OverlayVisible bool
	Prompting      bool
	FinalScore     int
}

var _ game.Presenter = (*Board)(nil)

// NewBoard returns the board as it looks before the first round.
func NewBoard(roundSeconds int) *Board {
	return &Board{
		Time:           roundSeconds,
		OverlayVisible: true,
	}
}

func (b *Board) RenderScore(value int) {
	b.Score = value
}

func (b *Board) RenderTime(seconds int) {
	b.Time = seconds
}

func (b *Board) ShowTargetAt(x, y int) {
	b.Target = core.Point{X: x, Y: y}
	b.TargetVisible = true
}

func (b *Board) HideTarget() {
	b.TargetVisible = false
}

func (b *Board) ShowStartOverlay() {
	b.OverlayVisible = true
	b.Prompting = false
}

func (b *Board) HideStartOverlay() {
	b.OverlayVisible = false
}

func (b *Board) PromptForName(score int) {
	b.Prompting = true
	b.FinalScore = score
}

// Hit identifies what a pointer press landed on.
type Hit int

const (
	HitNone Hit = iota
	HitStart
	HitTarget
	HitSubmit
)

// Layout is where a host drew the interactive parts, in host coordinates.
type Layout struct {
	Area   core.Rect // Play area; targets are placed relative to its origin
	Start  core.Rect // Start button on the overlay
	Submit core.Rect // Submit button on the name prompt
	Target core.Size // Target button size
}

// TargetRect returns the target's rectangle in host coordinates.
func (l Layout) TargetRect(p core.Point) core.Rect {
	return core.RectAt(p, l.Target).Offset(l.Area.X, l.Area.Y)
}

// HitTest resolves a press at (x, y). The name prompt is modal, so while it
// is open nothing else can be hit; the start overlay likewise covers the
// play area.
func (b *Board) HitTest(l Layout, x, y int) Hit {
	switch {
	case b.Prompting:
		if l.Submit.Contains(x, y) {
			return HitSubmit
		}
		return HitNone
	case b.OverlayVisible:
		if l.Start.Contains(x, y) {
			return HitStart
		}
		return HitNone
	case b.TargetVisible:
		if l.TargetRect(b.Target).Contains(x, y) {
			return HitTarget
		}
	}
	return HitNone
}
