package tui

import (
	"fmt"

	"github.com/vovakirdan/clickdash/internal/core"
	"github.com/vovakirdan/clickdash/internal/platform/view"
)

const (
	minWidth  = 40
	minHeight = 16

	startButtonW = 16
	modalW       = 36
	modalH       = 10
	submitW      = 18
	buttonH      = 3

	title = "Click-Dash Pro"
)

// layout places the header, play area, overlay and modal for a terminal
// of the given size. Row 0 is the header, the last row is the footer and
// everything between is the bordered play area.
type layout struct {
	view.Layout
	width, height int
	box           core.Rect
	modal         core.Rect
}

func computeLayout(width, height int, target core.Size) layout {
	box := core.NewRect(0, 1, width, core.Max(height-2, 0))
	area := core.NewRect(box.X+1, box.Y+1, core.Max(box.W-2, 0), core.Max(box.H-2, 0))

	start := area.Centered(core.Size{W: startButtonW, H: buttonH}).Offset(0, 1)

	modal := area.Centered(core.Size{W: core.Min(modalW, area.W), H: core.Min(modalH, area.H)})
	submit := core.NewRect(modal.X+(modal.W-submitW)/2, modal.Y+6, submitW, buttonH)

	return layout{
		Layout: view.Layout{
			Area:   area,
			Start:  start,
			Submit: submit,
			Target: target,
		},
		width:  width,
		height: height,
		box:    box,
		modal:  modal,
	}
}

func (l layout) tooSmall() bool {
	return l.width < minWidth || l.height < minHeight
}

// playArea is the size reported to the session.
func (l layout) playArea() core.Size {
	return l.Area.Size()
}

// nameField is what the prompt shows for the name being typed.
type nameField struct {
	value  string
	cursor int
}

// draw paints the whole frame for board b onto s.
func (l layout) draw(s *core.Screen, b *view.Board, name nameField) {
	s.Clear()

	if l.tooSmall() {
		mid := s.Height() / 2
		s.DrawTextCentered(s.Bounds(), mid-1, "Terminal too small", core.ColorMuted)
		s.DrawTextCentered(s.Bounds(), mid, fmt.Sprintf("need %dx%d", minWidth, minHeight), core.ColorMuted)
		return
	}

	l.drawHeader(s, b)
	s.DrawBox(l.box, core.ColorFrame)

	if b.TargetVisible {
		drawButton(s, l.TargetRect(b.Target), "CLICK ME!", core.ColorTarget)
	}
	if b.OverlayVisible {
		l.drawOverlay(s)
	}
	if b.Prompting {
		l.drawPrompt(s, b, name)
	}

	hint := "click the target · q quit · ctrl+s screenshot"
	if b.Prompting {
		hint = "type your name · enter to submit · ctrl+c quit"
	}
	s.DrawText(1, l.height-1, hint, core.ColorMuted)
}

func (l layout) drawHeader(s *core.Screen, b *view.Board) {
	header := core.NewRect(0, 0, l.width, 1)
	s.FillRect(header, ' ', core.ColorScore)

	s.DrawText(1, 0, fmt.Sprintf("Score: %d", b.Score), core.ColorScore)
	s.DrawTextCentered(header, 0, title, core.ColorTitle)

	timeText := fmt.Sprintf("Time: %ds", b.Time)
	s.DrawText(l.width-1-len(timeText), 0, timeText, core.ColorTime)
}

func (l layout) drawOverlay(s *core.Screen) {
	s.FillRect(l.Area, ' ', core.ColorOverlay)
	s.DrawTextCentered(l.Area, l.Start.Y-2, "READY?", core.ColorTitle)
	drawButton(s, l.Start, "START GAME", core.ColorButton)
}

func (l layout) drawPrompt(s *core.Screen, b *view.Board, name nameField) {
	m := l.modal
	s.FillRect(m, ' ', core.ColorOverlay)
	s.DrawBox(m, core.ColorTitle)

	s.DrawTextCentered(m, m.Y+2, "Time's Up!", core.ColorTitle)
	s.DrawTextCentered(m, m.Y+3, fmt.Sprintf("Final Score: %d", b.FinalScore), core.ColorOverlay)

	field := core.NewRect(m.X+3, m.Y+5, core.Max(m.W-6, 1), 1)
	s.FillRect(field, ' ', core.ColorButton)

	runes := []rune(name.value)
	cursor := core.Clamp(name.cursor, 0, len(runes))
	offset := core.Max(cursor-(field.W-1), 0)
	for i := 0; i < field.W && offset+i < len(runes); i++ {
		s.Set(field.X+i, field.Y, runes[offset+i], core.ColorButton)
	}
	cx := field.X + cursor - offset
	s.Set(cx, field.Y, s.Get(cx, field.Y), core.ColorTarget)

	drawButton(s, l.Submit, "Submit Score", core.ColorTarget)
}

// drawButton fills r and centers label on its middle row.
func drawButton(s *core.Screen, r core.Rect, label string, c core.Color) {
	s.FillRect(r, ' ', c)
	s.DrawTextCentered(r, r.Y+r.H/2, label, c)
}
