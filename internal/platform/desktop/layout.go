package desktop

import (
	"github.com/vovakirdan/clickdash/internal/config"
	"github.com/vovakirdan/clickdash/internal/core"
	"github.com/vovakirdan/clickdash/internal/platform/view"
)

const (
	title = "Click-Dash Pro"

	startButtonW = 200
	startButtonH = 60
	modalW       = 320
	modalH       = 240
	fieldH       = 36
	submitW      = 180
	submitH      = 44
)

// layout is the window's fixed geometry in pixels.
type layout struct {
	view.Layout
	width, height int
	header        core.Rect
	modal         core.Rect
	field         core.Rect
}

func computeLayout(cfg config.DesktopConfig) layout {
	w, h := cfg.Window.Width, cfg.Window.Height
	header := core.NewRect(0, 0, w, cfg.HeaderHeight)
	area := core.NewRect(
		cfg.Padding,
		cfg.HeaderHeight+cfg.Padding,
		core.Max(w-2*cfg.Padding, 0),
		core.Max(h-cfg.HeaderHeight-2*cfg.Padding, 0),
	)

	modal := area.Centered(core.Size{W: core.Min(modalW, area.W), H: core.Min(modalH, area.H)})
	field := core.NewRect(modal.X+30, modal.Y+110, core.Max(modal.W-60, 0), fieldH)
	submit := core.NewRect(modal.X+(modal.W-submitW)/2, modal.Y+170, submitW, submitH)

	return layout{
		Layout: view.Layout{
			Area:   area,
			Start:  area.Centered(core.Size{W: startButtonW, H: startButtonH}),
			Submit: submit,
			Target: cfg.Target.Size(),
		},
		width:  w,
		height: h,
		header: header,
		modal:  modal,
		field:  field,
	}
}
