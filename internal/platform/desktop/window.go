package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/clickdash/internal/core"
)

// Fixed Click Dash palette.
var (
	colorSlate     = color.RGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF}
	colorHeader    = color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF}
	colorShade     = color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xE6}
	colorFrame     = color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xFF}
	colorSky       = color.RGBA{R: 0x38, G: 0xBD, B: 0xF8, A: 0xFF}
	colorRose      = color.RGBA{R: 0xFB, G: 0x71, B: 0x85, A: 0xFF}
	colorGreen     = color.RGBA{R: 0x4A, G: 0xDE, B: 0x80, A: 0xFF}
	colorDeepGreen = color.RGBA{R: 0x06, G: 0x4E, B: 0x3B, A: 0xFF}
	colorWhite     = color.RGBA{R: 0xF8, G: 0xFA, B: 0xFC, A: 0xFF}
	colorMuted     = color.RGBA{R: 0x64, G: 0x74, B: 0x8B, A: 0xFF}
)

var face font.Face = basicfont.Face7x13

// Game adapts App to ebiten.Game.
type Game struct {
	app   *App
	step  time.Duration
	chars []rune
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps app; game time advances one tick period per Update.
func NewGame(app *App) *Game {
	return &Game{
		app:  app,
		step: time.Second / time.Duration(ebiten.TPS()),
	}
}

// Update polls input and advances game time.
func (g *Game) Update() error {
	g.app.Advance(g.step)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.app.Press(x, y)
	}

	if !g.app.Prompting() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		return nil
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	g.app.Type(g.chars)

	if repeatPressed(ebiten.KeyBackspace) {
		g.app.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.app.Submit()
	}
	return nil
}

// repeatPressed reports a key press with auto-repeat while held.
func repeatPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

// Draw renders the header, play area, target and dialogs.
func (g *Game) Draw(screen *ebiten.Image) {
	l := g.app.layout
	b := g.app.board

	screen.Fill(colorSlate)

	fillRect(screen, l.header, colorHeader)
	midY := l.header.Y + l.header.H/2 + 4
	text.Draw(screen, fmt.Sprintf("Score: %d", b.Score), face, l.Area.X, midY, colorSky)
	drawTextCentered(screen, title, l.header, colorWhite)
	timeText := fmt.Sprintf("Time: %ds", b.Time)
	text.Draw(screen, timeText, face, l.Area.Right()-text.BoundString(face, timeText).Dx(), midY, colorRose)

	vector.StrokeRect(screen, float32(l.Area.X), float32(l.Area.Y), float32(l.Area.W), float32(l.Area.H), 2, colorFrame, false)

	if b.TargetVisible {
		target := l.TargetRect(b.Target)
		fillRect(screen, target, colorGreen)
		drawTextCentered(screen, "CLICK ME!", target, colorDeepGreen)
	}

	if b.OverlayVisible {
		fillRect(screen, l.Area, colorShade)
		above := core.NewRect(l.Area.X, l.Start.Y-60, l.Area.W, 40)
		drawTextCentered(screen, "READY?", above, colorWhite)
		fillRect(screen, l.Start, colorSky)
		drawTextCentered(screen, "START GAME", l.Start, colorWhite)
	}

	if b.Prompting {
		g.drawPrompt(screen)
	}

	hint := "Click the target. Esc quits."
	if b.Prompting {
		hint = "Type your name, Enter to submit."
	}
	text.Draw(screen, hint, face, l.Area.X, l.height-6, colorMuted)
}

func (g *Game) drawPrompt(screen *ebiten.Image) {
	l := g.app.layout
	m := l.modal

	fillRect(screen, l.Area, colorShade)
	fillRect(screen, m, colorHeader)
	vector.StrokeRect(screen, float32(m.X), float32(m.Y), float32(m.W), float32(m.H), 2, colorFrame, false)

	drawTextCentered(screen, "Time's Up!", core.NewRect(m.X, m.Y+20, m.W, 30), colorWhite)
	drawTextCentered(screen, fmt.Sprintf("Final Score: %d", g.app.board.FinalScore),
		core.NewRect(m.X, m.Y+55, m.W, 30), colorSky)

	fillRect(screen, l.field, colorSlate)
	vector.StrokeRect(screen, float32(l.field.X), float32(l.field.Y), float32(l.field.W), float32(l.field.H), 1, colorSky, false)
	name := g.app.Name()
	if (time.Now().UnixMilli()/500)%2 == 0 {
		name += "_"
	}
	text.Draw(screen, name, face, l.field.X+8, l.field.Y+l.field.H/2+4, colorWhite)

	fillRect(screen, l.Submit, colorGreen)
	drawTextCentered(screen, "Submit Score", l.Submit, colorDeepGreen)
}

func fillRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func drawTextCentered(dst *ebiten.Image, s string, r core.Rect, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := r.X + (r.W-bounds.Dx())/2
	y := r.Y + r.H/2 + 4
	text.Draw(dst, s, face, x, y, clr)
}

// Layout keeps a fixed logical size; the window scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.app.layout.width, g.app.layout.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app := NewApp(opts)
	defer app.Close()

	ebiten.SetWindowSize(app.layout.width, app.layout.height)
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(NewGame(app)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
