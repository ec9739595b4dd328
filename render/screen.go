package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/GamesFromRust/piston-shooty/game"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// Screen draws world-space scenes onto a terminal
// The whole 1280x720 world is stretched over the terminal, one cell covering cellW x cellH pixels
type Screen struct {
	screen tcell.Screen
	cols   int
	rows   int
	cellW  float64
	cellH  float64
	fps    FPSCounter
}

// NewScreen wraps an initialized tcell screen
func NewScreen(s tcell.Screen) *Screen {
	r := &Screen{screen: s}
	r.Resize()
	return r
}

// Resize re-reads the terminal size; call after a resize event
func (r *Screen) Resize() {
	cols, rows := r.screen.Size()
	r.cols = max(cols, 1)
	r.rows = max(rows, 1)
	r.cellW = float64(parameter.ScreenWidth) / float64(r.cols)
	r.cellH = float64(parameter.ScreenHeight) / float64(r.rows)
}

// Size returns the world dimensions, not the terminal's
func (r *Screen) Size() (w, h float64) {
	return parameter.ScreenWidth, parameter.ScreenHeight
}

// Cells returns the terminal dimensions
func (r *Screen) Cells() (cols, rows int) {
	return r.cols, r.rows
}

// WorldToCell maps a world position to the cell containing it
func (r *Screen) WorldToCell(pos vmath.Vector2) (x, y int) {
	return int(math.Floor(pos.X / r.cellW)), int(math.Floor(pos.Y / r.cellH))
}

// CellToWorld maps a cell to the world position at its center
func (r *Screen) CellToWorld(x, y int) vmath.Vector2 {
	return vmath.V2((float64(x)+0.5)*r.cellW, (float64(y)+0.5)*r.cellH)
}

// Clear blanks the frame
func (r *Screen) Clear() {
	r.screen.Fill(' ', tcell.StyleDefault.Background(RgbBackground))
}

// DrawSprite fills the sprite's footprint with its glyph, at least one cell
func (r *Screen) DrawSprite(cmd game.DrawCommand) {
	tex := cmd.Texture
	if tex == nil {
		return
	}

	cw := max(1, int(math.Round(tex.Width*cmd.Scale/r.cellW)))
	ch := max(1, int(math.Round(tex.Height*cmd.Scale/r.cellH)))
	cx, cy := r.WorldToCell(cmd.Position)
	x0, y0 := cx-cw/2, cy-ch/2

	style := tex.Style().Background(RgbBackground)
	for y := y0; y < y0+ch; y++ {
		for x := x0; x < x0+cw; x++ {
			r.setContent(x, y, tex.Glyph, style)
		}
	}
}

// DrawText writes one line of overlay text anchored at a world position
func (r *Screen) DrawText(pos vmath.Vector2, text string, style game.TextStyle, align game.Align) {
	runes := []rune(text)
	x, y := r.WorldToCell(pos)
	if align == game.AlignCenter {
		x -= len(runes) / 2
	}

	st := textStyle(style)
	for i, ch := range runes {
		r.setContent(x+i, y, ch, st)
	}
}

// Show draws the FPS counter and flushes the frame
func (r *Screen) Show(now time.Time) {
	r.fps.Tick(now)

	label := fmt.Sprintf("FPS: %d", r.fps.FPS())
	st := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbFPS)
	for i, ch := range label {
		r.setContent(i, 0, ch, st)
	}

	r.screen.Show()
}

// FPS returns the current frame rate
func (r *Screen) FPS() int {
	return r.fps.FPS()
}

func (r *Screen) setContent(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.cols || y < 0 || y >= r.rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
