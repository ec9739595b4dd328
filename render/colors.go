package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/GamesFromRust/piston-shooty/game"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(12, 12, 16)    // Near black
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbHighlight  = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbTitle      = tcell.NewRGBColor(255, 255, 255) // White
	RgbFPS        = tcell.NewRGBColor(120, 200, 120) // Soft green
)

// textStyle maps an overlay style to a terminal style
func textStyle(s game.TextStyle) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch s {
	case game.TextHighlight:
		return base.Foreground(RgbHighlight)
	case game.TextTitle:
		return base.Foreground(RgbTitle).Bold(true)
	default:
		return base.Foreground(RgbText)
	}
}
