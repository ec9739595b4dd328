package asset

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownTexture is returned when a texture name has no definition
var ErrUnknownTexture = errors.New("unknown texture")

// Definition describes a texture in the catalogue
// Width and Height are the nominal pixel size used for collision footprints and sprite extents
type Definition struct {
	Glyph  string  `yaml:"glyph"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// Texture is a shared, immutable sprite handle
// The same pointer is handed to every entity drawn with it
type Texture struct {
	Name   string
	Glyph  rune
	Width  float64
	Height float64
	Color  tcell.Color
}

// Style returns the terminal style for the texture
func (t *Texture) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Color)
}

// Size returns the nominal pixel size
func (t *Texture) Size() (w, h float64) {
	return t.Width, t.Height
}

func newTexture(name string, def Definition) (*Texture, error) {
	glyph := []rune(def.Glyph)
	if len(glyph) != 1 {
		return nil, errors.New("texture " + name + ": glyph must be exactly one character")
	}
	if def.Width <= 0 || def.Height <= 0 {
		return nil, errors.New("texture " + name + ": size must be positive")
	}
	color := tcell.ColorDefault
	if def.Color != "" {
		color = tcell.GetColor(def.Color)
		if color == tcell.ColorDefault {
			return nil, errors.New("texture " + name + ": unknown color " + def.Color)
		}
	}
	return &Texture{
		Name:   name,
		Glyph:  glyph[0],
		Width:  def.Width,
		Height: def.Height,
		Color:  color,
	}, nil
}
