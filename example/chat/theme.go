package main

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/widget/material"
	colorful "github.com/lucasb-eyer/go-colorful"

	chatmaterial "git.sr.ht/~gioverse/linktext/widget/material"
)

// Theme wraps the material.Theme with useful application-specific
// theme information.
type Theme struct {
	*material.Theme
	// UserColors tracks a mapping from chat username to the color
	// chosen to represent that user.
	UserColors map[string]UserColorData
}

// UserColorData tracks both a color and its luminance.
type UserColorData struct {
	color.NRGBA
	Luminance float64
}

// NewTheme instantiates a theme with the default font collection.
func NewTheme() *Theme {
	return &Theme{
		Theme:      material.NewTheme(gofont.Collection()),
		UserColors: make(map[string]UserColorData),
	}
}

// UserColor returns a color for the provided username. It will choose
// a new color if the username is new.
func (t *Theme) UserColor(username string) UserColorData {
	if c, ok := t.UserColors[username]; ok {
		return c
	}
	r, g, b := colorful.FastHappyColor().Clamped().RGB255()
	uc := UserColorData{
		NRGBA: color.NRGBA{R: r, G: g, B: b, A: 255},
	}
	uc.Luminance = chatmaterial.Luminance(uc.NRGBA)
	t.UserColors[username] = uc
	return uc
}
