package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	// Mid-grey surround so neither dark nor light pictures blend into it.
	viewerBackground = color.NRGBA{0x80, 0x80, 0x80, 0xff}
	viewerButton     = color.NRGBA{0x6c, 0x6c, 0x6c, 0xff}
	viewerForeground = color.NRGBA{0xf4, 0xf4, 0xf4, 0xff}
	viewerSeparator  = color.NRGBA{0x5a, 0x5a, 0x5a, 0xff}
)

// viewerTheme paints the chrome in neutral greys for both variants and
// defers everything else to the default theme.
type viewerTheme struct{}

func (viewerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return viewerBackground
	case theme.ColorNameButton:
		return viewerButton
	case theme.ColorNameForeground:
		return viewerForeground
	case theme.ColorNameSeparator:
		return viewerSeparator
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (viewerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (viewerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (viewerTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
