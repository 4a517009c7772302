package ui

import (
	"image/color"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/desktop-groups/internal/platform"
)

// LauncherTheme is the built-in theme: compact spacing with a blue accent
type LauncherTheme struct{}

// NewLauncherTheme creates the built-in theme
func NewLauncherTheme() fyne.Theme {
	return &LauncherTheme{}
}

// Color returns theme colors
func (t *LauncherTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameSelection:
		if variant == theme.VariantDark {
			return color.RGBA{R: 25, G: 118, B: 210, A: 96}
		}
		return color.RGBA{R: 187, G: 222, B: 251, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *LauncherTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LauncherTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *LauncherTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // default 4
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return TitleTextSize
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

// LoadThemeFile reads a Fyne JSON theme. An empty path selects the built-in
// theme; an unreadable or invalid file is logged and the built-in theme is
// used instead.
func LoadThemeFile(path string) fyne.Theme {
	if path == "" {
		return NewLauncherTheme()
	}

	path = platform.ExpandPath(path)
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Failed to open theme %s: %v", path, err)
		return NewLauncherTheme()
	}
	defer f.Close()

	th, err := theme.FromJSONReader(f)
	if err != nil {
		log.Printf("Failed to load theme %s: %v", path, err)
		return NewLauncherTheme()
	}
	return th
}
