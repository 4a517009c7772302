package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyThemePath    = "theme_path"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultThemePath    = ""
	DefaultWindowWidth  = 500
	DefaultWindowHeight = 800
)

// Window size limits
const (
	MinWindowWidth  = 320
	MinWindowHeight = 240
	MaxWindowWidth  = 3840
	MaxWindowHeight = 2160
)

// Settings manages launcher configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language; "system" follows the operating system
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetThemePath returns the stored theme file, empty for the built-in theme
func (s *Settings) GetThemePath() string {
	return s.app.Preferences().StringWithFallback(KeyThemePath, DefaultThemePath)
}

// SetThemePath sets the theme file used when no --theme flag is given
func (s *Settings) SetThemePath(path string) {
	s.app.Preferences().SetString(KeyThemePath, path)
}

// GetWindowSize returns the picker window size
func (s *Settings) GetWindowSize() fyne.Size {
	width := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return fyne.NewSize(float32(clamp(width, MinWindowWidth, MaxWindowWidth)),
		float32(clamp(height, MinWindowHeight, MaxWindowHeight)))
}

// SetWindowSize sets the picker window size
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, clamp(width, MinWindowWidth, MaxWindowWidth))
	s.app.Preferences().SetInt(KeyWindowHeight, clamp(height, MinWindowHeight, MaxWindowHeight))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
