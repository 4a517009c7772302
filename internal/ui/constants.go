package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/desktop-groups/internal/config"
)

// Window sizing, the stored settings default
const (
	WindowWidth  float32 = config.DefaultWindowWidth
	WindowHeight float32 = config.DefaultWindowHeight
)

// Icon sizing
const (
	GroupIconSize float32 = 32
	ItemIconSize  float32 = 24
)

// Title text size
const TitleTextSize float32 = 22

// DefaultWindowSize is the fixed picker window size
var DefaultWindowSize = fyne.NewSize(WindowWidth, WindowHeight)

// SystemLanguage selects the language configured in the operating system
const SystemLanguage = "system"
