package ui

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Text keys for localization
const (
	KeyContinue = "gui.continue"
	KeyCancel   = "gui.cancel"
	KeyNoItems  = "gui.no_items"
	KeyUntitled = "gui.untitled"

	KeySettings       = "gui.settings"
	KeyLanguage       = "gui.language"
	KeySystemLanguage = "gui.system_language"
	KeyTheme          = "gui.theme"
	KeyWindowSize     = "gui.window_size"
	KeyBrowse         = "gui.browse"
	KeySave           = "gui.save"
	KeySettingsSaved  = "gui.settings_saved"
)

// DefaultLanguage is used when no table exists for the requested language
const DefaultLanguage = "en"

// Localization looks up UI texts for one language
type Localization struct {
	language  string
	localizer *i18n.Localizer
}

func newLocalization(bundle *i18n.Bundle, lang string) *Localization {
	return &Localization{
		language:  lang,
		localizer: i18n.NewLocalizer(bundle, lang, DefaultLanguage),
	}
}

// GetText returns localized text for the given key.
// Missing texts fall back to English, then to the key itself.
func (l *Localization) GetText(key string) string {
	// A fallback message is returned together with a not-found error
	msg, _ := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if msg != "" {
		return msg
	}
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.language
}
