package platform

import (
	"log"
	"strings"

	"github.com/jeandeaual/go-locale"
)

// DefaultLanguage is used when the system language cannot be determined
const DefaultLanguage = "en"

// SystemLanguage returns the base language code of the user's UI language,
// e.g. "de" for de_DE.UTF-8, falling back to DefaultLanguage
func SystemLanguage() string {
	lang, err := locale.GetLanguage()
	if err != nil {
		log.Printf("Failed to detect system language: %v", err)
		return DefaultLanguage
	}

	base := BaseLanguage(lang)
	if base == "" {
		return DefaultLanguage
	}
	return base
}

// BaseLanguage strips region, encoding and modifier from a locale code:
// "pt-BR" and "pt_BR.UTF-8@euro" both become "pt"
func BaseLanguage(code string) string {
	code = strings.TrimSpace(code)
	if i := strings.IndexAny(code, ".@"); i >= 0 {
		code = code[:i]
	}
	if i := strings.IndexAny(code, "_-"); i >= 0 {
		code = code[:i]
	}
	return strings.ToLower(code)
}
