// Package assets holds the files bundled into the launcher binary: the
// default window icon and the built-in language tables.
package assets

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

// DefaultIconName is the resource name of the bundled icon
const DefaultIconName = "desktopgroups.svg"

// LangDir is the directory of the language tables inside Lang
const LangDir = "lang"

//go:embed img/desktopgroups.svg
var defaultIcon []byte

// Lang contains one <code>.json table per bundled language
//
//go:embed lang/*.json
var Lang embed.FS

// DefaultIcon returns the bundled icon used when a group has none
func DefaultIcon() []byte {
	return defaultIcon
}

// LanguageFiles lists the bundled language tables
func LanguageFiles() ([]string, error) {
	return fs.Glob(Lang, LangDir+"/*.json")
}

// LanguageCode returns the language code of a table path, e.g. "de" for
// "lang/de.json"
func LanguageCode(file string) string {
	base := path.Base(file)
	return strings.TrimSuffix(base, path.Ext(base))
}
