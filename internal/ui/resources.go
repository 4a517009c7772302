package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ytget/desktop-groups/internal/assets"
	"github.com/ytget/desktop-groups/internal/platform"
)

// ResourceResolver provides the bundled resources the picker falls back to
type ResourceResolver interface {
	// DefaultIcon returns the icon used when a group has none
	DefaultIcon() fyne.Resource
	// Localization returns the text table for a language code, falling
	// back to the default language when no table exists
	Localization(code string) *Localization
	// Languages returns the language codes with a text table
	Languages() []string
}

// Language pack file formats, by extension
var languagePackFormats = map[string]i18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
}

// BundledResources resolves resources embedded in the binary, extended by
// language packs from the user's config directory
type BundledResources struct {
	bundle    *i18n.Bundle
	languages map[string]bool
	icon      fyne.Resource
}

// NewBundledResources loads the bundled language tables
func NewBundledResources() (*BundledResources, error) {
	bundle := i18n.NewBundle(language.English)
	for format, fn := range languagePackFormats {
		bundle.RegisterUnmarshalFunc(format, fn)
	}

	r := &BundledResources{
		bundle:    bundle,
		languages: make(map[string]bool),
		icon:      fyne.NewStaticResource(assets.DefaultIconName, assets.DefaultIcon()),
	}

	files, err := assets.LanguageFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list language tables: %w", err)
	}
	for _, file := range files {
		mf, err := bundle.LoadMessageFileFS(assets.Lang, file)
		if err != nil {
			return nil, fmt.Errorf("failed to load language table %s: %w", file, err)
		}
		r.addLanguage(mf.Tag)
	}

	return r, nil
}

// LoadLanguagePacks loads every json, toml, yaml or yml language pack in dir.
// Packs are named after their language ("de.toml", "active.de.yaml") and
// override bundled texts. A missing directory is not an error; broken packs
// are logged and skipped. Returns the number of packs loaded.
func (r *BundledResources) LoadLanguagePacks(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read language pack directory %s: %v", dir, err)
		}
		return 0
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !isLanguagePack(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		mf, err := r.bundle.LoadMessageFile(path)
		if err != nil {
			log.Printf("Skipping language pack %s: %v", path, err)
			continue
		}
		r.addLanguage(mf.Tag)
		loaded++
	}
	return loaded
}

func isLanguagePack(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "json" {
		return true
	}
	_, ok := languagePackFormats[ext]
	return ok
}

func (r *BundledResources) addLanguage(tag language.Tag) {
	base, _ := tag.Base()
	r.languages[base.String()] = true
}

// DefaultIcon returns the bundled launcher icon
func (r *BundledResources) DefaultIcon() fyne.Resource {
	return r.icon
}

// Localization returns the texts for code. "system" and an empty code use
// the operating system language.
func (r *BundledResources) Localization(code string) *Localization {
	if code == "" || code == SystemLanguage {
		code = platform.SystemLanguage()
	}

	lang := platform.BaseLanguage(code)
	if !r.languages[lang] {
		log.Printf("No language table for %q, using %s", code, DefaultLanguage)
		lang = DefaultLanguage
	}

	return newLocalization(r.bundle, lang)
}

// Languages returns the available language codes, sorted
func (r *BundledResources) Languages() []string {
	langs := make([]string, 0, len(r.languages))
	for lang := range r.languages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
