package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/desktop-groups/internal/config"
)

// SettingsShortcut opens the settings dialog (Ctrl+, or Cmd+,)
var SettingsShortcut = &desktop.CustomShortcut{
	KeyName:  fyne.KeyComma,
	Modifier: fyne.KeyModifierShortcutDefault,
}

// SettingsDialog edits the stored launcher settings. Changes apply the next
// time a group is opened.
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	languages []string
	labels    map[string]string

	// UI components
	languageSelect *widget.Select
	themeEntry     *widget.Entry
	widthEntry     *widget.Entry
	heightEntry    *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, languages []string, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		languages:    append([]string{SystemLanguage}, languages...),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	// Language selection, "system" shown by its localized name
	sd.labels = make(map[string]string, len(sd.languages))
	options := make([]string, 0, len(sd.languages))
	for _, code := range sd.languages {
		label := code
		if code == SystemLanguage {
			label = text(KeySystemLanguage)
		}
		sd.labels[code] = label
		options = append(options, label)
	}
	sd.languageSelect = widget.NewSelect(options, nil)

	// Theme file selection
	sd.themeEntry = widget.NewEntry()
	sd.themeEntry.SetPlaceHolder("theme.json")
	browseBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseTheme)
	themeRow := container.NewBorder(nil, nil, nil, browseBtn, sd.themeEntry)

	// Window size
	sd.widthEntry = widget.NewEntry()
	sd.heightEntry = widget.NewEntry()
	sizeRow := container.NewGridWithColumns(2, sd.widthEntry, sd.heightEntry)

	form := container.NewVBox(
		widget.NewLabel(text(KeyLanguage)),
		sd.languageSelect,

		widget.NewLabel(text(KeyTheme)),
		themeRow,

		widget.NewLabel(text(KeyWindowSize)),
		sizeRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(WindowWidth-40, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	if label, ok := sd.labels[sd.settings.GetLanguage()]; ok {
		sd.languageSelect.SetSelected(label)
	}
	sd.themeEntry.SetText(sd.settings.GetThemePath())

	size := sd.settings.GetWindowSize()
	sd.widthEntry.SetText(strconv.Itoa(int(size.Width)))
	sd.heightEntry.SetText(strconv.Itoa(int(size.Height)))
}

// onBrowseTheme picks a theme file
func (sd *SettingsDialog) onBrowseTheme() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.themeEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// selectedLanguage maps the selected label back to its language code
func (sd *SettingsDialog) selectedLanguage() string {
	for code, label := range sd.labels {
		if label == sd.languageSelect.Selected {
			return code
		}
	}
	return ""
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save language
	if lang := sd.selectedLanguage(); lang != "" {
		sd.settings.SetLanguage(lang)
	}

	// Save theme; empty selects the built-in theme
	sd.settings.SetThemePath(sd.themeEntry.Text)

	// Validate and save window size
	width, errW := strconv.Atoi(sd.widthEntry.Text)
	height, errH := strconv.Atoi(sd.heightEntry.Text)
	if errW == nil && errH == nil {
		sd.settings.SetWindowSize(width, height)
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// SetOnClosed runs closed after the dialog is saved or dismissed
func (sd *SettingsDialog) SetOnClosed(closed func()) {
	sd.dialog.SetOnClosed(closed)
}

// ShowSettings shows sd over the picker. The picker ignores keys until the
// dialog closes, so Escape dismisses the dialog and not the launcher.
func ShowSettings(p *Picker, sd *SettingsDialog) {
	p.SetSuspended(true)
	sd.SetOnClosed(func() {
		p.SetSuspended(false)
	})
	sd.Show()
}

// BindSettingsShortcut opens a fresh settings dialog on SettingsShortcut.
// Only one dialog is open at a time.
func BindSettingsShortcut(w fyne.Window, p *Picker, open func() *SettingsDialog) {
	w.Canvas().AddShortcut(SettingsShortcut, func(fyne.Shortcut) {
		if p.Suspended() {
			return
		}
		ShowSettings(p, open())
	})
}
