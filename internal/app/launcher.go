package app

import (
	"errors"
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/ytget/desktop-groups/internal/cli"
	"github.com/ytget/desktop-groups/internal/config"
	"github.com/ytget/desktop-groups/internal/loader"
	"github.com/ytget/desktop-groups/internal/platform"
	"github.com/ytget/desktop-groups/internal/ui"
)

// AppID identifies the launcher's preferences store
const AppID = "io.github.ytget.desktop-groups"

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Launcher wires the picker to the loader and the spawner
type Launcher struct {
	app       fyne.App
	settings  *config.Settings
	resources ui.ResourceResolver
	spawner   platform.Spawner
	icons     ui.IconLoader
	stderr    io.Writer

	picker     *ui.Picker
	windowIcon fyne.Resource
	exitCode   int
	finished   bool
}

// NewLauncher creates a launcher whose windows and preferences belong to a.
// Failures are reported to stderr.
func NewLauncher(a fyne.App, resources ui.ResourceResolver, spawner platform.Spawner, stderr io.Writer) *Launcher {
	return &Launcher{
		app:       a,
		settings:  config.NewSettings(a),
		resources: resources,
		spawner:   spawner,
		icons:     ui.LoadIcon,
		stderr:    stderr,
	}
}

// SetIconLoader replaces how icon references are loaded
func (l *Launcher) SetIconLoader(icons ui.IconLoader) {
	l.icons = icons
}

// Open loads the group file at path and builds its picker window.
// themePath overrides the stored theme when not empty.
// Load errors are returned unchanged.
func (l *Launcher) Open(path, themePath string) (fyne.Window, error) {
	group, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded group %q with %d items from %s", group.Name, group.Len(), path)

	if themePath == "" {
		themePath = l.settings.GetThemePath()
	}
	l.app.Settings().SetTheme(ui.LoadThemeFile(themePath))

	localization := l.resources.Localization(l.settings.GetLanguage())
	l.picker = ui.NewPicker(group, localization, l.icons)
	l.picker.OnResult = l.handleResult

	l.windowIcon = l.picker.GroupIcon()
	if l.windowIcon == nil {
		l.windowIcon = l.resources.DefaultIcon()
	}

	w := l.app.NewWindow(group.Name)
	ui.SetupWindow(w, l.picker, l.windowIcon, l.settings.GetWindowSize())
	ui.BindSettingsShortcut(w, l.picker, func() *ui.SettingsDialog {
		return ui.NewSettingsDialog(l.settings, l.resources.Languages(), localization, w)
	})
	return w, nil
}

// Picker returns the picker of the opened group, nil before Open
func (l *Launcher) Picker() *ui.Picker {
	return l.picker
}

// WindowIcon returns the icon given to the picker window: the group icon,
// or the bundled default when the group has none
func (l *Launcher) WindowIcon() fyne.Resource {
	return l.windowIcon
}

// handleResult starts the chosen item, then ends the application
func (l *Launcher) handleResult(result ui.Result) {
	if l.finished {
		return
	}
	l.finished = true

	switch result.Action {
	case ui.ActionLaunch:
		if err := l.spawner.Spawn(result.Item.Command); err != nil {
			fmt.Fprintf(l.stderr, "Error: failed to launch %s: %v\n", result.Item.Name, err)
			l.exitCode = ExitFailure
		}
	case ui.ActionCancel:
		log.Printf("Cancelled")
	}

	l.app.Quit()
}

// ExitCode returns the exit code decided so far
func (l *Launcher) ExitCode() int {
	return l.exitCode
}

// Run opens the group file and runs the UI until the user decides
func (l *Launcher) Run(opts *cli.Options) int {
	w, err := l.Open(opts.GroupFile, opts.ThemePath)
	if err != nil {
		fmt.Fprintf(l.stderr, "Error: %v\n", err)
		return ExitFailure
	}

	w.ShowAndRun()
	return l.exitCode
}

// Run parses args and runs the launcher, returning the process exit code
func Run(args []string, stdout, stderr io.Writer) int {
	opts, exit, err := cli.Parse(args, stdout)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(stderr, "%s: error: %s\n", cli.ProgramName, exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}
	if exit {
		return ExitOK
	}

	resources, err := ui.NewBundledResources()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}
	if dir, err := platform.UserLanguageDir(); err == nil {
		resources.LoadLanguagePacks(dir)
	}

	a := fyneapp.NewWithID(AppID)
	return NewLauncher(a, resources, platform.NewExecSpawner(), stderr).Run(opts)
}
