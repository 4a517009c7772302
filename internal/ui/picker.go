package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/desktop-groups/internal/model"
)

// Action is the user's decision in the picker
type Action int

const (
	ActionCancel Action = iota
	ActionLaunch
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionCancel:
		return "cancel"
	case ActionLaunch:
		return "launch"
	default:
		return "unknown"
	}
}

// Result is reported once when the user confirms or cancels.
// Item is set only for ActionLaunch.
type Result struct {
	Action Action
	Item   *model.Item
}

// Picker shows a group and lets the user choose one of its items
type Picker struct {
	// OnResult is called once with the user's decision
	OnResult func(Result)

	group        *model.Group
	localization *Localization
	groupIcon    fyne.Resource
	itemIcons    []fyne.Resource
	selected     int
	suspended    bool
	done         bool

	title       *canvas.Text
	list        *widget.List
	continueBtn *widget.Button
	cancelBtn   *widget.Button
	content     fyne.CanvasObject
}

// NewPicker builds the picker for group. Icons are loaded once, up front.
func NewPicker(group *model.Group, localization *Localization, icons IconLoader) *Picker {
	if icons == nil {
		icons = LoadIcon
	}

	p := &Picker{
		group:        group,
		localization: localization,
		groupIcon:    icons(group.Icon),
		itemIcons:    make([]fyne.Resource, group.Len()),
		selected:     -1,
	}
	for i, item := range group.Items {
		p.itemIcons[i] = icons(item.Icon)
	}

	p.setupUI()
	return p
}

func (p *Picker) setupUI() {
	p.title = canvas.NewText(p.titleText(), theme.Color(theme.ColorNameForeground))
	p.title.TextSize = TitleTextSize
	p.title.TextStyle = fyne.TextStyle{Bold: true}

	var header fyne.CanvasObject
	if p.groupIcon != nil {
		header = container.NewHBox(newIconImage(p.groupIcon, GroupIconSize), p.title)
	} else {
		header = container.NewHBox(p.title)
	}

	p.continueBtn = widget.NewButton(p.localization.GetText(KeyContinue), p.Confirm)
	p.continueBtn.Importance = widget.HighImportance
	p.cancelBtn = widget.NewButton(p.localization.GetText(KeyCancel), p.Cancel)
	buttons := container.NewGridWithColumns(2, p.continueBtn, p.cancelBtn)

	var center fyne.CanvasObject
	if p.group.IsEmpty() {
		// Nothing to launch
		p.continueBtn.Disable()
		empty := widget.NewLabel(p.localization.GetText(KeyNoItems))
		empty.Alignment = fyne.TextAlignCenter
		center = container.NewCenter(empty)
	} else {
		p.list = widget.NewList(
			p.group.Len,
			p.createItemRow,
			p.updateItemRow,
		)
		p.list.OnSelected = func(id widget.ListItemID) {
			p.selected = id
		}
		p.list.Select(0)
		center = p.list
	}

	p.content = container.NewPadded(container.NewBorder(
		container.NewPadded(header), // top
		buttons,                     // bottom
		nil,                         // left
		nil,                         // right
		center,                      // center
	))
}

func (p *Picker) titleText() string {
	name := p.group.Name
	if strings.TrimSpace(name) == "" {
		name = p.localization.GetText(KeyUntitled)
	}
	return strings.ToUpper(name)
}

func (p *Picker) createItemRow() fyne.CanvasObject {
	return container.NewBorder(nil, nil, newIconImage(nil, ItemIconSize), nil, widget.NewLabel(""))
}

func (p *Picker) updateItemRow(id widget.ListItemID, obj fyne.CanvasObject) {
	item := p.group.ItemAt(id)
	if item == nil {
		return
	}

	row := obj.(*fyne.Container)
	// Border layout keeps the center object first
	label := row.Objects[0].(*widget.Label)
	img := row.Objects[1].(*canvas.Image)

	label.SetText(item.Name)
	img.Resource = p.itemIcons[id]
	img.Refresh()
}

// Content returns the root canvas object of the picker
func (p *Picker) Content() fyne.CanvasObject {
	return p.content
}

// Group returns the group shown by the picker
func (p *Picker) Group() *model.Group {
	return p.group
}

// GroupIcon returns the loaded group icon, nil when the group has none
func (p *Picker) GroupIcon() fyne.Resource {
	return p.groupIcon
}

// Title returns the displayed group title
func (p *Picker) Title() string {
	return p.title.Text
}

// Select marks the item at index i as the one to launch
func (p *Picker) Select(i int) {
	if p.list == nil || i < 0 || i >= p.group.Len() {
		return
	}
	p.list.Select(i)
}

// Selected returns the selected item, nil when nothing is selected
func (p *Picker) Selected() *model.Item {
	if p.selected < 0 {
		return nil
	}
	return p.group.ItemAt(p.selected)
}

// CanContinue reports whether Continue is enabled
func (p *Picker) CanContinue() bool {
	return !p.continueBtn.Disabled()
}

// Confirm reports ActionLaunch with the selected item.
// Without a selection nothing is reported.
func (p *Picker) Confirm() {
	item := p.Selected()
	if item == nil {
		return
	}
	p.report(Result{Action: ActionLaunch, Item: item})
}

// Cancel reports ActionCancel
func (p *Picker) Cancel() {
	p.report(Result{Action: ActionCancel})
}

func (p *Picker) report(result Result) {
	if p.done {
		return
	}
	p.done = true
	p.continueBtn.Disable()
	p.cancelBtn.Disable()

	if p.OnResult != nil {
		p.OnResult(result)
	}
}

// SetSuspended turns keyboard handling off while another dialog owns the window
func (p *Picker) SetSuspended(suspended bool) {
	p.suspended = suspended
}

// Suspended reports whether keyboard handling is off
func (p *Picker) Suspended() bool {
	return p.suspended
}

// TypedKey handles keyboard shortcuts: Enter confirms, Escape cancels,
// arrow keys move the selection. Keys are ignored while suspended.
func (p *Picker) TypedKey(ev *fyne.KeyEvent) {
	if p.suspended {
		return
	}
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		p.Confirm()
	case fyne.KeyEscape:
		p.Cancel()
	case fyne.KeyDown:
		p.Select(p.selected + 1)
	case fyne.KeyUp:
		p.Select(p.selected - 1)
	}
}

// SetupWindow shows the picker in w: fixed size, centered, titled after the
// group. Closing the window counts as Cancel.
func SetupWindow(w fyne.Window, p *Picker, icon fyne.Resource, size fyne.Size) {
	w.SetTitle(p.Group().Name)
	if icon != nil {
		w.SetIcon(icon)
	}
	w.SetContent(p.Content())
	w.Resize(size)
	w.SetFixedSize(true)
	w.CenterOnScreen()
	w.Canvas().SetOnTypedKey(p.TypedKey)
	w.SetCloseIntercept(p.Cancel)
}
