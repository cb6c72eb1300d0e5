// Package setup provides the workout configuration form.
package setup

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"intervalist/internal/core/model"
	"intervalist/internal/storage"
)

// Window handles the workout setup UI.
type Window struct {
	window     fyne.Window
	library    storage.Library
	onStart    func(model.WorkoutConfig)
	onSave     func(storage.Library)
	prepEntry  *widget.Entry
	setsEntry  *widget.Entry
	workEntry  *widget.Entry
	restEntry  *widget.Entry
	coolEntry  *widget.Entry
	nameEntry  *widget.Entry
	presetPick *widget.Select
	errorLabel *widget.Label
}

// New creates a setup window. onStart receives the validated config when
// the user begins a workout; onSave receives the updated library whenever a
// preset is added.
func New(app fyne.App, library storage.Library, onStart func(model.WorkoutConfig), onSave func(storage.Library)) *Window {
	window := app.NewWindow("Intervalist Setup")
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	setup := &Window{
		window:     window,
		library:    library,
		onStart:    onStart,
		onSave:     onSave,
		prepEntry:  widget.NewEntry(),
		setsEntry:  widget.NewEntry(),
		workEntry:  widget.NewEntry(),
		restEntry:  widget.NewEntry(),
		coolEntry:  widget.NewEntry(),
		nameEntry:  widget.NewEntry(),
		errorLabel: widget.NewLabel(""),
	}
	setup.errorLabel.Importance = widget.DangerImportance
	setup.nameEntry.SetPlaceHolder("Preset name")

	setup.presetPick = widget.NewSelect(setup.presetNames(), func(name string) {
		for _, preset := range setup.library.Presets {
			if preset.Name == name {
				setup.fillForm(preset)
				return
			}
		}
	})

	startButton := widget.NewButton("Start Workout", setup.handleStart)
	startButton.Importance = widget.HighImportance
	saveButton := widget.NewButton("Save Preset", setup.handleSavePreset)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Workout", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Preparation"), setup.prepEntry, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Sets"), setup.setsEntry),
		container.NewHBox(widget.NewLabel("Work"), setup.workEntry, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Rest"), setup.restEntry, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Cooldown"), setup.coolEntry, widget.NewLabel("sec (0 for none)")),
		widget.NewLabelWithStyle("Presets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		setup.presetPick,
		container.NewHBox(setup.nameEntry, saveButton),
		setup.errorLabel,
	)

	buttons := container.NewHBox(layout.NewSpacer(), startButton)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 460))

	setup.fillForm(library.Last)
	return setup
}

// Show displays the setup window.
func (setup *Window) Show() {
	setup.window.Show()
	setup.window.RequestFocus()
}

// Hide conceals the setup window.
func (setup *Window) Hide() {
	setup.window.Hide()
}

func (setup *Window) handleStart() {
	config, err := setup.readForm()
	if err != nil {
		setup.errorLabel.SetText(err.Error())
		return
	}
	setup.errorLabel.SetText("")

	setup.library.Last = storage.PresetFromConfig(setup.library.Last.Name, config)
	if setup.onSave != nil {
		setup.onSave(setup.library)
	}
	if setup.onStart != nil {
		setup.onStart(config)
	}
	setup.window.Hide()
}

func (setup *Window) handleSavePreset() {
	config, err := setup.readForm()
	if err != nil {
		setup.errorLabel.SetText(err.Error())
		return
	}
	name := setup.nameEntry.Text
	if name == "" {
		setup.errorLabel.SetText("Preset name must not be empty")
		return
	}
	setup.errorLabel.SetText("")

	preset := storage.PresetFromConfig(name, config)
	replaced := false
	for i, existing := range setup.library.Presets {
		if existing.Name == name {
			setup.library.Presets[i] = preset
			replaced = true
			break
		}
	}
	if !replaced {
		setup.library.Presets = append(setup.library.Presets, preset)
	}

	setup.presetPick.Options = setup.presetNames()
	setup.presetPick.SetSelected(name)
	if setup.onSave != nil {
		setup.onSave(setup.library)
	}
}

// readForm parses the entries and runs the bounds check. The cooldown entry
// may be left empty, which means no cooldown.
func (setup *Window) readForm() (model.WorkoutConfig, error) {
	prep, err := parseSeconds("Prep", setup.prepEntry.Text)
	if err != nil {
		return model.WorkoutConfig{}, err
	}
	sets, err := parseCount("Sets", setup.setsEntry.Text)
	if err != nil {
		return model.WorkoutConfig{}, err
	}
	work, err := parseSeconds("Work", setup.workEntry.Text)
	if err != nil {
		return model.WorkoutConfig{}, err
	}
	rest, err := parseSeconds("Rest", setup.restEntry.Text)
	if err != nil {
		return model.WorkoutConfig{}, err
	}
	cooldown := time.Duration(0)
	if setup.coolEntry.Text != "" {
		cooldown, err = parseSeconds("Cooldown", setup.coolEntry.Text)
		if err != nil {
			return model.WorkoutConfig{}, err
		}
	}

	return model.Validate(model.WorkoutConfig{
		Prep:     prep,
		Sets:     sets,
		Work:     work,
		Rest:     rest,
		Cooldown: cooldown,
	})
}

func (setup *Window) fillForm(preset storage.Preset) {
	setup.prepEntry.SetText(strconv.Itoa(preset.PrepSeconds))
	setup.setsEntry.SetText(strconv.Itoa(preset.Sets))
	setup.workEntry.SetText(strconv.Itoa(preset.WorkSeconds))
	setup.restEntry.SetText(strconv.Itoa(preset.RestSeconds))
	setup.coolEntry.SetText(strconv.Itoa(preset.CooldownSeconds))
}

func (setup *Window) presetNames() []string {
	names := make([]string, 0, len(setup.library.Presets))
	for _, preset := range setup.library.Presets {
		names = append(names, preset.Name)
	}
	return names
}

func parseSeconds(field, value string) (time.Duration, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number of seconds", field)
	}
	return time.Duration(parsed) * time.Second, nil
}

func parseCount(field, value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", field)
	}
	return parsed, nil
}
