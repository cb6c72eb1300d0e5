// Package session renders the live countdown for a running workout.
package session

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"intervalist/internal/core/workout"
	"intervalist/internal/ui/pulse"
)

// Callbacks defines session control handlers.
type Callbacks struct {
	OnTogglePause func()
	OnSkip        func()
	OnRestart     func()
	OnNewWorkout  func()
}

// Window shows the countdown, phase and set progress of the active run.
type Window struct {
	window      fyne.Window
	callbacks   Callbacks
	phaseLabel  *canvas.Text
	timerLabel  *canvas.Text
	setLabel    *widget.Label
	progress    *widget.ProgressBar
	pauseButton *widget.Button
	skipButton  *widget.Button
	flasher     *pulse.Engine
	highlighted bool
	phaseColor  color.Color
}

const flashColorAlpha = 255

// New creates the session window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Intervalist")
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	phaseLabel := canvas.NewText("Get Ready", phaseColor(workout.PhasePrep))
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	phaseLabel.TextSize = 28

	timerLabel := canvas.NewText("--:--", color.White)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 64

	setLabel := widget.NewLabel("")
	setLabel.Alignment = fyne.TextAlignCenter

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	pauseButton := widget.NewButton("Pause", nil)
	skipButton := widget.NewButton("Skip", nil)
	restartButton := widget.NewButton("Restart", nil)
	newWorkoutButton := widget.NewButton("New Workout", nil)

	content := container.NewVBox(
		phaseLabel,
		timerLabel,
		setLabel,
		progress,
		container.NewGridWithColumns(4, pauseButton, skipButton, restartButton, newWorkoutButton),
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(420, 320))

	session := &Window{
		window:      window,
		callbacks:   callbacks,
		phaseLabel:  phaseLabel,
		timerLabel:  timerLabel,
		setLabel:    setLabel,
		progress:    progress,
		pauseButton: pauseButton,
		skipButton:  skipButton,
		phaseColor:  phaseColor(workout.PhasePrep),
	}
	session.flasher = pulse.New(pulse.DefaultConfig(), session.setHighlight)

	pauseButton.OnTapped = func() {
		if session.callbacks.OnTogglePause != nil {
			session.callbacks.OnTogglePause()
		}
	}
	skipButton.OnTapped = func() {
		if session.callbacks.OnSkip != nil {
			session.callbacks.OnSkip()
		}
	}
	restartButton.OnTapped = func() {
		if session.callbacks.OnRestart != nil {
			session.callbacks.OnRestart()
		}
	}
	newWorkoutButton.OnTapped = func() {
		if session.callbacks.OnNewWorkout != nil {
			session.callbacks.OnNewWorkout()
		}
	}

	return session
}

// Show displays the session window.
func (session *Window) Show() {
	session.window.Show()
	session.window.RequestFocus()
}

// Hide conceals the session window.
func (session *Window) Hide() {
	session.flasher.Stop()
	session.window.Hide()
}

// SetState redraws the window from an engine snapshot. Safe to call from
// any goroutine.
func (session *Window) SetState(state workout.State) {
	fyne.Do(func() {
		session.applyState(state)
	})
}

// FlashPhase announces a phase change with a short highlight flash.
func (session *Window) FlashPhase() {
	session.flasher.Flash(context.Background())
}

func (session *Window) applyState(state workout.State) {
	session.phaseColor = phaseColor(state.Phase)
	if !session.highlighted {
		session.phaseLabel.Color = session.phaseColor
	}
	session.phaseLabel.Text = state.Phase.String()
	session.phaseLabel.Refresh()

	session.timerLabel.Text = formatDuration(state.TimeRemaining)
	session.timerLabel.Refresh()

	switch state.Phase {
	case workout.PhaseComplete:
		session.setLabel.SetText(fmt.Sprintf("%d sets done", state.Config.Sets))
	case workout.PhasePrep, workout.PhaseCooldown:
		session.setLabel.SetText(fmt.Sprintf("%d sets of %s work", state.Config.Sets, formatDuration(state.Config.Work)))
	default:
		session.setLabel.SetText(fmt.Sprintf("Set %d of %d", state.CurrentSet, state.Config.Sets))
	}

	if state.TotalTime > 0 {
		session.progress.SetValue(1 - float64(state.TimeRemaining)/float64(state.TotalTime))
	} else {
		session.progress.SetValue(1)
	}

	if state.Phase == workout.PhaseComplete {
		session.pauseButton.Disable()
		session.skipButton.Disable()
		return
	}
	session.pauseButton.Enable()
	session.skipButton.Enable()
	if state.Paused {
		session.pauseButton.SetText("Resume")
	} else {
		session.pauseButton.SetText("Pause")
	}
}

func (session *Window) setHighlight(lit bool) {
	fyne.Do(func() {
		session.highlighted = lit
		if lit {
			session.phaseLabel.Color = color.NRGBA{R: 255, G: 255, B: 255, A: flashColorAlpha}
		} else {
			session.phaseLabel.Color = session.phaseColor
		}
		session.phaseLabel.Refresh()
	})
}

func phaseColor(phase workout.Phase) color.Color {
	switch phase {
	case workout.PhaseWork:
		return color.NRGBA{R: 235, G: 94, B: 82, A: 255}
	case workout.PhaseRest:
		return color.NRGBA{R: 97, G: 201, B: 120, A: 255}
	case workout.PhaseCooldown:
		return color.NRGBA{R: 99, G: 155, B: 235, A: 255}
	case workout.PhaseComplete:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	default:
		return color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	}
}

func formatDuration(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
