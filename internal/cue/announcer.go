package cue

import (
	"fmt"

	"fyne.io/fyne/v2"

	"intervalist/internal/core/workout"
)

// Announcer posts desktop notifications on phase changes.
type Announcer struct {
	app fyne.App
}

// NewAnnouncer creates an Announcer backed by the Fyne app.
func NewAnnouncer(app fyne.App) *Announcer {
	return &Announcer{app: app}
}

// PhaseStarted implements workout.Notifier.
func (announcer *Announcer) PhaseStarted(phase workout.Phase, currentSet, totalSets int) {
	var content string
	switch phase {
	case workout.PhaseWork, workout.PhaseRest:
		content = fmt.Sprintf("%s — set %d of %d", phase, currentSet, totalSets)
	default:
		content = phase.String()
	}
	announcer.app.SendNotification(fyne.NewNotification("Intervalist", content))
}

// WorkoutCompleted implements workout.Notifier.
func (announcer *Announcer) WorkoutCompleted() {
	announcer.app.SendNotification(fyne.NewNotification("Intervalist", "Workout complete, well done!"))
}
