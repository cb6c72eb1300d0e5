package workout

import (
	"time"

	"intervalist/internal/core/model"
)

// Phase identifies the current workout stage.
type Phase int

const (
	PhasePrep Phase = iota
	PhaseWork
	PhaseRest
	PhaseCooldown
	PhaseComplete
)

// String returns the display label for the phase.
func (phase Phase) String() string {
	switch phase {
	case PhasePrep:
		return "Get Ready"
	case PhaseWork:
		return "Work"
	case PhaseRest:
		return "Rest"
	case PhaseCooldown:
		return "Cooldown"
	case PhaseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// NextPhase maps the current state to the phase that follows it. Both the
// natural tick boundary and Skip resolve transitions through this one table,
// including the set counting rule handled by the engine.
func NextPhase(state State) Phase {
	switch state.Phase {
	case PhasePrep:
		return PhaseWork
	case PhaseWork:
		if state.CurrentSet < state.Config.Sets {
			return PhaseRest
		}
		if state.Config.Cooldown > 0 {
			return PhaseCooldown
		}
		return PhaseComplete
	case PhaseRest:
		return PhaseWork
	case PhaseCooldown:
		return PhaseComplete
	default:
		return PhaseComplete
	}
}

// PhaseDuration returns the configured length of a phase.
func PhaseDuration(phase Phase, config model.WorkoutConfig) time.Duration {
	switch phase {
	case PhasePrep:
		return config.Prep
	case PhaseWork:
		return config.Work
	case PhaseRest:
		return config.Rest
	case PhaseCooldown:
		return config.Cooldown
	default:
		return 0
	}
}
