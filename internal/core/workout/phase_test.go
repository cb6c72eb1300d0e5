package workout

import (
	"testing"
	"time"

	"intervalist/internal/core/model"
)

func TestNextPhase(t *testing.T) {
	config := model.WorkoutConfig{
		Prep: 10 * time.Second,
		Sets: 3,
		Work: 20 * time.Second,
		Rest: 10 * time.Second,
	}
	withCooldown := config
	withCooldown.Cooldown = 30 * time.Second

	tests := []struct {
		name  string
		state State
		want  Phase
	}{
		{"prep to work", State{Phase: PhasePrep, CurrentSet: 1, Config: config}, PhaseWork},
		{"work to rest mid run", State{Phase: PhaseWork, CurrentSet: 1, Config: config}, PhaseRest},
		{"work to rest on penultimate set", State{Phase: PhaseWork, CurrentSet: 2, Config: config}, PhaseRest},
		{"final work to complete without cooldown", State{Phase: PhaseWork, CurrentSet: 3, Config: config}, PhaseComplete},
		{"final work to cooldown", State{Phase: PhaseWork, CurrentSet: 3, Config: withCooldown}, PhaseCooldown},
		{"rest to work", State{Phase: PhaseRest, CurrentSet: 1, Config: config}, PhaseWork},
		{"cooldown to complete", State{Phase: PhaseCooldown, CurrentSet: 3, Config: withCooldown}, PhaseComplete},
		{"complete stays complete", State{Phase: PhaseComplete, CurrentSet: 3, Config: config}, PhaseComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextPhase(tt.state); got != tt.want {
				t.Errorf("NextPhase = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhaseDuration(t *testing.T) {
	config := model.WorkoutConfig{
		Prep:     5 * time.Second,
		Sets:     2,
		Work:     40 * time.Second,
		Rest:     15 * time.Second,
		Cooldown: 60 * time.Second,
	}

	tests := []struct {
		phase Phase
		want  time.Duration
	}{
		{PhasePrep, 5 * time.Second},
		{PhaseWork, 40 * time.Second},
		{PhaseRest, 15 * time.Second},
		{PhaseCooldown, 60 * time.Second},
		{PhaseComplete, 0},
	}

	for _, tt := range tests {
		if got := PhaseDuration(tt.phase, config); got != tt.want {
			t.Errorf("PhaseDuration(%v) = %s, want %s", tt.phase, got, tt.want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	labels := map[Phase]string{
		PhasePrep:     "Get Ready",
		PhaseWork:     "Work",
		PhaseRest:     "Rest",
		PhaseCooldown: "Cooldown",
		PhaseComplete: "Complete",
	}
	for phase, want := range labels {
		if got := phase.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", phase, got, want)
		}
	}
}
