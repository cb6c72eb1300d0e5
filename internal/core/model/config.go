package model

import (
	"fmt"
	"time"
)

// Bounds for workout phase durations. All values are whole seconds.
const (
	MinPhaseDuration = time.Second
	MaxPhaseDuration = time.Hour
	MaxCooldown      = time.Hour
)

// WorkoutConfig defines one interval workout. It is immutable once a run
// starts. A Cooldown of zero means the workout has no cooldown phase.
type WorkoutConfig struct {
	Prep     time.Duration
	Sets     int
	Work     time.Duration
	Rest     time.Duration
	Cooldown time.Duration
}

// ValidationError reports the first configuration field that violates its
// bounds. The message names the field so forms can display it directly.
type ValidationError struct {
	Field  string
	Reason string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", err.Field, err.Reason)
}

// Validate checks a candidate configuration and returns the normalized
// config. Fields are checked in a fixed order and the first violation wins.
// Durations are truncated to whole seconds.
func Validate(candidate WorkoutConfig) (WorkoutConfig, error) {
	config := WorkoutConfig{
		Prep:     candidate.Prep.Truncate(time.Second),
		Sets:     candidate.Sets,
		Work:     candidate.Work.Truncate(time.Second),
		Rest:     candidate.Rest.Truncate(time.Second),
		Cooldown: candidate.Cooldown.Truncate(time.Second),
	}

	if config.Prep < MinPhaseDuration || config.Prep > MaxPhaseDuration {
		return WorkoutConfig{}, boundsError("Prep", MinPhaseDuration, MaxPhaseDuration)
	}
	if config.Sets < 1 {
		return WorkoutConfig{}, &ValidationError{Field: "Sets", Reason: "must be at least 1"}
	}
	if config.Work < MinPhaseDuration || config.Work > MaxPhaseDuration {
		return WorkoutConfig{}, boundsError("Work", MinPhaseDuration, MaxPhaseDuration)
	}
	if config.Rest < MinPhaseDuration || config.Rest > MaxPhaseDuration {
		return WorkoutConfig{}, boundsError("Rest", MinPhaseDuration, MaxPhaseDuration)
	}
	if config.Cooldown < 0 || config.Cooldown > MaxCooldown {
		return WorkoutConfig{}, boundsError("Cooldown", 0, MaxCooldown)
	}

	return config, nil
}

// Total returns the full unpaused running time of the workout.
func (config WorkoutConfig) Total() time.Duration {
	total := config.Prep + time.Duration(config.Sets)*config.Work + config.Cooldown
	if config.Sets > 1 {
		total += time.Duration(config.Sets-1) * config.Rest
	}
	return total
}

func boundsError(field string, min, max time.Duration) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("must be between %s and %s", min, max),
	}
}
