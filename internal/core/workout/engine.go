package workout

import (
	"errors"
	"sync"
	"time"

	"intervalist/internal/core/model"
)

// ErrNotStarted indicates a control operation was invoked before Start.
var ErrNotStarted = errors.New("no active workout")

// State is a snapshot of the running workout. TimeRemaining never exceeds
// TotalTime, CurrentSet stays within [1, Config.Sets], and the Complete
// phase always carries TimeRemaining zero with Paused set.
type State struct {
	Phase         Phase
	CurrentSet    int
	TimeRemaining time.Duration
	TotalTime     time.Duration
	Paused        bool
	Config        model.WorkoutConfig
}

// Engine is the state machine that sequences workout phases. It owns the
// single mutable State; every operation mutates it under one mutex and
// returns a snapshot, so no caller can observe a half-applied transition.
// Ticks are delivered by an external source (see Driver); one tick equals
// one second of logical countdown regardless of wall-clock drift.
type Engine struct {
	mu           sync.Mutex
	state        State
	started      bool
	presenceHeld bool
	pending      []Event
	notifier     Notifier
	presence     Presence
}

// New creates an Engine. Nil ports default to no-ops.
func New(notifier Notifier, presence Presence) *Engine {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if presence == nil {
		presence = nopPresence{}
	}
	return &Engine{notifier: notifier, presence: presence}
}

// Start begins a fresh workout run from the Prep phase. The config must
// already be validated; the engine performs no bounds checking itself.
func (engine *Engine) Start(config model.WorkoutConfig) State {
	return engine.begin(config, false)
}

// StartPaused begins a fresh run that waits for Resume before counting down.
func (engine *Engine) StartPaused(config model.WorkoutConfig) State {
	return engine.begin(config, true)
}

func (engine *Engine) begin(config model.WorkoutConfig, paused bool) State {
	engine.mu.Lock()
	engine.started = true
	engine.state = State{
		Phase:         PhasePrep,
		CurrentSet:    1,
		TimeRemaining: config.Prep,
		TotalTime:     config.Prep,
		Paused:        paused,
		Config:        config,
	}
	engine.pending = append(engine.pending, Event{
		Kind:       EventPhaseStarted,
		Phase:      PhasePrep,
		CurrentSet: 1,
		TotalSets:  config.Sets,
	})
	return engine.finish()
}

// Tick advances the countdown by one logical second. It is a no-op while
// paused or complete; at a phase boundary it resolves the next phase and
// resets the countdown to that phase's duration.
func (engine *Engine) Tick() (State, error) {
	engine.mu.Lock()
	if !engine.started {
		engine.mu.Unlock()
		return State{}, ErrNotStarted
	}
	if engine.state.Paused || engine.state.Phase == PhaseComplete {
		return engine.finish(), nil
	}

	if engine.state.TimeRemaining > time.Second {
		engine.state.TimeRemaining -= time.Second
		return engine.finish(), nil
	}

	engine.advanceLocked()
	return engine.finish(), nil
}

// Pause freezes the countdown. Ticks arriving while paused have no effect.
func (engine *Engine) Pause() (State, error) {
	engine.mu.Lock()
	if !engine.started {
		engine.mu.Unlock()
		return State{}, ErrNotStarted
	}
	if engine.state.Phase != PhaseComplete {
		engine.state.Paused = true
	}
	return engine.finish(), nil
}

// Resume unfreezes the countdown. It is a no-op when not paused or complete.
func (engine *Engine) Resume() (State, error) {
	engine.mu.Lock()
	if !engine.started {
		engine.mu.Unlock()
		return State{}, ErrNotStarted
	}
	if engine.state.Phase != PhaseComplete {
		engine.state.Paused = false
	}
	return engine.finish(), nil
}

// Skip forces an immediate phase boundary using the same transition rule as
// a natural tick, set counting included. It works while paused and leaves
// the paused flag alone unless completion forces it.
func (engine *Engine) Skip() (State, error) {
	engine.mu.Lock()
	if !engine.started {
		engine.mu.Unlock()
		return State{}, ErrNotStarted
	}
	if engine.state.Phase != PhaseComplete {
		engine.advanceLocked()
	}
	return engine.finish(), nil
}

// Restart discards the current run and starts a fresh, unpaused one with
// the same configuration.
func (engine *Engine) Restart() (State, error) {
	engine.mu.Lock()
	if !engine.started {
		engine.mu.Unlock()
		return State{}, ErrNotStarted
	}
	config := engine.state.Config
	engine.mu.Unlock()
	return engine.Start(config), nil
}

// Snapshot returns a copy of the current state without mutating it.
func (engine *Engine) Snapshot() (State, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.started {
		return State{}, ErrNotStarted
	}
	return engine.state, nil
}

// advanceLocked applies one phase transition. It is the single place where
// the next phase is resolved and sets are counted, shared by Tick and Skip.
func (engine *Engine) advanceLocked() {
	from := engine.state.Phase
	next := NextPhase(engine.state)

	if next == PhaseComplete {
		engine.state.Phase = PhaseComplete
		engine.state.TimeRemaining = 0
		engine.state.TotalTime = 0
		engine.state.Paused = true
		engine.pending = append(engine.pending, Event{
			Kind:       EventWorkoutCompleted,
			Phase:      PhaseComplete,
			CurrentSet: engine.state.CurrentSet,
			TotalSets:  engine.state.Config.Sets,
		})
		return
	}

	// A new set begins when rest hands back to work, never on Prep -> Work.
	if from == PhaseRest && next == PhaseWork {
		engine.state.CurrentSet++
	}

	duration := PhaseDuration(next, engine.state.Config)
	engine.state.Phase = next
	engine.state.TimeRemaining = duration
	engine.state.TotalTime = duration
	engine.pending = append(engine.pending, Event{
		Kind:       EventPhaseStarted,
		Phase:      next,
		CurrentSet: engine.state.CurrentSet,
		TotalSets:  engine.state.Config.Sets,
	})
}

// finish snapshots the state, releases the lock and then dispatches pending
// notifications and presence changes. Ports run outside the lock so a slow
// observer cannot stall a tick or deadlock a control call.
func (engine *Engine) finish() State {
	state := engine.state
	events := engine.pending
	engine.pending = nil

	active := engine.started && !state.Paused && state.Phase != PhaseComplete
	presenceChanged := active != engine.presenceHeld
	engine.presenceHeld = active
	engine.mu.Unlock()

	for _, event := range events {
		switch event.Kind {
		case EventPhaseStarted:
			engine.notifier.PhaseStarted(event.Phase, event.CurrentSet, event.TotalSets)
		case EventWorkoutCompleted:
			engine.notifier.WorkoutCompleted()
		}
	}

	if presenceChanged {
		if active {
			engine.presence.Acquire()
		} else {
			engine.presence.Release()
		}
	}

	return state
}
