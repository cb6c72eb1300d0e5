// Package cue fans engine notifications out to the audio, notification and
// UI observers without letting any of them back-pressure the timer.
package cue

import (
	"sync"

	"intervalist/internal/core/workout"
)

// Dispatcher implements workout.Notifier by forwarding every event to the
// registered sinks and to subscriber channels. Channel sends never block; a
// slow subscriber just misses events.
type Dispatcher struct {
	mu          sync.Mutex
	sinks       []workout.Notifier
	subscribers []chan workout.Event
	closed      bool
}

// NewDispatcher creates a dispatcher with the given sinks.
func NewDispatcher(sinks ...workout.Notifier) *Dispatcher {
	return &Dispatcher{sinks: sinks}
}

// Subscribe registers a new observer channel.
func (dispatcher *Dispatcher) Subscribe(buffer int) <-chan workout.Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan workout.Event, buffer)
	dispatcher.mu.Lock()
	dispatcher.subscribers = append(dispatcher.subscribers, ch)
	dispatcher.mu.Unlock()
	return ch
}

// Close closes all subscriber channels. Events arriving afterwards are
// dropped.
func (dispatcher *Dispatcher) Close() {
	dispatcher.mu.Lock()
	if dispatcher.closed {
		dispatcher.mu.Unlock()
		return
	}
	dispatcher.closed = true
	subscribers := dispatcher.subscribers
	dispatcher.subscribers = nil
	dispatcher.mu.Unlock()

	for _, ch := range subscribers {
		close(ch)
	}
}

// PhaseStarted implements workout.Notifier.
func (dispatcher *Dispatcher) PhaseStarted(phase workout.Phase, currentSet, totalSets int) {
	dispatcher.dispatch(workout.Event{
		Kind:       workout.EventPhaseStarted,
		Phase:      phase,
		CurrentSet: currentSet,
		TotalSets:  totalSets,
	})
}

// WorkoutCompleted implements workout.Notifier.
func (dispatcher *Dispatcher) WorkoutCompleted() {
	dispatcher.dispatch(workout.Event{
		Kind:  workout.EventWorkoutCompleted,
		Phase: workout.PhaseComplete,
	})
}

func (dispatcher *Dispatcher) dispatch(event workout.Event) {
	dispatcher.mu.Lock()
	if dispatcher.closed {
		dispatcher.mu.Unlock()
		return
	}
	sinks := append([]workout.Notifier(nil), dispatcher.sinks...)
	subscribers := append([]chan workout.Event(nil), dispatcher.subscribers...)
	dispatcher.mu.Unlock()

	for _, sink := range sinks {
		switch event.Kind {
		case workout.EventPhaseStarted:
			sink.PhaseStarted(event.Phase, event.CurrentSet, event.TotalSets)
		case workout.EventWorkoutCompleted:
			sink.WorkoutCompleted()
		}
	}
	for _, ch := range subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
