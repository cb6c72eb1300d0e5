package cue

import (
	"testing"

	"intervalist/internal/core/workout"
)

type sinkRecorder struct {
	phases    []workout.Phase
	completed int
}

func (recorder *sinkRecorder) PhaseStarted(phase workout.Phase, currentSet, totalSets int) {
	recorder.phases = append(recorder.phases, phase)
}

func (recorder *sinkRecorder) WorkoutCompleted() {
	recorder.completed++
}

func TestDispatcher_ForwardsToSinksAndSubscribers(t *testing.T) {
	first := &sinkRecorder{}
	second := &sinkRecorder{}
	dispatcher := NewDispatcher(first, second)
	events := dispatcher.Subscribe(4)

	dispatcher.PhaseStarted(workout.PhaseWork, 2, 8)
	dispatcher.WorkoutCompleted()

	for _, sink := range []*sinkRecorder{first, second} {
		if len(sink.phases) != 1 || sink.phases[0] != workout.PhaseWork {
			t.Errorf("sink phases = %v, want [Work]", sink.phases)
		}
		if sink.completed != 1 {
			t.Errorf("sink completed = %d, want 1", sink.completed)
		}
	}

	event := <-events
	if event.Kind != workout.EventPhaseStarted || event.Phase != workout.PhaseWork || event.CurrentSet != 2 || event.TotalSets != 8 {
		t.Errorf("first event = %+v", event)
	}
	event = <-events
	if event.Kind != workout.EventWorkoutCompleted {
		t.Errorf("second event kind = %q, want workout_completed", event.Kind)
	}
}

func TestDispatcher_SlowSubscriberDropsEvents(t *testing.T) {
	dispatcher := NewDispatcher()
	events := dispatcher.Subscribe(1)

	dispatcher.PhaseStarted(workout.PhasePrep, 1, 3)
	dispatcher.PhaseStarted(workout.PhaseWork, 1, 3)
	dispatcher.PhaseStarted(workout.PhaseRest, 1, 3)

	// Buffer of one: only the first event fits, the rest are dropped
	// instead of blocking the dispatcher.
	event := <-events
	if event.Phase != workout.PhasePrep {
		t.Errorf("buffered event phase = %v, want Prep", event.Phase)
	}
	select {
	case extra := <-events:
		t.Errorf("unexpected extra event: %+v", extra)
	default:
	}
}

func TestDispatcher_Close(t *testing.T) {
	dispatcher := NewDispatcher()
	events := dispatcher.Subscribe(1)

	dispatcher.Close()
	dispatcher.Close()
	dispatcher.PhaseStarted(workout.PhaseWork, 1, 1)

	if _, open := <-events; open {
		t.Error("channel still open after Close")
	}
}
