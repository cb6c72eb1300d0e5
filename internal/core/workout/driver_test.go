package workout

import (
	"sync/atomic"
	"testing"
	"time"

	"intervalist/internal/core/model"
)

func TestDriver_RunsEngineToCompletion(t *testing.T) {
	engine := New(nil, nil)
	engine.Start(model.WorkoutConfig{
		Prep: time.Second,
		Sets: 1,
		Work: time.Second,
		Rest: time.Second,
	})

	var states atomic.Int64
	driver := NewDriver(engine, DriverConfig{
		Interval: time.Millisecond,
		OnState:  func(State) { states.Add(1) },
	})
	driver.Start()
	defer driver.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		state, err := engine.Snapshot()
		if err != nil {
			t.Fatalf("Snapshot: %v", err)
		}
		if state.Phase == PhaseComplete {
			if states.Load() < 2 {
				t.Errorf("OnState fired %d times, want at least 2", states.Load())
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("driver did not complete the workout in time")
}

func TestDriver_ToleratesUnstartedEngine(t *testing.T) {
	engine := New(nil, nil)
	driver := NewDriver(engine, DriverConfig{Interval: time.Millisecond})
	driver.Start()

	// Ticks against a never-started engine must be swallowed, and the
	// driver must still be alive once a run begins.
	time.Sleep(20 * time.Millisecond)
	engine.Start(model.WorkoutConfig{Prep: time.Second, Sets: 1, Work: time.Second, Rest: time.Second})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		state, err := engine.Snapshot()
		if err != nil {
			t.Fatalf("Snapshot: %v", err)
		}
		if state.Phase == PhaseComplete {
			driver.Stop()
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("driver stopped delivering ticks")
}

func TestDriver_StartStopIdempotent(t *testing.T) {
	engine := New(nil, nil)
	driver := NewDriver(engine, DriverConfig{Interval: time.Millisecond})

	driver.Start()
	driver.Start()
	driver.Stop()
	driver.Stop()
}
