package workout

// EventKind defines the type of engine event.
type EventKind string

const (
	EventPhaseStarted     EventKind = "phase_started"
	EventWorkoutCompleted EventKind = "workout_completed"
)

// Event describes one engine notification for observers.
type Event struct {
	Kind       EventKind
	Phase      Phase
	CurrentSet int
	TotalSets  int
}

// Notifier receives phase transition and completion notifications.
// Implementations must not call back into the engine and must swallow their
// own failures; a broken cue channel never affects the state machine.
type Notifier interface {
	PhaseStarted(phase Phase, currentSet, totalSets int)
	WorkoutCompleted()
}

// Presence keeps the display awake while a workout is actively running.
// Calls are level-triggered and may be redundant; implementations must
// tolerate Release without a prior Acquire.
type Presence interface {
	Acquire()
	Release()
}

type nopNotifier struct{}

func (nopNotifier) PhaseStarted(Phase, int, int) {}
func (nopNotifier) WorkoutCompleted()            {}

type nopPresence struct{}

func (nopPresence) Acquire() {}
func (nopPresence) Release() {}
