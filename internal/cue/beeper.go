package cue

import (
	"log"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"

	"intervalist/internal/core/workout"
)

const beeperSampleRate = beep.SampleRate(44100)

// Tone frequencies per cue. Work gets the highest pitch so it cuts through
// gym noise; rest and the remaining phases sit lower.
const (
	workToneHz     = 880
	restToneHz     = 440
	neutralToneHz  = 660
	completeToneHz = 1040
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Beeper synthesizes short tones on phase changes. It is a workout.Notifier
// sink; audio failures are logged and never surface to the engine.
type Beeper struct{}

// NewBeeper initializes the speaker and returns a Beeper. On machines
// without an audio device the returned Beeper stays silent.
func NewBeeper() *Beeper {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(beeperSampleRate, beeperSampleRate.N(100*time.Millisecond))
		if speakerErr != nil {
			log.Printf("audio cues disabled: %v", speakerErr)
		}
	})
	return &Beeper{}
}

// PhaseStarted plays a single tone for the phase that just began.
func (beeper *Beeper) PhaseStarted(phase workout.Phase, currentSet, totalSets int) {
	switch phase {
	case workout.PhaseWork:
		beeper.play(tone(workToneHz, 300*time.Millisecond))
	case workout.PhaseRest:
		beeper.play(tone(restToneHz, 300*time.Millisecond))
	default:
		beeper.play(tone(neutralToneHz, 200*time.Millisecond))
	}
}

// WorkoutCompleted plays a rising three-note chime.
func (beeper *Beeper) WorkoutCompleted() {
	beeper.play(beep.Seq(
		tone(neutralToneHz, 150*time.Millisecond),
		tone(workToneHz, 150*time.Millisecond),
		tone(completeToneHz, 400*time.Millisecond),
	))
}

func (beeper *Beeper) play(streamer beep.Streamer) {
	if speakerErr != nil || streamer == nil {
		return
	}
	speaker.Play(streamer)
}

func tone(freq int, duration time.Duration) beep.Streamer {
	streamer, err := generators.SinTone(beeperSampleRate, freq)
	if err != nil {
		log.Printf("synthesize tone %dhz: %v", freq, err)
		return beep.Silence(1)
	}
	return beep.Take(beeperSampleRate.N(duration), streamer)
}
