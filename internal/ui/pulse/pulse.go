// Package pulse drives the brief highlight flash played on phase entry.
package pulse

import (
	"context"
	"sync"
	"time"
)

// Config contains flash timing values.
type Config struct {
	Flashes     int
	OnDuration  time.Duration
	OffDuration time.Duration
}

// DefaultConfig returns the timing used for phase-change flashes.
func DefaultConfig() Config {
	return Config{
		Flashes:     3,
		OnDuration:  180 * time.Millisecond,
		OffDuration: 140 * time.Millisecond,
	}
}

// Engine toggles a highlight callback in a cancellable loop. Starting a new
// flash cancels any flash still in flight.
type Engine struct {
	mu        sync.Mutex
	config    Config
	highlight func(bool)
	cancel    context.CancelFunc
}

// New creates a pulse engine. The highlight callback receives true while
// the flash is lit and false when it goes dark; the final call is always
// false.
func New(config Config, highlight func(bool)) *Engine {
	if config.Flashes <= 0 {
		config = DefaultConfig()
	}
	return &Engine{config: config, highlight: highlight}
}

// Flash starts a flash sequence.
func (engine *Engine) Flash(ctx context.Context) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	engine.mu.Unlock()

	go engine.run(runCtx)
}

// Stop cancels any active flash.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) run(ctx context.Context) {
	defer engine.highlight(false)
	for i := 0; i < engine.config.Flashes; i++ {
		engine.highlight(true)
		if !sleepWithContext(ctx, engine.config.OnDuration) {
			return
		}
		engine.highlight(false)
		if !sleepWithContext(ctx, engine.config.OffDuration) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
