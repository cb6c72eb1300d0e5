package workout

import (
	"errors"
	"sync"
	"time"
)

// DriverConfig contains runtime options for the tick driver.
type DriverConfig struct {
	// Interval is the wall-clock spacing between ticks. Each delivered tick
	// still counts as exactly one second of workout time.
	Interval time.Duration

	// OnState, when set, receives the snapshot returned by every tick.
	OnState func(State)
}

// Driver is the periodic tick source for an Engine. The engine itself never
// talks to a platform timer; the driver owns the ticker goroutine and keeps
// delivering ticks for its whole lifetime, relying on the engine's no-op
// guards while the workout is paused, complete or not yet started.
type Driver struct {
	mu      sync.Mutex
	engine  *Engine
	options DriverConfig
	stopCh  chan struct{}
	running bool
}

// NewDriver creates a Driver for the engine.
func NewDriver(engine *Engine, options DriverConfig) *Driver {
	if options.Interval <= 0 {
		options.Interval = time.Second
	}
	return &Driver{
		engine:  engine,
		options: options,
		stopCh:  make(chan struct{}),
	}
}

// Start launches the ticking loop.
func (driver *Driver) Start() {
	driver.mu.Lock()
	if driver.running {
		driver.mu.Unlock()
		return
	}
	driver.running = true
	driver.mu.Unlock()

	go driver.run()
}

// Stop terminates the ticking loop. The driver cannot be restarted.
func (driver *Driver) Stop() {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if !driver.running {
		return
	}
	driver.running = false
	close(driver.stopCh)
}

func (driver *Driver) run() {
	ticker := time.NewTicker(driver.options.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-driver.stopCh:
			return
		case <-ticker.C:
			state, err := driver.engine.Tick()
			if err != nil {
				if errors.Is(err, ErrNotStarted) {
					continue
				}
				return
			}
			if driver.options.OnState != nil {
				driver.options.OnState(state)
			}
		}
	}
}
