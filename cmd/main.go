package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"intervalist/internal/core/model"
	"intervalist/internal/core/workout"
	"intervalist/internal/cue"
	"intervalist/internal/platform"
	"intervalist/internal/storage"
	"intervalist/internal/ui/session"
	"intervalist/internal/ui/setup"
	"intervalist/internal/ui/tray"
	"intervalist/resources"
)

const appName = "Intervalist"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.intervalist.app")
	fyneApp.SetIcon(resources.MustLogo("active.png"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	store, err := storage.NewStore(appName)
	if err != nil {
		log.Printf("workout storage unavailable: %v", err)
	}
	library := storage.DefaultLibrary()
	if store != nil {
		if library, err = store.Load(); err != nil {
			log.Printf("load workout library: %v", err)
		}
	}

	dispatcher := cue.NewDispatcher(cue.NewBeeper(), cue.NewAnnouncer(fyneApp))
	engine := workout.New(dispatcher, platform.NewKeepAwake("interval workout running"))

	activeIcon := resources.MustLogo("active.png")
	pausedIcon := resources.MustLogo("paused.png")

	var trayManager *tray.Manager
	var setupWindow *setup.Window
	var sessionWindow *session.Window

	applyState := func(state workout.State) {
		sessionWindow.SetState(state)
		trayManager.SetPaused(state.Paused)
		if state.Phase == workout.PhaseComplete {
			trayManager.SetStatus("workout complete")
		} else {
			trayManager.SetStatus(fmt.Sprintf("%s %s", state.Phase, formatRemaining(state.TimeRemaining)))
		}
		if state.Paused {
			desktopApp.SetSystemTrayIcon(pausedIcon)
		} else {
			desktopApp.SetSystemTrayIcon(activeIcon)
		}
	}

	togglePause := func() {
		state, err := engine.Snapshot()
		if err != nil {
			return
		}
		if state.Paused {
			state, _ = engine.Resume()
		} else {
			state, _ = engine.Pause()
		}
		applyState(state)
	}

	skipPhase := func() {
		if state, err := engine.Skip(); err == nil {
			applyState(state)
		}
	}

	restart := func() {
		if state, err := engine.Restart(); err == nil {
			applyState(state)
		}
	}

	sessionWindow = session.New(fyneApp, session.Callbacks{
		OnTogglePause: togglePause,
		OnSkip:        skipPhase,
		OnRestart:     restart,
		OnNewWorkout: func() {
			if state, err := engine.Pause(); err == nil {
				applyState(state)
			}
			sessionWindow.Hide()
			setupWindow.Show()
		},
	})

	setupWindow = setup.New(fyneApp, library,
		func(config model.WorkoutConfig) {
			state := engine.Start(config)
			trayManager.SetRunning(true)
			applyState(state)
			sessionWindow.Show()
		},
		func(updated storage.Library) {
			if store == nil {
				return
			}
			if err := store.Save(updated); err != nil {
				log.Printf("save workout library: %v", err)
			}
		})

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnOpen: func() {
			if _, err := engine.Snapshot(); err != nil {
				setupWindow.Show()
				return
			}
			sessionWindow.Show()
		},
		OnTogglePause: togglePause,
		OnSkip:        skipPhase,
		OnRestart:     restart,
		OnQuit: func() {
			dispatcher.Close()
			fyneApp.Quit()
		},
	})
	desktopApp.SetSystemTrayIcon(activeIcon)

	driver := workout.NewDriver(engine, workout.DriverConfig{
		Interval: time.Second,
		OnState:  applyState,
	})
	driver.Start()
	defer driver.Stop()

	events := dispatcher.Subscribe(8)
	go func() {
		for event := range events {
			if event.Kind == workout.EventPhaseStarted {
				sessionWindow.FlashPhase()
			}
		}
	}()

	setupWindow.Show()
	fyneApp.Run()
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
