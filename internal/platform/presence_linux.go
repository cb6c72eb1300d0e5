//go:build linux

package platform

import (
	"log"
	"os/exec"
	"sync"
	"time"
)

// inhibitKeepAwake holds a systemd-inhibit child process while acquired.
// If the inhibitor dies while still held (logind restart, session change)
// it is respawned so the display stays awake.
type inhibitKeepAwake struct {
	mu     sync.Mutex
	path   string
	reason string
	held   bool
	cmd    *exec.Cmd
}

func newKeepAwake(reason string) KeepAwake {
	path, err := exec.LookPath("systemd-inhibit")
	if err != nil {
		log.Printf("keep-awake unavailable: %v", err)
		return nopKeepAwake{}
	}
	return &inhibitKeepAwake{path: path, reason: reason}
}

func (keeper *inhibitKeepAwake) Acquire() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.held {
		return
	}
	keeper.held = true
	keeper.spawnLocked()
}

func (keeper *inhibitKeepAwake) Release() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.held {
		return
	}
	keeper.held = false
	if keeper.cmd != nil && keeper.cmd.Process != nil {
		_ = keeper.cmd.Process.Kill()
	}
	keeper.cmd = nil
}

func (keeper *inhibitKeepAwake) spawnLocked() {
	cmd := exec.Command(keeper.path,
		"--what=idle", "--mode=block",
		"--who=Intervalist", "--why="+keeper.reason,
		"sleep", "infinity")
	if err := cmd.Start(); err != nil {
		log.Printf("start systemd-inhibit: %v", err)
		keeper.cmd = nil
		return
	}
	keeper.cmd = cmd

	go func() {
		_ = cmd.Wait()
		time.Sleep(time.Second)
		keeper.mu.Lock()
		defer keeper.mu.Unlock()
		if keeper.held && keeper.cmd == cmd {
			log.Printf("keep-awake inhibitor exited early, respawning")
			keeper.spawnLocked()
		}
	}()
}
