//go:build darwin

package platform

import (
	"log"
	"os/exec"
	"sync"
)

// caffeinateKeepAwake holds a caffeinate child process while acquired.
type caffeinateKeepAwake struct {
	mu   sync.Mutex
	path string
	held bool
	cmd  *exec.Cmd
}

func newKeepAwake(string) KeepAwake {
	path, err := exec.LookPath("caffeinate")
	if err != nil {
		log.Printf("keep-awake unavailable: %v", err)
		return nopKeepAwake{}
	}
	return &caffeinateKeepAwake{path: path}
}

func (keeper *caffeinateKeepAwake) Acquire() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.held {
		return
	}

	cmd := exec.Command(keeper.path, "-d")
	if err := cmd.Start(); err != nil {
		log.Printf("start caffeinate: %v", err)
		return
	}
	keeper.held = true
	keeper.cmd = cmd
	go func() {
		_ = cmd.Wait()
	}()
}

func (keeper *caffeinateKeepAwake) Release() {
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
