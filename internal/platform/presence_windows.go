//go:build windows

package platform

import (
	"log"
	"sync"
	"syscall"
)

const (
	esContinuous      = 0x80000000
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

type executionStateKeepAwake struct {
	mu   sync.Mutex
	held bool
	proc *syscall.LazyProc
}

func newKeepAwake(string) KeepAwake {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	return &executionStateKeepAwake{proc: kernel32.NewProc("SetThreadExecutionState")}
}

func (keeper *executionStateKeepAwake) Acquire() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.held {
		return
	}
	keeper.held = true
	keeper.set(esContinuous | esSystemRequired | esDisplayRequired)
}

func (keeper *executionStateKeepAwake) Release() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.held {
		return
	}
	keeper.held = false
	keeper.set(esContinuous)
}

func (keeper *executionStateKeepAwake) set(flags uintptr) {
	result, _, err := keeper.proc.Call(flags)
	if result == 0 {
		log.Printf("set thread execution state: %v", err)
	}
}
