package platform

// KeepAwake prevents the display from sleeping while it is held. Acquire
// and Release are idempotent and Release without a prior Acquire is safe.
type KeepAwake interface {
	Acquire()
	Release()
}

// NewKeepAwake returns a platform-specific keep-awake implementation. On
// systems without a usable mechanism it degrades to a no-op.
func NewKeepAwake(reason string) KeepAwake {
	return newKeepAwake(reason)
}

type nopKeepAwake struct{}

func (nopKeepAwake) Acquire() {}
func (nopKeepAwake) Release() {}
