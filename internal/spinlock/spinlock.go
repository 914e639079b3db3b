// Package spinlock provides a busy waiting mutex for very short critical
// sections like a single map access.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// Mutex is a spinlock. The zero value is unlocked.
type Mutex struct {
	locked atomic.Bool
}

// Lock spins until the mutex is acquired, yielding the processor between
// attempts.
func (m *Mutex) Lock() {
	for !m.locked.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

// Unlock releases the mutex.
func (m *Mutex) Unlock() { m.locked.Store(false) }
