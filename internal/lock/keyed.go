// Package lock provides an in-process advisory lock keyed by an arbitrary
// id. The reservation flow takes the car's lock around its
// check-then-insert span so two concurrent admissions for the same car
// serialize before either touches the database; the row lock inside the
// transaction covers the multi-instance case.
package lock

import "sync"

// Keyed hands out one mutex per key. Mutexes are created lazily and kept
// for the life of the process; the key space here is car ids, which is
// small enough that no eviction is needed.
type Keyed struct {
	mu    sync.Mutex
	locks map[uint64]*sync.Mutex
}

func NewKeyed() *Keyed {
	return &Keyed{locks: make(map[uint64]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it on first use.
func (k *Keyed) Lock(key uint64) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()
	m.Lock()
}

// Unlock releases the mutex for key. Calling Unlock for a key that was
// never locked panics, same as sync.Mutex.
func (k *Keyed) Unlock(key uint64) {
	k.mu.Lock()
	m := k.locks[key]
	k.mu.Unlock()
	m.Unlock()
}
