package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Hammers one key from many goroutines; the counter stays consistent only
// if the lock actually serializes them.
func TestKeyedSerializesSameKey(t *testing.T) {
	k := NewKeyed()
	const goroutines = 50
	const iterations = 100

	counter := 0
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				k.Lock(7)
				counter++
				k.Unlock(7)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, goroutines*iterations, counter)
}

// Different keys must not block each other: holding key 1 while locking
// key 2 would deadlock here if they shared a mutex.
func TestKeyedIndependentKeys(t *testing.T) {
	k := NewKeyed()
	k.Lock(1)
	done := make(chan struct{})
	go func() {
		k.Lock(2)
		k.Unlock(2)
		close(done)
	}()
	<-done
	k.Unlock(1)
}
