package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_StartsAtOneAndIncreases(t *testing.T) {
	s := NewSequence()

	for want := int64(1); want <= 5; want++ {
		assert.Equal(t, want, s.Next())
	}
}

func TestSequence_ConcurrentNextIsUnique(t *testing.T) {
	const workers, perWorker = 8, 250

	s := NewSequence()
	ids := make(chan int64, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- s.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers*perWorker)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, int64(workers*perWorker+1), s.Next())
}
