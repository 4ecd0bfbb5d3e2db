package dispatch

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name       string
		numTasks   int
		numWorkers int
		failing    int
	}{
		{name: "All tasks succeed", numTasks: 5, numWorkers: 2},
		{name: "Failing task does not stop the pool", numTasks: 4, numWorkers: 2, failing: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)
			defer wp.Close()

			var (
				wg       sync.WaitGroup
				executed atomic.Int32
			)
			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				err := wp.AddTask(context.Background(), func() error {
					defer wg.Done()
					executed.Add(1)
					if i < tt.failing {
						return assert.AnError
					}
					return nil
				})
				require.NoError(t, err)
			}
			wg.Wait()

			assert.Equal(t, int32(tt.numTasks), executed.Load())
		})
	}
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := &WorkerPool{pool: make(chan Task)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error {
		t.Error("task should not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_Closed(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Close()
	wp.Close()

	err := wp.AddTask(context.Background(), func() error { return nil })
	assert.ErrorIs(t, err, ErrPoolClosed)
}
