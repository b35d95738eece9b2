package channel_utils

import (
	"sync"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
)

// MergeChannels fans the given channels into one, using the shared worker
// pool instead of raw goroutines. The merged channel closes once every input
// channel has closed. The pipeline orchestrator uses it to combine the three
// stage queues' dead-job feeds into a single monitoring stream.
func MergeChannels[T any](workerPool outbound.TaskDispatcher, channels ...<-chan T) (<-chan T, error) {
	var wg sync.WaitGroup
	merged := make(chan T)

	output := func(c <-chan T) {
		defer wg.Done()
		for val := range c {
			merged <- val
		}
	}

	wg.Add(len(channels))
	for _, c := range channels {
		ch := c
		if err := workerPool.Submit(func() {
			output(ch)
		}); err != nil {
			wg.Done()
			return nil, err
		}
	}

	if err := workerPool.Submit(func() {
		wg.Wait()
		close(merged)
	}); err != nil {
		return nil, err
	}

	return merged, nil
}
