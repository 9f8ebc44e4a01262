// Package jobs runs periodic background maintenance tasks.
package jobs

import (
	"context"
	"log"
	"time"
)

// Processor is one unit of periodic work.
type Processor interface {
	Process(ctx context.Context) error
}

// Worker runs a Processor on a fixed interval until stopped.
type Worker struct {
	name     string
	proc     Processor
	interval time.Duration
	stopChan chan struct{}
	doneChan chan struct{}
}

func NewWorker(name string, proc Processor, interval time.Duration) *Worker {
	return &Worker{
		name:     name,
		proc:     proc,
		interval: interval,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start begins the polling loop. It returns when the context is
// cancelled or Stop is called.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.doneChan)

	log.Printf("worker %s: started (interval %v)", w.name, w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Printf("worker %s: stopped, context cancelled", w.name)
			return
		case <-w.stopChan:
			log.Printf("worker %s: stopped", w.name)
			return
		case <-ticker.C:
			if err := w.proc.Process(ctx); err != nil {
				log.Printf("worker %s: %v", w.name, err)
			}
		}
	}
}

// Stop gracefully stops the worker and waits for the loop to exit.
func (w *Worker) Stop() {
	close(w.stopChan)
	<-w.doneChan
}
