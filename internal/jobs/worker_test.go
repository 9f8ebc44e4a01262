package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProcessor is a mock implementation of Processor
type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) Process(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockRecounter is a mock implementation of UsageRecounter
type MockRecounter struct {
	mock.Mock
}

func (m *MockRecounter) RecountUsage(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestWorker_StartStop(t *testing.T) {
	mockProc := new(MockProcessor)
	mockProc.On("Process", mock.Anything).Return(nil)

	worker := NewWorker("test", mockProc, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Start(ctx)
	}()

	time.Sleep(250 * time.Millisecond)

	worker.Stop()
	wg.Wait()

	mockProc.AssertCalled(t, "Process", mock.Anything)
}

func TestWorker_ContextCancellation(t *testing.T) {
	mockProc := new(MockProcessor)
	mockProc.On("Process", mock.Anything).Return(nil)

	worker := NewWorker("test", mockProc, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Start(ctx)
	}()

	time.Sleep(150 * time.Millisecond)

	cancel()
	wg.Wait()

	mockProc.AssertCalled(t, "Process", mock.Anything)
}

func TestWorker_ProcessorErrorKeepsRunning(t *testing.T) {
	mockProc := new(MockProcessor)
	mockProc.On("Process", mock.Anything).Return(errors.New("transient failure"))

	worker := NewWorker("test", mockProc, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Start(ctx)
	}()

	time.Sleep(180 * time.Millisecond)

	worker.Stop()
	wg.Wait()

	assert.GreaterOrEqual(t, len(mockProc.Calls), 2, "worker keeps polling after a failed run")
}

func TestTagRecountProcessor_Process(t *testing.T) {
	mockRecounter := new(MockRecounter)
	mockRecounter.On("RecountUsage", mock.Anything).Return(nil)

	proc := NewTagRecountProcessor(mockRecounter)
	assert.NoError(t, proc.Process(context.Background()))
	mockRecounter.AssertExpectations(t)
}

func TestTagRecountProcessor_ProcessError(t *testing.T) {
	mockRecounter := new(MockRecounter)
	mockRecounter.On("RecountUsage", mock.Anything).Return(errors.New("database error"))

	proc := NewTagRecountProcessor(mockRecounter)
	err := proc.Process(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tag recount")
	mockRecounter.AssertExpectations(t)
}
