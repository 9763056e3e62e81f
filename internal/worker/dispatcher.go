package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"task-board-api/internal/domain"
	"task-board-api/internal/metrics"
	"task-board-api/internal/service"
)

// Event is one workflow trigger occurrence queued for execution
type Event struct {
	TaskID  uuid.UUID
	Trigger domain.WorkflowTrigger
	Value   string
}

// Dispatcher runs workflow events on a pool of workers fed by a bounded
// queue. Enqueue never blocks the producing request: when the queue is full
// the event is dropped, counted, and logged.
type Dispatcher struct {
	engine  service.WorkflowEngine
	queue   chan Event
	metrics *metrics.Metrics
	logger  *zap.Logger
	workers int
	timeout time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopped  chan struct{}
}

// NewDispatcher creates a dispatcher with the given queue size and worker count
func NewDispatcher(engine service.WorkflowEngine, queueSize, workers int, m *metrics.Metrics, logger *zap.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	if workers <= 0 {
		workers = 4
	}
	return &Dispatcher{
		engine:  engine,
		queue:   make(chan Event, queueSize),
		metrics: m,
		logger:  logger,
		workers: workers,
		timeout: 30 * time.Second,
		stopped: make(chan struct{}),
	}
}

// Start launches the worker goroutines
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run(i)
	}
	d.logger.Info("Workflow dispatcher started",
		zap.Int("workers", d.workers),
		zap.Int("queue_size", cap(d.queue)),
	)
}

// Stop signals the workers and waits for queued events to finish. The queue
// channel is never closed, so a racing Enqueue can at worst leave an event
// behind, never panic.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopped)
	})
	d.wg.Wait()
	d.logger.Info("Workflow dispatcher stopped")
}

// Enqueue queues an event for execution. Returns false when the event was
// dropped because the queue is full or the dispatcher is stopping. Drops are
// counted and logged here, nowhere else.
func (d *Dispatcher) Enqueue(taskID uuid.UUID, trigger domain.WorkflowTrigger, value string) bool {
	select {
	case <-d.stopped:
		return false
	default:
	}

	select {
	case d.queue <- Event{TaskID: taskID, Trigger: trigger, Value: value}:
		d.metrics.SetWorkflowQueueDepth(len(d.queue))
		return true
	default:
		d.metrics.IncrementWorkflowEventDropped()
		d.logger.Warn("Workflow event dropped, queue full",
			zap.String("task_id", taskID.String()),
			zap.String("trigger", string(trigger)),
		)
		return false
	}
}

func (d *Dispatcher) run(id int) {
	defer d.wg.Done()
	for {
		select {
		case event := <-d.queue:
			d.metrics.SetWorkflowQueueDepth(len(d.queue))
			d.execute(id, event)
		case <-d.stopped:
			// Drain what is already queued, then exit
			for {
				select {
				case event := <-d.queue:
					d.metrics.SetWorkflowQueueDepth(len(d.queue))
					d.execute(id, event)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) execute(workerID int, event Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Panic in workflow worker",
				zap.Int("worker", workerID),
				zap.String("task_id", event.TaskID.String()),
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	d.engine.Execute(ctx, event.TaskID, event.Trigger, event.Value)
}
