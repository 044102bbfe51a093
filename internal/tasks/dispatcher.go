package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"conferencecentral/internal/domain"
)

// Handler processes a single task. A non-nil error triggers a retry.
type Handler func(ctx context.Context, task domain.Task) error

// Dispatcher is an in-process task queue. Tasks are enqueued onto a buffered
// channel and drained by a pool of workers, with a bounded number of retries
// per task.
type Dispatcher struct {
	logger     *slog.Logger
	handlers   map[string]Handler
	queue      chan domain.Task
	maxRetries int
	retryDelay time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
	once   sync.Once
}

// NewDispatcher creates a dispatcher with the given queue capacity. Handlers
// must be registered before Start is called.
func NewDispatcher(capacity int, logger *slog.Logger) *Dispatcher {
	if capacity <= 0 {
		capacity = 64
	}
	return &Dispatcher{
		logger:     logger,
		handlers:   make(map[string]Handler),
		queue:      make(chan domain.Task, capacity),
		maxRetries: 3,
		retryDelay: time.Second,
	}
}

// Register binds a handler to a task name. Registering the same name twice is
// a programming error.
func (d *Dispatcher) Register(name string, h Handler) {
	if _, ok := d.handlers[name]; ok {
		panic(fmt.Sprintf("tasks: handler already registered for %q", name))
	}
	d.handlers[name] = h
}

// Start launches the worker pool. Workers run until Stop is called.
func (d *Dispatcher) Start(workers int) {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.work(ctx)
	}
}

// Stop signals workers to exit and waits for in-flight tasks to finish.
func (d *Dispatcher) Stop() {
	d.once.Do(func() {
		if d.cancel != nil {
			d.cancel()
		}
		d.wg.Wait()
	})
}

// Enqueue queues a task for asynchronous execution. It fails fast when the
// queue is full rather than blocking the caller.
func (d *Dispatcher) Enqueue(ctx context.Context, name string, params map[string]string) error {
	if _, ok := d.handlers[name]; !ok {
		return fmt.Errorf("tasks: no handler registered for %q", name)
	}
	task := domain.Task{
		ID:     uuid.New().String(),
		Name:   name,
		Params: params,
	}
	select {
	case d.queue <- task:
		d.logger.Info("task enqueued", "task_id", task.ID, "task", name)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("tasks: queue full, dropping %q", name)
	}
}

func (d *Dispatcher) work(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-d.queue:
			d.run(ctx, task)
		}
	}
}

func (d *Dispatcher) run(ctx context.Context, task domain.Task) {
	h := d.handlers[task.Name]
	for attempt := 1; attempt <= d.maxRetries; attempt++ {
		err := h(ctx, task)
		if err == nil {
			d.logger.Info("task completed", "task_id", task.ID, "task", task.Name, "attempt", attempt)
			return
		}
		d.logger.Error("task failed", "task_id", task.ID, "task", task.Name, "attempt", attempt, "error", err)
		if attempt < d.maxRetries {
			select {
			case <-ctx.Done():
				return
			case <-time.After(d.retryDelay * time.Duration(attempt)):
			}
		}
	}
	d.logger.Error("task exhausted retries", "task_id", task.ID, "task", task.Name)
}

var _ domain.TaskQueue = (*Dispatcher)(nil)
