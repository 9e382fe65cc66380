package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/metrics"
)

// ErrQueueFull is returned by Enqueue when the queue has no free slot.
var ErrQueueFull = errors.New("notification queue full")

// ErrClosed is returned by Enqueue after the dispatcher stopped.
var ErrClosed = errors.New("notification dispatcher closed")

// DispatcherConfig sizes the queue and worker pool. Zero values take defaults.
type DispatcherConfig struct {
	QueueSize   int
	Workers     int
	SendTimeout time.Duration
}

// Dispatcher delivers messages with a fixed set of workers reading from a
// bounded queue. Messages still queued when Run's context ends are drained
// before Run returns.
type Dispatcher struct {
	notifier Notifier
	log      logging.Logger
	cfg      DispatcherConfig

	queue chan Message

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher returns a dispatcher delivering through n. Call Run to start it.
func NewDispatcher(n Notifier, log logging.Logger, cfg DispatcherConfig) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	return &Dispatcher{
		notifier: n,
		log:      log.With("module", "dispatcher"),
		cfg:      cfg,
		queue:    make(chan Message, cfg.QueueSize),
	}
}

// Enqueue schedules msg without blocking.
func (d *Dispatcher) Enqueue(msg Message) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		metrics.Notifications.WithLabelValues("dropped").Inc()
		return ErrClosed
	}
	select {
	case d.queue <- msg:
		return nil
	default:
		metrics.Notifications.WithLabelValues("dropped").Inc()
		return ErrQueueFull
	}
}

// Run starts the workers and blocks until ctx is done and the queue is
// drained.
func (d *Dispatcher) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < d.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.work(ctx)
		}()
	}

	<-ctx.Done()
	d.mu.Lock()
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	wg.Wait()
}

func (d *Dispatcher) work(ctx context.Context) {
	for msg := range d.queue {
		// Sends started during shutdown still get their full timeout.
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.cfg.SendTimeout)
		err := d.notifier.Send(sendCtx, msg)
		cancel()

		if err != nil {
			metrics.Notifications.WithLabelValues("failed").Inc()
			d.log.Warn(ctx, "notification failed", "file_id", msg.FileID, "error", err)
			continue
		}
		metrics.Notifications.WithLabelValues("sent").Inc()
		d.log.Debug(ctx, "notification sent", "file_id", msg.FileID)
	}
}
