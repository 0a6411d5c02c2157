package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/api/metrics"
	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Dispatcher fans audit events out to a fixed set of workers using consistent
// hashing on the resource key, so events for the same record are written in
// the order they were recorded.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	sink    ports.AuditSink
	metrics *metrics.Metrics
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
	now    func() time.Time
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.AuditSink, m *metrics.Metrics, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		sink:    sink,
		metrics: m,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers exit when ctx is cancelled
// or after Stop has drained their channel.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Record implements ports.AuditRecorder. It never blocks the caller: when the
// worker channel is full the event is dropped and counted.
func (d *Dispatcher) Record(event domain.AuditEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = d.now()
	}
	d.metrics.ObserveMutation(event.Resource, string(event.Action))

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.metrics.ObserveAudit("dropped")
		return
	}

	idx := d.shardIndex(event.Key())
	select {
	case d.workers[idx] <- event:
		d.metrics.SetQueueDepth(strconv.Itoa(idx), len(d.workers[idx]))
	default:
		d.metrics.ObserveAudit("dropped")
		d.log.Warn().
			Str("key", event.Key()).
			Str("action", string(event.Action)).
			Int("worker_id", idx).
			Msg("audit queue full, event dropped")
	}
}

// Stop closes the worker channels and waits until every queued event has
// been handed to the sink.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	defer d.wg.Done()
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.metrics.SetQueueDepth(workerID, len(ch))
			d.write(ctx, id, event)
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, id int, event domain.AuditEvent) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	start := time.Now()
	err := d.sink.Write(writeCtx, event)
	d.metrics.ObserveAuditWrite(time.Since(start))
	if err != nil {
		d.metrics.ObserveAudit("failed")
		d.log.Error().Err(err).
			Str("event_id", event.ID).
			Str("key", event.Key()).
			Int("worker_id", id).
			Msg("audit write failed")
		return
	}
	d.metrics.ObserveAudit("written")
}
