package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/adventureworks/catalog-api/internal/api/metrics"
	"github.com/adventureworks/catalog-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the product id, guaranteeing per-product event ordering.
type Dispatcher struct {
	workers  []chan ports.AuditEvent
	recorder ports.AuditRecorder
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder ports.AuditRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.AuditEvent, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its product. Auditing
// is best-effort: when the worker channel is full the event is dropped and
// counted rather than blocking the originating request.
func (d *Dispatcher) Enqueue(event ports.AuditEvent) {
	idx := d.shardIndex(event.ProductID)
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.AuditErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().
			Int64("product_id", event.ProductID).
			Str("action", event.Action).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a product id deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(productID, 10)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditEvent) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(workerID).Dec()

			if err := d.recorder.Record(ctx, event); err != nil {
				metrics.AuditErrorsTotal.WithLabelValues("record_failed").Inc()
				d.log.Error().Err(err).
					Str("event_id", event.ID).
					Int64("product_id", event.ProductID).
					Int("worker_id", id).
					Msg("audit event recording failed")
				continue
			}
			metrics.AuditEventsTotal.WithLabelValues(event.Action).Inc()
		}
	}
}
