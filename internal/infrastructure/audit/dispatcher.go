// Package audit persists the patient-data access trail asynchronously, so
// audit writes never sit on the request path.
package audit

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/medcore/healthcare-api/internal/api/metrics"
	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the patient id, guaranteeing per-patient event ordering.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its patient id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event domain.AuditEvent) {
	d.workers[d.shardIndex(event.PatientID)] <- event
}

// shardIndex maps a patient id deterministically to a worker index.
func (d *Dispatcher) shardIndex(patientID uint) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatUint(uint64(patientID), 10)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Create(ctx, &event); err != nil {
				metrics.AuditWriteErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("action", event.Action).
					Uint("patient_id", event.PatientID).
					Int("worker_id", id).
					Msg("audit event write failed")
			}
		}
	}
}
