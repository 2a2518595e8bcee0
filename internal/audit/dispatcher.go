package audit

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Event struct {
	BarbershopID uint
	ActorID      *uuid.UUID
	Action       string
	Entity       string
	EntityID     *uint
	Metadata     any
}

// Recorder is what use cases depend on; tests substitute a capture.
type Recorder interface {
	Dispatch(ev Event)
}

// Dispatcher persists events off the request path. The queue is bounded
// and drops under pressure: auditing must never take the API down.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.BarbershopID,
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}

var _ Recorder = (*Dispatcher)(nil)
