package dispatch

//go:generate mockgen -source=dispatch.go -destination=mock_dispatch.go -package=dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/bookingledger/internal/domain"
)

const (
	defaultLimit       = 100
	defaultMaxAttempts = 5
	defaultWorkers     = 10
)

type OutboxRepo interface {
	FindPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error)
	MarkDone(ctx context.Context, id string, at time.Time) error
	MarkFailed(ctx context.Context, id, reason string, maxAttempts int) error
}

// Handler executes one outbox event. It must tolerate being called more than
// once for the same event.
type Handler func(ctx context.Context, e domain.OutboxEvent) error

// Dispatcher runs the follow-up jobs of committed booking transitions. Events
// are handed over right after commit and re-driven by a poller until they
// succeed or run out of attempts.
type Dispatcher struct {
	repo        OutboxRepo
	handlers    map[domain.EventKind]Handler
	workerPool  WorkerPoolI
	limit       int
	maxAttempts int
	interval    time.Duration
	processing  sync.Map
	nowFn       func() time.Time
}

func New(repo OutboxRepo, interval time.Duration) *Dispatcher {
	return &Dispatcher{
		repo:        repo,
		handlers:    make(map[domain.EventKind]Handler),
		workerPool:  NewWorkerPool(defaultWorkers),
		limit:       defaultLimit,
		maxAttempts: defaultMaxAttempts,
		interval:    interval,
		nowFn:       time.Now,
	}
}

// Register must be called before Start.
func (d *Dispatcher) Register(kind domain.EventKind, h Handler) {
	d.handlers[kind] = h
}

func (d *Dispatcher) Start(ctx context.Context) {
	zap.L().Info("Outbox dispatcher started", zap.Duration("interval", d.interval))
	go d.run(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping dispatcher")
			d.workerPool.Close()
			return
		case <-ticker.C:
			d.drain(ctx)
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	events, err := d.repo.FindPending(ctx, d.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pending outbox events", zap.Error(err))
		return
	}
	d.submit(ctx, events)
}

// Dispatch queues freshly committed events without waiting for them.
func (d *Dispatcher) Dispatch(ctx context.Context, events []domain.OutboxEvent) {
	if len(events) == 0 {
		return
	}
	go d.submit(ctx, events)
}

func (d *Dispatcher) submit(ctx context.Context, events []domain.OutboxEvent) {
	var g errgroup.Group
	for _, event := range events {
		if _, loaded := d.processing.LoadOrStore(event.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := d.workerPool.AddTask(ctx, func() error {
				defer d.processing.Delete(event.ID)
				return d.handle(ctx, event)
			})
			if err != nil {
				d.processing.Delete(event.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error queueing outbox events", zap.Error(err))
	}
}

func (d *Dispatcher) handle(ctx context.Context, e domain.OutboxEvent) error {
	h, ok := d.handlers[e.Kind]
	if !ok {
		err := fmt.Errorf("no handler for event kind %q", e.Kind)
		if markErr := d.repo.MarkFailed(ctx, e.ID, err.Error(), 1); markErr != nil {
			return markErr
		}
		return err
	}

	if err := h(ctx, e); err != nil {
		zap.L().Warn("Outbox event failed",
			zap.String("event_id", e.ID),
			zap.String("kind", string(e.Kind)),
			zap.Int("attempt", e.Attempts+1),
			zap.Error(err),
		)
		if markErr := d.repo.MarkFailed(ctx, e.ID, err.Error(), d.maxAttempts); markErr != nil {
			return markErr
		}
		return err
	}

	return d.repo.MarkDone(ctx, e.ID, d.nowFn().UTC())
}
