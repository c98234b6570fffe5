// Package sequencer hands out unique, time-ordered identifiers
package sequencer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/rolegate/core"
)

var tracer = otel.Tracer("sequencer")

var issuedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "rolegate_sequencer_issued_total",
	Help: "Total number of identifiers issued",
})

type command struct {
	reply chan ID
}

// Actor serializes every request for an id through a single goroutine,
// which is the only owner of the generator.
type Actor struct {
	commands  chan command
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewActor starts the owning goroutine
func NewActor(generator *Generator, queueSize int) *Actor {
	if queueSize <= 0 {
		queueSize = 100
	}

	a := &Actor{
		commands: make(chan command, queueSize),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go a.run(generator)
	return a
}

// NewService is for wire.go
func NewService(config core.Config) (core.IDGenerator, error) {
	generator, err := NewGenerator(config.DatacenterID, config.WorkerID)
	if err != nil {
		return nil, err
	}
	return NewActor(generator, config.QueueSize), nil
}

func (a *Actor) run(generator *Generator) {
	defer close(a.done)
	for {
		select {
		case <-a.quit:
			return
		case cmd := <-a.commands:
			cmd.reply <- generator.Next()
			issuedTotal.Inc()
		}
	}
}

// NextID returns a new identifier.
// It fails with ErrorGeneratorUnavailable once the actor has stopped.
func (a *Actor) NextID(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "Sequencer.Actor.NextID")
	defer span.End()

	// buffered so that the actor never blocks on a caller that gave up
	reply := make(chan ID, 1)

	select {
	case a.commands <- command{reply: reply}:
	case <-a.done:
		err := core.NewErrorGeneratorUnavailable()
		span.RecordError(err)
		return "", err
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return "", ctx.Err()
	}

	select {
	case id := <-reply:
		return id.String(), nil
	case <-a.done:
		select {
		case id := <-reply:
			return id.String(), nil
		default:
		}
		err := core.NewErrorGeneratorUnavailable()
		span.RecordError(err)
		return "", err
	case <-ctx.Done():
		slog.DebugContext(ctx, "id request abandoned", slog.String("module", "sequencer"))
		span.RecordError(ctx.Err())
		return "", ctx.Err()
	}
}

// Close stops the actor and waits for it to exit
func (a *Actor) Close() {
	a.closeOnce.Do(func() {
		close(a.quit)
	})
	<-a.done
}
