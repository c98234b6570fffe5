// Package rbac serializes permission checks and policy reloads through a single owner
package rbac

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/x/policy"
)

var tracer = otel.Tracer("rbac")

const actorName = "rbac"

// Snapshot is the fact set currently loaded into the engine
type Snapshot struct {
	Policies    []core.PolicyFact     `json:"policies"`
	Assignments []core.RoleAssignment `json:"assignments"`
}

type checkCommand struct {
	ctx     context.Context
	subject string
	action  string
	reply   chan bool
}

type resetCommand struct {
	ctx   context.Context
	reply chan error
}

type snapshotCommand struct {
	reply chan Snapshot
}

// Actor owns a policy engine. Every read and reload runs on its goroutine, one at a time,
// in the order the commands were sent.
type Actor struct {
	db    *gorm.DB
	roles core.RoleFetcher
	users core.UserFetcher

	bypass    string
	queueSize int

	engine *policy.Engine

	commands  chan any
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

type Option func(*Actor)

// WithBypassSubject lets subject pass every check. Disabled unless set.
func WithBypassSubject(subject string) Option {
	return func(a *Actor) {
		a.bypass = subject
	}
}

func WithQueueSize(size int) Option {
	return func(a *Actor) {
		a.queueSize = size
	}
}

// NewActor loads the policies once and starts the actor.
// It fails if that first load fails.
func NewActor(ctx context.Context, db *gorm.DB, roles core.RoleFetcher, users core.UserFetcher, opts ...Option) (*Actor, error) {
	ctx, span := tracer.Start(ctx, "RBAC.NewActor")
	defer span.End()

	a := &Actor{
		db:        db,
		roles:     roles,
		users:     users,
		queueSize: 100,
	}
	for _, opt := range opts {
		opt(a)
	}

	engine, err := a.load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	a.swap(engine)

	a.commands = make(chan any, a.queueSize)
	a.quit = make(chan struct{})
	a.done = make(chan struct{})
	go a.run()

	return a, nil
}

// NewService is for wire.go
func NewService(db *gorm.DB, roles core.RoleFetcher, users core.UserFetcher, config core.Config) (*Actor, error) {
	return NewActor(
		context.Background(),
		db,
		roles,
		users,
		WithBypassSubject(config.BypassSubject),
		WithQueueSize(config.QueueSize),
	)
}

func (a *Actor) engineOptions() []policy.Option {
	if a.bypass == "" {
		return nil
	}
	return []policy.Option{policy.WithBypassSubject(a.bypass)}
}

func (a *Actor) run() {
	defer close(a.done)
	for {
		select {
		case <-a.quit:
			return
		case cmd := <-a.commands:
			switch c := cmd.(type) {
			case checkCommand:
				c.reply <- a.evaluate(c.ctx, c.subject, c.action)
			case resetCommand:
				c.reply <- a.reload(c.ctx)
			case snapshotCommand:
				c.reply <- Snapshot{
					Policies:    a.engine.Policies(),
					Assignments: a.engine.Assignments(),
				}
			}
		}
	}
}

func (a *Actor) evaluate(ctx context.Context, subject, action string) bool {
	ok, err := a.engine.Evaluate(subject, action)
	if err != nil {
		slog.ErrorContext(
			ctx, "permission evaluation failed",
			slog.String("error", err.Error()),
			slog.String("subject", subject),
			slog.String("action", action),
			slog.String("module", "rbac"),
		)
		checksTotal.WithLabelValues("error").Inc()
		return false
	}

	if ok {
		checksTotal.WithLabelValues("allow").Inc()
	} else {
		checksTotal.WithLabelValues("deny").Inc()
	}
	return ok
}

// reload replaces the engine only when the whole new fact set loaded
func (a *Actor) reload(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "RBAC.Actor.reload")
	defer span.End()

	engine, err := a.load(ctx)
	if err != nil {
		span.RecordError(err)
		reloadsTotal.WithLabelValues("error").Inc()
		slog.ErrorContext(
			ctx, "policy reload failed, keeping previous policies",
			slog.String("error", err.Error()),
			slog.String("module", "rbac"),
		)
		return err
	}

	a.swap(engine)
	return nil
}

func (a *Actor) swap(engine *policy.Engine) {
	a.engine = engine
	factsGauge.WithLabelValues("policy").Set(float64(len(engine.Policies())))
	factsGauge.WithLabelValues("assignment").Set(float64(len(engine.Assignments())))
	reloadsTotal.WithLabelValues("ok").Inc()
}

func (a *Actor) load(ctx context.Context) (*policy.Engine, error) {
	ctx, span := tracer.Start(ctx, "RBAC.Actor.load")
	defer span.End()

	var roles []core.RBACRole
	var users []core.RBACUser

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := a.roles.FindAll(gctx, a.db)
		if err != nil {
			return core.NewErrorFetch("roles", err)
		}
		roles = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := a.users.FindAll(gctx, a.db)
		if err != nil {
			return core.NewErrorFetch("users", err)
		}
		users = fetched
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	staging, err := policy.NewEngine(a.engineOptions()...)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	for _, role := range roles {
		for _, fact := range role.Policies() {
			if err := staging.AddPolicyFact(fact.Subject, fact.Action); err != nil {
				span.RecordError(err)
				return nil, err
			}
		}
	}

	for _, user := range users {
		if err := staging.AddRoleAssignment(user.Account(), user.GetRoleName()); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	span.SetAttributes(
		attribute.Int("roles", len(roles)),
		attribute.Int("users", len(users)),
	)

	return staging, nil
}

func (a *Actor) send(ctx context.Context, cmd any) error {
	select {
	case a.commands <- cmd:
		return nil
	case <-a.done:
		return core.NewErrorChannelClosed(actorName)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CheckPermission reports whether subject may perform action.
// Evaluation failures resolve to false.
func (a *Actor) CheckPermission(ctx context.Context, subject, action string) (bool, error) {
	ctx, span := tracer.Start(ctx, "RBAC.Actor.CheckPermission")
	defer span.End()

	reply := make(chan bool, 1)
	if err := a.send(ctx, checkCommand{ctx: context.WithoutCancel(ctx), subject: subject, action: action, reply: reply}); err != nil {
		span.RecordError(err)
		return false, err
	}

	select {
	case ok := <-reply:
		return ok, nil
	case <-a.done:
		select {
		case ok := <-reply:
			return ok, nil
		default:
		}
		err := core.NewErrorChannelClosed(actorName)
		span.RecordError(err)
		return false, err
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return false, ctx.Err()
	}
}

// Reset reloads every policy from the role and user sources and waits for the result.
// Abandoning the wait does not abort the reload.
func (a *Actor) Reset(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "RBAC.Actor.Reset")
	defer span.End()

	reply := make(chan error, 1)
	if err := a.send(ctx, resetCommand{ctx: context.WithoutCancel(ctx), reply: reply}); err != nil {
		span.RecordError(err)
		return err
	}

	select {
	case err := <-reply:
		if err != nil {
			span.RecordError(err)
		}
		return err
	case <-a.done:
		select {
		case err := <-reply:
			return err
		default:
		}
		err := core.NewErrorChannelClosed(actorName)
		span.RecordError(err)
		return err
	case <-ctx.Done():
		slog.WarnContext(ctx, "reset wait abandoned, reload continues", slog.String("module", "rbac"))
		span.RecordError(ctx.Err())
		return ctx.Err()
	}
}

func (a *Actor) Snapshot(ctx context.Context) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "RBAC.Actor.Snapshot")
	defer span.End()

	reply := make(chan Snapshot, 1)
	if err := a.send(ctx, snapshotCommand{reply: reply}); err != nil {
		span.RecordError(err)
		return Snapshot{}, err
	}

	select {
	case snapshot := <-reply:
		return snapshot, nil
	case <-a.done:
		select {
		case snapshot := <-reply:
			return snapshot, nil
		default:
		}
		return Snapshot{}, core.NewErrorChannelClosed(actorName)
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// Close stops the actor and waits for it to exit. Commands still queued are dropped.
func (a *Actor) Close() {
	a.closeOnce.Do(func() {
		close(a.quit)
	})
	<-a.done
}
