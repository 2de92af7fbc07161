// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todo-store/internal/app/engine"
	"github.com/jsamuelsen11/todo-store/internal/app/recordstore"
	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// MethodInstantiate is the method name reported by Initialize.
const MethodInstantiate = "instantiate"

// Transition outcome labels for the transition counter.
const (
	resultSuccess  = "success"
	resultRejected = "rejected"
	resultError    = "error"
)

// Option configures a TodoService.
type Option func(*TodoService)

// WithTransitionCounter records every Initialize and mutation on counter,
// labelled with "action" and "result".
func WithTransitionCounter(counter metric.Int64Counter) Option {
	return func(s *TodoService) {
		s.transitions = counter
	}
}

// TodoService implements ports.TodoService on top of the transition engine.
// Calls are serialized with a mutex so that each transition observes the
// state left by the previous one, matching a single-threaded host.
type TodoService struct {
	mu          sync.Mutex
	store       *recordstore.RecordStore
	engine      *engine.Engine
	transitions metric.Int64Counter // nil when metrics are disabled
	logger      *slog.Logger
}

// NewTodoService creates a TodoService persisting through backend. A nil
// logger is replaced with a no-op logger.
func NewTodoService(backend ports.StateStore, logger *slog.Logger, opts ...Option) (*TodoService, error) {
	store, err := recordstore.New(backend)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &TodoService{
		store:  store,
		engine: engine.New(store),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Initialize creates the store owned by caller. The owner is fixed for the
// life of the store, so a second Initialize fails with domain.ErrConflict.
func (s *TodoService) Initialize(
	ctx context.Context,
	caller todo.Identity,
	initial []todo.Todo,
) (*ports.InitializeResult, error) {
	if err := s.lock(ctx); err != nil {
		s.finish(ctx, MethodInstantiate, "Initialize", err)
		return nil, err
	}
	defer s.mu.Unlock()

	s.logger.InfoContext(ctx, "initializing store",
		slog.String("owner", caller.String()),
		slog.Int("count", len(initial)),
	)

	_, err := s.store.Load(ctx)
	switch {
	case err == nil:
		err = fmt.Errorf("store already initialized: %w", domain.ErrConflict)
		s.finish(ctx, MethodInstantiate, "Initialize", err)
		return nil, err
	case !errors.Is(err, domain.ErrNotFound):
		s.finish(ctx, MethodInstantiate, "Initialize", err)
		return nil, err
	}

	state, err := s.store.Initialize(ctx, caller, initial)
	s.finish(ctx, MethodInstantiate, "Initialize", err)
	if err != nil {
		return nil, err
	}

	return &ports.InitializeResult{
		Method: MethodInstantiate,
		Owner:  state.Owner,
		Count:  len(state.Records),
	}, nil
}

// Add appends t to the record list.
func (s *TodoService) Add(ctx context.Context, caller todo.Identity, t todo.Todo) (*ports.TransitionResult, error) {
	if err := s.lock(ctx); err != nil {
		return s.result(ctx, todo.ActionAdd, "Add", engine.Response{}, err)
	}
	defer s.mu.Unlock()

	s.logger.InfoContext(ctx, "adding record", slog.Int64("id", t.ID))

	resp, err := s.engine.Add(ctx, caller, t)
	return s.result(ctx, todo.ActionAdd, "Add", resp, err, slog.Int64("id", t.ID))
}

// Remove drops every record with t's ID.
func (s *TodoService) Remove(ctx context.Context, caller todo.Identity, t todo.Todo) (*ports.TransitionResult, error) {
	if err := s.lock(ctx); err != nil {
		return s.result(ctx, todo.ActionRemove, "Remove", engine.Response{}, err)
	}
	defer s.mu.Unlock()

	s.logger.InfoContext(ctx, "removing record", slog.Int64("id", t.ID))

	resp, err := s.engine.Remove(ctx, caller, t)
	return s.result(ctx, todo.ActionRemove, "Remove", resp, err, slog.Int64("id", t.ID))
}

// Update replaces every record with t's ID by t, appended at the end.
func (s *TodoService) Update(ctx context.Context, caller todo.Identity, t todo.Todo) (*ports.TransitionResult, error) {
	if err := s.lock(ctx); err != nil {
		return s.result(ctx, todo.ActionUpdate, "Update", engine.Response{}, err)
	}
	defer s.mu.Unlock()

	s.logger.InfoContext(ctx, "updating record", slog.Int64("id", t.ID))

	resp, err := s.engine.Update(ctx, caller, t)
	return s.result(ctx, todo.ActionUpdate, "Update", resp, err, slog.Int64("id", t.ID))
}

// Reset clears the record list and keeps the owner.
func (s *TodoService) Reset(ctx context.Context, caller todo.Identity) (*ports.TransitionResult, error) {
	if err := s.lock(ctx); err != nil {
		return s.result(ctx, todo.ActionReset, "Reset", engine.Response{}, err)
	}
	defer s.mu.Unlock()

	s.logger.InfoContext(ctx, "resetting store")

	resp, err := s.engine.Reset(ctx, caller)
	return s.result(ctx, todo.ActionReset, "Reset", resp, err)
}

// List returns every record in stored order.
func (s *TodoService) List(ctx context.Context) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.engine.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list records",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return records, nil
}

// lock takes the service mutex. If ctx ended while waiting, the mutex is
// released and ctx's error returned: a request already answered with a
// timeout must not mutate the store afterwards.
func (s *TodoService) lock(ctx context.Context) error {
	s.mu.Lock()
	if err := ctx.Err(); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("waiting for store: %w", err)
	}
	return nil
}

func (s *TodoService) result(
	ctx context.Context,
	action, operation string,
	resp engine.Response,
	err error,
	attrs ...slog.Attr,
) (*ports.TransitionResult, error) {
	s.finish(ctx, action, operation, err, attrs...)
	if err != nil {
		return nil, err
	}
	return &ports.TransitionResult{Action: resp.Action}, nil
}

// finish logs a failed call and counts the outcome.
func (s *TodoService) finish(ctx context.Context, action, operation string, err error, attrs ...slog.Attr) {
	result := classify(err)

	if err != nil {
		level := slog.LevelError
		if result == resultRejected {
			level = slog.LevelWarn
		}
		args := make([]any, 0, len(attrs)+2)
		args = append(args, slog.String("operation", operation))
		for _, a := range attrs {
			args = append(args, a)
		}
		args = append(args, slog.Any("error", err))
		s.logger.Log(ctx, level, "transition failed", args...)
	}

	if s.transitions != nil {
		s.transitions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("action", action),
			attribute.String("result", result),
		))
	}
}

// classify maps an error to a transition result label. Caller mistakes are
// "rejected"; anything else is an infrastructure "error".
func classify(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrNotFound):
		return resultRejected
	default:
		return resultError
	}
}
