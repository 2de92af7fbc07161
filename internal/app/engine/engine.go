// Package engine implements the record-list transitions: add, remove,
// update and reset for the owner, and list for anyone. Every mutation goes
// through [recordstore.RecordStore.Update], so a rejected call leaves the
// persisted state untouched.
package engine

import (
	"context"

	"github.com/jsamuelsen11/todo-store/internal/app/recordstore"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
)

// Response tags a successful transition with its action name.
type Response struct {
	Action string
}

// Engine applies transitions to a RecordStore.
type Engine struct {
	store *recordstore.RecordStore
}

// New creates an Engine over store.
func New(store *recordstore.RecordStore) *Engine {
	return &Engine{store: store}
}

// Add appends t to the record list.
func (e *Engine) Add(ctx context.Context, caller todo.Identity, t todo.Todo) (Response, error) {
	return e.apply(ctx, caller, todo.ActionAdd, func(s todo.State) todo.State {
		return s.Add(t)
	})
}

// Remove drops every record whose ID matches t.ID. Only the ID is read.
func (e *Engine) Remove(ctx context.Context, caller todo.Identity, t todo.Todo) (Response, error) {
	return e.apply(ctx, caller, todo.ActionRemove, func(s todo.State) todo.State {
		return s.Remove(t.ID)
	})
}

// Update removes every record matching t.ID and appends t.
func (e *Engine) Update(ctx context.Context, caller todo.Identity, t todo.Todo) (Response, error) {
	return e.apply(ctx, caller, todo.ActionUpdate, func(s todo.State) todo.State {
		return s.Replace(t)
	})
}

// Reset clears the record list.
func (e *Engine) Reset(ctx context.Context, caller todo.Identity) (Response, error) {
	return e.apply(ctx, caller, todo.ActionReset, todo.State.Reset)
}

// List returns the full record list in stored order.
func (e *Engine) List(ctx context.Context) ([]todo.Todo, error) {
	state, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return state.Records, nil
}

// apply authorizes caller against the stored owner and then runs transition,
// all inside a single store update.
func (e *Engine) apply(
	ctx context.Context,
	caller todo.Identity,
	action string,
	transition func(todo.State) todo.State,
) (Response, error) {
	err := e.store.Update(ctx, func(s todo.State) (todo.State, error) {
		if err := s.Authorize(caller); err != nil {
			return s, err
		}
		return transition(s), nil
	})
	if err != nil {
		return Response{}, err
	}
	return Response{Action: action}, nil
}
