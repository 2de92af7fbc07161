// Package storagetest holds the behavioral contract every [ports.StateStore]
// backend must satisfy. Backend test files call RunContract with a factory
// that returns a fresh, uninitialized store.
package storagetest

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// Factory returns a fresh, empty store for one subtest.
type Factory func(t *testing.T) ports.StateStore

// RunContract runs the shared backend contract. Subtests run sequentially so
// that backends sharing one external server do not interfere.
func RunContract(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("load before save is not found", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Load(context.Background())
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Load() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("round trip preserves owner and order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		want := &todo.State{
			Owner: "alice",
			Records: []todo.Todo{
				{ID: 3, Title: "third", DueDate: "2024-03-01", IsDone: true},
				{ID: 1, Title: "first", DueDate: "", IsDone: false},
				{ID: 3, Title: "dup", DueDate: "next week", IsDone: false},
			},
		}
		if err := s.Save(ctx, want); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Owner != want.Owner {
			t.Errorf("Owner = %q, want %q", got.Owner, want.Owner)
		}
		if !reflect.DeepEqual(got.Records, want.Records) {
			t.Errorf("Records = %+v, want %+v", got.Records, want.Records)
		}
	})

	t.Run("save overwrites prior state", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		first := &todo.State{Owner: "alice", Records: []todo.Todo{{ID: 1}, {ID: 2}}}
		if err := s.Save(ctx, first); err != nil {
			t.Fatalf("Save(first) error = %v", err)
		}
		second := &todo.State{Owner: "alice", Records: []todo.Todo{{ID: 9, Title: "only"}}}
		if err := s.Save(ctx, second); err != nil {
			t.Fatalf("Save(second) error = %v", err)
		}

		got, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !reflect.DeepEqual(got.Records, second.Records) {
			t.Errorf("Records = %+v, want %+v", got.Records, second.Records)
		}
	})

	t.Run("empty record list", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		if err := s.Save(ctx, &todo.State{Owner: "bob", Records: []todo.Todo{}}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Owner != "bob" {
			t.Errorf("Owner = %q, want %q", got.Owner, "bob")
		}
		if len(got.Records) != 0 {
			t.Errorf("len(Records) = %d, want 0", len(got.Records))
		}
	})

	t.Run("create claims an empty store once", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		creator, ok := s.(ports.StateCreator)
		if !ok {
			t.Skip("backend does not implement ports.StateCreator")
		}

		first := &todo.State{Owner: "alice", Records: []todo.Todo{{ID: 1, Title: "a"}}}
		if err := creator.Create(ctx, first); err != nil {
			t.Fatalf("Create(first) error = %v", err)
		}
		err := creator.Create(ctx, &todo.State{Owner: "mallory", Records: []todo.Todo{}})
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("Create(second) error = %v, want ErrConflict", err)
		}

		got, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Owner != first.Owner {
			t.Errorf("Owner = %q, want %q", got.Owner, first.Owner)
		}
		if !reflect.DeepEqual(got.Records, first.Records) {
			t.Errorf("Records = %+v, want %+v", got.Records, first.Records)
		}
	})
}
