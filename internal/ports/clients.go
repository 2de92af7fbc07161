package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
)

// StoreClient defines the client port for a remote record store.
// Implemented by the ACL adapter; used by the todoctl command line.
// The caller identity travels in the client's credentials, not in the
// method arguments. HealthCheck reports whether the remote service is
// reachable and ready.
type StoreClient interface {
	HealthChecker

	// Initialize creates the remote store with the caller as owner.
	Initialize(ctx context.Context, initial []todo.Todo) (*InitializeResult, error)

	// Add appends a record to the remote list.
	Add(ctx context.Context, t todo.Todo) (*TransitionResult, error)

	// Remove drops every remote record with the given ID.
	Remove(ctx context.Context, id int64) (*TransitionResult, error)

	// Update replaces every remote record sharing t's ID.
	Update(ctx context.Context, t todo.Todo) (*TransitionResult, error)

	// Reset clears the remote list.
	Reset(ctx context.Context) (*TransitionResult, error)

	// List returns every remote record in stored order.
	List(ctx context.Context) ([]todo.Todo, error)
}
