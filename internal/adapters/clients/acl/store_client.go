package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	acltodo "github.com/jsamuelsen11/todo-store/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// Compile-time check that StoreClient implements ports.StoreClient.
var _ ports.StoreClient = (*StoreClient)(nil)

const (
	storePath = "/api/v1/store"
	todosPath = "/api/v1/todos"
)

// StoreClient talks to a remote todo-store service. The caller identity is
// carried by the httpclient.Client credentials.
type StoreClient struct {
	client *httpclient.Client
	req    *Requester
}

// NewStoreClient creates a StoreClient over client.
func NewStoreClient(client *httpclient.Client, logger *slog.Logger) *StoreClient {
	return &StoreClient{
		client: client,
		req:    NewRequester(client, logger),
	}
}

// Initialize creates the remote store owned by the caller.
func (c *StoreClient) Initialize(ctx context.Context, initial []todo.Todo) (*ports.InitializeResult, error) {
	var resp acltodo.InitializeResponseDTO
	err := c.req.Do(ctx, http.MethodPost, storePath, http.StatusCreated, acltodo.ToInitializeRequest(initial), &resp)
	if err != nil {
		return nil, fmt.Errorf("initializing store: %w", err)
	}
	return acltodo.ToInitializeResult(resp), nil
}

// Add appends t to the remote list.
func (c *StoreClient) Add(ctx context.Context, t todo.Todo) (*ports.TransitionResult, error) {
	return c.transition(ctx, http.MethodPost, todosPath, acltodo.FromDomainTodo(&t), "adding record")
}

// Remove drops every remote record with id.
func (c *StoreClient) Remove(ctx context.Context, id int64) (*ports.TransitionResult, error) {
	return c.transition(ctx, http.MethodDelete, recordPath(id), nil, "removing record")
}

// Update replaces every remote record sharing t's ID.
func (c *StoreClient) Update(ctx context.Context, t todo.Todo) (*ports.TransitionResult, error) {
	return c.transition(ctx, http.MethodPut, recordPath(t.ID), acltodo.FromDomainTodo(&t), "updating record")
}

// Reset clears the remote list.
func (c *StoreClient) Reset(ctx context.Context) (*ports.TransitionResult, error) {
	return c.transition(ctx, http.MethodDelete, todosPath, nil, "resetting store")
}

// List returns every remote record in stored order.
func (c *StoreClient) List(ctx context.Context) ([]todo.Todo, error) {
	var resp acltodo.ListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, todosPath, http.StatusOK, nil, &resp); err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return acltodo.ToDomainTodoList(resp), nil
}

func (c *StoreClient) transition(ctx context.Context, method, path string, body any, op string) (*ports.TransitionResult, error) {
	var resp acltodo.TransitionResponseDTO
	if err := c.req.Do(ctx, method, path, http.StatusOK, body, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return acltodo.ToTransitionResult(resp), nil
}

func recordPath(id int64) string {
	return fmt.Sprintf("%s/%d", todosPath, id)
}
