// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// TodoResponse represents a single record in HTTP responses.
type TodoResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	IsDone  bool   `json:"is_done"`
}

// TodoListResponse represents the full record list in HTTP responses.
type TodoListResponse struct {
	Records []TodoResponse `json:"records"`
	Count   int            `json:"count"`
}

// TransitionResponse reports which transition was applied.
type TransitionResponse struct {
	Action string `json:"action"`
}

// InitializeResponse describes a freshly created store.
type InitializeResponse struct {
	Method string `json:"method"`
	Owner  string `json:"owner"`
	Todos  int    `json:"todos"`
}

// ToTodoResponse converts a domain record to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:      t.ID,
		Title:   t.Title,
		DueDate: t.DueDate,
		IsDone:  t.IsDone,
	}
}

// ToTodoListResponse converts the record list to an HTTP list response DTO.
// An empty list encodes as [] rather than null.
func ToTodoListResponse(records []todo.Todo) TodoListResponse {
	items := make([]TodoResponse, len(records))
	for i := range records {
		items[i] = ToTodoResponse(&records[i])
	}
	return TodoListResponse{
		Records: items,
		Count:   len(items),
	}
}

// ToTransitionResponse converts a ports.TransitionResult to an HTTP response DTO.
func ToTransitionResponse(r *ports.TransitionResult) TransitionResponse {
	return TransitionResponse{Action: r.Action}
}

// ToInitializeResponse converts a ports.InitializeResult to an HTTP response DTO.
func ToInitializeResponse(r *ports.InitializeResult) InitializeResponse {
	return InitializeResponse{
		Method: r.Method,
		Owner:  r.Owner.String(),
		Todos:  r.Count,
	}
}
