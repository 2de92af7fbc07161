package dto

import (
	"fmt"

	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
)

const msgRequired = domain.MsgRequired

// TodoRequest represents a record in a JSON request body. ID is a pointer so
// that a missing id can be told apart from id 0.
type TodoRequest struct {
	ID      *int64 `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	IsDone  bool   `json:"is_done"`
}

// Validate checks that the id is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *TodoRequest) Validate() error {
	if r.ID == nil {
		return &domain.ValidationError{Fields: map[string]string{"id": msgRequired}}
	}
	return nil
}

// ToDomain converts the request to a domain record. A missing id maps to 0.
func (r *TodoRequest) ToDomain() todo.Todo {
	t := todo.Todo{
		Title:   r.Title,
		DueDate: r.DueDate,
		IsDone:  r.IsDone,
	}
	if r.ID != nil {
		t.ID = *r.ID
	}
	return t
}

// InitializeRequest represents the JSON body for creating the store.
// Records are stored as given; duplicates are allowed.
type InitializeRequest struct {
	Todos []TodoRequest `json:"todos"`
}

// Validate checks that every seed record carries an id.
// Returns a *domain.ValidationError if any checks fail.
func (r *InitializeRequest) Validate() error {
	fields := make(map[string]string)

	for i := range r.Todos {
		if r.Todos[i].ID == nil {
			fields[fmt.Sprintf("todos[%d].id", i)] = msgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the seed records to domain records, keeping their order.
func (r *InitializeRequest) ToDomain() []todo.Todo {
	records := make([]todo.Todo, len(r.Todos))
	for i := range r.Todos {
		records[i] = r.Todos[i].ToDomain()
	}
	return records
}
