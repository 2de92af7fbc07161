package todo

import (
	domtodo "github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// ToDomainTodo converts a wire record to a domain record.
func ToDomainTodo(dto *TodoDTO) domtodo.Todo {
	return domtodo.Todo{
		ID:      dto.ID,
		Title:   dto.Title,
		DueDate: dto.DueDate,
		IsDone:  dto.IsDone,
	}
}

// ToDomainTodoList converts a list response to domain records, keeping the
// server's order. An empty list yields an empty, non-nil slice.
func ToDomainTodoList(dto ListResponseDTO) []domtodo.Todo {
	todos := make([]domtodo.Todo, len(dto.Records))
	for i := range dto.Records {
		todos[i] = ToDomainTodo(&dto.Records[i])
	}
	return todos
}

// FromDomainTodo converts a domain record to its wire form.
func FromDomainTodo(t *domtodo.Todo) TodoDTO {
	return TodoDTO{
		ID:      t.ID,
		Title:   t.Title,
		DueDate: t.DueDate,
		IsDone:  t.IsDone,
	}
}

// ToInitializeRequest builds the initialize body for the given seed records.
func ToInitializeRequest(initial []domtodo.Todo) InitializeRequestDTO {
	todos := make([]TodoDTO, len(initial))
	for i := range initial {
		todos[i] = FromDomainTodo(&initial[i])
	}
	return InitializeRequestDTO{Todos: todos}
}

// ToInitializeResult converts the initialize response to the port result.
func ToInitializeResult(dto InitializeResponseDTO) *ports.InitializeResult {
	return &ports.InitializeResult{
		Method: dto.Method,
		Owner:  domtodo.Identity(dto.Owner),
		Count:  dto.Todos,
	}
}

// ToTransitionResult converts a mutation response to the port result.
func ToTransitionResult(dto TransitionResponseDTO) *ports.TransitionResult {
	return &ports.TransitionResult{Action: dto.Action}
}
