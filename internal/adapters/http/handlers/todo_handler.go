package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-store/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// TodoHandler handles HTTP requests for the owner-controlled record list.
// Mutating routes read the caller placed in the context by the Identity
// middleware; ListTodos needs no caller.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// InitializeStore handles POST /api/v1/store. The caller becomes the owner.
// The body is optional; {"todos": [...]} seeds the list.
func (h *TodoHandler) InitializeStore(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.InitializeRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	result, err := h.service.Initialize(r.Context(), caller, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToInitializeResponse(result))
}

// ListTodos handles GET /api/v1/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(records))
}

// AddTodo handles POST /api/v1/todos.
func (h *TodoHandler) AddTodo(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TodoRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	result, err := h.service.Add(r.Context(), caller, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTransitionResponse(result))
}

// UpdateTodo handles PUT /api/v1/todos/{id}. The path id replaces any id in
// the body.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TodoRequest
	if !decodeJSONBody(w, r, &req, false) {
		return
	}
	req.ID = &id

	result, err := h.service.Update(r.Context(), caller, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTransitionResponse(result))
}

// RemoveTodo handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) RemoveTodo(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.service.Remove(r.Context(), caller, todo.Todo{ID: id})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTransitionResponse(result))
}

// ResetTodos handles DELETE /api/v1/todos.
func (h *TodoHandler) ResetTodos(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.service.Reset(r.Context(), caller)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTransitionResponse(result))
}
