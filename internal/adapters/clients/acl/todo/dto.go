// Package todo implements the Anti-Corruption Layer translators for the
// store API's record resources.
package todo

// TodoDTO matches the store API's record schema.
type TodoDTO struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	IsDone  bool   `json:"is_done"`
}

// ListResponseDTO matches the store API's list response.
type ListResponseDTO struct {
	Records []TodoDTO `json:"records"`
	Count   int       `json:"count"`
}

// InitializeRequestDTO matches the store API's initialize request body.
type InitializeRequestDTO struct {
	Todos []TodoDTO `json:"todos"`
}

// InitializeResponseDTO matches the store API's initialize response.
type InitializeResponseDTO struct {
	Method string `json:"method"`
	Owner  string `json:"owner"`
	Todos  int    `json:"todos"`
}

// TransitionResponseDTO matches the body returned by every mutation.
type TransitionResponseDTO struct {
	Action string `json:"action"`
}
