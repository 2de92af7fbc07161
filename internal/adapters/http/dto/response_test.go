package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/todo-store/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

func TestToTodoListResponse_WireShape(t *testing.T) {
	t.Parallel()

	got, err := json.Marshal(dto.ToTodoListResponse([]todo.Todo{
		{ID: 1, Title: "milk", DueDate: "2024-05-01", IsDone: true},
	}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"records":[{"id":1,"title":"milk","due_date":"2024-05-01","is_done":true}],"count":1}`
	if string(got) != want {
		t.Errorf("json = %s, want %s", got, want)
	}
}

func TestToTodoListResponse_EmptyIsArray(t *testing.T) {
	t.Parallel()

	got, err := json.Marshal(dto.ToTodoListResponse(nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"records":[],"count":0}`; string(got) != want {
		t.Errorf("json = %s, want %s", got, want)
	}
}

func TestToInitializeResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToInitializeResponse(&ports.InitializeResult{Method: "instantiate", Owner: "alice", Count: 2})
	want := dto.InitializeResponse{Method: "instantiate", Owner: "alice", Todos: 2}
	if got != want {
		t.Errorf("ToInitializeResponse() = %+v, want %+v", got, want)
	}
}

func TestToTransitionResponse(t *testing.T) {
	t.Parallel()

	got, _ := json.Marshal(dto.ToTransitionResponse(&ports.TransitionResult{Action: todo.ActionReset}))
	if want := `{"action":"reset"}`; string(got) != want {
		t.Errorf("json = %s, want %s", got, want)
	}
}
