package todo

import (
	"encoding/json"
	"reflect"
	"testing"

	domtodo "github.com/jsamuelsen11/todo-store/internal/domain/todo"
)

func TestToDomainTodo_FieldMapping(t *testing.T) {
	t.Parallel()

	dto := &TodoDTO{ID: 42, Title: "Buy groceries", DueDate: "2026-02-12", IsDone: true}

	got := ToDomainTodo(dto)

	want := domtodo.Todo{ID: 42, Title: "Buy groceries", DueDate: "2026-02-12", IsDone: true}
	if got != want {
		t.Errorf("ToDomainTodo() = %+v, want %+v", got, want)
	}
}

func TestToDomainTodoList_KeepsOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	dto := ListResponseDTO{
		Records: []TodoDTO{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}, {ID: 2, Title: "again"}},
		Count:   3,
	}

	got := ToDomainTodoList(dto)

	ids := make([]int64, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	if !reflect.DeepEqual(ids, []int64{2, 1, 2}) {
		t.Errorf("ids = %v, want [2 1 2]", ids)
	}
}

func TestToDomainTodoList_Empty(t *testing.T) {
	t.Parallel()

	got := ToDomainTodoList(ListResponseDTO{})
	if got == nil || len(got) != 0 {
		t.Errorf("ToDomainTodoList(empty) = %#v, want empty non-nil slice", got)
	}
}

func TestToInitializeRequest_WireShape(t *testing.T) {
	t.Parallel()

	req := ToInitializeRequest([]domtodo.Todo{{ID: 1, Title: "milk", DueDate: "friday"}})

	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"todos":[{"id":1,"title":"milk","due_date":"friday","is_done":false}]}`
	if string(raw) != want {
		t.Errorf("body = %s, want %s", raw, want)
	}
}

func TestToInitializeRequest_NilSeedEncodesEmptyArray(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(ToInitializeRequest(nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != `{"todos":[]}` {
		t.Errorf("body = %s, want {\"todos\":[]}", raw)
	}
}

func TestToInitializeResult(t *testing.T) {
	t.Parallel()

	got := ToInitializeResult(InitializeResponseDTO{Method: "instantiate", Owner: "alice", Todos: 2})

	if got.Method != "instantiate" || got.Owner != "alice" || got.Count != 2 {
		t.Errorf("ToInitializeResult() = %+v", got)
	}
}

func TestToTransitionResult(t *testing.T) {
	t.Parallel()

	if got := ToTransitionResult(TransitionResponseDTO{Action: "reset"}); got.Action != "reset" {
		t.Errorf("Action = %q, want %q", got.Action, "reset")
	}
}
