package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/todo-store/internal/adapters/http"
	"github.com/jsamuelsen11/todo-store/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-store/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-store/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-store/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/todo-store/internal/app"
	"github.com/jsamuelsen11/todo-store/internal/platform/auth"
	"github.com/jsamuelsen11/todo-store/mocks"
)

const callerHeader = "X-Caller-ID"

func headerIdentity() func(http.Handler) http.Handler {
	return middleware.Identity(auth.NewHeaderResolver(callerHeader))
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	registry := mocks.NewMockHealthRegistry(t)

	router := adapthttp.NewRouter(handlers.NewTodoHandler(svc), handlers.NewHealthHandler(registry), headerIdentity())
	return router, svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []string{
		"GET /health/live",
		"GET /health/ready",
		"POST /api/v1/store",
		"GET /api/v1/todos",
		"POST /api/v1/todos",
		"DELETE /api/v1/todos",
		"PUT /api/v1/todos/{id}",
		"DELETE /api/v1/todos/{id}",
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, key := range expectedRoutes {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(
		handlers.NewTodoHandler(mocks.NewMockTodoService(t)),
		handlers.NewHealthHandler(registry),
		headerIdentity(),
		testMW,
	)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_AnonymousMutationRejectedBeforeService(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/todos", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRouter_AnonymousList(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)
	svc.EXPECT().List(mock.Anything).Return(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturnsProblem(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != dto.ProblemContentType {
		t.Errorf("Content-Type = %q, want %q", ct, dto.ProblemContentType)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/todos/1", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

// TestRouter_OwnerAndStranger drives the real service over HTTP: the owner
// creates the store and adds a record, a stranger is refused, anyone can read.
func TestRouter_OwnerAndStranger(t *testing.T) {
	t.Parallel()

	svc, err := app.NewTodoService(memory.New(), nil)
	if err != nil {
		t.Fatalf("NewTodoService() error = %v", err)
	}
	router := adapthttp.NewRouter(
		handlers.NewTodoHandler(svc),
		handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t)),
		headerIdentity(),
	)

	do := func(method, path, caller, body string) *httptest.ResponseRecorder {
		t.Helper()
		var r io.Reader = http.NoBody
		if body != "" {
			r = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, r)
		if caller != "" {
			req.Header.Set(callerHeader, caller)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	steps := []struct {
		method, path, caller, body string
		wantStatus                 int
	}{
		{http.MethodGet, "/api/v1/todos", "", "", http.StatusNotFound},
		{http.MethodPost, "/api/v1/store", "alice", `{"todos":[{"id":1,"title":"a"}]}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/store", "mallory", ``, http.StatusConflict},
		{http.MethodPost, "/api/v1/todos", "alice", `{"id":2,"title":"b"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/todos", "mallory", `{"id":3,"title":"spam"}`, http.StatusForbidden},
		{http.MethodPut, "/api/v1/todos/1", "alice", `{"title":"a2","is_done":true}`, http.StatusOK},
		{http.MethodDelete, "/api/v1/todos", "mallory", "", http.StatusForbidden},
	}
	for i, s := range steps {
		if rec := do(s.method, s.path, s.caller, s.body); rec.Code != s.wantStatus {
			t.Fatalf("step %d %s %s as %q: status = %d, want %d; body = %s",
				i, s.method, s.path, s.caller, rec.Code, s.wantStatus, rec.Body.String())
		}
	}

	rec := do(http.MethodGet, "/api/v1/todos", "", "")
	var list dto.TodoListResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	want := []dto.TodoResponse{{ID: 2, Title: "b"}, {ID: 1, Title: "a2", IsDone: true}}
	if list.Count != len(want) {
		t.Fatalf("records = %+v, want %+v", list.Records, want)
	}
	for i := range want {
		if list.Records[i] != want[i] {
			t.Errorf("records[%d] = %+v, want %+v", i, list.Records[i], want[i])
		}
	}
}
