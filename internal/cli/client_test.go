package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/mocks"
)

func TestHealthCommand(t *testing.T) {
	client := mocks.NewMockStoreClient(t)
	client.EXPECT().HealthCheck(mock.Anything).Return(nil)
	client.EXPECT().Name().Return("store-api")

	out, err := runWith(t, client, "health")

	require.NoError(t, err)
	assert.Equal(t, "store-api: ok\n", out)
}

func TestHealthCommand_JSON(t *testing.T) {
	client := mocks.NewMockStoreClient(t)
	client.EXPECT().HealthCheck(mock.Anything).Return(nil)
	client.EXPECT().Name().Return("store-api")

	out, err := runWith(t, client, "health", "--format", "json")

	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"store-api","status":"ok"}`, out)
}

func TestHealthCommand_NotReady(t *testing.T) {
	tests := map[string]error{
		"not ready":   domain.ErrUnavailable,
		"unreachable": errors.New("dial tcp 127.0.0.1:1: connection refused"),
	}

	for name, cause := range tests {
		t.Run(name, func(t *testing.T) {
			client := mocks.NewMockStoreClient(t)
			client.EXPECT().HealthCheck(mock.Anything).Return(cause)
			client.EXPECT().Name().Return("store-api")

			_, err := runWith(t, client, "health")

			require.ErrorIs(t, err, cause)
			assert.Equal(t, ExitUnavailable, GetExitCode(err))
		})
	}
}

// storeServer answers list and readiness requests and records the
// correlation header of each request.
func storeServer(t *testing.T, correlation *[]string) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*correlation = append(*correlation, r.Header.Get("X-Correlation-ID"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/todos":
			_, _ = w.Write([]byte(`{"records":[],"count":0}`))
		case "/health/ready":
			_, _ = w.Write([]byte(`{"status":"ready","checks":{}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestVerboseClientRecordsMetrics(t *testing.T) {
	var correlation []string
	ts := storeServer(t, &correlation)

	var stderr bytes.Buffer
	opts := &RootOptions{BaseURL: ts.URL, Verbose: true}
	client, err := newStoreClient(opts, &stderr)
	require.NoError(t, err)
	require.NotNil(t, opts.flush, "verbose client should register a metrics flush")

	_, err = client.List(context.Background())
	require.NoError(t, err)
	require.NoError(t, opts.flushMetrics(context.Background()))

	assert.Contains(t, stderr.String(), "http.client.request.total")
	assert.Contains(t, stderr.String(), "http.client.request.duration")
}

func TestQuietClientHasNoMetrics(t *testing.T) {
	opts := &RootOptions{BaseURL: "http://127.0.0.1:1"}
	_, err := newStoreClient(opts, io.Discard)

	require.NoError(t, err)
	assert.Nil(t, opts.flush)
	assert.NoError(t, opts.flushMetrics(context.Background()))
}

func TestCommandSendsCorrelationID(t *testing.T) {
	var correlation []string
	ts := storeServer(t, &correlation)

	cmd := newRootCommand(&RootOptions{newClient: newStoreClient})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--base-url", ts.URL, "health"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "store-api: ok\n", out.String())
	require.Len(t, correlation, 1)
	assert.NotEmpty(t, correlation[0])
}
