// Package redisstore keeps the store state as a single JSON document under
// one redis key. SET replaces the whole document, so every Save is atomic.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/platform/config"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.StateStore    = (*Store)(nil)
	_ ports.StateCreator  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// document is the stored JSON shape.
type document struct {
	Owner   string         `json:"owner"`
	Records []recordFields `json:"records"`
}

type recordFields struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	IsDone  bool   `json:"is_done"`
}

// Store implements [ports.StateStore] on a redis key.
type Store struct {
	client *redis.Client
	key    string
}

// New wraps an existing client. The caller keeps ownership of client
// unless it calls Close on the Store.
func New(client *redis.Client, key string) *Store {
	return &Store{client: client, key: key}
}

// Open connects to redis using the store.redis config section and verifies
// the connection with PING.
func Open(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return New(client, cfg.Key), nil
}

// Load fetches and decodes the state document.
func (s *Store) Load(ctx context.Context) (*todo.State, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", s.key, err)
	}
	return decode(data)
}

// Save encodes state and overwrites the key.
func (s *Store) Save(ctx context.Context, state *todo.State) error {
	data, err := encode(state)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("writing %s: %w", s.key, err)
	}
	return nil
}

// Create writes the state document with SETNX, so only the first of
// several concurrent initializers succeeds.
func (s *Store) Create(ctx context.Context, state *todo.State) error {
	data, err := encode(state)
	if err != nil {
		return err
	}
	created, err := s.client.SetNX(ctx, s.key, data, 0).Result()
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.key, err)
	}
	if !created {
		return domain.ErrConflict
	}
	return nil
}

// Name implements [ports.HealthChecker].
func (s *Store) Name() string {
	return "state-store"
}

// HealthCheck pings redis.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func encode(state *todo.State) ([]byte, error) {
	doc := document{
		Owner:   state.Owner.String(),
		Records: make([]recordFields, len(state.Records)),
	}
	for i, t := range state.Records {
		doc.Records[i] = recordFields(t)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*todo.State, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding state: %w", err)
	}

	records := make([]todo.Todo, len(doc.Records))
	for i, r := range doc.Records {
		records[i] = todo.Todo(r)
	}
	return &todo.State{Owner: todo.Identity(doc.Owner), Records: records}, nil
}
