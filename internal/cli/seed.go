package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
)

// seedFile is the YAML layout accepted by init --file.
type seedFile struct {
	Todos []seedTodo `yaml:"todos"`
}

type seedTodo struct {
	ID      *int64 `yaml:"id"`
	Title   string `yaml:"title"`
	DueDate string `yaml:"due_date"`
	IsDone  bool   `yaml:"is_done"`
}

func loadSeedFile(path string) ([]todo.Todo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parseSeed(raw)
}

// parseSeed decodes a seed document. Unknown keys are rejected and every
// record needs an id; order and duplicate ids are kept.
func parseSeed(raw []byte) ([]todo.Todo, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var seed seedFile
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	fields := map[string]string{}
	records := make([]todo.Todo, 0, len(seed.Todos))
	for i, s := range seed.Todos {
		if s.ID == nil {
			fields[fmt.Sprintf("todos[%d].id", i)] = domain.MsgRequired
			continue
		}
		records = append(records, todo.Todo{ID: *s.ID, Title: s.Title, DueDate: s.DueDate, IsDone: s.IsDone})
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return records, nil
}
