package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	acltodo "github.com/jsamuelsen11/todo-store/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// Exit codes for todoctl.
const (
	ExitSuccess     = 0
	ExitFailure     = 1 // anything not listed below
	ExitUsage       = 2 // bad flags, seed file or local config
	ExitDenied      = 3 // missing credentials or not the owner
	ExitNotFound    = 4 // store not initialized
	ExitConflict    = 5 // store already initialized
	ExitUnavailable = 6
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err. Domain errors returned by the
// store client map to their own codes; anything else is ExitFailure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, domain.ErrValidation):
		return ExitUsage
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrUnauthorized):
		return ExitDenied
	case errors.Is(err, domain.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, domain.ErrConflict):
		return ExitConflict
	case errors.Is(err, domain.ErrUnavailable):
		return ExitUnavailable
	default:
		return ExitFailure
	}
}

// printer renders command results as text or JSON. JSON output reuses the
// store API's wire shapes.
type printer struct {
	format string
	w      io.Writer
}

func (p printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p printer) initialized(r *ports.InitializeResult) error {
	if p.format == FormatJSON {
		return p.json(acltodo.InitializeResponseDTO{Method: r.Method, Owner: r.Owner.String(), Todos: r.Count})
	}
	_, err := fmt.Fprintf(p.w, "store initialized (owner %s, %d records)\n", r.Owner, r.Count)
	return err
}

func (p printer) healthy(name string) error {
	if p.format == FormatJSON {
		return p.json(map[string]string{"name": name, "status": "ok"})
	}
	_, err := fmt.Fprintf(p.w, "%s: ok\n", name)
	return err
}

func (p printer) transition(r *ports.TransitionResult) error {
	if p.format == FormatJSON {
		return p.json(acltodo.TransitionResponseDTO{Action: r.Action})
	}
	_, err := fmt.Fprintln(p.w, r.Action)
	return err
}

func (p printer) records(records []todo.Todo) error {
	if p.format == FormatJSON {
		out := acltodo.ListResponseDTO{Records: make([]acltodo.TodoDTO, len(records)), Count: len(records)}
		for i := range records {
			out.Records[i] = acltodo.FromDomainTodo(&records[i])
		}
		return p.json(out)
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(p.w, "no records")
		return err
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tDUE\tTITLE")
	for _, r := range records {
		done := " "
		if r.IsDone {
			done = "x"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, done, r.DueDate, r.Title)
	}
	return tw.Flush()
}

func (p printer) token(token string) error {
	if p.format == FormatJSON {
		return p.json(map[string]string{"token": token})
	}
	_, err := fmt.Fprintln(p.w, token)
	return err
}
