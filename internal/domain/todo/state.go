package todo

import (
	"fmt"

	"github.com/jsamuelsen11/todo-store/internal/domain"
)

// State is the persisted store: the owner fixed at initialization and the
// ordered record list. Transition methods never modify the receiver; they
// return a new State that shares nothing with it.
type State struct {
	Owner   Identity
	Records []Todo
}

// NewState builds the initial state for owner. The initial records are taken
// as given (duplicates and blank fields included).
func NewState(owner Identity, initial []Todo) (State, error) {
	if owner.IsZero() {
		return State{}, &domain.ValidationError{
			Fields: map[string]string{"owner": domain.MsgRequired},
		}
	}
	return State{Owner: owner, Records: cloneRecords(initial)}, nil
}

// Authorize returns domain.ErrUnauthorized unless caller is the owner.
func (s State) Authorize(caller Identity) error {
	if caller != s.Owner {
		return fmt.Errorf("caller %q is not the store owner: %w", caller, domain.ErrUnauthorized)
	}
	return nil
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	return State{Owner: s.Owner, Records: cloneRecords(s.Records)}
}

// Add appends t to the end of the list, without any duplicate-id check.
func (s State) Add(t Todo) State {
	records := make([]Todo, 0, len(s.Records)+1)
	records = append(records, s.Records...)
	records = append(records, t)
	return State{Owner: s.Owner, Records: records}
}

// Remove drops every record whose ID equals id. Untouched records keep their
// relative order. Removing an absent id is a no-op.
func (s State) Remove(id int64) State {
	return State{Owner: s.Owner, Records: without(s.Records, id)}
}

// Replace removes every record with t's ID and appends t, so the replaced
// record moves to the end. With no prior match it behaves like Add.
func (s State) Replace(t Todo) State {
	records := without(s.Records, t.ID)
	records = append(records, t)
	return State{Owner: s.Owner, Records: records}
}

// Reset clears the record list. The owner is left as is.
func (s State) Reset() State {
	return State{Owner: s.Owner, Records: []Todo{}}
}

// without returns a fresh slice holding the records whose ID differs from id.
func without(records []Todo, id int64) []Todo {
	kept := make([]Todo, 0, len(records)+1)
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return kept
}

func cloneRecords(records []Todo) []Todo {
	out := make([]Todo, len(records))
	copy(out, records)
	return out
}
