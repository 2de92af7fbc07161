// Package todo holds the todo record, the caller identity and the owned
// record-list state together with the pure transitions applied to it.
package todo

// Todo is a single record in the owner's list. Identity is ID, but IDs are
// not required to be unique: the list accepts whatever callers add.
// DueDate is opaque text and is never parsed.
type Todo struct {
	ID      int64
	Title   string
	DueDate string
	IsDone  bool
}

// Action names reported by successful transitions.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionUpdate = "update"
	ActionReset  = "reset"
)
