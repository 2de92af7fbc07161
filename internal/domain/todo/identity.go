package todo

import "strings"

// Identity names a caller. The store's owner is the identity that initialized
// it; only that identity may mutate the record list.
type Identity string

// IsZero reports whether the identity is empty or blank.
func (i Identity) IsZero() bool {
	return strings.TrimSpace(string(i)) == ""
}

// String implements fmt.Stringer.
func (i Identity) String() string {
	return string(i)
}
