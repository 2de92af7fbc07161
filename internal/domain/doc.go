// Package domain contains shared domain types used across entity sub-packages.
// The todo record, caller identity and store state live in domain/todo; this
// root package holds the sentinel errors and the validation error type shared
// by every layer.
package domain
