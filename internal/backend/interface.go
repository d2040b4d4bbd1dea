package backend

import (
	"sman/internal/store"
)

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Result contains the opened store and its optional cleanup function.
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Type selects the persistence backend.
type Type string

const (
	MemoryBackend Type = "memory"
	KVBackend     Type = "kv"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid.
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, KVBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}
