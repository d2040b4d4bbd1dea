package backend

import "fmt"

// Config holds configuration for backend creation.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// KV (Badger) specific
	BadgerPath string
}

// Validate validates the backend configuration.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLite database path is required for sqlite backend")
		}
	case KVBackend:
		if c.BadgerPath == "" {
			return fmt.Errorf("Badger path is required for kv backend")
		}
	case MemoryBackend:
		// Nothing to validate.
	}

	return nil
}
