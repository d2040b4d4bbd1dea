package backend

import (
	"fmt"
	"log/slog"

	"sman/internal/store/kv"
	"sman/internal/store/memory"
	"sman/internal/store/sqlite"
)

// Factory creates stores based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

func (f *Factory) CreateStore(config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		st, err := sqlite.Open(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
		return &Result{Store: st, Cleanup: st.Close}, nil

	case KVBackend:
		st, err := kv.Open(config.BadgerPath)
		if err != nil {
			return nil, fmt.Errorf("initialize kv store: %w", err)
		}
		f.logger.Info("Initialized Badger backend", "path", config.BadgerPath)
		return &Result{Store: st, Cleanup: st.Close}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &Result{Store: memory.New(), Cleanup: nil}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
