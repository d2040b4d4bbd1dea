package sheets

import (
	"context"

	"sman/internal/core"
)

// Ports for mirror sinks.
type (
	// MirrorWriter appends a ledger row to an external sheet.
	MirrorWriter interface {
		AppendTransaction(ctx context.Context, tx core.Transaction) (rowRef string, err error)
	}

	// MirrorDeleter removes a previously mirrored row by transaction id.
	MirrorDeleter interface {
		DeleteTransaction(ctx context.Context, id string) error
	}
)
