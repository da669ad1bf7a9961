package storage

import "context"

// ArchiveStore persists backup archives. Implementations are best-effort
// external copies; they never touch the primary database.
type ArchiveStore interface {
	Store(ctx context.Context, name string, data []byte) error
}
