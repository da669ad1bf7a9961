package domain

import "time"

// BackupSnapshot is a consistent point-in-time copy of all persisted
// state, used by the backup collaborator. It is read-only with respect
// to the stores.
type BackupSnapshot struct {
	CreatedAt time.Time  `json:"createdAt"`
	Profiles  []*Profile `json:"profiles"`
	Sales     []*Sale    `json:"sales"`
	Settings  []*Setting `json:"settings"`
}

type SnapshotRepository interface {
	// Snapshot reads profiles, sales and settings inside one read-only
	// transaction so the copy is consistent without blocking writers.
	Snapshot() (*BackupSnapshot, error)
}
