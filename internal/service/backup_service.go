package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/repository/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BackupService produces point-in-time archives of the persisted state.
// It runs outside the core request path: backups read a consistent
// snapshot but never block writers.
type BackupService struct {
	snapshotRepo domain.SnapshotRepository
	stores       []storage.ArchiveStore
	hour         int
	now          func() time.Time
}

// NewBackupService creates a new BackupService. hour is the local hour
// of day at which the daily backup fires.
func NewBackupService(snapshotRepo domain.SnapshotRepository, hour int, stores ...storage.ArchiveStore) *BackupService {
	return &BackupService{
		snapshotRepo: snapshotRepo,
		stores:       stores,
		hour:         hour,
		now:          time.Now,
	}
}

// Run takes one backup: snapshot, marshal, hand to every archive store.
// A store failure is logged and does not abort the remaining stores.
func (s *BackupService) Run(ctx context.Context) error {
	runID := uuid.New()

	snapshot, err := s.snapshotRepo.Snapshot()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	name := "backup_" + snapshot.CreatedAt.Format("2006-01-02") + ".json"
	for _, store := range s.stores {
		if err := store.Store(ctx, name, data); err != nil {
			log.Error().Err(err).Str("run_id", runID.String()).Str("name", name).Msg("Backup store failed")
			continue
		}
	}

	log.Info().
		Str("run_id", runID.String()).
		Str("name", name).
		Int("profiles", len(snapshot.Profiles)).
		Int("sales", len(snapshot.Sales)).
		Msg("Backup completed")
	return nil
}

// Start runs the daily backup loop until the context is cancelled. The
// process lifecycle owns this goroutine; the core exposes no scheduling
// of its own.
func (s *BackupService) Start(ctx context.Context) {
	for {
		wait := time.Until(s.nextFire())

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			if err := s.Run(ctx); err != nil {
				log.Error().Err(err).Msg("Scheduled backup failed")
			}
		}
	}
}

// nextFire returns the next occurrence of the configured hour.
func (s *BackupService) nextFire() time.Time {
	now := s.now()
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
