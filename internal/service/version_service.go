package service

import (
	"context"
	"errors"
	"time"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/devranjit/salontraining-server-sub001/internal/config"
	"github.com/devranjit/salontraining-server-sub001/internal/domain"
	"github.com/devranjit/salontraining-server-sub001/internal/registry"
	"github.com/devranjit/salontraining-server-sub001/internal/repository"
	"github.com/devranjit/salontraining-server-sub001/pkg/logger"
	"gorm.io/gorm"
)

// SnapshotOptions describes who made a change and what it was
type SnapshotOptions struct {
	ChangedBy           uint64
	ChangedByName       string
	ChangedByEmail      string
	ChangeType          string
	NewData             domain.Snapshot
	RestoredFromVersion uint
}

// VersionService owns the append-only version history log
type VersionService struct {
	versions repository.VersionRepository
	reg      *registry.Registry
	cfg      config.LifecycleConfig
}

// NewVersionService creates a VersionService
func NewVersionService(versions repository.VersionRepository, reg *registry.Registry, cfg config.LifecycleConfig) *VersionService {
	return &VersionService{versions: versions, reg: reg, cfg: cfg}
}

// CreateSnapshot captures the current state of a live record as the next
// version for its entity, then prunes versions beyond the retention cap.
func (s *VersionService) CreateSnapshot(ctx context.Context, entityType registry.EntityType, live domain.Snapshot, opts SnapshotOptions) (*domain.VersionRecord, error) {
	store, err := s.reg.Resolve(entityType)
	if err != nil {
		return nil, err
	}
	entityID, err := entityIDOf(live)
	if err != nil {
		return nil, err
	}

	next, err := s.versions.NextVersion(ctx, string(entityType), entityID)
	if err != nil {
		return nil, err
	}

	snapshot := live.Clone()

	var summary domain.StringList
	switch {
	case opts.NewData != nil:
		summary = changeSummary(snapshot, opts.NewData)
	case opts.ChangeType == domain.ChangeTypeCreate:
		summary = domain.StringList{"Created"}
	default:
		summary = domain.StringList{"Updated"}
	}

	record := &domain.VersionRecord{
		EntityType:          string(entityType),
		EntityID:            entityID,
		CollectionName:      store.CollectionName(),
		Version:             next,
		Snapshot:            snapshot,
		ChangeSummary:       summary,
		Metadata:            store.Metadata(snapshot),
		ChangedBy:           opts.ChangedBy,
		ChangedByName:       opts.ChangedByName,
		ChangedByEmail:      opts.ChangedByEmail,
		ChangeType:          opts.ChangeType,
		RestoredFromVersion: opts.RestoredFromVersion,
	}
	if record.ChangeType == "" {
		record.ChangeType = domain.ChangeTypeUpdate
	}

	if err := s.versions.Create(ctx, record); err != nil {
		return nil, err
	}

	if pruned, err := s.versions.Prune(ctx, string(entityType), entityID, s.cfg.MaxVersionsPerEntity); err != nil {
		logger.GetLogger().Warn().Err(err).
			Str("entity_type", string(entityType)).
			Uint64("entity_id", entityID).
			Msg("version prune failed")
	} else if pruned > 0 {
		logger.GetLogger().Debug().
			Str("entity_type", string(entityType)).
			Uint64("entity_id", entityID).
			Int64("pruned", pruned).
			Msg("pruned old versions")
	}

	return record, nil
}

// RecordChange is the best-effort entry point used by update and
// moderation handlers. Version history must never block the primary
// mutation it records, so failures are logged and swallowed; callers
// get the record back when it worked and nil when it did not.
func (s *VersionService) RecordChange(ctx context.Context, entityType registry.EntityType, live domain.Snapshot, opts SnapshotOptions) *domain.VersionRecord {
	record, err := s.CreateSnapshot(ctx, entityType, live, opts)
	if err != nil {
		logger.GetLogger().Error().Err(err).
			Str("entity_type", string(entityType)).
			Str("change_type", opts.ChangeType).
			Msg("version snapshot failed, continuing without history")
		return nil
	}
	return record
}

// List returns an entity's versions newest-first with the total count
func (s *VersionService) List(ctx context.Context, entityType registry.EntityType, entityID uint64, page, limit int) ([]*domain.VersionRecord, int64, error) {
	if _, err := s.reg.Resolve(entityType); err != nil {
		return nil, 0, err
	}
	page, limit = normalizePage(page, limit)
	return s.versions.FindByEntity(ctx, string(entityType), entityID, page, limit)
}

// ListRecent returns history across all entities, newest-first
func (s *VersionService) ListRecent(ctx context.Context, filter repository.VersionFilter) ([]*domain.VersionRecord, int64, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	return s.versions.FindRecent(ctx, filter)
}

// Get returns one version record
func (s *VersionService) Get(ctx context.Context, versionID uint64) (*domain.VersionRecord, error) {
	v, err := s.versions.FindByID(ctx, versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// RestoreOptions who triggered a restore-to-version
type RestoreOptions struct {
	RestoredBy      uint64
	RestoredByName  string
	RestoredByEmail string
}

// Restore rolls a live record back to an earlier version. The current
// live state is snapshotted first so the pre-restore state is never
// lost; identity and ownership fields are never written back.
func (s *VersionService) Restore(ctx context.Context, versionID uint64, opts RestoreOptions) (domain.Snapshot, error) {
	version, err := s.Get(ctx, versionID)
	if err != nil {
		return nil, err
	}

	entityType := registry.EntityType(version.EntityType)
	store, err := s.reg.Resolve(entityType)
	if err != nil {
		return nil, err
	}

	current, err := store.Load(ctx, version.EntityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrEntityGone
		}
		return nil, err
	}

	// The pre-restore capture is not best-effort: losing it would make
	// the restore destructive, so a failure here aborts the restore.
	if _, err := s.CreateSnapshot(ctx, entityType, current, SnapshotOptions{
		ChangedBy:           opts.RestoredBy,
		ChangedByName:       opts.RestoredByName,
		ChangedByEmail:      opts.RestoredByEmail,
		ChangeType:          domain.ChangeTypeRestore,
		RestoredFromVersion: version.Version,
	}); err != nil {
		return nil, err
	}

	if err := store.Save(ctx, version.EntityID, restorableFields(version.Snapshot)); err != nil {
		return nil, err
	}

	return store.Load(ctx, version.EntityID)
}

// Compare diffs two version snapshots field by field
func (s *VersionService) Compare(ctx context.Context, versionID1, versionID2 uint64) ([]domain.FieldDiff, error) {
	v1, err := s.Get(ctx, versionID1)
	if err != nil {
		return nil, err
	}
	v2, err := s.Get(ctx, versionID2)
	if err != nil {
		return nil, err
	}
	return compareSnapshots(v1.Snapshot, v2.Snapshot), nil
}

// Stats returns aggregate history counters
func (s *VersionService) Stats(ctx context.Context) (*domain.VersionStats, error) {
	return s.versions.Stats(ctx, time.Now().Add(-24*time.Hour))
}

func normalizePage(page, limit int) (int, int) {
	return common.NormalizePagination(page, limit)
}
