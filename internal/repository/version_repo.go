package repository

import (
	"context"
	"time"

	"github.com/devranjit/salontraining-server-sub001/internal/domain"
	"gorm.io/gorm"
)

// VersionFilter narrows cross-entity history listings
type VersionFilter struct {
	EntityType string
	ChangeType string
	Page       int
	Limit      int
}

// VersionRepository version record data access
type VersionRepository interface {
	Create(ctx context.Context, v *domain.VersionRecord) error
	NextVersion(ctx context.Context, entityType string, entityID uint64) (uint, error)
	FindByID(ctx context.Context, id uint64) (*domain.VersionRecord, error)
	FindByEntity(ctx context.Context, entityType string, entityID uint64, page, limit int) ([]*domain.VersionRecord, int64, error)
	FindRecent(ctx context.Context, filter VersionFilter) ([]*domain.VersionRecord, int64, error)
	Prune(ctx context.Context, entityType string, entityID uint64, keep int) (int64, error)
	Stats(ctx context.Context, since time.Time) (*domain.VersionStats, error)
}

type versionRepository struct {
	db *gorm.DB
}

// NewVersionRepository creates a new VersionRepository
func NewVersionRepository(db *gorm.DB) VersionRepository {
	return &versionRepository{db: db}
}

func (r *versionRepository) Create(ctx context.Context, v *domain.VersionRecord) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// NextVersion computes MAX(version)+1 for the entity, starting at 1.
// Best-effort under concurrent writers; the unique index on
// (entity_type, entity_id, version) turns a race into a write error
// instead of a duplicate number.
func (r *versionRepository) NextVersion(ctx context.Context, entityType string, entityID uint64) (uint, error) {
	var maxVersion *uint
	err := r.db.WithContext(ctx).Model(&domain.VersionRecord{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Select("MAX(version)").
		Scan(&maxVersion).Error
	if err != nil {
		return 1, err
	}
	if maxVersion == nil {
		return 1, nil
	}
	return *maxVersion + 1, nil
}

func (r *versionRepository) FindByID(ctx context.Context, id uint64) (*domain.VersionRecord, error) {
	var v domain.VersionRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *versionRepository) FindByEntity(ctx context.Context, entityType string, entityID uint64, page, limit int) ([]*domain.VersionRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.VersionRecord{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var versions []*domain.VersionRecord
	err := query.Order("version DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&versions).Error
	return versions, total, err
}

func (r *versionRepository) FindRecent(ctx context.Context, filter VersionFilter) ([]*domain.VersionRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.VersionRecord{})
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.ChangeType != "" {
		query = query.Where("change_type = ?", filter.ChangeType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var versions []*domain.VersionRecord
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&versions).Error
	return versions, total, err
}

// Prune deletes all but the `keep` highest-numbered versions of an
// entity. The keep-th highest version number is the cutoff; everything
// below it goes.
func (r *versionRepository) Prune(ctx context.Context, entityType string, entityID uint64, keep int) (int64, error) {
	if keep < 1 {
		keep = 1
	}
	var cutoff []uint
	err := r.db.WithContext(ctx).Model(&domain.VersionRecord{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("version DESC").
		Limit(1).
		Offset(keep - 1).
		Pluck("version", &cutoff).Error
	if err != nil {
		return 0, err
	}
	if len(cutoff) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ? AND version < ?", entityType, entityID, cutoff[0]).
		Delete(&domain.VersionRecord{})
	return res.RowsAffected, res.Error
}

func (r *versionRepository) Stats(ctx context.Context, since time.Time) (*domain.VersionStats, error) {
	stats := &domain.VersionStats{ByType: make(map[string]int64)}

	if err := r.db.WithContext(ctx).Model(&domain.VersionRecord{}).
		Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	type typeCount struct {
		EntityType string
		Count      int64
	}
	var counts []typeCount
	if err := r.db.WithContext(ctx).Model(&domain.VersionRecord{}).
		Select("entity_type, COUNT(*) AS count").
		Group("entity_type").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	for _, c := range counts {
		stats.ByType[c.EntityType] = c.Count
	}

	if err := r.db.WithContext(ctx).Model(&domain.VersionRecord{}).
		Where("created_at >= ?", since).
		Count(&stats.Last24Hours).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
