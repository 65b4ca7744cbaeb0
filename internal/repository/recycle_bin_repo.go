package repository

import (
	"context"
	"time"

	"github.com/devranjit/salontraining-server-sub001/internal/domain"
	"gorm.io/gorm"
)

// BinFilter narrows recycle-bin listings
type BinFilter struct {
	EntityType string
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

// RecycleBinRepository recycle bin data access
type RecycleBinRepository interface {
	Create(ctx context.Context, item *domain.RecycleBinItem) error
	FindByID(ctx context.Context, id uint64) (*domain.RecycleBinItem, error)
	List(ctx context.Context, filter BinFilter) ([]*domain.RecycleBinItem, int64, error)
	Update(ctx context.Context, item *domain.RecycleBinItem) error
	Delete(ctx context.Context, id uint64) error
	FindExpiringSoon(ctx context.Context, now, until time.Time) ([]*domain.RecycleBinItem, error)
	MarkWarned(ctx context.Context, ids []uint64, at time.Time) error
	FindExpired(ctx context.Context, now time.Time) ([]*domain.RecycleBinItem, error)
}

type recycleBinRepository struct {
	db *gorm.DB
}

// NewRecycleBinRepository creates a new RecycleBinRepository
func NewRecycleBinRepository(db *gorm.DB) RecycleBinRepository {
	return &recycleBinRepository{db: db}
}

func (r *recycleBinRepository) Create(ctx context.Context, item *domain.RecycleBinItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *recycleBinRepository) FindByID(ctx context.Context, id uint64) (*domain.RecycleBinItem, error) {
	var item domain.RecycleBinItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *recycleBinRepository) List(ctx context.Context, filter BinFilter) ([]*domain.RecycleBinItem, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.RecycleBinItem{}).
		Where("restored_at IS NULL AND permanently_deleted_at IS NULL")

	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"meta_title LIKE ? OR meta_name LIKE ? OR meta_email LIKE ? OR meta_status LIKE ?",
			like, like, like, like,
		)
	}
	if filter.StartDate != nil {
		query = query.Where("deleted_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("deleted_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*domain.RecycleBinItem
	err := query.Order("deleted_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *recycleBinRepository) Update(ctx context.Context, item *domain.RecycleBinItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *recycleBinRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.RecycleBinItem{}).Error
}

// FindExpiringSoon returns unresolved items inside the warning window that
// have not been warned about yet
func (r *recycleBinRepository) FindExpiringSoon(ctx context.Context, now, until time.Time) ([]*domain.RecycleBinItem, error) {
	var items []*domain.RecycleBinItem
	err := r.db.WithContext(ctx).
		Where("expires_at > ? AND expires_at <= ?", now, until).
		Where("warning_sent_at IS NULL").
		Where("restored_at IS NULL AND permanently_deleted_at IS NULL").
		Order("expires_at ASC").
		Find(&items).Error
	return items, err
}

func (r *recycleBinRepository) MarkWarned(ctx context.Context, ids []uint64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&domain.RecycleBinItem{}).
		Where("id IN ?", ids).
		Update("warning_sent_at", at).Error
}

func (r *recycleBinRepository) FindExpired(ctx context.Context, now time.Time) ([]*domain.RecycleBinItem, error) {
	var items []*domain.RecycleBinItem
	err := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Where("restored_at IS NULL AND permanently_deleted_at IS NULL").
		Order("expires_at ASC").
		Find(&items).Error
	return items, err
}
