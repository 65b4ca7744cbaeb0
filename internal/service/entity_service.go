package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/devranjit/salontraining-server-sub001/internal/domain"
	"github.com/devranjit/salontraining-server-sub001/internal/registry"
	"gorm.io/gorm"
)

// Actor identifies the admin performing a mutation
type Actor struct {
	ID    uint64
	Name  string
	Email string
}

// EntityService is the generic admin surface over registered entity
// kinds. Every mutation goes through the lifecycle primitives: snapshot
// before update, recycle bin instead of hard delete.
type EntityService struct {
	reg      *registry.Registry
	versions *VersionService
	bin      *RecycleBinService
}

// NewEntityService creates an EntityService
func NewEntityService(reg *registry.Registry, versions *VersionService, bin *RecycleBinService) *EntityService {
	return &EntityService{reg: reg, versions: versions, bin: bin}
}

// Get loads one live record
func (s *EntityService) Get(ctx context.Context, entityType registry.EntityType, id uint64) (domain.Snapshot, error) {
	store, err := s.reg.Resolve(entityType)
	if err != nil {
		return nil, err
	}
	rec, err := store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Update snapshots the current state, then applies the incoming fields.
// The snapshot is best-effort: a failed history write never blocks the
// update itself.
func (s *EntityService) Update(ctx context.Context, entityType registry.EntityType, id uint64, fields domain.Snapshot, actor Actor) (domain.Snapshot, error) {
	store, err := s.reg.Resolve(entityType)
	if err != nil {
		return nil, err
	}
	current, err := store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	s.versions.RecordChange(ctx, entityType, current, SnapshotOptions{
		ChangedBy:      actor.ID,
		ChangedByName:  actor.Name,
		ChangedByEmail: actor.Email,
		ChangeType:     domain.ChangeTypeUpdate,
		NewData:        fields,
	})

	if err := store.Save(ctx, id, restorableFields(fields)); err != nil {
		return nil, err
	}
	return store.Load(ctx, id)
}

// ChangeStatus moves a record through the moderation workflow
func (s *EntityService) ChangeStatus(ctx context.Context, entityType registry.EntityType, id uint64, status string, actor Actor) (domain.Snapshot, error) {
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: status %q", common.ErrInvalidInput, status)
	}
	store, err := s.reg.Resolve(entityType)
	if err != nil {
		return nil, err
	}
	current, err := store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	s.versions.RecordChange(ctx, entityType, current, SnapshotOptions{
		ChangedBy:      actor.ID,
		ChangedByName:  actor.Name,
		ChangedByEmail: actor.Email,
		ChangeType:     domain.ChangeTypeStatusChange,
		NewData:        domain.Snapshot{"status": status},
	})

	if err := store.Save(ctx, id, domain.Snapshot{"status": status}); err != nil {
		return nil, err
	}
	return store.Load(ctx, id)
}

// Delete soft-deletes a record into the recycle bin
func (s *EntityService) Delete(ctx context.Context, entityType registry.EntityType, id uint64, actor Actor) (*domain.RecycleBinItem, error) {
	current, err := s.Get(ctx, entityType, id)
	if err != nil {
		return nil, err
	}
	return s.bin.SoftDelete(ctx, entityType, current, DeleteOptions{
		DeletedBy:     actor.ID,
		DeletedByName: actor.Name,
	})
}
