package service

import (
	"context"
	"errors"
	"testing"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/devranjit/salontraining-server-sub001/internal/domain"
	"github.com/devranjit/salontraining-server-sub001/internal/registry"
	"github.com/devranjit/salontraining-server-sub001/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupEntityService(t *testing.T) (*EntityService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	reg := registry.New(db)
	versions := NewVersionService(repository.NewVersionRepository(db), reg, testLifecycle())
	bin := NewRecycleBinService(repository.NewRecycleBinRepository(db), reg, testLifecycle(), nil)
	return NewEntityService(reg, versions, bin), db
}

func TestUpdateRecordsVersionAndPersists(t *testing.T) {
	svc, db := setupEntityService(t)
	ctx := context.Background()

	trainer := &domain.Trainer{Name: "Dana Kim", Status: domain.StatusPending, CreatedBy: 7}
	db.Create(trainer)

	actor := Actor{ID: 42, Name: "Admin", Email: "admin@example.com"}
	updated, err := svc.Update(ctx, registry.EntityTrainer, trainer.ID, domain.Snapshot{
		"name": "Dana J. Kim",
		"bio":  "Updated bio",
	}, actor)
	assert.NoError(t, err)
	assert.Equal(t, "Dana J. Kim", updated["name"])

	var versions []domain.VersionRecord
	db.Where("entity_type = ? AND entity_id = ?", "trainer", trainer.ID).Find(&versions)
	assert.Len(t, versions, 1)
	assert.Equal(t, domain.ChangeTypeUpdate, versions[0].ChangeType)
	assert.Equal(t, uint64(42), versions[0].ChangedBy)
	// the snapshot holds the state before the update
	assert.Equal(t, "Dana Kim", versions[0].Snapshot["name"])
	assert.Contains(t, versions[0].ChangeSummary, "Name changed")
}

func TestUpdateNeverWritesOwnership(t *testing.T) {
	svc, db := setupEntityService(t)
	ctx := context.Background()

	trainer := &domain.Trainer{Name: "Dana Kim", CreatedBy: 7}
	db.Create(trainer)

	_, err := svc.Update(ctx, registry.EntityTrainer, trainer.ID, domain.Snapshot{
		"name":       "Hijacked",
		"created_by": 99,
	}, Actor{ID: 99})
	assert.NoError(t, err)

	var live domain.Trainer
	db.First(&live, trainer.ID)
	assert.Equal(t, "Hijacked", live.Name)
	assert.Equal(t, uint64(7), live.CreatedBy)
}

func TestUpdateSucceedsWhenHistoryFails(t *testing.T) {
	db := setupTestDB(t)
	reg := registry.New(db)
	versions := NewVersionService(&failingVersionRepo{}, reg, testLifecycle())
	bin := NewRecycleBinService(repository.NewRecycleBinRepository(db), reg, testLifecycle(), nil)
	svc := NewEntityService(reg, versions, bin)

	trainer := &domain.Trainer{Name: "Dana Kim"}
	db.Create(trainer)

	updated, err := svc.Update(context.Background(), registry.EntityTrainer, trainer.ID,
		domain.Snapshot{"name": "Dana J. Kim"}, Actor{})
	assert.NoError(t, err)
	assert.Equal(t, "Dana J. Kim", updated["name"])
}

func TestChangeStatus(t *testing.T) {
	svc, db := setupEntityService(t)
	ctx := context.Background()

	job := &domain.Job{Title: "Stylist", Status: domain.StatusPending}
	db.Create(job)

	updated, err := svc.ChangeStatus(ctx, registry.EntityJob, job.ID, domain.StatusApproved, Actor{ID: 1})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated["status"])

	var versions []domain.VersionRecord
	db.Where("entity_type = ? AND entity_id = ?", "job", job.ID).Find(&versions)
	assert.Len(t, versions, 1)
	assert.Equal(t, domain.ChangeTypeStatusChange, versions[0].ChangeType)
	assert.Contains(t, versions[0].ChangeSummary, "Status: pending → approved")
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	svc, db := setupEntityService(t)

	job := &domain.Job{Title: "Stylist", Status: domain.StatusPending}
	db.Create(job)

	_, err := svc.ChangeStatus(context.Background(), registry.EntityJob, job.ID, "vaporized", Actor{})
	assert.True(t, errors.Is(err, common.ErrInvalidInput))

	var live domain.Job
	db.First(&live, job.ID)
	assert.Equal(t, domain.StatusPending, live.Status)
}

func TestDeleteMovesToRecycleBin(t *testing.T) {
	svc, db := setupEntityService(t)
	ctx := context.Background()

	event := &domain.Event{Title: "Expo", Status: domain.StatusPublished}
	db.Create(event)

	item, err := svc.Delete(ctx, registry.EntityEvent, event.ID, Actor{ID: 5, Name: "Admin"})
	assert.NoError(t, err)
	assert.Equal(t, "event", item.EntityType)
	assert.Equal(t, event.ID, item.EntityID)
	assert.Equal(t, "Expo", item.Metadata.Title)

	_, err = svc.Get(ctx, registry.EntityEvent, event.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	var count int64
	db.Model(&domain.RecycleBinItem{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetUnknownEntityType(t *testing.T) {
	svc, _ := setupEntityService(t)

	_, err := svc.Get(context.Background(), registry.EntityType("spaceship"), 1)
	assert.True(t, errors.Is(err, common.ErrUnknownEntityType))
}
