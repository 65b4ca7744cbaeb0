package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/devranjit/salontraining-server-sub001/internal/domain"
	"github.com/devranjit/salontraining-server-sub001/internal/registry"
	"github.com/devranjit/salontraining-server-sub001/internal/repository"
	"github.com/devranjit/salontraining-server-sub001/pkg/mailer"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// stubMailer records sends and can be told to fail
type stubMailer struct {
	sent []struct{ to, subject, body string }
	err  error
}

func (m *stubMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, struct{ to, subject, body string }{to, subject, body})
	return nil
}

func setupBinService(t *testing.T, mail *stubMailer) (*RecycleBinService, *registry.Registry, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	reg := registry.New(db)
	var m mailer.Mailer
	if mail != nil {
		m = mail
	}
	svc := NewRecycleBinService(repository.NewRecycleBinRepository(db), reg, testLifecycle(), m)
	return svc, reg, db
}

func TestSoftDeleteMovesRecordToBin(t *testing.T) {
	svc, reg, db := setupBinService(t, &stubMailer{})
	ctx := context.Background()

	deletedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return deletedAt }

	trainer := &domain.Trainer{Name: "Dana Kim", Email: "dana@example.com", Status: domain.StatusApproved}
	db.Create(trainer)

	item, err := svc.SoftDelete(ctx, registry.EntityTrainer,
		snapshotOf(t, reg, registry.EntityTrainer, trainer.ID),
		DeleteOptions{DeletedBy: 3, DeletedByName: "Admin"})
	assert.NoError(t, err)
	assert.Equal(t, deletedAt.AddDate(0, 0, testLifecycle().RetentionDays), item.ExpiresAt)
	assert.Equal(t, "Dana Kim", item.Metadata.Name)
	assert.Equal(t, uint64(3), item.DeletedBy)

	// the live row is gone
	var count int64
	db.Model(&domain.Trainer{}).Where("id = ?", trainer.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	items, total, err := svc.List(ctx, repository.BinFilter{})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, trainer.ID, items[0].EntityID)
}

func TestRestoreFromBin(t *testing.T) {
	svc, reg, db := setupBinService(t, &stubMailer{})
	ctx := context.Background()

	product := &domain.Product{Name: "Shears", Price: 129.5, Status: domain.StatusApproved}
	db.Create(product)
	originalID := product.ID

	item, err := svc.SoftDelete(ctx, registry.EntityProduct,
		snapshotOf(t, reg, registry.EntityProduct, originalID), DeleteOptions{})
	assert.NoError(t, err)

	restored, err := svc.Restore(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Shears", restored["name"])

	// the record is back under its original identifier
	var live domain.Product
	assert.NoError(t, db.First(&live, originalID).Error)
	assert.Equal(t, "Shears", live.Name)

	// the bin entry is retired, a second restore finds nothing
	_, err = svc.Restore(ctx, item.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	items, total, err := svc.List(ctx, repository.BinFilter{})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, items)
}

func TestRestorePreservesTimestamps(t *testing.T) {
	svc, reg, db := setupBinService(t, &stubMailer{})
	ctx := context.Background()

	event := &domain.Event{
		Title:    "Expo",
		StartsAt: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC),
		Status:   domain.StatusPublished,
	}
	db.Create(event)
	created := event.CreatedAt

	deleted, err := svc.SoftDelete(ctx, registry.EntityEvent,
		snapshotOf(t, reg, registry.EntityEvent, event.ID), DeleteOptions{})
	assert.NoError(t, err)

	// the stored item is reloaded so its snapshot has been through the
	// JSON column round trip before the insert
	_, err = svc.Restore(ctx, deleted.ID)
	assert.NoError(t, err)

	var live domain.Event
	assert.NoError(t, db.First(&live, event.ID).Error)
	assert.WithinDuration(t, created, live.CreatedAt, time.Second)
	assert.WithinDuration(t, event.StartsAt, live.StartsAt, time.Second)
	assert.WithinDuration(t, event.EndsAt, live.EndsAt, time.Second)
}

func TestRestoreAlreadyResolved(t *testing.T) {
	svc, _, db := setupBinService(t, &stubMailer{})
	ctx := context.Background()

	resolvedAt := time.Now()
	item := &domain.RecycleBinItem{
		EntityType: "trainer",
		EntityID:   5,
		Snapshot:   domain.Snapshot{"id": 5, "name": "Ghost"},
		DeletedAt:  time.Now(),
		ExpiresAt:  time.Now().AddDate(0, 0, 20),
		RestoredAt: &resolvedAt,
	}
	assert.NoError(t, db.Create(item).Error)

	_, err := svc.Restore(ctx, item.ID)
	assert.True(t, errors.Is(err, common.ErrAlreadyResolved))

	err = svc.Purge(ctx, item.ID)
	assert.True(t, errors.Is(err, common.ErrAlreadyResolved))
}

func TestPurgeIsIrreversible(t *testing.T) {
	svc, reg, db := setupBinService(t, &stubMailer{})
	ctx := context.Background()

	blog := &domain.Blog{Title: "Old post"}
	db.Create(blog)

	item, err := svc.SoftDelete(ctx, registry.EntityBlog,
		snapshotOf(t, reg, registry.EntityBlog, blog.ID), DeleteOptions{})
	assert.NoError(t, err)

	assert.NoError(t, svc.Purge(ctx, item.ID))

	_, err = svc.Get(ctx, item.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
	_, err = svc.Restore(ctx, item.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestBulkPurgeCollectsFailures(t *testing.T) {
	svc, reg, db := setupBinService(t, &stubMailer{})
	ctx := context.Background()

	var ids []uint64
	for _, title := range []string{"one", "two"} {
		blog := &domain.Blog{Title: title}
		db.Create(blog)
		item, err := svc.SoftDelete(ctx, registry.EntityBlog,
			snapshotOf(t, reg, registry.EntityBlog, blog.ID), DeleteOptions{})
		assert.NoError(t, err)
		ids = append(ids, item.ID)
	}
	ids = append(ids, 9999)

	purged, failed := svc.BulkPurge(ctx, ids)
	assert.Equal(t, 2, purged)
	assert.Equal(t, []uint64{9999}, failed)
}

func seedBinItem(t *testing.T, db *gorm.DB, entityType string, name string, deletedAt, expiresAt time.Time) *domain.RecycleBinItem {
	t.Helper()
	item := &domain.RecycleBinItem{
		EntityType: entityType,
		EntityID:   1,
		Snapshot:   domain.Snapshot{"id": 1, "name": name},
		Metadata:   domain.EntityMetadata{Name: name},
		DeletedAt:  deletedAt,
		ExpiresAt:  expiresAt,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed bin item: %v", err)
	}
	return item
}

func TestSweepWarnsAndPurges(t *testing.T) {
	mail := &stubMailer{}
	svc, _, db := setupBinService(t, mail)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	expiring := seedBinItem(t, db, "trainer", "Expiring Soon", now.AddDate(0, 0, -17), now.AddDate(0, 0, 3))
	expired := seedBinItem(t, db, "product", "Long Gone", now.AddDate(0, 0, -21), now.AddDate(0, 0, -1))
	seedBinItem(t, db, "blog", "Still Fresh", now, now.AddDate(0, 0, 20))

	result, err := svc.Sweep(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.ExpiringSoon)
	assert.Equal(t, 1, result.Warned)
	assert.Equal(t, 1, result.Purged)

	assert.Len(t, mail.sent, 1)
	assert.Equal(t, "ops@example.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].body, "Expiring Soon")

	var warned domain.RecycleBinItem
	assert.NoError(t, db.First(&warned, expiring.ID).Error)
	assert.NotNil(t, warned.WarningSentAt)

	var count int64
	db.Model(&domain.RecycleBinItem{}).Where("id = ?", expired.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// overlapping run does nothing new
	result, err = svc.Sweep(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Warned)
	assert.Equal(t, 0, result.Purged)
	assert.Len(t, mail.sent, 1)
}

func TestSweepRetriesWarningAfterMailFailure(t *testing.T) {
	mail := &stubMailer{err: errors.New("smtp down")}
	svc, _, db := setupBinService(t, mail)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	item := seedBinItem(t, db, "trainer", "Expiring Soon", now.AddDate(0, 0, -17), now.AddDate(0, 0, 3))

	result, err := svc.Sweep(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.ExpiringSoon)
	assert.Equal(t, 0, result.Warned)

	var unwarned domain.RecycleBinItem
	assert.NoError(t, db.First(&unwarned, item.ID).Error)
	assert.Nil(t, unwarned.WarningSentAt)

	// mail comes back, the next sweep delivers the warning
	mail.err = nil
	result, err = svc.Sweep(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Warned)
	assert.Len(t, mail.sent, 1)
}

func TestSweepWithoutMailerSkipsWarnings(t *testing.T) {
	svc, _, db := setupBinService(t, nil)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	item := seedBinItem(t, db, "trainer", "Expiring Soon", now.AddDate(0, 0, -17), now.AddDate(0, 0, 3))

	result, err := svc.Sweep(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.ExpiringSoon)
	assert.Equal(t, 0, result.Warned)

	var unwarned domain.RecycleBinItem
	assert.NoError(t, db.First(&unwarned, item.ID).Error)
	assert.Nil(t, unwarned.WarningSentAt)
}

func TestListFilters(t *testing.T) {
	svc, _, db := setupBinService(t, &stubMailer{})
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	seedBinItem(t, db, "trainer", "Dana Kim", base, base.AddDate(0, 0, 20))
	seedBinItem(t, db, "trainer", "Lee Park", base.AddDate(0, 0, 5), base.AddDate(0, 0, 25))
	seedBinItem(t, db, "product", "Dana Brush", base.AddDate(0, 0, 10), base.AddDate(0, 0, 30))

	items, total, err := svc.List(ctx, repository.BinFilter{EntityType: "trainer"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)
	// newest deletion first
	assert.Equal(t, "Lee Park", items[0].Metadata.Name)

	_, total, err = svc.List(ctx, repository.BinFilter{Search: "Dana"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)

	start := base.AddDate(0, 0, 4)
	end := base.AddDate(0, 0, 6)
	items, total, err = svc.List(ctx, repository.BinFilter{StartDate: &start, EndDate: &end})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Lee Park", items[0].Metadata.Name)
}
