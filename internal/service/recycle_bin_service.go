package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/devranjit/salontraining-server-sub001/internal/config"
	"github.com/devranjit/salontraining-server-sub001/internal/domain"
	"github.com/devranjit/salontraining-server-sub001/internal/registry"
	"github.com/devranjit/salontraining-server-sub001/internal/repository"
	"github.com/devranjit/salontraining-server-sub001/pkg/logger"
	"github.com/devranjit/salontraining-server-sub001/pkg/mailer"
	"gorm.io/gorm"
)

// DeleteOptions who performed a soft delete
type DeleteOptions struct {
	DeletedBy     uint64
	DeletedByName string
}

// RecycleBinService owns the time-bounded recycle bin
type RecycleBinService struct {
	bin  repository.RecycleBinRepository
	reg  *registry.Registry
	cfg  config.LifecycleConfig
	mail mailer.Mailer

	// injectable clock so retention-window tests control time
	now func() time.Time
}

// NewRecycleBinService creates a RecycleBinService. mail may be nil when
// no SMTP is configured; expiry warnings are then skipped.
func NewRecycleBinService(bin repository.RecycleBinRepository, reg *registry.Registry, cfg config.LifecycleConfig, mail mailer.Mailer) *RecycleBinService {
	return &RecycleBinService{
		bin:  bin,
		reg:  reg,
		cfg:  cfg,
		mail: mail,
		now:  time.Now,
	}
}

// SoftDelete snapshots a live record into the bin with a future expiry,
// then hard-deletes the live row. The two writes cross storage
// boundaries and are not atomic; the sweep reconciles leftovers.
func (s *RecycleBinService) SoftDelete(ctx context.Context, entityType registry.EntityType, live domain.Snapshot, opts DeleteOptions) (*domain.RecycleBinItem, error) {
	store, err := s.reg.Resolve(entityType)
	if err != nil {
		return nil, err
	}
	entityID, err := entityIDOf(live)
	if err != nil {
		return nil, err
	}

	now := s.now()
	item := &domain.RecycleBinItem{
		EntityType:     string(entityType),
		EntityID:       entityID,
		CollectionName: store.CollectionName(),
		Snapshot:       live.Clone(),
		Metadata:       store.Metadata(live),
		DeletedBy:      opts.DeletedBy,
		DeletedByName:  opts.DeletedByName,
		DeletedAt:      now,
		ExpiresAt:      now.AddDate(0, 0, s.cfg.RetentionDays),
	}

	if err := s.bin.Create(ctx, item); err != nil {
		return nil, err
	}
	if err := store.Delete(ctx, entityID); err != nil {
		return nil, err
	}

	logger.GetLogger().Info().
		Str("entity_type", string(entityType)).
		Uint64("entity_id", entityID).
		Time("expires_at", item.ExpiresAt).
		Msg("record moved to recycle bin")
	return item, nil
}

// List returns active bin items, newest-deleted-first
func (s *RecycleBinService) List(ctx context.Context, filter repository.BinFilter) ([]*domain.RecycleBinItem, int64, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	return s.bin.List(ctx, filter)
}

// Get returns one bin item
func (s *RecycleBinService) Get(ctx context.Context, itemID uint64) (*domain.RecycleBinItem, error) {
	item, err := s.bin.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Restore re-creates the live record from the bin snapshot, keeping its
// original identifier, and retires the bin entry.
func (s *RecycleBinService) Restore(ctx context.Context, itemID uint64) (domain.Snapshot, error) {
	item, err := s.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Resolved() {
		return nil, common.ErrAlreadyResolved
	}

	store, err := s.reg.Resolve(registry.EntityType(item.EntityType))
	if err != nil {
		return nil, err
	}

	if err := store.Insert(ctx, item.Snapshot.Clone()); err != nil {
		return nil, err
	}

	now := s.now()
	item.RestoredAt = &now
	if err := s.bin.Update(ctx, item); err != nil {
		return nil, err
	}
	if err := s.bin.Delete(ctx, item.ID); err != nil {
		return nil, err
	}

	logger.GetLogger().Info().
		Str("entity_type", item.EntityType).
		Uint64("entity_id", item.EntityID).
		Msg("record restored from recycle bin")
	return store.Load(ctx, item.EntityID)
}

// Purge permanently deletes a bin item. Irreversible.
func (s *RecycleBinService) Purge(ctx context.Context, itemID uint64) error {
	item, err := s.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if item.Resolved() {
		return common.ErrAlreadyResolved
	}
	return s.purgeItem(ctx, item)
}

func (s *RecycleBinService) purgeItem(ctx context.Context, item *domain.RecycleBinItem) error {
	now := s.now()
	item.PermanentlyDeletedAt = &now
	if err := s.bin.Update(ctx, item); err != nil {
		return err
	}
	return s.bin.Delete(ctx, item.ID)
}

// BulkPurge purges several items; failures on individual items are
// collected rather than aborting the batch.
func (s *RecycleBinService) BulkPurge(ctx context.Context, itemIDs []uint64) (purged int, failed []uint64) {
	for _, id := range itemIDs {
		if err := s.Purge(ctx, id); err != nil {
			logger.GetLogger().Warn().Err(err).Uint64("item_id", id).Msg("bulk purge item failed")
			failed = append(failed, id)
			continue
		}
		purged++
	}
	return purged, failed
}

// Sweep runs the scheduled maintenance pass: warn about items entering
// the expiry window, then purge items past it. Safe to invoke on
// overlapping schedules; both passes only act on rows still eligible.
func (s *RecycleBinService) Sweep(ctx context.Context) (*domain.SweepResult, error) {
	now := s.now()
	result := &domain.SweepResult{}

	expiring, err := s.bin.FindExpiringSoon(ctx, now, now.AddDate(0, 0, s.cfg.WarningDays))
	if err != nil {
		return nil, err
	}
	result.ExpiringSoon = len(expiring)
	if len(expiring) > 0 {
		result.Warned = s.sendExpiryWarning(ctx, expiring, now)
	}

	expired, err := s.bin.FindExpired(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, item := range expired {
		if err := s.purgeItem(ctx, item); err != nil {
			logger.GetLogger().Warn().Err(err).Uint64("item_id", item.ID).Msg("sweep purge failed")
			continue
		}
		result.Purged++
	}

	logger.GetLogger().Info().
		Int("expiring_soon", result.ExpiringSoon).
		Int("warned", result.Warned).
		Int("purged", result.Purged).
		Msg("recycle bin sweep completed")
	return result, nil
}

// sendExpiryWarning mails the operator one summary of soon-to-expire
// items. Notification failures are logged and swallowed; items are only
// marked warned after a successful send so the next sweep retries.
func (s *RecycleBinService) sendExpiryWarning(ctx context.Context, items []*domain.RecycleBinItem, now time.Time) int {
	if s.mail == nil || s.cfg.OperatorEmail == "" {
		logger.GetLogger().Warn().Int("items", len(items)).Msg("expiry warning skipped, no operator mail configured")
		return 0
	}

	var body strings.Builder
	fmt.Fprintf(&body, "%d recycle bin item(s) will be permanently deleted soon:\n\n", len(items))
	for _, item := range items {
		fmt.Fprintf(&body, "- [%s] %s (deleted %s, expires %s)\n",
			item.EntityType,
			displayName(item.Metadata),
			item.DeletedAt.Format("2006-01-02"),
			item.ExpiresAt.Format("2006-01-02"),
		)
	}
	body.WriteString("\nRestore anything still needed from the admin recycle bin before it expires.\n")

	subject := fmt.Sprintf("Recycle bin: %d item(s) expiring within %d days", len(items), s.cfg.WarningDays)
	if err := s.mail.Send(s.cfg.OperatorEmail, subject, body.String()); err != nil {
		logger.GetLogger().Error().Err(err).Msg("expiry warning mail failed")
		return 0
	}

	ids := make([]uint64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	if err := s.bin.MarkWarned(ctx, ids, now); err != nil {
		logger.GetLogger().Error().Err(err).Msg("marking warned items failed")
	}
	return len(items)
}

// EntityTypes lists the registered entity-kind tags for filter UIs
func (s *RecycleBinService) EntityTypes() []registry.EntityType {
	return s.reg.Types()
}

func displayName(meta domain.EntityMetadata) string {
	switch {
	case meta.Title != "":
		return meta.Title
	case meta.Name != "":
		return meta.Name
	case meta.Email != "":
		return meta.Email
	}
	return "(untitled)"
}
