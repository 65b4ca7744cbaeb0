package registry

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/devranjit/salontraining-server-sub001/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// EntityType discriminates which logical record kind an operation concerns
type EntityType string

// Known entity kinds. Every mutable directory entity shares the
// soft-delete and version-history lifecycle through this registry.
const (
	EntityTrainer   EntityType = "trainer"
	EntityEvent     EntityType = "event"
	EntityJob       EntityType = "job"
	EntityBlog      EntityType = "blog"
	EntityEducation EntityType = "education"
	EntityProduct   EntityType = "product"
	EntityVideo     EntityType = "video"
	EntityCategory  EntityType = "category"
	EntityUser      EntityType = "user"
	EntityContest   EntityType = "contest"
	EntityBanner    EntityType = "banner"
	EntityReview    EntityType = "review"
)

// Store is the storage model behind one entity kind. Records cross this
// boundary as schema-less snapshots so version history and the recycle bin
// never depend on per-kind struct shapes.
type Store interface {
	CollectionName() string
	Load(ctx context.Context, id uint64) (domain.Snapshot, error)
	Save(ctx context.Context, id uint64, fields domain.Snapshot) error
	Insert(ctx context.Context, fields domain.Snapshot) error
	Delete(ctx context.Context, id uint64) error
	Metadata(rec domain.Snapshot) domain.EntityMetadata
}

// Registry maps entity-kind tags to their storage models. The mapping is
// closed: adding a kind means adding a domain model and one Register call,
// never branching on tag strings inside business logic.
type Registry struct {
	stores map[EntityType]Store
}

// New builds the registry over all known entity kinds
func New(db *gorm.DB) *Registry {
	r := &Registry{stores: make(map[EntityType]Store)}
	r.Register(EntityTrainer, newTableStore(db, domain.Trainer{}))
	r.Register(EntityEvent, newTableStore(db, domain.Event{}))
	r.Register(EntityJob, newTableStore(db, domain.Job{}))
	r.Register(EntityBlog, newTableStore(db, domain.Blog{}))
	r.Register(EntityEducation, newTableStore(db, domain.Education{}))
	r.Register(EntityProduct, newTableStore(db, domain.Product{}))
	r.Register(EntityVideo, newTableStore(db, domain.MemberVideo{}))
	r.Register(EntityCategory, newTableStore(db, domain.Category{}))
	r.Register(EntityUser, newTableStore(db, domain.User{}))
	r.Register(EntityContest, newTableStore(db, domain.Contest{}))
	r.Register(EntityBanner, newTableStore(db, domain.Banner{}))
	r.Register(EntityReview, newTableStore(db, domain.Review{}))
	return r
}

// Register binds a store to a tag. Exposed so tests can install stubs.
func (r *Registry) Register(t EntityType, s Store) {
	r.stores[t] = s
}

// Resolve returns the store for a tag. An unknown tag is a configuration
// error on the caller's side, never a silent no-op.
func (r *Registry) Resolve(t EntityType) (Store, error) {
	s, ok := r.stores[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownEntityType, t)
	}
	return s, nil
}

// Types returns the known entity-kind tags, sorted for stable filter UIs
func (r *Registry) Types() []EntityType {
	out := make([]EntityType, 0, len(r.stores))
	for t := range r.stores {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// tableStore is the gorm-backed Store shared by every registered kind.
// It reads and writes rows as maps so snapshots taken under an older
// field layout still load and restore.
type tableStore struct {
	db    *gorm.DB
	table string
}

func newTableStore(db *gorm.DB, model schema.Tabler) *tableStore {
	return &tableStore{db: db, table: model.TableName()}
}

func (s *tableStore) CollectionName() string { return s.table }

func (s *tableStore) Load(ctx context.Context, id uint64) (domain.Snapshot, error) {
	var row map[string]interface{}
	err := s.db.WithContext(ctx).Table(s.table).Where("id = ?", id).Take(&row).Error
	if err != nil {
		return nil, err
	}
	// text columns scan as []byte under the mysql driver
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
	return domain.Snapshot(row), nil
}

func (s *tableStore) Save(ctx context.Context, id uint64, fields domain.Snapshot) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Table(s.table).
		Where("id = ?", id).
		Updates(writableValues(fields)).Error
}

func (s *tableStore) Insert(ctx context.Context, fields domain.Snapshot) error {
	return s.db.WithContext(ctx).Table(s.table).
		Create(writableValues(fields)).Error
}

func (s *tableStore) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.table), id).Error
}

// Metadata extracts the display fields used by list endpoints. Fields a
// kind does not carry are simply left empty, never fabricated.
func (s *tableStore) Metadata(rec domain.Snapshot) domain.EntityMetadata {
	return domain.EntityMetadata{
		Title:  stringField(rec, "title"),
		Name:   stringField(rec, "name"),
		Email:  stringField(rec, "email"),
		Status: stringField(rec, "status"),
	}
}

// writableValues prepares snapshot fields for a write. Timestamps are
// captured as time.Time but come back from the JSON column as RFC3339
// strings; MySQL DATETIME columns reject the Z-suffixed literal, so
// time-shaped strings are parsed back into time.Time before they reach
// the driver.
func writableValues(fields domain.Snapshot) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if s, ok := v.(string); ok {
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				out[k] = t
				continue
			}
		}
		out[k] = v
	}
	return out
}

func stringField(rec domain.Snapshot, key string) string {
	if v, ok := rec[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}
