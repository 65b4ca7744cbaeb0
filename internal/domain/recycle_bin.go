package domain

import "time"

// RecycleBinItem holds a soft-deleted record's snapshot for a retention
// window. Lifecycle: active -> restored | purged; both terminal.
type RecycleBinItem struct {
	ID             uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EntityType     string         `gorm:"column:entity_type;type:varchar(50);index:idx_bin_type_deleted,priority:1" json:"entity_type"`
	EntityID       uint64         `gorm:"column:entity_id" json:"entity_id"`
	CollectionName string         `gorm:"column:collection_name;type:varchar(100)" json:"collection_name"`
	Snapshot       Snapshot       `gorm:"column:snapshot;type:json" json:"snapshot,omitempty"`
	Metadata       EntityMetadata `gorm:"embedded" json:"metadata"`

	DeletedBy     uint64    `gorm:"column:deleted_by" json:"deleted_by"`
	DeletedByName string    `gorm:"column:deleted_by_name;type:varchar(100)" json:"deleted_by_name"`
	DeletedAt     time.Time `gorm:"column:deleted_at;index:idx_bin_type_deleted,priority:2,sort:desc" json:"deleted_at"`
	ExpiresAt     time.Time `gorm:"column:expires_at;index" json:"expires_at"`

	// Terminal markers, mutually exclusive. A warning timestamp keeps
	// repeated sweeps from re-mailing the same items.
	RestoredAt           *time.Time `gorm:"column:restored_at" json:"restored_at,omitempty"`
	PermanentlyDeletedAt *time.Time `gorm:"column:permanently_deleted_at" json:"permanently_deleted_at,omitempty"`
	WarningSentAt        *time.Time `gorm:"column:warning_sent_at" json:"warning_sent_at,omitempty"`
}

func (RecycleBinItem) TableName() string { return "recycle_bin_items" }

// Resolved reports whether the item reached a terminal state
func (i *RecycleBinItem) Resolved() bool {
	return i.RestoredAt != nil || i.PermanentlyDeletedAt != nil
}

// SweepResult counts what a single sweep run did
type SweepResult struct {
	ExpiringSoon int `json:"expiring_soon"`
	Warned       int `json:"warned"`
	Purged       int `json:"purged"`
}
