package domain

import "time"

// Change types recorded in the version history log
const (
	ChangeTypeCreate       = "create"
	ChangeTypeUpdate       = "update"
	ChangeTypeStatusChange = "status_change"
	ChangeTypeRestore      = "restore"
)

// VersionRecord is one immutable point-in-time capture of an entity.
// Rows are never mutated after insert, only pruned when they fall outside
// the per-entity retention cap.
type VersionRecord struct {
	ID             uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EntityType     string         `gorm:"column:entity_type;type:varchar(50);uniqueIndex:uidx_entity_version,priority:1;index:idx_type_created,priority:1" json:"entity_type"`
	EntityID       uint64         `gorm:"column:entity_id;uniqueIndex:uidx_entity_version,priority:2" json:"entity_id"`
	CollectionName string         `gorm:"column:collection_name;type:varchar(100)" json:"collection_name"`
	Version        uint           `gorm:"column:version;uniqueIndex:uidx_entity_version,priority:3" json:"version"`
	Snapshot       Snapshot       `gorm:"column:snapshot;type:json" json:"snapshot,omitempty"`
	ChangeSummary  StringList     `gorm:"column:change_summary;type:json" json:"change_summary"`
	Metadata       EntityMetadata `gorm:"embedded" json:"metadata"`

	ChangedBy           uint64 `gorm:"column:changed_by" json:"changed_by"`
	ChangedByName       string `gorm:"column:changed_by_name;type:varchar(100)" json:"changed_by_name"`
	ChangedByEmail      string `gorm:"column:changed_by_email;type:varchar(255)" json:"changed_by_email"`
	ChangeType          string `gorm:"column:change_type;type:varchar(20)" json:"change_type"`
	RestoredFromVersion uint   `gorm:"column:restored_from_version" json:"restored_from_version,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_type_created,priority:2,sort:desc" json:"created_at"`
}

func (VersionRecord) TableName() string { return "version_records" }

// FieldDiff is one differing field between two snapshots
type FieldDiff struct {
	Field    string      `json:"field"`
	OldValue interface{} `json:"old_value"`
	NewValue interface{} `json:"new_value"`
}

// VersionStats aggregate counters for the admin dashboard
type VersionStats struct {
	Total       int64            `json:"total"`
	ByType      map[string]int64 `json:"by_type"`
	Last24Hours int64            `json:"last_24_hours"`
}
