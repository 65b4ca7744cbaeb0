package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Snapshot is a full point-in-time copy of a record's fields, stored as a
// schema-less JSON blob so it tolerates historical field-layout drift.
type Snapshot map[string]interface{}

// Value implements driver.Valuer for JSON column storage
func (s Snapshot) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *Snapshot) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("snapshot: cannot scan type %T", value)
	}
	return json.Unmarshal(data, s)
}

// Clone returns a shallow copy so callers can strip fields without
// mutating the source map.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// StringList stores a list of short strings as a JSON array column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("string list: cannot scan type %T", value)
	}
	return json.Unmarshal(data, l)
}

// EntityMetadata carries the denormalized display fields extracted from a
// snapshot so list endpoints never load the full blob. Embedded into both
// version and recycle-bin rows with a meta_ column prefix, which keeps the
// fields searchable with plain LIKE queries.
type EntityMetadata struct {
	Title  string `gorm:"column:meta_title;type:varchar(255)" json:"title,omitempty"`
	Name   string `gorm:"column:meta_name;type:varchar(255)" json:"name,omitempty"`
	Email  string `gorm:"column:meta_email;type:varchar(255)" json:"email,omitempty"`
	Status string `gorm:"column:meta_status;type:varchar(50)" json:"status,omitempty"`
}
