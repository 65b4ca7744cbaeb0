package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/devranjit/salontraining-server-sub001/internal/domain"
)

// watchedFields are the fields worth a human-readable summary line when
// they change between two states of a record.
var watchedFields = []string{
	"title", "name", "description", "status", "email", "phone",
	"address", "price", "category", "featured", "is_published",
}

// internalFields never appear in snapshots diffs and are never written
// back by a restore.
var internalFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// ownershipFields are never changed by a restore; the owner of a record
// stays whoever it was before.
var ownershipFields = map[string]bool{
	"created_by": true,
}

// changeSummary builds one line per watched field that differs between
// the captured state and the incoming data. Falls back to a generic line
// when nothing watched moved.
func changeSummary(prev, next domain.Snapshot) domain.StringList {
	var lines domain.StringList
	for _, field := range watchedFields {
		newVal, ok := next[field]
		if !ok {
			// absent from the incoming data means untouched
			continue
		}
		oldVal := prev[field]
		if canonical(oldVal) == canonical(newVal) {
			continue
		}
		lines = append(lines, summaryLine(field, oldVal, newVal))
	}
	if len(lines) == 0 {
		return domain.StringList{"General update"}
	}
	return lines
}

func summaryLine(field string, oldVal, newVal interface{}) string {
	label := fieldLabel(field)
	if field == "featured" || field == "is_published" {
		return fmt.Sprintf("%s: %s → %s", label, yesNo(oldVal), yesNo(newVal))
	}
	if field == "status" {
		return fmt.Sprintf("%s: %s → %s", label, displayValue(oldVal), displayValue(newVal))
	}
	return fmt.Sprintf("%s changed", label)
}

func fieldLabel(field string) string {
	parts := strings.Split(field, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func yesNo(v interface{}) string {
	if truthy(v) {
		return "Yes"
	}
	return "No"
}

// truthy interprets the bool-ish values the storage layer hands back:
// real bools from JSON snapshots, 0/1 integers from SQL scans.
func truthy(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case float64:
		return b != 0
	case string:
		return b == "1" || b == "true"
	}
	return false
}

func displayValue(v interface{}) string {
	if v == nil {
		return "none"
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// canonical serializes a value for comparison, so int64(5) from a SQL
// scan equals float64(5) from a reloaded JSON snapshot.
func canonical(v interface{}) string {
	if v == nil {
		return "null"
	}
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// compareSnapshots emits a diff entry for each non-internal field whose
// serialized value differs between the two snapshots. Fields are
// enumerated in sorted order so the output is deterministic.
func compareSnapshots(a, b domain.Snapshot) []domain.FieldDiff {
	keys := make(map[string]bool, len(a)+len(b))
	for k := range a {
		keys[k] = true
	}
	for k := range b {
		keys[k] = true
	}

	sorted := make([]string, 0, len(keys))
	for k := range keys {
		if internalFields[k] {
			continue
		}
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	var diffs []domain.FieldDiff
	for _, k := range sorted {
		if canonical(a[k]) == canonical(b[k]) {
			continue
		}
		diffs = append(diffs, domain.FieldDiff{
			Field:    k,
			OldValue: a[k],
			NewValue: b[k],
		})
	}
	return diffs
}

// restorableFields copies a snapshot minus identity and ownership fields,
// producing what a restore is allowed to write back onto a live record.
func restorableFields(snap domain.Snapshot) domain.Snapshot {
	out := make(domain.Snapshot, len(snap))
	for k, v := range snap {
		if internalFields[k] || ownershipFields[k] {
			continue
		}
		out[k] = v
	}
	return out
}

// entityIDOf pulls the numeric identifier out of a record snapshot,
// whatever scan type the storage layer used for it.
func entityIDOf(rec domain.Snapshot) (uint64, error) {
	v, ok := rec["id"]
	if !ok {
		return 0, fmt.Errorf("record has no id field")
	}
	switch id := v.(type) {
	case uint64:
		return id, nil
	case int64:
		return uint64(id), nil
	case int:
		return uint64(id), nil
	case float64:
		return uint64(id), nil
	case json.Number:
		n, err := id.Int64()
		if err != nil {
			return 0, err
		}
		return uint64(n), nil
	case string:
		return strconv.ParseUint(id, 10, 64)
	}
	return 0, fmt.Errorf("record id has unsupported type %T", v)
}
