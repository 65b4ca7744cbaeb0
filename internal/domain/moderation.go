package domain

// Moderation statuses shared by every listable entity kind
const (
	StatusPending          = "pending"
	StatusApproved         = "approved"
	StatusPublished        = "published"
	StatusRejected         = "rejected"
	StatusChangesRequested = "changes_requested"
)

// ValidStatus reports whether s is a known moderation status
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusPublished, StatusRejected, StatusChangesRequested:
		return true
	}
	return false
}
