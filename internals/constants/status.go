package constants

// Status publishing untuk Program & Lesson.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

var AllStatuses = []string{
	StatusDraft,
	StatusScheduled,
	StatusPublished,
	StatusArchived,
}

func IsValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
