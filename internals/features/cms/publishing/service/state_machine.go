package service

import (
	"fmt"
	"time"

	"lessoncms_backend/internals/constants"
)

// Publishable adalah entity yang ikut workflow publishing (Program & Lesson).
type Publishable interface {
	CurrentStatus() string
	ApplyStatus(status string)
	MarkPublished(now time.Time)
	MarkScheduled(publishAt time.Time)
	// PublishChecklist: daftar alasan kenapa belum siap publish; kosong = siap.
	PublishChecklist() []string
}

// allowedEdges: draft→scheduled, draft→published, scheduled→published,
// any→archived, archived→draft (reopen). Selain itu ditolak.
var allowedEdges = map[string]map[string]bool{
	constants.StatusDraft: {
		constants.StatusScheduled: true,
		constants.StatusPublished: true,
		constants.StatusArchived:  true,
	},
	constants.StatusScheduled: {
		constants.StatusPublished: true,
		constants.StatusArchived:  true,
	},
	constants.StatusPublished: {
		constants.StatusArchived: true,
	},
	constants.StatusArchived: {
		constants.StatusDraft:    true,
		constants.StatusArchived: true,
	},
}

func operationForTarget(target string) string {
	switch target {
	case constants.StatusPublished:
		return constants.OpPublish
	case constants.StatusScheduled:
		return constants.OpSchedule
	case constants.StatusArchived:
		return constants.OpArchive
	default:
		return constants.OpUpdate
	}
}

// Transition menjalankan state machine publishing pada satu entity.
// publishAt hanya dipakai untuk target "scheduled" dan wajib di masa depan.
// Tidak ada mutasi apa pun kalau gagal (publish tetap atomic).
func Transition(e Publishable, target, actorRole string, now time.Time, publishAt *time.Time) error {
	if !constants.IsValidStatus(target) {
		return newValidationError(fmt.Sprintf("Unknown target status '%s'.", target))
	}

	op := operationForTarget(target)
	if !constants.CanPerform(actorRole, op) {
		return &PermissionError{Role: actorRole, Operation: op}
	}

	current := e.CurrentStatus()
	if !allowedEdges[current][target] {
		return newValidationError(fmt.Sprintf("Cannot transition from '%s' to '%s'.", current, target))
	}

	switch target {
	case constants.StatusScheduled:
		if publishAt == nil || !publishAt.After(now) {
			return newValidationError("publish_at must be a future timestamp.")
		}
		e.MarkScheduled(*publishAt)

	case constants.StatusPublished:
		if missing := e.PublishChecklist(); len(missing) > 0 {
			return &ValidationError{Details: missing}
		}
		e.MarkPublished(now)

	default:
		// archived / draft: tanpa prasyarat data, cukup role check di atas.
		e.ApplyStatus(target)
	}

	return nil
}
