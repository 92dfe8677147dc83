package scheduler

import (
	"log"
	"time"

	"lessoncms_backend/internals/constants"
	lessonModel "lessoncms_backend/internals/features/cms/lessons/model"
	programModel "lessoncms_backend/internals/features/cms/programs/model"
	"lessoncms_backend/internals/features/cms/publishing/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromotionIssue: satu lesson yang gagal naik di cycle ini (tetap scheduled,
// otomatis dicoba lagi di cycle berikutnya).
type PromotionIssue struct {
	LessonID uuid.UUID `json:"lesson_id"`
	Reasons  []string  `json:"reasons"`
}

// PromotionReport: hasil satu cycle promoter, untuk observability.
type PromotionReport struct {
	RanAt              time.Time        `json:"ran_at"`
	PromotedLessonIDs  []uuid.UUID      `json:"promoted_lesson_ids"`
	PromotedProgramIDs []uuid.UUID      `json:"promoted_program_ids"`
	Skipped            []PromotionIssue `json:"skipped"`
}

// CyclePlan: mutasi yang sudah lolos validasi dan siap di-commit sekali jalan.
type CyclePlan struct {
	Lessons  []lessonModel.LessonModel
	Programs []programModel.ProgramModel
	Skipped  []PromotionIssue
}

// PlanCycle memutuskan promosi tanpa menyentuh store, biar gampang dites.
// due: lessons ber-status scheduled dengan publish_at <= now.
// parents: program induk, di-index by program_id.
//
// Aturan:
//   - lesson yang checklist-nya belum lengkap DIBIARKAN scheduled (retry-until-ready);
//   - lesson yang lolos → published, published_at = now;
//   - cascade: program induk yang belum published ikut naik begitu punya satu
//     lesson published — tanpa validasi poster (beda dengan publish manual);
//   - program archived tidak ikut cascade (archived→published bukan edge yang sah).
func PlanCycle(due []lessonModel.LessonModel, parents map[uuid.UUID]*programModel.ProgramModel, now time.Time) CyclePlan {
	plan := CyclePlan{}
	promotedPrograms := map[uuid.UUID]bool{}

	for i := range due {
		lesson := due[i]

		// Guard idempoten: filter status scheduled + due dicek ulang di sini,
		// query dan plan bisa terpisah waktu.
		if lesson.LessonStatus != constants.StatusScheduled {
			continue
		}
		if lesson.LessonPublishAt == nil || lesson.LessonPublishAt.After(now) {
			continue
		}

		if err := service.Transition(&lesson, constants.StatusPublished, constants.RoleSystem, now, nil); err != nil {
			if ve, ok := service.AsValidationError(err); ok {
				plan.Skipped = append(plan.Skipped, PromotionIssue{
					LessonID: lesson.LessonID,
					Reasons:  ve.Details,
				})
				continue
			}
			plan.Skipped = append(plan.Skipped, PromotionIssue{
				LessonID: lesson.LessonID,
				Reasons:  []string{err.Error()},
			})
			continue
		}
		plan.Lessons = append(plan.Lessons, lesson)

		parent := parents[lesson.LessonProgramID]
		if parent == nil || promotedPrograms[parent.ProgramID] {
			continue
		}
		switch parent.ProgramStatus {
		case constants.StatusDraft, constants.StatusScheduled:
			parent.MarkPublished(now)
			plan.Programs = append(plan.Programs, *parent)
			promotedPrograms[parent.ProgramID] = true
		}
	}

	return plan
}

// RunCycle menjalankan satu putaran promoter: query lesson yang due,
// rencanakan promosi, lalu commit semua mutasi dalam SATU transaksi.
// Error store membatalkan seluruh transaksi cycle ini; cycle berikutnya
// mulai bersih. Aman dipanggil on-demand di luar ticker.
func RunCycle(db *gorm.DB, now time.Time) (*PromotionReport, error) {
	report := &PromotionReport{RanAt: now}

	var due []lessonModel.LessonModel
	if err := db.
		Where("lesson_status = ? AND lesson_publish_at IS NOT NULL AND lesson_publish_at <= ?", constants.StatusScheduled, now).
		Find(&due).Error; err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return report, nil
	}

	programIDs := make([]uuid.UUID, 0, len(due))
	seen := map[uuid.UUID]bool{}
	for _, l := range due {
		if !seen[l.LessonProgramID] {
			seen[l.LessonProgramID] = true
			programIDs = append(programIDs, l.LessonProgramID)
		}
	}

	var programs []programModel.ProgramModel
	if err := db.Where("program_id IN ?", programIDs).Find(&programs).Error; err != nil {
		return nil, err
	}
	parents := make(map[uuid.UUID]*programModel.ProgramModel, len(programs))
	for i := range programs {
		parents[programs[i].ProgramID] = &programs[i]
	}

	plan := PlanCycle(due, parents, now)
	report.Skipped = plan.Skipped

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range plan.Lessons {
			l := &plan.Lessons[i]
			if err := service.CommitLessonStatus(tx, l); err != nil {
				if err == service.ErrVersionConflict {
					// kalah balapan dengan edit manual; biarkan, cek lagi nanti
					log.Printf("[PUBLISHER] lesson %s berubah di tengah cycle, dilewati", l.LessonID)
					continue
				}
				return err
			}
			report.PromotedLessonIDs = append(report.PromotedLessonIDs, l.LessonID)
		}
		for i := range plan.Programs {
			p := &plan.Programs[i]
			if err := service.CommitProgramStatus(tx, p); err != nil {
				if err == service.ErrVersionConflict {
					log.Printf("[PUBLISHER] program %s berubah di tengah cycle, dilewati", p.ProgramID)
					continue
				}
				return err
			}
			report.PromotedProgramIDs = append(report.PromotedProgramIDs, p.ProgramID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}
