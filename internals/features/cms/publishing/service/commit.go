package service

import (
	"time"

	lessonModel "lessoncms_backend/internals/features/cms/lessons/model"
	programModel "lessoncms_backend/internals/features/cms/programs/model"

	"gorm.io/gorm"
)

// Commit helpers: tulis hasil transisi status + timestamp dengan guard
// optimistic-lock (WHERE version = versi yang dibaca). RowsAffected 0
// berarti ada writer lain yang menang duluan → ErrVersionConflict,
// biar pemanggil memutuskan (controller: 409; scheduler: skip, coba
// lagi di cycle berikut).

func CommitLessonStatus(tx *gorm.DB, l *lessonModel.LessonModel) error {
	res := tx.Model(&lessonModel.LessonModel{}).
		Where("lesson_id = ? AND lesson_version = ?", l.LessonID, l.LessonVersion).
		Updates(map[string]interface{}{
			"lesson_status":       l.LessonStatus,
			"lesson_publish_at":   l.LessonPublishAt,
			"lesson_published_at": l.LessonPublishedAt,
			"lesson_version":      l.LessonVersion + 1,
			"lesson_updated_at":   time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	l.LessonVersion++
	return nil
}

func CommitProgramStatus(tx *gorm.DB, p *programModel.ProgramModel) error {
	res := tx.Model(&programModel.ProgramModel{}).
		Where("program_id = ? AND program_version = ?", p.ProgramID, p.ProgramVersion).
		Updates(map[string]interface{}{
			"program_status":       p.ProgramStatus,
			"program_published_at": p.ProgramPublishedAt,
			"program_version":      p.ProgramVersion + 1,
			"program_updated_at":   time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	p.ProgramVersion++
	return nil
}
