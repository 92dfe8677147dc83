package controller

import (
	"strings"
	"time"

	"lessoncms_backend/internals/configs"
	"lessoncms_backend/internals/constants"
	"lessoncms_backend/internals/features/cms/lessons/dto"
	"lessoncms_backend/internals/features/cms/lessons/model"
	programModel "lessoncms_backend/internals/features/cms/programs/model"
	"lessoncms_backend/internals/features/cms/publishing/scheduler"
	"lessoncms_backend/internals/features/cms/publishing/service"
	termModel "lessoncms_backend/internals/features/cms/terms/model"
	helper "lessoncms_backend/internals/helpers"
	authMw "lessoncms_backend/internals/middlewares/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validateLesson = validator.New()

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

// autoCreateTermEnabled: policy "lesson tanpa term → buat Default Term 1".
// Eksplisit & bisa dimatikan lewat env, bukan side effect diam-diam.
func autoCreateTermEnabled() bool {
	v := strings.ToLower(configs.GetEnv("LESSON_AUTO_CREATE_TERM", "true"))
	return v != "false" && v != "0"
}

// =============================
// ➕ Create Lesson di bawah program
// =============================
func (ctrl *LessonController) CreateLesson(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("program_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid program id")
	}

	var body dto.CreateLessonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLesson.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var program programModel.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", programID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program not found")
	}

	var lesson model.LessonModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// resolve term: eksplisit dari request, atau term pertama program,
		// atau auto-create kalau policy aktif
		var termID *uuid.UUID
		if body.LessonTermID != nil {
			parsed, perr := uuid.Parse(*body.LessonTermID)
			if perr != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid term id")
			}
			var term termModel.TermModel
			if terr := tx.First(&term, "term_id = ? AND term_program_id = ?", parsed, programID).Error; terr != nil {
				return fiber.NewError(fiber.StatusNotFound, "Term not found in this program")
			}
			termID = &term.TermID
		} else {
			var term termModel.TermModel
			ferr := tx.Where("term_program_id = ?", programID).Order("term_number ASC").First(&term).Error
			switch {
			case ferr == nil:
				termID = &term.TermID
			case ferr == gorm.ErrRecordNotFound && autoCreateTermEnabled():
				term = termModel.TermModel{
					TermProgramID: programID,
					TermNumber:    1,
					TermTitle:     "Default Term",
				}
				if cerr := tx.Create(&term).Error; cerr != nil {
					return cerr
				}
				termID = &term.TermID
			case ferr == gorm.ErrRecordNotFound:
				// policy mati: lesson boleh hidup tanpa term
			default:
				return ferr
			}
		}

		// nomor urut lesson dalam term (atau dalam program kalau tanpa term)
		var count int64
		q := tx.Model(&model.LessonModel{})
		if termID != nil {
			q = q.Where("lesson_term_id = ?", termID)
		} else {
			q = q.Where("lesson_program_id = ? AND lesson_term_id IS NULL", programID)
		}
		if cerr := q.Count(&count).Error; cerr != nil {
			return cerr
		}

		langPrimary := body.LessonContentLanguagePrimary
		if langPrimary == "" {
			langPrimary = "en"
		}
		langs := body.LessonContentLanguagesAvailable
		if len(langs) == 0 {
			langs = []string{langPrimary}
		}
		contentType := body.LessonContentType
		if contentType == "" {
			contentType = model.ContentTypeVideo
		}

		lesson = model.LessonModel{
			LessonProgramID:                 programID,
			LessonTermID:                    termID,
			LessonTitle:                     body.LessonTitle,
			LessonNumber:                    int(count) + 1,
			LessonContentType:               contentType,
			LessonDurationMS:                body.LessonDurationMS,
			LessonIsPaid:                    body.LessonIsPaid,
			LessonContentLanguagePrimary:    langPrimary,
			LessonContentLanguagesAvailable: langs,
			LessonContentURLsByLanguage:     dto.ToURLJSONMap(body.LessonContentURLsByLanguage),
			LessonSubtitleURLsByLanguage:    dto.ToURLJSONMap(body.LessonSubtitleURLsByLanguage),
			LessonThumbnailAssetsByLanguage: dto.ToAssetJSONMap(body.LessonThumbnailAssets),
			LessonStatus:                    constants.StatusDraft,
			LessonVersion:                   1,
		}
		return tx.Create(&lesson).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Lesson created", dto.ToLessonDTO(lesson))
}

// =============================
// 🔄 Update Lesson (field konten, bukan status)
// =============================
func (ctrl *LessonController) UpdateLesson(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateLessonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLesson.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var lesson model.LessonModel
	if err := ctrl.DB.First(&lesson, "lesson_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Lesson not found")
	}

	lesson.LessonTitle = body.LessonTitle
	if body.LessonContentType != "" {
		lesson.LessonContentType = body.LessonContentType
	}
	if body.LessonDurationMS > 0 {
		lesson.LessonDurationMS = body.LessonDurationMS
	}
	if body.LessonIsPaid != nil {
		lesson.LessonIsPaid = *body.LessonIsPaid
	}
	if body.LessonContentLanguagePrimary != "" {
		lesson.LessonContentLanguagePrimary = body.LessonContentLanguagePrimary
	}
	if len(body.LessonContentLanguagesAvailable) > 0 {
		lesson.LessonContentLanguagesAvailable = body.LessonContentLanguagesAvailable
	}
	if body.LessonContentURLsByLanguage != nil {
		lesson.LessonContentURLsByLanguage = dto.ToURLJSONMap(body.LessonContentURLsByLanguage)
	}
	if body.LessonSubtitleURLsByLanguage != nil {
		lesson.LessonSubtitleURLsByLanguage = dto.ToURLJSONMap(body.LessonSubtitleURLsByLanguage)
	}
	if body.LessonThumbnailAssets != nil {
		lesson.LessonThumbnailAssetsByLanguage = dto.ToAssetJSONMap(body.LessonThumbnailAssets)
	}
	lesson.LessonUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&lesson).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update lesson")
	}

	return helper.Success(c, "Lesson updated", dto.ToLessonDTO(lesson))
}

// =============================
// 🗑️ Delete Lesson
// =============================
func (ctrl *LessonController) DeleteLesson(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.LessonModel{}, "lesson_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete lesson")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Lesson not found")
	}

	return helper.Success(c, "Lesson deleted", fiber.Map{"lesson_id": id})
}

// =============================
// ⏰ Schedule Lesson (publish_at wajib di masa depan)
// =============================
func (ctrl *LessonController) ScheduleLesson(c *fiber.Ctx) error {
	id := c.Params("id")
	role := authMw.RoleFromLocals(c)

	var body dto.ScheduleLessonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLesson.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now().UTC()
	publishAt := body.PublishAt
	if publishAt == nil {
		if body.PublishInMinutes <= 0 {
			return helper.Error(c, fiber.StatusBadRequest, "publish_at or publish_in_minutes is required")
		}
		t := now.Add(time.Duration(body.PublishInMinutes) * time.Minute)
		publishAt = &t
	}

	var lesson model.LessonModel
	if err := ctrl.DB.First(&lesson, "lesson_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Lesson not found")
	}

	if err := service.Transition(&lesson, constants.StatusScheduled, role, now, publishAt); err != nil {
		return helper.FromTransitionError(c, err)
	}
	if err := service.CommitLessonStatus(ctrl.DB, &lesson); err != nil {
		return helper.FromTransitionError(c, err)
	}

	// force satu cycle biar jadwal yang sudah lewat langsung kepromosikan
	go func(db *gorm.DB) {
		if _, err := scheduler.RunCycle(db, time.Now().UTC()); err != nil {
			// non-fatal; ticker berikutnya tetap jalan
			_ = err
		}
	}(ctrl.DB)

	return helper.Success(c, "Lesson scheduled", dto.ToLessonDTO(lesson))
}

// =============================
// 🚀 Publish / Archive / Reopen
// =============================
func (ctrl *LessonController) PublishLesson(c *fiber.Ctx) error {
	return ctrl.transitionLesson(c, constants.StatusPublished, "Lesson published")
}

func (ctrl *LessonController) ArchiveLesson(c *fiber.Ctx) error {
	return ctrl.transitionLesson(c, constants.StatusArchived, "Lesson archived")
}

func (ctrl *LessonController) ReopenLesson(c *fiber.Ctx) error {
	return ctrl.transitionLesson(c, constants.StatusDraft, "Lesson reopened as draft")
}

func (ctrl *LessonController) transitionLesson(c *fiber.Ctx, target, successMsg string) error {
	id := c.Params("id")
	role := authMw.RoleFromLocals(c)

	var lesson model.LessonModel
	if err := ctrl.DB.First(&lesson, "lesson_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Lesson not found")
	}

	if target == constants.StatusArchived && lesson.LessonStatus == constants.StatusArchived {
		return helper.Success(c, "Lesson already archived", dto.ToLessonDTO(lesson))
	}

	if err := service.Transition(&lesson, target, role, time.Now().UTC(), nil); err != nil {
		return helper.FromTransitionError(c, err)
	}
	if err := service.CommitLessonStatus(ctrl.DB, &lesson); err != nil {
		return helper.FromTransitionError(c, err)
	}

	return helper.Success(c, successMsg, dto.ToLessonDTO(lesson))
}
