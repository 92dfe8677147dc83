package controller

import (
	"time"

	"lessoncms_backend/internals/constants"
	lessonModel "lessoncms_backend/internals/features/cms/lessons/model"
	"lessoncms_backend/internals/features/cms/programs/dto"
	"lessoncms_backend/internals/features/cms/programs/model"
	"lessoncms_backend/internals/features/cms/publishing/service"
	termModel "lessoncms_backend/internals/features/cms/terms/model"
	helper "lessoncms_backend/internals/helpers"
	authMw "lessoncms_backend/internals/middlewares/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateProgram = validator.New()

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

// =============================
// ➕ Create Program (mulai draft)
// =============================
func (ctrl *ProgramController) CreateProgram(c *fiber.Ctx) error {
	role := authMw.RoleFromLocals(c)
	if !constants.CanPerform(role, constants.OpCreate) {
		return helper.Error(c, fiber.StatusForbidden, "Permission denied")
	}

	var body dto.CreateProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProgram.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	langPrimary := body.ProgramLanguagePrimary
	if langPrimary == "" {
		langPrimary = "en"
	}
	langs := body.ProgramLanguagesAvailable
	if len(langs) == 0 {
		langs = []string{langPrimary}
	}

	program := model.ProgramModel{
		ProgramTitle:                  body.ProgramTitle,
		ProgramDescription:            body.ProgramDescription,
		ProgramLanguagePrimary:        langPrimary,
		ProgramLanguagesAvailable:     langs,
		ProgramPosterAssetsByLanguage: dto.ToAssetJSONMap(body.ProgramPosterAssets),
		ProgramStatus:                 constants.StatusDraft,
		ProgramVersion:                1,
	}

	if err := ctrl.DB.Create(&program).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create program")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program created", dto.ToProgramDTO(program))
}

// =============================
// 📄 List Programs (CMS, semua status)
// =============================
func (ctrl *ProgramController) GetAllPrograms(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ProgramModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count programs")
	}

	var programs []model.ProgramModel
	if err := ctrl.DB.
		Order("program_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&programs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve programs")
	}

	result := make([]dto.ProgramDTO, 0, len(programs))
	for _, p := range programs {
		result = append(result, dto.ToProgramDTO(p))
	}

	return helper.Success(c, "OK", fiber.Map{
		"programs":   result,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// =============================
// 🔍 Program Detail (dengan terms + lessons)
// =============================
func (ctrl *ProgramController) GetProgramByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program not found")
	}

	var terms []termModel.TermModel
	if err := ctrl.DB.
		Where("term_program_id = ?", program.ProgramID).
		Order("term_number ASC").
		Find(&terms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve terms")
	}

	var lessons []lessonModel.LessonModel
	if err := ctrl.DB.
		Where("lesson_program_id = ?", program.ProgramID).
		Order("lesson_number ASC").
		Find(&lessons).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve lessons")
	}

	return helper.Success(c, "OK", fiber.Map{
		"program": dto.ToProgramDTO(program),
		"terms":   terms,
		"lessons": lessons,
	})
}

// =============================
// 🔄 Update Program (field konten, bukan status)
// =============================
func (ctrl *ProgramController) UpdateProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProgram.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var program model.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program not found")
	}

	program.ProgramTitle = body.ProgramTitle
	program.ProgramDescription = body.ProgramDescription
	if body.ProgramLanguagePrimary != "" {
		program.ProgramLanguagePrimary = body.ProgramLanguagePrimary
	}
	if len(body.ProgramLanguagesAvailable) > 0 {
		program.ProgramLanguagesAvailable = body.ProgramLanguagesAvailable
	}
	if body.ProgramPosterAssets != nil {
		program.ProgramPosterAssetsByLanguage = dto.ToAssetJSONMap(body.ProgramPosterAssets)
	}
	program.ProgramUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&program).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update program")
	}

	return helper.Success(c, "Program updated", dto.ToProgramDTO(program))
}

// =============================
// 🗑️ Delete Program (cascade ke terms & lessons)
// =============================
func (ctrl *ProgramController) DeleteProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program not found")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&lessonModel.LessonModel{}, "lesson_program_id = ?", program.ProgramID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&termModel.TermModel{}, "term_program_id = ?", program.ProgramID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ProgramModel{}, "program_id = ?", program.ProgramID).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete program")
	}

	return helper.Success(c, "Program deleted", fiber.Map{"program_id": id})
}

// =============================
// 🚀 Publish / Archive / Reopen
// =============================
func (ctrl *ProgramController) PublishProgram(c *fiber.Ctx) error {
	return ctrl.transitionProgram(c, constants.StatusPublished, "Program published")
}

func (ctrl *ProgramController) ArchiveProgram(c *fiber.Ctx) error {
	return ctrl.transitionProgram(c, constants.StatusArchived, "Program archived")
}

func (ctrl *ProgramController) ReopenProgram(c *fiber.Ctx) error {
	return ctrl.transitionProgram(c, constants.StatusDraft, "Program reopened as draft")
}

func (ctrl *ProgramController) transitionProgram(c *fiber.Ctx, target, successMsg string) error {
	id := c.Params("id")
	role := authMw.RoleFromLocals(c)

	var program model.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program not found")
	}

	if err := service.Transition(&program, target, role, time.Now().UTC(), nil); err != nil {
		return helper.FromTransitionError(c, err)
	}

	if err := service.CommitProgramStatus(ctrl.DB, &program); err != nil {
		return helper.FromTransitionError(c, err)
	}

	return helper.Success(c, successMsg, dto.ToProgramDTO(program))
}
