package controller

import (
	lessonModel "lessoncms_backend/internals/features/cms/lessons/model"
	programModel "lessoncms_backend/internals/features/cms/programs/model"
	"lessoncms_backend/internals/features/cms/terms/dto"
	"lessoncms_backend/internals/features/cms/terms/model"
	helper "lessoncms_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validateTerm = validator.New()

type TermController struct {
	DB *gorm.DB
}

func NewTermController(db *gorm.DB) *TermController {
	return &TermController{DB: db}
}

// =============================
// ➕ Create Term di bawah program
// =============================
func (ctrl *TermController) CreateTerm(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("program_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid program id")
	}

	var body dto.CreateTermRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTerm.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var program programModel.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", programID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program not found")
	}

	term := model.TermModel{
		TermProgramID: program.ProgramID,
		TermNumber:    body.TermNumber,
		TermTitle:     body.TermTitle,
	}
	if err := ctrl.DB.Create(&term).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create term")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Term created", dto.ToTermDTO(term))
}

// =============================
// 📄 List Terms per program
// =============================
func (ctrl *TermController) GetTermsByProgram(c *fiber.Ctx) error {
	programID := c.Params("program_id")

	var terms []model.TermModel
	if err := ctrl.DB.
		Where("term_program_id = ?", programID).
		Order("term_number ASC").
		Find(&terms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve terms")
	}

	result := make([]dto.TermDTO, 0, len(terms))
	for _, t := range terms {
		result = append(result, dto.ToTermDTO(t))
	}
	return helper.Success(c, "OK", result)
}

// =============================
// 🗑️ Delete Term (cascade ke lessons di term itu)
// =============================
func (ctrl *TermController) DeleteTerm(c *fiber.Ctx) error {
	id := c.Params("id")

	var term model.TermModel
	if err := ctrl.DB.First(&term, "term_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Term not found")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&lessonModel.LessonModel{}, "lesson_term_id = ?", term.TermID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TermModel{}, "term_id = ?", term.TermID).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete term")
	}

	return helper.Success(c, "Term deleted", fiber.Map{"term_id": id})
}
