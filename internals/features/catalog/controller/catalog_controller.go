package controller

import (
	"lessoncms_backend/internals/constants"
	"lessoncms_backend/internals/features/catalog/dto"
	lessonModel "lessoncms_backend/internals/features/cms/lessons/model"
	programModel "lessoncms_backend/internals/features/cms/programs/model"
	helper "lessoncms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

// =============================
// 📄 Catalog Programs (published only, terbaru dulu)
// =============================
func (ctrl *CatalogController) GetPublishedPrograms(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&programModel.ProgramModel{}).
		Where("program_status = ?", constants.StatusPublished).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count programs")
	}

	var programs []programModel.ProgramModel
	if err := ctrl.DB.
		Where("program_status = ?", constants.StatusPublished).
		Order("program_published_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&programs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve programs")
	}

	result := make([]dto.CatalogProgramDTO, 0, len(programs))
	for _, p := range programs {
		result = append(result, dto.ToCatalogProgramDTO(p))
	}

	return helper.Success(c, "OK", fiber.Map{
		"programs":   result,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// =============================
// 🔍 Catalog Program Detail (lessons published, urut lesson_number)
// =============================
func (ctrl *CatalogController) GetPublishedProgramLessons(c *fiber.Ctx) error {
	id := c.Params("id")

	var program programModel.ProgramModel
	if err := ctrl.DB.
		First(&program, "program_id = ? AND program_status = ?", id, constants.StatusPublished).
		Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program not found or unpublished")
	}

	var lessons []lessonModel.LessonModel
	if err := ctrl.DB.
		Where("lesson_program_id = ? AND lesson_status = ?", program.ProgramID, constants.StatusPublished).
		Order("lesson_number ASC").
		Find(&lessons).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve lessons")
	}

	lessonDTOs := make([]dto.CatalogLessonDTO, 0, len(lessons))
	for _, l := range lessons {
		lessonDTOs = append(lessonDTOs, dto.ToCatalogLessonDTO(l))
	}

	return helper.Success(c, "OK", fiber.Map{
		"program": dto.ToCatalogProgramDTO(program),
		"lessons": lessonDTOs,
	})
}
