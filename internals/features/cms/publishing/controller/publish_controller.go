package controller

import (
	"time"

	"lessoncms_backend/internals/features/cms/publishing/scheduler"
	helper "lessoncms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PublishController struct {
	DB *gorm.DB
}

func NewPublishController(db *gorm.DB) *PublishController {
	return &PublishController{DB: db}
}

// =============================
// ▶️ Run promoter cycle on-demand
// =============================
func (ctrl *PublishController) RunCycle(c *fiber.Ctx) error {
	report, err := scheduler.RunCycle(ctrl.DB, time.Now().UTC())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Publish cycle failed")
	}
	return helper.Success(c, "Publish cycle finished", report)
}
