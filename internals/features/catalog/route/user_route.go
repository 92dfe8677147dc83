package route

import (
	"lessoncms_backend/internals/features/catalog/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CatalogRoutes: read-only untuk konsumen, tanpa auth.
func CatalogRoutes(api fiber.Router, db *gorm.DB) {
	catalogCtrl := controller.NewCatalogController(db)

	programs := api.Group("/programs")
	programs.Get("/", catalogCtrl.GetPublishedPrograms)          // 📄 Katalog program published
	programs.Get("/:id", catalogCtrl.GetPublishedProgramLessons) // 🔍 Detail + lesson published
}
