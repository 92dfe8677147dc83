package route

import (
	"lessoncms_backend/internals/constants"
	lessonController "lessoncms_backend/internals/features/cms/lessons/controller"
	programController "lessoncms_backend/internals/features/cms/programs/controller"
	publishController "lessoncms_backend/internals/features/cms/publishing/controller"
	termController "lessoncms_backend/internals/features/cms/terms/controller"
	authMw "lessoncms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CmsAdminRoutes: semua endpoint mutasi CMS (group sudah dipagari JWT + role editor/admin).
func CmsAdminRoutes(api fiber.Router, db *gorm.DB) {
	programCtrl := programController.NewProgramController(db)
	termCtrl := termController.NewTermController(db)
	lessonCtrl := lessonController.NewLessonController(db)
	publishCtrl := publishController.NewPublishController(db)

	// === PROGRAMS ===
	programs := api.Group("/programs")
	programs.Post("/", programCtrl.CreateProgram)            // ➕ Buat program (draft)
	programs.Get("/", programCtrl.GetAllPrograms)            // 📄 Semua program (semua status)
	programs.Get("/:id", programCtrl.GetProgramByID)         // 🔍 Detail + terms + lessons
	programs.Put("/:id", programCtrl.UpdateProgram)          // 🔄 Update konten
	programs.Delete("/:id", programCtrl.DeleteProgram)       // 🗑️ Hapus (cascade)
	programs.Post("/:id/publish", programCtrl.PublishProgram) // 🚀 Publish manual (validasi poster)
	programs.Post("/:id/archive", programCtrl.ArchiveProgram)
	programs.Post("/:id/reopen", programCtrl.ReopenProgram)

	// === TERMS ===
	programs.Post("/:program_id/terms", termCtrl.CreateTerm)
	programs.Get("/:program_id/terms", termCtrl.GetTermsByProgram)
	api.Delete("/terms/:id", termCtrl.DeleteTerm)

	// === LESSONS ===
	programs.Post("/:program_id/lessons", lessonCtrl.CreateLesson)
	lessons := api.Group("/lessons")
	lessons.Put("/:id", lessonCtrl.UpdateLesson)
	lessons.Delete("/:id", lessonCtrl.DeleteLesson)
	lessons.Post("/:id/publish", lessonCtrl.PublishLesson)   // 🚀 Publish manual (validasi asset)
	lessons.Post("/:id/schedule", lessonCtrl.ScheduleLesson) // ⏰ Jadwalkan
	lessons.Post("/:id/archive", lessonCtrl.ArchiveLesson)
	lessons.Post("/:id/reopen", lessonCtrl.ReopenLesson)

	// === PUBLISH RUNNER (admin only, mirror worker endpoint lama) ===
	publish := api.Group("/publish",
		authMw.OnlyRoles(constants.RoleErrorAdmin("publish runner"), constants.AdminOnly...),
	)
	publish.Post("/run", publishCtrl.RunCycle) // ▶️ Paksa satu cycle sekarang
}
