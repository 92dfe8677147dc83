package database

import (
	"log"

	lessonModel "lessoncms_backend/internals/features/cms/lessons/model"
	programModel "lessoncms_backend/internals/features/cms/programs/model"
	termModel "lessoncms_backend/internals/features/cms/terms/model"
	orderModel "lessoncms_backend/internals/features/payment/orders/model"
	userModel "lessoncms_backend/internals/features/users/auth/model"
)

// MigrateAll menjalankan AutoMigrate untuk seluruh tabel.
// Cascade delete program→terms→lessons di-handle eksplisit di controller
// dalam satu transaksi, jadi tidak bergantung ke FK ON DELETE di DB.
func MigrateAll() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&programModel.ProgramModel{},
		&termModel.TermModel{},
		&lessonModel.LessonModel{},
		&orderModel.OrderModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrate: %v", err)
	}
	log.Println("✅ Migrasi tabel selesai.")
}
