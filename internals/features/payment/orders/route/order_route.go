package route

import (
	"lessoncms_backend/internals/features/payment/orders/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OrderUserRoutes: checkout lesson berbayar (group sudah dipagari JWT).
func OrderUserRoutes(api fiber.Router, db *gorm.DB) {
	orderCtrl := controller.NewOrderController(db)
	api.Post("/lessons/:lesson_id/orders", orderCtrl.CreateOrder) // 🛒 Buat order + Snap token
}

// OrderPublicRoutes: webhook Midtrans (tanpa auth, dipanggil server Midtrans).
func OrderPublicRoutes(api fiber.Router, db *gorm.DB) {
	orderCtrl := controller.NewOrderController(db)
	api.Post("/orders/webhook", orderCtrl.Webhook) // 📬 Notifikasi status transaksi
}
