package service

import (
	"fmt"
	"log"
	"time"

	"lessoncms_backend/internals/features/payment/orders/model"

	"gorm.io/gorm"
)

// HandleOrderStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
func HandleOrderStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderCode, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ORDER WEBHOOK] payload tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	var order model.OrderModel
	if err := db.Where("order_code = ?", orderCode).First(&order).Error; err != nil {
		return fmt.Errorf("order with code %s not found", orderCode)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now().UTC()
		order.OrderStatus = model.OrderStatusPaid
		order.OrderPaidAt = &now
	case "cancel", "deny":
		order.OrderStatus = model.OrderStatusCanceled
	case "expire":
		order.OrderStatus = model.OrderStatusExpired
	default:
		// pending dsb: tidak ada perubahan
		return nil
	}

	if err := db.Save(&order).Error; err != nil {
		return err
	}
	log.Printf("[ORDER WEBHOOK] order %s → %s", orderCode, order.OrderStatus)
	return nil
}
