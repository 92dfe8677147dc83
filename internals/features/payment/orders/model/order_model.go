package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusCanceled = "canceled"
	OrderStatusExpired  = "expired"
)

// OrderModel merepresentasikan tabel orders (checkout lesson berbayar)
type OrderModel struct {
	OrderID       uuid.UUID `json:"order_id" gorm:"column:order_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderCode     string    `json:"order_code" gorm:"column:order_code;type:varchar(64);not null;uniqueIndex"`
	OrderLessonID uuid.UUID `json:"order_lesson_id" gorm:"column:order_lesson_id;type:uuid;not null;index"`
	OrderUserID   uuid.UUID `json:"order_user_id" gorm:"column:order_user_id;type:uuid;not null;index"`

	OrderAmount    int64      `json:"order_amount" gorm:"column:order_amount;not null"`
	OrderStatus    string     `json:"order_status" gorm:"column:order_status;type:varchar(20);not null;default:'pending'"`
	OrderSnapToken string     `json:"order_snap_token,omitempty" gorm:"column:order_snap_token;type:text"`
	OrderPaidAt    *time.Time `json:"order_paid_at,omitempty" gorm:"column:order_paid_at"`

	OrderCreatedAt time.Time `json:"order_created_at" gorm:"column:order_created_at;autoCreateTime"`
	OrderUpdatedAt time.Time `json:"order_updated_at" gorm:"column:order_updated_at;autoUpdateTime"`
}

func (OrderModel) TableName() string { return "orders" }
