package controller

import (
	"fmt"
	"strconv"
	"time"

	"lessoncms_backend/internals/configs"
	lessonModel "lessoncms_backend/internals/features/cms/lessons/model"
	"lessoncms_backend/internals/features/payment/orders/model"
	"lessoncms_backend/internals/features/payment/orders/service"
	helper "lessoncms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// =============================
// 🛒 Create Order untuk lesson berbayar
// =============================
func (ctrl *OrderController) CreateOrder(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("lesson_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid lesson id")
	}

	userID, _ := c.Locals("userID").(string)
	uid, err := uuid.Parse(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var lesson lessonModel.LessonModel
	if err := ctrl.DB.First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Lesson not found")
	}
	if lesson.LessonStatus != "published" {
		return helper.Error(c, fiber.StatusBadRequest, "Lesson is not available for purchase")
	}
	if !lesson.LessonIsPaid {
		return helper.Error(c, fiber.StatusBadRequest, "Lesson is free, no order needed")
	}

	amount := int64(50000)
	if v := configs.GetEnv("LESSON_PRICE_IDR"); v != "" {
		if parsed, perr := strconv.ParseInt(v, 10, 64); perr == nil && parsed > 0 {
			amount = parsed
		}
	}

	order := model.OrderModel{
		OrderCode:     fmt.Sprintf("LSN-%d-%s", time.Now().Unix(), lesson.LessonID.String()[:8]),
		OrderLessonID: lesson.LessonID,
		OrderUserID:   uid,
		OrderAmount:   amount,
		OrderStatus:   model.OrderStatusPending,
	}
	if err := ctrl.DB.Create(&order).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create order")
	}

	name, email := claimString(c, "name"), claimString(c, "email")
	token, err := service.GenerateSnapToken(order, name, email)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Failed to create payment transaction")
	}

	order.OrderSnapToken = token
	if err := ctrl.DB.Save(&order).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store payment token")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Order created", order)
}

// =============================
// 📬 Midtrans Webhook
// =============================
func (ctrl *OrderController) Webhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}
	if err := service.HandleOrderStatusWebhook(ctrl.DB, body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "OK", nil)
}

func claimString(c *fiber.Ctx, key string) string {
	if claims, ok := c.Locals("jwt_claims").(jwt.MapClaims); ok {
		if s, ok := claims[key].(string); ok {
			return s
		}
	}
	return ""
}
