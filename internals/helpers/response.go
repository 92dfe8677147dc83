package helper

import (
	"errors"

	"lessoncms_backend/internals/features/cms/publishing/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ✅ Success Response tanpa custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Error Response sederhana
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error Response advance, bisa kirim multiple field error
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errs interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errs,
	})
}

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if ok := errors.As(err, &ve); !ok {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", errorsMap)
}

// FromTransitionError memetakan error state machine / store ke HTTP:
// ValidationError → 400 (semua detail ikut), PermissionError → 403,
// record not found → 404, version conflict → 409, sisanya 500.
func FromTransitionError(c *fiber.Ctx, err error) error {
	if ve, ok := service.AsValidationError(err); ok {
		return ErrorWithDetails(c, fiber.StatusBadRequest, "Cannot publish", ve.Details)
	}
	if _, ok := service.AsPermissionError(err); ok {
		return Error(c, fiber.StatusForbidden, "Permission denied")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Error(c, fiber.StatusNotFound, "Not found")
	}
	if errors.Is(err, service.ErrVersionConflict) {
		return Error(c, fiber.StatusConflict, "Entity was modified concurrently, please retry")
	}
	return Error(c, fiber.StatusInternalServerError, "Internal server error")
}
