package controller

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"lessoncms_backend/internals/configs"
	"lessoncms_backend/internals/constants"
	"lessoncms_backend/internals/features/users/auth/dto"
	"lessoncms_backend/internals/features/users/auth/model"
	"lessoncms_backend/internals/features/users/auth/service"
	helper "lessoncms_backend/internals/helpers"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 🔐 Login email + password
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_email = ? AND user_is_active = true", strings.ToLower(body.Email)).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := service.BuildAccessToken(user, time.Now().UTC())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		Token: token,
		Role:  user.UserRole,
		Name:  user.UserName,
		Email: user.UserEmail,
	})
}

// =============================
// 🔐 Login via Google ID Token
// =============================
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := strings.ToLower(claimSet.Email), claimSet.Name, claimSet.Sub

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_google_id = ?", googleID).Error; err != nil {
		// User belum ada → buat baru sebagai viewer
		user = model.UserModel{
			UserName:     name,
			UserEmail:    email,
			UserPassword: generateDummyPassword(),
			UserRole:     constants.RoleViewer,
			UserGoogleID: &googleID,
			UserIsActive: true,
		}
		if cerr := ctrl.DB.Create(&user).Error; cerr != nil {
			low := strings.ToLower(cerr.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helper.Error(c, fiber.StatusBadRequest, "Email already registered")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
	}

	token, err := service.BuildAccessToken(user, time.Now().UTC())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		Token: token,
		Role:  user.UserRole,
		Name:  user.UserName,
		Email: user.UserEmail,
	})
}

// =============================
// 👤 Me (cek token & role aktif)
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	userID, _ := c.Locals("userID").(string)
	return helper.Success(c, "OK", fiber.Map{
		"user_id": userID,
		"role":    role,
	})
}

// generateDummyPassword: akun Google tidak punya password lokal;
// isi hash random supaya login password selalu gagal.
func generateDummyPassword() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	hashed, _ := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), bcrypt.DefaultCost)
	return string(hashed)
}
