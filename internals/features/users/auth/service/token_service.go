package service

import (
	"time"

	"lessoncms_backend/internals/configs"
	"lessoncms_backend/internals/features/users/auth/model"

	"github.com/golang-jwt/jwt/v4"
)

// BuildAccessToken membuat JWT HS256 dengan claim role yang dibaca
// middleware AuthJWT. Core publishing tidak pernah lihat token ini,
// cuma role hasil decode-nya.
func BuildAccessToken(user model.UserModel, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.UserID.String(),
		"name":  user.UserName,
		"email": user.UserEmail,
		"role":  user.UserRole,
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
