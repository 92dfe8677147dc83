package route

import (
	"lessoncms_backend/internals/configs"
	"lessoncms_backend/internals/features/users/auth/controller"
	"lessoncms_backend/internals/middlewares"
	authMw "lessoncms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)
	auth.Get("/me",
		authMw.AuthJWT(authMw.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
		authCtrl.Me,
	)
}
