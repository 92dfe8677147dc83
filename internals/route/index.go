package routes

import (
	"log"
	"os"

	"lessoncms_backend/internals/constants"
	catalogRoute "lessoncms_backend/internals/features/catalog/route"
	cmsRoute "lessoncms_backend/internals/features/cms/route"
	orderRoute "lessoncms_backend/internals/features/payment/orders/route"
	authRoute "lessoncms_backend/internals/features/users/auth/route"
	authMw "lessoncms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC groups...")
	catalog := app.Group("/api/catalog")
	public := app.Group("/api/public")

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ===================== ADMIN/EDITOR (CMS) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMw.OnlyRoles(constants.RoleErrorEditor("CMS"), constants.EditorAndAbove...),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Catalog routes...")
	catalogRoute.CatalogRoutes(catalog, db)

	log.Println("[INFO] Mounting CMS routes...")
	cmsRoute.CmsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Order routes...")
	orderRoute.OrderUserRoutes(private, db)
	orderRoute.OrderPublicRoutes(public, db)
}
