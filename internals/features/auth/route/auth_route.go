package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/auth/controller"
	"gestordocumental_backend/internals/middlewares"
	authmw "gestordocumental_backend/internals/middlewares/auth"
)

// AuthRoutes registra /api/auth. El login es público (con limiter
// estricto); /me requiere token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &controller.AuthController{DB: db}

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/me", authmw.AuthMiddleware(), authmw.LoadRole(db), ctrl.Me)
}
