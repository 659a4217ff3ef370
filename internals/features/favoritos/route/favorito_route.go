package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/favoritos/controller"
)

// FavoritoRoutes registra /favoritos sobre el grupo autenticado.
// Las rutas fijas van antes de /:id para que el router no las capture.
func FavoritoRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := &controller.FavoritoController{DB: db}

	favoritos := api.Group("/favoritos")
	favoritos.Get("/", ctrl.List)
	favoritos.Get("/usuario/:usuario_id", ctrl.PorUsuario)
	favoritos.Get("/check/:documento_id/:usuario_id?", ctrl.Check)
	favoritos.Post("/", ctrl.Create)
	favoritos.Delete("/documento/:documento_id", ctrl.DeletePorDocumento)
	favoritos.Delete("/:id", ctrl.Delete)
}
