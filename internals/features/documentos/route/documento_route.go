package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/documentos/controller"
	"gestordocumental_backend/internals/features/documentos/service"
	authmw "gestordocumental_backend/internals/middlewares/auth"
)

// DocumentoRoutes registra /documentos sobre el grupo autenticado.
// Cualquier usuario autenticado puede consultar y subir; la
// eliminación queda restringida a admin/superAdmin.
func DocumentoRoutes(api fiber.Router, db *gorm.DB, almacen *service.Almacen) {
	ctrl := &controller.DocumentoController{DB: db, Almacen: almacen}

	docs := api.Group("/documentos")
	docs.Get("/", ctrl.List)
	docs.Post("/", ctrl.Create)
	docs.Post("/upload", ctrl.Upload)
	docs.Get("/:id", ctrl.GetByID)
	docs.Put("/:id", ctrl.Update)
	docs.Delete("/:id", authmw.OnlyRoles("admin", "superAdmin"), ctrl.Delete)
}
