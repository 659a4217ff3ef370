package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/bitacora/controller"
	authmw "gestordocumental_backend/internals/middlewares/auth"
)

// BitacoraRoutes registra /bitacora sobre el grupo autenticado.
// Las rutas fijas van antes que /:id para que fiber no las capture como parámetro.
func BitacoraRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := &controller.BitacoraController{DB: db}

	bitacora := api.Group("/bitacora")
	bitacora.Get("/", ctrl.List)
	bitacora.Get("/usuario/:usuario_id", ctrl.PorUsuario)
	bitacora.Get("/meta/estadisticas", ctrl.EstadisticasMeta)
	bitacora.Post("/limpiar", authmw.OnlyRoles("admin", "superAdmin"), ctrl.Limpiar)
	bitacora.Get("/:id", ctrl.GetByID)
	bitacora.Post("/", ctrl.Create)
	bitacora.Put("/:id", ctrl.Update)
	bitacora.Delete("/:id", authmw.OnlyRoles("admin", "superAdmin"), ctrl.Delete)
}
