package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/usuarios/controller"
	authmw "gestordocumental_backend/internals/middlewares/auth"
)

// UsuarioRoutes registra /usuarios y /roles sobre el grupo autenticado.
// Las escrituras quedan restringidas a admin/superAdmin.
func UsuarioRoutes(api fiber.Router, db *gorm.DB) {
	usuarioCtrl := &controller.UsuarioController{DB: db}
	rolCtrl := &controller.RolController{DB: db}

	usuarios := api.Group("/usuarios")
	usuarios.Get("/", usuarioCtrl.List)
	usuarios.Get("/:id", usuarioCtrl.GetByID)
	usuarios.Post("/", authmw.OnlyRoles("admin", "superAdmin"), usuarioCtrl.Create)
	usuarios.Put("/:id", authmw.OnlyRoles("admin", "superAdmin"), usuarioCtrl.Update)
	usuarios.Delete("/:id", authmw.OnlyRoles("admin", "superAdmin"), usuarioCtrl.Delete)

	roles := api.Group("/roles")
	roles.Get("/", rolCtrl.List)
	roles.Get("/:id", rolCtrl.GetByID)
	roles.Post("/", authmw.OnlyRoles("admin", "superAdmin"), rolCtrl.Create)
	roles.Put("/:id", authmw.OnlyRoles("admin", "superAdmin"), rolCtrl.Update)
	roles.Delete("/:id", authmw.OnlyRoles("superAdmin"), rolCtrl.Delete)
}
