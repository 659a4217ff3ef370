package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "gestordocumental_backend/internals/features/auth/route"
	bitacoraRoute "gestordocumental_backend/internals/features/bitacora/route"
	catalogoRoute "gestordocumental_backend/internals/features/catalogos/route"
	documentoRoute "gestordocumental_backend/internals/features/documentos/route"
	docService "gestordocumental_backend/internals/features/documentos/service"
	favoritoRoute "gestordocumental_backend/internals/features/favoritos/route"
	usuarioRoute "gestordocumental_backend/internals/features/usuarios/route"
	authmw "gestordocumental_backend/internals/middlewares/auth"
)

// SetupRoutes monta el árbol completo: primero las rutas públicas
// (health, auth), después el grupo /api protegido con JWT y carga de
// rol.
func SetupRoutes(app *fiber.App, db *gorm.DB, almacen *docService.Almacen) {
	BaseRoutes(app, db)

	log.Println("[INFO] Registrando AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", authmw.AuthMiddleware(), authmw.LoadRole(db))

	log.Println("[INFO] Registrando UsuarioRoutes...")
	usuarioRoute.UsuarioRoutes(api, db)

	log.Println("[INFO] Registrando CatalogoRoutes...")
	catalogoRoute.CatalogoRoutes(api, db)

	log.Println("[INFO] Registrando DocumentoRoutes...")
	documentoRoute.DocumentoRoutes(api, db, almacen)

	log.Println("[INFO] Registrando FavoritoRoutes...")
	favoritoRoute.FavoritoRoutes(api, db)

	log.Println("[INFO] Registrando BitacoraRoutes...")
	bitacoraRoute.BitacoraRoutes(api, db)
}
