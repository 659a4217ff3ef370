package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/catalogos/controller"
	authmw "gestordocumental_backend/internals/middlewares/auth"
)

// CatalogoRoutes registra los ocho catálogos de clasificación sobre el
// grupo autenticado. Las escrituras de departamentos quedan restringidas
// a admin/superAdmin; el resto de catálogos acepta escrituras de
// cualquier usuario autenticado (los captura el área de archivo).
func CatalogoRoutes(api fiber.Router, db *gorm.DB) {
	cuadroCtrl := &controller.CuadroClasificacionController{DB: db}
	valoresCtrl := &controller.ValoresDocumentalesController{DB: db}
	plazosCtrl := &controller.PlazosConservacionController{DB: db}
	destinosCtrl := &controller.DestinosFinalesController{DB: db}
	soportesCtrl := &controller.SoportesController{DB: db}
	departamentosCtrl := &controller.DepartamentosController{DB: db}
	tiposCtrl := &controller.TiposDocumentosController{DB: db}
	periodosCtrl := &controller.PeriodosController{DB: db}

	cuadro := api.Group("/cuadro-clasificacion")
	cuadro.Get("/", cuadroCtrl.List)
	cuadro.Get("/:id", cuadroCtrl.GetByID)
	cuadro.Post("/", cuadroCtrl.Create)
	cuadro.Put("/:id", cuadroCtrl.Update)
	cuadro.Delete("/:id", authmw.OnlyRoles("admin", "superAdmin"), cuadroCtrl.Delete)

	valores := api.Group("/valores-documentales")
	valores.Get("/", valoresCtrl.List)
	valores.Get("/:id", valoresCtrl.GetByID)
	valores.Post("/", valoresCtrl.Create)
	valores.Put("/:id", valoresCtrl.Update)
	valores.Delete("/:id", authmw.OnlyRoles("admin", "superAdmin"), valoresCtrl.Delete)

	plazos := api.Group("/plazos-conservacion")
	plazos.Get("/", plazosCtrl.List)
	plazos.Get("/:id", plazosCtrl.GetByID)
	plazos.Post("/", plazosCtrl.Create)
	plazos.Put("/:id", plazosCtrl.Update)
	plazos.Delete("/:id", authmw.OnlyRoles("admin", "superAdmin"), plazosCtrl.Delete)

	destinos := api.Group("/destinos-finales")
	destinos.Get("/", destinosCtrl.List)
	destinos.Get("/:id", destinosCtrl.GetByID)
	destinos.Post("/", destinosCtrl.Create)
	destinos.Put("/:id", destinosCtrl.Update)
	destinos.Delete("/:id", authmw.OnlyRoles("admin", "superAdmin"), destinosCtrl.Delete)

	soportes := api.Group("/soportes-documentales")
	soportes.Get("/", soportesCtrl.List)
	soportes.Get("/:id", soportesCtrl.GetByID)
	soportes.Post("/", soportesCtrl.Create)
	soportes.Put("/:id", soportesCtrl.Update)
	soportes.Delete("/:id", authmw.OnlyRoles("admin", "superAdmin"), soportesCtrl.Delete)

	departamentos := api.Group("/departamentos")
	departamentos.Get("/", departamentosCtrl.List)
	departamentos.Get("/:id", departamentosCtrl.GetByID)
	departamentos.Post("/", authmw.OnlyRoles("admin", "superAdmin"), departamentosCtrl.Create)
	departamentos.Put("/:id", authmw.OnlyRoles("admin", "superAdmin"), departamentosCtrl.Update)
	departamentos.Delete("/:id", authmw.OnlyRoles("admin", "superAdmin"), departamentosCtrl.Delete)

	tipos := api.Group("/tipos-documentos")
	tipos.Get("/", tiposCtrl.List)
	tipos.Get("/:id", tiposCtrl.GetByID)
	tipos.Post("/", tiposCtrl.Create)
	tipos.Put("/:id", tiposCtrl.Update)
	tipos.Delete("/:id", authmw.OnlyRoles("admin", "superAdmin"), tiposCtrl.Delete)

	periodos := api.Group("/periodos")
	periodos.Get("/", periodosCtrl.List)
	periodos.Get("/:id", periodosCtrl.GetByID)
	periodos.Post("/", periodosCtrl.Create)
	periodos.Put("/:id", periodosCtrl.Update)
	periodos.Delete("/:id", authmw.OnlyRoles("admin", "superAdmin"), periodosCtrl.Delete)
}
