package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Todos los catálogos referenciados por documentos bloquean su
// eliminación con 409 mientras exista al menos un documento asociado.
func TestCatalogosDeleteBloqueadoConDocumentos(t *testing.T) {
	casos := []struct {
		nombre  string
		columna string
		handler func(db *gorm.DB) fiber.Handler
	}{
		{"valores documentales", "valor_documental_id", func(db *gorm.DB) fiber.Handler {
			return (&ValoresDocumentalesController{DB: db}).Delete
		}},
		{"plazos de conservación", "plazo_conservacion_id", func(db *gorm.DB) fiber.Handler {
			return (&PlazosConservacionController{DB: db}).Delete
		}},
		{"destinos finales", "destino_final_id", func(db *gorm.DB) fiber.Handler {
			return (&DestinosFinalesController{DB: db}).Delete
		}},
		{"soportes documentales", "soporte_documental_id", func(db *gorm.DB) fiber.Handler {
			return (&SoportesController{DB: db}).Delete
		}},
		{"departamentos", "departamentos_id", func(db *gorm.DB) fiber.Handler {
			return (&DepartamentosController{DB: db}).Delete
		}},
		{"tipos de documento", "tipos_documentos_id", func(db *gorm.DB) fiber.Handler {
			return (&TiposDocumentosController{DB: db}).Delete
		}},
		{"periodos", "periodos_id", func(db *gorm.DB) fiber.Handler {
			return (&PeriodosController{DB: db}).Delete
		}},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			db, mock := dbDePrueba(t)
			app := fiber.New()
			app.Delete("/catalogo/:id", tc.handler(db))

			mock.ExpectQuery(`SELECT count\(\*\) FROM "documentos" WHERE ` + tc.columna + ` = \$1`).
				WithArgs(8).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

			resp, err := app.Test(httptest.NewRequest("DELETE", "/catalogo/8", nil))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != fiber.StatusConflict {
				t.Errorf("status = %d, esperado 409", resp.StatusCode)
			}
			s := leerSobre(t, resp.Body)
			if s.Message != msgTieneDocumentos {
				t.Errorf("message = %q, esperado %q", s.Message, msgTieneDocumentos)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}
