package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dbDePrueba(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	return db, mock
}

type sobre struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
		Pages int   `json:"pages"`
	} `json:"pagination"`
}

func leerSobre(t *testing.T, body io.Reader) sobre {
	t.Helper()
	var s sobre
	if err := json.NewDecoder(body).Decode(&s); err != nil {
		t.Fatalf("decodificando respuesta: %v", err)
	}
	return s
}

func appCuadro(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := &CuadroClasificacionController{DB: db}
	app.Get("/cuadro-clasificacion", ctrl.List)
	app.Get("/cuadro-clasificacion/:id", ctrl.GetByID)
	app.Delete("/cuadro-clasificacion/:id", ctrl.Delete)
	return app
}

func TestCuadroListPaginado(t *testing.T) {
	db, mock := dbDePrueba(t)
	app := appCuadro(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "cuadro_clasificacion"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))
	mock.ExpectQuery(`SELECT \* FROM "cuadro_clasificacion" ORDER BY codigo ASC LIMIT \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "codigo", "titulo", "descripcion"}).
			AddRow(1, "1C", "Legislación", "").
			AddRow(2, "2C", "Asuntos Jurídicos", ""))

	resp, err := app.Test(httptest.NewRequest("GET", "/cuadro-clasificacion?page=1&limit=10", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, esperado 200", resp.StatusCode)
	}

	s := leerSobre(t, resp.Body)
	if !s.Success {
		t.Error("success = false")
	}
	if s.Pagination == nil {
		t.Fatal("falta el bloque pagination")
	}
	if s.Pagination.Total != 15 || s.Pagination.Pages != 2 {
		t.Errorf("pagination = %+v, esperado total=15 pages=2", s.Pagination)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCuadroGetByIDNoEncontrado(t *testing.T) {
	db, mock := dbDePrueba(t)
	app := appCuadro(db)

	mock.ExpectQuery(`SELECT \* FROM "cuadro_clasificacion" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/cuadro-clasificacion/99", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, esperado 404", resp.StatusCode)
	}
}

func TestCuadroDeleteConDocumentos(t *testing.T) {
	db, mock := dbDePrueba(t)
	app := appCuadro(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "documentos" WHERE codigo_clasificacion_id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/cuadro-clasificacion/3", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("status = %d, esperado 409", resp.StatusCode)
	}
	s := leerSobre(t, resp.Body)
	if s.Success {
		t.Error("success = true en un conflicto")
	}
	if s.Message != msgTieneDocumentos {
		t.Errorf("message = %q, esperado %q", s.Message, msgTieneDocumentos)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCuadroDeleteLibre(t *testing.T) {
	db, mock := dbDePrueba(t)
	app := appCuadro(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "documentos" WHERE codigo_clasificacion_id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cuadro_clasificacion"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/cuadro-clasificacion/3", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, esperado 200", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
