package controller

import (
	"net/http/httptest"
	"strings"
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

func appLimpiar(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := &BitacoraController{DB: db}
	app.Post("/bitacora/limpiar", ctrl.Limpiar)
	return app
}

func TestLimpiarCeroExplicito(t *testing.T) {
	db, mock := dbDePrueba(t)
	app := appLimpiar(db)

	// Un cero explícito no es "campo ausente": debe rechazarse sin
	// tocar la base.
	req := httptest.NewRequest("POST", "/bitacora/limpiar", strings.NewReader(`{"dias":0}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, esperado 400", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestLimpiarNegativo(t *testing.T) {
	db, _ := dbDePrueba(t)
	app := appLimpiar(db)

	req := httptest.NewRequest("POST", "/bitacora/limpiar", strings.NewReader(`{"dias":-3}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, esperado 400", resp.StatusCode)
	}
}

func TestLimpiarDefaultSinBody(t *testing.T) {
	db, mock := dbDePrueba(t)
	app := appLimpiar(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "bitacora" WHERE fecha_inicio < \$1`).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("POST", "/bitacora/limpiar", nil))
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
