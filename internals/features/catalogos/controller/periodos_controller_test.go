package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

// El listado de periodos sale en orden natural ascendente.
func TestPeriodosListOrdenAscendente(t *testing.T) {
	db, mock := dbDePrueba(t)
	app := fiber.New()
	ctrl := &PeriodosController{DB: db}
	app.Get("/periodos", ctrl.List)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "periodos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "periodos" ORDER BY periodo ASC LIMIT \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "periodo", "activo"}).
			AddRow(3, "2024", true).
			AddRow(1, "2025", true).
			AddRow(2, "2026", true))

	resp, err := app.Test(httptest.NewRequest("GET", "/periodos", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, esperado 200", resp.StatusCode)
	}

	s := leerSobre(t, resp.Body)
	var items []struct {
		Periodo string `json:"periodo"`
	}
	if err := json.Unmarshal(s.Data, &items); err != nil {
		t.Fatal(err)
	}
	quiere := []string{"2024", "2025", "2026"}
	if len(items) != len(quiere) {
		t.Fatalf("items = %d, esperado %d", len(items), len(quiere))
	}
	for i, w := range quiere {
		if items[i].Periodo != w {
			t.Errorf("items[%d].periodo = %q, esperado %q", i, items[i].Periodo, w)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
