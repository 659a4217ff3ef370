package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestPurgarDiasInvalidos(t *testing.T) {
	for _, dias := range []int{0, -5} {
		if _, _, err := Purgar(nil, dias); err == nil {
			t.Errorf("Purgar(%d): esperaba error", dias)
		}
	}
}

func TestPurgar(t *testing.T) {
	db, mock := dbDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "bitacora" WHERE fecha_inicio < \$1`).
		WillReturnResult(sqlmock.NewResult(0, 42))
	mock.ExpectCommit()

	eliminados, limite, err := Purgar(db, 90)
	if err != nil {
		t.Fatal(err)
	}
	if eliminados != 42 {
		t.Errorf("eliminados = %d, esperado 42", eliminados)
	}
	if limite.IsZero() {
		t.Error("la fecha límite no debería ser cero")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRegistrarTxAccionVacia(t *testing.T) {
	if err := RegistrarTx(nil, Entrada{}); err == nil {
		t.Error("esperaba error con acción vacía")
	}
}

func TestRegistrarNoPropagaFallo(t *testing.T) {
	db, mock := dbDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bitacora"`).
		WillReturnError(gorm.ErrInvalidDB)
	mock.ExpectRollback()

	usuarioID := 1
	// No debe entrar en pánico ni devolver nada: best-effort.
	Registrar(db, Entrada{UsuarioID: &usuarioID, Accion: "login", IP: "127.0.0.1"})
}
