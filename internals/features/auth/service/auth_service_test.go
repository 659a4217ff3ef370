package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/configs"
	uModel "gestordocumental_backend/internals/features/usuarios/model"
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

func filaUsuario(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return sqlmock.NewRows([]string{"id", "email", "password", "activo"}).
		AddRow(1, "ana@gestor.local", string(hash), true)
}

func TestAutenticar(t *testing.T) {
	db, mock := dbDePrueba(t)
	mock.ExpectQuery(`SELECT \* FROM "usuarios" WHERE email = \$1`).
		WithArgs("ana@gestor.local", 1).
		WillReturnRows(filaUsuario(t, "secreta123"))

	usuario, err := Autenticar(db, "  ANA@Gestor.Local ", "secreta123")
	if err != nil {
		t.Fatal(err)
	}
	if usuario.ID != 1 {
		t.Errorf("id = %d, esperado 1", usuario.ID)
	}
}

func TestAutenticarPasswordIncorrecto(t *testing.T) {
	db, mock := dbDePrueba(t)
	mock.ExpectQuery(`SELECT \* FROM "usuarios" WHERE email = \$1`).
		WillReturnRows(filaUsuario(t, "secreta123"))

	_, err := Autenticar(db, "ana@gestor.local", "otra")
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("esperaba 401, got %v", err)
	}
	if fe.Message != "Credenciales inválidas" {
		t.Errorf("message = %q", fe.Message)
	}
}

func TestAutenticarEmailInexistente(t *testing.T) {
	db, mock := dbDePrueba(t)
	mock.ExpectQuery(`SELECT \* FROM "usuarios" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := Autenticar(db, "nadie@gestor.local", "x")
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("esperaba 401, got %v", err)
	}
	// Mismo mensaje que password incorrecto: no revela si el email existe.
	if fe.Message != "Credenciales inválidas" {
		t.Errorf("message = %q", fe.Message)
	}
}

func TestAutenticarCamposVacios(t *testing.T) {
	_, err := Autenticar(nil, "", "")
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("esperaba 400, got %v", err)
	}
}

func TestFirmarToken(t *testing.T) {
	configs.JWTSecret = "secreto-de-prueba"
	configs.JWTExpires = 8 * time.Hour
	t.Cleanup(func() { configs.JWTSecret = "" })

	usuario := &uModel.UsuarioModel{ID: 7, Email: "ana@gestor.local"}
	firmado, err := FirmarToken(usuario)
	if err != nil {
		t.Fatal(err)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(firmado, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token inválido: %v", err)
	}
	if id, _ := claims["id"].(float64); int(id) != 7 {
		t.Errorf("claim id = %v, esperado 7", claims["id"])
	}
	if email, _ := claims["email"].(string); email != "ana@gestor.local" {
		t.Errorf("claim email = %v", claims["email"])
	}

	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)
	if vida := time.Duration(exp-iat) * time.Second; vida != 8*time.Hour {
		t.Errorf("vida del token = %s, esperado 8h", vida)
	}
}

func TestFirmarTokenSinSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, err := FirmarToken(&uModel.UsuarioModel{ID: 1})
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusInternalServerError {
		t.Fatalf("esperaba 500, got %v", err)
	}
}
