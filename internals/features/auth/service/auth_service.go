package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/configs"
	uModel "gestordocumental_backend/internals/features/usuarios/model"
	helper "gestordocumental_backend/internals/helpers"
)

// Autenticar busca el usuario por email (en minúsculas) y compara el
// hash bcrypt. Credenciales inválidas devuelven siempre el mismo 401
// para no revelar si el email existe.
func Autenticar(db *gorm.DB, email, password string) (*uModel.UsuarioModel, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Email y password son requeridos")
	}

	var usuario uModel.UsuarioModel
	if err := db.Where("email = ?", email).First(&usuario).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error en login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Credenciales inválidas")
	}
	return &usuario, nil
}

// FirmarToken emite el JWT de acceso (HS256) con id y email del usuario.
func FirmarToken(usuario *uModel.UsuarioModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Server misconfigured: JWT_SECRET not set")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":    usuario.ID,
		"email": usuario.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(configs.JWTExpires).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	firmado, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Error firmando token")
	}
	return firmado, nil
}
