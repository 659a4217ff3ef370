package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"gestordocumental_backend/internals/configs"
	helper "gestordocumental_backend/internals/helpers"
)

// AuthMiddleware verifica el bearer token y adjunta el Principal.
// El header debe ser exactamente "Bearer <token>".
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get("Authorization"))
		if authHeader == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authorization header missing")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "El formato debe ser: Bearer <token>")
		}
		tokenString := parts[1]

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[AUTH] ❌ JWT_SECRET no configurado")
			return helper.JsonError(c, fiber.StatusInternalServerError, "JWT_SECRET no configurado en el servidor")
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token inválido o expirado")
		}

		id, ok := claims["id"].(float64)
		if !ok || id <= 0 {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token válido pero sin user id")
		}
		email, _ := claims["email"].(string)

		SetPrincipal(c, Principal{UserID: int(id), Email: email})
		return c.Next()
	}
}
