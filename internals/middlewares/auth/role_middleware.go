package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "gestordocumental_backend/internals/helpers"
)

// LoadRole resuelve el rol del usuario (role_id → roles.tipo) y lo
// adjunta al principal. El fallo de lookup no es fatal: se loguea y el
// principal queda sin rol.
func LoadRole(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := GetPrincipal(c)
		if !ok || p.Rol != nil {
			return c.Next()
		}

		var tipo string
		err := db.Table("usuarios").
			Select("roles.tipo").
			Joins("JOIN roles ON roles.id = usuarios.role_id").
			Where("usuarios.id = ?", p.UserID).
			Scan(&tipo).Error
		if err != nil {
			log.Printf("[AUTH] error cargando rol de usuario %d: %v", p.UserID, err)
			return c.Next()
		}
		if tipo != "" {
			p.Rol = &tipo
			SetPrincipal(c, p)
		}
		return c.Next()
	}
}

// OnlyRoles deja pasar sólo a principals con alguno de los roles listados.
func OnlyRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := GetPrincipal(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "No autenticado")
		}
		for _, r := range roles {
			if p.RolDe() == r {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Permiso denegado")
	}
}

// RequireRole es el atajo para un solo rol.
func RequireRole(role string) fiber.Handler {
	return OnlyRoles(role)
}
