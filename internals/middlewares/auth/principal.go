package auth

import (
	"github.com/gofiber/fiber/v2"
)

// Principal es la identidad autenticada adjunta a la petición tras
// verificar el token. Rol es nil hasta que LoadRole lo resuelve (un
// usuario tiene a lo más un rol).
type Principal struct {
	UserID int     `json:"user_id"`
	Email  string  `json:"email"`
	Rol    *string `json:"rol,omitempty"`
}

const localPrincipal = "principal"

func SetPrincipal(c *fiber.Ctx, p Principal) {
	c.Locals(localPrincipal, p)
}

// GetPrincipal devuelve el principal de la petición; ok=false si la
// petición es anónima (sin middleware de auth o token ausente).
func GetPrincipal(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(localPrincipal).(Principal)
	return p, ok
}

// RolDe devuelve la etiqueta de rol o "" si no hay rol resuelto.
func (p Principal) RolDe() string {
	if p.Rol == nil {
		return ""
	}
	return *p.Rol
}
