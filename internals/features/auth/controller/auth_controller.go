package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/auth/service"
	bitacoraService "gestordocumental_backend/internals/features/bitacora/service"
	uModel "gestordocumental_backend/internals/features/usuarios/model"
	helper "gestordocumental_backend/internals/helpers"
	authmw "gestordocumental_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// POST /api/auth/login — acepta JSON y formularios
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}

	usuario, err := service.Autenticar(h.DB, req.Email, req.Password)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error en login")
	}

	token, err := service.FirmarToken(usuario)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error en login")
	}

	// registrar login en bitácora sin bloquear la respuesta
	bitacoraService.Registrar(h.DB, bitacoraService.Entrada{
		UsuarioID:   &usuario.ID,
		Accion:      "login",
		IP:          c.IP(),
		Descripcion: fmt.Sprintf("Login de %s", usuario.Email),
	})

	log.Printf("[AUTH] login usuario=%d email=%s", usuario.ID, usuario.Email)
	return helper.JsonOK(c, "Autenticación exitosa", fiber.Map{
		"token": token,
		"user":  usuario.Resumen(),
	})
}

// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	p, ok := authmw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No autenticado")
	}

	var usuario uModel.UsuarioModel
	if err := h.DB.First(&usuario, p.UserID).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo usuario", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "", usuario.Resumen())
}
