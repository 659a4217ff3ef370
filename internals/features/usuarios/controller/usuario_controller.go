package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/usuarios/dto"
	"gestordocumental_backend/internals/features/usuarios/model"
	helper "gestordocumental_backend/internals/helpers"
)

type UsuarioController struct {
	DB *gorm.DB
}

// GET /api/usuarios
func (h *UsuarioController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := h.DB.Model(&model.UsuarioModel{})
	if v := strings.TrimSpace(c.Query("activo")); v != "" {
		q = q.Where("activo = ?", v == "true" || v == "1")
	}
	if v := strings.TrimSpace(c.Query("departamento")); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			q = q.Where("departamentos_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener usuarios", helper.ErrDetalle(err))
	}

	var usuarios []model.UsuarioModel
	if err := q.Order("id ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&usuarios).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener usuarios", helper.ErrDetalle(err))
	}

	resumen := make([]model.UsuarioResumen, 0, len(usuarios))
	for i := range usuarios {
		resumen = append(resumen, usuarios[i].Resumen())
	}
	return helper.JsonList(c, "Usuarios obtenidos exitosamente", resumen, helper.BuildPagination(total, paging))
}

// GET /api/usuarios/:id
func (h *UsuarioController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var usuario model.UsuarioModel
	if err := h.DB.First(&usuario, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener usuario", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Usuario encontrado", usuario.Resumen())
}

// POST /api/usuarios
func (h *UsuarioController) Create(c *fiber.Ctx) error {
	var req dto.CreateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error procesando password")
	}

	usuario := req.ToModel()
	usuario.Password = string(hash)

	if err := h.DB.Create(usuario).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El email ya está registrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al crear usuario", helper.ErrDetalle(err))
	}

	log.Printf("[USUARIOS] creado id=%d email=%s", usuario.ID, usuario.Email)
	return helper.JsonCreated(c, "Usuario creado exitosamente", usuario.Resumen())
}

// PUT /api/usuarios/:id
func (h *UsuarioController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var usuario model.UsuarioModel
	if err := h.DB.First(&usuario, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener usuario", helper.ErrDetalle(err))
	}

	var req dto.UpdateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error procesando password")
		}
		v := string(hash)
		req.Password = &v
	}
	req.ApplyToModel(&usuario)

	if err := h.DB.Save(&usuario).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El email ya está registrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al actualizar usuario", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Usuario actualizado exitosamente", usuario.Resumen())
}

// DELETE /api/usuarios/:id
func (h *UsuarioController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var usuario model.UsuarioModel
	if err := h.DB.First(&usuario, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener usuario", helper.ErrDetalle(err))
	}

	if err := h.DB.Delete(&usuario).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al eliminar usuario", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Usuario eliminado exitosamente", nil)
}
