package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/usuarios/dto"
	"gestordocumental_backend/internals/features/usuarios/model"
	helper "gestordocumental_backend/internals/helpers"
)

type RolController struct {
	DB *gorm.DB
}

// GET /api/roles
func (h *RolController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := h.DB.Model(&model.RolModel{})
	if v := strings.TrimSpace(c.Query("activo")); v != "" {
		q = q.Where("activo = ?", v == "true" || v == "1")
	}
	if v := strings.TrimSpace(c.Query("tipo")); v != "" {
		q = q.Where("tipo = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener roles", helper.ErrDetalle(err))
	}

	var roles []model.RolModel
	if err := q.Order("fecha_creacion DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&roles).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener roles", helper.ErrDetalle(err))
	}
	return helper.JsonList(c, "Roles obtenidos exitosamente", roles, helper.BuildPagination(total, paging))
}

// GET /api/roles/:id
func (h *RolController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var rol model.RolModel
	if err := h.DB.First(&rol, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rol no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener rol", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "", rol)
}

// POST /api/roles
func (h *RolController) Create(c *fiber.Ctx) error {
	var req dto.CreateRolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existente model.RolModel
	if err := h.DB.Where("tipo = ?", req.Tipo).First(&existente).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "El tipo de rol ya existe")
	} else if !helper.IsNotFound(err) {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al crear rol", helper.ErrDetalle(err))
	}

	rol := req.ToModel()
	if err := h.DB.Create(rol).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El tipo de rol ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al crear rol", helper.ErrDetalle(err))
	}
	return helper.JsonCreated(c, "Rol creado exitosamente", rol)
}

// PUT /api/roles/:id
func (h *RolController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var rol model.RolModel
	if err := h.DB.First(&rol, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rol no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener rol", helper.ErrDetalle(err))
	}

	var req dto.UpdateRolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyToModel(&rol)

	if err := h.DB.Save(&rol).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El tipo de rol ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al actualizar rol", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Rol actualizado exitosamente", rol)
}

// DELETE /api/roles/:id — bloqueado si hay usuarios con el rol asignado
func (h *RolController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var rol model.RolModel
	if err := h.DB.First(&rol, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rol no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener rol", helper.ErrDetalle(err))
	}

	var usuarios int64
	if err := h.DB.Model(&model.UsuarioModel{}).Where("role_id = ?", id).Count(&usuarios).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al eliminar rol", helper.ErrDetalle(err))
	}
	if usuarios > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "No se puede eliminar: tiene usuarios asignados")
	}

	if err := h.DB.Delete(&rol).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al eliminar rol", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Rol eliminado exitosamente", nil)
}
