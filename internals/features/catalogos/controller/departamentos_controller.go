package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/catalogos/dto"
	"gestordocumental_backend/internals/features/catalogos/model"
	helper "gestordocumental_backend/internals/helpers"
)

type DepartamentosController struct {
	DB *gorm.DB
}

// GET /api/departamentos?activo=true
func (h *DepartamentosController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := h.DB.Model(&model.DepartamentoModel{})
	if activo := c.Query("activo"); activo != "" {
		q = q.Where("activo = ?", activo == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo departamentos", helper.ErrDetalle(err))
	}
	var items []model.DepartamentoModel
	if err := q.Order("nombre ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo departamentos", helper.ErrDetalle(err))
	}
	return helper.JsonList(c, "Departamentos obtenidos", items, helper.BuildPagination(total, paging))
}

// GET /api/departamentos/:id
func (h *DepartamentosController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var item model.DepartamentoModel
	if err := h.DB.First(&item, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Departamento no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo departamento", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "", item)
}

// POST /api/departamentos
func (h *DepartamentosController) Create(c *fiber.Ctx) error {
	var req dto.CreateDepartamentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existente model.DepartamentoModel
	if err := h.DB.Where("nombre = ?", req.Nombre).First(&existente).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "El departamento ya existe")
	} else if !helper.IsNotFound(err) {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando departamento", helper.ErrDetalle(err))
	}

	item := req.ToModel()
	if err := h.DB.Create(item).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El departamento ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando departamento", helper.ErrDetalle(err))
	}
	return helper.JsonCreated(c, "Departamento creado", item)
}

// PUT /api/departamentos/:id
func (h *DepartamentosController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var item model.DepartamentoModel
	if err := h.DB.First(&item, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Departamento no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando departamento", helper.ErrDetalle(err))
	}

	var req dto.UpdateDepartamentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyToModel(&item)

	if err := h.DB.Save(&item).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El departamento ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando departamento", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Departamento actualizado", item)
}

// DELETE /api/departamentos/:id
func (h *DepartamentosController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	asociados, err := documentosAsociados(h.DB, "departamentos_id", id)
	if err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando departamento", helper.ErrDetalle(err))
	}
	if asociados > 0 {
		return helper.JsonError(c, fiber.StatusConflict, msgTieneDocumentos)
	}

	// Los usuarios también cuelgan del departamento.
	var usuarios int64
	if err := h.DB.Table("usuarios").Where("departamentos_id = ?", id).Count(&usuarios).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando departamento", helper.ErrDetalle(err))
	}
	if usuarios > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "No se puede eliminar: tiene usuarios asignados")
	}

	res := h.DB.Delete(&model.DepartamentoModel{}, id)
	if res.Error != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando departamento", helper.ErrDetalle(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Departamento no encontrado")
	}
	return helper.JsonOK(c, "Departamento eliminado", nil)
}
