package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/catalogos/dto"
	"gestordocumental_backend/internals/features/catalogos/model"
	helper "gestordocumental_backend/internals/helpers"
)

type PeriodosController struct {
	DB *gorm.DB
}

// GET /api/periodos?activo=true
func (h *PeriodosController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := h.DB.Model(&model.PeriodoModel{})
	if activo := c.Query("activo"); activo != "" {
		q = q.Where("activo = ?", activo == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo periodos", helper.ErrDetalle(err))
	}
	var items []model.PeriodoModel
	if err := q.Order("periodo ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo periodos", helper.ErrDetalle(err))
	}
	return helper.JsonList(c, "Periodos obtenidos", items, helper.BuildPagination(total, paging))
}

// GET /api/periodos/:id
func (h *PeriodosController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var item model.PeriodoModel
	if err := h.DB.First(&item, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Periodo no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo periodo", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "", item)
}

// POST /api/periodos
func (h *PeriodosController) Create(c *fiber.Ctx) error {
	var req dto.CreatePeriodoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existente model.PeriodoModel
	if err := h.DB.Where("periodo = ?", req.Periodo).First(&existente).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "El periodo ya existe")
	} else if !helper.IsNotFound(err) {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando periodo", helper.ErrDetalle(err))
	}

	item := req.ToModel()
	if err := h.DB.Create(item).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El periodo ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando periodo", helper.ErrDetalle(err))
	}
	return helper.JsonCreated(c, "Periodo creado", item)
}

// PUT /api/periodos/:id
func (h *PeriodosController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var item model.PeriodoModel
	if err := h.DB.First(&item, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Periodo no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando periodo", helper.ErrDetalle(err))
	}

	var req dto.UpdatePeriodoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyToModel(&item)

	if err := h.DB.Save(&item).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El periodo ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando periodo", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Periodo actualizado", item)
}

// DELETE /api/periodos/:id
func (h *PeriodosController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	asociados, err := documentosAsociados(h.DB, "periodos_id", id)
	if err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando periodo", helper.ErrDetalle(err))
	}
	if asociados > 0 {
		return helper.JsonError(c, fiber.StatusConflict, msgTieneDocumentos)
	}

	res := h.DB.Delete(&model.PeriodoModel{}, id)
	if res.Error != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando periodo", helper.ErrDetalle(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Periodo no encontrado")
	}
	return helper.JsonOK(c, "Periodo eliminado", nil)
}
