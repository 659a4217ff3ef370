package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/catalogos/dto"
	"gestordocumental_backend/internals/features/catalogos/model"
	helper "gestordocumental_backend/internals/helpers"
)

type CuadroClasificacionController struct {
	DB *gorm.DB
}

// GET /api/cuadro-clasificacion
func (h *CuadroClasificacionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := h.DB.Model(&model.CuadroClasificacionModel{}).Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo cuadro de clasificación", helper.ErrDetalle(err))
	}

	var items []model.CuadroClasificacionModel
	if err := h.DB.Order("codigo ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo cuadro de clasificación", helper.ErrDetalle(err))
	}
	return helper.JsonList(c, "Cuadro de clasificación obtenido", items, helper.BuildPagination(total, paging))
}

// GET /api/cuadro-clasificacion/:id
func (h *CuadroClasificacionController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var item model.CuadroClasificacionModel
	if err := h.DB.First(&item, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "No encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo registro", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "", item)
}

// POST /api/cuadro-clasificacion
func (h *CuadroClasificacionController) Create(c *fiber.Ctx) error {
	var req dto.CreateCuadroRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existente model.CuadroClasificacionModel
	if err := h.DB.Where("codigo = ?", req.Codigo).First(&existente).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "codigo ya existe")
	} else if !helper.IsNotFound(err) {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando registro", helper.ErrDetalle(err))
	}

	item := req.ToModel()
	if err := h.DB.Create(item).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "codigo ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando registro", helper.ErrDetalle(err))
	}
	return helper.JsonCreated(c, "Creado", item)
}

// PUT /api/cuadro-clasificacion/:id
func (h *CuadroClasificacionController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var item model.CuadroClasificacionModel
	if err := h.DB.First(&item, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "No encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando", helper.ErrDetalle(err))
	}

	var req dto.UpdateCuadroRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyToModel(&item)

	if err := h.DB.Save(&item).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "codigo ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Actualizado", item)
}

// DELETE /api/cuadro-clasificacion/:id
func (h *CuadroClasificacionController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	asociados, err := documentosAsociados(h.DB, "codigo_clasificacion_id", id)
	if err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando", helper.ErrDetalle(err))
	}
	if asociados > 0 {
		return helper.JsonError(c, fiber.StatusConflict, msgTieneDocumentos)
	}

	res := h.DB.Delete(&model.CuadroClasificacionModel{}, id)
	if res.Error != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando", helper.ErrDetalle(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No encontrado")
	}
	return helper.JsonOK(c, "Eliminado", nil)
}
