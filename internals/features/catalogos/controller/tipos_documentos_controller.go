package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/catalogos/dto"
	"gestordocumental_backend/internals/features/catalogos/model"
	helper "gestordocumental_backend/internals/helpers"
)

type TiposDocumentosController struct {
	DB *gorm.DB
}

// GET /api/tipos-documentos?activo=true
func (h *TiposDocumentosController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := h.DB.Model(&model.TipoDocumentoModel{})
	if activo := c.Query("activo"); activo != "" {
		q = q.Where("activo = ?", activo == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo tipos de documento", helper.ErrDetalle(err))
	}
	var items []model.TipoDocumentoModel
	if err := q.Order("tipo ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo tipos de documento", helper.ErrDetalle(err))
	}
	return helper.JsonList(c, "Tipos de documento obtenidos", items, helper.BuildPagination(total, paging))
}

// GET /api/tipos-documentos/:id
func (h *TiposDocumentosController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var item model.TipoDocumentoModel
	if err := h.DB.First(&item, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tipo de documento no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo tipo de documento", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "", item)
}

// POST /api/tipos-documentos
func (h *TiposDocumentosController) Create(c *fiber.Ctx) error {
	var req dto.CreateTipoDocumentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existente model.TipoDocumentoModel
	if err := h.DB.Where("tipo = ?", req.Tipo).First(&existente).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "El tipo de documento ya existe")
	} else if !helper.IsNotFound(err) {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando tipo de documento", helper.ErrDetalle(err))
	}

	item := req.ToModel()
	if err := h.DB.Create(item).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El tipo de documento ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando tipo de documento", helper.ErrDetalle(err))
	}
	return helper.JsonCreated(c, "Tipo de documento creado", item)
}

// PUT /api/tipos-documentos/:id
func (h *TiposDocumentosController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var item model.TipoDocumentoModel
	if err := h.DB.First(&item, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tipo de documento no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando tipo de documento", helper.ErrDetalle(err))
	}

	var req dto.UpdateTipoDocumentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyToModel(&item)

	if err := h.DB.Save(&item).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El tipo de documento ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando tipo de documento", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Tipo de documento actualizado", item)
}

// DELETE /api/tipos-documentos/:id
func (h *TiposDocumentosController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	asociados, err := documentosAsociados(h.DB, "tipos_documentos_id", id)
	if err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando tipo de documento", helper.ErrDetalle(err))
	}
	if asociados > 0 {
		return helper.JsonError(c, fiber.StatusConflict, msgTieneDocumentos)
	}

	res := h.DB.Delete(&model.TipoDocumentoModel{}, id)
	if res.Error != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando tipo de documento", helper.ErrDetalle(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tipo de documento no encontrado")
	}
	return helper.JsonOK(c, "Tipo de documento eliminado", nil)
}
