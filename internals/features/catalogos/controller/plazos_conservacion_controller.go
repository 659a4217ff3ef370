package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/catalogos/dto"
	"gestordocumental_backend/internals/features/catalogos/model"
	helper "gestordocumental_backend/internals/helpers"
)

type PlazosConservacionController struct {
	DB *gorm.DB
}

// GET /api/plazos-conservacion
func (h *PlazosConservacionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := h.DB.Model(&model.PlazoConservacionModel{}).Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo plazos de conservación", helper.ErrDetalle(err))
	}
	var items []model.PlazoConservacionModel
	if err := h.DB.Order("clave ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo plazos de conservación", helper.ErrDetalle(err))
	}
	return helper.JsonList(c, "Plazos de conservación obtenidos", items, helper.BuildPagination(total, paging))
}

// GET /api/plazos-conservacion/:id
func (h *PlazosConservacionController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var item model.PlazoConservacionModel
	if err := h.DB.First(&item, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "No encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo registro", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "", item)
}

// POST /api/plazos-conservacion
func (h *PlazosConservacionController) Create(c *fiber.Ctx) error {
	var req dto.CreateClaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existente model.PlazoConservacionModel
	if err := h.DB.Where("clave = ?", req.Clave).First(&existente).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "clave ya existe")
	} else if !helper.IsNotFound(err) {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando registro", helper.ErrDetalle(err))
	}

	item := model.PlazoConservacionModel{Clave: req.Clave, Descripcion: req.Descripcion}
	if err := h.DB.Create(&item).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "clave ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando registro", helper.ErrDetalle(err))
	}
	return helper.JsonCreated(c, "Creado", item)
}

// PUT /api/plazos-conservacion/:id
func (h *PlazosConservacionController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var item model.PlazoConservacionModel
	if err := h.DB.First(&item, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "No encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando", helper.ErrDetalle(err))
	}

	var req dto.UpdateClaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Clave != nil {
		item.Clave = *req.Clave
	}
	if req.Descripcion != nil {
		item.Descripcion = *req.Descripcion
	}

	if err := h.DB.Save(&item).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "clave ya existe")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Actualizado", item)
}

// DELETE /api/plazos-conservacion/:id
func (h *PlazosConservacionController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	asociados, err := documentosAsociados(h.DB, "plazo_conservacion_id", id)
	if err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando", helper.ErrDetalle(err))
	}
	if asociados > 0 {
		return helper.JsonError(c, fiber.StatusConflict, msgTieneDocumentos)
	}

	res := h.DB.Delete(&model.PlazoConservacionModel{}, id)
	if res.Error != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando", helper.ErrDetalle(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No encontrado")
	}
	return helper.JsonOK(c, "Eliminado", nil)
}
