package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	docModel "gestordocumental_backend/internals/features/documentos/model"
	"gestordocumental_backend/internals/features/favoritos/model"
	usuarioModel "gestordocumental_backend/internals/features/usuarios/model"
	helper "gestordocumental_backend/internals/helpers"
	authmw "gestordocumental_backend/internals/middlewares/auth"
)

type FavoritoController struct {
	DB *gorm.DB
}

type createFavoritoRequest struct {
	DocumentoID int  `json:"documento_id" validate:"required,gt=0"`
	UsuarioID   *int `json:"usuario_id,omitempty" validate:"omitempty,gt=0"`
}

// GET /api/favoritos?usuario_id=
func (h *FavoritoController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := h.DB.Model(&model.FavoritoModel{})
	if v := c.Query("usuario_id"); v != "" {
		q = q.Where("usuario_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo favoritos", helper.ErrDetalle(err))
	}
	var items []model.FavoritoModel
	if err := q.Order("fecha DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo favoritos", helper.ErrDetalle(err))
	}
	return helper.JsonList(c, "Favoritos obtenidos", items, helper.BuildPagination(total, paging))
}

// GET /api/favoritos/usuario/:usuario_id — documentos favoritos del
// usuario, con el documento embebido.
func (h *FavoritoController) PorUsuario(c *fiber.Ctx) error {
	usuarioID, err := c.ParamsInt("usuario_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "usuario_id inválido")
	}

	var docs []docModel.DocumentoModel
	err = h.DB.
		Joins("JOIN favoritos ON favoritos.documento_id = documentos.id").
		Where("favoritos.usuario_id = ?", usuarioID).
		Order("favoritos.fecha DESC").
		Find(&docs).Error
	if err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo favoritos", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Favoritos del usuario obtenidos", docs)
}

// GET /api/favoritos/check/:documento_id/:usuario_id? — indica si el
// usuario marcó el documento; sin usuario_id se usa el autenticado.
func (h *FavoritoController) Check(c *fiber.Ctx) error {
	documentoID, err := c.ParamsInt("documento_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "documento_id inválido")
	}

	usuarioID, err := c.ParamsInt("usuario_id")
	if err != nil || usuarioID <= 0 {
		p, ok := authmw.GetPrincipal(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "No autenticado")
		}
		usuarioID = p.UserID
	}

	var total int64
	if err := h.DB.Model(&model.FavoritoModel{}).
		Where("usuario_id = ? AND documento_id = ?", usuarioID, documentoID).
		Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error consultando favorito", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "", fiber.Map{"es_favorito": total > 0})
}

// POST /api/favoritos — marca un documento como favorito. Si no se
// indica usuario_id se usa el usuario autenticado.
func (h *FavoritoController) Create(c *fiber.Ctx) error {
	var req createFavoritoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	usuarioID := 0
	if req.UsuarioID != nil {
		usuarioID = *req.UsuarioID
	} else if p, ok := authmw.GetPrincipal(c); ok {
		usuarioID = p.UserID
	}
	if usuarioID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "usuario_id requerido")
	}

	var doc docModel.DocumentoModel
	if err := h.DB.First(&doc, req.DocumentoID).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Documento no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando favorito", helper.ErrDetalle(err))
	}
	var usuario usuarioModel.UsuarioModel
	if err := h.DB.First(&usuario, usuarioID).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando favorito", helper.ErrDetalle(err))
	}

	fav := model.FavoritoModel{UsuarioID: usuarioID, DocumentoID: req.DocumentoID}
	if err := h.DB.Create(&fav).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Este documento ya está en favoritos")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando favorito", helper.ErrDetalle(err))
	}
	return helper.JsonCreated(c, "Favorito agregado", fav)
}

// DELETE /api/favoritos/:id
func (h *FavoritoController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	res := h.DB.Delete(&model.FavoritoModel{}, id)
	if res.Error != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando favorito", helper.ErrDetalle(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Favorito no encontrado")
	}
	return helper.JsonOK(c, "Favorito eliminado", nil)
}

// DELETE /api/favoritos/documento/:documento_id — quita el favorito
// del usuario autenticado sobre un documento.
func (h *FavoritoController) DeletePorDocumento(c *fiber.Ctx) error {
	documentoID, err := c.ParamsInt("documento_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "documento_id inválido")
	}
	p, ok := authmw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No autenticado")
	}

	res := h.DB.Where("usuario_id = ? AND documento_id = ?", p.UserID, documentoID).
		Delete(&model.FavoritoModel{})
	if res.Error != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando favorito", helper.ErrDetalle(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Favorito no encontrado")
	}
	return helper.JsonOK(c, "Favorito eliminado", nil)
}
