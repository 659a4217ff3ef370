package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/bitacora/model"
	"gestordocumental_backend/internals/features/bitacora/service"
	helper "gestordocumental_backend/internals/helpers"
)

type BitacoraController struct {
	DB *gorm.DB
}

func parseFecha(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// filtros conjuntivos compartidos entre List y Estadisticas
func (h *BitacoraController) filtrar(c *fiber.Ctx) *gorm.DB {
	q := h.DB.Model(&model.BitacoraModel{})
	if v := strings.TrimSpace(c.Query("usuario_id")); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			q = q.Where("usuario_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("rol")); v != "" {
		q = q.Where("rol LIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(c.Query("accion")); v != "" {
		q = q.Where("accion LIKE ?", "%"+v+"%")
	}
	if t := parseFecha(c.Query("fecha_desde")); t != nil {
		q = q.Where("fecha_inicio >= ?", *t)
	}
	if t := parseFecha(c.Query("fecha_hasta")); t != nil {
		q = q.Where("fecha_inicio <= ?", *t)
	}
	return q
}

// GET /api/bitacora
func (h *BitacoraController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	q := h.filtrar(c)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener registros de bitácora", helper.ErrDetalle(err))
	}

	var registros []model.BitacoraModel
	if err := q.Order("fecha_inicio DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&registros).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener registros de bitácora", helper.ErrDetalle(err))
	}
	return helper.JsonList(c, "Registros obtenidos exitosamente", registros, helper.BuildPagination(total, paging))
}

// GET /api/bitacora/:id
func (h *BitacoraController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var registro model.BitacoraModel
	if err := h.DB.First(&registro, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registro de bitácora no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener registro de bitácora", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "", registro)
}

// POST /api/bitacora
func (h *BitacoraController) Create(c *fiber.Ctx) error {
	var req struct {
		UsuarioID   *int   `json:"usuario_id"`
		Rol         string `json:"rol"`
		Accion      string `json:"accion"`
		IP          string `json:"ip"`
		Descripcion string `json:"descripcion"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if strings.TrimSpace(req.Accion) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "La acción es requerida")
	}
	if req.IP == "" {
		req.IP = c.IP()
	}

	registro := model.BitacoraModel{
		UsuarioID:   req.UsuarioID,
		Rol:         req.Rol,
		Accion:      req.Accion,
		IP:          req.IP,
		Descripcion: req.Descripcion,
	}
	if err := h.DB.Create(&registro).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al crear registro de bitácora", helper.ErrDetalle(err))
	}
	return helper.JsonCreated(c, "Registro de bitácora creado exitosamente", registro)
}

// PUT /api/bitacora/:id
func (h *BitacoraController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var registro model.BitacoraModel
	if err := h.DB.First(&registro, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registro de bitácora no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener registro de bitácora", helper.ErrDetalle(err))
	}

	var req struct {
		UsuarioID   *int    `json:"usuario_id"`
		Rol         *string `json:"rol"`
		Accion      *string `json:"accion"`
		IP          *string `json:"ip"`
		Descripcion *string `json:"descripcion"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if req.UsuarioID != nil {
		registro.UsuarioID = req.UsuarioID
	}
	if req.Rol != nil {
		registro.Rol = *req.Rol
	}
	if req.Accion != nil && *req.Accion != "" {
		registro.Accion = *req.Accion
	}
	if req.IP != nil {
		registro.IP = *req.IP
	}
	if req.Descripcion != nil {
		registro.Descripcion = *req.Descripcion
	}

	if err := h.DB.Save(&registro).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al actualizar registro de bitácora", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Registro de bitácora actualizado exitosamente", registro)
}

// DELETE /api/bitacora/:id
func (h *BitacoraController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var registro model.BitacoraModel
	if err := h.DB.First(&registro, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registro de bitácora no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener registro de bitácora", helper.ErrDetalle(err))
	}
	if err := h.DB.Delete(&registro).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al eliminar registro de bitácora", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Registro de bitácora eliminado exitosamente", nil)
}

// GET /api/bitacora/usuario/:usuario_id
func (h *BitacoraController) PorUsuario(c *fiber.Ctx) error {
	usuarioID, err := c.ParamsInt("usuario_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "usuario_id inválido")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.BitacoraModel{}).Where("usuario_id = ?", usuarioID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener bitácora del usuario", helper.ErrDetalle(err))
	}

	var registros []model.BitacoraModel
	if err := q.Order("fecha_inicio DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&registros).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener bitácora del usuario", helper.ErrDetalle(err))
	}
	return helper.JsonList(c, "Bitácora del usuario obtenida exitosamente", registros, helper.BuildPagination(total, paging))
}

// GET /api/bitacora/meta/estadisticas
func (h *BitacoraController) EstadisticasMeta(c *fiber.Ctx) error {
	est, err := service.CalcularEstadisticas(h.DB, parseFecha(c.Query("fecha_desde")), parseFecha(c.Query("fecha_hasta")))
	if err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al obtener estadísticas", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Estadísticas obtenidas exitosamente", est)
}

// POST /api/bitacora/limpiar
func (h *BitacoraController) Limpiar(c *fiber.Ctx) error {
	var req struct {
		Dias *int `json:"dias"`
	}
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	// El default de 90 días aplica sólo cuando el campo no viene; un
	// cero explícito es un argumento inválido y Purgar lo rechaza.
	dias := 90
	if req.Dias != nil {
		dias = *req.Dias
	}

	eliminados, limite, err := service.Purgar(h.DB, dias)
	if err != nil {
		if eliminados == 0 && limite.IsZero() {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error al limpiar bitácora", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "Bitácora limpiada exitosamente", fiber.Map{
		"registrosEliminados": eliminados,
		"fechaLimite":         limite,
	})
}
