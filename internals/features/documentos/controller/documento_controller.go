package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bitacoraService "gestordocumental_backend/internals/features/bitacora/service"
	catService "gestordocumental_backend/internals/features/catalogos/service"
	"gestordocumental_backend/internals/features/documentos/dto"
	"gestordocumental_backend/internals/features/documentos/model"
	"gestordocumental_backend/internals/features/documentos/service"
	helper "gestordocumental_backend/internals/helpers"
	authmw "gestordocumental_backend/internals/middlewares/auth"
)

type DocumentoController struct {
	DB      *gorm.DB
	Almacen *service.Almacen
}

// documentoConDescarga agrega la URL pública de descarga cuando el
// archivo vive bajo uploads/.
type documentoConDescarga struct {
	model.DocumentoModel
	DownloadURL string `json:"download_url,omitempty"`
}

func (h *DocumentoController) conDescarga(c *fiber.Ctx, doc model.DocumentoModel) documentoConDescarga {
	out := documentoConDescarga{DocumentoModel: doc}
	if strings.HasPrefix(doc.Ruta, "uploads/") {
		out.DownloadURL = c.Protocol() + "://" + c.Hostname() + "/" + doc.Ruta
	}
	return out
}

// jsonServicio traduce los errores tipados de la capa de servicio.
func jsonServicio(c *fiber.Ctx, err error, fallback string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, fallback, helper.ErrDetalle(err))
}

// GET /api/documentos?usuario_id=&tipo_id=&mime=
func (h *DocumentoController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := h.DB.Model(&model.DocumentoModel{})
	if v := c.Query("usuario_id"); v != "" {
		q = q.Where("usuarios_id = ?", v)
	}
	if v := c.Query("tipo_id"); v != "" {
		q = q.Where("tipos_documentos_id = ?", v)
	}
	if v := c.Query("mime"); v != "" {
		q = q.Where("mime LIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo documentos", helper.ErrDetalle(err))
	}
	var docs []model.DocumentoModel
	if err := q.Order("fecha_subida DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&docs).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo documentos", helper.ErrDetalle(err))
	}

	items := make([]documentoConDescarga, 0, len(docs))
	for _, d := range docs {
		items = append(items, h.conDescarga(c, d))
	}
	return helper.JsonList(c, "Documentos obtenidos", items, helper.BuildPagination(total, paging))
}

// GET /api/documentos/:id
func (h *DocumentoController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var doc model.DocumentoModel
	if err := h.DB.First(&doc, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Documento no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error obteniendo documento", helper.ErrDetalle(err))
	}
	return helper.JsonOK(c, "", h.conDescarga(c, doc))
}

// POST /api/documentos — alta directa con metadatos JSON. Si la ruta
// apunta a uploads/ el archivo debe existir en disco.
func (h *DocumentoController) Create(c *fiber.Ctx) error {
	var req dto.CreateDocumentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if strings.HasPrefix(req.Ruta, "uploads/") {
		key := strings.TrimPrefix(req.Ruta, "uploads/")
		if !h.Almacen.Existe(key) {
			return helper.JsonError(c, fiber.StatusBadRequest, "El archivo referenciado no existe en el servidor")
		}
	}

	clas, err := service.ResolverClasificacion(h.DB, service.Referencias{
		TipoDocumento:       req.TipoDocumento.String(),
		Departamento:        req.Departamento.String(),
		Periodo:             req.Periodo.String(),
		CodigoClasificacion: req.CodigoClasificacion.String(),
		ValorDocumental:     req.ValorDocumental.String(),
		PlazoConservacion:   req.PlazoConservacion.String(),
		DestinoFinal:        req.DestinoFinal.String(),
		SoporteDocumental:   req.SoporteDocumental.String(),
	})
	if err != nil {
		return jsonServicio(c, err, "Error creando documento")
	}

	p, _ := authmw.GetPrincipal(c)
	numExp := req.NumExpediente
	if numExp == "" {
		numExp, err = service.GenerarExpediente(h.DB, time.Now())
		if err != nil {
			return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando documento", helper.ErrDetalle(err))
		}
	}
	nivel := req.NivelAcceso
	if nivel == "" {
		nivel = "publico"
	}
	vigencia := req.EstadoVigencia
	if vigencia == "" {
		vigencia = "VIGENTE"
	}
	procedencia := req.Procedencia
	if procedencia == "" {
		procedencia = "registro"
	}

	doc := model.DocumentoModel{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Mime:        req.Mime,
		Ruta:        req.Ruta,

		NivelAcceso:    nivel,
		NumExpediente:  numExp,
		Serie:          clas.Serie,
		Subserie:       clas.Subserie,
		Folio:          req.Folio,
		Procedencia:    procedencia,
		EstadoVigencia: vigencia,

		UsuariosID:            &p.UserID,
		TiposDocumentosID:     clas.TipoDocumentoID,
		DepartamentosID:       clas.DepartamentoID,
		PeriodosID:            clas.PeriodoID,
		CodigoClasificacionID: clas.CodigoClasificacionID,
		ValorDocumentalID:     clas.ValorDocumentalID,
		PlazoConservacionID:   clas.PlazoConservacionID,
		DestinoFinalID:        clas.DestinoFinalID,
		SoporteDocumentalID:   clas.SoporteDocumentalID,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&doc).Error; err != nil {
			return err
		}
		return bitacoraService.RegistrarTx(tx, bitacoraService.Entrada{
			UsuarioID:   &p.UserID,
			Rol:         p.RolDe(),
			Accion:      "creacion",
			IP:          c.IP(),
			Descripcion: fmt.Sprintf("Registró el documento '%s' (%s)", doc.Nombre, doc.NumExpediente),
		})
	})
	if err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error creando documento", helper.ErrDetalle(err))
	}
	return helper.JsonCreated(c, "Documento creado", h.conDescarga(c, doc))
}

// POST /api/documentos/upload — subida multipart con metadatos.
func (h *DocumentoController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se recibió ningún archivo")
	}

	var req dto.UploadDocumentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Metadatos inválidos")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	p, _ := authmw.GetPrincipal(c)
	doc, err := service.CrearDesdeSubida(h.DB, h.Almacen, fh, req, p.UserID, p.RolDe(), c.IP())
	if err != nil {
		return jsonServicio(c, err, "Error subiendo documento")
	}
	return helper.JsonCreated(c, "Documento subido", h.conDescarga(c, *doc))
}

// PUT /api/documentos/:id — actualización parcial de metadatos.
func (h *DocumentoController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var doc model.DocumentoModel
	if err := h.DB.First(&doc, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Documento no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando documento", helper.ErrDetalle(err))
	}

	var req dto.UpdateDocumentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Nombre != nil {
		doc.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		doc.Descripcion = *req.Descripcion
	}
	if req.NivelAcceso != nil {
		doc.NivelAcceso = strings.ToLower(*req.NivelAcceso)
	}
	if req.NumExpediente != nil {
		doc.NumExpediente = *req.NumExpediente
	}
	if req.Folio != nil {
		doc.Folio = *req.Folio
	}
	if req.EstadoVigencia != nil {
		doc.EstadoVigencia = strings.ToUpper(*req.EstadoVigencia)
	}

	if err := h.aplicarReferencias(&doc, &req); err != nil {
		return jsonServicio(c, err, "Error actualizando documento")
	}

	if err := h.DB.Save(&doc).Error; err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error actualizando documento", helper.ErrDetalle(err))
	}

	p, _ := authmw.GetPrincipal(c)
	bitacoraService.Registrar(h.DB, bitacoraService.Entrada{
		UsuarioID:   &p.UserID,
		Rol:         p.RolDe(),
		Accion:      "actualizacion",
		IP:          c.IP(),
		Descripcion: fmt.Sprintf("Actualizó el documento '%s' (id %d)", doc.Nombre, doc.ID),
	})
	return helper.JsonOK(c, "Documento actualizado", h.conDescarga(c, doc))
}

// aplicarReferencias resuelve sólo las referencias presentes en el
// request y las aplica al documento.
func (h *DocumentoController) aplicarReferencias(doc *model.DocumentoModel, req *dto.UpdateDocumentoRequest) error {
	resolver := func(t catService.Tabla, ref *dto.Ref) (*int, error) {
		id, err := catService.ResolverID(h.DB, t, ref.String())
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fiber.NewError(fiber.StatusNotFound,
					fmt.Sprintf("No existe %s con referencia '%s'", t.Nombre, ref.String()))
			}
			return nil, err
		}
		return &id, nil
	}

	if req.TipoDocumento != nil && !req.TipoDocumento.Vacia() {
		id, err := resolver(catService.TablaTipos, req.TipoDocumento)
		if err != nil {
			return err
		}
		doc.TiposDocumentosID = id
	}
	if req.Departamento != nil && !req.Departamento.Vacia() {
		id, err := resolver(catService.TablaDepartamentos, req.Departamento)
		if err != nil {
			return err
		}
		doc.DepartamentosID = id
	}
	if req.Periodo != nil && !req.Periodo.Vacia() {
		id, err := resolver(catService.TablaPeriodos, req.Periodo)
		if err != nil {
			return err
		}
		doc.PeriodosID = id
	}
	if req.CodigoClasificacion != nil && !req.CodigoClasificacion.Vacia() {
		id, err := resolver(catService.TablaCuadro, req.CodigoClasificacion)
		if err != nil {
			return err
		}
		doc.CodigoClasificacionID = id
		codigo, err := catService.CodigoDe(h.DB, catService.TablaCuadro, *id)
		if err != nil {
			return err
		}
		doc.Serie, doc.Subserie = service.SerieDeCodigo(codigo)
	}
	if req.ValorDocumental != nil && !req.ValorDocumental.Vacia() {
		id, err := resolver(catService.TablaValores, req.ValorDocumental)
		if err != nil {
			return err
		}
		doc.ValorDocumentalID = id
	}
	if req.PlazoConservacion != nil && !req.PlazoConservacion.Vacia() {
		id, err := resolver(catService.TablaPlazos, req.PlazoConservacion)
		if err != nil {
			return err
		}
		doc.PlazoConservacionID = id
	}
	if req.DestinoFinal != nil && !req.DestinoFinal.Vacia() {
		id, err := resolver(catService.TablaDestinos, req.DestinoFinal)
		if err != nil {
			return err
		}
		doc.DestinoFinalID = id
	}
	if req.SoporteDocumental != nil && !req.SoporteDocumental.Vacia() {
		id, err := resolver(catService.TablaSoportes, req.SoporteDocumental)
		if err != nil {
			return err
		}
		doc.SoporteDocumentalID = id
	}
	return nil
}

// DELETE /api/documentos/:id — elimina el registro, sus favoritos y el
// archivo físico si vive bajo uploads/.
func (h *DocumentoController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var doc model.DocumentoModel
	if err := h.DB.First(&doc, id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Documento no encontrado")
		}
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando documento", helper.ErrDetalle(err))
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM favoritos WHERE documento_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.DocumentoModel{}, id).Error
	})
	if err != nil {
		return helper.JsonErrorDetalle(c, fiber.StatusInternalServerError, "Error eliminando documento", helper.ErrDetalle(err))
	}

	if strings.HasPrefix(doc.Ruta, "uploads/") {
		if err := h.Almacen.Eliminar(doc.FileKey); err != nil {
			// El registro ya se eliminó; el archivo huérfano sólo se reporta.
			log.Printf("[DOCUMENTOS] no se pudo eliminar el archivo %s: %v", doc.FileKey, err)
		}
	}

	p, _ := authmw.GetPrincipal(c)
	bitacoraService.Registrar(h.DB, bitacoraService.Entrada{
		UsuarioID:   &p.UserID,
		Rol:         p.RolDe(),
		Accion:      "eliminacion",
		IP:          c.IP(),
		Descripcion: fmt.Sprintf("Eliminó el documento '%s' (id %d)", doc.Nombre, doc.ID),
	})
	return helper.JsonOK(c, "Documento eliminado", nil)
}
