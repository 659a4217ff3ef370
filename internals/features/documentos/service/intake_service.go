package service

import (
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bitacoraService "gestordocumental_backend/internals/features/bitacora/service"
	catService "gestordocumental_backend/internals/features/catalogos/service"
	"gestordocumental_backend/internals/features/documentos/dto"
	"gestordocumental_backend/internals/features/documentos/model"
)

/* =======================================================
   Validación de archivo
   ======================================================= */

// MaxTamanoArchivo limita las subidas a 50 MB.
const MaxTamanoArchivo = 50 << 20

// Sólo se aceptan documentos de oficina en revisión final.
var mimePermitidos = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

func ValidarArchivo(fh *multipart.FileHeader) error {
	if fh == nil {
		return fiber.NewError(fiber.StatusBadRequest, "No se recibió ningún archivo")
	}
	if fh.Size > MaxTamanoArchivo {
		return fiber.NewError(fiber.StatusBadRequest, "El archivo excede el tamaño máximo de 50MB")
	}
	mime := fh.Header.Get("Content-Type")
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	mime = strings.TrimSpace(mime)
	if !mimePermitidos[mime] {
		return fiber.NewError(fiber.StatusBadRequest, "Tipo de archivo no permitido: sólo PDF, Word o Excel")
	}
	return nil
}

/* =======================================================
   Resolución de referencias a catálogos
   ======================================================= */

// Referencias agrupa las referencias crudas (id numérico o clave
// natural) tal como llegan en el request.
type Referencias struct {
	TipoDocumento       string
	Departamento        string
	Periodo             string
	CodigoClasificacion string
	ValorDocumental     string
	PlazoConservacion   string
	DestinoFinal        string
	SoporteDocumental   string
}

// Clasificacion es el resultado resuelto: ids listos para el modelo
// más serie/subserie derivadas del código de clasificación.
type Clasificacion struct {
	TipoDocumentoID       *int
	DepartamentoID        *int
	PeriodoID             *int
	CodigoClasificacionID *int
	ValorDocumentalID     *int
	PlazoConservacionID   *int
	DestinoFinalID        *int
	SoporteDocumentalID   *int
	Serie                 string
	Subserie              string
}

// ResolverClasificacion valida y resuelve todas las referencias.
// Las ocho referencias de clasificación son obligatorias: si falta
// alguna se reportan todas las faltantes en un solo 400. Una
// referencia que no existe en su catálogo produce 404 con el valor
// que falló.
func ResolverClasificacion(db *gorm.DB, refs Referencias) (*Clasificacion, error) {
	out := &Clasificacion{}
	campos := []struct {
		nombre  string
		tabla   catService.Tabla
		ref     string
		destino **int
	}{
		{"tipos_documentos_id", catService.TablaTipos, refs.TipoDocumento, &out.TipoDocumentoID},
		{"departamentos_id", catService.TablaDepartamentos, refs.Departamento, &out.DepartamentoID},
		{"periodos_id", catService.TablaPeriodos, refs.Periodo, &out.PeriodoID},
		{"codigo_clasificacion_id", catService.TablaCuadro, refs.CodigoClasificacion, &out.CodigoClasificacionID},
		{"valor_documental_id", catService.TablaValores, refs.ValorDocumental, &out.ValorDocumentalID},
		{"plazo_conservacion_id", catService.TablaPlazos, refs.PlazoConservacion, &out.PlazoConservacionID},
		{"destino_final_id", catService.TablaDestinos, refs.DestinoFinal, &out.DestinoFinalID},
		{"soporte_documental_id", catService.TablaSoportes, refs.SoporteDocumental, &out.SoporteDocumentalID},
	}

	var faltantes []string
	for _, c := range campos {
		if strings.TrimSpace(c.ref) == "" {
			faltantes = append(faltantes, c.nombre)
		}
	}
	if len(faltantes) > 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Faltan campos obligatorios: "+strings.Join(faltantes, ", "))
	}

	for _, r := range campos {
		id, err := catService.ResolverID(db, r.tabla, r.ref)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fiber.NewError(fiber.StatusNotFound,
					fmt.Sprintf("No existe %s con referencia '%s'", r.tabla.Nombre, r.ref))
			}
			return nil, err
		}
		v := id
		*r.destino = &v
	}

	codigo, err := catService.CodigoDe(db, catService.TablaCuadro, *out.CodigoClasificacionID)
	if err != nil {
		return nil, err
	}
	out.Serie, out.Subserie = SerieDeCodigo(codigo)
	return out, nil
}

// SerieDeCodigo deriva serie y subserie de un código tipo "1200.1":
// la serie es el primer segmento; si hay subdivisión, la subserie es
// el código completo.
func SerieDeCodigo(codigo string) (string, string) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return "", ""
	}
	partes := strings.SplitN(codigo, ".", 2)
	if len(partes) == 1 {
		return codigo, ""
	}
	return partes[0], codigo
}

/* =======================================================
   Número de expediente
   ======================================================= */

// GenerarExpediente produce el consecutivo anual EXP-<año>/<seq>.
func GenerarExpediente(db *gorm.DB, ahora time.Time) (string, error) {
	prefijo := fmt.Sprintf("EXP-%d/", ahora.Year())
	var total int64
	if err := db.Model(&model.DocumentoModel{}).
		Where("num_expediente LIKE ?", prefijo+"%").
		Count(&total).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefijo, total+1), nil
}

/* =======================================================
   Alta desde subida multipart
   ======================================================= */

// CrearDesdeSubida ejecuta el pipeline completo de ingesta: valida el
// archivo, lo guarda en disco, calcula el checksum, resuelve la
// clasificación, aplica los valores por defecto y persiste documento y
// bitácora en una sola transacción. Si cualquier paso posterior a la
// escritura en disco falla, el archivo se elimina.
func CrearDesdeSubida(db *gorm.DB, almacen *Almacen, fh *multipart.FileHeader, req dto.UploadDocumentoRequest, usuarioID int, rol, ip string) (*model.DocumentoModel, error) {
	if err := ValidarArchivo(fh); err != nil {
		return nil, err
	}

	clas, err := ResolverClasificacion(db, Referencias{
		TipoDocumento:       req.TipoDocumento,
		Departamento:        req.Departamento,
		Periodo:             req.Periodo,
		CodigoClasificacion: req.CodigoClasificacion,
		ValorDocumental:     req.ValorDocumental,
		PlazoConservacion:   req.PlazoConservacion,
		DestinoFinal:        req.DestinoFinal,
		SoporteDocumental:   req.SoporteDocumental,
	})
	if err != nil {
		return nil, err
	}

	key, size, err := almacen.Guardar(fh)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar el archivo")
	}
	checksum, err := almacen.Checksum(key)
	if err != nil {
		almacen.Eliminar(key)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo calcular el checksum")
	}

	ahora := time.Now()
	numExp := strings.TrimSpace(req.NumExpediente)
	if numExp == "" {
		numExp, err = GenerarExpediente(db, ahora)
		if err != nil {
			almacen.Eliminar(key)
			return nil, err
		}
	}

	nombre := req.Nombre
	if nombre == "" {
		nombre = fh.Filename
	}
	nivel := req.NivelAcceso
	if nivel == "" {
		nivel = "publico"
	}
	vigencia := req.EstadoVigencia
	if vigencia == "" {
		vigencia = "VIGENTE"
	}

	mime := fh.Header.Get("Content-Type")
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}

	doc := &model.DocumentoModel{
		Nombre:      nombre,
		Descripcion: req.Descripcion,
		Mime:        mime,
		Ruta:        almacen.RutaRelativa(key),
		FileKey:     key,
		Size:        size,
		Checksum:    checksum,

		NivelAcceso:    nivel,
		NumExpediente:  numExp,
		Serie:          clas.Serie,
		Subserie:       clas.Subserie,
		Folio:          strings.TrimSpace(req.Folio),
		Procedencia:    "upload",
		EstadoVigencia: vigencia,

		UsuariosID:            &usuarioID,
		TiposDocumentosID:     clas.TipoDocumentoID,
		DepartamentosID:       clas.DepartamentoID,
		PeriodosID:            clas.PeriodoID,
		CodigoClasificacionID: clas.CodigoClasificacionID,
		ValorDocumentalID:     clas.ValorDocumentalID,
		PlazoConservacionID:   clas.PlazoConservacionID,
		DestinoFinalID:        clas.DestinoFinalID,
		SoporteDocumentalID:   clas.SoporteDocumentalID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		return bitacoraService.RegistrarTx(tx, bitacoraService.Entrada{
			UsuarioID:   &usuarioID,
			Rol:         rol,
			Accion:      "subida",
			IP:          ip,
			Descripcion: fmt.Sprintf("Subió el documento '%s' (%s, %d bytes)", doc.Nombre, doc.NumExpediente, doc.Size),
		})
	})
	if err != nil {
		almacen.Eliminar(key)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar el documento")
	}
	return doc, nil
}
