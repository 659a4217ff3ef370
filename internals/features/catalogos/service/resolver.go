package service

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

/* =======================================================
   Resolución permisiva de referencias de catálogo: el caller
   puede mandar el id numérico o la clave natural como string.
   Lo usa el pipeline de alta de documentos.
   ======================================================= */

// Tabla describe un catálogo resoluble: nombre de tabla y columna de clave natural.
type Tabla struct {
	Nombre     string
	ColumnaNat string
}

var (
	TablaCuadro        = Tabla{"cuadro_clasificacion", "codigo"}
	TablaValores       = Tabla{"valores_documentales", "clave"}
	TablaPlazos        = Tabla{"plazos_conservacion", "clave"}
	TablaDestinos      = Tabla{"destinos_finales", "clave"}
	TablaSoportes      = Tabla{"soportes_documentales", "clave"}
	TablaDepartamentos = Tabla{"departamentos", "nombre"}
	TablaTipos         = Tabla{"tipos_documentos", "tipo"}
	TablaPeriodos      = Tabla{"periodos", "periodo"}
)

// ResolverID devuelve el id del registro referido por ref: si ref es
// numérico se busca por id, si no por la clave natural del catálogo.
// Devuelve gorm.ErrRecordNotFound si no resuelve.
func ResolverID(db *gorm.DB, t Tabla, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, gorm.ErrRecordNotFound
	}

	var id int
	if n, err := strconv.Atoi(ref); err == nil {
		err := db.Table(t.Nombre).Select("id").Where("id = ?", n).Take(&id).Error
		return id, err
	}
	err := db.Table(t.Nombre).Select("id").Where(t.ColumnaNat+" = ?", ref).Take(&id).Error
	return id, err
}

// CodigoDe devuelve la clave natural a partir del id (lo usa el pipeline
// para derivar serie/subserie del cuadro de clasificación).
func CodigoDe(db *gorm.DB, t Tabla, id int) (string, error) {
	var clave string
	err := db.Table(t.Nombre).Select(t.ColumnaNat).Where("id = ?", id).Take(&clave).Error
	return clave, err
}
