package model

import (
	"time"

	"gorm.io/datatypes"
)

/* =======================================================
   Catálogos de clasificación archivística. Cada tabla tiene
   una clave natural única (codigo/clave/nombre) además del id.
   ======================================================= */

// CuadroClasificacionModel — cuadro general de clasificación (codigo).
type CuadroClasificacionModel struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Codigo      string `gorm:"size:50;uniqueIndex;not null" json:"codigo"`
	Titulo      string `gorm:"size:255" json:"titulo"`
	Descripcion string `gorm:"size:500" json:"descripcion"`
}

func (CuadroClasificacionModel) TableName() string { return "cuadro_clasificacion" }

// ValorDocumentalModel — valor documental (administrativo, legal, fiscal...).
type ValorDocumentalModel struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Clave       string `gorm:"size:50;uniqueIndex;not null" json:"clave"`
	Nombre      string `gorm:"size:255" json:"nombre"`
	Descripcion string `gorm:"size:500" json:"descripcion"`
}

func (ValorDocumentalModel) TableName() string { return "valores_documentales" }

// PlazoConservacionModel — plazos de conservación.
type PlazoConservacionModel struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Clave       string `gorm:"size:50;uniqueIndex;not null" json:"clave"`
	Descripcion string `gorm:"size:500" json:"descripcion"`
}

func (PlazoConservacionModel) TableName() string { return "plazos_conservacion" }

// DestinoFinalModel — destino final (baja, conservación permanente...).
type DestinoFinalModel struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Clave       string `gorm:"size:50;uniqueIndex;not null" json:"clave"`
	Nombre      string `gorm:"size:255" json:"nombre"`
	Descripcion string `gorm:"size:500" json:"descripcion"`
}

func (DestinoFinalModel) TableName() string { return "destinos_finales" }

// SoporteDocumentalModel — soporte (papel, electrónico...).
type SoporteDocumentalModel struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Clave       string `gorm:"size:50;uniqueIndex;not null" json:"clave"`
	Nombre      string `gorm:"size:255" json:"nombre"`
	Descripcion string `gorm:"size:500" json:"descripcion"`
}

func (SoporteDocumentalModel) TableName() string { return "soportes_documentales" }

// DepartamentoModel — unidades administrativas.
type DepartamentoModel struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Nombre      string `gorm:"size:150;uniqueIndex;not null" json:"nombre"`
	Descripcion string `gorm:"size:500" json:"descripcion"`
	Activo      bool   `gorm:"not null;default:true" json:"activo"`
}

func (DepartamentoModel) TableName() string { return "departamentos" }

// TipoDocumentoModel — tipos de documento (acta, informe, contrato...).
type TipoDocumentoModel struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Tipo        string `gorm:"size:100;uniqueIndex;not null" json:"tipo"`
	Descripcion string `gorm:"size:500" json:"descripcion"`
	Activo      bool   `gorm:"not null;default:true" json:"activo"`
}

func (TipoDocumentoModel) TableName() string { return "tipos_documentos" }

// PeriodoModel — periodos archivísticos (ej. "2024").
// Invariante: fecha_inicio <= fecha_final (se corrige intercambiando).
type PeriodoModel struct {
	ID            int             `gorm:"primaryKey" json:"id"`
	Periodo       string          `gorm:"size:50;uniqueIndex;not null" json:"periodo"`
	FechaInicio   *datatypes.Date `json:"fecha_inicio"`
	FechaFinal    *datatypes.Date `json:"fecha_final"`
	Activo        bool            `gorm:"not null;default:true" json:"activo"`
	FechaCreacion time.Time       `gorm:"autoCreateTime" json:"fecha_creacion"`
}

func (PeriodoModel) TableName() string { return "periodos" }
