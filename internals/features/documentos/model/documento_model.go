package model

import "time"

// DocumentoModel — expediente documental. Las columnas de clasificación
// referencian los catálogos por id; serie y subserie se guardan
// desnormalizadas a partir del código del cuadro de clasificación.
type DocumentoModel struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Nombre      string `gorm:"size:255;not null" json:"nombre"`
	Descripcion string `gorm:"size:1000" json:"descripcion"`

	// Archivo físico
	Mime     string `gorm:"size:100" json:"mime"`
	Ruta     string `gorm:"size:500" json:"ruta"`
	FileKey  string `gorm:"size:255;index" json:"file_key"`
	Size     int64  `json:"size"`
	Checksum string `gorm:"size:64" json:"checksum"`

	// Metadatos archivísticos
	NivelAcceso    string `gorm:"size:20;default:publico" json:"nivel_acceso"`
	NumExpediente  string `gorm:"size:50;index" json:"num_expediente"`
	Serie          string `gorm:"size:50" json:"serie"`
	Subserie       string `gorm:"size:50" json:"subserie"`
	Folio          string `gorm:"size:50" json:"folio"`
	Procedencia    string `gorm:"size:100" json:"procedencia"`
	EstadoVigencia string `gorm:"size:20;default:VIGENTE" json:"estado_vigencia"`

	// Referencias a catálogos
	UsuariosID            *int `gorm:"column:usuarios_id;index" json:"usuarios_id"`
	TiposDocumentosID     *int `gorm:"column:tipos_documentos_id;index" json:"tipos_documentos_id"`
	DepartamentosID       *int `gorm:"column:departamentos_id;index" json:"departamentos_id"`
	PeriodosID            *int `gorm:"column:periodos_id;index" json:"periodos_id"`
	CodigoClasificacionID *int `gorm:"column:codigo_clasificacion_id;index" json:"codigo_clasificacion_id"`
	ValorDocumentalID     *int `gorm:"column:valor_documental_id" json:"valor_documental_id"`
	PlazoConservacionID   *int `gorm:"column:plazo_conservacion_id" json:"plazo_conservacion_id"`
	DestinoFinalID        *int `gorm:"column:destino_final_id" json:"destino_final_id"`
	SoporteDocumentalID   *int `gorm:"column:soporte_documental_id" json:"soporte_documental_id"`

	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	FechaSubida   time.Time `gorm:"autoCreateTime" json:"fecha_subida"`
}

func (DocumentoModel) TableName() string { return "documentos" }
