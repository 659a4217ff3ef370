package dto

import (
	"encoding/json"
	"strings"
)

/* =======================================================
   Ref — referencia flexible a un catálogo: acepta el id
   numérico o la clave natural ("1200", "AC-01", "Jurídico").
   En multipart llega siempre como string; en JSON puede
   venir como número o como string.
   ======================================================= */

type Ref string

func (r *Ref) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = Ref(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = Ref(n.String())
	return nil
}

func (r Ref) String() string { return string(r) }
func (r Ref) Vacia() bool    { return strings.TrimSpace(string(r)) == "" }

/* =======================================================
   Alta directa (JSON) — el archivo ya existe en disco o la
   ruta es externa. Los campos de catálogo admiten id o clave.
   ======================================================= */

type CreateDocumentoRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=255"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=1000"`
	Mime        string `json:"mime" validate:"omitempty,max=100"`
	Ruta        string `json:"ruta" validate:"omitempty,max=500"`

	NivelAcceso    string `json:"nivel_acceso" validate:"omitempty,oneof=publico restringido confidencial"`
	NumExpediente  string `json:"num_expediente" validate:"omitempty,max=50"`
	Folio          string `json:"folio" validate:"omitempty,max=50"`
	Procedencia    string `json:"procedencia" validate:"omitempty,max=100"`
	EstadoVigencia string `json:"estado_vigencia" validate:"omitempty,max=20"`

	TipoDocumento       Ref `json:"tipos_documentos_id"`
	Departamento        Ref `json:"departamentos_id"`
	Periodo             Ref `json:"periodos_id"`
	CodigoClasificacion Ref `json:"codigo_clasificacion_id"`
	ValorDocumental     Ref `json:"valor_documental_id"`
	PlazoConservacion   Ref `json:"plazo_conservacion_id"`
	DestinoFinal        Ref `json:"destino_final_id"`
	SoporteDocumental   Ref `json:"soporte_documental_id"`
}

func (r *CreateDocumentoRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Ruta = strings.TrimSpace(r.Ruta)
	r.NivelAcceso = strings.ToLower(strings.TrimSpace(r.NivelAcceso))
	r.EstadoVigencia = strings.ToUpper(strings.TrimSpace(r.EstadoVigencia))
}

/* =======================================================
   Subida multipart — los metadatos llegan como form values.
   ======================================================= */

type UploadDocumentoRequest struct {
	Nombre      string `form:"nombre" validate:"omitempty,max=255"`
	Descripcion string `form:"descripcion" validate:"omitempty,max=1000"`

	NivelAcceso    string `form:"nivel_acceso" validate:"omitempty,oneof=publico restringido confidencial"`
	NumExpediente  string `form:"num_expediente" validate:"omitempty,max=50"`
	Folio          string `form:"folio" validate:"omitempty,max=50"`
	EstadoVigencia string `form:"estado_vigencia" validate:"omitempty,max=20"`

	TipoDocumento       string `form:"tipos_documentos_id"`
	Departamento        string `form:"departamentos_id"`
	Periodo             string `form:"periodos_id"`
	CodigoClasificacion string `form:"codigo_clasificacion_id"`
	ValorDocumental     string `form:"valor_documental_id"`
	PlazoConservacion   string `form:"plazo_conservacion_id"`
	DestinoFinal        string `form:"destino_final_id"`
	SoporteDocumental   string `form:"soporte_documental_id"`
}

func (r *UploadDocumentoRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.NivelAcceso = strings.ToLower(strings.TrimSpace(r.NivelAcceso))
	r.EstadoVigencia = strings.ToUpper(strings.TrimSpace(r.EstadoVigencia))
}

/* =======================================================
   Actualización parcial
   ======================================================= */

type UpdateDocumentoRequest struct {
	Nombre      *string `json:"nombre,omitempty" validate:"omitempty,max=255"`
	Descripcion *string `json:"descripcion,omitempty" validate:"omitempty,max=1000"`

	NivelAcceso    *string `json:"nivel_acceso,omitempty" validate:"omitempty,oneof=publico restringido confidencial"`
	NumExpediente  *string `json:"num_expediente,omitempty" validate:"omitempty,max=50"`
	Folio          *string `json:"folio,omitempty" validate:"omitempty,max=50"`
	EstadoVigencia *string `json:"estado_vigencia,omitempty" validate:"omitempty,max=20"`

	TipoDocumento       *Ref `json:"tipos_documentos_id,omitempty"`
	Departamento        *Ref `json:"departamentos_id,omitempty"`
	Periodo             *Ref `json:"periodos_id,omitempty"`
	CodigoClasificacion *Ref `json:"codigo_clasificacion_id,omitempty"`
	ValorDocumental     *Ref `json:"valor_documental_id,omitempty"`
	PlazoConservacion   *Ref `json:"plazo_conservacion_id,omitempty"`
	DestinoFinal        *Ref `json:"destino_final_id,omitempty"`
	SoporteDocumental   *Ref `json:"soporte_documental_id,omitempty"`
}
