package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	cModel "gestordocumental_backend/internals/features/catalogos/model"
)

/* =======================================================
   Cuadro de clasificación
   ======================================================= */

type CreateCuadroRequest struct {
	Codigo      string `json:"codigo" validate:"required,max=50"`
	Titulo      string `json:"titulo" validate:"omitempty,max=255"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
}

func (r *CreateCuadroRequest) Normalize() {
	r.Codigo = strings.TrimSpace(r.Codigo)
	r.Titulo = strings.TrimSpace(r.Titulo)
}

func (r *CreateCuadroRequest) ToModel() *cModel.CuadroClasificacionModel {
	return &cModel.CuadroClasificacionModel{Codigo: r.Codigo, Titulo: r.Titulo, Descripcion: r.Descripcion}
}

type UpdateCuadroRequest struct {
	Codigo      *string `json:"codigo,omitempty" validate:"omitempty,max=50"`
	Titulo      *string `json:"titulo,omitempty" validate:"omitempty,max=255"`
	Descripcion *string `json:"descripcion,omitempty" validate:"omitempty,max=500"`
}

func (r *UpdateCuadroRequest) ApplyToModel(m *cModel.CuadroClasificacionModel) {
	if r.Codigo != nil {
		m.Codigo = strings.TrimSpace(*r.Codigo)
	}
	if r.Titulo != nil {
		m.Titulo = strings.TrimSpace(*r.Titulo)
	}
	if r.Descripcion != nil {
		m.Descripcion = *r.Descripcion
	}
}

/* =======================================================
   Catálogos por clave (valores, plazos, destinos, soportes)
   ======================================================= */

type CreateClaveRequest struct {
	Clave       string `json:"clave" validate:"required,max=50"`
	Nombre      string `json:"nombre" validate:"omitempty,max=255"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
}

func (r *CreateClaveRequest) Normalize() {
	r.Clave = strings.TrimSpace(r.Clave)
	r.Nombre = strings.TrimSpace(r.Nombre)
}

type UpdateClaveRequest struct {
	Clave       *string `json:"clave,omitempty" validate:"omitempty,max=50"`
	Nombre      *string `json:"nombre,omitempty" validate:"omitempty,max=255"`
	Descripcion *string `json:"descripcion,omitempty" validate:"omitempty,max=500"`
}

/* =======================================================
   Departamentos
   ======================================================= */

type CreateDepartamentoRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=150"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
	Activo      *bool  `json:"activo,omitempty"`
}

func (r *CreateDepartamentoRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
}

func (r *CreateDepartamentoRequest) ToModel() *cModel.DepartamentoModel {
	m := &cModel.DepartamentoModel{Nombre: r.Nombre, Descripcion: r.Descripcion, Activo: true}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
	return m
}

type UpdateDepartamentoRequest struct {
	Nombre      *string `json:"nombre,omitempty" validate:"omitempty,max=150"`
	Descripcion *string `json:"descripcion,omitempty" validate:"omitempty,max=500"`
	Activo      *bool   `json:"activo,omitempty"`
}

func (r *UpdateDepartamentoRequest) ApplyToModel(m *cModel.DepartamentoModel) {
	if r.Nombre != nil {
		m.Nombre = strings.TrimSpace(*r.Nombre)
	}
	if r.Descripcion != nil {
		m.Descripcion = *r.Descripcion
	}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
}

/* =======================================================
   Tipos de documento
   ======================================================= */

type CreateTipoDocumentoRequest struct {
	Tipo        string `json:"tipo" validate:"required,max=100"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
	Activo      *bool  `json:"activo,omitempty"`
}

func (r *CreateTipoDocumentoRequest) Normalize() {
	r.Tipo = strings.TrimSpace(r.Tipo)
}

func (r *CreateTipoDocumentoRequest) ToModel() *cModel.TipoDocumentoModel {
	m := &cModel.TipoDocumentoModel{Tipo: r.Tipo, Descripcion: r.Descripcion, Activo: true}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
	return m
}

type UpdateTipoDocumentoRequest struct {
	Tipo        *string `json:"tipo,omitempty" validate:"omitempty,max=100"`
	Descripcion *string `json:"descripcion,omitempty" validate:"omitempty,max=500"`
	Activo      *bool   `json:"activo,omitempty"`
}

func (r *UpdateTipoDocumentoRequest) ApplyToModel(m *cModel.TipoDocumentoModel) {
	if r.Tipo != nil {
		m.Tipo = strings.TrimSpace(*r.Tipo)
	}
	if r.Descripcion != nil {
		m.Descripcion = *r.Descripcion
	}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
}

/* =======================================================
   Periodos
   ======================================================= */

type CreatePeriodoRequest struct {
	Periodo     string `json:"periodo" validate:"required,max=50"`
	FechaInicio string `json:"fecha_inicio" validate:"omitempty"`
	FechaFinal  string `json:"fecha_final" validate:"omitempty"`
	Activo      *bool  `json:"activo,omitempty"`
}

func (r *CreatePeriodoRequest) Normalize() {
	r.Periodo = strings.TrimSpace(r.Periodo)
}

// ParseFechaPeriodo acepta ISO completo o sólo fecha.
func ParseFechaPeriodo(raw string) *datatypes.Date {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			d := datatypes.Date(t)
			return &d
		}
	}
	return nil
}

// ToModel corrige rangos invertidos intercambiando las fechas.
func (r *CreatePeriodoRequest) ToModel() *cModel.PeriodoModel {
	inicio := ParseFechaPeriodo(r.FechaInicio)
	final := ParseFechaPeriodo(r.FechaFinal)
	if inicio != nil && final != nil && time.Time(*inicio).After(time.Time(*final)) {
		inicio, final = final, inicio
	}
	m := &cModel.PeriodoModel{Periodo: r.Periodo, FechaInicio: inicio, FechaFinal: final, Activo: true}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
	return m
}

type UpdatePeriodoRequest struct {
	Periodo     *string `json:"periodo,omitempty" validate:"omitempty,max=50"`
	FechaInicio *string `json:"fecha_inicio,omitempty"`
	FechaFinal  *string `json:"fecha_final,omitempty"`
	Activo      *bool   `json:"activo,omitempty"`
}

func (r *UpdatePeriodoRequest) ApplyToModel(m *cModel.PeriodoModel) {
	if r.Periodo != nil {
		m.Periodo = strings.TrimSpace(*r.Periodo)
	}
	if r.FechaInicio != nil {
		m.FechaInicio = ParseFechaPeriodo(*r.FechaInicio)
	}
	if r.FechaFinal != nil {
		m.FechaFinal = ParseFechaPeriodo(*r.FechaFinal)
	}
	if m.FechaInicio != nil && m.FechaFinal != nil && time.Time(*m.FechaInicio).After(time.Time(*m.FechaFinal)) {
		m.FechaInicio, m.FechaFinal = m.FechaFinal, m.FechaInicio
	}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
}
