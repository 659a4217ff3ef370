package dto

import (
	"strings"

	uModel "gestordocumental_backend/internals/features/usuarios/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUsuarioRequest — alta de usuario (el hash del password se hace en el controlador)
type CreateUsuarioRequest struct {
	Nombre          string `json:"nombre" validate:"omitempty,max=100"`
	Apellidos       string `json:"apellidos" validate:"omitempty,max=150"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=6"`
	DepartamentosID *int   `json:"departamentos_id,omitempty"`
	RoleID          *int   `json:"role_id,omitempty"`
	Activo          *bool  `json:"activo,omitempty"`
}

func (r *CreateUsuarioRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Apellidos = strings.TrimSpace(r.Apellidos)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

func (r *CreateUsuarioRequest) ToModel() *uModel.UsuarioModel {
	m := &uModel.UsuarioModel{
		Nombre:          r.Nombre,
		Apellidos:       r.Apellidos,
		Email:           r.Email,
		Password:        r.Password, // hash en el controlador
		DepartamentosID: r.DepartamentosID,
		RoleID:          r.RoleID,
		Activo:          true,
	}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
	return m
}

// UpdateUsuarioRequest — actualización parcial (punteros para distinguir omitido de null)
type UpdateUsuarioRequest struct {
	Nombre          *string `json:"nombre,omitempty" validate:"omitempty,max=100"`
	Apellidos       *string `json:"apellidos,omitempty" validate:"omitempty,max=150"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password        *string `json:"password,omitempty" validate:"omitempty,min=6"`
	DepartamentosID *int    `json:"departamentos_id,omitempty"`
	RoleID          *int    `json:"role_id,omitempty"`
	Activo          *bool   `json:"activo,omitempty"`
}

func (r *UpdateUsuarioRequest) Normalize() {
	if r.Nombre != nil {
		v := strings.TrimSpace(*r.Nombre)
		r.Nombre = &v
	}
	if r.Apellidos != nil {
		v := strings.TrimSpace(*r.Apellidos)
		r.Apellidos = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
}

// ApplyToModel aplica los cambios parciales; el password llega ya hasheado.
func (r *UpdateUsuarioRequest) ApplyToModel(m *uModel.UsuarioModel) {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
	if r.Apellidos != nil {
		m.Apellidos = *r.Apellidos
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Password != nil {
		m.Password = *r.Password
	}
	if r.DepartamentosID != nil {
		m.DepartamentosID = r.DepartamentosID
	}
	if r.RoleID != nil {
		m.RoleID = r.RoleID
	}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
}

/* =======================================================
   ROLES
   ======================================================= */

type CreateRolRequest struct {
	Tipo        string `json:"tipo" validate:"required,max=30"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=255"`
	Activo      *bool  `json:"activo,omitempty"`
}

func (r *CreateRolRequest) Normalize() {
	r.Tipo = strings.TrimSpace(r.Tipo)
	r.Descripcion = strings.TrimSpace(r.Descripcion)
}

func (r *CreateRolRequest) ToModel() *uModel.RolModel {
	m := &uModel.RolModel{Tipo: r.Tipo, Descripcion: r.Descripcion, Activo: true}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
	return m
}

type UpdateRolRequest struct {
	Tipo        *string `json:"tipo,omitempty" validate:"omitempty,max=30"`
	Descripcion *string `json:"descripcion,omitempty" validate:"omitempty,max=255"`
	Activo      *bool   `json:"activo,omitempty"`
}

func (r *UpdateRolRequest) ApplyToModel(m *uModel.RolModel) {
	if r.Tipo != nil {
		m.Tipo = strings.TrimSpace(*r.Tipo)
	}
	if r.Descripcion != nil {
		m.Descripcion = strings.TrimSpace(*r.Descripcion)
	}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
}
