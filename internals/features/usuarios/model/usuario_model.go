package model

import (
	"time"
)

// UsuarioModel representa la tabla usuarios.
// Un usuario tiene a lo más un rol (role_id), esquema final 1:1.
type UsuarioModel struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	Nombre          string    `gorm:"size:100" json:"nombre"`
	Apellidos       string    `gorm:"size:150" json:"apellidos"`
	Email           string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"size:255" json:"-"`
	Activo          bool      `gorm:"not null;default:true" json:"activo"`
	DepartamentosID *int      `gorm:"column:departamentos_id" json:"departamentos_id"`
	RoleID          *int      `gorm:"column:role_id" json:"role_id"`
	FechaCreacion   time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	FechaAct        time.Time `gorm:"autoUpdateTime" json:"fecha_act"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}

// Resumen público del usuario (sin hash de password).
type UsuarioResumen struct {
	ID              int    `json:"id"`
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	Email           string `json:"email"`
	Activo          bool   `json:"activo"`
	RoleID          *int   `json:"role_id"`
	DepartamentosID *int   `json:"departamentos_id"`
}

func (u *UsuarioModel) Resumen() UsuarioResumen {
	return UsuarioResumen{
		ID:              u.ID,
		Nombre:          u.Nombre,
		Apellidos:       u.Apellidos,
		Email:           u.Email,
		Activo:          u.Activo,
		RoleID:          u.RoleID,
		DepartamentosID: u.DepartamentosID,
	}
}
