package model

import (
	"time"
)

// RolModel representa la tabla roles (admin, capturista, revisor, superAdmin).
type RolModel struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	Tipo          string    `gorm:"size:30;uniqueIndex;not null" json:"tipo"`
	Descripcion   string    `gorm:"size:255" json:"descripcion"`
	Activo        bool      `gorm:"not null;default:true" json:"activo"`
	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
}

func (RolModel) TableName() string {
	return "roles"
}
