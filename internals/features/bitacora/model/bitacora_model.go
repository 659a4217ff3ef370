package model

import (
	"time"
)

// BitacoraModel representa la tabla bitacora (registro de acciones).
// Es append-only en la práctica; la limpieza la hace la operación de purga.
type BitacoraModel struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	UsuarioID   *int      `gorm:"column:usuario_id;index" json:"usuario_id"`
	Rol         string    `gorm:"size:30" json:"rol"`
	Accion      string    `gorm:"size:50;not null;index" json:"accion"`
	IP          string    `gorm:"size:64" json:"ip"`
	Descripcion string    `gorm:"size:500" json:"descripcion"`
	FechaInicio time.Time `gorm:"autoCreateTime;index" json:"fecha_inicio"`
	FechaAct    time.Time `gorm:"autoUpdateTime" json:"fecha_act"`
}

func (BitacoraModel) TableName() string {
	return "bitacora"
}
