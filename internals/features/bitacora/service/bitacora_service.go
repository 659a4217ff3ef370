package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/bitacora/model"
)

// Entrada es lo que un caller aporta para registrar una acción.
type Entrada struct {
	UsuarioID   *int
	Rol         string
	Accion      string
	IP          string
	Descripcion string
}

func (e Entrada) aModelo() *model.BitacoraModel {
	return &model.BitacoraModel{
		UsuarioID:   e.UsuarioID,
		Rol:         e.Rol,
		Accion:      e.Accion,
		IP:          e.IP,
		Descripcion: e.Descripcion,
	}
}

// Registrar escribe en bitácora con política best-effort: el fallo se
// loguea y se traga, nunca bloquea ni revierte la operación principal.
// Nótese que no devuelve error; para la variante transaccional ver RegistrarTx.
func Registrar(db *gorm.DB, e Entrada) {
	if e.Accion == "" {
		return
	}
	if err := db.Create(e.aModelo()).Error; err != nil {
		log.Printf("[BITACORA] fallo al registrar accion=%q: %v", e.Accion, err)
	}
}

// RegistrarTx escribe en bitácora dentro de una transacción en curso; el
// error se propaga y revierte la unidad completa. Sólo el pipeline de
// alta de documentos usa esta variante.
func RegistrarTx(tx *gorm.DB, e Entrada) error {
	if e.Accion == "" {
		return fmt.Errorf("bitacora: accion vacía")
	}
	return tx.Create(e.aModelo()).Error
}

// Purgar elimina los registros con fecha_inicio anterior a hoy menos dias.
func Purgar(db *gorm.DB, dias int) (int64, time.Time, error) {
	if dias < 1 {
		return 0, time.Time{}, fmt.Errorf("el número de días debe ser mayor a 0")
	}
	limite := time.Now().AddDate(0, 0, -dias)
	res := db.Where("fecha_inicio < ?", limite).Delete(&model.BitacoraModel{})
	return res.RowsAffected, limite, res.Error
}

/* ==========================
   Estadísticas
========================== */

type ConteoRol struct {
	Rol      string `json:"rol"`
	Cantidad int64  `json:"cantidad"`
}

type ConteoAccion struct {
	Accion   string `json:"accion"`
	Cantidad int64  `json:"cantidad"`
}

type ConteoUsuario struct {
	UsuarioID int   `json:"usuario_id"`
	Cantidad  int64 `json:"cantidad"`
}

type Estadisticas struct {
	TotalRegistros      int64           `json:"totalRegistros"`
	RegistrosPorRol     []ConteoRol     `json:"registrosPorRol"`
	RegistrosPorAccion  []ConteoAccion  `json:"registrosPorAccion"`
	UsuariosMasActivos  []ConteoUsuario `json:"usuariosMasActivos"`
}

// CalcularEstadisticas agrega la bitácora en el rango [desde, hasta] (inclusive).
func CalcularEstadisticas(db *gorm.DB, desde, hasta *time.Time) (*Estadisticas, error) {
	base := func() *gorm.DB {
		q := db.Model(&model.BitacoraModel{})
		if desde != nil {
			q = q.Where("fecha_inicio >= ?", *desde)
		}
		if hasta != nil {
			q = q.Where("fecha_inicio <= ?", *hasta)
		}
		return q
	}

	var est Estadisticas
	if err := base().Count(&est.TotalRegistros).Error; err != nil {
		return nil, err
	}

	if err := base().
		Select("COALESCE(NULLIF(rol, ''), 'Sin rol') AS rol, COUNT(*) AS cantidad").
		Group("1").Order("cantidad DESC").
		Scan(&est.RegistrosPorRol).Error; err != nil {
		return nil, err
	}

	if err := base().
		Select("accion, COUNT(*) AS cantidad").
		Group("accion").Order("cantidad DESC").Limit(10).
		Scan(&est.RegistrosPorAccion).Error; err != nil {
		return nil, err
	}

	if err := base().
		Where("usuario_id IS NOT NULL").
		Select("usuario_id, COUNT(*) AS cantidad").
		Group("usuario_id").Order("cantidad DESC").Limit(10).
		Scan(&est.UsuariosMasActivos).Error; err != nil {
		return nil, err
	}

	return &est, nil
}
