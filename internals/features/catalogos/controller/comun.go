package controller

import (
	"gorm.io/gorm"
)

// documentosAsociados cuenta los documentos que referencian la fila del
// catálogo; mientras haya alguno la eliminación queda bloqueada.
func documentosAsociados(db *gorm.DB, columna string, id int) (int64, error) {
	var n int64
	err := db.Table("documentos").Where(columna+" = ?", id).Count(&n).Error
	return n, err
}

const msgTieneDocumentos = "No se puede eliminar: tiene documentos asociados"
