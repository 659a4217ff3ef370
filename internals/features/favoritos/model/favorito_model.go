package model

import "time"

// FavoritoModel — marca de favorito usuario/documento. El índice único
// compuesto cierra la carrera entre el check previo y el insert.
type FavoritoModel struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	UsuarioID   int       `gorm:"column:usuario_id;not null;uniqueIndex:idx_favorito_usuario_documento" json:"usuario_id"`
	DocumentoID int       `gorm:"column:documento_id;not null;uniqueIndex:idx_favorito_usuario_documento" json:"documento_id"`
	Fecha       time.Time `gorm:"autoCreateTime" json:"fecha"`
}

func (FavoritoModel) TableName() string { return "favoritos" }
