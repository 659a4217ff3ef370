package database

import (
	"log"

	"gorm.io/gorm"

	bitacoraModel "gestordocumental_backend/internals/features/bitacora/model"
	catalogoModel "gestordocumental_backend/internals/features/catalogos/model"
	documentoModel "gestordocumental_backend/internals/features/documentos/model"
	favoritoModel "gestordocumental_backend/internals/features/favoritos/model"
	usuarioModel "gestordocumental_backend/internals/features/usuarios/model"
)

// Migrate sincroniza el esquema. El orden importa: los catálogos y
// roles van antes que usuarios/documentos para que las referencias
// existan al crear los índices.
func Migrate(db *gorm.DB) {
	log.Println("🛠  Ejecutando migraciones...")

	err := db.AutoMigrate(
		&usuarioModel.RolModel{},
		&catalogoModel.DepartamentoModel{},
		&catalogoModel.CuadroClasificacionModel{},
		&catalogoModel.ValorDocumentalModel{},
		&catalogoModel.PlazoConservacionModel{},
		&catalogoModel.DestinoFinalModel{},
		&catalogoModel.SoporteDocumentalModel{},
		&catalogoModel.TipoDocumentoModel{},
		&catalogoModel.PeriodoModel{},
		&usuarioModel.UsuarioModel{},
		&documentoModel.DocumentoModel{},
		&favoritoModel.FavoritoModel{},
		&bitacoraModel.BitacoraModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migración fallida: %v", err)
	}
	log.Println("✅ Migraciones aplicadas")
}
