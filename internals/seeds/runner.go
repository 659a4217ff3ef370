package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogoModel "gestordocumental_backend/internals/features/catalogos/model"
	usuarioModel "gestordocumental_backend/internals/features/usuarios/model"
)

// RunAllSeeds carga los catálogos base y el usuario administrador.
// Es idempotente: los registros existentes no se tocan.
func RunAllSeeds(db *gorm.DB) {
	seedRoles(db)
	seedDepartamentos(db)
	seedCatalogos(db)
	seedAdmin(db)
	log.Println("✅ Seeds aplicados")
}

func seedRoles(db *gorm.DB) {
	roles := []usuarioModel.RolModel{
		{Tipo: "superAdmin"},
		{Tipo: "admin"},
		{Tipo: "capturista"},
		{Tipo: "revisor"},
	}
	db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles)
}

func seedDepartamentos(db *gorm.DB) {
	departamentos := []catalogoModel.DepartamentoModel{
		{Nombre: "Dirección General", Activo: true},
		{Nombre: "Recursos Humanos", Activo: true},
		{Nombre: "Jurídico", Activo: true},
		{Nombre: "Archivo", Activo: true},
	}
	db.Clauses(clause.OnConflict{DoNothing: true}).Create(&departamentos)
}

func seedCatalogos(db *gorm.DB) {
	cuadro := []catalogoModel.CuadroClasificacionModel{
		{Codigo: "1C", Titulo: "Legislación"},
		{Codigo: "2C", Titulo: "Asuntos Jurídicos"},
		{Codigo: "4C", Titulo: "Recursos Humanos"},
		{Codigo: "4C.3", Titulo: "Expediente de personal"},
	}
	db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cuadro)

	valores := []catalogoModel.ValorDocumentalModel{
		{Clave: "A", Nombre: "Administrativo"},
		{Clave: "L", Nombre: "Legal"},
		{Clave: "F", Nombre: "Fiscal"},
	}
	db.Clauses(clause.OnConflict{DoNothing: true}).Create(&valores)

	plazos := []catalogoModel.PlazoConservacionModel{
		{Clave: "3A", Descripcion: "Tres años en archivo de trámite"},
		{Clave: "5A", Descripcion: "Cinco años en archivo de concentración"},
	}
	db.Clauses(clause.OnConflict{DoNothing: true}).Create(&plazos)

	destinos := []catalogoModel.DestinoFinalModel{
		{Clave: "B", Nombre: "Baja documental"},
		{Clave: "CP", Nombre: "Conservación permanente"},
	}
	db.Clauses(clause.OnConflict{DoNothing: true}).Create(&destinos)

	soportes := []catalogoModel.SoporteDocumentalModel{
		{Clave: "P", Nombre: "Papel"},
		{Clave: "E", Nombre: "Electrónico"},
	}
	db.Clauses(clause.OnConflict{DoNothing: true}).Create(&soportes)

	tipos := []catalogoModel.TipoDocumentoModel{
		{Tipo: "Acta", Activo: true},
		{Tipo: "Informe", Activo: true},
		{Tipo: "Contrato", Activo: true},
		{Tipo: "Oficio", Activo: true},
	}
	db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tipos)

	periodos := []catalogoModel.PeriodoModel{
		{Periodo: "2024", Activo: true},
		{Periodo: "2025", Activo: true},
		{Periodo: "2026", Activo: true},
	}
	db.Clauses(clause.OnConflict{DoNothing: true}).Create(&periodos)
}

func seedAdmin(db *gorm.DB) {
	var existe int64
	db.Model(&usuarioModel.UsuarioModel{}).Where("email = ?", "admin@gestor.local").Count(&existe)
	if existe > 0 {
		return
	}

	var rol usuarioModel.RolModel
	if err := db.Where("tipo = ?", "superAdmin").First(&rol).Error; err != nil {
		log.Printf("⚠️ seed admin: rol superAdmin no encontrado: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("⚠️ seed admin: %v", err)
		return
	}
	admin := usuarioModel.UsuarioModel{
		Nombre:   "Administrador",
		Email:    "admin@gestor.local",
		Password: string(hash),
		RoleID:   &rol.ID,
		Activo:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("⚠️ seed admin: %v", err)
		return
	}
	log.Println("👤 Usuario admin@gestor.local creado (cambiar contraseña)")
}
