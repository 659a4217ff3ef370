package service

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/features/documentos/dto"
)

func headerConMime(mime string, size int64) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Type", mime)
	return &multipart.FileHeader{Filename: "x.bin", Header: h, Size: size}
}

func TestValidarArchivo(t *testing.T) {
	casos := []struct {
		nombre string
		fh     *multipart.FileHeader
		code   int
	}{
		{"pdf permitido", headerConMime("application/pdf", 1024), 0},
		{"docx permitido", headerConMime("application/vnd.openxmlformats-officedocument.wordprocessingml.document", 1024), 0},
		{"mime con charset", headerConMime("application/pdf; charset=binary", 1024), 0},
		{"imagen rechazada", headerConMime("image/png", 1024), fiber.StatusBadRequest},
		{"ejecutable rechazado", headerConMime("application/x-msdownload", 1024), fiber.StatusBadRequest},
		{"demasiado grande", headerConMime("application/pdf", MaxTamanoArchivo+1), fiber.StatusBadRequest},
		{"nil", nil, fiber.StatusBadRequest},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			err := ValidarArchivo(tc.fh)
			if tc.code == 0 {
				if err != nil {
					t.Errorf("error inesperado: %v", err)
				}
				return
			}
			var fe *fiber.Error
			if !errors.As(err, &fe) {
				t.Fatalf("esperaba *fiber.Error, got %T (%v)", err, err)
			}
			if fe.Code != tc.code {
				t.Errorf("code = %d, esperado %d", fe.Code, tc.code)
			}
		})
	}
}

func TestResolverClasificacionFaltantes(t *testing.T) {
	// Los campos obligatorios se verifican antes de tocar la base.
	_, err := ResolverClasificacion(nil, Referencias{TipoDocumento: "Acta"})

	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("esperaba *fiber.Error, got %T (%v)", err, err)
	}
	if fe.Code != fiber.StatusBadRequest {
		t.Errorf("code = %d, esperado 400", fe.Code)
	}
	for _, campo := range []string{
		"departamentos_id",
		"periodos_id",
		"codigo_clasificacion_id",
		"valor_documental_id",
		"plazo_conservacion_id",
		"destino_final_id",
		"soporte_documental_id",
	} {
		if !strings.Contains(fe.Message, campo) {
			t.Errorf("el mensaje no menciona %q: %s", campo, fe.Message)
		}
	}
	if strings.Contains(fe.Message, "tipos_documentos_id") {
		t.Errorf("el mensaje menciona un campo presente: %s", fe.Message)
	}
}

func dbDePrueba(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	return db, mock
}

// contiene matchea un argumento string que incluye la subcadena.
type contiene string

func (c contiene) Match(v driver.Value) bool {
	s, ok := v.(string)
	return ok && strings.Contains(s, string(c))
}

func TestCrearDesdeSubida(t *testing.T) {
	db, mock := dbDePrueba(t)
	almacen, err := NuevoAlmacen(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 8; i++ {
		mock.ExpectQuery(`SELECT id FROM`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	}
	mock.ExpectQuery(`SELECT codigo FROM "cuadro_clasificacion"`).
		WillReturnRows(sqlmock.NewRows([]string{"codigo"}).AddRow("4C.3"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "documentos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "documentos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	// La entrada de bitácora nombra archivo, expediente y tamaño.
	mock.ExpectQuery(`INSERT INTO "bitacora"`).
		WithArgs(5, "admin", "subida", "127.0.0.1", contiene("bytes"), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	contenido := "contenido del acta"
	fh := archivoDePrueba(t, "acta.pdf", "application/pdf", contenido)
	req := dto.UploadDocumentoRequest{
		TipoDocumento:       "1",
		Departamento:        "1",
		Periodo:             "1",
		CodigoClasificacion: "1",
		ValorDocumental:     "1",
		PlazoConservacion:   "1",
		DestinoFinal:        "1",
		SoporteDocumental:   "1",
	}
	doc, err := CrearDesdeSubida(db, almacen, fh, req, 5, "admin", "127.0.0.1")
	if err != nil {
		t.Fatal(err)
	}

	if doc.Serie != "4C" || doc.Subserie != "4C.3" {
		t.Errorf("serie/subserie = %q/%q", doc.Serie, doc.Subserie)
	}
	if want := fmt.Sprintf("EXP-%d/001", time.Now().Year()); doc.NumExpediente != want {
		t.Errorf("num_expediente = %q, esperado %q", doc.NumExpediente, want)
	}
	if doc.Procedencia != "upload" || doc.NivelAcceso != "publico" || doc.EstadoVigencia != "VIGENTE" {
		t.Errorf("defaults = %q/%q/%q", doc.Procedencia, doc.NivelAcceso, doc.EstadoVigencia)
	}
	if doc.Size != int64(len(contenido)) || doc.Checksum == "" {
		t.Errorf("size = %d, checksum = %q", doc.Size, doc.Checksum)
	}
	if !almacen.Existe(doc.FileKey) {
		t.Error("el archivo no quedó en el almacén")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCrearDesdeSubidaLimpiaArchivoSiFallaTransaccion(t *testing.T) {
	db, mock := dbDePrueba(t)
	dir := t.TempDir()
	almacen, err := NuevoAlmacen(dir)
	if err != nil {
		t.Fatal(err)
	}

	// Las ocho referencias resuelven, el código deriva serie/subserie
	// y el consecutivo se calcula; el insert del documento falla y la
	// transacción se revierte.
	for i := 0; i < 8; i++ {
		mock.ExpectQuery(`SELECT id FROM`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	}
	mock.ExpectQuery(`SELECT codigo FROM "cuadro_clasificacion"`).
		WillReturnRows(sqlmock.NewRows([]string{"codigo"}).AddRow("4C.3"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "documentos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "documentos"`).
		WillReturnError(gorm.ErrInvalidDB)
	mock.ExpectRollback()

	fh := archivoDePrueba(t, "acta.pdf", "application/pdf", "contenido")
	req := dto.UploadDocumentoRequest{
		TipoDocumento:       "1",
		Departamento:        "1",
		Periodo:             "1",
		CodigoClasificacion: "1",
		ValorDocumental:     "1",
		PlazoConservacion:   "1",
		DestinoFinal:        "1",
		SoporteDocumental:   "1",
	}
	if _, err := CrearDesdeSubida(db, almacen, fh, req, 5, "admin", "127.0.0.1"); err == nil {
		t.Fatal("esperaba error al fallar la transacción")
	}

	// El archivo escrito antes del fallo no debe quedar huérfano.
	restos, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(restos) != 0 {
		t.Errorf("quedaron %d archivos en el almacén tras el fallo", len(restos))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSerieDeCodigo(t *testing.T) {
	casos := []struct {
		codigo   string
		serie    string
		subserie string
	}{
		{"4C", "4C", ""},
		{"4C.3", "4C", "4C.3"},
		{"1200.1.2", "1200", "1200.1.2"},
		{" 2C ", "2C", ""},
		{"", "", ""},
	}
	for _, tc := range casos {
		serie, subserie := SerieDeCodigo(tc.codigo)
		if serie != tc.serie || subserie != tc.subserie {
			t.Errorf("SerieDeCodigo(%q) = (%q, %q), esperado (%q, %q)", tc.codigo, serie, subserie, tc.serie, tc.subserie)
		}
	}
}
