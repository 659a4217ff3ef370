package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
)

func archivoDePrueba(t *testing.T, nombre, mime, contenido string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+nombre+`"`)
	h.Set("Content-Type", mime)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(contenido)); err != nil {
		t.Fatal(err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestAlmacenGuardar(t *testing.T) {
	almacen, err := NuevoAlmacen(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	contenido := "contenido del documento de prueba"
	fh := archivoDePrueba(t, "informe.pdf", "application/pdf", contenido)

	key, size, err := almacen.Guardar(fh)
	if err != nil {
		t.Fatal(err)
	}
	if size != int64(len(contenido)) {
		t.Errorf("size = %d, esperado %d", size, len(contenido))
	}
	if !strings.HasPrefix(key, "file-") || !strings.HasSuffix(key, ".pdf") {
		t.Errorf("key inesperada: %q", key)
	}
	if !almacen.Existe(key) {
		t.Error("el archivo guardado no existe en disco")
	}
	if got, want := almacen.RutaRelativa(key), "uploads/"+key; got != want {
		t.Errorf("ruta = %q, esperado %q", got, want)
	}
}

func TestAlmacenChecksum(t *testing.T) {
	almacen, err := NuevoAlmacen(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	contenido := "checksum estable"
	fh := archivoDePrueba(t, "acta.pdf", "application/pdf", contenido)
	key, _, err := almacen.Guardar(fh)
	if err != nil {
		t.Fatal(err)
	}

	got, err := almacen.Checksum(key)
	if err != nil {
		t.Fatal(err)
	}
	suma := sha256.Sum256([]byte(contenido))
	if want := hex.EncodeToString(suma[:]); got != want {
		t.Errorf("checksum = %s, esperado %s", got, want)
	}
}

func TestAlmacenEliminar(t *testing.T) {
	almacen, err := NuevoAlmacen(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fh := archivoDePrueba(t, "borrar.pdf", "application/pdf", "x")
	key, _, err := almacen.Guardar(fh)
	if err != nil {
		t.Fatal(err)
	}

	if err := almacen.Eliminar(key); err != nil {
		t.Fatal(err)
	}
	if almacen.Existe(key) {
		t.Error("el archivo sigue existiendo tras Eliminar")
	}
	// Eliminar es idempotente.
	if err := almacen.Eliminar(key); err != nil {
		t.Errorf("segunda eliminación: %v", err)
	}
	if err := almacen.Eliminar(""); err != nil {
		t.Errorf("key vacía: %v", err)
	}
}

func TestAlmacenNombresUnicos(t *testing.T) {
	almacen, err := NuevoAlmacen(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fh := archivoDePrueba(t, "mismo.pdf", "application/pdf", "x")

	vistos := map[string]bool{}
	for i := 0; i < 5; i++ {
		key, _, err := almacen.Guardar(fh)
		if err != nil {
			t.Fatal(err)
		}
		if vistos[key] {
			t.Fatalf("key repetida: %s", key)
		}
		vistos[key] = true
	}
}
