package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Almacen guarda los archivos subidos en disco local. Los nombres
// generados son resistentes a colisiones (timestamp + uuid) y nunca
// dependen del nombre original del cliente.
type Almacen struct {
	Dir string
}

func NuevoAlmacen(dir string) (*Almacen, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("no se pudo crear el directorio de uploads: %w", err)
	}
	return &Almacen{Dir: dir}, nil
}

// Guardar persiste el archivo y devuelve la clave generada (el nombre
// dentro del directorio) y el tamaño escrito.
func (a *Almacen) Guardar(fh *multipart.FileHeader) (string, int64, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("file-%d-%s%s", time.Now().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", ""), ext)

	src, err := fh.Open()
	if err != nil {
		return "", 0, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(a.Dir, key))
	if err != nil {
		return "", 0, err
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(filepath.Join(a.Dir, key))
		return "", 0, err
	}
	return key, written, nil
}

// Checksum calcula el SHA-256 del archivo guardado, en streaming.
func (a *Almacen) Checksum(key string) (string, error) {
	f, err := os.Open(filepath.Join(a.Dir, key))
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (a *Almacen) Eliminar(key string) error {
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(a.Dir, key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (a *Almacen) Existe(key string) bool {
	if key == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(a.Dir, key))
	return err == nil
}

// RutaRelativa devuelve la ruta pública que se guarda en el documento.
func (a *Almacen) RutaRelativa(key string) string {
	return "uploads/" + key
}
