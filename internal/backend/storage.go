package backend

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage es el object storage de imágenes de producto: sube archivos
// a un bucket en disco y entrega URLs públicas servidas por el router.
type Storage struct {
	dir     string
	baseURL string
}

// NewStorage crea el bucket si no existe. baseURL es el prefijo
// público bajo el que el router sirve el directorio.
func NewStorage(dir, baseURL string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: creating bucket dir: %w", err)
	}
	return &Storage{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *Storage) Dir() string { return s.dir }

// Upload guarda el archivo bajo un nombre único y devuelve su URL
// pública.
func (s *Storage) Upload(filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("storage: creating object: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("storage: writing object: %w", err)
	}
	return s.PublicURL(name), nil
}

// PublicURL arma la URL pública de un objeto ya subido.
func (s *Storage) PublicURL(name string) string {
	return s.baseURL + "/" + name
}
