// Package tokenstore persiste el bearer token en disco. Es el análogo del
// localStorage del navegador: una sola cadena bajo una clave fija, lo único
// que sobrevive un reinicio del cliente.
package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/medsupply-pro/internal/application/session"
)

var _ session.TokenStore = (*FileStore)(nil)

const (
	appDir   = "medsupply-pro"
	fileName = "token"
)

// FileStore guarda el token en un archivo con permisos 0600.
type FileStore struct {
	path string
}

// New construye el store. path vacío usa <user config dir>/medsupply-pro/token.
func New(path string) (*FileStore, error) {
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("tokenstore: resolver config dir: %w", err)
		}
		path = filepath.Join(base, appDir, fileName)
	}
	return &FileStore{path: path}, nil
}

// Load lee el token persistido; devuelve "" sin error si no existe.
func (s *FileStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore: leer: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Save escribe el token, creando el directorio si hace falta.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("tokenstore: crear directorio: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("tokenstore: escribir: %w", err)
	}
	return nil
}

// Clear elimina el token; borrar un token inexistente no es error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("tokenstore: borrar: %w", err)
	}
	return nil
}
