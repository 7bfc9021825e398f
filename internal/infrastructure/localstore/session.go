// Package localstore persiste la sesión en disco, el equivalente del
// localStorage del navegador: una sola clave durable con el registro de
// identidad serializado, que sobrevive reinicios y se borra en logout.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/gestion-cli/internal/application/ports"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
	"github.com/jhoicas/gestion-cli/pkg/logger"
)

// Verificar en tiempo de compilación que Store implementa el puerto.
var _ ports.SessionStore = (*Store)(nil)

// storedSession forma en disco: identidad más la cookie del backend.
type storedSession struct {
	Session entity.Session `json:"session"`
	Cookie  string         `json:"cookie,omitempty"`
	SavedAt time.Time      `json:"saved_at"`
}

// Store session store respaldado por un archivo JSON. Sin llamadas de red.
type Store struct {
	path string
	log  *logger.Logger
}

// NewStore construye el store sobre la ruta dada.
func NewStore(path string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{path: path, log: log}
}

// Save persiste la identidad y la cookie. Escritura atómica (archivo
// temporal + rename) con permisos solo del usuario: el archivo contiene
// la credencial de sesión.
func (s *Store) Save(sess entity.Session, cookie string) error {
	raw, err := json.MarshalIndent(storedSession{
		Session: sess,
		Cookie:  cookie,
		SavedAt: time.Now(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("session: serializar: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: crear directorio: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("session: escribir: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session: publicar: %w", err)
	}
	return nil
}

// Load devuelve la sesión persistida, o ok == false si no hay (estado
// "ausente" explícito, no un error). Un archivo corrupto se trata como
// ausente y se reporta en el log.
func (s *Store) Load() (*entity.Session, string, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Str("path", s.path).Err(err).Msg("session: no se pudo leer")
		}
		return nil, "", false
	}
	var stored storedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.Warn().Str("path", s.path).Err(err).Msg("session: archivo corrupto, se ignora")
		return nil, "", false
	}
	if stored.Session.ID == "" {
		return nil, "", false
	}
	sess := stored.Session
	return &sess, stored.Cookie, true
}

// Clear elimina la sesión persistida. Que no exista no es un error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: eliminar: %w", err)
	}
	return nil
}
