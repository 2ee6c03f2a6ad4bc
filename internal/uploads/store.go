// Package uploads stores research documents on disk under server-assigned
// identifiers. The stored filename is the file id that later generation
// requests reference; files are never deleted by this core.
package uploads

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/uxrlab/uxr-backend/internal/apperr"
)

type Store struct {
	dir      string
	maxBytes int64
}

// NewStore ensures the upload directory exists and returns a store over it.
func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) MaxBytes() int64 { return s.maxBytes }

// NewID assigns a fresh identifier for a file, keeping the original
// extension so the extractor can dispatch on it.
func (s *Store) NewID(originalName string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
}

// Path returns the on-disk location for a file id.
func (s *Store) Path(id string) string {
	return filepath.Join(s.dir, id)
}

// Resolve maps a file id to its on-disk path, failing with FileNotFound for
// unknown ids. Ids naming anything outside the upload directory are treated
// as unknown.
func (s *Store) Resolve(id string) (string, error) {
	if id == "" || filepath.Base(id) != id {
		return "", apperr.Newf(apperr.CodeFileNotFound, "File not found: %s", id)
	}
	path := s.Path(id)
	if _, err := os.Stat(path); err != nil {
		return "", apperr.Newf(apperr.CodeFileNotFound, "File not found: %s", id)
	}
	return path, nil
}

// HumanSize renders a byte count the way the UI shows it (e.g. "1.5 MB").
func HumanSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	value := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizes[i]
}
