package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrRegistroNaoEncontrado is returned when an id is absent from a collection.
var ErrRegistroNaoEncontrado = errors.New("registro não encontrado")

// TiposOffline are the collections the offline store knows about.
var TiposOffline = []string{"professores", "projetosPesquisa", "projetosExtensao", "materias"}

// Registro is one loosely-typed row of an offline collection.
type Registro map[string]interface{}

// ID reads the record's integer id. JSON numbers decode as float64.
func (r Registro) ID() int {
	switch v := r["id"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// FileStore persists collections as flat JSON files, one per type, separate
// from the relational database. It backs the offline CLI.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(tipo string) string {
	return filepath.Join(s.dir, tipo+".json")
}

// Load reads a collection. A missing file is an empty collection.
func (s *FileStore) Load(tipo string) ([]Registro, error) {
	raw, err := os.ReadFile(s.path(tipo))
	if err != nil {
		if os.IsNotExist(err) {
			return []Registro{}, nil
		}
		return nil, err
	}

	var data []Registro
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// Save writes a collection back to its file.
func (s *FileStore) Save(tipo string, data []Registro) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(tipo), raw, 0o644)
}

// Add appends a record, assigning id = max(existing ids) + 1.
func (s *FileStore) Add(tipo string, item Registro) (Registro, error) {
	data, err := s.Load(tipo)
	if err != nil {
		return nil, err
	}

	maxID := 0
	for _, r := range data {
		if id := r.ID(); id > maxID {
			maxID = id
		}
	}
	item["id"] = maxID + 1

	data = append(data, item)
	if err := s.Save(tipo, data); err != nil {
		return nil, err
	}
	return item, nil
}

// Update merges the given fields over the record with the given id. The id
// itself cannot be overwritten.
func (s *FileStore) Update(tipo string, id int, updates Registro) (Registro, error) {
	data, err := s.Load(tipo)
	if err != nil {
		return nil, err
	}

	for i, r := range data {
		if r.ID() != id {
			continue
		}
		for k, v := range updates {
			r[k] = v
		}
		r["id"] = id
		data[i] = r
		if err := s.Save(tipo, data); err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, ErrRegistroNaoEncontrado
}

// Delete removes the record with the given id.
func (s *FileStore) Delete(tipo string, id int) error {
	data, err := s.Load(tipo)
	if err != nil {
		return err
	}

	filtered := make([]Registro, 0, len(data))
	for _, r := range data {
		if r.ID() != id {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == len(data) {
		return ErrRegistroNaoEncontrado
	}
	return s.Save(tipo, filtered)
}

// Clear empties a collection.
func (s *FileStore) Clear(tipo string) error {
	return s.Save(tipo, []Registro{})
}

// Export writes one collection to <exportDir>/<tipo>-export.json and returns
// the file path.
func (s *FileStore) Export(tipo string, exportDir string) (string, error) {
	data, err := s.Load(tipo)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return "", err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(exportDir, tipo+"-export.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ExportAll writes every collection into a single timestamped snapshot file
// and returns its path.
func (s *FileStore) ExportAll(exportDir string, tipos []string) (string, error) {
	exported := make(map[string][]Registro, len(tipos))
	for _, tipo := range tipos {
		data, err := s.Load(tipo)
		if err != nil {
			return "", err
		}
		exported[tipo] = data
	}

	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return "", err
	}

	raw, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(exportDir, fmt.Sprintf("export-%s.json", time.Now().Format("2006-01-02T15-04-05")))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
