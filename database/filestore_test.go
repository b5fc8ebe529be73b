package database

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreAddAssignsNextID(t *testing.T) {
	s := NewFileStore(t.TempDir())

	first, err := s.Add("professores", Registro{"nome": "Prof. Ana"})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID() != 1 {
		t.Errorf("first id = %d, want 1", first.ID())
	}

	second, err := s.Add("professores", Registro{"nome": "Prof. Carlos"})
	if err != nil {
		t.Fatal(err)
	}
	if second.ID() != 2 {
		t.Errorf("second id = %d, want 2", second.ID())
	}

	// Ids restart from max+1, not from count: delete the last record and
	// the freed id is reused.
	if err := s.Delete("professores", 2); err != nil {
		t.Fatal(err)
	}
	third, err := s.Add("professores", Registro{"nome": "Prof. Júlia"})
	if err != nil {
		t.Fatal(err)
	}
	if third.ID() != 2 {
		t.Errorf("id after delete = %d, want 2", third.ID())
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	s := NewFileStore(t.TempDir())
	data, err := s.Load("materias")
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("missing file should load as empty collection, got %v", data)
	}
}

func TestFileStoreUpdateMergesFields(t *testing.T) {
	s := NewFileStore(t.TempDir())
	if _, err := s.Add("materias", Registro{"nome": "ADS", "descricao": "antiga"}); err != nil {
		t.Fatal(err)
	}

	updated, err := s.Update("materias", 1, Registro{"descricao": "nova", "id": 99})
	if err != nil {
		t.Fatal(err)
	}
	if updated["nome"] != "ADS" || updated["descricao"] != "nova" {
		t.Errorf("update must merge over existing fields, got %v", updated)
	}
	if updated.ID() != 1 {
		t.Errorf("id must not be overwritten, got %d", updated.ID())
	}

	if _, err := s.Update("materias", 42, Registro{"x": 1}); !errors.Is(err, ErrRegistroNaoEncontrado) {
		t.Errorf("update of absent id: got %v, want ErrRegistroNaoEncontrado", err)
	}
}

func TestFileStoreDeleteAbsent(t *testing.T) {
	s := NewFileStore(t.TempDir())
	if err := s.Clear("professores"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("professores", 7); !errors.Is(err, ErrRegistroNaoEncontrado) {
		t.Errorf("delete of absent id: got %v, want ErrRegistroNaoEncontrado", err)
	}
}

func TestFileStoreExportAll(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "data"))
	if _, err := s.Add("professores", Registro{"nome": "Prof. Ana"}); err != nil {
		t.Fatal(err)
	}

	path, err := s.ExportAll(filepath.Join(dir, "export"), TiposOffline)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var exported map[string][]Registro
	if err := json.Unmarshal(raw, &exported); err != nil {
		t.Fatal(err)
	}
	if len(exported["professores"]) != 1 {
		t.Errorf("export carries %d professores, want 1", len(exported["professores"]))
	}
	// Every known type appears in the snapshot, empty or not.
	for _, tipo := range TiposOffline {
		if _, ok := exported[tipo]; !ok {
			t.Errorf("snapshot missing collection %q", tipo)
		}
	}
}
