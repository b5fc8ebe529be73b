package cron

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/icei-ads/portal-eventos/model"
)

// snapshotMaxAge is how long exported snapshots are kept.
const snapshotMaxAge = 30 * 24 * time.Hour

// ExportSnapshot dumps every portal collection into a single timestamped
// JSON file under the export directory. Runs nightly so an offline copy of
// the database always exists.
func (m *Manager) ExportSnapshot() {
	jobName := "export_snapshot"

	snapshot := make(map[string]interface{})

	var eventos []model.Evento
	if err := m.db.Preload("OdsAssociadas").Preload("Anexos").Find(&eventos).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query eventos: %w", err))
		return
	}
	snapshot["eventos"] = eventos

	var usuarios []model.Usuario
	if err := m.db.Find(&usuarios).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query usuarios: %w", err))
		return
	}
	resumos := make([]model.UsuarioResumo, len(usuarios))
	for i := range usuarios {
		resumos[i] = usuarios[i].Resumo()
	}
	snapshot["usuarios"] = resumos

	var professores []model.ProfessorCoordenador
	if err := m.db.Find(&professores).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query professores: %w", err))
		return
	}
	snapshot["professores"] = professores

	var pesquisa []model.ProjetoPesquisa
	if err := m.db.Find(&pesquisa).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query projetos de pesquisa: %w", err))
		return
	}
	snapshot["projetosPesquisa"] = pesquisa

	var extensao []model.ProjetoExtensao
	if err := m.db.Find(&extensao).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query projetos de extensão: %w", err))
		return
	}
	snapshot["projetosExtensao"] = extensao

	var materias []model.Materia
	if err := m.db.Find(&materias).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query matérias: %w", err))
		return
	}
	snapshot["materias"] = materias

	if err := os.MkdirAll(m.exportDir, 0o755); err != nil {
		m.logJobError(jobName, err)
		return
	}

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		m.logJobError(jobName, err)
		return
	}

	name := fmt.Sprintf("snapshot-%s-%s.json",
		time.Now().Format("2006-01-02"), uuid.New().String()[:8])
	path := filepath.Join(m.exportDir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		m.logJobError(jobName, err)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("snapshot written to %s", path))
}

// CleanupOldSnapshots removes snapshot files older than snapshotMaxAge.
func (m *Manager) CleanupOldSnapshots() {
	jobName := "cleanup_snapshots"

	entries, err := os.ReadDir(m.exportDir)
	if err != nil {
		if os.IsNotExist(err) {
			m.logJobComplete(jobName, "No export directory yet")
			return
		}
		m.logJobError(jobName, err)
		return
	}

	cutoff := time.Now().Add(-snapshotMaxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "snapshot-") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(m.exportDir, entry.Name())); err == nil {
			removed++
		}
	}

	m.logJobComplete(jobName, fmt.Sprintf("%d old snapshots removed", removed))
}
