package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Manager manages all scheduled cron jobs
type Manager struct {
	cron      *cron.Cron
	db        *gorm.DB
	exportDir string
}

// NewManager creates a new cron manager
func NewManager(db *gorm.DB, exportDir string) *Manager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &Manager{
		cron:      c,
		db:        db,
		exportDir: exportDir,
	}
}

// Start starts all cron jobs
func (m *Manager) Start() error {
	log.Println("Starting cron jobs...")

	// Register all jobs
	if err := m.registerJobs(); err != nil {
		return err
	}

	// Start the cron scheduler
	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *Manager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *Manager) registerJobs() error {
	// 1. Daily at 3 AM: Export all collections to a JSON snapshot
	_, err := m.cron.AddFunc("0 0 3 * * *", func() {
		m.logJobStart("export_snapshot")
		m.ExportSnapshot()
	})
	if err != nil {
		return err
	}

	// 2. Weekly on Sunday at 4 AM: Cleanup old snapshots
	_, err = m.cron.AddFunc("0 0 4 * * 0", func() {
		m.logJobStart("cleanup_snapshots")
		m.CleanupOldSnapshots()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

// logJobStart logs the start of a cron job
func (m *Manager) logJobStart(jobName string) {
	log.Printf("[CRON] Starting job: %s at %s", jobName, time.Now().Format(time.RFC3339))
}

// logJobComplete logs successful completion of a cron job
func (m *Manager) logJobComplete(jobName string, message string) {
	log.Printf("[CRON] Completed job: %s - %s", jobName, message)
}

// logJobError logs a failed cron job
func (m *Manager) logJobError(jobName string, err error) {
	log.Printf("[CRON] Job failed: %s - %v", jobName, err)
}
