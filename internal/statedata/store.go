// Package statedata persists the per-workflow values the trigger has to
// remember between lifecycle calls: the registered webhook ID and its
// shared secret.
package statedata

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// WebhookState is the stored registration of one workflow's trigger.
type WebhookState struct {
	WorkflowID string `gorm:"primaryKey"`
	WebhookID  string
	Secret     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Store is a small sqlite-backed key/value store keyed by workflow ID.
type Store struct {
	db *gorm.DB
}

// Open opens (and migrates) the state database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening state db %s: %w", path, err)
	}
	if err := db.AutoMigrate(&WebhookState{}); err != nil {
		return nil, fmt.Errorf("migrating state db: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the stored state for a workflow, or nil when none exists.
func (s *Store) Get(workflowID string) (*WebhookState, error) {
	var state WebhookState
	err := s.db.First(&state, "workflow_id = ?", workflowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading webhook state: %w", err)
	}
	return &state, nil
}

// Save upserts the state for a workflow.
func (s *Store) Save(state *WebhookState) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workflow_id"}},
		UpdateAll: true,
	}).Create(state).Error
	if err != nil {
		return fmt.Errorf("saving webhook state: %w", err)
	}
	return nil
}

// Clear removes the stored state for a workflow. Clearing a workflow that
// has no state is not an error.
func (s *Store) Clear(workflowID string) error {
	if err := s.db.Delete(&WebhookState{}, "workflow_id = ?", workflowID).Error; err != nil {
		return fmt.Errorf("clearing webhook state: %w", err)
	}
	return nil
}
