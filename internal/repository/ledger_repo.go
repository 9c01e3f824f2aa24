package repository

import (
	"fmt"
	"strings"

	"recall-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerRepository executes rendered ledger lookup queries against the
// reporting database and mints a shareable permalink per execution.
type LedgerRepository struct {
	db            *gorm.DB
	permalinkBase string
}

func NewLedgerRepository(db *gorm.DB, permalinkBase string) *LedgerRepository {
	return &LedgerRepository{
		db:            db,
		permalinkBase: strings.TrimRight(permalinkBase, "/"),
	}
}

// Expose DB if needed
func (r *LedgerRepository) DB() *gorm.DB {
	return r.db
}

// Execute runs the query and returns the matching rows together with a
// permalink for the execution. Zero rows is a valid result, not an error.
func (r *LedgerRepository) Execute(query string) ([]models.LedgerRecord, string, error) {
	var rows []models.LedgerRecord
	if err := r.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, "", fmt.Errorf("executing ledger query: %w", err)
	}
	permalink := fmt.Sprintf("%s/queries/%s", r.permalinkBase, uuid.New())
	return rows, permalink, nil
}
