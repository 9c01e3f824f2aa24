package repository

import (
	"recall-reconciliation-backend/internal/models"

	"gorm.io/gorm"
)

type CaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

func (r *CaseRepository) Create(rec *models.CaseRecord) error {
	return r.db.Create(rec).Error
}

// GetByID fetch a single processed case by ID
func (r *CaseRepository) GetByID(id string) (*models.CaseRecord, error) {
	var rec models.CaseRecord
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns recent cases, newest first, with an optional disposition
// filter.
func (r *CaseRepository) List(disposition string, limit int) ([]models.CaseRecord, error) {
	var recs []models.CaseRecord

	query := r.db.Order("created_at DESC").Limit(limit)
	if disposition != "" && disposition != "all" {
		query = query.Where("disposition = ?", disposition)
	}

	err := query.Find(&recs).Error
	return recs, err
}
