package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CaseRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CaseID      string    `gorm:"index"`
	Assignee    string
	Disposition string `gorm:"index"`
	Narrative   string
	Query       string
	Permalink   string
	Analysis    string
	Response    string
	Statements  datatypes.JSON
	CreatedAt   time.Time
}
