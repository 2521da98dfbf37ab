package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is one saved match-analysis outcome, kept so users can revisit
// past results.
type Analysis struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobTitle        string    `gorm:"type:text" json:"job_title"`
	MatchScore      int       `gorm:"not null" json:"match_score"`
	MissingKeywords []string  `gorm:"serializer:json" json:"missing_keywords"`
	Summary         string    `gorm:"type:text" json:"summary"`
	Fallback        bool      `gorm:"default:false" json:"fallback"`
	CreatedAt       time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}
