package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume is a saved structured resume as built or optimized by the user.
// Template and AccentColor select the visual template on the client side;
// rendering happens outside this service.
type Resume struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserEmail         string            `gorm:"type:text;index" json:"user_email"`
	FullName          string            `gorm:"type:text;not null" json:"fullName"`
	ProfessionalTitle string            `gorm:"type:text" json:"professionalTitle"`
	Email             string            `gorm:"type:text" json:"email"`
	Phone             string            `gorm:"type:text" json:"phone"`
	Location          string            `gorm:"type:text" json:"location"`
	Linkedin          string            `gorm:"type:text" json:"linkedin"`
	Github            string            `gorm:"type:text" json:"github"`
	Summary           string            `gorm:"type:text" json:"summary"`
	Experience        []ExperienceEntry `gorm:"serializer:json" json:"experience"`
	Education         []EducationEntry  `gorm:"serializer:json" json:"education"`
	Skills            string            `gorm:"type:text" json:"skills"`
	Languages         string            `gorm:"type:text" json:"languages"`
	Certifications    string            `gorm:"type:text" json:"certifications"`
	Template          string            `gorm:"type:text" json:"template"`
	AccentColor       string            `gorm:"type:text" json:"accentColor"`
	CreatedAt         time.Time         `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Resume) TableName() string {
	return "resumes"
}
