package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Prediction is one stored engine result. Rows are immutable after create
// and removed only when the owning user account is deleted.
type Prediction struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Symptoms          datatypes.JSON `gorm:"not null" json:"symptoms"`
	AdditionalInfo    string         `gorm:"type:text" json:"additional_info"`
	PredictedDiseases datatypes.JSON `gorm:"not null" json:"predicted_diseases"`
	ConfidenceScore   float64        `gorm:"not null" json:"confidence_score"`
	RiskLevel         string         `gorm:"type:varchar(10);not null" json:"risk_level"`
	CreatedAt         time.Time      `gorm:"not null" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Prediction) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
