package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Disease struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(100);unique;not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Severity    string         `gorm:"type:varchar(20)" json:"severity"`
	Category    string         `gorm:"type:varchar(100)" json:"category"`
	Treatments  datatypes.JSON `json:"treatments"`
	Prevention  string         `gorm:"type:text" json:"prevention"`
	IsActive    bool           `gorm:"type:boolean;default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (d *Disease) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
