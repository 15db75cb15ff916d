package repository

import (
	"github.com/google/uuid"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/ds"
)

func (r *Repository) CreateContactMessage(m *ds.ContactMessage) error {
	return r.db.Create(m).Error
}

func (r *Repository) MarkContactMessageNotified(id uuid.UUID) error {
	return r.db.Model(&ds.ContactMessage{}).Where("id = ?", id).
		Update("notified", true).Error
}

func (r *Repository) ListContactMessages(limit, offset int) ([]ds.ContactMessage, error) {
	var msgs []ds.ContactMessage
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&msgs).Error
	return msgs, err
}
