package repository

import (
	"github.com/Pranjalsahu8818/healthpredict/internal/app/ds"
)

func (r *Repository) GetActiveDiseases() ([]ds.Disease, error) {
	var diseases []ds.Disease
	err := r.db.Where("is_active = ?", true).Order("name").Find(&diseases).Error
	return diseases, err
}

func (r *Repository) GetActiveSymptoms() ([]ds.Symptom, error) {
	var symptoms []ds.Symptom
	err := r.db.Where("is_active = ?", true).Order("name").Find(&symptoms).Error
	return symptoms, err
}

func (r *Repository) SearchSymptoms(query string) ([]ds.Symptom, error) {
	var symptoms []ds.Symptom
	err := r.db.Where("is_active = ? AND LOWER(name) LIKE ?", true, "%"+query+"%").
		Order("name").Find(&symptoms).Error
	return symptoms, err
}

func (r *Repository) UpsertDisease(d *ds.Disease) error {
	var existing ds.Disease
	err := r.db.Where("name = ?", d.Name).First(&existing).Error
	if err == nil {
		d.ID = existing.ID
		return r.db.Model(&existing).Updates(d).Error
	}
	return r.db.Create(d).Error
}

func (r *Repository) UpsertSymptom(s *ds.Symptom) error {
	var existing ds.Symptom
	err := r.db.Where("name = ?", s.Name).First(&existing).Error
	if err == nil {
		s.ID = existing.ID
		return r.db.Model(&existing).Updates(s).Error
	}
	return r.db.Create(s).Error
}
