package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/ds"
)

func (r *Repository) GetUserByID(id uuid.UUID) (*ds.User, error) {
	var u ds.User
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetUserByEmail(email string) (*ds.User, error) {
	var u ds.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) CreateUser(u *ds.User) error {
	return r.db.Create(u).Error
}

func (r *Repository) UpdateUser(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&ds.User{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteUser removes the account together with its predictions.
func (r *Repository) DeleteUser(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&ds.Prediction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&ds.User{}).Error
	})
}

func (r *Repository) ListUsers(limit, offset int) ([]ds.User, error) {
	var users []ds.User
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, err
}

func (r *Repository) CountUsers() (int64, error) {
	var n int64
	err := r.db.Model(&ds.User{}).Count(&n).Error
	return n, err
}

func (r *Repository) CountActiveUsers() (int64, error) {
	var n int64
	err := r.db.Model(&ds.User{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (r *Repository) CountUsersCreatedSince(since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&ds.User{}).Where("created_at >= ?", since).Count(&n).Error
	return n, err
}
