package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/ds"
)

func (r *Repository) CreatePrediction(p *ds.Prediction) error {
	return r.db.Create(p).Error
}

// GetPredictionByID returns the prediction only if it belongs to userID.
func (r *Repository) GetPredictionByID(id, userID uuid.UUID) (*ds.Prediction, error) {
	var p ds.Prediction
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListPredictionsByUser(userID uuid.UUID, limit, offset int) ([]ds.Prediction, error) {
	var preds []ds.Prediction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&preds).Error
	return preds, err
}

func (r *Repository) ListPredictions(limit, offset int) ([]ds.Prediction, error) {
	var preds []ds.Prediction
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&preds).Error
	return preds, err
}

func (r *Repository) CountPredictionsByUser(userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&ds.Prediction{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *Repository) CountUserPredictionsSince(userID uuid.UUID, since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&ds.Prediction{}).
		Where("user_id = ? AND created_at >= ?", userID, since).Count(&n).Error
	return n, err
}

func (r *Repository) CountUserPredictionsByRisk(userID uuid.UUID, risk string) (int64, error) {
	var n int64
	err := r.db.Model(&ds.Prediction{}).
		Where("user_id = ? AND risk_level = ?", userID, risk).Count(&n).Error
	return n, err
}

func (r *Repository) CountPredictions() (int64, error) {
	var n int64
	err := r.db.Model(&ds.Prediction{}).Count(&n).Error
	return n, err
}

func (r *Repository) CountPredictionsSince(since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&ds.Prediction{}).Where("created_at >= ?", since).Count(&n).Error
	return n, err
}

func (r *Repository) AveragePredictionConfidence() (float64, error) {
	var avg *float64
	err := r.db.Model(&ds.Prediction{}).
		Select("AVG(confidence_score)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

// RiskLevelDistribution counts stored predictions per risk level.
func (r *Repository) RiskLevelDistribution() (map[string]int64, error) {
	type row struct {
		RiskLevel string
		Count     int64
	}
	var rows []row
	err := r.db.Model(&ds.Prediction{}).
		Select("risk_level, COUNT(id) AS count").
		Group("risk_level").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	dist := make(map[string]int64, len(rows))
	for _, rw := range rows {
		dist[rw.RiskLevel] = rw.Count
	}
	return dist, nil
}

func (r *Repository) ListPredictionsSince(since time.Time) ([]ds.Prediction, error) {
	var preds []ds.Prediction
	err := r.db.Where("created_at >= ?", since).Order("created_at DESC").Find(&preds).Error
	return preds, err
}
