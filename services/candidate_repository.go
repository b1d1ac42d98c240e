package services

import (
	"context"
	"errors"

	"recruitment-agency-api/config"
	"recruitment-agency-api/models"

	"gorm.io/gorm"
)

// CandidateRepository is the persistence boundary the reconciliation engine
// writes through. The engine does not care what backs it.
type CandidateRepository interface {
	// ExistingCandidates returns the live records the matcher indexes.
	ExistingCandidates(ctx context.Context) ([]models.CV, error)
	CreateCandidate(ctx context.Context, cv *models.CV) error
	UpdateCandidate(ctx context.Context, cv *models.CV) error
}

type gormCandidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository returns the MySQL-backed repository.
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	if db == nil {
		db = config.DB
	}
	return &gormCandidateRepository{db: db}
}

func (r *gormCandidateRepository) ExistingCandidates(ctx context.Context) ([]models.CV, error) {
	var cvs []models.CV
	if err := r.db.WithContext(ctx).Where("delete_at IS NULL").Find(&cvs).Error; err != nil {
		return nil, err
	}
	return cvs, nil
}

func (r *gormCandidateRepository) CreateCandidate(ctx context.Context, cv *models.CV) error {
	if cv == nil {
		return errors.New("cv is nil")
	}
	return r.db.WithContext(ctx).Create(cv).Error
}

func (r *gormCandidateRepository) UpdateCandidate(ctx context.Context, cv *models.CV) error {
	if cv == nil || cv.ID == 0 {
		return errors.New("cv id is required for update")
	}
	return r.db.WithContext(ctx).Save(cv).Error
}
