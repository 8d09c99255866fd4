package repository

import (
	"errors"

	"or-control-backend/internal/models"

	"gorm.io/gorm"
)

type DisplayKeyRepository struct {
	db *gorm.DB
}

func NewDisplayKeyRepo(db *gorm.DB) *DisplayKeyRepository {
	return &DisplayKeyRepository{db: db}
}

// CreateKey stores a new display key record
func (r *DisplayKeyRepository) CreateKey(key *models.DisplayKey) error {
	return r.db.Create(key).Error
}

// GetKeyByID retrieves a single display key
func (r *DisplayKeyRepository) GetKeyByID(id uint) (*models.DisplayKey, error) {
	var key models.DisplayKey
	err := r.db.First(&key, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("display key not found")
		}
		return nil, err
	}
	return &key, nil
}

// GetActiveKeys retrieves all active display keys
func (r *DisplayKeyRepository) GetActiveKeys() ([]models.DisplayKey, error) {
	var keys []models.DisplayKey
	err := r.db.Where("is_active = ?", true).Find(&keys).Error
	return keys, err
}

// GetAllKeys retrieves every display key, newest first
func (r *DisplayKeyRepository) GetAllKeys() ([]models.DisplayKey, error) {
	var keys []models.DisplayKey
	err := r.db.Order("created_at DESC").Find(&keys).Error
	return keys, err
}

// DeactivateKey revokes a display key
func (r *DisplayKeyRepository) DeactivateKey(id uint) error {
	return r.db.Model(&models.DisplayKey{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
