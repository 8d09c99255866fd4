package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"or-control-backend/internal/models"
	"or-control-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type DisplayKeyService struct {
	keyRepo   *repository.DisplayKeyRepository
	auditRepo *repository.AuditRepository
}

func NewDisplayKeyService(keyRepo *repository.DisplayKeyRepository, auditRepo *repository.AuditRepository) *DisplayKeyService {
	return &DisplayKeyService{
		keyRepo:   keyRepo,
		auditRepo: auditRepo,
	}
}

// GenerateKey creates a new display panel key.
// Returns the plain-text key (only shown once) and stores the hashed version.
func (s *DisplayKeyService) GenerateKey(label string, expiresAt *time.Time, userID *uint) (*models.DisplayKeyResponse, error) {
	keyBytes := make([]byte, 32)
	if _, err := rand.Read(keyBytes); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}
	plainKey := base64.URLEncoding.EncodeToString(keyBytes)

	hashedKey, err := bcrypt.GenerateFromPassword([]byte(plainKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash display key: %w", err)
	}

	key := &models.DisplayKey{
		Label:     label,
		KeyHash:   string(hashedKey),
		ExpiresAt: expiresAt,
		IsActive:  true,
	}
	if err := s.keyRepo.CreateKey(key); err != nil {
		return nil, fmt.Errorf("failed to create display key: %w", err)
	}

	if userID != nil {
		details := fmt.Sprintf("Generated display key %d (%s)", key.ID, label)
		_ = s.auditRepo.CreateAuditLog(userID, "display_key_generate", details)
	}

	return &models.DisplayKeyResponse{
		ID:        key.ID,
		Label:     key.Label,
		Key:       plainKey, // only time the plain key is shown
		CreatedAt: key.CreatedAt,
		ExpiresAt: key.ExpiresAt,
		IsActive:  key.IsActive,
	}, nil
}

// ValidateKey checks a plain-text panel key against all active stored hashes
func (s *DisplayKeyService) ValidateKey(plainKey string) error {
	if plainKey == "" {
		return errors.New("display key is required")
	}

	keys, err := s.keyRepo.GetActiveKeys()
	if err != nil {
		return err
	}

	now := time.Now()
	for _, key := range keys {
		if key.ExpiresAt != nil && key.ExpiresAt.Before(now) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(key.KeyHash), []byte(plainKey)) == nil {
			return nil
		}
	}
	return errors.New("invalid display key")
}

// ListKeys retrieves all display keys, without plain-text material
func (s *DisplayKeyService) ListKeys() ([]models.DisplayKeyResponse, error) {
	keys, err := s.keyRepo.GetAllKeys()
	if err != nil {
		return nil, err
	}

	responses := make([]models.DisplayKeyResponse, len(keys))
	for i, key := range keys {
		responses[i] = models.DisplayKeyResponse{
			ID:        key.ID,
			Label:     key.Label,
			CreatedAt: key.CreatedAt,
			ExpiresAt: key.ExpiresAt,
			IsActive:  key.IsActive,
		}
	}
	return responses, nil
}

// RevokeKey deactivates a display key
func (s *DisplayKeyService) RevokeKey(keyID uint, userID *uint) error {
	key, err := s.keyRepo.GetKeyByID(keyID)
	if err != nil {
		return err
	}

	if err := s.keyRepo.DeactivateKey(key.ID); err != nil {
		return fmt.Errorf("failed to revoke display key: %w", err)
	}

	details := fmt.Sprintf("Revoked display key %d (%s)", key.ID, key.Label)
	_ = s.auditRepo.CreateAuditLog(userID, "display_key_revoke", details)
	return nil
}
