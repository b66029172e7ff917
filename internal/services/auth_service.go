package services

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"vitalis/internal/models/db_models"
	"vitalis/internal/repositories"
	mem "vitalis/pkg/memcache"
	"vitalis/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(sessionID string)

	// EnsureAdminPassword seeds the stored hash from ADMIN_PASSWORD on
	// first boot so a fresh deploy is immediately usable.
	EnsureAdminPassword(ctx context.Context) error
}

type AuthService struct {
	settingsRepo repositories.SettingsRepository
	sessions     mem.SessionStore
	adminEmail   string
}

func NewAuthService(settingsRepo repositories.SettingsRepository, sessions mem.SessionStore) AuthServiceInterface {
	return &AuthService{
		settingsRepo: settingsRepo,
		sessions:     sessions,
		adminEmail:   os.Getenv("ADMIN_EMAIL"),
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if !strings.EqualFold(email, s.adminEmail) {
		return "", utils.ErrInvalidCredentials
	}

	setting, err := s.settingsRepo.Get(ctx, db_models.SettingKeyAdminPasswordHash)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if setting == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(setting.Value, password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	sessionID := uuid.New()
	token, err := utils.CreateSessionToken(sessionID, "admin")
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	s.sessions.Put(sessionID.String(), email, utils.SessionTTL)

	return token, nil
}

func (s *AuthService) Logout(sessionID string) {
	s.sessions.Revoke(sessionID)
}

func (s *AuthService) EnsureAdminPassword(ctx context.Context) error {
	setting, err := s.settingsRepo.Get(ctx, db_models.SettingKeyAdminPasswordHash)
	if err != nil {
		return err
	}
	if setting != nil {
		return nil
	}

	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		log.Println("ADMIN_PASSWORD not set; admin login disabled until configured")
		return nil
	}

	hash, err := utils.HashPassword(plain)
	if err != nil {
		return err
	}
	return s.settingsRepo.Upsert(ctx, db_models.SettingKeyAdminPasswordHash, hash)
}
