package auth_fx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"vitalis/internal/repositories"
	"vitalis/internal/services"
	mem "vitalis/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(provideSettingsRepo, provideSessionStore, provideAuthService),
	fx.Invoke(seedAdminPassword),
)

func provideSettingsRepo(db *gorm.DB) repositories.SettingsRepository {
	return repositories.NewSettingsRepository(db)
}

func provideSessionStore() mem.SessionStore {
	return mem.NewSessions()
}

func provideAuthService(settingsRepo repositories.SettingsRepository, sessions mem.SessionStore) services.AuthServiceInterface {
	return services.NewAuthService(settingsRepo, sessions)
}

func seedAdminPassword(authService services.AuthServiceInterface) {
	if err := authService.EnsureAdminPassword(context.Background()); err != nil {
		log.Printf("Failed to seed admin password: %v", err)
	}
}
