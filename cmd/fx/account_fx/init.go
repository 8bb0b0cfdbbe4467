package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelmate/internal/repositories"
	"travelmate/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, logger *zap.SugaredLogger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, logger)
}
