package chat_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelmate/internal/repositories"
	"travelmate/internal/services"
)

var Module = fx.Provide(
	provideChatRepo, provideChatService)

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideChatService(chatRepo repositories.ChatRepository, userRepo repositories.UserRepository, logger *zap.SugaredLogger) services.ChatServiceInterface {
	return services.NewChatService(chatRepo, userRepo, logger)
}
