package quiz_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelmate/internal/repositories"
	"travelmate/internal/services"
)

var Module = fx.Provide(
	provideQuizRepo, provideQuizService)

func provideQuizRepo(db *gorm.DB) repositories.QuizRepository {
	return repositories.NewQuizRepository(db)
}

func provideQuizService(quizRepo repositories.QuizRepository, userRepo repositories.UserRepository, logger *zap.SugaredLogger) services.QuizServiceInterface {
	return services.NewQuizService(quizRepo, userRepo, logger)
}
