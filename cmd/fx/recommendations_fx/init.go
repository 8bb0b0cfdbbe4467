package recommendations_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelmate/internal/repositories"
	"travelmate/internal/services"
)

var Module = fx.Provide(
	provideRecommendationRepo, provideRecommendationService)

func provideRecommendationRepo(db *gorm.DB) repositories.RecommendationRepository {
	return repositories.NewRecommendationRepository(db)
}

func provideRecommendationService(
	recommendationRepo repositories.RecommendationRepository,
	behaviorRepo repositories.BehaviorRepository,
	logger *zap.SugaredLogger,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(recommendationRepo, behaviorRepo, logger)
}
