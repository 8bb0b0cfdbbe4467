package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelmate/internal/repositories"
	"travelmate/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	userRepo repositories.UserRepository,
	logger *zap.SugaredLogger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, userRepo, logger)
}
