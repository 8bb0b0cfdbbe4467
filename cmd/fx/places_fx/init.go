package places_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelmate/internal/repositories"
	"travelmate/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository, logger *zap.SugaredLogger) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, logger)
}
