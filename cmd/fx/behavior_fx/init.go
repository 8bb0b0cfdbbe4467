package behavior_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelmate/internal/repositories"
	"travelmate/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideBehaviorRepo, provideBehaviorTracker, provideBehaviorService),
	fx.Invoke(runBehaviorTracker),
)

func provideBehaviorRepo(db *gorm.DB) repositories.BehaviorRepository {
	return repositories.NewBehaviorRepository(db)
}

func provideBehaviorTracker(
	behaviorRepo repositories.BehaviorRepository,
	location services.LocationProviderInterface,
	logger *zap.SugaredLogger,
) *services.BehaviorTracker {
	return services.NewBehaviorTracker(behaviorRepo, location, logger)
}

func provideBehaviorService(
	behaviorRepo repositories.BehaviorRepository,
	tracker *services.BehaviorTracker,
	logger *zap.SugaredLogger,
) services.BehaviorServiceInterface {
	return services.NewBehaviorService(behaviorRepo, tracker, logger)
}

// runBehaviorTracker ties the flush loop to the app lifecycle; Stop drains
// the queue before shutdown.
func runBehaviorTracker(lc fx.Lifecycle, tracker *services.BehaviorTracker) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			tracker.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			tracker.Stop()
			return nil
		},
	})
}
