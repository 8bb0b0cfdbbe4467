package controllers_fx

import (
	"go.uber.org/fx"
	"travelmate/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewRecommendationsController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewBehaviorController),
	fx.Provide(controllers.NewPlacesController))
