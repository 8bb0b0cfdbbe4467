package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelmate/cmd/fx/account_fx"
	"travelmate/cmd/fx/behavior_fx"
	"travelmate/cmd/fx/chat_fx"
	"travelmate/cmd/fx/controllers_fx"
	"travelmate/cmd/fx/db_fx"
	"travelmate/cmd/fx/itinerary_fx"
	"travelmate/cmd/fx/location_fx"
	"travelmate/cmd/fx/places_fx"
	"travelmate/cmd/fx/quiz_fx"
	"travelmate/cmd/fx/recommendations_fx"
	"travelmate/internal/api/controllers"
	"travelmate/internal/infra"
	"travelmate/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		location_fx.Module,
		account_fx.Module,
		quiz_fx.Module,
		recommendations_fx.Module,
		itinerary_fx.Module,
		chat_fx.Module,
		behavior_fx.Module,
		places_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedData),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SeedData(db *gorm.DB, logger *zap.SugaredLogger) {
	infra.SeedSampleData(db, logger)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	quizController *controllers.QuizController,
	recommendationsController *controllers.RecommendationsController,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	behaviorController *controllers.BehaviorController,
	placesController *controllers.PlacesController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		quizController,
		recommendationsController,
		itineraryController,
		chatController,
		behaviorController,
		placesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	quizController *controllers.QuizController,
	recommendationsController *controllers.RecommendationsController,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	behaviorController *controllers.BehaviorController,
	placesController *controllers.PlacesController) {

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)

	userGroup := api.Group("/user")
	userGroup.Use(middleware.JWTAuthMiddleware())
	userGroup.GET("/:userId", accountController.GetProfile)
	userGroup.PUT("/:userId/location", accountController.UpdateLocation)
	userGroup.POST("/:userId/travel-dna", quizController.UpdateTravelDNA)

	quizGroup := api.Group("/quiz")
	quizGroup.POST("/response", quizController.SaveResponse)
	quizGroup.POST("/submit", quizController.SubmitQuiz)
	quizGroup.GET("/responses/:userId", quizController.GetResponses)

	recommendationsGroup := api.Group("/recommendations")
	recommendationsGroup.GET("", recommendationsController.GetRecommendations)
	recommendationsGroup.GET("/crowd-optimized", recommendationsController.GetCrowdOptimized)
	recommendationsGroup.GET("/adaptive/:userId", recommendationsController.GetAdaptive)

	itineraryGroup := api.Group("/itinerary")
	itineraryGroup.GET("/:userId", itineraryController.GetItinerary)
	itineraryGroup.PUT("/:itemId", itineraryController.UpdateItem)

	chatGroup := api.Group("/chat")
	chatGroup.GET("/:userId/history", chatController.GetHistory)
	chatGroup.POST("/message", chatController.SendMessage)
	chatGroup.POST("/personalized/:userId", chatController.PersonalizedResponse)

	behaviorGroup := api.Group("/behavior")
	behaviorGroup.POST("/track", behaviorController.Track)
	behaviorGroup.GET("/:userId/patterns", behaviorController.GetPatterns)

	placesGroup := api.Group("/places")
	placesGroup.GET("/local", placesController.GetLocalPlaces)
	placesGroup.POST("/local", placesController.AddPlace)
	placesGroup.PUT("/:placeId/crowd-data", placesController.UpdateCrowdData)
}
