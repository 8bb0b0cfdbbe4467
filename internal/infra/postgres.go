package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"

	"travelmate/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.User{},
		&db_models.QuizResponse{},
		&db_models.Recommendation{},
		&db_models.ItineraryItem{},
		&db_models.ChatMessage{},
		&db_models.UserBehavior{},
		&db_models.LocalPlace{},
	); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
