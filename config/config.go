package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ThanapatNon/FOODMOOD/models"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Mongo is the profile document store client; nil when MONGO_URI is unset
// (the sync job is simply not started in that case).
var Mongo *mongo.Client

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Ingredient{},
		&models.FoodIngredient{},
		&models.Allergen{},
		&models.MoodEntry{},
		&models.FoodSuggestion{},
		&models.Notification{},
		&models.UserEaten{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

func InitMongo() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Printf("MONGO_URI not set, profile sync disabled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to mongo: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Mongo ping failed: %v", err)
	}
	Mongo = client
}

// ProfileCollection returns the source collection for the profile sync.
func ProfileCollection() *mongo.Collection {
	if Mongo == nil {
		return nil
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "foodmood"
	}
	return Mongo.Database(dbName).Collection("users")
}
