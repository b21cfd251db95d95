package main

import (
	"context"
	"log"
	"os"
	"time"

	"ogiri-game-be/internal/entity"
	"ogiri-game-be/internal/repository/unitofwork"
	"ogiri-game-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a couple of topics so the game board is not empty on a fresh install.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	topics := []string{
		"AIが人間に勝ったときの一言",
		"最強の乗り物の名前とその特徴",
		"好きな色は？",
	}

	for _, content := range topics {
		topic := entity.Topic{
			Id:        uuid.New(),
			Content:   content,
			IsActive:  true,
			CreatedAt: time.Now(),
		}
		if err := uow.TopicRepository().Create(ctx, &topic); err != nil {
			log.Fatalf("Error: Failed to seed topic %q: %v", content, err)
		}
		log.Printf("Seeded topic: %s", content)
	}

	log.Println("Success: Seeding completed.")
}
