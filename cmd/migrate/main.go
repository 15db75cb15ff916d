package main

import (
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/ds"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/dsn"
)

func main() {
	_ = godotenv.Load()
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	// Migrate the schema
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Prediction{},
		&ds.Disease{},
		&ds.Symptom{},
		&ds.ContactMessage{},
	)
	if err != nil {
		panic("cant migrate db")
	}
}
