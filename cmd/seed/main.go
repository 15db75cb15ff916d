package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/ds"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/dsn"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/prediction"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/repository"
)

func main() {
	_ = godotenv.Load()

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect database:", err)
		os.Exit(1)
	}

	for _, info := range prediction.Diseases() {
		treatments, err := json.Marshal(info.Actions)
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal treatments:", err)
			os.Exit(1)
		}
		d := &ds.Disease{
			Name:        info.DisplayName,
			Description: info.Description,
			Severity:    info.Severity,
			Treatments:  datatypes.JSON(treatments),
			IsActive:    true,
		}
		if err := repo.UpsertDisease(d); err != nil {
			fmt.Fprintln(os.Stderr, "seed disease:", err)
			os.Exit(1)
		}
		fmt.Printf("seeded disease: %s\n", d.Name)
	}

	keys := prediction.KnownSymptomKeys()
	sort.Strings(keys)
	for _, key := range keys {
		s := &ds.Symptom{Name: key, IsActive: true}
		if err := repo.UpsertSymptom(s); err != nil {
			fmt.Fprintln(os.Stderr, "seed symptom:", err)
			os.Exit(1)
		}
	}
	fmt.Printf("seeded %d symptoms\n", len(keys))

	seedAdmin(repo)

	fmt.Println("seeding complete")
}

func seedAdmin(repo *repository.Repository) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin user")
		return
	}

	if existing, err := repo.GetUserByEmail(email); err == nil && existing != nil {
		fmt.Printf("admin user already exists: %s\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash admin password:", err)
		os.Exit(1)
	}

	admin := &ds.User{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         ds.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.CreateUser(admin); err != nil {
		fmt.Fprintln(os.Stderr, "create admin user:", err)
		os.Exit(1)
	}
	fmt.Printf("created admin user: %s\n", email)
}
