package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/khoahotran/cvos/adapters/persistence"
	"github.com/khoahotran/cvos/internal/application/usecase/wizard"
	"github.com/khoahotran/cvos/internal/config"
	"github.com/khoahotran/cvos/internal/domain/profile"
	"github.com/khoahotran/cvos/pkg/auth"
	"github.com/khoahotran/cvos/pkg/logger"
)

// Seeds a demo profile for OWNER_EMAIL and prints a session token for it.
func main() {
	fmt.Println("seeding owner profile...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	email := os.Getenv("OWNER_EMAIL")
	if email == "" {
		log.Fatal("OWNER_EMAIL is required")
	}

	ctx := context.Background()
	appLogger := logger.NewZapLogger(cfg.App.Env)
	kv, closeStore, err := persistence.NewStore(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot open store: %v", err)
	}
	defer closeStore()

	ownerID := auth.OwnerIDForEmail(email)
	ctrl, err := wizard.NewRegistry(kv, profile.UUIDGenerator{}, cfg.Store.Timeout, appLogger).Controller(ctx, ownerID)
	if err != nil {
		log.Fatalf("cannot load owner profile: %v", err)
	}

	fields := map[profile.Field]string{
		profile.FieldFullName: "Demo Owner",
		profile.FieldTitle:    "Software Engineer",
		profile.FieldEmail:    email,
		profile.FieldSummary:  "Builds reliable backend services.",
		profile.FieldSkills:   "Go, PostgreSQL, Kafka",
	}
	for f, v := range fields {
		if err := ctrl.SetField(ctx, f, v); err != nil {
			log.Fatalf("cannot set %s: %v", f, err)
		}
	}
	id, err := ctrl.AddExperience(ctx)
	if err != nil {
		log.Fatalf("cannot add experience: %v", err)
	}
	for f, v := range map[profile.EntryField]string{
		profile.EntryCompany:   "Acme",
		profile.EntryPosition:  "Backend Engineer",
		profile.EntryStartDate: "2021",
	} {
		if err := ctrl.UpdateExperience(ctx, id, f, v); err != nil {
			log.Fatalf("cannot update experience: %v", err)
		}
	}

	token, err := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan).GenerateToken(ownerID, email)
	if err != nil {
		log.Fatalf("cannot issue token: %v", err)
	}

	fmt.Printf("seeded owner '%s' (%s)\n", email, ownerID)
	fmt.Printf("token: %s\n", token)
}
