package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"ashgrove-backend/internal/adapter/repository/postgres"
	"ashgrove-backend/internal/config"
	"ashgrove-backend/internal/domain/user"
	"ashgrove-backend/internal/infrastructure/db"
	"ashgrove-backend/internal/usecase/auth"
)

func main() {
	email := flag.String("email", "", "email address for the new account")
	password := flag.String("password", "", "initial password")
	roles := flag.String("roles", user.RoleAdmin, "comma-separated roles (admin, editor, viewer)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.Load()
	gdb, err := db.OpenGorm(cfg.Database.URL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	uc := auth.NewUsecase(postgres.NewUserRepository(gdb), &cfg.Auth)
	acct, err := uc.CreateUser(context.Background(), *email, *password, strings.Split(*roles, ","))
	if err != nil {
		log.Fatalf("create user: %v", err)
	}
	log.Printf("created user %d (%s) with roles %s", acct.ID, acct.Email, acct.Roles)
}
