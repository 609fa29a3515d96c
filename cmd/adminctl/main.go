package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"campushub/internal/auth"
	"campushub/internal/config"
	"campushub/internal/constants"
)

// adminctl bootstraps an admin account directly in Postgres. Run it once
// after applying migrations; everything else goes through the API.
func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *email == "" || *name == "" || *password == "" {
		log.Fatal("usage: adminctl -email <email> -name <name> -password <password>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.DatabaseConfigured() {
		log.Fatal("PG_HOST not set; adminctl needs a Postgres backend")
	}

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var id string
	err = db.QueryRow(
		`INSERT INTO users (email, name, role, password_hash) VALUES ($1, $2, $3, $4) RETURNING id`,
		auth.NormalizeEmail(*email), *name, constants.RoleAdmin, hash,
	).Scan(&id)
	if err != nil {
		log.Fatalf("insert admin: %v", err)
	}

	fmt.Println("New admin user:", id)
}
