package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/limbo/stepcount/internal/repository"
	"github.com/limbo/stepcount/pkg/config"
	"github.com/pressly/goose"
)

// Usage: migrate [up|down|status|version|redo], "up" by default.
func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	db, err := sql.Open("postgres", dbCfg.ConnString()+"?sslmode=disable")
	if err != nil {
		log.Fatal("opening db error: " + err.Error())
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	dir := cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")
	if err := goose.Run(command, db, dir, os.Args[min(len(os.Args), 2):]...); err != nil {
		log.Fatal("migration error: " + err.Error())
	}
}
