package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"charm-shop/internal/catalog"
	"charm-shop/internal/config"
	"charm-shop/internal/database"
	"charm-shop/internal/router"
	"charm-shop/internal/session"

	"github.com/joho/godotenv"
)

func main() {
	// optional .env for local overrides
	_ = godotenv.Load()

	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// sessions live for the process only; a restart logs everyone out
	sessions := session.NewRegistry()
	cat := catalog.Default()

	// setup router
	r := router.SetupRouter(cfg, db, cat, sessions)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
