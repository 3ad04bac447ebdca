package main

import (
	"gin-fooddelivery/config"
	"gin-fooddelivery/infra"
	"log"
)

func main() {
	infra.Initialize()

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("Failed to setup database: %v", err)
	}
	defer infra.CloseDB(db)

	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Migration completed")
}
