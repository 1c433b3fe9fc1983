package main

import (
	"log"

	"cornell-notepad-be/internal/bootstrap"
	"cornell-notepad-be/internal/config"
	"cornell-notepad-be/internal/model"
	"cornell-notepad-be/internal/server"
	"cornell-notepad-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Note{}); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
