package main

import (
	"log"

	"github.com/spatialrsp/rsp-backend-go/internal/api"
	"github.com/spatialrsp/rsp-backend-go/internal/config"
	"github.com/spatialrsp/rsp-backend-go/internal/database"
)

func main() {
	cfg := config.Load()

	dbConfig := database.Config{
		Path:     cfg.DBPath,
		MaxConns: cfg.DBMaxConns,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	router := api.SetupRouter(cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
