package main

import (
	"fmt"
	"log"

	"github.com/Networkcaretaker/sebastians-sub000/configs"
	"github.com/Networkcaretaker/sebastians-sub000/middlewares"
	"github.com/Networkcaretaker/sebastians-sub000/pkg/artifact"
	"github.com/Networkcaretaker/sebastians-sub000/routes"
	"github.com/Networkcaretaker/sebastians-sub000/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// published snapshots live on local disk, served statically below
	store := artifact.NewLocalStore(cfg.ArtifactDir, cfg.PublicBaseURL)

	// event hub for admin clients
	hub := ws.NewCatalogHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Static("/public/files", cfg.ArtifactDir)

	routes.RegisterRoutes(r, db, cfg, store, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
