package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Amrragab78/the-modern-table-sub000/cart"
	"github.com/Amrragab78/the-modern-table-sub000/configs"
	"github.com/Amrragab78/the-modern-table-sub000/middlewares"
	"github.com/Amrragab78/the-modern-table-sub000/pkg/resp"
	"github.com/Amrragab78/the-modern-table-sub000/routes"
)

func main() {
	cfg := configs.LoadConfig()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		resp.Verbose = false
	}

	// DB
	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(db); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// Cart snapshots
	cartStore, err := cart.NewFileStore(cfg.CartDir)
	if err != nil {
		log.Fatalf("cart store: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded menu images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, cartStore)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
