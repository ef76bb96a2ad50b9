package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/homebarberid/booking-api/internal/config"
	"github.com/homebarberid/booking-api/internal/db"
	"github.com/homebarberid/booking-api/internal/middleware"
	"github.com/homebarberid/booking-api/internal/routes"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg)

	log.Printf("listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
