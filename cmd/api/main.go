// server/cmd/api/main.go
package main

import (
	"context"
	"log"

	"agrisense-farm-api-server/config"
	"agrisense-farm-api-server/internal/advisory"
	"agrisense-farm-api-server/internal/api/routes"
	"agrisense-farm-api-server/internal/database"
	"agrisense-farm-api-server/internal/s3"
	"agrisense-farm-api-server/internal/service"
	"agrisense-farm-api-server/internal/socket"
	"agrisense-farm-api-server/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Nạp .env (nếu có) rồi load configuration
	godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 2. Kết nối MongoDB
	client, db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := database.EnsureIndexes(db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	// 3. Seed dữ liệu demo cho môi trường dev (tùy chọn)
	if cfg.Seed.DemoData {
		if err := database.SeedDemoZones(db); err != nil {
			log.Fatalf("Failed to seed demo zones: %v", err)
		}
	}

	// 4. Khởi tạo S3 uploader nếu được cấu hình
	var uploader *s3.Uploader
	if cfg.S3.Bucket != "" {
		uploader, err = s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("Failed to initialize S3 uploader: %v", err)
		}
	}

	// 5. Lắp các thành phần: store -> service -> router
	zoneStore := store.NewZoneStore(db)
	zoneService := service.NewZoneService(zoneStore)
	advisor := advisory.NewStub()
	hub := socket.NewHub()

	router := routes.SetupRouter(zoneService, advisor, uploader, hub, cfg)

	// 6. Start server
	log.Printf("Starting farm service on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
