// server/internal/api/routes/routes.go
package routes

import (
	"agrisense-farm-api-server/config"
	"agrisense-farm-api-server/internal/advisory"
	"agrisense-farm-api-server/internal/api/handlers"
	"agrisense-farm-api-server/internal/s3"
	"agrisense-farm-api-server/internal/service"
	"agrisense-farm-api-server/internal/socket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter nhận vào các thành phần phụ thuộc và thiết lập các route
func SetupRouter(
	zoneService *service.ZoneService,
	advisor advisory.Advisor,
	uploader *s3.Uploader,
	hub *socket.Hub,
	cfg config.Config,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	// CORS: mở cho dev, thu hẹp origin qua config khi lên prod
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	router.Use(cors.New(corsConfig))

	// Khởi tạo các handlers
	zoneHandler := &handlers.ZoneHandler{Service: zoneService, Hub: hub}
	if uploader != nil {
		zoneHandler.Photos = uploader
	}
	advisoryHandler := &handlers.AdvisoryHandler{Advisor: advisor}
	webSocketHandler := &handlers.WebSocketHandler{Hub: hub}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/health", handlers.HealthCheck)

		// Route cho WebSocket event feed
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// Zone management
		// Gin bắt buộc các wildcard cùng vị trí phải trùng tên, nên ":id" là
		// farm_id với GET danh sách và zone_id với các route record bên dưới.
		zones := apiV1.Group("/zones")
		{
			zones.POST("", zoneHandler.CreateZone)
			zones.GET("/:id", zoneHandler.GetZonesByFarm)
		}

		// Record keeping trên một zone cụ thể
		zoneRecords := apiV1.Group("/zones/:id")
		{
			zoneRecords.POST("/activity", zoneHandler.AddActivity)
			zoneRecords.PUT("/sensors", zoneHandler.UpdateSensors)
			zoneRecords.POST("/photo", zoneHandler.UploadZonePhoto)
		}

		// AI advisory (stub)
		ai := apiV1.Group("/ai")
		{
			ai.POST("/analyze", advisoryHandler.AnalyzeZone)
		}
	}

	return router
}
