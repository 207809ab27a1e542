// server/internal/api/handlers/zone_handler.go
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"agrisense-farm-api-server/internal/models"
	"agrisense-farm-api-server/internal/service"
	"agrisense-farm-api-server/internal/socket"
	"agrisense-farm-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PhotoStorage là phần của S3 uploader mà zone handler cần.
type PhotoStorage interface {
	UploadFile(ctx context.Context, file io.Reader, objectKey string, contentType string) (string, error)
}

type ZoneHandler struct {
	Service *service.ZoneService
	Hub     *socket.Hub
	Photos  PhotoStorage
}

// --- Structs cho Request Body ---

type CreateZoneRequest struct {
	Name           string                 `json:"name" binding:"required"`
	Type           string                 `json:"type" binding:"required"`
	FarmID         string                 `json:"farm_id" binding:"required"`
	AreaAcres      float64                `json:"area_acres"`
	CropName       string                 `json:"crop_name"`
	SoilType       string                 `json:"soil_type"`
	IrrigationType string                 `json:"irrigation_type"`
	Coordinates    models.GeoJSONPolygon  `json:"coordinates" binding:"required"`
	Status         string                 `json:"status" binding:"omitempty,oneof=Healthy Risk Critical"`
	CropStage      string                 `json:"crop_stage"`
}

type ZoneActivityRequest struct {
	Type        string    `json:"type" binding:"required,oneof=Expense Harvest Treatment Note"`
	Category    string    `json:"category" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Amount      float64   `json:"amount"`
	Cost        float64   `json:"cost"`
	Date        time.Time `json:"date"`
}

type SensorReadingsRequest struct {
	Temperature  float64   `json:"temperature"`
	Humidity     float64   `json:"humidity"`
	SoilMoisture float64   `json:"soil_moisture"`
	Sunlight     float64   `json:"sunlight"`
	Timestamp    time.Time `json:"timestamp"`
}

// --- Handlers ---

// CreateZone tạo một zone mới cho farm.
func (h *ZoneHandler) CreateZone(c *gin.Context) {
	var req CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newZone := models.Zone{
		Name:           req.Name,
		Type:           req.Type,
		FarmID:         req.FarmID,
		AreaAcres:      req.AreaAcres,
		CropName:       req.CropName,
		SoilType:       req.SoilType,
		IrrigationType: req.IrrigationType,
		Coordinates:    req.Coordinates,
		Status:         req.Status,
		CropStage:      req.CropStage,
	}

	created, err := h.Service.Create(c.Request.Context(), newZone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create zone"})
		return
	}

	h.Hub.Broadcast(socket.Event{Type: socket.EventZoneCreated, Payload: created})
	c.JSON(http.StatusCreated, created)
}

// GetZonesByFarm lấy danh sách zone của một farm (tối đa 100).
func (h *ZoneHandler) GetZonesByFarm(c *gin.Context) {
	farmID := c.Param("id")

	zones, err := h.Service.ListByFarm(c.Request.Context(), farmID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query zones"})
		return
	}

	c.JSON(http.StatusOK, zones)
}

// AddActivity ghi thêm một activity vào nhật ký của zone.
func (h *ZoneHandler) AddActivity(c *gin.Context) {
	zoneID := c.Param("id")

	var req ZoneActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity := models.ZoneActivity{
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Cost:        req.Cost,
		Date:        req.Date,
	}

	updated, err := h.Service.AppendActivity(c.Request.Context(), zoneID, activity)
	if err != nil {
		if errors.Is(err, store.ErrZoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to append activity"})
		}
		return
	}

	h.Hub.Broadcast(socket.Event{Type: socket.EventActivityAdded, Payload: updated})
	c.JSON(http.StatusOK, updated)
}

// UpdateSensors thay snapshot cảm biến hiện tại của zone.
func (h *ZoneHandler) UpdateSensors(c *gin.Context) {
	zoneID := c.Param("id")

	var req SensorReadingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	readings := models.SensorReadings{
		Temperature:  req.Temperature,
		Humidity:     req.Humidity,
		SoilMoisture: req.SoilMoisture,
		Sunlight:     req.Sunlight,
		Timestamp:    req.Timestamp,
	}

	updated, err := h.Service.UpdateSensors(c.Request.Context(), zoneID, readings)
	if err != nil {
		if errors.Is(err, store.ErrZoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sensors"})
		}
		return
	}

	h.Hub.Broadcast(socket.Event{Type: socket.EventSensorsUpdated, Payload: updated})
	c.JSON(http.StatusOK, updated)
}

// UploadZonePhoto upload ảnh đại diện của zone lên S3 rồi lưu URL vào document.
func (h *ZoneHandler) UploadZonePhoto(c *gin.Context) {
	zoneID := c.Param("id")

	if h.Photos == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo storage is not configured"})
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("zones/%s/%s%s", zoneID, uuid.New().String(), filepath.Ext(header.Filename))
	photoURL, err := h.Photos.UploadFile(c.Request.Context(), file, objectKey, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		return
	}

	updated, err := h.Service.AttachPhoto(c.Request.Context(), zoneID, photoURL)
	if err != nil {
		if errors.Is(err, store.ErrZoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo URL"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
