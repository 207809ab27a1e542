// server/internal/service/zone_service.go
package service

import (
	"context"
	"time"

	"agrisense-farm-api-server/internal/models"
)

// ZoneStore là contract tối thiểu mà service cần từ tầng lưu trữ.
// Mọi method trả về store.ErrZoneNotFound khi identifier không trỏ tới zone nào.
type ZoneStore interface {
	Insert(ctx context.Context, zone *models.Zone) (string, error)
	FindByFarm(ctx context.Context, farmID string) ([]models.Zone, error)
	FindByID(ctx context.Context, zoneID string) (*models.Zone, error)
	PushActivity(ctx context.Context, zoneID string, activity models.ZoneActivity) error
	SetSensors(ctx context.Context, zoneID string, readings models.SensorReadings) error
	SetPhoto(ctx context.Context, zoneID string, photoURL string) error
}

type ZoneService struct {
	store ZoneStore
}

func NewZoneService(store ZoneStore) *ZoneService {
	return &ZoneService{store: store}
}

// Create lưu một zone mới với các giá trị mặc định: status Healthy,
// crop stage Vegetative, các danh sách rỗng và chưa có snapshot cảm biến.
// Không validate nghiệp vụ gì thêm (kể cả diện tích dương).
func (s *ZoneService) Create(ctx context.Context, zone models.Zone) (*models.Zone, error) {
	if zone.Status == "" {
		zone.Status = models.ZoneStatusHealthy
	}
	if zone.CropStage == "" {
		zone.CropStage = models.DefaultCropStage
	}
	zone.CurrentSensors = nil
	zone.Photo = ""
	zone.Activities = []models.ZoneActivity{}
	zone.Inventory = []models.ZoneInventoryItem{}
	zone.ComplianceLogs = []models.ZoneComplianceRecord{}

	zoneID, err := s.store.Insert(ctx, &zone)
	if err != nil {
		return nil, err
	}

	// Đọc lại để trả về document đầy đủ như store đã lưu.
	return s.store.FindByID(ctx, zoneID)
}

// ListByFarm trả về các zone thuộc một farm, tối đa 100, theo thứ tự của store.
func (s *ZoneService) ListByFarm(ctx context.Context, farmID string) ([]models.Zone, error) {
	return s.store.FindByFarm(ctx, farmID)
}

// AppendActivity ghi thêm một activity vào nhật ký của zone rồi đọc lại
// document mới nhất. Hai bước update-rồi-read là tách biệt: một append
// song song của writer khác có thể xuất hiện trong kết quả trả về.
func (s *ZoneService) AppendActivity(ctx context.Context, zoneID string, activity models.ZoneActivity) (*models.Zone, error) {
	if activity.Date.IsZero() {
		activity.Date = time.Now().UTC()
	}

	if err := s.store.PushActivity(ctx, zoneID, activity); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, zoneID)
}

// UpdateSensors thay snapshot cảm biến hiện tại của zone rồi trả về document mới.
func (s *ZoneService) UpdateSensors(ctx context.Context, zoneID string, readings models.SensorReadings) (*models.Zone, error) {
	if readings.Timestamp.IsZero() {
		readings.Timestamp = time.Now().UTC()
	}

	if err := s.store.SetSensors(ctx, zoneID, readings); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, zoneID)
}

// AttachPhoto gán URL ảnh đã upload cho zone rồi trả về document mới.
func (s *ZoneService) AttachPhoto(ctx context.Context, zoneID string, photoURL string) (*models.Zone, error) {
	if err := s.store.SetPhoto(ctx, zoneID, photoURL); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, zoneID)
}
