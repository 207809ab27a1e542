// server/internal/models/zone.go
package models

import (
	"time"
)

// Trạng thái sức khỏe của một zone.
const (
	ZoneStatusHealthy  = "Healthy"
	ZoneStatusRisk     = "Risk"
	ZoneStatusCritical = "Critical"
)

// Các loại hoạt động được ghi nhận trên một zone.
const (
	ActivityExpense   = "Expense" // Giống, phân bón, nhân công
	ActivityHarvest   = "Harvest"
	ActivityTreatment = "Treatment"
	ActivityNote      = "Note"
)

// Giai đoạn sinh trưởng mặc định khi tạo zone mới.
const DefaultCropStage = "Vegetative"

// GeoJSONPolygon lưu ranh giới của zone theo dạng GeoJSON.
// Ring khép kín: điểm đầu và điểm cuối trùng nhau, mỗi điểm là [lng, lat].
type GeoJSONPolygon struct {
	Type        string        `bson:"type" json:"type"`
	Coordinates [][][]float64 `bson:"coordinates" json:"coordinates"`
}

// SensorReadings là snapshot cảm biến gần nhất của một zone.
type SensorReadings struct {
	Temperature  float64   `bson:"temperature" json:"temperature"`
	Humidity     float64   `bson:"humidity" json:"humidity"`
	SoilMoisture float64   `bson:"soil_moisture" json:"soil_moisture"`
	Sunlight     float64   `bson:"sunlight" json:"sunlight"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
}

// ZoneActivity là một bản ghi nhật ký hoạt động, chỉ append, không sửa/xóa.
type ZoneActivity struct {
	Type        string    `bson:"type" json:"type"` // Expense, Harvest, Treatment, Note
	Category    string    `bson:"category" json:"category"` // e.g. "Fertilizer", "Labor"
	Description string    `bson:"description" json:"description"`
	Amount      float64   `bson:"amount" json:"amount"` // Số lượng hoặc số giờ
	Cost        float64   `bson:"cost" json:"cost"`
	Date        time.Time `bson:"date" json:"date"`
}

// ZoneInventoryItem là một mặt hàng vật tư của zone.
type ZoneInventoryItem struct {
	Name              string  `bson:"name" json:"name"`
	Quantity          float64 `bson:"quantity" json:"quantity"`
	Unit              string  `bson:"unit" json:"unit"`
	LowStockThreshold float64 `bson:"low_stock_threshold" json:"low_stock_threshold"`
}

// ZoneComplianceRecord là một bản ghi tuân thủ theo ngày.
type ZoneComplianceRecord struct {
	Date       time.Time `bson:"date" json:"date"`
	DRCPercent *float64  `bson:"drc_percent,omitempty" json:"drc_percent,omitempty"` // Dry Rubber Content
	LatexGrade string    `bson:"latex_grade,omitempty" json:"latex_grade,omitempty"`
	InputsUsed []string  `bson:"inputs_used" json:"inputs_used"`
}

// Zone là document trung tâm, mỗi zone thuộc đúng một farm.
// ID do store sinh ra lúc insert; các layer bên ngoài chỉ thấy dạng string.
type Zone struct {
	ID             string                 `bson:"-" json:"_id"`
	Name           string                 `bson:"name" json:"name"`
	Type           string                 `bson:"type" json:"type"` // e.g. "Rubber", "Paddy", "Orchard"
	FarmID         string                 `bson:"farm_id" json:"farm_id"`
	AreaAcres      float64                `bson:"area_acres" json:"area_acres"`
	CropName       string                 `bson:"crop_name,omitempty" json:"crop_name,omitempty"`
	SoilType       string                 `bson:"soil_type,omitempty" json:"soil_type,omitempty"`
	IrrigationType string                 `bson:"irrigation_type,omitempty" json:"irrigation_type,omitempty"`
	Coordinates    GeoJSONPolygon         `bson:"coordinates" json:"coordinates"`
	Status         string                 `bson:"status" json:"status"` // Healthy, Risk, Critical
	CropStage      string                 `bson:"crop_stage,omitempty" json:"crop_stage,omitempty"`
	Photo          string                 `bson:"photo,omitempty" json:"photo,omitempty"` // URL ảnh trên S3/CloudFront
	CurrentSensors *SensorReadings        `bson:"current_sensors,omitempty" json:"current_sensors,omitempty"`
	Activities     []ZoneActivity         `bson:"activities" json:"activities"`
	Inventory      []ZoneInventoryItem    `bson:"inventory" json:"inventory"`
	ComplianceLogs []ZoneComplianceRecord `bson:"compliance_logs" json:"compliance_logs"`
}
