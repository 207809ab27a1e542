// server/internal/database/seeder.go
package database

import (
	"context"
	"fmt"
	"log"

	"agrisense-farm-api-server/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedDemoZones tạo một farm demo với hai zone mẫu khi collection còn trống,
// để frontend có dữ liệu hiển thị ngay trong môi trường dev.
func SeedDemoZones(db *mongo.Database) error {
	zoneCollection := db.Collection("zones")

	// Kiểm tra xem đã có zone nào chưa
	count, err := zoneCollection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Zones already exist. Seeding skipped.")
		return nil
	}

	log.Println("No zones found. Seeding demo data...")
	demoFarmID := fmt.Sprintf("farm-%s", uuid.New().String()[:8])

	demoZones := []interface{}{
		models.Zone{
			Name:      "North Block",
			Type:      "Rubber",
			FarmID:    demoFarmID,
			AreaAcres: 12.5,
			CropName:  "RRIM 600",
			SoilType:  "Laterite",
			Coordinates: models.GeoJSONPolygon{
				Type: "Polygon",
				Coordinates: [][][]float64{{
					{103.81, 1.35}, {103.82, 1.35}, {103.82, 1.36}, {103.81, 1.36}, {103.81, 1.35},
				}},
			},
			Status:         models.ZoneStatusHealthy,
			CropStage:      "Mature",
			Activities:     []models.ZoneActivity{},
			Inventory:      []models.ZoneInventoryItem{},
			ComplianceLogs: []models.ZoneComplianceRecord{},
		},
		models.Zone{
			Name:           "South Paddy",
			Type:           "Paddy",
			FarmID:         demoFarmID,
			AreaAcres:      4.2,
			CropName:       "Jasmine Rice",
			IrrigationType: "Flood",
			Coordinates: models.GeoJSONPolygon{
				Type: "Polygon",
				Coordinates: [][][]float64{{
					{103.83, 1.34}, {103.84, 1.34}, {103.84, 1.35}, {103.83, 1.35}, {103.83, 1.34},
				}},
			},
			Status:         models.ZoneStatusHealthy,
			CropStage:      models.DefaultCropStage,
			Activities:     []models.ZoneActivity{},
			Inventory:      []models.ZoneInventoryItem{},
			ComplianceLogs: []models.ZoneComplianceRecord{},
		},
	}

	_, err = zoneCollection.InsertMany(context.Background(), demoZones)
	if err != nil {
		return err
	}

	log.Printf("Seeded %d demo zones for %s", len(demoZones), demoFarmID)
	return nil
}
