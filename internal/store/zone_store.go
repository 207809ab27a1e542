// server/internal/store/zone_store.go
package store

import (
	"context"
	"errors"
	"fmt"

	"agrisense-farm-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxZonesPerFarm chặn trên số zone trả về cho một farm trong một lần query.
const maxZonesPerFarm = 100

// ErrZoneNotFound được trả về khi không có zone nào khớp với identifier.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneStore truy cập collection "zones" trong MongoDB.
// Toàn bộ việc chuyển đổi ObjectID <-> string nằm gọn trong package này;
// service và handler chỉ làm việc với identifier dạng string.
type ZoneStore struct {
	collection *mongo.Collection
}

func NewZoneStore(db *mongo.Database) *ZoneStore {
	return &ZoneStore{collection: db.Collection("zones")}
}

// zoneRecord bọc models.Zone với _id gốc của Mongo khi đọc/ghi document.
type zoneRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	models.Zone `bson:",inline"`
}

func (r zoneRecord) toZone() models.Zone {
	zone := r.Zone
	zone.ID = r.ID.Hex()
	return zone
}

// toObjectID chuyển identifier dạng string về ObjectID.
// Token không hợp lệ không bao giờ trỏ tới zone nào, nên ánh xạ về ErrZoneNotFound.
func toObjectID(zoneID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(zoneID)
	if err != nil {
		return primitive.NilObjectID, ErrZoneNotFound
	}
	return oid, nil
}

// Insert lưu một zone mới và trả về identifier do store sinh ra.
func (s *ZoneStore) Insert(ctx context.Context, zone *models.Zone) (string, error) {
	result, err := s.collection.InsertOne(ctx, zoneRecord{Zone: *zone})
	if err != nil {
		return "", fmt.Errorf("failed to insert zone: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByFarm trả về các zone của một farm, tối đa maxZonesPerFarm,
// theo thứ tự tự nhiên của store (không áp sort).
func (s *ZoneStore) FindByFarm(ctx context.Context, farmID string) ([]models.Zone, error) {
	findOptions := options.Find().SetLimit(maxZonesPerFarm)
	cursor, err := s.collection.Find(ctx, bson.M{"farm_id": farmID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer cursor.Close(ctx)

	var records []zoneRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode zones: %w", err)
	}

	zones := make([]models.Zone, 0, len(records))
	for _, record := range records {
		zones = append(zones, record.toZone())
	}
	return zones, nil
}

// FindByID trả về một zone theo identifier, ErrZoneNotFound nếu không tồn tại.
func (s *ZoneStore) FindByID(ctx context.Context, zoneID string) (*models.Zone, error) {
	oid, err := toObjectID(zoneID)
	if err != nil {
		return nil, err
	}

	var record zoneRecord
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrZoneNotFound
		}
		return nil, fmt.Errorf("failed to retrieve zone: %w", err)
	}

	zone := record.toZone()
	return &zone, nil
}

// PushActivity append một activity vào nhật ký của zone.
// $push trên một document là bước mutate nguyên tử duy nhất của thao tác này.
func (s *ZoneStore) PushActivity(ctx context.Context, zoneID string, activity models.ZoneActivity) error {
	oid, err := toObjectID(zoneID)
	if err != nil {
		return err
	}

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"activities": activity}},
	)
	if err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrZoneNotFound
	}
	return nil
}

// SetSensors thay snapshot cảm biến hiện tại của zone (chỉ giữ bản mới nhất).
func (s *ZoneStore) SetSensors(ctx context.Context, zoneID string, readings models.SensorReadings) error {
	oid, err := toObjectID(zoneID)
	if err != nil {
		return err
	}

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"current_sensors": readings}},
	)
	if err != nil {
		return fmt.Errorf("failed to update sensors: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrZoneNotFound
	}
	return nil
}

// SetPhoto gán URL ảnh đại diện cho zone.
func (s *ZoneStore) SetPhoto(ctx context.Context, zoneID string, photoURL string) error {
	oid, err := toObjectID(zoneID)
	if err != nil {
		return err
	}

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"photo": photoURL}},
	)
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrZoneNotFound
	}
	return nil
}
