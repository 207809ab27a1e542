package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"agrisense-farm-api-server/internal/models"
	"agrisense-farm-api-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeZoneStore giữ zone trong bộ nhớ, mô phỏng contract của store thật
// (kể cả chặn trên 100 zone mỗi farm và sentinel ErrZoneNotFound).
type fakeZoneStore struct {
	zones  map[string]*models.Zone
	order  []string
	nextID int
}

func newFakeZoneStore() *fakeZoneStore {
	return &fakeZoneStore{zones: map[string]*models.Zone{}}
}

func (f *fakeZoneStore) Insert(ctx context.Context, zone *models.Zone) (string, error) {
	f.nextID++
	id := fmt.Sprintf("%024x", f.nextID)
	stored := *zone
	stored.ID = id
	f.zones[id] = &stored
	f.order = append(f.order, id)
	return id, nil
}

func (f *fakeZoneStore) FindByFarm(ctx context.Context, farmID string) ([]models.Zone, error) {
	zones := []models.Zone{}
	for _, id := range f.order {
		if f.zones[id].FarmID == farmID {
			zones = append(zones, *f.zones[id])
			if len(zones) == 100 {
				break
			}
		}
	}
	return zones, nil
}

func (f *fakeZoneStore) FindByID(ctx context.Context, zoneID string) (*models.Zone, error) {
	zone, ok := f.zones[zoneID]
	if !ok {
		return nil, store.ErrZoneNotFound
	}
	copied := *zone
	return &copied, nil
}

func (f *fakeZoneStore) PushActivity(ctx context.Context, zoneID string, activity models.ZoneActivity) error {
	zone, ok := f.zones[zoneID]
	if !ok {
		return store.ErrZoneNotFound
	}
	zone.Activities = append(zone.Activities, activity)
	return nil
}

func (f *fakeZoneStore) SetSensors(ctx context.Context, zoneID string, readings models.SensorReadings) error {
	zone, ok := f.zones[zoneID]
	if !ok {
		return store.ErrZoneNotFound
	}
	zone.CurrentSensors = &readings
	return nil
}

func (f *fakeZoneStore) SetPhoto(ctx context.Context, zoneID string, photoURL string) error {
	zone, ok := f.zones[zoneID]
	if !ok {
		return store.ErrZoneNotFound
	}
	zone.Photo = photoURL
	return nil
}

func validZone(farmID string) models.Zone {
	return models.Zone{
		Name:      "North Block",
		Type:      "Rubber",
		FarmID:    farmID,
		AreaAcres: 12.5,
		Coordinates: models.GeoJSONPolygon{
			Type: "Polygon",
			Coordinates: [][][]float64{{
				{103.81, 1.35}, {103.82, 1.35}, {103.82, 1.36}, {103.81, 1.35},
			}},
		},
	}
}

func TestCreateZoneAppliesDefaults(t *testing.T) {
	svc := NewZoneService(newFakeZoneStore())

	created, err := svc.Create(context.Background(), validZone("farm-1"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.ZoneStatusHealthy, created.Status)
	assert.Equal(t, models.DefaultCropStage, created.CropStage)
	assert.Empty(t, created.Activities)
	assert.Empty(t, created.Inventory)
	assert.Empty(t, created.ComplianceLogs)
	assert.Nil(t, created.CurrentSensors)
}

func TestCreateZoneKeepsExplicitStatusAndStage(t *testing.T) {
	svc := NewZoneService(newFakeZoneStore())

	zone := validZone("farm-1")
	zone.Status = models.ZoneStatusRisk
	zone.CropStage = "Flowering"

	created, err := svc.Create(context.Background(), zone)
	require.NoError(t, err)

	assert.Equal(t, models.ZoneStatusRisk, created.Status)
	assert.Equal(t, "Flowering", created.CropStage)
}

func TestCreateZoneIgnoresSuppliedCollections(t *testing.T) {
	svc := NewZoneService(newFakeZoneStore())

	zone := validZone("farm-1")
	zone.Activities = []models.ZoneActivity{{Type: models.ActivityNote, Description: "smuggled"}}
	zone.CurrentSensors = &models.SensorReadings{Temperature: 99}

	created, err := svc.Create(context.Background(), zone)
	require.NoError(t, err)

	assert.Empty(t, created.Activities)
	assert.Nil(t, created.CurrentSensors)
}

func TestListByFarmFiltersByFarmID(t *testing.T) {
	fake := newFakeZoneStore()
	svc := NewZoneService(fake)

	_, err := svc.Create(context.Background(), validZone("farm-a"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validZone("farm-b"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validZone("farm-a"))
	require.NoError(t, err)

	zones, err := svc.ListByFarm(context.Background(), "farm-a")
	require.NoError(t, err)

	assert.Len(t, zones, 2)
	for _, zone := range zones {
		assert.Equal(t, "farm-a", zone.FarmID)
	}
}

func TestListByFarmCapsAtOneHundred(t *testing.T) {
	fake := newFakeZoneStore()
	svc := NewZoneService(fake)

	for i := 0; i < 105; i++ {
		_, err := svc.Create(context.Background(), validZone("farm-big"))
		require.NoError(t, err)
	}

	zones, err := svc.ListByFarm(context.Background(), "farm-big")
	require.NoError(t, err)
	assert.Len(t, zones, 100)
}

func TestListByFarmReturnsEmptySliceForUnknownFarm(t *testing.T) {
	svc := NewZoneService(newFakeZoneStore())

	zones, err := svc.ListByFarm(context.Background(), "farm-ghost")
	require.NoError(t, err)
	assert.NotNil(t, zones)
	assert.Empty(t, zones)
}

func TestAppendActivityUnknownZone(t *testing.T) {
	fake := newFakeZoneStore()
	svc := NewZoneService(fake)

	_, err := svc.AppendActivity(context.Background(), "missing", models.ZoneActivity{
		Type:        models.ActivityNote,
		Category:    "General",
		Description: "nothing here",
	})

	assert.ErrorIs(t, err, store.ErrZoneNotFound)
	// Thao tác fail không được tạo zone mới
	assert.Empty(t, fake.zones)
}

func TestAppendActivityAddsExactlyOneEntry(t *testing.T) {
	svc := NewZoneService(newFakeZoneStore())

	created, err := svc.Create(context.Background(), validZone("farm-1"))
	require.NoError(t, err)

	activity := models.ZoneActivity{
		Type:        models.ActivityExpense,
		Category:    "Fertilizer",
		Description: "NPK 10-26-26, 2 bags",
		Amount:      2,
		Cost:        54.0,
	}

	updated, err := svc.AppendActivity(context.Background(), created.ID, activity)
	require.NoError(t, err)

	require.Len(t, updated.Activities, 1)
	entry := updated.Activities[0]
	assert.Equal(t, activity.Type, entry.Type)
	assert.Equal(t, activity.Category, entry.Category)
	assert.Equal(t, activity.Description, entry.Description)
	assert.Equal(t, activity.Amount, entry.Amount)
	assert.Equal(t, activity.Cost, entry.Cost)
	assert.False(t, entry.Date.IsZero(), "date should default to call time")
}

func TestAppendActivityKeepsSuppliedDate(t *testing.T) {
	svc := NewZoneService(newFakeZoneStore())

	created, err := svc.Create(context.Background(), validZone("farm-1"))
	require.NoError(t, err)

	suppliedDate := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	updated, err := svc.AppendActivity(context.Background(), created.ID, models.ZoneActivity{
		Type:        models.ActivityHarvest,
		Category:    "Latex",
		Description: "morning tapping",
		Date:        suppliedDate,
	})
	require.NoError(t, err)

	require.Len(t, updated.Activities, 1)
	assert.True(t, updated.Activities[0].Date.Equal(suppliedDate))
}

func TestUpdateSensorsDefaultsTimestamp(t *testing.T) {
	svc := NewZoneService(newFakeZoneStore())

	created, err := svc.Create(context.Background(), validZone("farm-1"))
	require.NoError(t, err)

	updated, err := svc.UpdateSensors(context.Background(), created.ID, models.SensorReadings{
		Temperature:  31.2,
		Humidity:     78,
		SoilMoisture: 0.42,
		Sunlight:     820,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.CurrentSensors)
	assert.Equal(t, 31.2, updated.CurrentSensors.Temperature)
	assert.False(t, updated.CurrentSensors.Timestamp.IsZero())
}

func TestUpdateSensorsUnknownZone(t *testing.T) {
	svc := NewZoneService(newFakeZoneStore())

	_, err := svc.UpdateSensors(context.Background(), "missing", models.SensorReadings{Temperature: 30})
	assert.ErrorIs(t, err, store.ErrZoneNotFound)
}

func TestAttachPhoto(t *testing.T) {
	svc := NewZoneService(newFakeZoneStore())

	created, err := svc.Create(context.Background(), validZone("farm-1"))
	require.NoError(t, err)

	updated, err := svc.AttachPhoto(context.Background(), created.ID, "https://cdn.example.com/zones/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/zones/abc.jpg", updated.Photo)
}
