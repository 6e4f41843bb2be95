package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

type POIReferenceRepository interface {
	Lookup(ctx context.Context, name string) (*db_models.POIRecord, error)
	List(ctx context.Context, maxResults int) ([]db_models.POIRecord, error)
}

type poiReferenceRepository struct {
	db *gorm.DB
}

func NewPOIReferenceRepository(db *gorm.DB) POIReferenceRepository {
	return &poiReferenceRepository{db: db}
}

func (r *poiReferenceRepository) Lookup(ctx context.Context, name string) (*db_models.POIRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	var record db_models.POIRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *poiReferenceRepository) List(ctx context.Context, maxResults int) ([]db_models.POIRecord, error) {
	if maxResults <= 0 {
		maxResults = 50
	}
	var records []db_models.POIRecord
	if err := r.db.WithContext(ctx).Limit(maxResults).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// StaticPOIReference serves the curated Udaipur table from memory. Used as
// the default when no database is configured, and in tests.
type StaticPOIReference struct {
	records []db_models.POIRecord
	byName  map[string]*db_models.POIRecord
}

func NewStaticPOIReference(records []db_models.POIRecord) *StaticPOIReference {
	if records == nil {
		records = UdaipurReferencePOIs()
	}
	s := &StaticPOIReference{
		records: records,
		byName:  make(map[string]*db_models.POIRecord, len(records)),
	}
	for i := range s.records {
		s.byName[strings.ToLower(strings.TrimSpace(s.records[i].Name))] = &s.records[i]
	}
	return s
}

func (s *StaticPOIReference) Lookup(_ context.Context, name string) (*db_models.POIRecord, error) {
	rec, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (s *StaticPOIReference) List(_ context.Context, maxResults int) ([]db_models.POIRecord, error) {
	if maxResults <= 0 || maxResults > len(s.records) {
		maxResults = len(s.records)
	}
	out := make([]db_models.POIRecord, maxResults)
	copy(out, s.records[:maxResults])
	return out, nil
}

// UdaipurReferencePOIs is the canonical reference table: visit durations,
// best time slots, and entry costs for the places the planner most often
// schedules.
func UdaipurReferencePOIs() []db_models.POIRecord {
	return []db_models.POIRecord{
		{Name: "City Palace", Type: "heritage", Latitude: 24.5764, Longitude: 73.6835, DurationHours: 3.0, Cost: 300, BestTime: "morning", Indoor: true, Notes: "Largest palace complex in Rajasthan; audio guide available."},
		{Name: "Jagdish Temple", Type: "heritage", Latitude: 24.5795, Longitude: 73.6843, DurationHours: 1.0, Cost: 0, BestTime: "morning", Notes: "Active temple; remove shoes before entering."},
		{Name: "Lake Pichola", Type: "nature", Latitude: 24.5722, Longitude: 73.6794, DurationHours: 1.5, Cost: 400, BestTime: "sunset", Notes: "Boat rides from Rameshwar Ghat; sunset slots sell out."},
		{Name: "Fateh Sagar Lake", Type: "nature", Latitude: 24.6028, Longitude: 73.6755, DurationHours: 1.5, Cost: 0, BestTime: "evening", Notes: "Promenade and boat rides to Nehru Park."},
		{Name: "Saheliyon ki Bari", Type: "nature", Latitude: 24.6045, Longitude: 73.6852, DurationHours: 1.0, Cost: 50, BestTime: "morning", Notes: "Garden of the Maidens; fountains run in season."},
		{Name: "Monsoon Palace", Type: "heritage", Latitude: 24.5937, Longitude: 73.6406, DurationHours: 2.0, Cost: 200, BestTime: "sunset", Notes: "Sajjangarh; hilltop views, go before the light fades."},
		{Name: "Bagore Ki Haveli", Type: "culture", Latitude: 24.5803, Longitude: 73.6822, DurationHours: 1.5, Cost: 100, BestTime: "evening", Indoor: true, Notes: "Dharohar folk dance show at 7 PM."},
		{Name: "Bharatiya Lok Kala Museum", Type: "culture", Latitude: 24.5955, Longitude: 73.6878, DurationHours: 1.5, Cost: 100, BestTime: "afternoon", Indoor: true, Notes: "Folk art and puppet shows."},
		{Name: "Ahar Museum", Type: "culture", Latitude: 24.5854, Longitude: 73.7204, DurationHours: 1.0, Cost: 50, BestTime: "afternoon", Indoor: true, Notes: "Cenotaphs of Mewar rulers adjacent."},
		{Name: "Jag Mandir", Type: "heritage", Latitude: 24.5678, Longitude: 73.6793, DurationHours: 1.5, Cost: 450, BestTime: "afternoon", Notes: "Island palace; boat from City Palace jetty."},
		{Name: "Vintage Car Museum", Type: "culture", Latitude: 24.5712, Longitude: 73.6910, DurationHours: 1.0, Cost: 250, BestTime: "afternoon", Indoor: true},
		{Name: "Shilpgram", Type: "shopping", Latitude: 24.6101, Longitude: 73.6440, DurationHours: 2.0, Cost: 50, BestTime: "afternoon", Notes: "Crafts village; annual fair in winter."},
		{Name: "Hathi Pol Bazaar", Type: "shopping", Latitude: 24.5830, Longitude: 73.6870, DurationHours: 1.5, Cost: 0, BestTime: "evening", Notes: "Miniature paintings and bandhani textiles."},
		{Name: "Ambrai Ghat", Type: "nature", Latitude: 24.5777, Longitude: 73.6800, DurationHours: 0.5, Cost: 0, BestTime: "sunset"},
		{Name: "Millets of Mewar", Type: "food", Latitude: 24.5789, Longitude: 73.6810, DurationHours: 1.0, Cost: 500, BestTime: "lunch", Notes: "Local grain thalis; vegan options."},
		{Name: "Ambrai Restaurant", Type: "food", Latitude: 24.5776, Longitude: 73.6798, DurationHours: 1.5, Cost: 1200, BestTime: "evening", Notes: "Lakeside dining opposite the City Palace."},
		{Name: "Cafe Edelweiss", Type: "food", Latitude: 24.5808, Longitude: 73.6829, DurationHours: 0.5, Cost: 300, BestTime: "morning", Indoor: true, Notes: "Bakery breakfast near Gangaur Ghat."},
		{Name: "Krishna Dal Bati Restro", Type: "food", Latitude: 24.5850, Longitude: 73.6902, DurationHours: 1.0, Cost: 350, BestTime: "lunch", Notes: "Dal bati churma thali."},
	}
}
