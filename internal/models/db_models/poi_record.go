package db_models

// POIRecord is one row of the curated reference table used to enrich
// caller-supplied POIs by name. Records are read-only once loaded.
type POIRecord struct {
	BaseModel
	Name          string `gorm:"uniqueIndex"`
	Type          string
	Latitude      float64
	Longitude     float64
	DurationHours float64
	Cost          int
	BestTime      string
	Indoor        bool
	Notes         string
}

func (POIRecord) TableName() string { return "poi_records" }
