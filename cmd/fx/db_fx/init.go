package dbfx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/infra"
	"yatra/internal/models/db_models"
)

var Module = fx.Provide(
	infra.LoadConfig,
	provideDB,
)

// provideDB opens Postgres when POSTGRES_URL is set. A nil handle makes
// the repository providers fall back to the seeded in-memory data.
func provideDB(cfg infra.Config) *gorm.DB {
	if cfg.PostgresURL == "" {
		log.Println("POSTGRES_URL not set, using in-memory reference data")
		return nil
	}
	db := infra.InitPostgresql()
	if err := db.AutoMigrate(&db_models.POIRecord{}, &db_models.KnowledgeSection{}); err != nil {
		log.Fatalf("Failed to migrate reference tables: %v", err)
	}
	return db
}
