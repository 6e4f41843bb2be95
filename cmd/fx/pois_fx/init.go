package poisfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/infra"
	"yatra/internal/repositories"
	"yatra/internal/services"
	mem "yatra/pkg/memcache"
)

var Module = fx.Provide(
	provideReferenceRepo,
	provideKnowledgeRepo,
	providePOISource,
)

func provideReferenceRepo(db *gorm.DB) repositories.POIReferenceRepository {
	if db == nil {
		return repositories.NewStaticPOIReference(repositories.UdaipurReferencePOIs())
	}
	return repositories.NewPOIReferenceRepository(db)
}

func provideKnowledgeRepo(db *gorm.DB) repositories.KnowledgeRepository {
	if db == nil {
		return repositories.NewStaticKnowledge(repositories.UdaipurKnowledgeSections())
	}
	return repositories.NewKnowledgeRepository(db)
}

func providePOISource(cfg infra.Config, cache mem.QueryCache) services.POISourceInterface {
	return services.NewOverpassClient(cache, cfg.OverpassURL)
}
