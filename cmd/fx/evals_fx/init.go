package evalsfx

import (
	"go.uber.org/fx"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	services.NewFeasibilityService,
	services.NewEditCheckService,
	provideGroundingService,
)

func provideGroundingService(refRepo repositories.POIReferenceRepository, knowledge repositories.KnowledgeRepository) services.GroundingServiceInterface {
	return services.NewGroundingService(refRepo, knowledge)
}
