package controllersfx

import (
	"go.uber.org/fx"

	"yatra/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTravelController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewEvaluationController),
	fx.Provide(controllers.NewPOIsController),
	fx.Provide(controllers.NewAssistantController),
	fx.Provide(controllers.NewExportController),
)
