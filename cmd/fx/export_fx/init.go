package exportfx

import (
	"go.uber.org/fx"

	"yatra/internal/infra"
	"yatra/internal/services"
)

var Module = fx.Provide(provideExportService)

func provideExportService(cfg infra.Config) services.ExportServiceInterface {
	return services.NewExportService(cfg.N8NWebhookURL)
}
