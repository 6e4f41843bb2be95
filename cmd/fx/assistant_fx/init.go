package assistantfx

import (
	"log"

	"go.uber.org/fx"

	"yatra/internal/infra"
	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

var Module = fx.Provide(
	provideChatClient,
	provideAssistantService,
)

// provideChatClient prefers Gemini when its key is configured, otherwise
// OpenAI. With neither key set the assistant endpoint fails per request
// rather than blocking startup.
func provideChatClient(cfg infra.Config) utils.ChatClientInterface {
	if cfg.GeminiKey != "" {
		client, err := utils.NewGeminiChatClient(cfg.GeminiKey, cfg.GeminiModel)
		if err == nil {
			return client
		}
		log.Printf("Gemini client init failed, falling back to OpenAI: %v", err)
	}
	return utils.NewOpenAIChatClient(cfg.OpenAIKey, "")
}

func provideAssistantService(
	chat utils.ChatClientInterface,
	refRepo repositories.POIReferenceRepository,
	knowledge repositories.KnowledgeRepository,
	recovery services.RecoveryServiceInterface,
) services.AssistantServiceInterface {
	return services.NewAssistantService(chat, refRepo, knowledge, recovery)
}
