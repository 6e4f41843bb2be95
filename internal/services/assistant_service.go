package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

const assistantSystemPrompt = `You are an expert travel planner for Udaipur, Rajasthan.

Rules:
- Recommend ONLY places from the provided place list. Never add places from general knowledge.
- Present every itinerary day-wise (Day 1, Day 2, ...) with time slots for each activity.
- Ground recommendations in the provided travel guide context.
- After the prose, include the itinerary as a JSON object {"days": [...]} in a fenced json code block,
  where each day has "day_number" and "activities", and each activity has "time" and
  "poi" with "name" and "duration_hours".`

const maxAssistantAttempts = 3

// AssistantServiceInterface produces a travel plan from a free-text
// prompt. The model reply is kept verbatim; a structured itinerary is
// recovered from it when one can be found.
type AssistantServiceInterface interface {
	PlanTrip(ctx context.Context, prompt string) (response_models.AssistantPlan, error)
}

type AssistantService struct {
	chat      utils.ChatClientInterface
	refRepo   repositories.POIReferenceRepository
	knowledge repositories.KnowledgeRepository
	recovery  RecoveryServiceInterface
}

func NewAssistantService(
	chat utils.ChatClientInterface,
	refRepo repositories.POIReferenceRepository,
	knowledge repositories.KnowledgeRepository,
	recovery RecoveryServiceInterface,
) AssistantServiceInterface {
	return &AssistantService{
		chat:      chat,
		refRepo:   refRepo,
		knowledge: knowledge,
		recovery:  recovery,
	}
}

func (a *AssistantService) PlanTrip(ctx context.Context, prompt string) (response_models.AssistantPlan, error) {
	if strings.TrimSpace(prompt) == "" {
		return response_models.AssistantPlan{}, utils.ErrInvalidInput
	}

	userPrompt := a.buildUserPrompt(ctx, prompt)

	var lastErr error
	for attempt := 1; attempt <= maxAssistantAttempts; attempt++ {
		log.Printf("assistant attempt %d/%d", attempt, maxAssistantAttempts)

		system := assistantSystemPrompt
		if attempt == maxAssistantAttempts {
			system += "\n\nCRITICAL: The JSON code block is mandatory. Return the itinerary JSON exactly as specified."
		}

		reply, err := a.chat.Complete(ctx, system, userPrompt)
		if err != nil {
			lastErr = err
			log.Printf("assistant attempt %d failed: %v", attempt, err)
			if attempt < maxAssistantAttempts {
				select {
				case <-time.After(time.Duration(1<<attempt) * time.Second):
				case <-ctx.Done():
					return response_models.AssistantPlan{}, ctx.Err()
				}
			}
			continue
		}

		plan := response_models.AssistantPlan{Response: reply}
		if it := a.recovery.ExtractItinerary(reply); it != nil {
			plan.Itinerary = it
			return plan, nil
		}
		if it := a.recovery.ParseTextItinerary(reply); it != nil {
			plan.Itinerary = it
			return plan, nil
		}
		// Prose-only replies (clarifying questions, explanations) are a
		// valid outcome.
		return plan, nil
	}

	return response_models.AssistantPlan{}, fmt.Errorf("%w: %v", utils.ErrUnexpectedAI, lastErr)
}

// buildUserPrompt assembles the place list and guide context around the
// user's request. Repository outages degrade to a prompt without that
// context instead of failing the call.
func (a *AssistantService) buildUserPrompt(ctx context.Context, prompt string) string {
	var b strings.Builder

	if records, err := a.refRepo.List(ctx, 200); err != nil {
		log.Printf("POI reference table unavailable for assistant: %v", err)
	} else if len(records) > 0 {
		b.WriteString("Available places:\n")
		for _, r := range records {
			b.WriteString(fmt.Sprintf("- %s | type: %s | typical visit: %.1fh | best time: %s\n",
				r.Name, r.Type, r.DurationHours, r.BestTime))
		}
		b.WriteString("\n")
	}

	for _, section := range []string{"overview", "tips"} {
		text, err := a.knowledge.GetContext(ctx, section)
		if err != nil {
			log.Printf("knowledge base section %q unavailable for assistant: %v", section, err)
			continue
		}
		if text != "" {
			b.WriteString("Travel guide context:\n")
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	}

	b.WriteString("User request: ")
	b.WriteString(prompt)
	return b.String()
}
