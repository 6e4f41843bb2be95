package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type fakeChatClient struct {
	replies  []string
	errs     []error
	calls    int
	prompts  []string
	systems  []string
}

func (f *fakeChatClient) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	i := f.calls
	f.calls++
	f.systems = append(f.systems, systemPrompt)
	f.prompts = append(f.prompts, userPrompt)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	reply := ""
	if i < len(f.replies) {
		reply = f.replies[i]
	}
	return reply, err
}

func newTestAssistant(chat utils.ChatClientInterface) AssistantServiceInterface {
	return NewAssistantService(
		chat,
		repositories.NewStaticPOIReference(nil),
		repositories.NewStaticKnowledge(nil),
		NewRecoveryService(),
	)
}

func TestPlanTripEmptyPrompt(t *testing.T) {
	svc := newTestAssistant(&fakeChatClient{})
	_, err := svc.PlanTrip(context.Background(), "   ")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestPlanTripRecoversJSONItinerary(t *testing.T) {
	reply := "Here is your plan.\n```json\n{\"days\": [{\"day_number\": 1, \"activities\": []}]}\n```"
	chat := &fakeChatClient{replies: []string{reply}}
	svc := newTestAssistant(chat)

	plan, err := svc.PlanTrip(context.Background(), "One day in Udaipur")

	require.NoError(t, err)
	assert.Equal(t, reply, plan.Response)
	require.NotNil(t, plan.Itinerary)
	assert.Equal(t, 1, plan.Itinerary.Days[0].DayNumber)
	assert.Equal(t, 1, chat.calls)

	// The prompt carries the reference place list and the user request.
	assert.Contains(t, chat.prompts[0], "City Palace")
	assert.Contains(t, chat.prompts[0], "User request: One day in Udaipur")
}

func TestPlanTripRecoversProseItinerary(t *testing.T) {
	reply := "Day 1:\n- 9:00 AM: City Palace\n- 1:00 PM: Lunch\n"
	svc := newTestAssistant(&fakeChatClient{replies: []string{reply}})

	plan, err := svc.PlanTrip(context.Background(), "One day in Udaipur")

	require.NoError(t, err)
	require.NotNil(t, plan.Itinerary)
	assert.Len(t, plan.Itinerary.Days, 1)
}

func TestPlanTripProseOnlyReplyIsValid(t *testing.T) {
	reply := "Could you tell me how many travelers and which month you are visiting?"
	svc := newTestAssistant(&fakeChatClient{replies: []string{reply}})

	plan, err := svc.PlanTrip(context.Background(), "Plan something")

	require.NoError(t, err)
	assert.Equal(t, reply, plan.Response)
	assert.Nil(t, plan.Itinerary)
}

func TestPlanTripRetriesAfterProviderError(t *testing.T) {
	reply := "Day 1:\n- 9:00 AM: City Palace\n"
	chat := &fakeChatClient{
		replies: []string{"", reply},
		errs:    []error{errors.New("rate limited"), nil},
	}
	svc := newTestAssistant(chat)

	plan, err := svc.PlanTrip(context.Background(), "One day in Udaipur")

	require.NoError(t, err)
	assert.Equal(t, 2, chat.calls)
	require.NotNil(t, plan.Itinerary)
}
