package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/models/request_models"
	"yatra/internal/repositories"
)

func newTestGrounding() GroundingServiceInterface {
	return NewGroundingService(
		repositories.NewStaticPOIReference(nil),
		repositories.NewStaticKnowledge(nil),
	)
}

func TestGroundingEmptyResponse(t *testing.T) {
	report := newTestGrounding().Evaluate(context.Background(), request_models.GroundingRequest{})

	assert.True(t, report.Passed)
	assert.Equal(t, 1.0, report.Score)
	assert.Equal(t, "Empty response", report.Details["reason"])
}

func TestGroundingRealPlacesPass(t *testing.T) {
	req := request_models.GroundingRequest{
		Response: "Start with the City Palace in the morning. Then take a sunset boat ride " +
			"across Lake Pichola, and finish at Jagdish Temple.",
	}

	report := newTestGrounding().Evaluate(context.Background(), req)

	assert.True(t, report.Passed)
	assert.Equal(t, 1.0, report.Score)
	assert.Empty(t, report.Issues)
}

func TestGroundingTwoFabricatedNamesFlagged(t *testing.T) {
	req := request_models.GroundingRequest{
		Response: "Do not miss the Golden Dragon Tower and the Silver Phoenix Pavilion.",
	}

	report := newTestGrounding().Evaluate(context.Background(), req)

	assert.False(t, report.Passed)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "Unverified POI names mentioned")
	assert.Contains(t, report.Issues[0], "Golden Dragon Tower")
	assert.InDelta(t, 0.8, report.Score, 0.001)
}

func TestGroundingSingleUnknownNameTolerated(t *testing.T) {
	req := request_models.GroundingRequest{
		Response: "Grab a coffee near the Golden Dragon Tower before heading to City Palace.",
	}

	report := newTestGrounding().Evaluate(context.Background(), req)

	assert.True(t, report.Passed)
	assert.Empty(t, report.Issues)
}

func TestGroundingBlocklistedTermsIgnored(t *testing.T) {
	req := request_models.GroundingRequest{
		Response: "Try the Dal Baati Churma and Laal Maas at a Local Restaurant.",
	}

	report := newTestGrounding().Evaluate(context.Background(), req)

	assert.True(t, report.Passed)
	assert.Empty(t, report.Issues)
}

func TestGroundingSourceCoverage(t *testing.T) {
	req := request_models.GroundingRequest{
		Response: "A relaxing day at the City Palace.",
		Sources: []request_models.POIInput{
			{Name: "City Palace"},
			{Name: "Lake Pichola"},
			{Name: "Jagdish Temple"},
			{Name: "Monsoon Palace"},
		},
	}

	report := newTestGrounding().Evaluate(context.Background(), req)

	assert.False(t, report.Passed)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "only mentions 1/4 provided POIs")
}

func TestGroundingProvidedPOIsOverrideReferenceTable(t *testing.T) {
	req := request_models.GroundingRequest{
		Response:  "Spend the whole morning at Moonfall Gardens and then Moonfall Gardens Annex.",
		KnownPOIs: []request_models.POIInput{{Name: "Moonfall Gardens"}},
	}

	report := newTestGrounding().Evaluate(context.Background(), req)

	// Both title-case phrases match the provided POI by substring.
	assert.True(t, report.Passed)
	assert.Empty(t, report.Issues)
}

func TestNormalizePOIName(t *testing.T) {
	assert.Equal(t, "saheliyon ki bari", normalizePOIName("Saheliyon-ki-Bari"))
	assert.Equal(t, "bagore ki haveli", normalizePOIName("  Bagore Ki Haveli. "))
	assert.Equal(t, "", normalizePOIName("   "))
}

func TestExtractClaims(t *testing.T) {
	text := "The City Palace is the largest palace complex in Rajasthan. " +
		"It was the seat of the Mewar rulers for centuries. Short one. Have fun!"
	claims := extractClaims(text)

	require.Len(t, claims, 2)
	assert.Contains(t, claims[0], "largest palace complex")
}
