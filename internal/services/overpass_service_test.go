package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "yatra/pkg/memcache"
	"yatra/pkg/utils"
)

const overpassFixture = `{
	"elements": [
		{"lat": 24.5776, "lon": 73.6798, "tags": {"name": "Ambrai", "amenity": "restaurant"}},
		{"center": {"lat": 24.5955, "lon": 73.6878}, "tags": {"name": "Lok Kala", "tourism": "museum"}},
		{"tags": {"name": "No Coordinates"}}
	]
}`

func newTestOverpass(endpoint string, client *http.Client) *OverpassClient {
	return &OverpassClient{
		HTTP:        client,
		Endpoint:    endpoint,
		Cache:       mem.NewQueryCache(),
		DefaultTTL:  time.Hour,
		MaxRequests: 2,
	}
}

func TestSearchPOIsParsesElements(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Contains(t, r.PostForm.Get("data"), "[out:json][timeout:25]")
		w.Write([]byte(overpassFixture))
	}))
	defer srv.Close()

	client := newTestOverpass(srv.URL, srv.Client())
	pois, err := client.SearchPOIs(context.Background(), "Udaipur", "restaurant", 2.0)

	require.NoError(t, err)
	require.Len(t, pois, 2)
	assert.Equal(t, "Ambrai", pois[0].Name)
	assert.Equal(t, "restaurant", pois[0].Type)
	assert.Equal(t, 24.5776, pois[0].Lat)
	// Ways carry coordinates in "center".
	assert.Equal(t, "Lok Kala", pois[1].Name)
	assert.Equal(t, 24.5955, pois[1].Lat)
	assert.Equal(t, int64(1), hits.Load())
}

func TestSearchPOIsUsesCache(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(overpassFixture))
	}))
	defer srv.Close()

	client := newTestOverpass(srv.URL, srv.Client())
	ctx := context.Background()

	_, err := client.SearchPOIs(ctx, "Udaipur", "restaurant", 2.0)
	require.NoError(t, err)
	_, err = client.SearchPOIs(ctx, "Udaipur", "restaurant", 2.0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), hits.Load())
	assert.Equal(t, int64(1), client.Cache.Requests())
}

func TestSearchPOIsRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(overpassFixture))
	}))
	defer srv.Close()

	client := newTestOverpass(srv.URL, srv.Client())
	ctx := context.Background()

	_, err := client.SearchPOIs(ctx, "Udaipur", "restaurant", 2.0)
	require.NoError(t, err)
	_, err = client.SearchPOIs(ctx, "Udaipur", "museum", 2.0)
	require.NoError(t, err)

	// Third distinct query exceeds the per-process cap.
	_, err = client.SearchPOIs(ctx, "Udaipur", "park", 2.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrPOISourceError))

	// A cached query still works past the cap.
	pois, err := client.SearchPOIs(ctx, "Udaipur", "restaurant", 2.0)
	require.NoError(t, err)
	assert.Len(t, pois, 2)
}

func TestSearchPOIsUpstreamFailureIsSoft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	client := newTestOverpass(srv.URL, srv.Client())
	pois, err := client.SearchPOIs(context.Background(), "Udaipur", "restaurant", 2.0)

	require.NoError(t, err)
	assert.Empty(t, pois)
	// Failed calls never count against the cap.
	assert.Equal(t, int64(0), client.Cache.Requests())
}

func TestBuildOverpassQuery(t *testing.T) {
	q := buildOverpassQuery(24.5854, 73.7125, 2.0, "restaurant")

	assert.Contains(t, q, "[out:json][timeout:25];")
	assert.Contains(t, q, `node["amenity"="restaurant"](around:2000,`)
	assert.Contains(t, q, "out body 200;")
}

func TestPoiTypeTagFilters(t *testing.T) {
	assert.Contains(t, poiTypeTagFilters("heritage"), tagFilter{"tourism", "museum"})
	assert.Contains(t, poiTypeTagFilters("temple"), tagFilter{"amenity", "place_of_worship"})
	// Unknown types fall back to a mixed attraction query.
	assert.NotEmpty(t, poiTypeTagFilters("whatever"))
}
