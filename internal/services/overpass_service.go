package services

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"yatra/pkg/memcache"
	"yatra/pkg/utils"
)

// FoundPOI is one place returned by a POI search.
type FoundPOI struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Type    string  `json:"type"`
	Amenity string  `json:"amenity"`
}

type POISourceInterface interface {
	SearchPOIs(ctx context.Context, city, poiType string, radiusKm float64) ([]FoundPOI, error)
}

// OverpassClient queries the Overpass API (OpenStreetMap) for POIs around
// a city center. Results are cached by (city, type, radius); upstream
// calls are capped per process so a chatty client cannot hammer the
// public endpoint.
type OverpassClient struct {
	HTTP        *http.Client
	Endpoint    string
	Cache       mem.QueryCache
	DefaultTTL  time.Duration
	MaxRequests int64
}

var cityCoords = map[string][2]float64{
	"udaipur": {24.5854, 73.7125},
}

func NewOverpassClient(cache mem.QueryCache, endpoint string) POISourceInterface {
	if endpoint == "" {
		endpoint = "https://overpass-api.de/api/interpreter"
	}
	return &OverpassClient{
		HTTP:        &http.Client{Timeout: 30 * time.Second},
		Endpoint:    endpoint,
		Cache:       cache,
		DefaultTTL:  7 * 24 * time.Hour,
		MaxRequests: 2,
	}
}

// SearchPOIs returns POIs of the given type within radiusKm of the city
// center. A cache hit never counts against the request cap; a miss past
// the cap is an error rather than an upstream call.
func (c *OverpassClient) SearchPOIs(ctx context.Context, city, poiType string, radiusKm float64) ([]FoundPOI, error) {
	city = normalizeCity(city)
	if radiusKm <= 0 {
		radiusKm = 5.0
	}
	key := searchCacheKey(city, poiType, radiusKm)

	if raw, ok := c.Cache.Get(key); ok {
		var pois []FoundPOI
		if err := json.Unmarshal([]byte(raw), &pois); err == nil {
			log.Printf("Overpass cache hit: %s", key)
			return pois, nil
		}
	}

	if c.Cache.Requests() >= c.MaxRequests {
		return nil, fmt.Errorf("%w: rate limit reached (%d requests per session)", utils.ErrPOISourceError, c.MaxRequests)
	}

	lat, lon := coordsForCity(city)
	query := buildOverpassQuery(lat, lon, radiusKm, poiType)

	form := url.Values{}
	form.Set("data", query)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("Overpass API request failed: %v", err)
		return []FoundPOI{}, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		log.Printf("Overpass API bad status: %s", resp.Status)
		return []FoundPOI{}, nil
	}

	var payload struct {
		Elements []overpassElement `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Overpass API invalid JSON: %v", err)
		return []FoundPOI{}, nil
	}

	pois := make([]FoundPOI, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		if p, ok := parseOverpassElement(el); ok {
			pois = append(pois, p)
		}
	}

	c.Cache.CountRequest()
	if raw, err := json.Marshal(pois); err == nil {
		c.Cache.Put(key, string(raw), c.DefaultTTL)
	}
	log.Printf("Overpass fetched %d POIs for %s/%s", len(pois), city, poiType)
	return pois, nil
}

type overpassElement struct {
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func parseOverpassElement(el overpassElement) (FoundPOI, bool) {
	lat, lon := el.Lat, el.Lon
	if (lat == nil || lon == nil) && el.Center != nil {
		lat, lon = &el.Center.Lat, &el.Center.Lon
	}
	if lat == nil || lon == nil {
		return FoundPOI{}, false
	}

	name := el.Tags["name"]
	if name == "" {
		name = el.Tags["name:en"]
	}
	if name == "" {
		name = "Unnamed"
	}
	amenity := el.Tags["amenity"]
	tourism := el.Tags["tourism"]
	historic := el.Tags["historic"]

	typ := firstNonEmpty(amenity, tourism, historic, "poi")
	return FoundPOI{
		Name:    name,
		Lat:     *lat,
		Lon:     *lon,
		Type:    typ,
		Amenity: firstNonEmpty(amenity, tourism, historic, "unknown"),
	}, true
}

type tagFilter struct {
	key, value string
}

// poiTypeTagFilters maps a high-level POI type to Overpass tag filters.
func poiTypeTagFilters(poiType string) []tagFilter {
	switch strings.ToLower(strings.TrimSpace(poiType)) {
	case "restaurant", "food", "dining":
		return []tagFilter{{"amenity", "restaurant"}, {"amenity", "cafe"}, {"amenity", "fast_food"}}
	case "museum", "heritage", "monument", "history":
		return []tagFilter{{"tourism", "museum"}, {"historic", "monument"}, {"historic", "castle"}, {"tourism", "attraction"}}
	case "park", "nature", "lake":
		return []tagFilter{{"leisure", "park"}, {"natural", "water"}}
	case "temple", "religious", "culture":
		return []tagFilter{{"amenity", "place_of_worship"}}
	case "market", "shopping":
		return []tagFilter{{"shop", "mall"}, {"amenity", "marketplace"}}
	case "all", "*", "any":
		return []tagFilter{
			{"amenity", "restaurant"}, {"amenity", "cafe"}, {"tourism", "museum"},
			{"tourism", "attraction"}, {"historic", "monument"}, {"leisure", "park"},
		}
	default:
		return []tagFilter{{"amenity", "restaurant"}, {"tourism", "attraction"}, {"tourism", "museum"}}
	}
}

func buildOverpassQuery(lat, lon, radiusKm float64, poiType string) string {
	radiusM := int(radiusKm * 1000)
	var parts []string
	for _, f := range poiTypeTagFilters(poiType) {
		parts = append(parts, fmt.Sprintf(`node["%s"="%s"](around:%d,%f,%f);`, f.key, f.value, radiusM, lat, lon))
	}
	return fmt.Sprintf("[out:json][timeout:25];\n(\n  %s\n);\nout body 200;\n", strings.Join(parts, " "))
}

func normalizeCity(city string) string {
	city = strings.TrimSpace(city)
	if city == "" {
		return "Udaipur"
	}
	return city
}

func coordsForCity(city string) (float64, float64) {
	if c, ok := cityCoords[strings.ToLower(city)]; ok {
		return c[0], c[1]
	}
	c := cityCoords["udaipur"]
	return c[0], c[1]
}

func searchCacheKey(city, poiType string, radiusKm float64) string {
	raw := fmt.Sprintf("%s|%s|%g", city, poiType, radiusKm)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("overpass_%x", sum[:8])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
