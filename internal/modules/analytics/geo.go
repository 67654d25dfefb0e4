package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GeoLookup resolves an IP address to a coarse location.
type GeoLookup interface {
	Lookup(ctx context.Context, ip string) (GeoInfo, error)
}

type GeoInfo struct {
	IP       string `json:"ip"`
	Country  string `json:"country_name"`
	Region   string `json:"region"`
	City     string `json:"city"`
	Postal   string `json:"postal"`
	Timezone string `json:"timezone"`
}

// GeoClient queries an ipapi-compatible endpoint. Failures are expected
// on rate limits; callers treat the lookup as optional.
type GeoClient struct {
	baseURL string
	client  *http.Client
}

func NewGeoClient(baseURL string) *GeoClient {
	return &GeoClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *GeoClient) Lookup(ctx context.Context, ip string) (GeoInfo, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return GeoInfo{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return GeoInfo{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return GeoInfo{}, fmt.Errorf("geo lookup returned %d", resp.StatusCode)
	}
	var info GeoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return GeoInfo{}, err
	}
	return info, nil
}
