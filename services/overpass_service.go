package services

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"veggiemap-server/models"
	"veggiemap-server/utils/errors"
)

// DefaultOverpassServers are the public Overpass API mirrors, tried in
// order (from https://wiki.openstreetmap.org/wiki/Overpass_API).
var DefaultOverpassServers = []string{
	"https://lz4.overpass-api.de/api/interpreter",
	"https://overpass.kumi.systems/api/interpreter",
	"https://z.overpass-api.de/api/interpreter",
	"http://api.openstreetmap.fr/api/interpreter",
	"http://dev.overpass-api.de/api_drolbr/interpreter",
	"http://overpass-api.de/api/interpreter",
	"http://overpass.openstreetmap.fr/api/interpreter",
}

// overpassQuery selects every node and way carrying a vegan or vegetarian
// diet tag, as json, with way centers precomputed.
const overpassQuery = `?data=[out:json];(` +
	`node["diet:vegan"~"yes|only|limited"];way["diet:vegan"~"yes|only|limited"];` +
	`node["diet:vegetarian"~"yes|only"];way["diet:vegetarian"~"yes|only"];` +
	`);out+center;`

// Cooldowns before moving on to the next mirror, per response status.
const (
	cooldownBadRequest     = 5 * time.Second
	cooldownRateLimited    = 60 * time.Second
	cooldownGatewayTimeout = 600 * time.Second
)

type OverpassService struct {
	servers []string
	client  *http.Client
	sleep   func(time.Duration)
}

func NewOverpassService(servers []string, client *http.Client) *OverpassService {
	if len(servers) == 0 {
		servers = DefaultOverpassServers
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OverpassService{
		servers: servers,
		client:  client,
		sleep:   time.Sleep,
	}
}

// Fetch queries one mirror after another until one gives a valid answer or
// the end of the server list is reached. The mirrors hold equivalent data,
// so the first successful response is returned and no further mirrors are
// tried. Endpoint and server name of the answering mirror are returned for
// the refresh report.
func (s *OverpassService) Fetch(ctx context.Context) (*models.OverpassResponse, string, error) {
	for _, server := range s.servers {
		log.Printf("Sending query to server: %s", server)

		result, retryIn, err := s.fetchOne(ctx, server)
		if err != nil {
			return nil, "", err
		}
		if result != nil {
			log.Println("Received answer successfully.")
			return result, server, nil
		}
		if retryIn > 0 {
			s.sleep(retryIn)
		}
	}
	return nil, "", errors.ErrAllEndpointsFailed
}

// fetchOne queries a single mirror. A nil result with a nil error means the
// mirror did not answer usefully and the caller should fail over after
// waiting retryIn.
func (s *OverpassService) fetchOne(ctx context.Context, server string) (*models.OverpassResponse, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server+overpassQuery, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}
		log.Printf("Request to %s failed: %v", server, err)
		return nil, 0, nil
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			log.Printf("Failed to read response from %s: %v", server, err)
			return nil, 0, nil
		}
		var result models.OverpassResponse
		if err := json.Unmarshal(body, &result); err != nil {
			log.Printf("Failed to decode response from %s: %v", server, err)
			return nil, 0, nil
		}
		return &result, 0, nil
	case http.StatusBadRequest:
		log.Printf("HTTP error code %d: Bad Request", resp.StatusCode)
		return nil, cooldownBadRequest, nil
	case http.StatusTooManyRequests:
		log.Printf("HTTP error code %d: Too Many Requests", resp.StatusCode)
		return nil, cooldownRateLimited, nil
	case http.StatusGatewayTimeout:
		log.Printf("HTTP error code %d: Gateway Timeout", resp.StatusCode)
		return nil, cooldownGatewayTimeout, nil
	default:
		log.Printf("Unknown HTTP error code: %d", resp.StatusCode)
		return nil, 0, nil
	}
}
