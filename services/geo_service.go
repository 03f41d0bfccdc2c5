package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"veggiemap-server/models"
)

// GeoService backs the nearby-POI endpoint in serve mode. MongoDB is the
// canonical marker store, Redis holds the geo index the queries run
// against. Both hold only transformed markers, never raw Overpass
// responses.
type GeoService struct {
	collection  *mongo.Collection
	RedisClient *redis.Client
}

func NewGeoService(ctx context.Context, mongoURI, redisAddr string, redisDB int) (*GeoService, error) {
	// Connect to MongoDB
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	log.Println("Connected to MongoDB")
	collection := client.Database("veggiemap").Collection("markers")

	service := &GeoService{collection: collection}

	// Initialize Redis client
	service.RedisClient = redis.NewClient(&redis.Options{
		Addr: redisAddr,
		DB:   redisDB,
	})
	if err := service.RedisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return service, nil
}

// SyncMarkers replaces the marker collection in MongoDB with the freshly
// transformed set and rebuilds the Redis geo index from it.
func (s *GeoService) SyncMarkers(ctx context.Context, markers []models.Marker) error {
	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Printf("Failed to clear marker collection: %v", err)
		return err
	}

	// convert to interface{} for MongoDB
	var interfaceMarkers []any
	for _, m := range markers {
		interfaceMarkers = append(interfaceMarkers, m)
	}
	result, err := s.collection.InsertMany(ctx, interfaceMarkers)
	if err != nil {
		log.Printf("Failed to store markers in MongoDB: %v", err)
		return err
	}
	log.Printf("Inserted %d markers into MongoDB", len(result.InsertedIDs))

	return s.seedMarkersToRedis(ctx)
}

// seedMarkersToRedis loads the markers from MongoDB into the Redis geo
// index and marker hashes.
func (s *GeoService) seedMarkersToRedis(ctx context.Context) error {
	if err := s.RedisClient.FlushDB(ctx).Err(); err != nil {
		log.Printf("Failed to flush Redis DB: %v", err)
		return err
	}
	log.Println("Seeding markers into Redis...")

	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("Failed to load markers from MongoDB: %v", err)
		return err
	}
	defer cursor.Close(ctx)
	var markers []models.Marker
	if err := cursor.All(ctx, &markers); err != nil {
		log.Printf("Failed to decode markers from MongoDB: %v", err)
		return err
	}

	for _, m := range markers {
		markerJSON, err := json.Marshal(m)
		if err != nil {
			log.Printf("Failed to marshal marker %s: %v", m.ID, err)
			continue
		}
		if err := s.RedisClient.HSet(ctx, m.ID, "data", markerJSON).Err(); err != nil {
			log.Printf("Failed to set marker %s in Redis: %v", m.ID, err)
			continue
		}
		if err := s.RedisClient.GeoAdd(ctx, "pois:geo", &redis.GeoLocation{
			Name:      m.ID,
			Longitude: m.Lon,
			Latitude:  m.Lat,
		}).Err(); err != nil {
			log.Printf("Failed to add marker %s to Redis Geo set: %v", m.ID, err)
			continue
		}
	}
	log.Printf("Seeded %d markers into Redis", len(markers))
	return nil
}

// FindNearbyMarkers returns the markers within radius kilometers of the
// given point, closest first, optionally filtered by diet category.
func (s *GeoService) FindNearbyMarkers(ctx context.Context, lat, lon, radius float64, category models.DietCategory) ([]models.Marker, error) {
	geoResults, err := s.RedisClient.GeoRadius(ctx, "pois:geo", lon, lat, &redis.GeoRadiusQuery{
		Radius:    radius,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
		Count:     50,
	}).Result()
	if err != nil {
		log.Printf("Redis GeoRadius error: %v", err)
		return nil, err
	}

	var results []models.Marker
	for _, geoResult := range geoResults {
		markerJSON, err := s.RedisClient.HGet(ctx, geoResult.Name, "data").Result()
		if err != nil {
			log.Printf("Redis Get error for marker %s: %v", geoResult.Name, err)
			continue
		}
		var marker models.Marker
		if err := json.Unmarshal([]byte(markerJSON), &marker); err != nil {
			log.Printf("Failed to unmarshal marker %s: %v", geoResult.Name, err)
			continue
		}
		// Skip if category filter doesn't match
		if category != "" && marker.Category != category {
			continue
		}
		results = append(results, marker)
	}

	log.Printf("Found %d markers within %f km", len(results), radius)
	return results, nil
}
