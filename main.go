package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"veggiemap-server/handlers"
	"veggiemap-server/middleware"
	"veggiemap-server/services"
)

// Config collects everything the pipeline and the optional server need.
// It is assembled once in main and passed down, there is no package-level
// mutable state.
type Config struct {
	OverpassServers []string
	DataDir         string
	ServeAddr       string
	RefreshInterval time.Duration
	MongoURI        string
	RedisAddr       string
	RedisDB         int
}

func loadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default configuration")
	}

	cfg := Config{
		DataDir:   "./js",
		ServeAddr: os.Getenv("SERVE_ADDR"),
		MongoURI:  os.Getenv("MONGODB_URI"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
	}
	if servers := os.Getenv("OVERPASS_SERVERS"); servers != "" {
		cfg.OverpassServers = strings.Split(servers, ",")
	}
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	if interval := os.Getenv("REFRESH_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			log.Fatalf("Invalid REFRESH_INTERVAL value: %v", err)
		}
		cfg.RefreshInterval = d
	}
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		redisDB, err := strconv.Atoi(redisDBStr)
		if err != nil {
			log.Fatalf("Invalid REDIS_DB value: %v", err)
		}
		cfg.RedisDB = redisDB
	}
	return cfg
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Initialize the pipeline services
	overpassService := services.NewOverpassService(cfg.OverpassServers, &http.Client{Timeout: 5 * time.Minute})
	artifactService := services.NewArtifactService(cfg.DataDir)
	refreshService := services.NewRefreshService(overpassService, services.NewTransformService(), artifactService)

	report, markers, err := refreshService.Run(ctx)
	if err != nil {
		log.Fatalf("A problem has occurred, the old veggiemap data was not replaced: %v", err)
	}

	if cfg.ServeAddr == "" {
		// One-shot mode: generate the data file and exit.
		return
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is not set")
	}
	if cfg.RedisAddr == "" {
		log.Fatal("REDIS_ADDR environment variable is not set")
	}

	geoService, err := services.NewGeoService(ctx, cfg.MongoURI, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to initialize geo service: %v", err)
	}
	if err := geoService.SyncMarkers(ctx, markers); err != nil {
		log.Fatalf("Failed to sync markers: %v", err)
	}

	poiHandler := handlers.NewPOIHandler(geoService)
	statusHandler := handlers.NewStatusHandler(artifactService.CurrentPath)
	statusHandler.SetReport(report)

	if cfg.RefreshInterval > 0 {
		// One sequential loop, runs never overlap.
		go func() {
			for range time.Tick(cfg.RefreshInterval) {
				report, markers, err := refreshService.Run(ctx)
				if err != nil {
					log.Printf("Refresh failed, keeping previous data: %v", err)
					continue
				}
				if err := geoService.SyncMarkers(ctx, markers); err != nil {
					log.Printf("Failed to sync markers: %v", err)
					continue
				}
				statusHandler.SetReport(report)
			}
		}()
	}

	r := mux.NewRouter()

	// CORS middleware
	allowedOrigins := []string{"*"}
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	r.Use(middleware.ErrorMiddleware())

	// Routes
	r.HandleFunc("/pois", poiHandler.GetNearbyPOIs).Methods("GET", "OPTIONS")
	r.HandleFunc("/status", statusHandler.GetStatus).Methods("GET", "OPTIONS")
	r.HandleFunc("/data/veggiemap-data.js", statusHandler.GetData).Methods("GET", "OPTIONS")

	log.Printf("Server starting on %s", cfg.ServeAddr)
	log.Fatal(http.ListenAndServe(cfg.ServeAddr, r))
}
