package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"veggiemap-server/models"
)

// Report summarizes one refresh run. The latest report is exposed on the
// /status endpoint in serve mode.
type Report struct {
	RunID     string                `json:"run_id"`
	Timestamp time.Time             `json:"timestamp"`
	Server    string                `json:"server"`
	Markers   int                   `json:"markers"`
	Skipped   int                   `json:"skipped"`
	Counts    models.CategoryCounts `json:"counts"`
	Duration  time.Duration         `json:"duration"`
}

// RefreshService runs the whole fetch-transform-write pipeline. A run is
// sequential and single-threaded; overlapping runs are the caller's
// problem to prevent.
type RefreshService struct {
	overpass  *OverpassService
	transform *TransformService
	artifact  *ArtifactService
	now       func() time.Time
}

func NewRefreshService(overpass *OverpassService, transform *TransformService, artifact *ArtifactService) *RefreshService {
	return &RefreshService{
		overpass:  overpass,
		transform: transform,
		artifact:  artifact,
		now:       time.Now,
	}
}

// Run fetches the OSM data, transforms it and promotes a new data file.
// On any error the currently active data file is left untouched, so the
// worst outcome of a failed run is that no update happened.
func (s *RefreshService) Run(ctx context.Context) (*Report, []models.Marker, error) {
	report := &Report{
		RunID:     uuid.New().String(),
		Timestamp: s.now(),
	}
	log.Printf("Starting refresh run %s", report.RunID)

	result, server, err := s.overpass.Fetch(ctx)
	if err != nil {
		return nil, nil, err
	}
	report.Server = server

	var markers []models.Marker
	for _, e := range result.Elements {
		marker, ok := s.transform.Transform(e)
		if !ok {
			report.Skipped++
			continue
		}
		report.Counts.Add(marker.Category)
		markers = append(markers, marker)
	}
	report.Markers = len(markers)
	log.Printf("Transformed %d markers (%d skipped)", report.Markers, report.Skipped)

	if err := s.artifact.Write(markers, report.Counts, report.Timestamp); err != nil {
		return nil, nil, err
	}
	if err := s.artifact.Promote(); err != nil {
		return nil, nil, err
	}

	report.Duration = s.now().Sub(report.Timestamp)
	log.Printf("Refresh run %s finished in %s", report.RunID, report.Duration)
	return report, markers, nil
}
