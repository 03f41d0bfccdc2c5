package services

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"veggiemap-server/models"
	"veggiemap-server/utils/errors"
)

// minArtifactSize guards against promoting a near-empty data file after a
// degenerate Overpass response.
const minArtifactSize = 250

type ArtifactService struct {
	// TempPath is written during generation and is normally absent at
	// rest. CurrentPath is the file the map loads, OldPath keeps the
	// previous generation.
	TempPath    string
	CurrentPath string
	OldPath     string
}

func NewArtifactService(dataDir string) *ArtifactService {
	return &ArtifactService{
		TempPath:    filepath.Join(dataDir, "veggiemap-data-temp.js"),
		CurrentPath: filepath.Join(dataDir, "veggiemap-data.js"),
		OldPath:     filepath.Join(dataDir, "veggiemap-data_old.js"),
	}
}

// Write serializes the markers and the category counts into the temp file.
// The temp path is separate from the current path so readers of the map
// data never see a write in progress.
func (s *ArtifactService) Write(markers []models.Marker, counts models.CategoryCounts, timestamp time.Time) error {
	f, err := os.Create(s.TempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp data file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "// Created: %s\n", timestamp)
	fmt.Fprintln(w, "function veggiemap_populate(markers) {")
	for _, m := range markers {
		fmt.Fprintf(w, "L.marker([%s,%s],{title:\"%s\",icon:getIcon(\"%s\",\"%s\")}).bindPopup(\"%s\").addTo(%s);\n",
			formatCoord(m.Lat), formatCoord(m.Lon), m.Title, m.Icon.Icon, m.Category, m.Popup, m.Category)
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintf(w, "let numbers = {\n n_vegan_only:%d,\n n_vegetarian_only:%d,\n n_vegan_friendly:%d,\n n_vegan_limited:%d,\n n_vegetarian_friendly:%d\n};\n",
		counts.VeganOnly, counts.VegetarianOnly, counts.VeganFriendly, counts.VeganLimited, counts.VegetarianFriendly)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write temp data file: %w", err)
	}
	return f.Close()
}

// Promote checks the temp file and replaces the current data file if it is
// ok. The current file becomes the old file, keeping one generation of
// history. Both renames stay within one directory so readers either see
// the complete previous file or the complete new one, never a partial
// write. On a refused promotion the current file is left untouched and the
// temp file stays in place for inspection.
func (s *ArtifactService) Promote() error {
	info, err := os.Stat(s.TempPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.ErrArtifactMissing
		}
		return err
	}
	if info.Size() <= minArtifactSize {
		return fmt.Errorf("%w: %d bytes", errors.ErrArtifactTooSmall, info.Size())
	}

	log.Printf("Renaming %s to %s", s.TempPath, s.CurrentPath)
	if err := os.Rename(s.CurrentPath, s.OldPath); err != nil && !os.IsNotExist(err) {
		// A missing current file is fine on the very first run.
		return fmt.Errorf("failed to rotate current data file: %w", err)
	}
	if err := os.Rename(s.TempPath, s.CurrentPath); err != nil {
		return fmt.Errorf("failed to promote temp data file: %w", err)
	}
	return nil
}

// formatCoord renders a coordinate with the shortest exact representation.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
