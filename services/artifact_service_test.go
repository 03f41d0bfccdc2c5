package services

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veggiemap-server/models"
	"veggiemap-server/utils/errors"
)

func testMarkers() ([]models.Marker, models.CategoryCounts) {
	s := NewTransformService()
	elements := []models.Element{
		{
			ID:   1,
			Type: "node",
			Tags: map[string]string{"diet:vegan": "only", "name": "Green Cafe", "amenity": "cafe"},
			Lat:  52.5,
			Lon:  13.4,
		},
		{
			ID:   2,
			Type: "way",
			Tags: map[string]string{"diet:vegetarian": "yes", "name": "Garden & Grill"},
			Center: &models.Center{
				Lat: 48.1,
				Lon: 11.6,
			},
		},
	}

	var markers []models.Marker
	var counts models.CategoryCounts
	for _, e := range elements {
		m, ok := s.Transform(e)
		if !ok {
			continue
		}
		counts.Add(m.Category)
		markers = append(markers, m)
	}
	return markers, counts
}

func TestWriteAndPromote(t *testing.T) {
	artifact := NewArtifactService(t.TempDir())
	markers, counts := testMarkers()

	timestamp := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	require.NoError(t, artifact.Write(markers, counts, timestamp))
	require.NoError(t, artifact.Promote())

	data, err := os.ReadFile(artifact.CurrentPath)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "// Created: "))
	assert.Contains(t, content, "function veggiemap_populate(markers) {")
	assert.Contains(t, content, "L.marker([52.5,13.4]")
	assert.Contains(t, content, `title:"☕ Green Cafe"`)
	assert.Contains(t, content, `getIcon("cafe","vegan_only")`)
	assert.Contains(t, content, ".addTo(vegan_only);")
	// The popup name keeps its html entities.
	assert.Contains(t, content, "Garden &amp; Grill")
	assert.Contains(t, content, "L.marker([48.1,11.6]")
	assert.Contains(t, content, " n_vegan_only:1,")
	assert.Contains(t, content, " n_vegetarian_friendly:1\n};\n")

	// The temp file was promoted away.
	_, err = os.Stat(artifact.TempPath)
	assert.True(t, os.IsNotExist(err))
}

func TestPromoteKeepsOneGeneration(t *testing.T) {
	artifact := NewArtifactService(t.TempDir())
	markers, counts := testMarkers()

	require.NoError(t, artifact.Write(markers, counts, time.Now()))
	require.NoError(t, artifact.Promote())
	first, err := os.ReadFile(artifact.CurrentPath)
	require.NoError(t, err)

	require.NoError(t, artifact.Write(markers[:1], counts, time.Now()))
	require.NoError(t, artifact.Promote())

	old, err := os.ReadFile(artifact.OldPath)
	require.NoError(t, err)
	assert.Equal(t, first, old)

	current, err := os.ReadFile(artifact.CurrentPath)
	require.NoError(t, err)
	assert.NotEqual(t, first, current)
}

func TestPromoteRefusesSmallArtifact(t *testing.T) {
	artifact := NewArtifactService(t.TempDir())
	markers, counts := testMarkers()

	// Establish a valid current file first.
	require.NoError(t, artifact.Write(markers, counts, time.Now()))
	require.NoError(t, artifact.Promote())
	before, err := os.ReadFile(artifact.CurrentPath)
	require.NoError(t, err)

	// A degenerate run produces a near-empty temp file.
	require.NoError(t, os.WriteFile(artifact.TempPath, []byte("// Created\n"), 0o644))
	err = artifact.Promote()
	assert.ErrorIs(t, err, errors.ErrArtifactTooSmall)

	// The current file is byte-identical to before the run and the temp
	// file stays for inspection.
	after, err := os.ReadFile(artifact.CurrentPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	_, err = os.Stat(artifact.TempPath)
	assert.NoError(t, err)
}

func TestPromoteMissingTemp(t *testing.T) {
	artifact := NewArtifactService(t.TempDir())
	err := artifact.Promote()
	assert.ErrorIs(t, err, errors.ErrArtifactMissing)
}

func TestPromoteFirstRunWithoutCurrent(t *testing.T) {
	artifact := NewArtifactService(t.TempDir())
	markers, counts := testMarkers()

	require.NoError(t, artifact.Write(markers, counts, time.Now()))
	require.NoError(t, artifact.Promote())

	_, err := os.Stat(artifact.CurrentPath)
	assert.NoError(t, err)
	_, err = os.Stat(artifact.OldPath)
	assert.True(t, os.IsNotExist(err))
}
