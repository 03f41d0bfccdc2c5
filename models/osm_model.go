package models

// OverpassResponse is the JSON envelope returned by an Overpass API mirror.
type OverpassResponse struct {
	Elements []Element `json:"elements"`
}

// Element is one raw OSM object from the Overpass response. Nodes carry
// lat/lon directly, ways carry a precomputed center.
type Element struct {
	ID     int64             `json:"id"`
	Type   string            `json:"type"`
	Tags   map[string]string `json:"tags"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *Center           `json:"center"`
}

// Center holds the centroid coordinates of a way.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Coordinates resolves the element's position by type. ok is false when
// either component is missing or zero, in which case the element must be
// skipped.
func (e *Element) Coordinates() (lat, lon float64, ok bool) {
	switch e.Type {
	case "way":
		if e.Center == nil {
			return 0, 0, false
		}
		lat, lon = e.Center.Lat, e.Center.Lon
	default:
		lat, lon = e.Lat, e.Lon
	}
	if lat == 0 || lon == 0 {
		return 0, 0, false
	}
	return lat, lon, true
}
