package models

// DietCategory is the mutually exclusive dietary classification of a marker.
type DietCategory string

const (
	VeganOnly          DietCategory = "vegan_only"
	VegetarianOnly     DietCategory = "vegetarian_only"
	VeganFriendly      DietCategory = "vegan_friendly"
	VeganLimited       DietCategory = "vegan_limited"
	VegetarianFriendly DietCategory = "vegetarian_friendly"
)

// IconAssignment is the marker icon and the emoji used in titles.
type IconAssignment struct {
	Icon  string `json:"icon" bson:"icon"`
	Emoji string `json:"emoji" bson:"emoji"`
}

// Marker is one display-ready point of interest. It is written into the
// map data file and, in serve mode, stored in MongoDB and Redis.
type Marker struct {
	ID       string         `json:"id" bson:"_id"`
	OSMID    int64          `json:"osm_id" bson:"osm_id"`
	OSMType  string         `json:"osm_type" bson:"osm_type"`
	Lat      float64        `json:"lat" bson:"lat"`
	Lon      float64        `json:"lon" bson:"lon"`
	Name     string         `json:"name" bson:"name"`
	Title    string         `json:"title" bson:"title"`
	Icon     IconAssignment `json:"icon_assignment" bson:"icon_assignment"`
	Category DietCategory   `json:"category" bson:"category"`
	Popup    string         `json:"popup" bson:"popup"`
}

// CategoryCounts holds the number of markers per category. The field names
// in the generated data file are a stable contract with the front-end.
type CategoryCounts struct {
	VeganOnly          int `json:"n_vegan_only" bson:"n_vegan_only"`
	VegetarianOnly     int `json:"n_vegetarian_only" bson:"n_vegetarian_only"`
	VeganFriendly      int `json:"n_vegan_friendly" bson:"n_vegan_friendly"`
	VeganLimited       int `json:"n_vegan_limited" bson:"n_vegan_limited"`
	VegetarianFriendly int `json:"n_vegetarian_friendly" bson:"n_vegetarian_friendly"`
}

// Add increments the counter for the given category.
func (c *CategoryCounts) Add(category DietCategory) {
	switch category {
	case VeganOnly:
		c.VeganOnly++
	case VegetarianOnly:
		c.VegetarianOnly++
	case VeganFriendly:
		c.VeganFriendly++
	case VeganLimited:
		c.VeganLimited++
	case VegetarianFriendly:
		c.VegetarianFriendly++
	}
}

// Total returns the sum over all categories.
func (c *CategoryCounts) Total() int {
	return c.VeganOnly + c.VegetarianOnly + c.VeganFriendly + c.VeganLimited + c.VegetarianFriendly
}
