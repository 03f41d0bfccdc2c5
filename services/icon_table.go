package services

import "veggiemap-server/models"

type iconRule struct {
	Key   string
	Value string
	Icon  models.IconAssignment
}

// defaultIcon is used when no rule in iconTable matches.
var defaultIcon = models.IconAssignment{Icon: "maki_star-stroked", Emoji: ""}

// iconTable maps a tag key/value pair to a marker icon and a title emoji.
// The table is evaluated top to bottom and the first match wins, so the
// order is significant: the pizza rule is intentionally listed before the
// otherwise alphabetical rest (a pizza restaurant should get the pizza
// icon, not the restaurant icon).
var iconTable = []iconRule{
	{"cuisine", "pizza", models.IconAssignment{Icon: "maki_restaurant-pizza", Emoji: "🍕"}},
	{"amenity", "bar", models.IconAssignment{Icon: "bar", Emoji: "🍸"}},
	{"amenity", "bbq", models.IconAssignment{Icon: "bbq", Emoji: "🍴"}},
	{"amenity", "cafe", models.IconAssignment{Icon: "cafe", Emoji: "☕"}},
	{"amenity", "cinema", models.IconAssignment{Icon: "cinema", Emoji: "🎦"}},
	{"amenity", "college", models.IconAssignment{Icon: "maki_college", Emoji: "🎓"}},
	{"amenity", "fast_food", models.IconAssignment{Icon: "fast_food", Emoji: "🍔"}},
	{"amenity", "food_court", models.IconAssignment{Icon: "restaurant", Emoji: "🍽️"}},
	{"amenity", "fuel", models.IconAssignment{Icon: "fuel", Emoji: "⛽"}},
	{"amenity", "hospital", models.IconAssignment{Icon: "hospital", Emoji: "🏥"}},
	{"amenity", "ice_cream", models.IconAssignment{Icon: "ice_cream", Emoji: "🍨"}},
	{"amenity", "kindergarten", models.IconAssignment{Icon: "playground", Emoji: "🧒"}},
	{"amenity", "pharmacy", models.IconAssignment{Icon: "pharmacy", Emoji: "💊"}},
	{"amenity", "place_of_worship", models.IconAssignment{Icon: "place_of_worship", Emoji: "🛐"}},
	{"amenity", "pub", models.IconAssignment{Icon: "pub", Emoji: "🍻"}},
	{"amenity", "restaurant", models.IconAssignment{Icon: "restaurant", Emoji: "🍽️"}},
	{"amenity", "school", models.IconAssignment{Icon: "maki_school", Emoji: "🏫"}},
	{"amenity", "shelter", models.IconAssignment{Icon: "shelter", Emoji: "☂️"}},
	{"amenity", "swimming_pool", models.IconAssignment{Icon: "maki_swimming", Emoji: "🏊‍♀️"}},
	{"amenity", "theatre", models.IconAssignment{Icon: "theatre", Emoji: "🎭"}},
	{"amenity", "university", models.IconAssignment{Icon: "maki_college", Emoji: "🎓"}},
	{"amenity", "vending_machine", models.IconAssignment{Icon: "maki_shop", Emoji: "🛒"}},
	{"historic", "memorial", models.IconAssignment{Icon: "monument", Emoji: "🗿"}},
	{"leisure", "golf_course", models.IconAssignment{Icon: "golf", Emoji: "🏌️"}},
	{"leisure", "pitch", models.IconAssignment{Icon: "maki_pitch", Emoji: "🏃"}},
	{"leisure", "sports_centre", models.IconAssignment{Icon: "sports", Emoji: "🤼"}},
	{"leisure", "stadium", models.IconAssignment{Icon: "maki_stadium", Emoji: "🏟️"}},
	{"shop", "alcohol", models.IconAssignment{Icon: "alcohol", Emoji: "🍷"}},
	{"shop", "bakery", models.IconAssignment{Icon: "bakery", Emoji: "🥯"}},
	{"shop", "beauty", models.IconAssignment{Icon: "beauty", Emoji: "💇"}},
	{"shop", "bicycle", models.IconAssignment{Icon: "bicycle", Emoji: "🚲"}},
	{"shop", "books", models.IconAssignment{Icon: "library", Emoji: "📚"}},
	{"shop", "butcher", models.IconAssignment{Icon: "butcher", Emoji: "🔪"}},
	{"shop", "clothes", models.IconAssignment{Icon: "clothes", Emoji: "👚"}},
	{"shop", "confectionery", models.IconAssignment{Icon: "confectionery", Emoji: "🍬"}},
	{"shop", "convenience", models.IconAssignment{Icon: "convenience", Emoji: "🏪"}},
	{"shop", "department_store", models.IconAssignment{Icon: "department_store", Emoji: "🏬"}},
	{"shop", "doityourself", models.IconAssignment{Icon: "diy", Emoji: "🛠️"}},
	{"shop", "fishmonger", models.IconAssignment{Icon: "maki_shop", Emoji: "🐟"}},
	{"shop", "garden_centre", models.IconAssignment{Icon: "garden-centre", Emoji: "🏡"}},
	{"shop", "general", models.IconAssignment{Icon: "maki_shop", Emoji: "🛒"}},
	{"shop", "gift", models.IconAssignment{Icon: "gift", Emoji: "🎁"}},
	{"shop", "greengrocer", models.IconAssignment{Icon: "greengrocer", Emoji: "🍏"}},
	{"shop", "hairdresser", models.IconAssignment{Icon: "hairdresser", Emoji: "💇"}},
	{"shop", "kiosk", models.IconAssignment{Icon: "maki_shop", Emoji: "🛒"}},
	{"shop", "music", models.IconAssignment{Icon: "music", Emoji: "🎶"}},
	{"shop", "supermarket", models.IconAssignment{Icon: "supermarket", Emoji: "🏪"}},
	{"shop", "wine", models.IconAssignment{Icon: "alcohol", Emoji: "🍷"}},
	{"tourism", "guest_house", models.IconAssignment{Icon: "guest_house", Emoji: "🏠"}},
	{"tourism", "museum", models.IconAssignment{Icon: "museum", Emoji: "🖼️"}},
}
