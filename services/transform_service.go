package services

import (
	"fmt"
	"html"
	"strings"

	"veggiemap-server/models"
)

type TransformService struct{}

func NewTransformService() *TransformService {
	return &TransformService{}
}

// Transform converts one raw Overpass element into a display-ready marker.
// ok is false when the element has no usable coordinates; such elements are
// filtered out, this is not an error.
func (s *TransformService) Transform(e models.Element) (models.Marker, bool) {
	// Convert characters into html entities to prevent escaping any code.
	// This is the only escaping pass, every later read works on the
	// escaped values.
	tags := EscapeTags(e.Tags)

	lat, lon, ok := e.Coordinates()
	if !ok {
		return models.Marker{}, false
	}

	icon := s.DetermineIcon(tags)
	category := s.Categorize(tags)
	name, title := composeName(tags, icon, e.Type, e.ID)

	marker := models.Marker{
		ID:       fmt.Sprintf("%s/%d", e.Type, e.ID),
		OSMID:    e.ID,
		OSMType:  e.Type,
		Lat:      lat,
		Lon:      lon,
		Name:     name,
		Title:    title,
		Icon:     icon,
		Category: category,
		Popup:    buildPopup(tags, name, e.Type, e.ID),
	}
	return marker, true
}

// EscapeTags returns a copy of the tag map with every value HTML-escaped.
func EscapeTags(tags map[string]string) map[string]string {
	escaped := make(map[string]string, len(tags))
	for k, v := range tags {
		escaped[k] = html.EscapeString(v)
	}
	return escaped
}

// DetermineIcon picks an icon for the marker via the ordered rule table.
// Tag values may carry several semicolon-separated entries, only the first
// one counts for icon selection.
func (s *TransformService) DetermineIcon(tags map[string]string) models.IconAssignment {
	for _, rule := range iconTable {
		t := tags[rule.Key]
		if t == "" {
			continue
		}
		if v, _, _ := strings.Cut(t, ";"); v == rule.Value {
			return rule.Icon
		}
	}
	return defaultIcon
}

// Categorize assigns exactly one diet category. The rules are checked in
// this exact order, an earlier rule always wins.
func (s *TransformService) Categorize(tags map[string]string) models.DietCategory {
	switch {
	case tags["diet:vegan"] == "only":
		return models.VeganOnly
	case tags["diet:vegetarian"] == "only" && tags["diet:vegan"] == "yes":
		return models.VegetarianOnly
	case tags["diet:vegan"] == "yes":
		return models.VeganFriendly
	case tags["diet:vegan"] == "limited":
		return models.VeganLimited
	default:
		// The Overpass query only returns elements with a vegetarian or
		// vegan diet tag, so everything left is vegetarian friendly.
		return models.VegetarianFriendly
	}
}

// composeName builds the popup name and the hover title. The name keeps its
// html entities (the browser decodes them inside the popup box), the title
// does not (the browser shows it verbatim), so the title is unescaped again
// and double quotes are replaced to keep them from breaking the quoted
// title attribute in the data file.
func composeName(tags map[string]string, icon models.IconAssignment, typ string, id int64) (name, title string) {
	if n, ok := tags["name"]; ok {
		name = fmt.Sprintf("%s %s", icon.Emoji, n)
		title = strings.ReplaceAll(html.UnescapeString(name), `"`, "”")
		return name, title
	}
	name = fmt.Sprintf("%s %s %d", icon.Emoji, typ, id)
	return name, name
}

// buildPopup assembles the marker popup html from the optional tag
// sections. Each section is left out when its tags are absent. The quotes
// are pre-escaped with backslashes because the popup ends up inside a
// double-quoted string in the data file.
func buildPopup(tags map[string]string, name, typ string, id int64) string {
	var popup strings.Builder

	fmt.Fprintf(&popup, `<b>%s</b> <a href=\"https://openstreetmap.org/%s/%d\" target=\"_blank\">*</a><hr/>`, name, typ, id)

	if cuisine, ok := tags["cuisine"]; ok {
		fmt.Fprintf(&popup, `<div class=\"popupflex-container\"><div>👩‍🍳</div><div>%s</div></div>`, cuisine)
	}

	if address := composeAddress(tags); address != "" {
		fmt.Fprintf(&popup, `<div class=\"popupflex-container\"><div>📍</div><div>%s</div></div>`, address)
	}

	if website := preferContact(tags, "website"); website != "" {
		// The scheme stays in the link target but is dropped from the
		// visible text.
		fmt.Fprintf(&popup, `<div class=\"popupflex-container\"><div>🌐</div><div><a href=\"%s\" target=\"_blank\">%s</a></div></div>`, website, strings.TrimPrefix(website, "https://"))
	}

	if email := preferContact(tags, "email"); email != "" {
		fmt.Fprintf(&popup, `<div class=\"popupflex-container\"><div>📧</div><div><a href=\"mailto:%s\" target=\"_blank\">%s</a><br/></div></div>`, email, email)
	}

	if phone := preferContact(tags, "phone"); phone != "" {
		fmt.Fprintf(&popup, `<div class=\"popupflex-container\"><div>☎️</div><div><a href=\"tel:%s\" target=\"_blank\">%s</a><br/></div></div>`, phone, phone)
	}

	if hours, ok := tags["opening_hours"]; ok {
		// Line breaks in the tag value would break the line-per-marker
		// structure of the data file.
		hours = strings.NewReplacer("\n", "", "\r", "").Replace(hours)
		hours = strings.ReplaceAll(hours, "; ", "<br/>")
		fmt.Fprintf(&popup, `<div class=\"popupflex-container\"><div>🕖</div><div>%s</div></div>`, hours)
	}

	return popup.String()
}

// composeAddress joins street+housenumber, city and country, each on its
// own line and each omitted individually when absent.
func composeAddress(tags map[string]string) string {
	var parts []string
	if street, ok := tags["addr:street"]; ok {
		parts = append(parts, street+" "+tags["addr:housenumber"])
	}
	if city, ok := tags["addr:city"]; ok {
		parts = append(parts, city)
	}
	if country, ok := tags["addr:country"]; ok {
		parts = append(parts, country)
	}
	return strings.Join(parts, "<br/>")
}

// preferContact resolves a contact tag, preferring the "contact:" prefixed
// variant over the bare one when both exist.
func preferContact(tags map[string]string, key string) string {
	if v, ok := tags["contact:"+key]; ok {
		return v
	}
	return tags[key]
}
