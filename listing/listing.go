package listing

import (
	"fmt"
	"strings"

	"github.com/mokiat/gog"
	"github.com/openstay/stayagent/errors"
	"github.com/tidwall/gjson"
)

// Listing is one accommodation pulled out of an airbnb_search tool result.
type Listing struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Price        string   `json:"price"`
	Rating       string   `json:"rating"`
	ReviewsCount int64    `json:"reviews_count"`
	Amenities    []string `json:"amenities,omitempty"`
}

// ParseSearchResults reads the searchResults array out of a raw airbnb_search
// response. The payload shape varies between server versions, so every field
// is read defensively from its known paths.
func ParseSearchResults(raw string) ([]Listing, error) {
	if !gjson.Valid(raw) {
		return nil, errors.Wrapf(errors.ErrInvalidParams, "search result is not valid JSON")
	}

	results := gjson.Get(raw, "searchResults")
	if !results.Exists() || !results.IsArray() {
		return nil, errors.Wrapf(errors.ErrInvalidParams, "search result has no searchResults array")
	}

	var listings []Listing
	results.ForEach(func(_, item gjson.Result) bool {
		l := Listing{
			ID:           item.Get("listing.id").String(),
			Name:         item.Get("listing.name").String(),
			Title:        item.Get("title.title").String(),
			URL:          item.Get("url").String(),
			Price:        item.Get("structuredDisplayPrice.primaryLine.accessibilityLabel").String(),
			Rating:       item.Get("avgRatingA11yLabel").String(),
			ReviewsCount: item.Get("reviewsCount").Int(),
		}
		if amenities := item.Get("listingParamOverrides.amenities"); amenities.IsArray() {
			l.Amenities = gog.Map(amenities.Array(), func(a gjson.Result) string {
				return a.String()
			})
		}
		listings = append(listings, l)
		return true
	})

	return listings, nil
}

// Format renders listings as a plain-text block, one entry per listing.
func Format(listings []Listing) string {
	if len(listings) == 0 {
		return "No listings found."
	}

	var sb strings.Builder
	for i, l := range listings {
		if i > 0 {
			sb.WriteString("\n")
		}

		name := l.Name
		if name == "" {
			name = l.Title
		}
		if name == "" {
			name = "(unnamed listing)"
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, name)
		if l.Price != "" {
			fmt.Fprintf(&sb, "   Price: %s\n", l.Price)
		}
		if l.Rating != "" {
			fmt.Fprintf(&sb, "   Rating: %s", l.Rating)
			if l.ReviewsCount > 0 {
				fmt.Fprintf(&sb, " (%d reviews)", l.ReviewsCount)
			}
			sb.WriteString("\n")
		}
		if len(l.Amenities) > 0 {
			fmt.Fprintf(&sb, "   Amenities: %s\n", strings.Join(l.Amenities, ", "))
		}
		if l.URL != "" {
			fmt.Fprintf(&sb, "   Link: %s\n", l.URL)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
