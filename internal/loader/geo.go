package loader

import (
	"errors"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/fr4nk3nst1ner/salarymap/internal/models"
)

// ErrInvalidGeoJSON is returned for boundary resources that are not a feature collection
var ErrInvalidGeoJSON = errors.New("invalid geojson feature collection")

// excludedRegions are dropped from the map layer
var excludedRegions = map[string]bool{
	"antarctica": true,
}

// ParseGeoJSON extracts map regions keyed by the two-letter iso_a2 property.
// Features without a valid code, duplicates and excluded regions are skipped.
// Regions are returned sorted by code.
func ParseGeoJSON(data []byte) ([]models.Region, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidGeoJSON
	}
	features := gjson.GetBytes(data, "features")
	if !features.IsArray() {
		return nil, ErrInvalidGeoJSON
	}

	seen := make(map[string]bool)
	var regions []models.Region
	features.ForEach(func(_, feature gjson.Result) bool {
		props := feature.Get("properties")
		code := strings.ToUpper(strings.TrimSpace(props.Get("iso_a2").String()))
		name := strings.TrimSpace(props.Get("name").String())
		if excludedRegions[strings.ToLower(name)] || !validCode(code) || seen[code] {
			return true
		}
		if name == "" {
			name = code
		}
		seen[code] = true
		regions = append(regions, models.Region{Code: code, Name: name})
		return true
	})

	sort.Slice(regions, func(i, j int) bool { return regions[i].Code < regions[j].Code })
	return regions, nil
}

func validCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
