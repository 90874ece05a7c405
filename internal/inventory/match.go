// Package inventory holds the pure matching rules for the wine cellar.
// Whether to proceed despite a duplicate is a confirmation step at the HTTP
// boundary; the matching itself never decides.
package inventory

import (
	"strings"

	"github.com/tregobbi/backoffice-service/internal/domain"
)

// Key is the normalized equality tuple used for duplicate detection.
type Key struct {
	Description string
	Producer    string
	Vintage     int
	Format      string
}

// NormalizeKey builds the duplicate key for a wine item. Matching is
// case-insensitive and ignores surrounding and repeated inner whitespace.
func NormalizeKey(item domain.WineItem) Key {
	return Key{
		Description: normalize(item.Description),
		Producer:    normalize(item.Producer),
		Vintage:     item.Vintage,
		Format:      normalize(item.Format),
	}
}

// FindDuplicates returns the existing items whose key matches the
// candidate's, preserving their input order.
func FindDuplicates(candidate domain.WineItem, existing []domain.WineItem) []domain.WineItem {
	key := NormalizeKey(candidate)

	var matches []domain.WineItem
	for _, item := range existing {
		if item.ID != "" && item.ID == candidate.ID {
			continue
		}
		if NormalizeKey(item) == key {
			matches = append(matches, item)
		}
	}
	return matches
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
