package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tregobbi/backoffice-service/internal/domain"
)

func wine(id, description, producer string, vintage int, format string) domain.WineItem {
	return domain.WineItem{
		ID:          id,
		Description: description,
		Producer:    producer,
		Vintage:     vintage,
		Format:      format,
	}
}

func TestNormalizeKey(t *testing.T) {
	a := NormalizeKey(wine("", "Barolo  Riserva", "G. CONTERNO", 2016, "0.75L"))
	b := NormalizeKey(wine("", "barolo riserva ", "g. conterno", 2016, "0.75l"))
	assert.Equal(t, a, b)
}

func TestFindDuplicatesMatchesNormalizedTuple(t *testing.T) {
	existing := []domain.WineItem{
		wine("1", "Barolo Riserva", "G. Conterno", 2016, "0.75L"),
		wine("2", "Barolo Riserva", "G. Conterno", 2017, "0.75L"),
		wine("3", "Barbaresco", "Gaja", 2016, "0.75L"),
	}

	candidate := wine("", "  barolo riserva", "g. conterno ", 2016, "0.75l")
	matches := FindDuplicates(candidate, existing)

	require.Len(t, matches, 1)
	assert.Equal(t, "1", matches[0].ID)
}

func TestFindDuplicatesVintageDistinguishes(t *testing.T) {
	existing := []domain.WineItem{
		wine("1", "Barolo", "Conterno", 2016, "0.75L"),
	}

	matches := FindDuplicates(wine("", "Barolo", "Conterno", 2018, "0.75L"), existing)
	assert.Empty(t, matches)
}

func TestFindDuplicatesSkipsSelf(t *testing.T) {
	existing := []domain.WineItem{
		wine("1", "Barolo", "Conterno", 2016, "0.75L"),
	}

	// Updating item 1 must not report itself as a duplicate.
	matches := FindDuplicates(wine("1", "Barolo", "Conterno", 2016, "0.75L"), existing)
	assert.Empty(t, matches)
}
