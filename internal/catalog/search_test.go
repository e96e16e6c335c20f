package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchQuery_NoFilters(t *testing.T) {
	query, args := buildSearchQuery(SearchFilter{})

	assert.True(t, strings.HasSuffix(query, "WHERE 1=1"))
	assert.Empty(t, args)
}

func TestBuildSearchQuery_YearBuckets(t *testing.T) {
	cases := map[string]string{
		"one":   "yearpublished < 2000",
		"two":   "yearpublished BETWEEN 2000 AND 2010",
		"three": "yearpublished BETWEEN 2010 AND 2020",
		"four":  "yearpublished >= 2020",
	}
	for token, clause := range cases {
		query, _ := buildSearchQuery(SearchFilter{Year: token})
		assert.Contains(t, query, clause, "token %q", token)
	}
}

func TestBuildSearchQuery_PlayerAndPlaytimeBuckets(t *testing.T) {
	query, _ := buildSearchQuery(SearchFilter{MinPlayers: "one"})
	assert.Contains(t, query, "minplayers = 1")

	query, _ = buildSearchQuery(SearchFilter{MaxPlayers: "five"})
	assert.Contains(t, query, "maxplayers <= 12")

	query, _ = buildSearchQuery(SearchFilter{Playtime: "four"})
	assert.Contains(t, query, "playingtime > 120")
}

func TestBuildSearchQuery_UnknownTokensIgnored(t *testing.T) {
	query, args := buildSearchQuery(SearchFilter{
		Year:       "twelve",
		MinPlayers: "zero",
		MaxPlayers: "",
		Playtime:   "lots",
	})

	assert.True(t, strings.HasSuffix(query, "WHERE 1=1"))
	assert.Empty(t, args)
}

func TestBuildSearchQuery_KeywordsAreConjunctive(t *testing.T) {
	query, args := buildSearchQuery(SearchFilter{
		Year:       "one",
		MinPlayers: "two",
		Keywords:   []string{"cat", "dog"},
	})

	assert.Contains(t, query, "yearpublished < 2000")
	assert.Contains(t, query, "minplayers <= 2")
	assert.Contains(t, query, "(name ILIKE $1 OR description ILIKE $2)")
	assert.Contains(t, query, "(name ILIKE $3 OR description ILIKE $4)")
	assert.Equal(t, 2, strings.Count(query, " AND (name ILIKE"))
	assert.Equal(t, []any{"%cat%", "%cat%", "%dog%", "%dog%"}, args)
}

func TestBuildSearchQuery_BlankKeywordsSkipped(t *testing.T) {
	query, args := buildSearchQuery(SearchFilter{Keywords: []string{" ", "", "  risk "}})

	assert.Equal(t, 1, strings.Count(query, "ILIKE $1"))
	assert.Equal(t, []any{"%risk%", "%risk%"}, args)
}
