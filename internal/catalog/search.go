package catalog

import (
	"fmt"
	"strings"
)

// SearchFilter holds the bucket tokens and keywords of a search request.
// Bucket tokens are small enumerated strings ("one".."five"); anything
// unrecognized is ignored rather than rejected.
type SearchFilter struct {
	Year       string
	MinPlayers string
	MaxPlayers string
	Playtime   string
	Keywords   []string
}

var yearBuckets = map[string]string{
	"one":   "yearpublished < 2000",
	"two":   "yearpublished BETWEEN 2000 AND 2010",
	"three": "yearpublished BETWEEN 2010 AND 2020",
	"four":  "yearpublished >= 2020",
}

var minPlayerBuckets = map[string]string{
	"one":   "minplayers = 1",
	"two":   "minplayers <= 2",
	"three": "minplayers <= 4",
	"four":  "minplayers <= 6",
}

var maxPlayerBuckets = map[string]string{
	"one":   "maxplayers <= 2",
	"two":   "maxplayers <= 4",
	"three": "maxplayers <= 6",
	"four":  "maxplayers <= 8",
	"five":  "maxplayers <= 12",
}

var playtimeBuckets = map[string]string{
	"one":   "playingtime <= 20",
	"two":   "playingtime <= 60",
	"three": "playingtime > 60",
	"four":  "playingtime > 120",
	"five":  "playingtime > 180",
}

// buildSearchQuery composes the SELECT for a filter. Every recognized
// bucket ANDs in one fixed range clause; every keyword ANDs in an OR-group
// over name and description, with the keyword itself always a bound
// parameter.
func buildSearchQuery(f SearchFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if c, ok := yearBuckets[f.Year]; ok {
		clauses = append(clauses, c)
	}
	if c, ok := minPlayerBuckets[f.MinPlayers]; ok {
		clauses = append(clauses, c)
	}
	if c, ok := maxPlayerBuckets[f.MaxPlayers]; ok {
		clauses = append(clauses, c)
	}
	if c, ok := playtimeBuckets[f.Playtime]; ok {
		clauses = append(clauses, c)
	}

	for _, kw := range f.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argn, argn+1))
		args = append(args, "%"+kw+"%", "%"+kw+"%")
		argn += 2
	}

	query := "SELECT " + gameColumns + " FROM board_game WHERE " + strings.Join(clauses, " AND ")
	return query, args
}
