// Package stats derives summary figures from an already-loaded record set.
// Everything here is pure: no store access, no persisted cache.
package stats

import (
	"math"
	"strconv"
	"strings"

	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
)

type Summary struct {
	TotalRaiyat  int     `json:"totalRaiyat"`
	TotalRecords int     `json:"totalRecords"`
	TotalArea    float64 `json:"totalArea"`
}

type Share struct {
	Name       string  `json:"name"`
	Area       float64 `json:"area"`
	Percentage int     `json:"percentage"`
}

// Summarize computes the whole-project figures. TotalRaiyat counts distinct
// non-empty raiyat names appearing in records, deliberately not the roster
// size: a raiyat without records is not "active" and does not count.
func Summarize(records []aggregate.RecordView) Summary {
	summary := Summary{TotalRecords: len(records)}

	seen := make(map[string]bool)

	for _, record := range records {
		summary.TotalArea += Area(record.Rakwa)

		if record.RaiyatName != "" && !seen[record.RaiyatName] {
			seen[record.RaiyatName] = true
			summary.TotalRaiyat++
		}
	}

	return summary
}

// Distribution maps each raiyat name to its summed area and whole-percent
// share of the total, in order of first appearance. A zero total yields zero
// percentages.
func Distribution(records []aggregate.RecordView) []Share {
	var order []string
	areas := make(map[string]float64)

	for _, record := range records {
		if record.RaiyatName == "" {
			continue
		}
		if _, ok := areas[record.RaiyatName]; !ok {
			order = append(order, record.RaiyatName)
		}
		areas[record.RaiyatName] += Area(record.Rakwa)
	}

	var total float64
	for _, area := range areas {
		total += area
	}

	shares := make([]Share, 0, len(order))

	for _, name := range order {
		share := Share{Name: name, Area: areas[name]}
		if total > 0 {
			share.Percentage = int(math.Round(areas[name] / total * 100))
		}
		shares = append(shares, share)
	}

	return shares
}

// Area parses a rakwa string as a float. Missing or garbled values contribute
// zero rather than failing the aggregation.
func Area(rakwa *string) float64 {
	if rakwa == nil {
		return 0
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(*rakwa), 64)
	if err != nil {
		return 0
	}

	return value
}
