package analysis

import (
	"sort"
	"strings"
)

// AggregateCompetitors merges the per-model competitor lists into one ranked
// list with a single record per exact name.
//
// Lists are concatenated in order; sources not listed in order are ignored and
// a nil order falls back to DefaultSourceOrder. A record keeps the highest
// score seen for its name and the domain of its first occurrence. The result
// is sorted by score descending, ties in first-seen order.
func AggregateCompetitors(sources map[Model][]CompetitorEntry, order []Model) []CompetitorRecord {
	if order == nil {
		order = DefaultSourceOrder
	}

	index := make(map[string]int)
	records := make([]CompetitorRecord, 0)
	for _, source := range order {
		for _, entry := range sources[source] {
			if strings.TrimSpace(entry.Name) == "" {
				continue
			}
			pos, seen := index[entry.Name]
			if !seen {
				index[entry.Name] = len(records)
				records = append(records, CompetitorRecord{
					Name:   entry.Name,
					Domain: entry.Domain,
					Score:  entry.Score,
				})
				continue
			}
			if entry.Score > records[pos].Score {
				records[pos].Score = entry.Score
			}
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	return records
}
