package browse

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// FilterConfig bundles tuning parameters for name filtering.
type FilterConfig struct {
	MinCoverage float64 // minimal share of the query that must match
	MaxSpread   int     // maximal distance between first and last match index
	MaxResults  int     // upper limit of returned results
}

// DefaultFilterConfig matches the interactive defaults: forgiving enough for
// short directory names, capped to keep the list quiet.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{MinCoverage: 0.6, MaxSpread: 40, MaxResults: 200}
}

// Filter returns the row indices whose names match the query, in row order
// for substring matches and ranked order for fuzzy matches. An empty query
// selects every row. Matching is case-insensitive; short queries use a plain
// substring check, longer ones fuzzy matching pruned by cfg.
func Filter(rs RowSet, query string, cfg FilterConfig) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	idx := make([]int, rs.Len())
	for i := range idx {
		idx[i] = i
	}
	if q == "" {
		return idx
	}

	base := make([]string, rs.Len())
	for i := 0; i < rs.Len(); i++ {
		base[i] = strings.ToLower(rs.At(i).Entry.Name)
	}

	if len(q) < 3 {
		return filterBySubstring(q, base, idx, cfg)
	}
	return filterByFuzzy(q, base, idx, cfg)
}

// filterBySubstring performs a simple substring check against the prepared
// base list and returns matching indices limited by cfg.MaxResults.
func filterBySubstring(q string, base []string, idx []int, cfg FilterConfig) []int {
	sub := make([]int, 0, min(cfg.MaxResults, len(idx)))
	for _, i := range idx {
		if strings.Contains(base[i], q) {
			sub = append(sub, i)
			if len(sub) >= cfg.MaxResults {
				break
			}
		}
	}
	return sub
}

// filterByFuzzy applies fuzzy matching on the subset defined by idx and
// filters results based on coverage and spread thresholds from cfg.
func filterByFuzzy(q string, base []string, idx []int, cfg FilterConfig) []int {
	subset := make([]string, len(idx))
	mapBack := make([]int, len(idx))
	for j, i := range idx {
		subset[j] = base[i]
		mapBack[j] = i
	}
	matches := fuzzy.Find(q, subset)

	pruned := make([]int, 0, len(matches))
	for _, mt := range matches {
		if matchCoverage(q, mt) < cfg.MinCoverage {
			continue
		}
		if matchSpread(mt) > cfg.MaxSpread {
			continue
		}
		pruned = append(pruned, mapBack[mt.Index])
		if len(pruned) >= cfg.MaxResults {
			break
		}
	}
	if len(pruned) == 0 {
		for i := 0; i < len(matches) && i < cfg.MaxResults; i++ {
			pruned = append(pruned, mapBack[matches[i].Index])
		}
	}
	return pruned
}

// matchCoverage returns the ratio of matched characters to the query length.
func matchCoverage(q string, m fuzzy.Match) float64 {
	if len(q) == 0 {
		return 1
	}
	return float64(len(m.MatchedIndexes)) / float64(len(q))
}

// matchSpread returns the distance between the first and last matched index.
func matchSpread(m fuzzy.Match) int {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	return m.MatchedIndexes[len(m.MatchedIndexes)-1] - m.MatchedIndexes[0]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
