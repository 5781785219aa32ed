package emoji

import (
	"math"
	"sort"
	"strings"
)

const (
	// ScoreMax is the score assigned to an exact keyword match, and the cap
	// every other scoring path saturates at.
	ScoreMax = 100
	// ScoreCutoff is the minimum score a result must reach to be returned.
	ScoreCutoff = 87
)

var exactQueryStopwords = map[string]bool{
	"with": true, "in": true, "no": true, "and": true, "of": true,
	"the": true, "me": true, "on": true, "a": true,
}

// Search returns emoji ids whose keyword lists score at least ScoreCutoff
// against query, ordered by descending score (ties broken by id so the
// result is deterministic). When exact is true only the exact/prefix/suffix/
// infix keyword-segment matches from the specification's exact-mode scoring are
// considered; otherwise the fuzzy scoring (prefix ratio, substring,
// Levenshtein-ratio-plus-prefix-bonus) applies.
func Search(query string, exact bool) []string {
	entries := loadDataset()
	type scored struct {
		id    string
		score int
	}
	results := make([]scored, 0, len(entries))

	for _, e := range entries {
		maxScore := 0
		for _, keyword := range e.Keywords {
			score := scoreKeyword(query, keyword, exact)
			if score > maxScore {
				maxScore = score
			}
			if maxScore == ScoreMax {
				break
			}
		}
		if maxScore >= ScoreCutoff {
			results = append(results, scored{id: e.ID, score: maxScore})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].id < results[j].id
	})

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.id
	}
	return ids
}

func scoreKeyword(query, keyword string, exact bool) int {
	if keyword == query {
		return ScoreMax
	}
	if !exact {
		return scoreFuzzy(query, keyword)
	}
	return scoreExact(query, keyword)
}

func scoreExact(query, keyword string) int {
	switch {
	case strings.HasPrefix(keyword, query+"_"):
		return 99
	case strings.HasSuffix(keyword, "_"+query):
		return 97
	case !exactQueryStopwords[query] && strings.Contains(keyword, "_"+query+"_"):
		return 96
	default:
		return 0
	}
}

func scoreFuzzy(query, keyword string) int {
	lenQuery := len([]rune(query))
	lenKeyword := len([]rune(keyword))

	switch {
	case strings.HasPrefix(keyword, query):
		lenLong, lenShort := lenKeyword, lenQuery
		if lenQuery > lenKeyword {
			lenLong, lenShort = lenQuery, lenKeyword
		}
		return ScoreMax - roundToInt(float64(lenLong)/float64(lenShort)*10.0)
	case strings.Contains(keyword, query):
		return 90
	default:
		distance := levenshtein(query, keyword)
		lenSum := lenQuery + lenKeyword
		if lenSum == 0 {
			return 0
		}
		ratio := float64(lenSum-distance) / float64(lenSum)
		bonus := float64(commonPrefixLen(query, keyword))
		score := roundToInt(ratio*100.0 + bonus*5.5)
		if score > ScoreMax {
			return ScoreMax
		}
		return score
	}
}

func roundToInt(f float64) int {
	return int(math.Round(f))
}

// commonPrefixLen returns the number of leading bytes shared by a and b,
// mirroring the original's chunked mismatch() helper (which exists purely
// as a cache-friendly SIMD-able way to compute the same count).
func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// levenshtein returns the edit distance between a and b over Unicode code
// points. No library in the retrieved corpus vendors an edit-distance
// implementation, so this small dynamic-programming version replaces the
// original's `levenshtein` crate dependency; see DESIGN.md.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			cur[j] = minInt(del, minInt(ins, sub))
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
