package emoji

import (
	"reflect"
	"testing"
)

func TestSearchCutoffAndOrder(t *testing.T) {
	results := Search("fruit", false)
	if len(results) == 0 {
		t.Fatal("Search(\"fruit\", false) returned no results")
	}
	for i := 1; i < len(results); i++ {
		if results[i-1] > results[i] {
			t.Errorf("results not in deterministic tie-break order: %q before %q", results[i-1], results[i])
		}
	}
	for _, id := range results {
		found := false
		for _, e := range loadDataset() {
			if e.ID != id {
				continue
			}
			found = true
			hasFruit := false
			for _, k := range e.Keywords {
				if k == "fruit" {
					hasFruit = true
				}
			}
			if !hasFruit {
				t.Errorf("%q matched \"fruit\" but has no \"fruit\" keyword: %v", id, e.Keywords)
			}
		}
		if !found {
			t.Errorf("result %q not found in dataset", id)
		}
	}
}

func TestSearchIdempotent(t *testing.T) {
	first := Search("apple", true)
	second := Search("apple", true)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Search is not idempotent: %v != %v", first, second)
	}
}

// TestAppleScenario pins the per-keyword scores worked through explicitly in
// the specification for the dataset entry ("apple", ["apple","red_apple","fruit"]).
func TestAppleScenario(t *testing.T) {
	cases := []struct {
		query, keyword string
		exact          bool
		want           int
	}{
		{"apple", "apple", true, 100},
		{"app", "apple", false, 83},
		{"red", "red_apple", false, 70},
		{"red_apple", "red_apple", true, 100},
		{"fruit", "fruit", false, 100},
	}
	for _, c := range cases {
		if got := scoreKeyword(c.query, c.keyword, c.exact); got != c.want {
			t.Errorf("scoreKeyword(%q, %q, %v) = %d, want %d", c.query, c.keyword, c.exact, got, c.want)
		}
	}
}
