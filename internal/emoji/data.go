package emoji

import (
	"embed"
	"encoding/json"
	"sort"
	"sync"

	"github.com/kittech/kbproximity/internal/kbutil"
)

//go:embed assets/emoji-en-US.json
var assetFS embed.FS

// entry is one emoji and its ordered keyword list, as loaded from the
// embedded dataset.
type entry struct {
	ID       string
	Keywords []string
}

var (
	datasetOnce sync.Once
	dataset     []entry
)

// loadDataset parses the embedded emoji-en-US.json exactly once per
// process. The JSON shape is a map of emoji to keyword list; entries are
// sorted by emoji so that search result ordering is deterministic across
// runs even though Go map iteration is not.
func loadDataset() []entry {
	datasetOnce.Do(func() {
		raw := kbutil.Must(assetFS.ReadFile("assets/emoji-en-US.json"))
		var parsed map[string][]string
		kbutil.Must0(json.Unmarshal(raw, &parsed))
		dataset = make([]entry, 0, len(parsed))
		for id, keywords := range parsed {
			dataset = append(dataset, entry{ID: id, Keywords: keywords})
		}
		sort.Slice(dataset, func(i, j int) bool { return dataset[i].ID < dataset[j].ID })
	})
	return dataset
}
