package gesture

// nearKeyDistances is a small insertion-ordered map from key index to a
// normalized squared distance. The "previous point is a local minimum"
// check needs to know insertion order (and membership), which a plain Go
// map cannot provide; no library in the retrieved corpus vendors a generic
// ordered map, so this purpose-built type replaces the original's
// IndexMap<usize, f32>.
type nearKeyDistances struct {
	keys  []int
	vals  []float32
	index map[int]int // key -> position in keys/vals
}

func newNearKeyDistances(capacity int) *nearKeyDistances {
	return &nearKeyDistances{
		keys:  make([]int, 0, capacity),
		vals:  make([]float32, 0, capacity),
		index: make(map[int]int, capacity),
	}
}

// Reset clears the map for reuse without reallocating its backing arrays.
func (m *nearKeyDistances) Reset() {
	m.keys = m.keys[:0]
	m.vals = m.vals[:0]
	clear(m.index)
}

// Set inserts or updates the distance for key, preserving insertion order on
// first insert.
func (m *nearKeyDistances) Set(key int, dist float32) {
	if pos, ok := m.index[key]; ok {
		m.vals[pos] = dist
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, dist)
}

// Get returns the distance for key and whether it is present.
func (m *nearKeyDistances) Get(key int) (float32, bool) {
	pos, ok := m.index[key]
	if !ok {
		return 0, false
	}
	return m.vals[pos], true
}

// Len returns the number of entries.
func (m *nearKeyDistances) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. The caller must not retain the
// slice past the next mutation.
func (m *nearKeyDistances) Keys() []int { return m.keys }
