package sanitize

import "strconv"

// LabelMap maps external vertex labels (arbitrary strings) to the
// contiguous internal ids a Complex uses, and back. It is assigned during
// sanitization — the point at which ids are first handed out — and owned
// afterward by the I/O layer: Complex itself never sees a label.
type LabelMap struct {
	ToID    map[string]int
	ToLabel []string
}

// NewLabelMap returns an empty map ready for idFor.
func NewLabelMap() *LabelMap {
	return &LabelMap{ToID: make(map[string]int)}
}

// idFor returns label's id, assigning the next contiguous id on first
// appearance.
func (m *LabelMap) idFor(label string) int {
	if id, ok := m.ToID[label]; ok {
		return id
	}
	id := len(m.ToLabel)
	m.ToID[label] = id
	m.ToLabel = append(m.ToLabel, label)
	return id
}

// Label returns the external label for internal id v, or the decimal id
// itself if no map was built (pure sequence-mode runs have no labels).
func (m *LabelMap) Label(v int) string {
	if m == nil || v >= len(m.ToLabel) {
		return strconv.Itoa(v)
	}
	return m.ToLabel[v]
}

// N returns the number of distinct labels seen so far.
func (m *LabelMap) N() int { return len(m.ToLabel) }
