package stats

// Entry is one labeled statistic in a report.
type Entry struct {
	Label string
	Value Value
}

// Report is an ordered label→value mapping. Iteration order is insertion
// order, which the extractors derive from their catalogs; downstream
// presentation depends on it.
type Report struct {
	entries []Entry
	index   map[string]int
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{index: make(map[string]int)}
}

// Put appends a labeled value, or replaces the value in place when the
// label was already emitted.
func (r *Report) Put(label string, v Value) {
	if i, ok := r.index[label]; ok {
		r.entries[i].Value = v
		return
	}
	r.index[label] = len(r.entries)
	r.entries = append(r.entries, Entry{Label: label, Value: v})
}

// Get returns the value for a label.
func (r *Report) Get(label string) (Value, bool) {
	i, ok := r.index[label]
	if !ok {
		return Value{}, false
	}
	return r.entries[i].Value, true
}

// Has reports whether a label was emitted.
func (r *Report) Has(label string) bool {
	_, ok := r.index[label]
	return ok
}

// Entries returns the report rows in emission order. The slice is shared;
// callers must not mutate it.
func (r *Report) Entries() []Entry { return r.entries }

// Len returns the number of rows.
func (r *Report) Len() int { return len(r.entries) }

// Labels returns the labels in emission order.
func (r *Report) Labels() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Label
	}
	return out
}
