package types

// MetricSet represents metrics.json: the animated counters on the index
// page ("years of experience", "projects shipped", ...).
type MetricSet struct {
	Metrics []Metric `json:"metrics"`
}

// Metric is a single counter.
type Metric struct {
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Suffix string `json:"suffix,omitempty"`
	Icon   string `json:"icon,omitempty"`
}
