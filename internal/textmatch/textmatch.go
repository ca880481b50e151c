// Package textmatch provides name similarity metrics selectable by name.
package textmatch

import (
	"fmt"
	"sort"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Metric names accepted by the default registry.
const (
	RatcliffObershelp = "ratcliff-obershelp"
	JaroWinkler       = "jaro-winkler"
	Levenshtein       = "levenshtein"
	SorensenDice      = "sorensen-dice"
	Jaccard           = "jaccard"
)

// Metric computes a similarity ratio in [0, 1]; implementations must be symmetric.
type Metric interface {
	Name() string
	Ratio(a, b string) float64
}

// Registry keeps a mapping from metric names to their implementations.
type Registry struct {
	metrics map[string]Metric
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{metrics: map[string]Metric{}}
}

// DefaultRegistry holds the built-in sequence matcher and the strutil metrics.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(SequenceMatcher{})
	r.Register(NewStrutilMetric(JaroWinkler, metrics.NewJaroWinkler()))
	r.Register(NewStrutilMetric(Levenshtein, metrics.NewLevenshtein()))
	r.Register(NewStrutilMetric(SorensenDice, metrics.NewSorensenDice()))
	r.Register(NewStrutilMetric(Jaccard, metrics.NewJaccard()))
	return r
}

// Register adds or replaces a metric implementation.
func (r *Registry) Register(metric Metric) {
	if r.metrics == nil {
		r.metrics = map[string]Metric{}
	}
	r.metrics[metric.Name()] = metric
}

// Resolve returns a metric by name or an error if it is absent.
// An empty name resolves to the Ratcliff/Obershelp sequence matcher.
func (r *Registry) Resolve(name string) (Metric, error) {
	if name == "" {
		name = RatcliffObershelp
	}
	if metric, ok := r.metrics[name]; ok {
		return metric, nil
	}
	return nil, fmt.Errorf("name metric %s is not registered", name)
}

// Names lists registered metrics in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StrutilMetric adapts a strutil.StringMetric to Metric.
type StrutilMetric struct {
	name   string
	metric strutil.StringMetric
}

// NewStrutilMetric wraps metric under the given registry name.
func NewStrutilMetric(name string, metric strutil.StringMetric) StrutilMetric {
	return StrutilMetric{name: name, metric: metric}
}

// Name identifies the metric inside the registry.
func (m StrutilMetric) Name() string {
	return m.name
}

// Ratio compares the canonically ordered pair so the result never depends on argument order.
func (m StrutilMetric) Ratio(a, b string) float64 {
	a, b = canonical(a, b)
	return clamp(strutil.Similarity(a, b, m.metric))
}

func canonical(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
