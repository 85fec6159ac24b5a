package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// IncrementalCounter is the subset of a labelled counter the menu needs.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter wraps a Prometheus counter vector.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// Vec exposes the underlying vector for inspection in tests.
func (c *Counter) Vec() *prometheus.CounterVec {
	return c.vec
}

// NewCounterWithRegistry creates and registers a labelled counter.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// Set holds the counters a menu reports into.
type Set struct {
	Draws  *Counter
	Clicks *Counter
}

// NewSet registers the menu counters on reg.
func NewSet(reg prometheus.Registerer) *Set {
	return &Set{
		Draws:  NewCounterWithRegistry(reg, "dockmenu_draws_total", "Completed menu draws by item source.", "source"),
		Clicks: NewCounterWithRegistry(reg, "dockmenu_item_clicks_total", "Item clicks by dispatch route.", "route"),
	}
}

// Snapshot flattens every counter in gatherer into "name{labels}" -> value.
func Snapshot(gatherer prometheus.Gatherer) (map[string]float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, family := range families {
		for _, m := range family.GetMetric() {
			key := family.GetName()
			for _, lp := range m.GetLabel() {
				key += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			if c := m.GetCounter(); c != nil {
				out[key] = c.GetValue()
			}
		}
	}
	return out, nil
}
