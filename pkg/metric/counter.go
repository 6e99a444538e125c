package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IncrementalCounter is a labeled counter.
type IncrementalCounter interface {
	Increment(val ...string)
}

var _ IncrementalCounter = (*Counter)(nil)

// Counter is a registered counter vector.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// Vec exposes the underlying vector, mostly for tests.
func (c *Counter) Vec() *prometheus.CounterVec { return c.vec }

func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
