package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/moogo"
	"github.com/hupe1980/moogo/pointset"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	c.RecordOperation("hypervolume", 10, time.Millisecond, nil)
	c.RecordOperation("hypervolume", 5, time.Millisecond, nil)
	c.RecordOperation("igd", 3, time.Microsecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.operations.WithLabelValues("hypervolume", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("igd", "error")))
	assert.Equal(t, 15.0, testutil.ToFloat64(c.rows.WithLabelValues("hypervolume")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.latency))
}

func TestPrometheusCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	_, err = NewPrometheusCollector(reg)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}

func TestPrometheusCollectorWithEngine(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	eng := moogo.New(moogo.WithMetricsCollector(c))
	front := pointset.MustFromRows([][]float64{{1, 2}, {2, 1}})
	_, err = eng.Hypervolume(front, []float64{3, 3}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("hypervolume", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.rows.WithLabelValues("hypervolume")))
}
