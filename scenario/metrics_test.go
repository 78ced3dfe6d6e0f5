package scenario

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	const in = "3\n3 3\n1 2\n2 3\n3 1\n2 1\n1 2\n2 1\n5 1\n"
	var out bytes.Buffer
	_, err := NewRunner(WithMetrics(m), WithKeepGoing()).Run(context.Background(), strings.NewReader(in), &out)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.results.WithLabelValues(ResultBipartite)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.results.WithLabelValues(ResultNotBipartite)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.results.WithLabelValues(ResultRejected)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.relations))
	assert.Equal(t, 1, testutil.CollectAndCount(m.size))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observe(&Scenario{}, true)
		m.reject()
	})
}

func TestMetrics_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}
