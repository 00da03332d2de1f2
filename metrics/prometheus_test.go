// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.MetricFamily)
	for _, mf := range families {
		out[mf.GetName()] = mf
	}
	return out
}

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	shuffles := Counter("shuffles_total")
	actions := CounterVec("actions_total", []string{"action"})
	bars := Gauge("bars")
	frame := Histogram("frame_micros", BucketFrameMicros)

	shuffles.Add(1)
	for range 3 {
		// a second lookup hands back the cached meter
		Counter("shuffles_total").Add(1)
	}
	actions.AddWithLabel(2, map[string]string{"action": "grow"})
	actions.AddWithLabel(5, map[string]string{"action": "shrink"})
	bars.Set(20)
	bars.Add(-4)
	frame.Observe(150)
	frame.Observe(20_000)

	families := gather(t)

	require.Equal(t, float64(4), families["randseq_shuffles_total"].Metric[0].GetCounter().GetValue())

	var actionsTotal float64
	for _, m := range families["randseq_actions_total"].Metric {
		actionsTotal += m.GetCounter().GetValue()
	}
	require.Equal(t, float64(7), actionsTotal)

	require.Equal(t, float64(16), families["randseq_bars"].Metric[0].GetGauge().GetValue())

	hist := families["randseq_frame_micros"].Metric[0].GetHistogram()
	require.Equal(t, uint64(2), hist.GetSampleCount())
	require.Equal(t, float64(20_150), hist.GetSampleSum())
	require.Len(t, hist.GetBucket(), len(BucketFrameMicros))

	require.Contains(t, families, "randseq_process_resident_bytes")
	require.Contains(t, families, "randseq_process_cpu_user_milliseconds_total")
}

func TestPromHandler(t *testing.T) {
	InitializePrometheusMetrics()
	Counter("handler_hits").Add(1)

	server := httptest.NewServer(HTTPHandler())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLazyLoading(t *testing.T) {
	metrics = defaultNoopMetrics() // back to the default noop state

	lazyGauge := LazyLoadGauge("lazy_gauge")
	lazyCounter := LazyLoadCounter("lazy_counter")
	lazyCounterVec := LazyLoadCounterVec("lazy_counter_vec", []string{"action"})
	lazyHistogram := LazyLoadHistogram("lazy_histogram", BucketSequenceLen)

	// meters created after initialization are backed by prometheus
	InitializePrometheusMetrics()

	require.IsType(t, &promGaugeMeter{}, lazyGauge())
	require.IsType(t, &promCountMeter{}, lazyCounter())
	require.IsType(t, &promCountVecMeter{}, lazyCounterVec())
	require.IsType(t, &promHistogramMeter{}, lazyHistogram())

	// resolved once
	require.Same(t, lazyGauge(), lazyGauge())
}
