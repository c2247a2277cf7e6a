package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveUpstream(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequests.WithLabelValues("owm", "forecast", "200"))
	ObserveUpstream("owm", "forecast", 200)
	after := testutil.ToFloat64(UpstreamRequests.WithLabelValues("owm", "forecast", "200"))
	if after-before != 1 {
		t.Errorf("owm/forecast/200 counter increased by %v, want 1", after-before)
	}

	before = testutil.ToFloat64(UpstreamRequests.WithLabelValues("owm", "forecast", StatusError))
	ObserveUpstream("owm", "forecast", 0)
	after = testutil.ToFloat64(UpstreamRequests.WithLabelValues("owm", "forecast", StatusError))
	if after-before != 1 {
		t.Errorf("owm/forecast/error counter increased by %v, want 1", after-before)
	}
}
