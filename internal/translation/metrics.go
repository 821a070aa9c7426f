package translation

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	translationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deeplquery_translation_requests_total",
			Help: "Total number of translation requests sent to a backend",
		},
		[]string{"engine", "status"},
	)

	translationRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "deeplquery_translation_request_duration_seconds",
			Help:    "Duration of translation requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0},
		},
		[]string{"engine", "status"},
	)
)

// Request outcome labels
const (
	StatusSuccess        = "success"
	StatusTransportError = "transport_error"
	StatusDecodeError    = "decode_error"
)

// Instrument wraps t so every request that reaches the network is counted
// and timed. Short-circuited requests (missing key) are not recorded.
func Instrument(t Translator) Translator {
	return &instrumented{next: t}
}

type instrumented struct {
	next Translator
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) Translate(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	resp, err := i.next.Translate(ctx, req)
	if errors.Is(err, ErrMissingAPIKey) {
		return resp, err
	}

	status := Status(err)
	translationRequestsTotal.WithLabelValues(i.next.Name(), status).Inc()
	translationRequestDuration.WithLabelValues(i.next.Name(), status).Observe(time.Since(start).Seconds())
	return resp, err
}

// Status classifies err into a metric label.
func Status(err error) string {
	var decodeErr *DecodeError
	switch {
	case err == nil:
		return StatusSuccess
	case errors.As(err, &decodeErr):
		return StatusDecodeError
	default:
		return StatusTransportError
	}
}
