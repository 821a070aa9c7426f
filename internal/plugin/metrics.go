package plugin

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"codeberg.org/snonux/deeplquery/internal/query"
	"codeberg.org/snonux/deeplquery/internal/translation"
)

var queryFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "deeplquery_query_failures_total",
		Help: "Total number of searches that produced no translation, by reason",
	},
	[]string{"reason"},
)

func recordFailure(err error) {
	queryFailuresTotal.WithLabelValues(failureReason(err)).Inc()
}

func failureReason(err error) string {
	var (
		perr         *query.ParseError
		transportErr *translation.TransportError
		decodeErr    *translation.DecodeError
	)

	switch {
	case errors.Is(err, translation.ErrMissingAPIKey):
		return "missing_api_key"
	case errors.As(err, &perr):
		return perr.Reason.Label()
	case errors.As(err, &transportErr):
		return translation.StatusTransportError
	case errors.As(err, &decodeErr):
		return translation.StatusDecodeError
	default:
		return "invalid_config"
	}
}
