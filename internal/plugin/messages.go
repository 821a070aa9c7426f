package plugin

import (
	"errors"

	"codeberg.org/snonux/deeplquery/internal/query"
	"codeberg.org/snonux/deeplquery/internal/result"
	"codeberg.org/snonux/deeplquery/internal/translation"
)

// failureMessage describes err as a result for hosts that show errors.
func failureMessage(err error) result.Result {
	var (
		perr         *query.ParseError
		transportErr *translation.TransportError
		decodeErr    *translation.DecodeError
	)

	switch {
	case errors.Is(err, translation.ErrMissingAPIKey):
		return result.Message("No API key", "No DeepL API key was provided")
	case errors.As(err, &perr):
		if perr.Reason == query.EmptyBody {
			return result.Message("No query", "No query was provided")
		}
		return result.Message("Invalid query", capitalize(perr.Error()))
	case errors.As(err, &transportErr):
		return result.Message("Request failed", capitalize(err.Error()))
	case errors.As(err, &decodeErr):
		return result.Message("Response failed", capitalize(err.Error()))
	default:
		return result.Message("Translation failed", capitalize(err.Error()))
	}
}
