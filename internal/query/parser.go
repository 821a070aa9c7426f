package query

import (
	"strings"

	"codeberg.org/snonux/deeplquery/internal/lang"
	"codeberg.org/snonux/deeplquery/internal/translation"
)

const arrow = "->"

// Parse turns a raw query into a translation request. Only the first colon
// separates languages from text; later colons belong to the text. Arrows are
// only looked for left of that colon.
func Parse(raw string) (*translation.Request, error) {
	codes, body, found := strings.Cut(raw, ":")
	if !found {
		return nil, &ParseError{Reason: NoQueryBody}
	}

	codes = strings.TrimSpace(codes)
	if codes == "" {
		return nil, &ParseError{Reason: NoQueryBody}
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, &ParseError{Reason: EmptyBody}
	}

	parts := strings.Split(codes, arrow)
	switch len(parts) {
	case 1:
		target, err := resolveTarget(parts[0])
		if err != nil {
			return nil, err
		}
		return translation.NewRequest(body, target, nil), nil

	case 2:
		source, err := resolveSource(parts[0])
		if err != nil {
			return nil, err
		}
		target, err := resolveTarget(parts[1])
		if err != nil {
			return nil, err
		}
		return translation.NewRequest(body, target, &source), nil

	case 0:
		// strings.Split never returns an empty slice for a non-empty input.
		return nil, &ParseError{Reason: NoTargetCode}

	default:
		return nil, &ParseError{Reason: TooManyArrows}
	}
}

func normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

func resolveSource(token string) (lang.SourceCode, error) {
	token = normalize(token)
	code, ok := lang.ResolveSource(token)
	if !ok {
		return "", &ParseError{Reason: InvalidSourceCode, Token: token}
	}
	return code, nil
}

func resolveTarget(token string) (lang.TargetCode, error) {
	token = normalize(token)
	code, ok := lang.ResolveTarget(token)
	if !ok {
		return "", &ParseError{Reason: InvalidTargetCode, Token: token}
	}
	return code, nil
}
