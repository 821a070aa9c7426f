package translation

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// Translator sends one request and waits for the full reply.
type Translator interface {
	// Translate returns ErrMissingAPIKey, a *TransportError or a *DecodeError on failure.
	Translate(ctx context.Context, req *Request) (*Response, error)

	// Name returns the engine name
	Name() string
}

// Engine selects the translation backend.
type Engine string

const (
	// EngineDeepL uses the DeepL REST API.
	EngineDeepL Engine = "deepl"
	// EngineOpenAI asks an OpenAI chat model for a DeepL-shaped reply.
	EngineOpenAI Engine = "openai"
)

// Config holds what is needed to build a Translator.
type Config struct {
	Engine      Engine
	APIKey      string
	UseFreeTier bool // DeepL only
	OpenAIModel string

	// HTTPClient is shared by every translator built from the same host.
	HTTPClient *http.Client
	Logger     logrus.FieldLogger
}

// NewTranslator creates the translator for cfg.Engine. An empty engine means DeepL.
func NewTranslator(cfg Config) (Translator, error) {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	switch cfg.Engine {
	case EngineDeepL, "":
		return NewDeepLClient(cfg.APIKey, cfg.UseFreeTier,
			WithHTTPClient(cfg.HTTPClient),
			WithLogger(cfg.Logger),
		), nil
	case EngineOpenAI:
		return NewOpenAIClient(cfg.APIKey,
			WithOpenAIModel(cfg.OpenAIModel),
			WithOpenAIHTTPClient(cfg.HTTPClient),
		), nil
	default:
		return nil, fmt.Errorf("unknown translation engine: %s", cfg.Engine)
	}
}

// ParseEngine parses an engine name case-insensitively.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "deepl":
		return EngineDeepL, nil
	case "openai":
		return EngineOpenAI, nil
	default:
		return "", fmt.Errorf("unknown engine type: %s (supported: deepl, openai)", s)
	}
}
