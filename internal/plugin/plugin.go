package plugin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/deeplquery/internal/config"
	"codeberg.org/snonux/deeplquery/internal/query"
	"codeberg.org/snonux/deeplquery/internal/result"
	"codeberg.org/snonux/deeplquery/internal/translation"
)

// Name is the plugin name shown by the host.
const Name = "DeepL-Translate"

// Color is the RGBA color of the plugin name.
const Color uint32 = 0x2292A4FF

// Logger is the scoped logging sink provided by the host. *logrus.Entry
// satisfies it.
type Logger interface {
	Trace(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}

// Clipboard receives the text of executed results.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the desktop clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// TranslatorFactory builds a translator for the settings of one search.
type TranslatorFactory func(translation.Config) (translation.Translator, error)

// Plugin translates queries. It is safe for concurrent use.
type Plugin struct {
	id         string
	logger     Logger
	clipboard  Clipboard
	httpClient *http.Client
	newTrans   TranslatorFactory

	mu     sync.RWMutex
	config config.Config
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(p *Plugin) { p.clipboard = c }
}

// WithHTTPClient sets the HTTP client shared by all searches.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Plugin) { p.httpClient = c }
}

// WithTranslatorFactory replaces how translators are built, e.g. to point
// them at a test server.
func WithTranslatorFactory(f TranslatorFactory) Option {
	return func(p *Plugin) { p.newTrans = f }
}

// New creates a plugin with the default configuration. A nil logger logs
// through the logrus standard logger.
func New(id string, logger Logger, opts ...Option) *Plugin {
	if logger == nil {
		logger = logrus.WithField("plugin", id)
	}

	p := &Plugin{
		id:         id,
		logger:     logger,
		clipboard:  SystemClipboard{},
		httpClient: &http.Client{},
		newTrans:   translation.NewTranslator,
		config:     config.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the id the host assigned.
func (p *Plugin) ID() string { return p.id }

// Name returns the plugin name.
func (p *Plugin) Name() string { return Name }

// Color returns the RGBA color of the plugin name.
func (p *Plugin) Color() uint32 { return Color }

// ConfigEntries returns the recognized settings with their defaults.
func (p *Plugin) ConfigEntries() config.Config {
	return config.Default()
}

// LoadConfig replaces the active settings. Searches already running keep
// the settings they started with.
func (p *Plugin) LoadConfig(cfg config.Config) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.config = cfg
}

func (p *Plugin) settings() config.Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.config.Settings()
}

// Search translates raw and returns the presentable results. It blocks
// for the duration of one request to the translation service.
func (p *Plugin) Search(ctx context.Context, raw string) []result.Result {
	s := p.settings()

	results, err := p.search(ctx, raw, s)
	if err != nil {
		p.logFailure(err)
		recordFailure(err)
		if s.ReturnErrors {
			return []result.Result{failureMessage(err)}
		}
		return []result.Result{}
	}
	return results
}

func (p *Plugin) search(ctx context.Context, raw string, s config.Settings) ([]result.Result, error) {
	engine, err := translation.ParseEngine(s.Engine)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	apiKey := s.APIKey
	if engine == translation.EngineOpenAI {
		apiKey = s.OpenAIKey
	}
	if apiKey == "" {
		return nil, translation.ErrMissingAPIKey
	}

	req, err := query.Parse(raw)
	if err != nil {
		return nil, err
	}

	translator, err := p.newTrans(translation.Config{
		Engine:      engine,
		APIKey:      apiKey,
		UseFreeTier: s.UseFreeTier,
		OpenAIModel: s.OpenAIModel,
		HTTPClient:  p.httpClient,
		Logger:      loggerFor(p.logger),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	resp, err := translation.Instrument(translator).Translate(ctx, req)
	if err != nil {
		return nil, err
	}

	return result.Format(req, resp, result.Options{
		IncludeQuery: s.IncludeQuery,
		IncludeCodes: s.IncludeCodes,
	}), nil
}

// Execute copies the clipboard text of r. Results without clipboard text
// are ignored.
func (p *Plugin) Execute(r result.Result) {
	if r.ClipboardText == "" {
		return
	}

	if err := p.clipboard.WriteAll(r.ClipboardText); err != nil {
		p.logger.Error(fmt.Sprintf("failed to copy to clipboard: %s: %v", r.ClipboardText, err))
		return
	}
	p.logger.Trace(fmt.Sprintf("copied to clipboard: %s", r.ClipboardText))
}

func (p *Plugin) logFailure(err error) {
	var perr *query.ParseError
	switch {
	case errors.As(err, &perr):
		if perr.Reason.Benign() {
			p.logger.Trace(capitalize(perr.Error()))
		} else {
			p.logger.Warn(capitalize(perr.Error()))
		}
	default:
		p.logger.Error(capitalize(err.Error()))
	}
}

// loggerFor hands the host logger to the translator when it can take
// structured fields.
func loggerFor(l Logger) logrus.FieldLogger {
	if fl, ok := l.(logrus.FieldLogger); ok {
		return fl
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
