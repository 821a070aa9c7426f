package plugin

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"codeberg.org/snonux/deeplquery/internal/config"
	"codeberg.org/snonux/deeplquery/internal/result"
	"codeberg.org/snonux/deeplquery/internal/translation"
	tu "codeberg.org/snonux/deeplquery/internal/testutil"
)

// deeplAt builds DeepL clients that talk to endpoint and records the configs it saw.
func deeplAt(endpoint string, seen *[]translation.Config) TranslatorFactory {
	var mu sync.Mutex
	return func(cfg translation.Config) (translation.Translator, error) {
		mu.Lock()
		*seen = append(*seen, cfg)
		mu.Unlock()
		return translation.NewDeepLClient(cfg.APIKey, cfg.UseFreeTier,
			translation.WithEndpoint(endpoint),
			translation.WithHTTPClient(cfg.HTTPClient),
		), nil
	}
}

func withSettings(overrides config.Config) config.Config {
	cfg := config.Default()
	for k, v := range overrides {
		cfg[k] = v
	}
	return cfg
}

type fixture struct {
	plugin    *Plugin
	server    *tu.MockDeepLServer
	clipboard *tu.MockClipboard
	hook      *test.Hook
	seen      []translation.Config
}

func newFixture(t *testing.T, status int, body string, overrides config.Config) *fixture {
	t.Helper()

	f := &fixture{
		server:    tu.NewMockDeepLServer(t, status, body),
		clipboard: &tu.MockClipboard{},
	}
	logger, hook := tu.NewTestLogger()
	f.hook = hook
	f.plugin = New("deepl-test", logger.WithField("plugin", "deepl-test"),
		WithClipboard(f.clipboard),
		WithTranslatorFactory(deeplAt(f.server.Endpoint(), &f.seen)),
	)
	f.plugin.LoadConfig(withSettings(overrides))
	return f
}

func TestNew(t *testing.T) {
	p := New("id-1", nil)

	if p.ID() != "id-1" {
		t.Errorf("Expected id-1, got %s", p.ID())
	}
	if p.Name() != "DeepL-Translate" {
		t.Errorf("Expected DeepL-Translate, got %s", p.Name())
	}
	if p.Color() != 0x2292A4FF {
		t.Errorf("Unexpected color %x", p.Color())
	}
	if _, ok := p.clipboard.(SystemClipboard); !ok {
		t.Errorf("Expected system clipboard by default, got %T", p.clipboard)
	}

	entries := p.ConfigEntries()
	for _, key := range []string{config.KeyAPIKey, config.KeyUseFreeTier, config.KeyIncludeQuery, config.KeyIncludeCodes} {
		if _, ok := entries[key]; !ok {
			t.Errorf("Expected config entry %q", key)
		}
	}
}

func TestSearch_Success(t *testing.T) {
	f := newFixture(t, http.StatusOK, tu.DeepLReply("EN", "Hallo"), config.Config{
		config.KeyAPIKey: config.StringEntry("secret"),
	})

	results := f.plugin.Search(context.Background(), "de: Hello")
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].DisplayText != "Hallo" || results[0].ClipboardText != "Hallo" {
		t.Errorf("Unexpected result: %+v", results[0])
	}

	reqs := f.server.Requests()
	if len(reqs) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(reqs))
	}
	if string(reqs[0].Body) != `{"text":["Hello"],"target_lang":"DE"}` {
		t.Errorf("Unexpected body: %s", reqs[0].Body)
	}
	if reqs[0].Header.Get("Authorization") != "DeepL-Auth-Key secret" {
		t.Errorf("Unexpected auth header: %s", reqs[0].Header.Get("Authorization"))
	}
}

func TestSearch_ClipboardFormatting(t *testing.T) {
	f := newFixture(t, http.StatusOK, tu.DeepLReply("EN", "Hallo"), config.Config{
		config.KeyAPIKey:       config.StringEntry("secret"),
		config.KeyIncludeQuery: config.BoolEntry(true),
		config.KeyIncludeCodes: config.BoolEntry(true),
	})

	results := f.plugin.Search(context.Background(), "de: Hello")
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].ClipboardText != "EN: Hello\nDE: Hallo" {
		t.Errorf("ClipboardText = %q", results[0].ClipboardText)
	}
}

func TestSearch_TierSelection(t *testing.T) {
	for _, free := range []bool{true, false} {
		f := newFixture(t, http.StatusOK, tu.DeepLReply("EN", "Hallo"), config.Config{
			config.KeyAPIKey:      config.StringEntry("secret"),
			config.KeyUseFreeTier: config.BoolEntry(free),
		})
		f.plugin.Search(context.Background(), "de: Hello")

		if len(f.seen) != 1 {
			t.Fatalf("Expected 1 translator, got %d", len(f.seen))
		}
		if f.seen[0].UseFreeTier != free {
			t.Errorf("Expected UseFreeTier=%v, got %v", free, f.seen[0].UseFreeTier)
		}
		if f.seen[0].HTTPClient != f.plugin.httpClient {
			t.Error("Expected the shared HTTP client to be passed on")
		}
	}
}

func TestSearch_PassesOpenAIModel(t *testing.T) {
	f := newFixture(t, http.StatusOK, tu.DeepLReply("EN", "Hallo"), config.Config{
		config.KeyAPIKey:      config.StringEntry("secret"),
		config.KeyOpenAIModel: config.StringEntry("gpt-4o"),
	})
	f.plugin.Search(context.Background(), "de: Hello")

	if len(f.seen) != 1 {
		t.Fatalf("Expected 1 translator, got %d", len(f.seen))
	}
	if f.seen[0].OpenAIModel != "gpt-4o" {
		t.Errorf("Expected OpenAIModel gpt-4o, got %q", f.seen[0].OpenAIModel)
	}
}

func TestSearch_MissingAPIKey(t *testing.T) {
	before := testutil.ToFloat64(queryFailuresTotal.WithLabelValues("missing_api_key"))

	f := newFixture(t, http.StatusOK, tu.DeepLReply("EN", "Hallo"), nil)

	results := f.plugin.Search(context.Background(), "de: Hello")
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
	if n := len(f.server.Requests()); n != 0 {
		t.Errorf("Expected no network call, got %d", n)
	}
	if len(f.seen) != 0 {
		t.Error("Expected no translator to be built")
	}
	tu.AssertLogged(t, f.hook, logrus.ErrorLevel, "No API key was provided")

	if got := testutil.ToFloat64(queryFailuresTotal.WithLabelValues("missing_api_key")) - before; got != 1 {
		t.Errorf("Expected 1 missing key failure recorded, got %v", got)
	}
}

func TestSearch_ParseFailures(t *testing.T) {
	tests := []struct {
		query string
		level logrus.Level
		msg   string
	}{
		{"de:", logrus.TraceLevel, "No query was provided"},
		{"de Hello", logrus.WarnLevel, "No query body"},
		{"a->b->c: Hello", logrus.WarnLevel, "Too many arrows"},
		{"xx: Hello", logrus.WarnLevel, "Invalid target language code"},
		{"xx->de: Hello", logrus.WarnLevel, "Invalid source language code"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			f := newFixture(t, http.StatusOK, tu.DeepLReply("EN", "Hallo"), config.Config{
				config.KeyAPIKey: config.StringEntry("secret"),
			})

			results := f.plugin.Search(context.Background(), tt.query)
			if len(results) != 0 {
				t.Errorf("Expected no results, got %+v", results)
			}
			if n := len(f.server.Requests()); n != 0 {
				t.Errorf("Expected no network call, got %d", n)
			}
			tu.AssertLogged(t, f.hook, tt.level, tt.msg)
		})
	}
}

func TestSearch_RemoteFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		msg    string
	}{
		{"bad json", http.StatusOK, "nope", "Failed to parse response"},
		{"auth failure", http.StatusForbidden, `{"message":"Forbidden"}`, "Failed to parse response"},
		{"missing detected language", http.StatusOK, `{"translations":[{"text":"Hallo"}]}`, "missing field detected_source_language"},
		{"empty item", http.StatusOK, `{"translations":[{}]}`, "Failed to parse response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.status, tt.body, config.Config{
				config.KeyAPIKey:       config.StringEntry("secret"),
				config.KeyIncludeQuery: config.BoolEntry(true),
				config.KeyIncludeCodes: config.BoolEntry(true),
			})

			results := f.plugin.Search(context.Background(), "de: Hello")
			if len(results) != 0 {
				t.Errorf("Expected no results, got %+v", results)
			}
			if n := len(f.server.Requests()); n != 1 {
				t.Errorf("Expected exactly one request (no retry), got %d", n)
			}
			tu.AssertLogged(t, f.hook, logrus.ErrorLevel, tt.msg)
		})
	}
}

func TestSearch_TransportFailure(t *testing.T) {
	f := newFixture(t, http.StatusOK, "{}", config.Config{
		config.KeyAPIKey: config.StringEntry("secret"),
	})
	f.server.Close()

	results := f.plugin.Search(context.Background(), "de: Hello")
	if len(results) != 0 {
		t.Errorf("Expected no results, got %+v", results)
	}
	tu.AssertLogged(t, f.hook, logrus.ErrorLevel, "Failed to send request")
}

func TestSearch_ReturnErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		query   string
		wantMsg string
	}{
		{"missing key", "", "de: Hello", "No API key"},
		{"empty body", "secret", "de:", "No query"},
		{"arrows", "secret", "a->b->c: x", "Invalid query"},
		{"bad target", "secret", "xx: x", "Invalid query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, http.StatusOK, tu.DeepLReply("EN", "Hallo"), config.Config{
				config.KeyAPIKey:       config.StringEntry(tt.key),
				config.KeyReturnErrors: config.BoolEntry(true),
			})

			results := f.plugin.Search(context.Background(), tt.query)
			if len(results) != 1 {
				t.Fatalf("Expected 1 message result, got %d", len(results))
			}
			if results[0].DisplayText != tt.wantMsg {
				t.Errorf("DisplayText = %q, want %q", results[0].DisplayText, tt.wantMsg)
			}
			if results[0].ClipboardText == "" {
				t.Error("Expected a detail in the clipboard text")
			}
			if !results[0].Failure {
				t.Error("Expected the message result to be marked as a failure")
			}
		})
	}
}

func TestSearch_UnknownEngine(t *testing.T) {
	f := newFixture(t, http.StatusOK, tu.DeepLReply("EN", "Hallo"), config.Config{
		config.KeyAPIKey: config.StringEntry("secret"),
		config.KeyEngine: config.StringEntry("babelfish"),
	})

	if results := f.plugin.Search(context.Background(), "de: Hello"); len(results) != 0 {
		t.Errorf("Expected no results, got %+v", results)
	}
	tu.AssertLogged(t, f.hook, logrus.ErrorLevel, "Invalid configuration")
}

func TestSearch_OpenAIEngineUsesOpenAIKey(t *testing.T) {
	baseURL, requests := tu.NewMockOpenAIServer(t, `{"detected_source_language":"EN","text":"Hallo"}`)
	clip := &tu.MockClipboard{}
	p := New("openai-test", nil,
		WithClipboard(clip),
		WithTranslatorFactory(func(cfg translation.Config) (translation.Translator, error) {
			return translation.NewOpenAIClient(cfg.APIKey, translation.WithOpenAIBaseURL(baseURL)), nil
		}),
	)
	p.LoadConfig(withSettings(config.Config{
		config.KeyAPIKey:    config.StringEntry("deepl-key"),
		config.KeyEngine:    config.StringEntry("openai"),
		config.KeyOpenAIKey: config.StringEntry("sk-test"),
	}))

	results := p.Search(context.Background(), "en->de: Hello")
	if len(results) != 1 || results[0].DisplayText != "Hallo" {
		t.Fatalf("Unexpected results: %+v", results)
	}
	if len(*requests) != 1 || (*requests)[0].Header.Get("Authorization") != "Bearer sk-test" {
		t.Errorf("Expected OpenAI key to be used, got %+v", *requests)
	}
}

func TestExecute(t *testing.T) {
	f := newFixture(t, http.StatusOK, "{}", nil)

	f.plugin.Execute(result.Result{DisplayText: "Hallo", ClipboardText: "EN: Hello\nDE: Hallo"})
	if got := f.clipboard.Last(); got != "EN: Hello\nDE: Hallo" {
		t.Errorf("Expected clipboard text, got %q", got)
	}
	tu.AssertLogged(t, f.hook, logrus.TraceLevel, "copied to clipboard")

	f.plugin.Execute(result.Result{DisplayText: "nothing"})
	if n := len(f.clipboard.Contents); n != 1 {
		t.Errorf("Expected empty clipboard text to be ignored, got %d writes", n)
	}
}

func TestExecute_ClipboardFailure(t *testing.T) {
	f := newFixture(t, http.StatusOK, "{}", nil)
	f.clipboard.Err = errors.New("no display")

	f.plugin.Execute(result.Result{DisplayText: "Hallo", ClipboardText: "Hallo"})
	tu.AssertLogged(t, f.hook, logrus.ErrorLevel, "failed to copy to clipboard")
}

func TestSearch_ConcurrentWithConfigReload(t *testing.T) {
	f := newFixture(t, http.StatusOK, tu.DeepLReply("EN", "Hallo"), config.Config{
		config.KeyAPIKey: config.StringEntry("secret"),
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			f.plugin.Search(context.Background(), "de: Hello")
		}()
		go func() {
			defer wg.Done()
			f.plugin.LoadConfig(withSettings(config.Config{
				config.KeyAPIKey:       config.StringEntry("secret"),
				config.KeyIncludeCodes: config.BoolEntry(true),
			}))
		}()
	}
	wg.Wait()

	if n := len(f.server.Requests()); n != 8 {
		t.Errorf("Expected 8 requests, got %d", n)
	}
}

func TestFailureReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{translation.ErrMissingAPIKey, "missing_api_key"},
		{&translation.TransportError{Err: errors.New("x")}, "transport_error"},
		{&translation.DecodeError{Err: errors.New("x")}, "decode_error"},
		{errors.New("other"), "invalid_config"},
	}
	for _, tt := range tests {
		if got := failureReason(tt.err); got != tt.want {
			t.Errorf("failureReason(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}
