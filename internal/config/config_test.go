package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	s := Default().Settings()

	if s.APIKey != "" {
		t.Errorf("Expected empty API key, got %q", s.APIKey)
	}
	if !s.UseFreeTier {
		t.Error("Expected free tier by default")
	}
	if s.IncludeQuery || s.IncludeCodes || s.ReturnErrors {
		t.Errorf("Expected formatting toggles off by default, got %+v", s)
	}
	if s.Engine != "deepl" {
		t.Errorf("Expected deepl engine, got %s", s.Engine)
	}
}

func TestSettings_FallsBackOnMissingAndMistyped(t *testing.T) {
	cfg := Config{
		KeyAPIKey:       BoolEntry(true),
		KeyUseFreeTier:  StringEntry("no"),
		KeyIncludeQuery: BoolEntry(true),
	}
	s := cfg.Settings()

	if s.APIKey != "" {
		t.Errorf("Mistyped API key should fall back to empty, got %q", s.APIKey)
	}
	if !s.UseFreeTier {
		t.Error("Mistyped free tier should fall back to true")
	}
	if !s.IncludeQuery {
		t.Error("Expected IncludeQuery true")
	}
	if s.IncludeCodes {
		t.Error("Missing IncludeCodes should be false")
	}
}

func TestEntry(t *testing.T) {
	if v, ok := StringEntry("x").AsString(); !ok || v != "x" {
		t.Errorf("AsString = %q, %v", v, ok)
	}
	if _, ok := StringEntry("x").AsBool(); ok {
		t.Error("string entry should not be a bool")
	}
	if v, ok := BoolEntry(true).AsBool(); !ok || !v {
		t.Errorf("AsBool = %v, %v", v, ok)
	}
	if _, ok := BoolEntry(true).AsString(); ok {
		t.Error("bool entry should not be a string")
	}
}

func TestViperKey(t *testing.T) {
	tests := map[string]string{
		KeyAPIKey:       "deepl_api_key",
		KeyUseFreeTier:  "use_free_tier",
		KeyIncludeCodes: "include_language_code_in_clipboard",
	}
	for in, want := range tests {
		if got := ViperKey(in); got != want {
			t.Errorf("ViperKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFromViper_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `deepl_api_key: abc:fx
use_free_tier: false
include_query_in_clipboard: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig failed: %v", err)
	}

	s := FromViper(v).Settings()
	if s.APIKey != "abc:fx" {
		t.Errorf("Expected API key abc:fx, got %q", s.APIKey)
	}
	if s.UseFreeTier {
		t.Error("Expected paid tier")
	}
	if !s.IncludeQuery {
		t.Error("Expected IncludeQuery")
	}
	if s.IncludeCodes {
		t.Error("Expected IncludeCodes default false")
	}
}

func TestFromViper_Env(t *testing.T) {
	t.Setenv("DEEPLQUERY_INCLUDE_LANGUAGE_CODE_IN_CLIPBOARD", "true")
	t.Setenv("DEEPLQUERY_TRANSLATION_ENGINE", "openai")

	v := viper.New()
	v.SetEnvPrefix("DEEPLQUERY")
	v.AutomaticEnv()

	s := FromViper(v).Settings()
	if !s.IncludeCodes {
		t.Error("Expected IncludeCodes from env")
	}
	if s.Engine != "openai" {
		t.Errorf("Expected engine openai from env, got %s", s.Engine)
	}
	if !s.UseFreeTier {
		t.Error("Expected default free tier")
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, Default()); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"deepl_api_key: \"\"", "use_free_tier: true", "include_query_in_clipboard: false", "translation_engine: deepl"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	// The output must be readable back as a config file.
	var doc map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if len(doc) != len(Default()) {
		t.Errorf("Expected %d keys, got %d", len(Default()), len(doc))
	}
}
