// Package config models the key/value settings a host supplies to the
// translator: typed entries, their defaults, loading from viper and export
// as YAML.
package config

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Recognized setting keys
const (
	KeyAPIKey       = "DeepL Api Key"
	KeyUseFreeTier  = "Use free tier"
	KeyIncludeQuery = "Include query in clipboard"
	KeyIncludeCodes = "Include language code in clipboard"
	KeyReturnErrors = "Return error messages"
	KeyEngine       = "Translation engine"
	KeyOpenAIKey    = "OpenAI Api Key"
	KeyOpenAIModel  = "OpenAI model"
)

// Kind is the type of an entry
type Kind int

const (
	KindString Kind = iota
	KindBool
)

// Entry is one typed setting value.
type Entry struct {
	Kind   Kind
	String string
	Bool   bool
}

// StringEntry creates a string entry
func StringEntry(v string) Entry { return Entry{Kind: KindString, String: v} }

// BoolEntry creates a bool entry
func BoolEntry(v bool) Entry { return Entry{Kind: KindBool, Bool: v} }

// AsString returns the value if e is a string entry.
func (e Entry) AsString() (string, bool) {
	if e.Kind != KindString {
		return "", false
	}
	return e.String, true
}

// AsBool returns the value if e is a bool entry.
func (e Entry) AsBool() (bool, bool) {
	if e.Kind != KindBool {
		return false, false
	}
	return e.Bool, true
}

// MarshalYAML writes the bare value.
func (e Entry) MarshalYAML() (interface{}, error) {
	if e.Kind == KindBool {
		return e.Bool, nil
	}
	return e.String, nil
}

// Config maps setting keys to entries.
type Config map[string]Entry

// Default returns every recognized setting with its default value.
func Default() Config {
	return Config{
		KeyAPIKey:       StringEntry(""),
		KeyUseFreeTier:  BoolEntry(true),
		KeyIncludeQuery: BoolEntry(false),
		KeyIncludeCodes: BoolEntry(false),
		KeyReturnErrors: BoolEntry(false),
		KeyEngine:       StringEntry("deepl"),
		KeyOpenAIKey:    StringEntry(""),
		KeyOpenAIModel:  StringEntry(""),
	}
}

// GetString returns the string at key, or def when missing or not a string.
func (c Config) GetString(key, def string) string {
	if e, ok := c[key]; ok {
		if v, ok := e.AsString(); ok {
			return v
		}
	}
	return def
}

// GetBool returns the bool at key, or def when missing or not a bool.
func (c Config) GetBool(key string, def bool) bool {
	if e, ok := c[key]; ok {
		if v, ok := e.AsBool(); ok {
			return v
		}
	}
	return def
}

// Keys returns the keys of c sorted.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Settings is the resolved, typed view of a Config.
type Settings struct {
	APIKey       string
	UseFreeTier  bool
	IncludeQuery bool
	IncludeCodes bool
	ReturnErrors bool
	Engine       string
	OpenAIKey    string
	OpenAIModel  string
}

// Settings resolves c, falling back to the defaults for missing or
// mistyped entries.
func (c Config) Settings() Settings {
	return Settings{
		APIKey:       c.GetString(KeyAPIKey, ""),
		UseFreeTier:  c.GetBool(KeyUseFreeTier, true),
		IncludeQuery: c.GetBool(KeyIncludeQuery, false),
		IncludeCodes: c.GetBool(KeyIncludeCodes, false),
		ReturnErrors: c.GetBool(KeyReturnErrors, false),
		Engine:       c.GetString(KeyEngine, "deepl"),
		OpenAIKey:    c.GetString(KeyOpenAIKey, ""),
		OpenAIModel:  c.GetString(KeyOpenAIModel, ""),
	}
}

// ViperKey maps a setting key to its viper key ("Use free tier" -> "use_free_tier").
func ViperKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), " ", "_")
}

// FromViper builds a Config from the defaults overlaid with whatever v has set.
func FromViper(v *viper.Viper) Config {
	cfg := Default()
	for key, def := range cfg {
		vk := ViperKey(key)
		if !v.IsSet(vk) {
			continue
		}
		switch def.Kind {
		case KindBool:
			cfg[key] = BoolEntry(v.GetBool(vk))
		default:
			cfg[key] = StringEntry(v.GetString(vk))
		}
	}
	return cfg
}

// WriteYAML writes c as a YAML document keyed by viper keys, so the output
// can be used as a config file.
func WriteYAML(w io.Writer, c Config) error {
	doc := make(map[string]Entry, len(c))
	for key, e := range c {
		doc[ViperKey(key)] = e
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
