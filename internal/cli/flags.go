package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	LogLevel    string
	BatchFile   string
	Copy        bool
	Clipboard   bool
	Timeout     time.Duration
	MetricsFile string

	// Settings passed on to the translator
	APIKey       string
	FreeTier     bool
	IncludeQuery bool
	IncludeCodes bool
	ReturnErrors bool
	Engine       string
	OpenAIKey    string
	OpenAIModel  string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel: "warn",
		Timeout:  30 * time.Second,
		FreeTier: true,
		Engine:   "deepl",
	}
}
