package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/deeplquery/internal"
	"codeberg.org/snonux/deeplquery/internal/config"
	"codeberg.org/snonux/deeplquery/internal/lang"
	"codeberg.org/snonux/deeplquery/internal/models"
	"codeberg.org/snonux/deeplquery/internal/translation"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deeplquery [query]",
		Short: "Translate text with DeepL from a one-line query",
		Long: `deeplquery translates text with the DeepL API.

A query names the target language, optionally preceded by the source
language, followed by a colon and the text:

  <target>: <text>
  <source> -> <target>: <text>

Languages are ISO codes or English names, in any case. Region variants
(en-gb, en-us, pt-br, pt-pt) are accepted as targets.

Examples:
  deeplquery "de: Hello"                   # detect source, translate to German
  deeplquery "english -> pt-br: Thank you"  # explicit source
  deeplquery --copy "fr: Good morning"     # copy the translation to the clipboard
  deeplquery --batch queries.txt           # one query per line`,
		Args:          cobra.MaximumNArgs(1),
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newModelsCommand(flags))

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.deeplquery.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: trace, debug, info, warn, error")

	// Local flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process queries from file (one per line)")
	cmd.Flags().BoolVar(&flags.Copy, "copy", false, "Copy the first result to the clipboard")
	cmd.Flags().BoolVar(&flags.Clipboard, "clipboard", false, "Print the clipboard text instead of the translation")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout for each translation request")
	cmd.Flags().StringVar(&flags.MetricsFile, "metrics-file", "", "Write prometheus metrics to this file when done")

	// Translator settings
	cmd.Flags().StringVar(&flags.APIKey, "api-key", "", "DeepL API key (default: $DEEPL_API_KEY or config file)")
	cmd.Flags().BoolVar(&flags.FreeTier, "free-tier", flags.FreeTier, "Use the DeepL free tier endpoint")
	cmd.Flags().BoolVar(&flags.IncludeQuery, "include-query", false, "Include the query in the clipboard text")
	cmd.Flags().BoolVar(&flags.IncludeCodes, "include-codes", false, "Prefix clipboard lines with language codes")
	cmd.Flags().BoolVar(&flags.ReturnErrors, "return-errors", false, "Show failures as results instead of nothing")
	cmd.Flags().StringVar(&flags.Engine, "engine", flags.Engine, "Translation engine: deepl or openai")
	cmd.Flags().StringVar(&flags.OpenAIKey, "openai-key", "", "OpenAI API key for --engine openai (default: $OPENAI_API_KEY or config file)")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", "", "OpenAI chat model for --engine openai (default "+translation.DefaultOpenAIModel+")")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag(config.ViperKey(config.KeyAPIKey), cmd.Flags().Lookup("api-key"))
	viper.BindPFlag(config.ViperKey(config.KeyUseFreeTier), cmd.Flags().Lookup("free-tier"))
	viper.BindPFlag(config.ViperKey(config.KeyIncludeQuery), cmd.Flags().Lookup("include-query"))
	viper.BindPFlag(config.ViperKey(config.KeyIncludeCodes), cmd.Flags().Lookup("include-codes"))
	viper.BindPFlag(config.ViperKey(config.KeyReturnErrors), cmd.Flags().Lookup("return-errors"))
	viper.BindPFlag(config.ViperKey(config.KeyEngine), cmd.Flags().Lookup("engine"))
	viper.BindPFlag(config.ViperKey(config.KeyOpenAIKey), cmd.Flags().Lookup("openai-key"))
	viper.BindPFlag(config.ViperKey(config.KeyOpenAIModel), cmd.Flags().Lookup("openai-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".deeplquery" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".deeplquery")
	}

	// Environment variables
	viper.SetEnvPrefix("DEEPLQUERY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", " ", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetDeepLKey retrieves the DeepL API key from the flag, environment or config
func GetDeepLKey(flags *Flags) string {
	if flags.APIKey != "" {
		return flags.APIKey
	}

	// Then check environment variable
	if key := os.Getenv("DEEPL_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString(config.ViperKey(config.KeyAPIKey))
}

// GetOpenAIKey retrieves the OpenAI API key from the flag, environment or config
func GetOpenAIKey(flags *Flags) string {
	if flags.OpenAIKey != "" {
		return flags.OpenAIKey
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString(config.ViperKey(config.KeyOpenAIKey))
}

// LoadConfig builds the translator settings from viper and the key lookups
func LoadConfig(flags *Flags) config.Config {
	cfg := config.FromViper(viper.GetViper())
	cfg[config.KeyAPIKey] = config.StringEntry(GetDeepLKey(flags))
	cfg[config.KeyOpenAIKey] = config.StringEntry(GetOpenAIKey(flags))
	return cfg
}

// NewLogger creates the stderr logger. Unknown levels fall back to warn.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithError(err).Warn("Invalid log level, using warn")
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the accepted source and target languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Source languages:")
			for _, code := range lang.SourceCodes() {
				fmt.Fprintf(out, "  %-6s %-22s %s\n", code, code.DisplayName(), strings.Join(lang.SourceTokens(code), ", "))
			}

			fmt.Fprintln(out, "\nTarget languages:")
			for _, code := range lang.TargetCodes() {
				fmt.Fprintf(out, "  %-6s %-22s %s\n", code, code.DisplayName(), strings.Join(lang.TargetTokens(code), ", "))
			}
			return nil
		},
	}
}

func newConfigCommand(flags *Flags) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as a YAML config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if !defaults {
				cfg = LoadConfig(flags)
			}
			return config.WriteYAML(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the default settings instead")
	return cmd
}

func newModelsCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the OpenAI chat models usable with --engine openai",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lister := models.NewLister(GetOpenAIKey(flags), "")
			return lister.PrintChatModels(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
