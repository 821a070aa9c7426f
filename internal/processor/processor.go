package processor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/deeplquery/internal/batch"
	"codeberg.org/snonux/deeplquery/internal/cli"
	"codeberg.org/snonux/deeplquery/internal/plugin"
	"codeberg.org/snonux/deeplquery/internal/result"
)

// pluginID is the id the command line host assigns to its plugin instance.
const pluginID = "deeplquery-cli"

// Processor handles the main query processing logic
type Processor struct {
	flags  *cli.Flags
	plugin *plugin.Plugin
	logger logrus.FieldLogger
	out    io.Writer
}

// NewProcessor creates a new query processor. The plugin settings come from
// the flags, the environment and the config file.
func NewProcessor(flags *cli.Flags, logger *logrus.Logger, opts ...plugin.Option) *Processor {
	entry := logger.WithField("plugin", plugin.Name)

	p := plugin.New(pluginID, entry, opts...)
	p.LoadConfig(cli.LoadConfig(flags))

	return &Processor{
		flags:  flags,
		plugin: p,
		logger: logger,
		out:    os.Stdout,
	}
}

// SetOutput redirects printed results to w.
func (p *Processor) SetOutput(w io.Writer) {
	p.out = w
}

// ProcessSingleQuery translates one query and prints its results
func (p *Processor) ProcessSingleQuery(ctx context.Context, raw string) error {
	if p.flags.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.flags.Timeout)
		defer cancel()
	}

	results := p.plugin.Search(ctx, raw)
	if len(results) == 0 {
		return fmt.Errorf("no translation for %q", raw)
	}

	for _, r := range results {
		fmt.Fprintln(p.out, p.text(r))
	}

	// With --return-errors a failure comes back as a single message result.
	if results[0].Failure {
		return fmt.Errorf("no translation for %q: %s", raw, results[0].DisplayText)
	}

	if p.flags.Copy {
		p.plugin.Execute(results[0])
	}
	return nil
}

// text picks what to print for r.
func (p *Processor) text(r result.Result) string {
	if p.flags.Clipboard && r.ClipboardText != "" {
		return r.ClipboardText
	}
	return r.DisplayText
}

// ProcessBatch translates every query of the batch file. A failed query
// does not stop the batch.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(p.out, "\n[%d/%d] %s\n", i+1, len(entries), entry.Query)

		if err := p.ProcessSingleQuery(ctx, entry.Query); err != nil {
			p.logger.WithFields(logrus.Fields{
				"line":  entry.Line,
				"query": entry.Query,
			}).Warn("Query failed")
			fmt.Fprintf(p.out, "  (failed)\n")
			errorCount++
			continue
		}
		processedCount++
	}

	// Print summary
	fmt.Fprintf(p.out, "\n=== Batch Summary ===\n")
	fmt.Fprintf(p.out, "Total queries: %d\n", len(entries))
	fmt.Fprintf(p.out, "Translated: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Fprintf(p.out, "Failed: %d\n", errorCount)
	}
	fmt.Fprintf(p.out, "=====================\n")

	if errorCount > 0 {
		return fmt.Errorf("%d of %d queries failed", errorCount, len(entries))
	}
	return nil
}

// WriteMetrics writes the default prometheus registry to the metrics file,
// if one was requested.
func (p *Processor) WriteMetrics() error {
	if p.flags.MetricsFile == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(p.flags.MetricsFile, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	p.logger.WithField("file", p.flags.MetricsFile).Debug("Wrote metrics")
	return nil
}
