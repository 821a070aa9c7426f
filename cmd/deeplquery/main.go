package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/deeplquery/internal/cli"
	"codeberg.org/snonux/deeplquery/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	if flags.BatchFile == "" && len(args) == 0 {
		return cmd.Help()
	}

	logger := cli.NewLogger(flags.LogLevel)

	// Create processor
	proc := processor.NewProcessor(flags, logger)

	var err error
	if flags.BatchFile != "" {
		// Process batch file
		err = proc.ProcessBatch(cmd.Context())
	} else {
		// Process single query
		err = proc.ProcessSingleQuery(cmd.Context(), args[0])
	}

	if merr := proc.WriteMetrics(); merr != nil {
		logger.WithError(merr).Error("Failed to write metrics file")
	}
	return err
}
