package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"datasplit/internal/config"
	"datasplit/internal/logging"
	"datasplit/internal/splitter"
)

func newRootCommand() *cobra.Command {
	cfg := config.Default()
	var verbose bool
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:   "datasplit INPUT_DIR TARGET_DIR",
		Short: "Split paired datasets into train/val/test subfolders",
		Long: `Split paired datasets (e.g. dataset_A inputs and dataset_B targets) into
train/val/test subfolders.

Files are paired by base filename, so a.png in INPUT_DIR pairs with a.jpg in
TARGET_DIR. The pairs are shuffled with a seeded generator and copied into
INPUT_DIR/{train,val,test} and TARGET_DIR/{train,val,test}. Originals stay in
place. The same listing, ratios, and seed always produce the same split.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InputDir = args[0]
			cfg.TargetDir = args[1]
			if verbose {
				cfg.Logging.Level = "debug"
			}
			return runSplit(cmd, &cfg, jsonOutput)
		},
	}

	flags := rootCmd.Flags()
	flags.Float64Var(&cfg.Ratios.Train, "train", cfg.Ratios.Train, "Train ratio")
	flags.Float64Var(&cfg.Ratios.Val, "val", cfg.Ratios.Val, "Validation ratio")
	flags.Float64Var(&cfg.Ratios.Test, "test", cfg.Ratios.Test, "Test ratio")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	flags.BoolVar(&cfg.DryRun, "dry-run", false, "Print the assignment without creating directories or copying")
	flags.BoolVar(&cfg.Force, "force", false, "Copy even if split directories already contain files")
	flags.BoolVar(&cfg.Verify, "verify", false, "Verify every copy with SHA256")
	flags.BoolVar(&cfg.SkipSpaceCheck, "skip-space-check", false, "Skip the free disk space check")
	flags.BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	flags.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "Log format (console, json)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Shorthand for --log-level debug")

	return rootCmd
}

func runSplit(cmd *cobra.Command, cfg *config.Config, jsonOutput bool) error {
	if err := cfg.Normalize(); err != nil {
		return err
	}
	if err := requireDirectory("Input", cfg.InputDir); err != nil {
		return err
	}
	if err := requireDirectory("Target", cfg.TargetDir); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return splitter.Wrap(splitter.ErrConfiguration, "validate flags", "", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	opts := splitter.OptionsFromConfig(cfg)
	if !cfg.DryRun && cfg.Logging.Level != "debug" && isTerminal(cmd.ErrOrStderr()) {
		opts.NewProgress = newProgressBar(cmd.ErrOrStderr())
	}

	result, err := splitter.New(logger, opts).Split(splitter.RequestFromConfig(cfg))
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(cmd, newSplitReport(result, cfg.Seed))
	}
	out := cmd.OutOrStdout()
	if result.DryRun {
		fmt.Fprint(out, renderAssignmentTable(result))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, summaryLine(result))
	return nil
}

// requireDirectory rejects missing or non-directory paths before the splitter
// runs.
func requireDirectory(label, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return splitter.Wrap(splitter.ErrFileSystem, "",
			fmt.Sprintf("%s directory does not exist: %s", label, path), nil)
	}
	return nil
}
