// Package main provides the CLI entry point for xlsxfixture.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsxfixture/pkg/xlsxfixture"
	"github.com/ukaji3/xlsxfixture/pkg/xlsxfixture/models"
	"go.uber.org/zap"
)

var (
	outputDir  string
	seed       uint64
	writeCSV   bool
	verbose    bool
	jsonOutput bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsxfixture",
		Short: "Generate synthetic xlsx test fixtures",
		Long: `xlsxfixture writes test-multi-sheet.xlsx (Products and Sales sheets)
and test-simple.xlsx (Products only) filled with random data.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	rootCmd.Flags().StringVarP(&outputDir, "dir", "d", ".", "Output directory (created if missing)")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible output (default: random)")
	rootCmd.Flags().BoolVar(&writeCSV, "csv", false, "Also write products.csv and sales.csv")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	verifyCmd := &cobra.Command{
		Use:   "verify [dir]",
		Short: "Check the structure of previously generated workbooks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runVerify,
	}
	verifyCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the inspected schemas as JSON")
	rootCmd.AddCommand(verifyCmd)

	return rootCmd
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	opts := xlsxfixture.DefaultOptions()
	opts.Dir = outputDir
	opts.CSV = writeCSV
	opts.Logger = logger
	if cmd.Flags().Changed("seed") {
		opts.Seed = &seed
	}

	report, err := xlsxfixture.Run(opts)
	if err != nil {
		logger.Error("fixture generation failed", zap.Error(err))
		return err
	}

	for _, file := range report.Files {
		fmt.Fprintln(cmd.OutOrStdout(), file.Summary())
	}
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	checks := []struct {
		file string
		want []models.SheetSchema
	}{
		{xlsxfixture.MultiSheetFile, xlsxfixture.ExpectedMultiSheet()},
		{xlsxfixture.SimpleFile, xlsxfixture.ExpectedSimple()},
	}

	var schemas []*models.WorkbookSchema
	for _, c := range checks {
		path := filepath.Join(dir, c.file)
		if err := xlsxfixture.Verify(path, c.want); err != nil {
			return err
		}
		if jsonOutput {
			schema, err := xlsxfixture.Inspect(path)
			if err != nil {
				return err
			}
			schemas = append(schemas, schema)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", c.file)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(schemas, "", "  ")
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}
	return nil
}
