package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sessilelab/dropletgen/pkg/batch"
	"github.com/sessilelab/dropletgen/pkg/catalog"
	"github.com/sessilelab/dropletgen/pkg/errors"
	"github.com/sessilelab/dropletgen/pkg/pipeline"
)

// batchOpts holds the command-line flags for the batch command.
type batchOpts struct {
	input     string // input CSV path
	outputDir string // output directory for PNGs
	workers   int    // worker pool size (0 = GOMAXPROCS)
	catalog   string // catalog target: JSONL path or mongodb:// URI
	annotate  bool
	clean     bool
	refresh   bool
	noCache   bool
}

// batchCommand creates the batch command for CSV-driven dataset generation.
func (c *CLI) batchCommand() *cobra.Command {
	opts := batchOpts{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate a dataset from a CSV of id,angle rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input CSV with id,angle columns (required)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "d", "output", "directory for generated images")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "worker pool size (default GOMAXPROCS)")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "record artifacts: JSONL path or mongodb:// URI")
	cmd.Flags().BoolVar(&opts.annotate, "annotate", false, "add caption strips")
	cmd.Flags().BoolVar(&opts.clean, "clean", false, "disable blur and noise")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate even if artifacts are cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runBatch parses the CSV, drives the worker pool, and prints a summary.
func (c *CLI) runBatch(cmd *cobra.Command, opts *batchOpts) error {
	ctx := cmd.Context()

	f, err := os.Open(opts.input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNotFound, err, "open input %s", opts.input)
	}
	rows, badRows, err := batch.Parse(f)
	f.Close()
	if err != nil {
		return err
	}
	c.Logger.Debug("parsed batch input", "rows", len(rows), "skipped", len(badRows))

	if err := os.MkdirAll(opts.outputDir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeConfiguration, err, "create output directory")
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	store, err := c.newCatalog(cmd, opts.catalog)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close(ctx)
	}

	sink := batch.DirSink(opts.outputDir)
	if store != nil {
		inner := sink
		sink = func(row batch.Row, result *pipeline.Result) error {
			if err := inner(row, result); err != nil {
				return err
			}
			rec := catalog.NewRecord(row.ID, row.Angle, result.Meta.Seed, result.Filename(), result.PNG)
			return store.Append(ctx, rec)
		}
	}

	base := pipeline.Options{
		Annotate: opts.annotate,
		Clean:    opts.clean,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	}
	c.Config.Apply(&base)

	report := batch.Run(ctx, runner, rows, base, opts.workers, sink)
	report.Skipped = append(report.Skipped, badRows...)

	printBatchSummary(opts.outputDir, report)
	if len(report.Written) == 0 && len(report.Skipped) > 0 {
		return errors.New(errors.ErrCodeInternal, "no images generated (%d rows failed)", len(report.Skipped))
	}
	return nil
}

// printBatchSummary prints the generated files and a table of skipped rows.
func printBatchSummary(dir string, report batch.Report) {
	if len(report.Written) == 0 && len(report.Skipped) > 0 {
		printError("No images generated")
	} else {
		printSuccess("Generated %d images", len(report.Written))
		printDetail("Directory: %s", dir)
		for _, name := range report.Written {
			printFile(name)
		}
	}

	if len(report.Skipped) == 0 {
		return
	}

	printWarning("Skipped %d rows", len(report.Skipped))
	rows := make([][]string, 0, len(report.Skipped))
	for _, skip := range report.Skipped {
		rows = append(rows, []string{strconv.Itoa(skip.Line), strconv.Itoa(skip.ID), errors.UserMessage(skip.Err)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Line", "ID", "Reason").
		Rows(rows...)
	fmt.Println(t.Render())
}
