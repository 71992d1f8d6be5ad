package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/slowko/slowko/internal/format"
	"github.com/slowko/slowko/internal/model"
	"github.com/slowko/slowko/internal/morph"
	"github.com/slowko/slowko/internal/pipeline"
	"github.com/slowko/slowko/internal/wiki"
	"github.com/slowko/slowko/internal/worker"
)

var (
	concurrency  int
	batchTimeout time.Duration
	batchJSON    bool
	outputPath   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <plik>",
	Short: "Look up multiple words from a file in parallel",
	Long: `Batch reads words from a file (one per line, # starts a comment),
looks them up concurrently and prints the results in input order.

Example:
  slowko batch words.txt
  slowko batch words.txt --workers 8
  slowko batch words.txt --json --output results.ndjson`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "workers", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "batch-timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "emit one JSON object per word (NDJSON)")
	batchCmd.Flags().StringVar(&outputPath, "output", "", "write results to a file instead of stdout")
}

// batchLine is one NDJSON result row
type batchLine struct {
	Word       string              `json:"word"`
	Record     *model.WordRecord   `json:"record,omitempty"`
	Morphology []*morph.Morphology `json:"morphology,omitempty"`
	Error      string              `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	p := pipeline.New(cfg, wiki.New(cfg))
	processor := worker.NewBatchProcessor(p, concurrency)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
		// File output never carries ANSI colors
		cfg.Output.Color = false
	}

	formatter := format.New(format.Options{Color: cfg.Output.Color})
	enc := json.NewEncoder(out)

	successCount := 0
	failureCount := 0
	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Word, result.Error)
		} else {
			successCount++
		}

		if batchJSON {
			line := batchLine{Word: result.Word}
			if result.Error != nil {
				line.Error = result.Error.Error()
			} else {
				line.Record = result.Record
				line.Morphology = pipeline.Morphologies(result.Record)
			}
			if err := enc.Encode(line); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			continue
		}
		if result.Error == nil {
			fmt.Fprintln(out, formatter.FormatRecord(result.Record))
		}
	}

	fmt.Fprintf(os.Stderr, "\n%d słów, %d znalezionych, %d błędów\n",
		len(results), successCount, failureCount)
	return nil
}
