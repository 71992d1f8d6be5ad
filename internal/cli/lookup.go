package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slowko/slowko/internal/format"
	"github.com/slowko/slowko/internal/model"
	"github.com/slowko/slowko/internal/morph"
	"github.com/slowko/slowko/internal/pipeline"
	"github.com/slowko/slowko/internal/wiki"
)

var (
	outJSON     bool
	showTables  bool
	noFallback  bool
	llmExamples bool
	llmProvider string
	llmModel    string
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <słowo>",
	Short: "Look a Polish word up in both Wiktionary editions",
	Long: `Lookup fetches the word's article from pl.wiktionary.org and
en.wiktionary.org, extracts the Polish lexical data and prints the
merged result.

Example:
  slowko lookup dom
  slowko lookup zolw            # diacritic fallback finds żółw
  slowko lookup domy            # follows the inflected form to dom
  slowko lookup być --tables    # include raw inflection tables
  slowko lookup dom --json      # machine-readable output`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().BoolVar(&outJSON, "json", false, "print the record as JSON")
	lookupCmd.Flags().BoolVar(&showTables, "tables", false, "include raw inflection tables")
	lookupCmd.Flags().BoolVar(&noFallback, "no-fallback", false, "disable diacritic spelling fallback")

	// LLM flags
	lookupCmd.Flags().BoolVar(&llmExamples, "examples", false, "generate example sentences with an LLM")
	lookupCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider")
	lookupCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

// lookupOutput is the --json payload
type lookupOutput struct {
	Record     *model.WordRecord   `json:"record"`
	Morphology []*morph.Morphology `json:"morphology,omitempty"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	word := args[0]

	cfg := buildConfig()
	if err := applyLLMFlags(cfg); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	p := pipeline.New(cfg, wiki.New(cfg))

	var rec *model.WordRecord
	var err error
	if noFallback {
		rec, err = p.Lookup(ctx, word)
	} else {
		rec, err = p.SearchWithFallback(ctx, word)
	}
	if err != nil {
		return fmt.Errorf("lookup %q: %w", word, err)
	}

	morphologies := pipeline.Morphologies(rec)

	if outJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(lookupOutput{Record: rec, Morphology: morphologies})
	}

	f := format.New(format.Options{Color: cfg.Output.Color, Tables: showTables})
	fmt.Print(f.FormatRecord(rec))
	for _, m := range morphologies {
		fmt.Println()
		fmt.Print(f.FormatMorphology(m))
	}
	return nil
}

// applyLLMFlags enables the example generator when requested. The API key
// comes from the environment, never from flags or the config file.
func applyLLMFlags(cfg *model.Config) error {
	if !llmExamples {
		cfg.LLM.Provider = ""
		return nil
	}
	cfg.LLM.Provider = llmProvider
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return nil
}
