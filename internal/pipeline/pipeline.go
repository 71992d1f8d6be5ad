// Package pipeline orchestrates a word lookup: fetching both Wiktionary
// editions, extracting their Polish sections and merging the results into
// one record.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/slowko/slowko/internal/extract"
	"github.com/slowko/slowko/internal/llm"
	"github.com/slowko/slowko/internal/model"
	"github.com/slowko/slowko/internal/morph"
)

// PageFetcher retrieves rendered article HTML for a headword. The pipeline
// never performs network I/O itself.
type PageFetcher interface {
	FetchPage(ctx context.Context, src extract.Source, title string) (string, error)
}

// Pipeline runs lookups against both editions
type Pipeline struct {
	fetcher   PageFetcher
	generator *llm.Generator // optional, nil when disabled
	config    *model.Config
}

// New creates a pipeline with the given configuration
func New(cfg *model.Config, fetcher PageFetcher) *Pipeline {
	var generator *llm.Generator
	if cfg.LLM.Provider != "" {
		g, err := llm.NewGenerator(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			generator = g
		}
	}
	return &Pipeline{fetcher: fetcher, generator: generator, config: cfg}
}

// Lookup fetches and extracts one word. A failed fetch leaves that source
// absent from the record; Lookup itself fails only on context cancellation.
// When the entry turns out to be an inflected form referencing another
// headword, the canonical entry is fetched instead and the record is
// annotated accordingly.
func (p *Pipeline) Lookup(ctx context.Context, word string) (*model.WordRecord, error) {
	rec := p.lookupOnce(ctx, word)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.config.Search.FollowLemma {
		if lemma := followTarget(rec); lemma != "" && !strings.EqualFold(lemma, word) {
			lemmaRec := p.lookupOnce(ctx, lemma)
			if lemmaRec.HasResults() {
				lemmaRec.Word = word
				lemmaRec.Headword = lemma
				lemmaRec.DisplayWord = fmt.Sprintf("%s (forma wyrazu %s)", word, lemma)
				rec = lemmaRec
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.generator.IsEnabled() && rec.HasResults() {
		examples, err := p.generator.Examples(ctx, rec.Word, definitionTexts(rec, 3))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: example generation failed: %v\n", err)
		} else {
			rec.Examples = examples
		}
	}
	return rec, nil
}

// lookupOnce fetches both editions in parallel. The two fetches share no
// state, so this is a safe optimization over sequential fetching.
func (p *Pipeline) lookupOnce(ctx context.Context, word string) *model.WordRecord {
	rec := &model.WordRecord{Word: word, DisplayWord: word}

	sources := []extract.Source{extract.SourcePolish, extract.SourceEnglish}
	results := make([]*model.SourceExtraction, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src extract.Source) {
			defer wg.Done()
			page, err := p.fetcher.FetchPage(ctx, src, word)
			if err != nil {
				if p.config.Output.Verbose {
					fmt.Fprintf(os.Stderr, "no data from %s for %q: %v\n", src, word, err)
				}
				return
			}
			ex, _ := extract.ForSource(src).Extract(page)
			results[i] = ex
		}(i, src)
	}
	wg.Wait()

	rec.Polish, rec.English = results[0], results[1]
	return rec
}

// followTarget picks the lemma to re-fetch, preferring the Polish edition
func followTarget(rec *model.WordRecord) string {
	if rec.Polish != nil && rec.Polish.Lemma != "" {
		return rec.Polish.Lemma
	}
	if rec.English != nil && rec.English.Lemma != "" {
		return rec.English.Lemma
	}
	return ""
}

func definitionTexts(rec *model.WordRecord, limit int) []string {
	var out []string
	for _, ex := range []*model.SourceExtraction{rec.Polish, rec.English} {
		if ex == nil {
			continue
		}
		for _, def := range ex.Definitions {
			out = append(out, def.Text)
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}

// Morphologies parses every inflection table in the record into the typed
// form tree. Unparseable tables are skipped.
func Morphologies(rec *model.WordRecord) []*morph.Morphology {
	if rec == nil {
		return nil
	}
	lemma := rec.Headword
	if lemma == "" {
		lemma = rec.Word
	}
	var out []*morph.Morphology
	for _, ex := range []*model.SourceExtraction{rec.Polish, rec.English} {
		if ex == nil {
			continue
		}
		for _, table := range ex.DeclensionTables {
			m, err := morph.ParseTable(table, lemma)
			if err != nil || m == nil {
				continue
			}
			out = append(out, m)
		}
	}
	return out
}
