package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/slowko/slowko/internal/model"
)

// Searcher looks up one word, applying the spelling fallbacks
type Searcher interface {
	SearchWithFallback(ctx context.Context, word string) (*model.WordRecord, error)
}

// LookupJob is one word lookup in a batch
type LookupJob struct {
	Word     string
	Searcher Searcher
}

// Execute runs the lookup
func (j *LookupJob) Execute(ctx context.Context) Result {
	record, err := j.Searcher.SearchWithFallback(ctx, j.Word)
	return &LookupResult{Word: j.Word, Record: record, Error: err}
}

// LookupResult is the outcome of one batch entry
type LookupResult struct {
	Word   string
	Record *model.WordRecord
	Error  error
}

// GetError returns the lookup error, if any
func (r *LookupResult) GetError() error {
	return r.Error
}

// BatchProcessor looks up many words concurrently
type BatchProcessor struct {
	searcher    Searcher
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(searcher Searcher, concurrency int) *BatchProcessor {
	return &BatchProcessor{searcher: searcher, concurrency: concurrency}
}

// ProcessWords looks up all words and returns results in input order
func (b *BatchProcessor) ProcessWords(ctx context.Context, words []string) []*LookupResult {
	if len(words) == 0 {
		return []*LookupResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		for _, word := range words {
			select {
			case <-ctx.Done():
				pool.Shutdown()
				return
			default:
			}
			pool.Submit(&LookupJob{Word: word, Searcher: b.searcher})
		}
		pool.Done()
	}()

	byWord := make(map[string]*LookupResult, len(words))
	for result := range pool.Results() {
		r := result.(*LookupResult)
		byWord[r.Word] = r
	}

	out := make([]*LookupResult, 0, len(words))
	for _, word := range words {
		if r, ok := byWord[word]; ok {
			out = append(out, r)
		}
	}
	return out
}

// ProcessFile reads words from a file (one per line) and looks them up
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*LookupResult, error) {
	words, err := ReadWordsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return b.ProcessWords(ctx, words), nil
}

// ReadWordsFromFile reads one word per line, skipping blanks, comments and
// duplicates
func ReadWordsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var words []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return words, nil
}
