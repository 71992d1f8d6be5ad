package pipeline

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/slowko/slowko/internal/model"
)

// SearchWithFallback looks up a word, retrying alternate spellings until
// one yields results: the original, lowercase, title case, then diacritic
// permutations. A hit under a corrected spelling is annotated in the
// display word. When nothing matches, the record for the original spelling
// is returned so the caller can render "no results" uniformly.
func (p *Pipeline) SearchWithFallback(ctx context.Context, word string) (*model.WordRecord, error) {
	var original *model.WordRecord
	for _, candidate := range p.searchCandidates(word) {
		rec, err := p.Lookup(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if rec.HasResults() {
			if candidate != word {
				rec.DisplayWord = fmt.Sprintf("%s (szukano: %s)", rec.DisplayWord, word)
			}
			return rec, nil
		}
		if original == nil {
			original = rec
			original.Word = word
		}
	}
	if original == nil {
		original = &model.WordRecord{Word: word, DisplayWord: word}
	}
	return original, nil
}

// searchCandidates orders the spellings to try, without duplicates
func (p *Pipeline) searchCandidates(word string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	add(word)
	lower := strings.ToLower(word)
	add(lower)
	add(titleCase(lower))
	for _, v := range GeneratePolishVariants(lower, p.config.Search.MaxVariants) {
		add(v)
	}
	return out
}

func titleCase(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
