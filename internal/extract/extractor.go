package extract

import "github.com/slowko/slowko/internal/model"

// Extractor turns a full article page into a SourceExtraction. Each
// Wiktionary edition structures its entries differently, so every source
// gets its own strategy.
type Extractor interface {
	// Name returns the extractor name
	Name() string

	// Extract parses the page. ok is false when no Polish-language section
	// was found; the returned extraction is then empty but never nil.
	Extract(page string) (*model.SourceExtraction, bool)
}

// ForSource returns the extractor for the given edition
func ForSource(src Source) Extractor {
	if src == SourceEnglish {
		return &EnglishExtractor{}
	}
	return &PolishExtractor{}
}
