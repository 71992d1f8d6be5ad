package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/slowko/slowko/internal/extract"
	"github.com/slowko/slowko/internal/model"
	"github.com/slowko/slowko/internal/morph"
)

const domPolishPage = `
<h2>dom (język polski)</h2>
<p>znaczenia:</p>
<p>rzeczownik rodzaj męskorzeczowy</p>
<dl>
<dd>(1.1) budynek przeznaczony do mieszkania</dd>
<dd>(1.2) rodzina, ognisko domowe</dd>
</dl>
<p>odmiana:</p>
<table>
<tr><th>przypadek</th><th>liczba pojedyncza</th><th>liczba mnoga</th></tr>
<tr><td>mianownik</td><td>dom</td><td>domy</td></tr>
<tr><td>dopełniacz</td><td>domu</td><td>domów</td></tr>
</table>
<h2>dom (język czeski)</h2>
<p>znaczenia: coś zupełnie innego</p>
`

const domEnglishPage = `
<h2 id="Polish">Polish</h2>
<h3>Pronunciation</h3>
<ul><li>IPA: /dɔm/</li></ul>
<h3>Noun</h3>
<p>dom m inan</p>
<ol><li>house, building</li><li>home, household</li></ol>
<h2>Spanish</h2>
`

const domyPolishPage = `
<h2>domy (język polski)</h2>
<p>znaczenia:</p>
<p>rzeczownik rodzaj męskorzeczowy</p>
<dl>
<dd>(1.1) M. lm od: dom</dd>
</dl>
`

type fakeFetcher struct {
	pages map[string]string
	errs  map[string]error

	mu    sync.Mutex
	calls []string
}

func (f *fakeFetcher) FetchPage(ctx context.Context, src extract.Source, title string) (string, error) {
	key := string(src) + ":" + title
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()

	if err := f.errs[key]; err != nil {
		return "", err
	}
	page, ok := f.pages[key]
	if !ok {
		return "", errors.New("page not found")
	}
	return page, nil
}

func testPipeline(fetcher PageFetcher) *Pipeline {
	cfg := model.DefaultConfig()
	return New(cfg, fetcher)
}

func TestPipeline_LookupMergesBothSources(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"pl:dom": domPolishPage,
		"en:dom": domEnglishPage,
	}}
	p := testPipeline(fetcher)

	rec, err := p.Lookup(context.Background(), "dom")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !rec.HasResults() {
		t.Fatal("Expected results from both sources")
	}

	if rec.Polish == nil {
		t.Fatal("Expected Polish source extraction")
	}
	if len(rec.Polish.Definitions) != 2 {
		t.Fatalf("Expected 2 Polish definitions, got %d", len(rec.Polish.Definitions))
	}
	if !strings.Contains(rec.Polish.Definitions[0].Text, "budynek") {
		t.Errorf("Expected first definition about the building, got '%s'", rec.Polish.Definitions[0].Text)
	}
	if len(rec.Polish.DeclensionTables) != 1 {
		t.Fatalf("Expected 1 declension table, got %d", len(rec.Polish.DeclensionTables))
	}

	if rec.English == nil {
		t.Fatal("Expected English source extraction")
	}
	if len(rec.English.Definitions) != 2 {
		t.Fatalf("Expected 2 English definitions, got %d", len(rec.English.Definitions))
	}
	if len(rec.English.Pronunciation) == 0 {
		t.Error("Expected pronunciation from the English edition")
	}
}

func TestPipeline_LookupAbsorbsFetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{"pl:dom": domPolishPage},
		errs:  map[string]error{"en:dom": errors.New("connection refused")},
	}
	p := testPipeline(fetcher)

	rec, err := p.Lookup(context.Background(), "dom")
	if err != nil {
		t.Fatalf("Expected fetch failure to be absorbed, got %v", err)
	}
	if rec.Polish == nil {
		t.Error("Expected Polish source despite English failure")
	}
	if rec.English != nil {
		t.Error("Expected English source absent after fetch failure")
	}
	if !rec.HasResults() {
		t.Error("Expected record to still have results")
	}
}

func TestPipeline_LookupFollowsLemma(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"pl:domy": domyPolishPage,
		"pl:dom":  domPolishPage,
		"en:dom":  domEnglishPage,
	}}
	p := testPipeline(fetcher)

	rec, err := p.Lookup(context.Background(), "domy")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Word != "domy" {
		t.Errorf("Expected lookup key preserved, got '%s'", rec.Word)
	}
	if rec.Headword != "dom" {
		t.Errorf("Expected headword 'dom', got '%s'", rec.Headword)
	}
	if rec.DisplayWord != "domy (forma wyrazu dom)" {
		t.Errorf("Expected annotated display word, got '%s'", rec.DisplayWord)
	}
	if len(rec.Polish.DeclensionTables) != 1 {
		t.Errorf("Expected declension tables from the canonical entry, got %d", len(rec.Polish.DeclensionTables))
	}
}

func TestPipeline_LookupNoFollowWhenDisabled(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"pl:domy": domyPolishPage,
	}}
	cfg := model.DefaultConfig()
	cfg.Search.FollowLemma = false
	p := New(cfg, fetcher)

	rec, err := p.Lookup(context.Background(), "domy")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Headword != "" {
		t.Errorf("Expected no lemma follow-up, got headword '%s'", rec.Headword)
	}
	if rec.Polish == nil || rec.Polish.Lemma != "dom" {
		t.Error("Expected detected lemma to remain on the extraction")
	}
}

func TestMorphologies(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"pl:dom": domPolishPage,
		"en:dom": domEnglishPage,
	}}
	p := testPipeline(fetcher)

	rec, err := p.Lookup(context.Background(), "dom")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	forms := Morphologies(rec)
	if len(forms) != 1 {
		t.Fatalf("Expected 1 morphology, got %d", len(forms))
	}
	m := forms[0]
	if m.WordClass != morph.Noun {
		t.Errorf("Expected noun morphology, got %s", m.WordClass)
	}
	if m.Lemma != "dom" {
		t.Errorf("Expected lemma 'dom', got '%s'", m.Lemma)
	}
	if m.Gender != model.GenderMasculine || m.Animacy != model.AnimacyInanimate {
		t.Errorf("Expected masculine inanimate carried through, got %s/%s", m.Gender, m.Animacy)
	}
	if got := m.Noun.Plural[morph.CaseGenitive]; got != "domów" {
		t.Errorf("Expected plural genitive 'domów', got '%s'", got)
	}
}

func TestSearchWithFallback_DiacriticVariant(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"pl:żółw": strings.ReplaceAll(domPolishPage, "dom", "żółw"),
	}}
	p := testPipeline(fetcher)

	rec, err := p.SearchWithFallback(context.Background(), "zolw")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !rec.HasResults() {
		t.Fatal("Expected a hit via diacritic variants")
	}
	if rec.Word != "żółw" {
		t.Errorf("Expected corrected word 'żółw', got '%s'", rec.Word)
	}
	if !strings.Contains(rec.DisplayWord, "szukano: zolw") {
		t.Errorf("Expected correction annotation, got '%s'", rec.DisplayWord)
	}
}

func TestSearchWithFallback_NoResults(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}
	cfg := model.DefaultConfig()
	cfg.Search.MaxVariants = 5
	p := New(cfg, fetcher)

	rec, err := p.SearchWithFallback(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.HasResults() {
		t.Error("Expected no results")
	}
	if rec.Word != "xyzzy" {
		t.Errorf("Expected original spelling back, got '%s'", rec.Word)
	}
}

func TestGeneratePolishVariants(t *testing.T) {
	variants := GeneratePolishVariants("zolw", 20)

	found := false
	for _, v := range variants {
		if v == "zolw" {
			t.Error("Expected variants to exclude the original word")
		}
		if v == "żółw" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected 'żółw' among variants, got %v", variants)
	}

	capped := GeneratePolishVariants("zzzzzzzz", 10)
	if len(capped) > 10 {
		t.Errorf("Expected at most 10 variants, got %d", len(capped))
	}

	if got := GeneratePolishVariants("xyrk", 20); len(got) != 0 {
		t.Errorf("Expected no variants for a word without substitutable letters, got %v", got)
	}
}
