package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/slowko/slowko/internal/model"
)

type fakeSearcher struct {
	mu      sync.Mutex
	calls   int
	records map[string]*model.WordRecord
}

func (f *fakeSearcher) SearchWithFallback(_ context.Context, word string) (*model.WordRecord, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if rec, ok := f.records[word]; ok {
		return rec, nil
	}
	return &model.WordRecord{Word: word, DisplayWord: word}, nil
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func domRecord() *model.WordRecord {
	return &model.WordRecord{
		Word:        "dom",
		DisplayWord: "dom",
		Polish: &model.SourceExtraction{
			Definitions: []model.Definition{
				{POS: model.POSNoun, Text: "budynek przeznaczony do mieszkania", Language: "pl"},
			},
			POSBlocks: []model.POSBlock{
				{POS: model.POSNoun, StartDef: 1, EndDef: 1, Grammar: model.GrammarProperties{
					Gender:  model.GenderMasculine,
					Animacy: model.AnimacyInanimate,
				}},
			},
			Pronunciation: []string{"[dɔm]"},
			DeclensionTables: []model.InflectionTable{
				{RawGrid: [][]string{
					{"przypadek", "lp", "lm"},
					{"mianownik", "dom", "domy"},
					{"dopełniacz", "domu", "domów"},
				}, POS: model.POSNoun, Type: model.TableDeclension},
			},
		},
	}
}

func testServer(searcher Searcher, cached bool) *httptest.Server {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = cached
	cfg.Cache.TTL = time.Minute
	return httptest.NewServer(NewServer(cfg, searcher).Handler())
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestServer_Index(t *testing.T) {
	ts := testServer(&fakeSearcher{}, false)
	defer ts.Close()

	status, body := get(t, ts.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if !strings.Contains(body, "<form") {
		t.Error("Expected a search form on the index page")
	}
}

func TestServer_IndexRedirectsQuery(t *testing.T) {
	ts := testServer(&fakeSearcher{}, false)
	defer ts.Close()

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := client.Get(ts.URL + "/?q=dom")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/w/dom" {
		t.Errorf("Expected redirect to /w/dom, got %q", loc)
	}
}

func TestServer_WordPage(t *testing.T) {
	searcher := &fakeSearcher{records: map[string]*model.WordRecord{"dom": domRecord()}}
	ts := testServer(searcher, false)
	defer ts.Close()

	status, body := get(t, ts.URL+"/w/dom")
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	for _, want := range []string{
		"dom",
		"pl.wiktionary.org",
		"rzeczownik, rodzaj męski rzeczowy",
		"budynek przeznaczony do mieszkania",
		"wymowa:",
		"<td>domów</td>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
}

func TestServer_WordPageNoResults(t *testing.T) {
	ts := testServer(&fakeSearcher{}, false)
	defer ts.Close()

	_, body := get(t, ts.URL+"/w/xyzzy")
	if !strings.Contains(body, "Nie znaleziono wyniku dla: xyzzy") {
		t.Errorf("Expected a no-results message, got:\n%s", body)
	}
}

func TestServer_WordPageCached(t *testing.T) {
	searcher := &fakeSearcher{records: map[string]*model.WordRecord{"dom": domRecord()}}
	ts := testServer(searcher, true)
	defer ts.Close()

	get(t, ts.URL+"/w/dom")
	get(t, ts.URL+"/w/dom")
	if n := searcher.callCount(); n != 1 {
		t.Errorf("Expected 1 lookup for two requests, got %d", n)
	}
}

func TestServer_API(t *testing.T) {
	searcher := &fakeSearcher{records: map[string]*model.WordRecord{"dom": domRecord()}}
	ts := testServer(searcher, false)
	defer ts.Close()

	status, body := get(t, ts.URL+"/api/lookup?word=dom")
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}

	var resp struct {
		Record     *model.WordRecord `json:"record"`
		Morphology []json.RawMessage `json:"morphology"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if resp.Record == nil || resp.Record.Word != "dom" {
		t.Fatalf("Expected record for dom, got %+v", resp.Record)
	}
	if len(resp.Morphology) != 1 {
		t.Errorf("Expected 1 parsed morphology, got %d", len(resp.Morphology))
	}
	if !strings.Contains(string(body), "domów") {
		t.Error("Expected parsed forms in the payload")
	}
}

func TestServer_APIMissingWord(t *testing.T) {
	ts := testServer(&fakeSearcher{}, false)
	defer ts.Close()

	status, _ := get(t, ts.URL+"/api/lookup")
	if status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", status)
	}
}

func TestServer_UnknownPath(t *testing.T) {
	ts := testServer(&fakeSearcher{}, false)
	defer ts.Close()

	status, _ := get(t, ts.URL+"/nope")
	if status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", status)
	}
}
