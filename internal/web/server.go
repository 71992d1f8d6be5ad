// Package web serves the dictionary over HTTP: server-rendered result
// pages plus a small JSON API. Rendered results are cached per word so
// repeated lookups do not hammer the wikis.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/slowko/slowko/internal/cache"
	"github.com/slowko/slowko/internal/format"
	"github.com/slowko/slowko/internal/model"
	"github.com/slowko/slowko/internal/morph"
	"github.com/slowko/slowko/internal/pipeline"
)

// Searcher performs a word lookup with spelling fallback
type Searcher interface {
	SearchWithFallback(ctx context.Context, word string) (*model.WordRecord, error)
}

// Server is the web front-end
type Server struct {
	addr     string
	searcher Searcher
	cache    cache.Cache // nil when caching is disabled
	ttl      time.Duration
	tmpl     *template.Template
	verbose  bool
}

// NewServer creates a server around the given searcher
func NewServer(cfg *model.Config, searcher Searcher) *Server {
	s := &Server{
		addr:     cfg.Web.Addr,
		searcher: searcher,
		ttl:      cfg.Cache.TTL,
		tmpl:     template.Must(template.New("web").Parse(pageTemplates)),
		verbose:  cfg.Output.Verbose,
	}
	if cfg.Cache.Enabled {
		s.cache = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}
	return s
}

// Handler returns the route mux
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/w/", s.handleWord)
	mux.HandleFunc("/api/lookup", s.handleAPI)
	return mux
}

// ListenAndServe blocks serving HTTP on the configured address
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	fmt.Fprintf(os.Stderr, "listening on %s\n", s.addr)
	return srv.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		http.Redirect(w, r, "/w/"+url.PathEscape(q), http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index", nil); err != nil {
		s.logf("render index: %v", err)
	}
}

func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/w/")
	word, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(word) == "" || strings.Contains(word, "/") {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	word = strings.TrimSpace(word)

	key := cache.Key("html:" + word)
	if page, found := s.cacheGet(key); found {
		s.writeHTML(w, page)
		return
	}

	rec, err := s.searcher.SearchWithFallback(r.Context(), word)
	if err != nil {
		http.Error(w, "lookup failed", http.StatusBadGateway)
		s.logf("lookup %q: %v", word, err)
		return
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "result", buildView(rec)); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		s.logf("render %q: %v", word, err)
		return
	}
	s.cacheSet(key, buf.Bytes())
	s.writeHTML(w, buf.Bytes())
}

// apiResponse is the JSON API payload: the raw record plus the typed
// form trees parsed from its inflection tables
type apiResponse struct {
	Record     *model.WordRecord   `json:"record"`
	Morphology []*morph.Morphology `json:"morphology,omitempty"`
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.URL.Query().Get("word"))
	if word == "" {
		http.Error(w, `missing "word" parameter`, http.StatusBadRequest)
		return
	}

	key := cache.Key("json:" + word)
	if body, found := s.cacheGet(key); found {
		s.writeJSON(w, body)
		return
	}

	rec, err := s.searcher.SearchWithFallback(r.Context(), word)
	if err != nil {
		http.Error(w, "lookup failed", http.StatusBadGateway)
		s.logf("lookup %q: %v", word, err)
		return
	}

	body, err := json.Marshal(apiResponse{
		Record:     rec,
		Morphology: pipeline.Morphologies(rec),
	})
	if err != nil {
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	s.cacheSet(key, body)
	s.writeJSON(w, body)
}

func (s *Server) cacheGet(key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *Server) cacheSet(key string, value []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(key, value, s.ttl); err != nil {
		s.logf("cache set: %v", err)
	}
}

func (s *Server) writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

func (s *Server) writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(body)
}

func (s *Server) logf(msg string, args ...any) {
	if s.verbose {
		fmt.Fprintf(os.Stderr, msg+"\n", args...)
	}
}

type blockView struct {
	Header      string
	Start       int
	Definitions []string
}

type sourceView struct {
	Name          string
	Blocks        []blockView
	Pronunciation string
	Etymology     string
	Lemma         string
	Tables        [][][]string
}

type pageView struct {
	Word     string
	Display  string
	Found    bool
	Sources  []sourceView
	Examples []string
}

func buildView(rec *model.WordRecord) pageView {
	view := pageView{
		Word:     rec.Word,
		Display:  rec.Word,
		Found:    rec.HasResults(),
		Examples: rec.Examples,
	}
	if rec.DisplayWord != "" {
		view.Display = rec.DisplayWord
	}

	for _, src := range []struct {
		name string
		ex   *model.SourceExtraction
	}{
		{"pl.wiktionary.org", rec.Polish},
		{"en.wiktionary.org", rec.English},
	} {
		if !src.ex.HasDefinitions() {
			continue
		}
		sv := sourceView{
			Name:          src.name,
			Pronunciation: strings.Join(src.ex.Pronunciation, ", "),
			Etymology:     src.ex.Etymology,
			Lemma:         src.ex.Lemma,
		}
		for _, block := range src.ex.POSBlocks {
			bv := blockView{
				Header: format.DescribeBlock(block),
				Start:  block.StartDef,
			}
			for i := block.StartDef; i <= block.EndDef && i <= len(src.ex.Definitions); i++ {
				bv.Definitions = append(bv.Definitions, src.ex.Definitions[i-1].Text)
			}
			sv.Blocks = append(sv.Blocks, bv)
		}
		for _, table := range src.ex.DeclensionTables {
			sv.Tables = append(sv.Tables, table.RawGrid)
		}
		view.Sources = append(view.Sources, sv)
	}
	return view
}
