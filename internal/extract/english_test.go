package extract

import (
	"strings"
	"testing"

	"github.com/slowko/slowko/internal/model"
)

const domEnglishPage = `<h2><span class="mw-headline" id="Czech">Czech</span></h2>
<h3>Noun</h3>
<ol><li>a Czech meaning here</li></ol>
<h2><span class="mw-headline" id="Polish">Polish</span></h2>
<h3><span class="mw-headline" id="Pronunciation">Pronunciation</span></h3>
<ul>
<li>IPA: /dɔm/</li>
<li>Rhymes: -ɔm</li>
</ul>
<h3><span class="mw-headline" id="Noun">Noun</span></h3>
<p><strong>dom</strong> m inan</p>
<ol>
<li>house, building
<ul><li>example quotation to drop</li></ul>
</li>
<li>home, household</li>
</ol>
<h4><span class="mw-headline" id="Declension">Declension</span></h4>
<table class="wikitable">
<tr><th></th><th>singular</th><th>plural</th></tr>
<tr><td>nominative</td><td>dom</td><td>domy</td></tr>
</table>
<h2><span class="mw-headline" id="Spanish">Spanish</span></h2>
<h3>Noun</h3>
<ol><li>a Spanish meaning here</li></ol>`

func TestEnglishExtractor_FullEntry(t *testing.T) {
	ex, ok := (&EnglishExtractor{}).Extract(domEnglishPage)
	if !ok {
		t.Fatal("Expected to find the Polish section")
	}

	if len(ex.Definitions) != 2 {
		t.Fatalf("Expected 2 definitions, got %d: %v", len(ex.Definitions), ex.Definitions)
	}
	if ex.Definitions[0].Text != "house, building" {
		t.Errorf("Expected nested quotation dropped, got %q", ex.Definitions[0].Text)
	}
	if ex.Definitions[0].Language != "en" {
		t.Errorf("Expected language 'en', got %q", ex.Definitions[0].Language)
	}

	if len(ex.POSBlocks) != 1 {
		t.Fatalf("Expected 1 POS block, got %d", len(ex.POSBlocks))
	}
	block := ex.POSBlocks[0]
	if block.POS != model.POSNoun || block.StartDef != 1 || block.EndDef != 2 {
		t.Errorf("Expected noun block 1-2, got %+v", block)
	}
	// the headword line "dom m inan" carries the grammar
	if block.Grammar.Gender != model.GenderMasculine || block.Grammar.Animacy != model.AnimacyInanimate {
		t.Errorf("Expected masculine inanimate, got %+v", block.Grammar)
	}

	if len(ex.Pronunciation) != 2 || !strings.Contains(ex.Pronunciation[0], "/dɔm/") {
		t.Errorf("Expected pronunciation entries, got %v", ex.Pronunciation)
	}

	if len(ex.DeclensionTables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(ex.DeclensionTables))
	}
	table := ex.DeclensionTables[0]
	if table.POS != model.POSNoun || table.Type != model.TableDeclension {
		t.Errorf("Expected a noun declension table, got %+v", table)
	}
	if table.Anchor != "Declension" {
		t.Errorf("Expected anchor 'Declension', got %q", table.Anchor)
	}

	for _, def := range ex.Definitions {
		if strings.Contains(def.Text, "Czech") || strings.Contains(def.Text, "Spanish") {
			t.Error("Expected other language sections excluded")
		}
	}
}

func TestEnglishExtractor_InflectedForm(t *testing.T) {
	page := `<h2><span id="Polish">Polish</span></h2>
<h3>Noun</h3>
<p><strong>domy</strong></p>
<ol><li>plural of dom</li></ol>`

	ex, ok := (&EnglishExtractor{}).Extract(page)
	if !ok {
		t.Fatal("Expected to find the Polish section")
	}
	if ex.Lemma != "dom" {
		t.Errorf("Expected lemma 'dom', got %q", ex.Lemma)
	}
}

func TestEnglishExtractor_MissingSection(t *testing.T) {
	ex, ok := (&EnglishExtractor{}).Extract(`<h2><span id="German">German</span></h2><p>text</p>`)
	if ok {
		t.Error("Expected ok=false for a missing Polish section")
	}
	if ex == nil || ex.HasDefinitions() {
		t.Error("Expected a non-nil empty extraction")
	}
}

// "Noun 2" style headings repeat on pages with several etymologies
func TestEnglishExtractor_NumberedPOSHeadings(t *testing.T) {
	page := `<h2><span id="Polish">Polish</span></h2>
<h3>Noun 1</h3>
<ol><li>first meaning of the word</li></ol>
<h3>Noun 2</h3>
<ol><li>second meaning of the word</li></ol>`

	ex, _ := (&EnglishExtractor{}).Extract(page)
	if len(ex.POSBlocks) != 2 {
		t.Fatalf("Expected 2 POS blocks, got %d", len(ex.POSBlocks))
	}
	if ex.POSBlocks[0].EndDef+1 != ex.POSBlocks[1].StartDef {
		t.Errorf("Expected contiguous ranges, got %+v", ex.POSBlocks)
	}
}

func TestEnglishExtractor_VerbConjugation(t *testing.T) {
	page := `<h2><span id="Polish">Polish</span></h2>
<h3>Verb</h3>
<p><strong>robić</strong> impf</p>
<ol><li>to do, to make</li></ol>
<h4><span id="Conjugation">Conjugation</span></h4>
<table><tr><td>bezokolicznik</td><td>robić</td></tr></table>`

	ex, _ := (&EnglishExtractor{}).Extract(page)
	if len(ex.POSBlocks) != 1 || ex.POSBlocks[0].POS != model.POSVerb {
		t.Fatalf("Expected a verb block, got %+v", ex.POSBlocks)
	}
	if ex.POSBlocks[0].Grammar.Aspect != model.AspectImperfective {
		t.Errorf("Expected imperfective, got %q", ex.POSBlocks[0].Grammar.Aspect)
	}
	if len(ex.DeclensionTables) != 1 || ex.DeclensionTables[0].Type != model.TableConjugation {
		t.Fatalf("Expected a conjugation table, got %+v", ex.DeclensionTables)
	}
}
