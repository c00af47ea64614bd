// Package render turns a computed lexicon.LanguageTree into the output
// formats spec.md §6 and the kirum CLI expose: GraphViz text, a flat word
// list, JSON and YAML serializations of the full word graph, a handlebars
// dictionary, and a statistics table. None of this touches core semantics —
// every function here reads a tree that has already had Compute called on
// it.
package render

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/olekukonko/tablewriter"

	"github.com/vellum-lang/vellum/lexicon"
	"github.com/vellum-lang/vellum/lexis"
)

// Graphviz delegates to lexicon.LanguageTree.Graphviz.
func Graphviz(tree *lexicon.LanguageTree) string {
	return tree.Graphviz()
}

// Line renders one word per line, in the order given.
func Line(words []lexis.Lexis) string {
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(w.Word.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// wordEdge and wordView mirror ingest.Edge/Entry's shape closely enough that
// a rendered WordGraph can be re-ingested as a tree file, per spec.md §6's
// "serialized WordGraph with preserved etymology".
type wordEdge struct {
	Etymon     string   `json:"etymon" yaml:"etymon"`
	Transforms []string `json:"transforms,omitempty" yaml:"transforms,omitempty"`
	AggOrder   *int     `json:"agglutination_order,omitempty" yaml:"agglutination_order,omitempty"`
}

type wordView struct {
	ID                 string            `json:"id" yaml:"id"`
	Word               string            `json:"word" yaml:"word"`
	Language           string            `json:"language,omitempty" yaml:"language,omitempty"`
	POS                string            `json:"part_of_speech,omitempty" yaml:"part_of_speech,omitempty"`
	LexisType          string            `json:"lexis_type,omitempty" yaml:"lexis_type,omitempty"`
	Definition         string            `json:"definition,omitempty" yaml:"definition,omitempty"`
	Archaic            bool              `json:"archaic,omitempty" yaml:"archaic,omitempty"`
	Tags               []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	HistoricalMetadata map[string]string `json:"historical_metadata,omitempty" yaml:"historical_metadata,omitempty"`
	Etymology          []wordEdge        `json:"etymology,omitempty" yaml:"etymology,omitempty"`
}

func toView(e lexicon.Entry) wordView {
	v := wordView{
		ID:                 e.Lexis.ID,
		Word:               e.Lexis.Word.String(),
		Language:           e.Lexis.Language,
		POS:                e.Lexis.POS.String(),
		LexisType:          e.Lexis.LexisType,
		Definition:         e.Lexis.Definition,
		Archaic:            e.Lexis.Archaic,
		Tags:               e.Lexis.TagSet(),
		HistoricalMetadata: e.Lexis.HistoricalMetadata,
	}
	for _, ety := range e.Etymology {
		v.Etymology = append(v.Etymology, wordEdge{
			Etymon:     ety.EtymonID,
			Transforms: ety.Transforms,
			AggOrder:   ety.AggOrder,
		})
	}
	return v
}

// JSON renders the computed word graph (with preserved etymology) as a JSON
// array, in the order given (ToVecEtymons returns entries sorted by surface
// form).
func JSON(entries []lexicon.Entry) ([]byte, error) {
	views := make([]wordView, len(entries))
	for i, e := range entries {
		views[i] = toView(e)
	}
	return json.MarshalIndent(views, "", "  ")
}

// YAML renders the same shape as JSON does, as a YAML document.
func YAML(entries []lexicon.Entry) ([]byte, error) {
	views := make([]wordView, len(entries))
	for i, e := range entries {
		views[i] = toView(e)
	}
	return yaml.Marshal(views)
}

// Stats renders a table of noun/verb/adjective/total counts plus
// per-language and per-lexis-type breakdowns, grounded on the three tables
// built by original_source/kirum/src/stat.rs.
func Stats(tree *lexicon.LanguageTree) string {
	var sb strings.Builder

	var nouns, verbs, adjectives, total int
	byLanguage := map[string]int{}
	byType := map[string]int{}
	for _, l := range tree.Iter() {
		if !l.HasWord() {
			continue
		}
		total++
		switch l.POS {
		case lexis.POSNoun:
			nouns++
		case lexis.POSVerb:
			verbs++
		case lexis.POSAdjective:
			adjectives++
		}
		byLanguage[l.Language]++
		byType[l.LexisType]++
	}

	overview := tablewriter.NewWriter(&sb)
	overview.SetHeader([]string{"nouns", "verbs", "adjectives", "total"})
	overview.Append([]string{strconv.Itoa(nouns), strconv.Itoa(verbs), strconv.Itoa(adjectives), strconv.Itoa(total)})
	overview.Render()

	sb.WriteByte('\n')
	byLang := tablewriter.NewWriter(&sb)
	byLang.SetHeader([]string{"language", "count"})
	for _, k := range sortedKeys(byLanguage) {
		byLang.Append([]string{k, strconv.Itoa(byLanguage[k])})
	}
	byLang.Render()

	sb.WriteByte('\n')
	byLexType := tablewriter.NewWriter(&sb)
	byLexType.SetHeader([]string{"lexis type", "count"})
	for _, k := range sortedKeys(byType) {
		byLexType.Append([]string{k, strconv.Itoa(byType[k])})
	}
	byLexType.Render()

	return sb.String()
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
