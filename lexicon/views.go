package lexicon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vellum-lang/vellum/lexis"
)

// ToVec returns every node whose word is populated, sorted by the Lemma's
// display string.
func (t *LanguageTree) ToVec() []lexis.Lexis {
	var out []lexis.Lexis
	for _, n := range t.nodes {
		if n.lex.Word != nil {
			out = append(out, n.lex)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Word.String() < out[j].Word.String()
	})
	return out
}

// Etymology lists, for one node, each incoming etymon's id, the names of
// that edge's transforms, and the agglutination order.
type Etymology struct {
	EtymonID   string
	Transforms []string
	AggOrder   *int
}

// Entry pairs a computed Lexis with its Etymology records.
type Entry struct {
	Lexis     lexis.Lexis
	Etymology []Etymology
}

// ToVecEtymons is like ToVec but each item carries its incoming etymology.
// filter, if non-nil, restricts the result to entries for which it returns
// true.
func (t *LanguageTree) ToVecEtymons(filter func(lexis.Lexis) bool) []Entry {
	var out []Entry
	for idx, n := range t.nodes {
		if n.lex.Word == nil {
			continue
		}
		if filter != nil && !filter(n.lex) {
			continue
		}
		var etys []Etymology
		for _, ei := range t.incoming(nodeID(idx)) {
			e := t.edges[ei]
			etys = append(etys, Etymology{
				EtymonID:   t.nodes[e.from].lex.ID,
				Transforms: e.Transforms,
				AggOrder:   e.AggOrder,
			})
		}
		out = append(out, Entry{Lexis: n.lex, Etymology: etys})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Lexis.Word.String() < out[j].Lexis.Word.String()
	})
	return out
}

// Iter yields every node regardless of whether it has a word, for
// statistics collaborators.
func (t *LanguageTree) Iter() []lexis.Lexis {
	out := make([]lexis.Lexis, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, n.lex)
	}
	return out
}

// Graphviz emits a textual DOT representation. Node labels come from the
// Lexis debug form; edge labels are suppressed.
func (t *LanguageTree) Graphviz() string {
	var sb strings.Builder
	sb.WriteString("digraph lexicon {\n")
	for idx, n := range t.nodes {
		label := displayLexis(n.lex)
		sb.WriteString(fmt.Sprintf("  n%d [label=%q];\n", idx, label))
	}
	for _, e := range t.edges {
		sb.WriteString(fmt.Sprintf("  n%d -> n%d;\n", e.from, e.to))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// WalkCreateDerivatives iterates every node present at call start; f
// receives a copy of each node's Lexis and may return a new Lexis and edge
// spec to attach as a fresh child. Nodes added during the walk are not
// themselves visited by this call.
func (t *LanguageTree) WalkCreateDerivatives(f func(lexis.Lexis) (*lexis.Lexis, *EdgeSpec)) {
	n := len(t.nodes)
	for idx := 0; idx < n; idx++ {
		newLex, spec := f(t.nodes[idx].lex.Clone())
		if newLex == nil {
			continue
		}
		newID := t.AddLexis(*newLex)
		transforms := []string(nil)
		var agg *int
		if spec != nil {
			transforms = spec.Transforms
			agg = spec.AggOrder
		}
		t.edges = append(t.edges, Edge{from: nodeID(idx), to: newID, Transforms: transforms, AggOrder: agg})
	}
}
