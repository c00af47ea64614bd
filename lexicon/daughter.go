package lexicon

import (
	"github.com/vellum-lang/vellum/lexis"
	"github.com/vellum-lang/vellum/transform"
)

// GenerateDaughterLanguage synthesizes a new language: for every node
// captured at call start that satisfies selectFn, it clones the node,
// applies each transform in list order (guard rejections are skipped, not
// aborting), sets the resulting Lexis's language to name, runs postprocess,
// and adds the result as a fresh node with an edge source → derived
// carrying the transforms that actually applied and a default (nil)
// agglutination order. Words added this way are not reprocessed by
// Compute — they already carry their final Lemma.
func (t *LanguageTree) GenerateDaughterLanguage(
	name string,
	transforms []transform.Transform,
	selectFn func(lexis.Lexis) bool,
	postprocess func(lexis.Lexis) lexis.Lexis,
) ([]lexis.Lexis, error) {
	n := len(t.nodes)
	var created []lexis.Lexis

	for idx := 0; idx < n; idx++ {
		src := t.nodes[idx].lex
		if !selectFn(src) {
			continue
		}
		cur := src.Clone()
		var applied []string
		for _, tr := range transforms {
			out, ok, err := tr.Apply(cur, t.log)
			if err != nil {
				return created, err
			}
			if ok {
				cur = out
				applied = append(applied, tr.Name)
			}
		}
		cur.Language = name
		if postprocess != nil {
			cur = postprocess(cur)
		}
		newID := t.AddLexis(cur)
		t.nodes[newID].resolved = true
		t.edges = append(t.edges, Edge{from: nodeID(idx), to: newID, Transforms: applied})
		created = append(created, cur)
	}
	return created, nil
}
