// Package lexicon owns the language tree: the directed graph of Lexis
// nodes and etymology edges, the compute_lexicon fixed point that
// propagates surface forms through the graph, daughter-language synthesis,
// and the exported views consumers use to read results back out.
package lexicon

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vellum-lang/vellum/internal/logging"
	"github.com/vellum-lang/vellum/lemma"
	"github.com/vellum-lang/vellum/lexis"
	"github.com/vellum-lang/vellum/phon"
	"github.com/vellum-lang/vellum/transform"
)

// nodeID indexes into LanguageTree.nodes. It is never exposed to callers;
// the public identity of a node is its Lexis.ID or, absent that, structural
// equality.
type nodeID int

type node struct {
	lex      lexis.Lexis
	resolved bool
}

// Edge is the directed relation etymon → lex: TreeEtymology in spec terms.
type Edge struct {
	from, to     nodeID
	Transforms   []string
	AggOrder     *int
	Intermediate *lemma.Lemma
}

// EdgeSpec describes the edge metadata attached when a caller-supplied
// walk_create_derivatives callback adds a new node.
type EdgeSpec struct {
	Transforms []string
	AggOrder   *int
}

// LanguageTree owns the graph, the phonotactic grammar, the named transform
// library edges reference by name, and the global transforms evaluated
// after every edge resolution.
type LanguageTree struct {
	nodes      []node
	edges      []Edge
	Transforms map[string]transform.Transform
	Phonology  phon.LexPhonology
	Globals    []transform.GlobalTransform
	rng        *rand.Rand
	log        *logrus.Entry
}

// New builds an empty LanguageTree. rng defaults to a seeded math/rand
// source when nil; log defaults to a discard logger when nil.
func New(transforms map[string]transform.Transform, phonology phon.LexPhonology, globals []transform.GlobalTransform, rng *rand.Rand, log *logrus.Entry) *LanguageTree {
	if transforms == nil {
		transforms = make(map[string]transform.Transform)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if log == nil {
		log = logrus.NewEntry(logging.Discard())
	}
	return &LanguageTree{
		Transforms: transforms,
		Phonology:  phonology,
		Globals:    globals,
		rng:        rng,
		log:        log,
	}
}

// Len returns the total node count.
func (t *LanguageTree) Len() int { return len(t.nodes) }

// AddLexis adds a node unconditionally and returns its internal id.
func (t *LanguageTree) AddLexis(l lexis.Lexis) nodeID {
	t.nodes = append(t.nodes, node{lex: l})
	return nodeID(len(t.nodes) - 1)
}

// Contains reports whether any node is structurally equal to l.
func (t *LanguageTree) Contains(l lexis.Lexis) bool {
	_, ok := t.find(l)
	return ok
}

func (t *LanguageTree) find(l lexis.Lexis) (nodeID, bool) {
	for i, n := range t.nodes {
		if n.lex.Equal(l) {
			return nodeID(i), true
		}
	}
	return 0, false
}

// GetByID returns the first node with the given id, if any.
func (t *LanguageTree) GetByID(id string) (lexis.Lexis, bool) {
	i, ok := t.findByID(id)
	if !ok {
		return lexis.Lexis{}, false
	}
	return t.nodes[i].lex, true
}

func (t *LanguageTree) findByID(id string) (nodeID, bool) {
	for i, n := range t.nodes {
		if n.lex.ID == id {
			return nodeID(i), true
		}
	}
	return 0, false
}

func (t *LanguageTree) ensure(l lexis.Lexis) nodeID {
	if i, ok := t.find(l); ok {
		return i
	}
	return t.AddLexis(l)
}

// ConnectEtymology adds (or reuses, by structural equality) both lex and
// etymon, then creates an edge etymon → lex carrying transforms and
// aggOrder with an empty intermediate.
func (t *LanguageTree) ConnectEtymology(lex, etymon lexis.Lexis, transforms []string, aggOrder *int) {
	lexID := t.ensure(lex)
	etyID := t.ensure(etymon)
	t.edges = append(t.edges, Edge{from: etyID, to: lexID, Transforms: transforms, AggOrder: aggOrder})
}

// ConnectEtymologyID looks up the etymon by id; if absent it performs no
// mutation and returns false.
func (t *LanguageTree) ConnectEtymologyID(lex lexis.Lexis, etymonID string, transforms []string, aggOrder *int) bool {
	etyID, ok := t.findByID(etymonID)
	if !ok {
		return false
	}
	lexID := t.ensure(lex)
	t.edges = append(t.edges, Edge{from: etyID, to: lexID, Transforms: transforms, AggOrder: aggOrder})
	return true
}

func (t *LanguageTree) incoming(id nodeID) []int {
	var out []int
	for i, e := range t.edges {
		if e.to == id {
			out = append(out, i)
		}
	}
	return out
}

func (t *LanguageTree) outgoing(id nodeID) []int {
	var out []int
	for i, e := range t.edges {
		if e.from == id {
			out = append(out, i)
		}
	}
	return out
}

func aggValue(e Edge) int {
	if e.AggOrder == nil {
		return 0
	}
	return *e.AggOrder
}

// StuckError reports that compute_lexicon reached a fixed point with
// unresolved nodes remaining — almost always an etymology cycle.
type StuckError struct {
	StuckIDs []string
}

func (e *StuckError) Error() string {
	return fmt.Sprintf("compute_lexicon made no progress with %d node(s) still unresolved: %s",
		len(e.StuckIDs), strings.Join(e.StuckIDs, ", "))
}

// Compute runs the fixed-point algorithm: repeat until a full pass
// produces no state change, filling word on every node that can be
// derived and caching each edge's intermediate form. Idempotent; safe to
// call repeatedly. Returns a *StuckError if the graph contains a cycle
// along the etymology direction; nodes that stay unresolved only because
// no ancestor has a word are left out of the views without an error.
func (t *LanguageTree) Compute() error {
	for {
		changed := false

		for idx := range t.nodes {
			id := nodeID(idx)
			n := &t.nodes[idx]
			if n.resolved {
				continue
			}

			if n.lex.Word == nil && n.lex.WordCreate != "" {
				if w, ok := t.Phonology.CreateWord(n.lex.WordCreate, t.rng); ok {
					n.lex.Word = &w
					changed = true
				}
			}

			incoming := t.incoming(id)
			if len(incoming) > 0 {
				if t.allIntermediatesPopulated(incoming) {
					sort.SliceStable(incoming, func(a, b int) bool {
						return aggValue(t.edges[incoming[a]]) < aggValue(t.edges[incoming[b]])
					})

					var sb strings.Builder
					for _, ei := range incoming {
						sb.WriteString(t.edges[ei].Intermediate.String())
					}
					w := lemma.New(sb.String())
					n.lex.Word = &w
					n.resolved = true
					changed = true

					for _, ei := range incoming {
						etyNode := t.nodes[t.edges[ei].from]
						for k, v := range etyNode.lex.HistoricalMetadata {
							n.lex.HistoricalMetadata[k] = v
						}
					}

					etymons := make([]lexis.Lexis, 0, len(incoming))
					for _, ei := range incoming {
						etymons = append(etymons, t.nodes[t.edges[ei].from].lex)
					}
					for _, g := range t.Globals {
						out, applied, err := g.Apply(n.lex, etymons, t.log)
						if err != nil {
							return err
						}
						if applied {
							n.lex = out
							changed = true
						}
					}
				}
			} else if n.lex.Word != nil {
				n.resolved = true
				changed = true
			}
		}

		for idx := range t.nodes {
			if !t.nodes[idx].resolved {
				continue
			}
			for _, ei := range t.outgoing(nodeID(idx)) {
				e := &t.edges[ei]
				if e.Intermediate != nil {
					continue
				}
				cur := t.nodes[idx].lex.Clone()
				for _, name := range e.Transforms {
					tr, ok := t.Transforms[name]
					if !ok {
						continue
					}
					out, _, err := tr.Apply(cur, t.log)
					if err != nil {
						return err
					}
					cur = out
				}
				var w lemma.Lemma
				if cur.Word != nil {
					w = *cur.Word
				}
				e.Intermediate = &w
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	return t.stuckError()
}

func (t *LanguageTree) allIntermediatesPopulated(incoming []int) bool {
	for _, ei := range incoming {
		if t.edges[ei].Intermediate == nil {
			return false
		}
	}
	return true
}

func (t *LanguageTree) stuckError() error {
	// A wordless node with no etymons, and everything downstream of it, is
	// simply left unresolved rather than reported as stuck.
	unsourced := make(map[nodeID]bool)
	for i, n := range t.nodes {
		if !n.resolved && len(t.incoming(nodeID(i))) == 0 {
			unsourced[nodeID(i)] = true
		}
	}
	for grew := true; grew; {
		grew = false
		for _, e := range t.edges {
			if unsourced[e.from] && !unsourced[e.to] {
				unsourced[e.to], grew = true, true
			}
		}
	}
	var stuck []string
	for i, n := range t.nodes {
		if !n.resolved && !unsourced[nodeID(i)] {
			id := n.lex.ID
			if id == "" {
				id = fmt.Sprintf("<%s>", displayLexis(n.lex))
			}
			stuck = append(stuck, id)
		}
	}
	if len(stuck) == 0 {
		return nil
	}
	return &StuckError{StuckIDs: stuck}
}

func displayLexis(l lexis.Lexis) string {
	w := ""
	if l.Word != nil {
		w = l.Word.String()
	}
	return fmt.Sprintf("Lexis{id:%q word:%q lang:%q}", l.ID, w, l.Language)
}
