// problem.go — the matching problem: two graphs plus a candidate matrix.

package match

import (
	"fmt"
	"strings"
	"sync"

	"github.com/plan-systems/klog"

	"github.com/isomatch/isomatch/equivalence"
	"github.com/isomatch/isomatch/graph"
	"github.com/isomatch/isomatch/matrix"
)

// Problem pairs a template graph with a world graph and tracks, per
// template node, the world nodes it may still map to. Filters clear
// candidates in place; the graphs themselves are never modified.
//
// A Problem is safe for concurrent reads but not for filtering while
// counting.
type Problem struct {
	tmplt *graph.Graph
	world *graph.Graph

	// Channel alignment: template channel c corresponds to world channel
	// worldCh[c]. Extra world channels are unconstrained and ignored.
	worldCh  []int
	worldRev []*matrix.CSR // world reverse adjacency, template channel order

	cand      *Bitmat
	threshold float64
	verbose   bool

	// Equivalence cache, keyed by the candidate matrix content so any
	// shrink forces a recompute.
	eqMu   sync.Mutex
	eqKey  string
	eqPart *equivalence.Partition
}

// NewProblem builds a Problem over tmplt and world. Every template channel
// must exist in the world by name. Candidates default to all-true;
// WithCandidates takes precedence over WithIdentityCandidates when both are
// given.
//
// Errors:
//   - ErrNilGraph when either graph is nil.
//   - ErrChannelMismatch when the world lacks a template channel.
//   - ErrCandidateShape when a seed matrix has the wrong shape.
func NewProblem(tmplt, world *graph.Graph, opts ...Option) (*Problem, error) {
	if tmplt == nil || world == nil {
		return nil, fmt.Errorf("NewProblem: %w", ErrNilGraph)
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	p := &Problem{
		tmplt:     tmplt,
		world:     world,
		threshold: cfg.threshold,
		verbose:   cfg.verbose,
	}

	p.worldCh = make([]int, tmplt.NChannels())
	for c, name := range tmplt.Channels() {
		w, ok := world.ChannelIndex(name)
		if !ok {
			return nil, fmt.Errorf("NewProblem: channel %q: %w", name, ErrChannelMismatch)
		}
		p.worldCh[c] = w
	}
	p.worldRev = make([]*matrix.CSR, tmplt.NChannels())
	for c := range p.worldRev {
		p.worldRev[c] = world.AdjAt(p.worldCh[c]).Transpose()
	}

	tn, wn := tmplt.NumNodes(), world.NumNodes()
	var err error
	switch {
	case cfg.seed != nil:
		if cfg.seed.Rows() != tn || cfg.seed.Cols() != wn {
			return nil, fmt.Errorf("NewProblem: seed is %dx%d, want %dx%d: %w",
				cfg.seed.Rows(), cfg.seed.Cols(), tn, wn, ErrCandidateShape)
		}
		p.cand = cfg.seed.Clone()
	case cfg.identity:
		if p.cand, err = NewBitmat(tn, wn); err != nil {
			return nil, err
		}
		for i, name := range tmplt.Nodes() {
			if j, ok := world.NodeIndex(name); ok {
				p.cand.Set(i, j)
			}
		}
	default:
		if p.cand, err = NewBitmat(tn, wn); err != nil {
			return nil, err
		}
		p.cand.SetAll()
	}

	return p, nil
}

// Template returns the template graph.
func (p *Problem) Template() *graph.Graph { return p.tmplt }

// World returns the world graph.
func (p *Problem) World() *graph.Graph { return p.world }

// Candidates returns a copy of the candidate matrix, template nodes by
// world nodes.
func (p *Problem) Candidates() *Bitmat { return p.cand.Clone() }

// Candidate reports whether world node j is still a candidate for template
// node i.
func (p *Problem) Candidate(i, j int) bool { return p.cand.Get(i, j) }

// CandidateCount returns the number of set candidate bits.
func (p *Problem) CandidateCount() int { return p.cand.Count() }

// CandidatesOf returns the world node identities still open to the named
// template node, in world index order.
//
// Errors:
//   - graph.ErrUnknownNode when the template has no such node.
func (p *Problem) CandidatesOf(tmpltNode string) ([]string, error) {
	i, ok := p.tmplt.NodeIndex(tmpltNode)
	if !ok {
		return nil, fmt.Errorf("CandidatesOf(%q): %w", tmpltNode, graph.ErrUnknownNode)
	}
	idx := p.cand.RowIndices(i)
	out := make([]string, len(idx))
	for k, j := range idx {
		name, err := p.world.Node(j)
		if err != nil {
			return nil, err
		}
		out[k] = name
	}

	return out, nil
}

// EquivalenceClasses returns the interchangeability partition of the
// template nodes: nodes seeded together when their candidate rows are
// identical, then refined by template structure. Swapping the world images
// of two same-cell nodes turns any isomorphism into another one.
//
// The partition is cached against the candidate matrix and recomputed
// whenever the matrix has shrunk since the last call.
func (p *Problem) EquivalenceClasses() (*equivalence.Partition, error) {
	p.eqMu.Lock()
	defer p.eqMu.Unlock()

	key := p.candKey()
	if p.eqPart != nil && key == p.eqKey {
		return p.eqPart, nil
	}

	seed := make([]int, p.tmplt.NumNodes())
	rows := make(map[string]int, len(seed))
	for i := range seed {
		rk := p.cand.RowKey(i)
		id, ok := rows[rk]
		if !ok {
			id = len(rows)
			rows[rk] = id
		}
		seed[i] = id
	}
	part, err := equivalence.Refine(p.tmplt, seed)
	if err != nil {
		return nil, err
	}
	p.eqPart, p.eqKey = part, key

	return part, nil
}

// candKey fingerprints the candidate matrix. Row keys have fixed width, so
// concatenation is collision free.
func (p *Problem) candKey() string {
	var sb strings.Builder
	for i := 0; i < p.cand.Rows(); i++ {
		sb.WriteString(p.cand.RowKey(i))
	}

	return sb.String()
}

// tmpltAdj returns the template adjacency for template channel c.
func (p *Problem) tmpltAdj(c int) *matrix.CSR { return p.tmplt.AdjAt(c) }

// worldAdj returns the world adjacency aligned to template channel c.
func (p *Problem) worldAdj(c int) *matrix.CSR { return p.world.AdjAt(p.worldCh[c]) }

// logf writes progress when verbose logging is on.
func (p *Problem) logf(verbose bool, format string, args ...any) {
	if p.verbose || verbose {
		klog.Infof(format, args...)
	}
}
