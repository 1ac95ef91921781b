package powerset

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/stateset"
	"github.com/hupe1980/stateset/backing"
	"github.com/hupe1980/stateset/nfa"
)

// Builder converts NFAs to DFAs by subset construction.
//
// A Builder holds configuration only and is safe for concurrent use. Every
// construction owns its state sets.
type Builder struct {
	opts options
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(optFns ...Option) *Builder {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Builder{opts: opts}
}

// Build constructs the DFA for n.
//
// Cancellation is checked before each DFA state is expanded; a cancelled
// context aborts construction with ctx.Err().
func (b *Builder) Build(ctx context.Context, n *nfa.NFA) (*DFA, error) {
	return b.build(ctx, n, b.opts.logger)
}

// BuildAll constructs the DFAs for independent NFA fragments in parallel.
// Results are in input order. The first failure cancels the remaining work.
func (b *Builder) BuildAll(ctx context.Context, nfas []*nfa.NFA) ([]*DFA, error) {
	out := make([]*DFA, len(nfas))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.parallelism)

	for i, n := range nfas {
		g.Go(func() error {
			d, err := b.build(gctx, n, b.opts.logger.WithFragment(i))
			if err != nil {
				return fmt.Errorf("powerset: fragment %d: %w", i, err)
			}
			out[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Builder) kindFor(universe uint32) backing.Kind {
	if b.opts.autoKind {
		return backing.Select(universe, b.opts.sparseThreshold)
	}
	return b.opts.kind
}

func (b *Builder) build(ctx context.Context, n *nfa.NFA, logger *stateset.Logger) (*DFA, error) {
	start := time.Now()

	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("powerset: %w", err)
	}

	if b.opts.prune {
		pruned, _, err := Prune(n)
		if err != nil {
			return nil, err
		}
		logger.LogPrune(ctx, n.NumStates(), pruned.NumStates())
		b.opts.metrics.RecordPrune(n.NumStates(), pruned.NumStates())
		n = pruned
	}

	universe := uint32(n.NumStates())
	kind := b.kindFor(universe)
	logger = logger.WithUniverse(universe).WithBacking(kind.String())

	c := newConstruction(n, universe, backing.Constructor(kind), b.opts.maxStates, b.opts.metrics)
	dfa, err := c.run(ctx)

	states := 0
	if dfa != nil {
		states = dfa.NumStates()
	}
	elapsed := time.Since(start)
	logger.LogBuild(ctx, states, c.dedupHits, elapsed, err)
	b.opts.metrics.RecordBuild(states, elapsed, err)

	return dfa, err
}

// construction is the working state of one subset construction.
type construction struct {
	n         *nfa.NFA
	universe  uint32
	newSet    stateset.Constructor
	maxStates int
	metrics   stateset.MetricsCollector

	accept stateset.Set
	dfa    *DFA

	// index buckets DFA states by configuration hash; Equal resolves collisions.
	index map[uint64][]State
	queue []State
	stack []stateset.StateID

	dedupHits int
}

func newConstruction(n *nfa.NFA, universe uint32, newSet stateset.Constructor, maxStates int, metrics stateset.MetricsCollector) *construction {
	return &construction{
		n:         n,
		universe:  universe,
		newSet:    newSet,
		maxStates: maxStates,
		metrics:   metrics,
		dfa:       &DFA{},
		index:     make(map[uint64][]State),
	}
}

func (c *construction) create() stateset.Set {
	s := c.newSet()
	s.Create(c.universe)
	return s
}

func (c *construction) run(ctx context.Context) (*DFA, error) {
	c.accept = c.create()
	stateset.Batch(c.accept, func(add func(stateset.StateID)) {
		for _, a := range c.n.Accepts {
			add(stateset.StateID(a))
		}
	})

	// DFA state 0 = dead, state 1 = start
	if _, _, err := c.intern(c.create()); err != nil {
		return nil, err
	}
	startSet := c.create()
	startSet.Add(stateset.StateID(c.n.Start))
	c.closure(startSet)
	startID, _, err := c.intern(startSet)
	if err != nil {
		return nil, err
	}
	c.queue = append(c.queue, startID)

	for head := 0; head < len(c.queue); head++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := c.expand(c.queue[head]); err != nil {
			return nil, err
		}
	}

	c.dfa.computeLive()
	return c.dfa, nil
}

// expand computes every successor of a DFA state. Bytes are grouped into
// intervals on which all outgoing NFA edges agree, so each distinct successor
// configuration is computed once.
func (c *construction) expand(cur State) error {
	members := stateset.Collect(c.dfa.configurations[cur])

	var cuts [257]bool
	cuts[0] = true
	for _, id := range members {
		for _, e := range c.n.States[id].Edges {
			cuts[e.Lo] = true
			cuts[int(e.Hi)+1] = true
		}
	}

	var scratch stateset.Set
	for lo := 0; lo < 256; {
		hi := lo + 1
		for hi < 256 && !cuts[hi] {
			hi++
		}

		if scratch == nil {
			scratch = c.create()
		}
		c.move(scratch, members, byte(lo))
		c.closure(scratch)

		next, dup, err := c.intern(scratch)
		if err != nil {
			return err
		}
		c.metrics.RecordConfiguration(dup)
		if dup {
			c.dedupHits++
			scratch.Clear()
		} else {
			c.queue = append(c.queue, next)
			scratch = nil
		}

		for b := lo; b < hi; b++ {
			c.dfa.transitions[cur][b] = next
		}
		lo = hi
	}
	return nil
}

// move adds every NFA state reachable from members on byte b to dst.
func (c *construction) move(dst stateset.Set, members []stateset.StateID, b byte) {
	stateset.Batch(dst, func(add func(stateset.StateID)) {
		for _, id := range members {
			for _, e := range c.n.States[id].Edges {
				if e.Matches(b) {
					add(stateset.StateID(e.To))
				}
			}
		}
	})
}

// closure extends s with every state reachable through epsilon transitions.
func (c *construction) closure(s stateset.Set) {
	c.stack = append(c.stack[:0], stateset.Collect(s)...)
	for len(c.stack) > 0 {
		id := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		for _, to := range c.n.States[id].Epsilon {
			if s.Add(stateset.StateID(to)) {
				c.stack = append(c.stack, stateset.StateID(to))
			}
		}
	}
}

// intern returns the DFA state for configuration s, registering s as a new
// state when no equal configuration exists. New states take ownership of s.
func (c *construction) intern(s stateset.Set) (State, bool, error) {
	h := s.Hash()
	for _, id := range c.index[h] {
		if c.dfa.configurations[id].Equal(s) {
			return id, true, nil
		}
	}

	if c.maxStates > 0 && len(c.dfa.configurations) >= c.maxStates {
		return 0, false, &StateLimitError{Limit: c.maxStates}
	}

	id := State(len(c.dfa.configurations))
	c.dfa.configurations = append(c.dfa.configurations, s)
	c.dfa.transitions = append(c.dfa.transitions, [256]State{})
	c.dfa.accepting = append(c.dfa.accepting, !s.IsDisjoint(c.accept))
	c.index[h] = append(c.index[h], id)
	return id, false, nil
}
