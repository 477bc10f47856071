// SPDX-License-Identifier: MIT

package engine

import (
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/loader"
)

// GraphEngine encapsulates one mutable graph and its mode flags.
// It is safe for concurrent use.
type GraphEngine struct {
	mu    sync.RWMutex
	graph *core.Graph
	mode  Mode

	log *zap.Logger
	obs Observer
}

// New returns an engine holding an empty graph, undirected and unweighted
// unless WithInitialMode says otherwise.
func New(opts ...Option) *GraphEngine {
	e := &GraphEngine{
		log: zap.NewNop(),
		obs: nopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.graph, e.mode = newGraph(e.mode.Directed, e.mode.Weighted)
	e.obs.ObserveGraph(0, 0)

	return e
}

func newGraph(directed, weighted bool) (*core.Graph, Mode) {
	opts := []core.GraphOption{core.WithDirected(directed)}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}

	return core.NewGraph(opts...), Mode{ID: uuid.NewString(), Directed: directed, Weighted: weighted}
}

// current captures the active graph and its mode.
func (e *GraphEngine) current() (*core.Graph, Mode) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.graph, e.mode
}

// swap installs g as the active graph.
func (e *GraphEngine) swap(g *core.Graph, m Mode) {
	e.mu.Lock()
	e.graph, e.mode = g, m
	e.mu.Unlock()

	e.obs.ObserveGraph(g.Order(), g.Size())
}

// track reports an operation to the observer; call it deferred with time.Now().
func (e *GraphEngine) track(op string, start time.Time, err *error) {
	e.obs.ObserveOperation(op, time.Since(start), *err)
}

// Mode returns the mode of the active graph.
func (e *GraphEngine) Mode() Mode {
	_, m := e.current()
	return m
}

// CreateGraph replaces the active graph with an empty one. It always succeeds.
func (e *GraphEngine) CreateGraph(directed, weighted bool) Mode {
	var err error
	defer e.track(OpCreateGraph, time.Now(), &err)

	g, m := newGraph(directed, weighted)
	e.swap(g, m)
	e.log.Info("graph created",
		zap.String("graph_id", m.ID), zap.Bool("directed", directed), zap.Bool("weighted", weighted))

	return m
}

// Reset replaces the active graph with an empty one carrying the same flags.
func (e *GraphEngine) Reset() Mode {
	var err error
	defer e.track(OpReset, time.Now(), &err)

	_, old := e.current()
	g, m := newGraph(old.Directed, old.Weighted)
	e.swap(g, m)
	e.log.Info("graph reset", zap.String("previous_id", old.ID), zap.String("graph_id", m.ID))

	return m
}

// CreateGraphFromText parses r as a text batch and installs a fresh graph
// with the given flags holding its contents. On a read error the active
// graph is left unchanged.
func (e *GraphEngine) CreateGraphFromText(r io.Reader, directed, weighted bool) (res *loader.Result, err error) {
	defer e.track(OpCreateGraphFromText, time.Now(), &err)

	b, err := loader.ParseLines(r, weighted)
	if err != nil {
		return nil, classify(err)
	}
	g, m := newGraph(directed, weighted)
	if res, err = loader.Apply(g, b); err != nil {
		return nil, classify(err)
	}
	e.swap(g, m)
	e.logBatch("graph created from text", m, res)

	return res, nil
}

// AddVertex inserts id into the active graph.
//
// Errors: ErrVertexExists, ErrInvalidInput (empty ID).
func (e *GraphEngine) AddVertex(id string) (err error) {
	defer e.track(OpAddVertex, time.Now(), &err)

	g, m := e.current()
	if err = g.AddVertex(id); err != nil {
		return classify(err)
	}
	e.obs.ObserveGraph(g.Order(), g.Size())
	e.log.Debug("vertex added", zap.String("graph_id", m.ID), zap.String("vertex", id))

	return nil
}

// AddEdge connects u and v, creating missing endpoints. weight is applied on
// weighted graphs and ignored otherwise; re-adding an edge overwrites its weight.
//
// Errors: ErrInvalidInput (empty ID, non-finite weight).
func (e *GraphEngine) AddEdge(u, v string, weight *float64) (err error) {
	defer e.track(OpAddEdge, time.Now(), &err)

	g, m := e.current()
	var opts []core.EdgeOption
	if m.Weighted && weight != nil {
		opts = append(opts, core.WithWeight(*weight))
	}
	eid, err := g.AddEdge(u, v, opts...)
	if err != nil {
		return classify(err)
	}
	e.obs.ObserveGraph(g.Order(), g.Size())
	e.log.Debug("edge added",
		zap.String("graph_id", m.ID), zap.String("edge", eid), zap.String("from", u), zap.String("to", v))

	return nil
}

// BatchInsertItems adds structured vertices and edges to the active graph.
func (e *GraphEngine) BatchInsertItems(vertices []string, edges []loader.EdgeItem) (res *loader.Result, err error) {
	defer e.track(OpBatchItems, time.Now(), &err)

	g, m := e.current()
	if res, err = loader.Apply(g, loader.Items(vertices, edges)); err != nil {
		return nil, classify(err)
	}
	e.obs.ObserveGraph(g.Order(), g.Size())
	e.logBatch("batch items inserted", m, res)

	return res, nil
}

// BatchInsertFromText adds the edges described by a text batch to the active graph.
// Malformed lines are skipped and counted in the result.
func (e *GraphEngine) BatchInsertFromText(r io.Reader) (res *loader.Result, err error) {
	defer e.track(OpBatchText, time.Now(), &err)

	g, m := e.current()
	b, err := loader.ParseLines(r, m.Weighted)
	if err != nil {
		return nil, classify(err)
	}
	if res, err = loader.Apply(g, b); err != nil {
		return nil, classify(err)
	}
	e.obs.ObserveGraph(g.Order(), g.Size())
	e.logBatch("batch text inserted", m, res)

	return res, nil
}

func (e *GraphEngine) logBatch(msg string, m Mode, res *loader.Result) {
	if res.Skipped > 0 {
		e.log.Info("malformed batch lines skipped", zap.String("graph_id", m.ID), zap.Int("skipped", res.Skipped))
	}
	e.log.Debug(msg,
		zap.String("graph_id", m.ID), zap.Int("order", len(res.Vertices)), zap.Int("size", len(res.Edges)))
}
