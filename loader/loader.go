package loader

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/bungraph/bgraph"
	"github.com/katalvlaran/bungraph/handle"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// document is the wire schema LoadJSON accepts. It is this module's own
// choice of shape; only the add_vertex/add_edge dependency order it
// encodes is load-bearing.
type document struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID       uint64 `json:"id"`
	Sequence string `json:"sequence"`
}

// edge mirrors add_edge(id1, id2, from_left, to_right): from_left selects
// the incident side of id1 (true == left), to_right selects the incident
// side of id2 (true == right).
type edge struct {
	ID1      uint64 `json:"id1"`
	ID2      uint64 `json:"id2"`
	FromLeft bool   `json:"from_left"`
	ToRight  bool   `json:"to_right"`
}

// LoadJSON decodes r as a document and replays it into a fresh
// bgraph.Graph, calling add_vertex for every node before any add_edge
// that references it. Edges naming an undeclared node id fail with
// ErrLoaderError; CreateEdge's own deduplication-by-canonical-form
// handles repeated edges.
func LoadJSON(r io.Reader) (*bgraph.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("loader: decode: %w: %w", err, ErrLoaderError)
	}

	g := bgraph.NewGraph()
	for _, n := range doc.Nodes {
		g.AddNode(n.ID, n.Sequence)
	}

	for i, e := range doc.Edges {
		if !g.HasNode(e.ID1) {
			return nil, fmt.Errorf("loader: edge %d references undeclared node %d: %w", i, e.ID1, ErrLoaderError)
		}
		if !g.HasNode(e.ID2) {
			return nil, fmt.Errorf("loader: edge %d references undeclared node %d: %w", i, e.ID2, ErrLoaderError)
		}

		a := handle.NewHandle(e.ID1, e.FromLeft)
		b := handle.NewHandle(e.ID2, e.ToRight)
		if err := g.CreateEdge(a, b); err != nil {
			return nil, fmt.Errorf("loader: edge %d: %w: %w", i, err, ErrLoaderError)
		}
	}

	return g, nil
}
