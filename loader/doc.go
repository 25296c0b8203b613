// Package loader decodes a bidirected graph from a JSON document and
// populates a bgraph.Graph via the add_vertex/add_edge contract: every
// node is added before any edge referencing it, matching the dependency
// order bgraph.Graph.CreateEdge requires (both endpoints must already
// exist). The wire schema is this module's own choice; only the two-call
// ordering contract is load-bearing.
package loader
