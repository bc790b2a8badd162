// Package graph holds the course requisite graph produced by a search and
// the renderers that serialize it.
package graph

import (
	"cmp"
	"slices"
)

type Kind string

const (
	KindPrerequisite Kind = "prerequisite"
	KindCorequisite  Kind = "corequisite"
)

// Node is a course. A stub node was only ever referenced as a requisite and
// never listed itself, its label is the identifier alone.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Stub  bool   `json:"stub,omitempty"`
}

// Edge means From is a requisite of To.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind Kind   `json:"kind"`
}

type edgeKey struct {
	from string
	to   string
}

// Graph is a directed graph of courses, it is not safe for concurrent use.
type Graph struct {
	nodes map[string]*Node
	edges map[edgeKey]Kind
}

func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[edgeKey]Kind),
	}
}

// AddCourse registers a listed course, a stub with the same id is upgraded
// in place and an existing listing has its label replaced.
func (g *Graph) AddCourse(id, label string) {
	if label == "" {
		label = id
	}
	existing, ok := g.nodes[id]
	if !ok {
		g.nodes[id] = &Node{ID: id, Label: label}
		return
	}
	existing.Label = label
	existing.Stub = false
}

func (g *Graph) ensureNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &Node{ID: id, Label: id, Stub: true}
}

// AddRequisite adds the edge from -> to, creating stub nodes for unknown ids.
// It returns false if the pair was already present, in which case the kind
// first recorded is kept.
func (g *Graph) AddRequisite(from, to string, kind Kind) bool {
	g.ensureNode(from)
	g.ensureNode(to)

	key := edgeKey{from: from, to: to}
	if _, exists := g.edges[key]; exists {
		return false
	}
	g.edges[key] = kind
	return true
}

func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes returns every node ordered by id.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	slices.SortFunc(out, func(a, b Node) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Edges returns every edge ordered by source then target.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for key, kind := range g.edges {
		out = append(out, Edge{From: key.from, To: key.to, Kind: kind})
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	return out
}

// Requisites returns the ids of the direct requisites of a course, sorted.
func (g *Graph) Requisites(id string) []string {
	var out []string
	for key := range g.edges {
		if key.to == id {
			out = append(out, key.from)
		}
	}
	slices.Sort(out)
	return out
}

// Subgraph returns the course with the given id together with everything it
// transitively requires. The result is empty if the id is unknown.
func (g *Graph) Subgraph(root string) *Graph {
	out := New()
	if _, ok := g.nodes[root]; !ok {
		return out
	}

	included := map[string]bool{root: true}
	queue := []string{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, req := range g.Requisites(current) {
			if included[req] {
				continue
			}
			included[req] = true
			queue = append(queue, req)
		}
	}

	for id := range included {
		n := *g.nodes[id]
		out.nodes[id] = &n
	}
	for key, kind := range g.edges {
		if included[key.from] && included[key.to] {
			out.edges[key] = kind
		}
	}
	return out
}
