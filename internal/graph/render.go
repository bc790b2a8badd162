package graph

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type Format string

const (
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatDOT:
		return FormatDOT, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format '%s' (expected dot or json)", s)
}

// Write renders the graph in the given format.
func Write(w io.Writer, g *Graph, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, g)
	case FormatDOT, "":
		return WriteDOT(w, g)
	}
	return fmt.Errorf("unknown output format '%s'", format)
}

var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
)

func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// WriteDOT renders the graph as a graphviz digraph, nodes and edges are
// written in the graph's sorted order.
func WriteDOT(w io.Writer, g *Graph) error {
	out := bufio.NewWriter(w)

	fmt.Fprintln(out, "digraph courses {")
	fmt.Fprintln(out, "\tnode [shape=box];")
	for _, n := range g.Nodes() {
		attrs := "label=" + quote(n.Label)
		if n.Stub {
			attrs += ", style=dashed"
		}
		fmt.Fprintf(out, "\t%s [%s];\n", quote(n.ID), attrs)
	}
	for _, e := range g.Edges() {
		if e.Kind == KindCorequisite {
			fmt.Fprintf(out, "\t%s -> %s [style=dotted];\n", quote(e.From), quote(e.To))
			continue
		}
		fmt.Fprintf(out, "\t%s -> %s;\n", quote(e.From), quote(e.To))
	}
	fmt.Fprintln(out, "}")

	return out.Flush()
}

type jsonGraph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

func WriteJSON(w io.Writer, g *Graph) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonGraph{
		Nodes: g.Nodes(),
		Edges: g.Edges(),
	})
}
