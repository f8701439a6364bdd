package graph

import (
	"fmt"
	"strings"

	"github.com/gkalanidhi/maplens/mapping"
)

const maxRecordPorts = 8

// edge is one aggregated transformation-to-transformation flow.
type edge struct {
	from  string
	to    string
	ports int
}

// Mermaid renders the mapping's data flow as a Markdown-wrapped mermaid
// flowchart.
func Mermaid(m *mapping.Mapping) string {
	return fmt.Sprintf("# Data Flow: %s\n\n```mermaid\n%s```\n", m.Name, MermaidSource(m))
}

// MermaidSource renders the bare flowchart source, for renderers that take
// mermaid directly: sources as stadiums, targets as cylinders, everything
// else as plain nodes, one edge per connected transformation pair labeled
// with the connected port count.
func MermaidSource(m *mapping.Mapping) string {
	var content strings.Builder

	content.WriteString("flowchart LR\n")

	for _, tr := range m.Transformations {
		id := nodeID(tr.Name)
		switch tr.Type {
		case mapping.TypeSourceDefinition:
			content.WriteString(fmt.Sprintf("    %s([\"%s\"])\n", id, tr.Name))
		case mapping.TypeTargetDefinition:
			content.WriteString(fmt.Sprintf("    %s[(\"%s\")]\n", id, tr.Name))
		default:
			content.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, tr.Name))
		}
	}

	content.WriteString("\n")
	for _, e := range edges(m) {
		content.WriteString(fmt.Sprintf("    %s -->|%s| %s\n", nodeID(e.from), portLabel(e.ports), nodeID(e.to)))
	}

	return content.String()
}

// Graphviz renders the data flow as a DOT digraph with record-style nodes
// listing each transformation's first ports.
func Graphviz(m *mapping.Mapping) string {
	var content strings.Builder

	content.WriteString("digraph mapping {\n")
	content.WriteString("    rankdir=LR;\n")
	content.WriteString("    node [shape=record, fontsize=10];\n\n")

	for _, tr := range m.Transformations {
		attrs := fmt.Sprintf("label=\"%s\"", recordLabel(tr))
		switch tr.Type {
		case mapping.TypeSourceDefinition:
			attrs += ", style=filled, fillcolor=lightblue"
		case mapping.TypeTargetDefinition:
			attrs += ", style=filled, fillcolor=lightgreen"
		}
		content.WriteString(fmt.Sprintf("    \"%s\" [%s];\n", tr.Name, attrs))
	}

	content.WriteString("\n")
	for _, e := range edges(m) {
		content.WriteString(fmt.Sprintf("    \"%s\" -> \"%s\" [label=\"%d\"];\n", e.from, e.to, e.ports))
	}

	content.WriteString("}\n")
	return content.String()
}

// PlantUML renders the data flow as a component diagram, transformation
// types as stereotypes.
func PlantUML(m *mapping.Mapping) string {
	var content strings.Builder

	content.WriteString("@startuml\n")
	content.WriteString("!theme plain\n")
	content.WriteString("skinparam linetype ortho\n\n")

	for _, tr := range m.Transformations {
		content.WriteString(fmt.Sprintf("rectangle \"%s\" as %s <<%s>>\n", tr.Name, nodeID(tr.Name), tr.Type))
	}

	content.WriteString("\n")
	for _, e := range edges(m) {
		content.WriteString(fmt.Sprintf("%s --> %s : %s\n", nodeID(e.from), nodeID(e.to), portLabel(e.ports)))
	}

	content.WriteString("@enduml\n")
	return content.String()
}

func recordLabel(tr mapping.Transformation) string {
	var cell strings.Builder
	for _, p := range tr.Ports[:min(maxRecordPorts, len(tr.Ports))] {
		cell.WriteString(p.Name + "\\l")
	}
	if rest := len(tr.Ports) - maxRecordPorts; rest > 0 {
		cell.WriteString(fmt.Sprintf("+%d more\\l", rest))
	}

	if cell.Len() == 0 {
		return "{" + tr.Name + "}"
	}
	return "{" + tr.Name + "|" + cell.String() + "}"
}

// edges aggregates connections into one edge per transformation pair, in
// first-seen document order.
func edges(m *mapping.Mapping) []edge {
	index := map[string]int{}
	var out []edge
	for _, c := range m.Connections {
		key := c.FromTransformation + "\x00" + c.ToTransformation
		if i, ok := index[key]; ok {
			out[i].ports++
			continue
		}
		index[key] = len(out)
		out = append(out, edge{from: c.FromTransformation, to: c.ToTransformation, ports: 1})
	}
	return out
}

func portLabel(n int) string {
	if n == 1 {
		return "1 port"
	}
	return fmt.Sprintf("%d ports", n)
}

// nodeID flattens a transformation name into an identifier every diagram
// syntax accepts. Distinct names can collide after flattening; diagram
// labels always carry the original name.
func nodeID(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
