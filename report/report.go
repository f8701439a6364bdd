package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gkalanidhi/maplens/mapping"
)

const (
	barWidth       = 80
	maxSamplePorts = 5
	maxExpressions = 3
	maxConnections = 10
)

// Summarize renders the fixed-layout text report for one mapping. It never
// mutates the mapping and renders every section even when the mapping is
// empty.
func Summarize(m *mapping.Mapping) string {
	var b strings.Builder
	bar := strings.Repeat("=", barWidth)

	fmt.Fprintln(&b, bar)
	fmt.Fprintf(&b, "MAPPING SUMMARY: %s\n", m.Name)
	fmt.Fprintln(&b, bar)

	s := m.Summary()
	fmt.Fprintf(&b, "\n📁 Folder: %s\n", folderLabel(s.Folder))
	fmt.Fprintf(&b, "📊 Total Transformations: %d\n", s.TotalTransformations)
	fmt.Fprintf(&b, "🔗 Total Connections: %d\n", s.TotalConnections)
	fmt.Fprintf(&b, "📥 Source Count: %d\n", s.Sources)
	fmt.Fprintf(&b, "📤 Target Count: %d\n", s.Targets)

	section(&b, "TRANSFORMATION BREAKDOWN")
	types := make([]string, 0, len(s.TransformationCounts))
	for typ := range s.TransformationCounts {
		types = append(types, typ)
	}
	sort.Strings(types)
	for _, typ := range types {
		fmt.Fprintf(&b, "  %s %3d\n", dotPad(typ, 50), s.TransformationCounts[typ])
	}

	section(&b, "SOURCE TRANSFORMATIONS")
	endpointGroup(&b, "📥", m.Sources())

	section(&b, "TARGET TRANSFORMATIONS")
	endpointGroup(&b, "📤", m.Targets())

	section(&b, "TRANSFORMATION DETAILS")
	for _, tr := range m.Others() {
		fmt.Fprintf(&b, "\n  🔧 %s\n", tr.Name)
		fmt.Fprintf(&b, "     Type: %s\n", tr.Type)
		fmt.Fprintf(&b, "     Ports: %d\n", len(tr.Ports))
		exprs := tr.ExpressionPorts()
		if len(exprs) > 0 {
			fmt.Fprintf(&b, "     Expressions: %d\n", len(exprs))
			for _, p := range exprs[:min(maxExpressions, len(exprs))] {
				fmt.Fprintf(&b, "       - %s = %s\n", p.Name, *p.Expression)
			}
		}
	}

	section(&b, fmt.Sprintf("DATA FLOW (First %d connections)", maxConnections))
	shown := m.Connections
	if len(shown) > maxConnections {
		shown = shown[:maxConnections]
	}
	for i, conn := range shown {
		fmt.Fprintf(&b, "  %2d. %s\n", i+1, conn)
	}
	if rest := len(m.Connections) - maxConnections; rest > 0 {
		fmt.Fprintf(&b, "  ... and %d more connections\n", rest)
	}

	fmt.Fprintf(&b, "\n%s\n", bar)
	return b.String()
}

func endpointGroup(b *strings.Builder, icon string, group []mapping.Transformation) {
	for _, tr := range group {
		fmt.Fprintf(b, "\n  %s %s\n", icon, tr.Name)
		fmt.Fprintf(b, "     Type: %s\n", tr.Type)
		fmt.Fprintf(b, "     Ports: %d\n", len(tr.Ports))
		if len(tr.Ports) > 0 {
			fmt.Fprintln(b, "     Sample Ports:")
			for _, p := range tr.Ports[:min(maxSamplePorts, len(tr.Ports))] {
				fmt.Fprintf(b, "       - %s (%s)\n", p.Name, p.Datatype)
			}
		}
	}
}

func section(b *strings.Builder, title string) {
	bar := strings.Repeat("=", barWidth)
	fmt.Fprintf(b, "\n%s\n%s\n%s\n", bar, title, bar)
}

// dotPad left-justifies s inside a dotted field, the way the breakdown
// table aligns counts.
func dotPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(".", width-len(s))
}

func folderLabel(folder *string) string {
	if folder == nil {
		return "(none)"
	}
	return *folder
}
