package graph

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkalanidhi/maplens/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flowMapping() *mapping.Mapping {
	ports := make([]mapping.Port, 10)
	for i := range ports {
		ports[i] = mapping.Port{Name: fmt.Sprintf("F%d", i+1), Datatype: "string"}
	}

	return &mapping.Mapping{
		Name: "m_flow",
		Transformations: []mapping.Transformation{
			{Name: "SRC A", Type: "Source Definition", Ports: ports},
			{Name: "EXP_1", Type: "Expression", Ports: ports[:2]},
			{Name: "TGT_1", Type: "Target Definition", Ports: ports[:2]},
		},
		Connections: []mapping.Connection{
			{FromTransformation: "SRC A", FromPort: "F1", ToTransformation: "EXP_1", ToPort: "F1"},
			{FromTransformation: "SRC A", FromPort: "F2", ToTransformation: "EXP_1", ToPort: "F2"},
			{FromTransformation: "EXP_1", FromPort: "F1", ToTransformation: "TGT_1", ToPort: "F1"},
		},
	}
}

func TestMermaid(t *testing.T) {
	out := Mermaid(flowMapping())

	assert.Contains(t, out, "# Data Flow: m_flow")
	assert.Contains(t, out, "flowchart LR")
	assert.Contains(t, out, `SRC_A(["SRC A"])`)
	assert.Contains(t, out, `EXP_1["EXP_1"]`)
	assert.Contains(t, out, `TGT_1[("TGT_1")]`)
	assert.Contains(t, out, "SRC_A -->|2 ports| EXP_1")
	assert.Contains(t, out, "EXP_1 -->|1 port| TGT_1")
	assert.True(t, strings.HasSuffix(out, "```\n"))
}

func TestMermaidSourceBare(t *testing.T) {
	out := MermaidSource(flowMapping())

	assert.True(t, strings.HasPrefix(out, "flowchart LR\n"))
	assert.NotContains(t, out, "```")
	assert.NotContains(t, out, "# Data Flow")
	assert.Contains(t, out, "SRC_A -->|2 ports| EXP_1")
}

func TestMermaidOneNodeLinePerTransformation(t *testing.T) {
	m := flowMapping()
	out := Mermaid(m)

	nodeLines := 0
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "SRC_A([") || strings.HasPrefix(trimmed, "EXP_1[") || strings.HasPrefix(trimmed, "TGT_1[(") {
			nodeLines++
		}
	}
	assert.Equal(t, len(m.Transformations), nodeLines)
}

func TestGraphviz(t *testing.T) {
	out := Graphviz(flowMapping())

	assert.Contains(t, out, "digraph mapping {")
	assert.Contains(t, out, "rankdir=LR;")
	assert.Contains(t, out, `"SRC A" [label="{SRC A|`)
	assert.Contains(t, out, "fillcolor=lightblue")
	assert.Contains(t, out, "fillcolor=lightgreen")
	assert.Contains(t, out, `"SRC A" -> "EXP_1" [label="2"];`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestGraphvizRecordTruncatesPorts(t *testing.T) {
	out := Graphviz(flowMapping())

	assert.Contains(t, out, `F8\l`)
	assert.NotContains(t, out, `F9\l`)
	assert.Contains(t, out, `+2 more\l`)
}

func TestGraphvizEmptyPortCell(t *testing.T) {
	m := &mapping.Mapping{
		Name:            "m_bare",
		Transformations: []mapping.Transformation{{Name: "X", Type: "Filter"}},
	}
	out := Graphviz(m)

	assert.Contains(t, out, `"X" [label="{X}"];`)
}

func TestPlantUML(t *testing.T) {
	out := PlantUML(flowMapping())

	assert.True(t, strings.HasPrefix(out, "@startuml\n"))
	assert.True(t, strings.HasSuffix(out, "@enduml\n"))
	assert.Contains(t, out, `rectangle "SRC A" as SRC_A <<Source Definition>>`)
	assert.Contains(t, out, "SRC_A --> EXP_1 : 2 ports")
}

func TestEdgesAggregation(t *testing.T) {
	m := flowMapping()
	aggregated := edges(m)

	require.Len(t, aggregated, 2)
	assert.Equal(t, "SRC A", aggregated[0].from)
	assert.Equal(t, 2, aggregated[0].ports)
	assert.Equal(t, 1, aggregated[1].ports)
}

func TestNodeID(t *testing.T) {
	assert.Equal(t, "SRC_A", nodeID("SRC A"))
	assert.Equal(t, "EXP_1", nodeID("EXP_1"))
	assert.Equal(t, "a_b_c", nodeID("a-b.c"))
	assert.Equal(t, "_", nodeID(""))
}
