package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func testMapping() *Mapping {
	return &Mapping{
		Name:   "m_orders",
		Folder: strptr("SALES"),
		Transformations: []Transformation{
			{Name: "SRC_ORDERS", Type: "Source Definition", Ports: []Port{
				{Name: "ORDER_ID", Datatype: "number"},
				{Name: "AMOUNT", Datatype: "decimal"},
			}},
			{Name: "SQ_ORDERS", Type: "Source Qualifier", Ports: []Port{
				{Name: "ORDER_ID", Datatype: "number"},
			}},
			{Name: "EXP_TOTALS", Type: "Expression", Ports: []Port{
				{Name: "TOTAL", Datatype: "decimal", Expression: strptr("AMOUNT * 1.2")},
				{Name: "AMOUNT", Datatype: "decimal"},
			}},
			{Name: "TGT_ORDERS", Type: "Target Definition", Ports: []Port{
				{Name: "ORDER_ID", Datatype: "number"},
			}},
		},
		Connections: []Connection{
			{FromTransformation: "SRC_ORDERS", FromPort: "ORDER_ID", ToTransformation: "SQ_ORDERS", ToPort: "ORDER_ID"},
			{FromTransformation: "SQ_ORDERS", FromPort: "ORDER_ID", ToTransformation: "TGT_ORDERS", ToPort: "ORDER_ID"},
		},
	}
}

func TestTransformationByName(t *testing.T) {
	m := testMapping()

	tr, ok := m.TransformationByName("EXP_TOTALS")
	require.True(t, ok)
	assert.Equal(t, "Expression", tr.Type)

	_, ok = m.TransformationByName("NOPE")
	assert.False(t, ok)
}

func TestTransformationByNameReturnsFirstDuplicate(t *testing.T) {
	m := &Mapping{Transformations: []Transformation{
		{Name: "DUP", Type: "Filter"},
		{Name: "DUP", Type: "Sorter"},
	}}

	tr, ok := m.TransformationByName("DUP")
	require.True(t, ok)
	assert.Equal(t, "Filter", tr.Type)
}

func TestSourceTargetPartition(t *testing.T) {
	m := testMapping()

	sources := m.Sources()
	require.Len(t, sources, 1)
	assert.Equal(t, "SRC_ORDERS", sources[0].Name)

	targets := m.Targets()
	require.Len(t, targets, 1)
	assert.Equal(t, "TGT_ORDERS", targets[0].Name)

	others := m.Others()
	require.Len(t, others, 2)
	assert.Equal(t, "SQ_ORDERS", others[0].Name)
	assert.Equal(t, "EXP_TOTALS", others[1].Name)
}

func TestTypeCounts(t *testing.T) {
	m := testMapping()

	counts := m.TypeCounts()
	assert.Equal(t, 1, counts["Source Definition"])
	assert.Equal(t, 1, counts["Source Qualifier"])
	assert.Equal(t, 1, counts["Expression"])
	assert.Equal(t, 1, counts["Target Definition"])
	assert.Len(t, counts, 4)
}

func TestSummary(t *testing.T) {
	m := testMapping()

	s := m.Summary()
	assert.Equal(t, "m_orders", s.Name)
	require.NotNil(t, s.Folder)
	assert.Equal(t, "SALES", *s.Folder)
	assert.Equal(t, 4, s.TotalTransformations)
	assert.Equal(t, 2, s.TotalConnections)
	assert.Equal(t, 1, s.Sources)
	assert.Equal(t, 1, s.Targets)
	assert.LessOrEqual(t, s.Sources+s.Targets, s.TotalTransformations)
}

func TestHasExpression(t *testing.T) {
	assert.False(t, Port{}.HasExpression())
	assert.False(t, Port{Expression: strptr("")}.HasExpression())
	assert.True(t, Port{Expression: strptr("A + B")}.HasExpression())
}

func TestExpressionPorts(t *testing.T) {
	m := testMapping()

	tr, ok := m.TransformationByName("EXP_TOTALS")
	require.True(t, ok)

	exprs := tr.ExpressionPorts()
	require.Len(t, exprs, 1)
	assert.Equal(t, "TOTAL", exprs[0].Name)
}

func TestConnectionString(t *testing.T) {
	c := Connection{
		FromTransformation: "SQ_ORDERS", FromPort: "ORDER_ID",
		ToTransformation: "TGT_ORDERS", ToPort: "ORDER_ID",
	}
	assert.Equal(t, "SQ_ORDERS.ORDER_ID -> TGT_ORDERS.ORDER_ID", c.String())
}
