package lint

import (
	"testing"

	"github.com/gkalanidhi/maplens/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intptr(n int) *int { return &n }

func cleanMapping() *mapping.Mapping {
	return &mapping.Mapping{
		Name: "m_clean",
		Transformations: []mapping.Transformation{
			{Name: "SRC", Type: "Source Definition", Ports: []mapping.Port{
				{Name: "ID", Datatype: "number", Precision: intptr(10)},
			}},
			{Name: "TGT", Type: "Target Definition", Ports: []mapping.Port{
				{Name: "ID", Datatype: "number", Precision: intptr(10)},
			}},
		},
		Connections: []mapping.Connection{
			{FromTransformation: "SRC", FromPort: "ID", ToTransformation: "TGT", ToPort: "ID"},
		},
	}
}

func findingTypes(findings []Finding) []string {
	types := make([]string, 0, len(findings))
	for _, f := range findings {
		types = append(types, f.Type)
	}
	return types
}

func TestRunCleanMapping(t *testing.T) {
	r := Run(cleanMapping())

	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
	assert.Empty(t, r.Info)
}

func TestRunFlagsUnknownTransformation(t *testing.T) {
	m := cleanMapping()
	m.Connections = append(m.Connections, mapping.Connection{
		FromTransformation: "GHOST", FromPort: "X",
		ToTransformation: "TGT", ToPort: "ID",
	})

	r := Run(m)
	assert.False(t, r.Valid)
	assert.Contains(t, findingTypes(r.Errors), "unknown_transformation")
}

func TestRunFlagsUnknownPort(t *testing.T) {
	m := cleanMapping()
	m.Connections = append(m.Connections, mapping.Connection{
		FromTransformation: "SRC", FromPort: "MISSING",
		ToTransformation: "TGT", ToPort: "ID",
	})

	r := Run(m)
	assert.False(t, r.Valid)

	require.Contains(t, findingTypes(r.Errors), "unknown_port")
	for _, f := range r.Errors {
		if f.Type == "unknown_port" {
			assert.Equal(t, "SRC", f.Transformation)
			assert.Equal(t, "MISSING", f.Port)
		}
	}
}

func TestRunFlagsDuplicateNames(t *testing.T) {
	m := cleanMapping()
	m.Transformations = append(m.Transformations, mapping.Transformation{
		Name: "SRC", Type: "Filter",
		Ports: []mapping.Port{{Name: "ID", Datatype: "string"}},
	})

	r := Run(m)
	assert.True(t, r.Valid)

	types := findingTypes(r.Warnings)
	assert.Contains(t, types, "duplicate_transformation")
	assert.Equal(t, 1, countOf(types, "duplicate_transformation"))
}

func TestRunFlagsMissingPrecision(t *testing.T) {
	m := cleanMapping()
	m.Transformations[0].Ports = append(m.Transformations[0].Ports, mapping.Port{
		Name: "AMOUNT", Datatype: "decimal",
	})

	r := Run(m)
	assert.Contains(t, findingTypes(r.Warnings), "missing_precision")
}

func TestRunFlagsEmptyTransformation(t *testing.T) {
	m := cleanMapping()
	m.Transformations = append(m.Transformations, mapping.Transformation{
		Name: "EMPTY", Type: "Filter",
	})

	r := Run(m)
	assert.Contains(t, findingTypes(r.Warnings), "empty_transformation")
}

func TestRunFlagsCustomType(t *testing.T) {
	m := cleanMapping()
	m.Transformations = append(m.Transformations, mapping.Transformation{
		Name: "CUSTOM", Type: "CustomStep",
		Ports: []mapping.Port{{Name: "X", Datatype: "string"}},
	})

	r := Run(m)
	assert.Contains(t, findingTypes(r.Info), "custom_type")
}

func TestRunFlagsUnconnectedTransformation(t *testing.T) {
	m := cleanMapping()
	m.Transformations = append(m.Transformations, mapping.Transformation{
		Name: "LONER", Type: "Sorter",
		Ports: []mapping.Port{{Name: "X", Datatype: "string"}},
	})

	r := Run(m)
	assert.Contains(t, findingTypes(r.Info), "unconnected_transformation")
}

func TestRunSkipsUnconnectedWhenNoEdges(t *testing.T) {
	m := cleanMapping()
	m.Connections = nil

	r := Run(m)
	assert.NotContains(t, findingTypes(r.Info), "unconnected_transformation")
}

func countOf(items []string, want string) int {
	n := 0
	for _, s := range items {
		if s == want {
			n++
		}
	}
	return n
}
