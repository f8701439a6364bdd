package lint

import (
	"fmt"
	"strings"

	"github.com/gkalanidhi/maplens/mapping"
	"github.com/gkalanidhi/maplens/parser"
)

// Finding is one issue discovered in a parsed mapping.
type Finding struct {
	Type           string `json:"type"`
	Transformation string `json:"transformation,omitempty"`
	Port           string `json:"port,omitempty"`
	Message        string `json:"message"`
	Severity       string `json:"severity"` // "error", "warning", "info"
}

// Result collects every finding for one mapping.
type Result struct {
	Valid    bool      `json:"valid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Info     []Finding `json:"info"`
}

// Datatypes whose ports are expected to carry a precision.
var numericDatatypes = map[string]bool{
	"number":   true,
	"decimal":  true,
	"numeric":  true,
	"integer":  true,
	"int":      true,
	"bigint":   true,
	"smallint": true,
	"double":   true,
	"real":     true,
}

// Run checks the referential integrity the parser deliberately leaves
// unchecked. The parser records connection endpoints verbatim and coerces
// bad numerics to nil, so dangling references and lost metadata only ever
// surface here.
func Run(m *mapping.Mapping) *Result {
	r := &Result{
		Valid:    true,
		Errors:   []Finding{},
		Warnings: []Finding{},
		Info:     []Finding{},
	}

	checkConnections(m, r)
	checkDuplicateNames(m, r)
	checkPorts(m, r)
	checkTypes(m, r)
	checkUnconnected(m, r)

	r.Valid = len(r.Errors) == 0
	return r
}

func checkConnections(m *mapping.Mapping, r *Result) {
	for _, c := range m.Connections {
		checkEndpoint(m, r, c.FromTransformation, c.FromPort, "from")
		checkEndpoint(m, r, c.ToTransformation, c.ToPort, "to")
	}
}

func checkEndpoint(m *mapping.Mapping, r *Result, transName, portName, side string) {
	tr, ok := m.TransformationByName(transName)
	if !ok {
		r.Errors = append(r.Errors, Finding{
			Type:           "unknown_transformation",
			Transformation: transName,
			Message:        fmt.Sprintf("connection %s-endpoint references unknown transformation '%s'", side, transName),
			Severity:       "error",
		})
		return
	}

	for _, p := range tr.Ports {
		if p.Name == portName {
			return
		}
	}
	r.Errors = append(r.Errors, Finding{
		Type:           "unknown_port",
		Transformation: transName,
		Port:           portName,
		Message:        fmt.Sprintf("connection %s-endpoint references unknown port '%s' on '%s'", side, portName, transName),
		Severity:       "error",
	})
}

func checkDuplicateNames(m *mapping.Mapping, r *Result) {
	seen := map[string]int{}
	for _, t := range m.Transformations {
		seen[t.Name]++
		if seen[t.Name] == 2 {
			r.Warnings = append(r.Warnings, Finding{
				Type:           "duplicate_transformation",
				Transformation: t.Name,
				Message:        fmt.Sprintf("multiple transformations named '%s'; name lookups resolve to the first", t.Name),
				Severity:       "warning",
			})
		}
	}
}

func checkPorts(m *mapping.Mapping, r *Result) {
	for _, t := range m.Transformations {
		if len(t.Ports) == 0 {
			r.Warnings = append(r.Warnings, Finding{
				Type:           "empty_transformation",
				Transformation: t.Name,
				Message:        fmt.Sprintf("transformation '%s' declares no ports", t.Name),
				Severity:       "warning",
			})
			continue
		}
		for _, p := range t.Ports {
			if numericDatatypes[strings.ToLower(p.Datatype)] && p.Precision == nil {
				r.Warnings = append(r.Warnings, Finding{
					Type:           "missing_precision",
					Transformation: t.Name,
					Port:           p.Name,
					Message:        fmt.Sprintf("numeric port '%s.%s' has no usable precision", t.Name, p.Name),
					Severity:       "warning",
				})
			}
		}
	}
}

func checkTypes(m *mapping.Mapping, r *Result) {
	for _, t := range m.Transformations {
		if !parser.IsKnownType(t.Type) {
			r.Info = append(r.Info, Finding{
				Type:           "custom_type",
				Transformation: t.Name,
				Message:        fmt.Sprintf("transformation type '%s' is not in the canonical table; passed through as-is", t.Type),
				Severity:       "info",
			})
		}
	}
}

func checkUnconnected(m *mapping.Mapping, r *Result) {
	// Only meaningful once the mapping has edges at all.
	if len(m.Connections) == 0 {
		return
	}

	touched := map[string]bool{}
	for _, c := range m.Connections {
		touched[c.FromTransformation] = true
		touched[c.ToTransformation] = true
	}
	for _, t := range m.Transformations {
		if !touched[t.Name] {
			r.Info = append(r.Info, Finding{
				Type:           "unconnected_transformation",
				Transformation: t.Name,
				Message:        fmt.Sprintf("no connection touches transformation '%s'", t.Name),
				Severity:       "info",
			})
		}
	}
}
