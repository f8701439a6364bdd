package mapping

import "fmt"

// Canonical transformation types the reporter treats specially.
const (
	TypeSourceDefinition = "Source Definition"
	TypeTargetDefinition = "Target Definition"
)

// Port is a single field on a transformation.
type Port struct {
	Name       string  `json:"name" yaml:"name"`
	Datatype   string  `json:"datatype" yaml:"datatype"`
	Precision  *int    `json:"precision" yaml:"precision"`
	Scale      *int    `json:"scale" yaml:"scale"`
	Nullable   string  `json:"nullable" yaml:"nullable"`     // NOTNULL, NULL
	PortType   string  `json:"port_type" yaml:"port_type"`   // INPUT, OUTPUT, INPUT/OUTPUT, VARIABLE
	Expression *string `json:"expression" yaml:"expression"` // nil unless the port is computed
}

// HasExpression reports whether the port carries a computed expression.
func (p Port) HasExpression() bool {
	return p.Expression != nil && *p.Expression != ""
}

// Transformation is one processing step inside a mapping.
type Transformation struct {
	Name        string            `json:"name" yaml:"name"`
	Type        string            `json:"type" yaml:"type"`
	Description *string           `json:"description" yaml:"description"`
	Ports       []Port            `json:"ports" yaml:"ports"`
	Properties  map[string]string `json:"properties" yaml:"properties"`
}

// ExpressionPorts returns the ports carrying expressions, in document order.
func (t *Transformation) ExpressionPorts() []Port {
	var ports []Port
	for _, p := range t.Ports {
		if p.HasExpression() {
			ports = append(ports, p)
		}
	}
	return ports
}

// Connection is a directed port-to-port edge between two transformations.
// Endpoints are name references recorded verbatim; nothing guarantees they
// resolve to a transformation or port in the same mapping.
type Connection struct {
	FromTransformation string `json:"from_transformation" yaml:"from_transformation"`
	FromPort           string `json:"from_port" yaml:"from_port"`
	ToTransformation   string `json:"to_transformation" yaml:"to_transformation"`
	ToPort             string `json:"to_port" yaml:"to_port"`
}

func (c Connection) String() string {
	return fmt.Sprintf("%s.%s -> %s.%s", c.FromTransformation, c.FromPort, c.ToTransformation, c.ToPort)
}

// Mapping is the root of the parsed document: every transformation and
// connection of one ETL mapping, in document order.
type Mapping struct {
	Name            string           `json:"name" yaml:"name"`
	Description     *string          `json:"description" yaml:"description"`
	Folder          *string          `json:"folder" yaml:"folder"`
	Transformations []Transformation `json:"transformations" yaml:"transformations"`
	Connections     []Connection     `json:"connections" yaml:"connections"`
}

// TransformationByName returns the first transformation with the given name.
// Names are not necessarily unique; duplicates are reachable by index only.
func (m *Mapping) TransformationByName(name string) (*Transformation, bool) {
	for i := range m.Transformations {
		if m.Transformations[i].Name == name {
			return &m.Transformations[i], true
		}
	}
	return nil, false
}

// Sources returns the transformations typed exactly "Source Definition".
func (m *Mapping) Sources() []Transformation {
	return m.byType(TypeSourceDefinition)
}

// Targets returns the transformations typed exactly "Target Definition".
func (m *Mapping) Targets() []Transformation {
	return m.byType(TypeTargetDefinition)
}

// Others returns every transformation that is neither a source nor a target
// definition, in document order.
func (m *Mapping) Others() []Transformation {
	var others []Transformation
	for _, t := range m.Transformations {
		if t.Type != TypeSourceDefinition && t.Type != TypeTargetDefinition {
			others = append(others, t)
		}
	}
	return others
}

func (m *Mapping) byType(typ string) []Transformation {
	var matches []Transformation
	for _, t := range m.Transformations {
		if t.Type == typ {
			matches = append(matches, t)
		}
	}
	return matches
}

// TypeCounts returns how many transformations of each type the mapping has.
func (m *Mapping) TypeCounts() map[string]int {
	counts := make(map[string]int)
	for _, t := range m.Transformations {
		counts[t.Type]++
	}
	return counts
}

// Summary is the structured counterpart of the text report header.
type Summary struct {
	Name                 string         `json:"name"`
	Folder               *string        `json:"folder"`
	TotalTransformations int            `json:"total_transformations"`
	TotalConnections     int            `json:"total_connections"`
	Sources              int            `json:"sources"`
	Targets              int            `json:"targets"`
	TransformationCounts map[string]int `json:"transformation_counts"`
}

// Summary computes the mapping's headline numbers.
func (m *Mapping) Summary() Summary {
	return Summary{
		Name:                 m.Name,
		Folder:               m.Folder,
		TotalTransformations: len(m.Transformations),
		TotalConnections:     len(m.Connections),
		Sources:              len(m.Sources()),
		Targets:              len(m.Targets()),
		TransformationCounts: m.TypeCounts(),
	}
}
