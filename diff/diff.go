package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gkalanidhi/maplens/mapping"
)

type ChangeType string

const (
	RenameMapping        ChangeType = "RENAME_MAPPING"
	AddTransformation    ChangeType = "ADD_TRANSFORMATION"
	DropTransformation   ChangeType = "DROP_TRANSFORMATION"
	ModifyTransformation ChangeType = "MODIFY_TRANSFORMATION"
	AddPort              ChangeType = "ADD_PORT"
	DropPort             ChangeType = "DROP_PORT"
	ModifyPort           ChangeType = "MODIFY_PORT"
	AddConnection        ChangeType = "ADD_CONNECTION"
	DropConnection       ChangeType = "DROP_CONNECTION"
)

type Change struct {
	Type           ChangeType `json:"type"`
	Transformation string     `json:"transformation,omitempty"` // for transformation and port changes
	Port           string     `json:"port,omitempty"`           // for port changes
	Detail         string     `json:"detail,omitempty"`
}

func (c Change) String() string {
	switch {
	case c.Port != "":
		return fmt.Sprintf("%s %s.%s (%s)", c.Type, c.Transformation, c.Port, c.Detail)
	case c.Transformation != "":
		return fmt.Sprintf("%s %s (%s)", c.Type, c.Transformation, c.Detail)
	default:
		return fmt.Sprintf("%s (%s)", c.Type, c.Detail)
	}
}

// Compare lists what changed between two revisions of a mapping.
// Transformations and ports match by name, first occurrence winning, the
// same rule name lookups use; connections compare as exact endpoint
// tuples. A mapping compared against itself yields no changes.
func Compare(oldMapping, newMapping *mapping.Mapping) []Change {
	var changes []Change

	if oldMapping.Name != newMapping.Name {
		changes = append(changes, Change{
			Type:   RenameMapping,
			Detail: fmt.Sprintf("%s -> %s", oldMapping.Name, newMapping.Name),
		})
	}

	oldByName := transformationIndex(oldMapping)
	newByName := transformationIndex(newMapping)

	for i := range newMapping.Transformations {
		tr := &newMapping.Transformations[i]
		old, exists := oldByName[tr.Name]
		if !exists {
			changes = append(changes, Change{
				Type:           AddTransformation,
				Transformation: tr.Name,
				Detail:         tr.Type,
			})
			continue
		}
		changes = append(changes, compareTransformation(old, tr)...)
	}

	for i := range oldMapping.Transformations {
		tr := &oldMapping.Transformations[i]
		if _, exists := newByName[tr.Name]; !exists {
			changes = append(changes, Change{
				Type:           DropTransformation,
				Transformation: tr.Name,
				Detail:         tr.Type,
			})
		}
	}

	changes = append(changes, compareConnections(oldMapping, newMapping)...)
	return changes
}

// transformationIndex maps names to transformations, keeping the first
// occurrence of a duplicated name.
func transformationIndex(m *mapping.Mapping) map[string]*mapping.Transformation {
	index := make(map[string]*mapping.Transformation, len(m.Transformations))
	for i := range m.Transformations {
		tr := &m.Transformations[i]
		if _, exists := index[tr.Name]; !exists {
			index[tr.Name] = tr
		}
	}
	return index
}

func compareTransformation(old, updated *mapping.Transformation) []Change {
	var changes []Change

	if old.Type != updated.Type {
		changes = append(changes, Change{
			Type:           ModifyTransformation,
			Transformation: updated.Name,
			Detail:         fmt.Sprintf("type: %s -> %s", old.Type, updated.Type),
		})
	}
	if !strPtrEqual(old.Description, updated.Description) {
		changes = append(changes, Change{
			Type:           ModifyTransformation,
			Transformation: updated.Name,
			Detail:         "description changed",
		})
	}
	if keys := changedPropertyKeys(old.Properties, updated.Properties); len(keys) > 0 {
		changes = append(changes, Change{
			Type:           ModifyTransformation,
			Transformation: updated.Name,
			Detail:         "properties: " + strings.Join(keys, ", "),
		})
	}

	changes = append(changes, comparePorts(old, updated)...)
	return changes
}

func comparePorts(old, updated *mapping.Transformation) []Change {
	var changes []Change

	oldPorts := portIndex(old)
	newPorts := portIndex(updated)

	for i := range updated.Ports {
		p := &updated.Ports[i]
		oldPort, exists := oldPorts[p.Name]
		if !exists {
			changes = append(changes, Change{
				Type:           AddPort,
				Transformation: updated.Name,
				Port:           p.Name,
				Detail:         p.Datatype,
			})
			continue
		}
		if change := comparePort(updated.Name, oldPort, p); change != nil {
			changes = append(changes, *change)
		}
	}

	for i := range old.Ports {
		p := &old.Ports[i]
		if _, exists := newPorts[p.Name]; !exists {
			changes = append(changes, Change{
				Type:           DropPort,
				Transformation: old.Name,
				Port:           p.Name,
				Detail:         p.Datatype,
			})
		}
	}

	return changes
}

func portIndex(t *mapping.Transformation) map[string]*mapping.Port {
	index := make(map[string]*mapping.Port, len(t.Ports))
	for i := range t.Ports {
		p := &t.Ports[i]
		if _, exists := index[p.Name]; !exists {
			index[p.Name] = p
		}
	}
	return index
}

func comparePort(transName string, old, updated *mapping.Port) *Change {
	var fields []string

	if old.Datatype != updated.Datatype {
		fields = append(fields, fmt.Sprintf("datatype: %s -> %s", old.Datatype, updated.Datatype))
	}
	if !intPtrEqual(old.Precision, updated.Precision) {
		fields = append(fields, fmt.Sprintf("precision: %s -> %s", intLabel(old.Precision), intLabel(updated.Precision)))
	}
	if !intPtrEqual(old.Scale, updated.Scale) {
		fields = append(fields, fmt.Sprintf("scale: %s -> %s", intLabel(old.Scale), intLabel(updated.Scale)))
	}
	if old.Nullable != updated.Nullable {
		fields = append(fields, fmt.Sprintf("nullable: %s -> %s", old.Nullable, updated.Nullable))
	}
	if old.PortType != updated.PortType {
		fields = append(fields, fmt.Sprintf("port type: %s -> %s", old.PortType, updated.PortType))
	}
	if !strPtrEqual(old.Expression, updated.Expression) {
		fields = append(fields, fmt.Sprintf("expression: %s -> %s", strLabel(old.Expression), strLabel(updated.Expression)))
	}

	if len(fields) == 0 {
		return nil
	}
	return &Change{
		Type:           ModifyPort,
		Transformation: transName,
		Port:           updated.Name,
		Detail:         strings.Join(fields, "; "),
	}
}

// compareConnections diffs the edge multisets: duplicated edges count as
// many times as they appear.
func compareConnections(oldMapping, newMapping *mapping.Mapping) []Change {
	var changes []Change

	oldEdges := map[string]int{}
	for _, c := range oldMapping.Connections {
		oldEdges[c.String()]++
	}

	newEdges := map[string]int{}
	for _, c := range newMapping.Connections {
		newEdges[c.String()]++
	}

	seen := map[string]int{}
	for _, c := range newMapping.Connections {
		key := c.String()
		seen[key]++
		if seen[key] > oldEdges[key] {
			changes = append(changes, Change{Type: AddConnection, Detail: key})
		}
	}

	seen = map[string]int{}
	for _, c := range oldMapping.Connections {
		key := c.String()
		seen[key]++
		if seen[key] > newEdges[key] {
			changes = append(changes, Change{Type: DropConnection, Detail: key})
		}
	}

	return changes
}

func changedPropertyKeys(old, updated map[string]string) []string {
	keys := map[string]bool{}
	for k, v := range old {
		if nv, ok := updated[k]; !ok || nv != v {
			keys[k] = true
		}
	}
	for k, v := range updated {
		if ov, ok := old[k]; !ok || ov != v {
			keys[k] = true
		}
	}

	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intLabel(n *int) string {
	if n == nil {
		return "null"
	}
	return fmt.Sprintf("%d", *n)
}

func strLabel(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
