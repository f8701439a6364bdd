package parser

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gkalanidhi/maplens/mapping"
)

// Marker elements of the mapping XML dialect.
const (
	elemMapping        = "MAPPING"
	elemFolder         = "FOLDER"
	elemTransformation = "TRANSFORMATION"
	elemField          = "TRANSFORMFIELD"
	elemTableAttribute = "TABLEATTRIBUTE"
	elemConnector      = "CONNECTOR"
)

// Attributes carried by the marker elements.
const (
	attrName         = "NAME"
	attrDescription  = "DESCRIPTION"
	attrType         = "TYPE"
	attrDatatype     = "DATATYPE"
	attrPrecision    = "PRECISION"
	attrScale        = "SCALE"
	attrNullable     = "NULLABLE"
	attrPortType     = "PORTTYPE"
	attrExpression   = "EXPRESSION"
	attrFromField    = "FROMFIELD"
	attrFromInstance = "FROMINSTANCE"
	attrToField      = "TOFIELD"
	attrToInstance   = "TOINSTANCE"
	attrValue        = "VALUE"
)

// Parse reads one mapping XML file into a Mapping. Unreadable files return
// the wrapped IO error; anything the decoder or the mapping lookup rejects
// returns a *FormatError. There is no partial result: on error the mapping
// is nil.
func Parse(path string) (*mapping.Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping file: %w", err)
	}
	defer f.Close()

	return ParseReader(f, path)
}

// ParseReader parses one mapping document from r. source names the input
// in error messages.
func ParseReader(r io.Reader, source string) (*mapping.Mapping, error) {
	root, err := decodeTree(r)
	if err != nil {
		return nil, &FormatError{Source: source, Err: err}
	}

	lookup := newFinder(root)

	mappingElem := lookup.find(root, elemMapping)
	if mappingElem == nil {
		return nil, &FormatError{Source: source, Err: ErrNoMapping}
	}

	m := &mapping.Mapping{
		Name:            attrOr(mappingElem, attrName, "Unknown"),
		Description:     optionalAttr(mappingElem, attrDescription),
		Transformations: []mapping.Transformation{},
		Connections:     []mapping.Connection{},
	}

	// The folder element lives outside the mapping element in repository
	// exports, so it is looked up from the document root.
	if folderElem := lookup.find(root, elemFolder); folderElem != nil {
		m.Folder = optionalAttr(folderElem, attrName)
	}

	for _, transElem := range lookup.findAll(mappingElem, elemTransformation) {
		m.Transformations = append(m.Transformations, parseTransformation(lookup, transElem))
	}

	for _, connElem := range lookup.findAll(mappingElem, elemConnector) {
		if conn, ok := parseConnector(connElem); ok {
			m.Connections = append(m.Connections, conn)
		}
	}

	return m, nil
}

func parseTransformation(lookup finder, elem *element) mapping.Transformation {
	t := mapping.Transformation{
		Name:        attrOr(elem, attrName, "Unknown"),
		Type:        CanonicalType(attrOr(elem, attrType, "Unknown")),
		Description: optionalAttr(elem, attrDescription),
		Ports:       []mapping.Port{},
		Properties:  map[string]string{},
	}

	for _, fieldElem := range lookup.findAll(elem, elemField) {
		t.Ports = append(t.Ports, parsePort(fieldElem))
	}

	// Properties start from the element's own attributes; TABLEATTRIBUTE
	// entries overlay them, so an entry named like an attribute wins.
	for _, a := range elem.attrs {
		t.Properties[a.Name.Local] = a.Value
	}
	for _, attrElem := range lookup.findAll(elem, elemTableAttribute) {
		name, _ := attrElem.attr(attrName)
		value, _ := attrElem.attr(attrValue)
		if name != "" && value != "" {
			t.Properties[name] = value
		}
	}

	return t
}

func parsePort(elem *element) mapping.Port {
	return mapping.Port{
		Name:       attrOr(elem, attrName, "Unknown"),
		Datatype:   attrOr(elem, attrDatatype, "string"),
		Precision:  safeInt(elem, attrPrecision),
		Scale:      safeInt(elem, attrScale),
		Nullable:   attrOr(elem, attrNullable, "NOTNULL"),
		PortType:   attrOr(elem, attrPortType, "INPUT"),
		Expression: optionalAttr(elem, attrExpression),
	}
}

// parseConnector builds a connection from a CONNECTOR element. Connectors
// missing any of the four endpoint attributes are dropped without
// diagnostics; partially specified edges carry no usable information.
func parseConnector(elem *element) (mapping.Connection, bool) {
	fromField, _ := elem.attr(attrFromField)
	fromInstance, _ := elem.attr(attrFromInstance)
	toField, _ := elem.attr(attrToField)
	toInstance, _ := elem.attr(attrToInstance)

	if fromField == "" || fromInstance == "" || toField == "" || toInstance == "" {
		return mapping.Connection{}, false
	}

	return mapping.Connection{
		FromTransformation: fromInstance,
		FromPort:           fromField,
		ToTransformation:   toInstance,
		ToPort:             toField,
	}, true
}

// safeInt coerces a numeric attribute, returning nil for anything missing
// or non-numeric. Bad metadata must never abort a parse.
func safeInt(elem *element, name string) *int {
	raw, ok := elem.attr(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

func attrOr(elem *element, name, fallback string) string {
	if v, ok := elem.attr(name); ok {
		return v
	}
	return fallback
}

func optionalAttr(elem *element, name string) *string {
	if v, ok := elem.attr(name); ok {
		return &v
	}
	return nil
}
