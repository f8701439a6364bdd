package parser

import (
	"encoding/xml"
	"errors"
	"io"
)

// element is one node of the decoded document tree. Children keep document
// order, so every walk below yields elements in the order they appear in
// the file.
type element struct {
	name     xml.Name
	attrs    []xml.Attr
	children []*element
}

// decodeTree reads a whole XML document into an element tree. Character
// data is ignored; this dialect keeps everything in attributes.
func decodeTree(r io.Reader) (*element, error) {
	decoder := xml.NewDecoder(r)

	var root *element
	var stack []*element

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			elem := &element{name: t.Name}
			for _, a := range t.Attr {
				// xmlns declarations are namespace machinery, not data.
				if a.Name.Local == "xmlns" || a.Name.Space == "xmlns" {
					continue
				}
				elem.attrs = append(elem.attrs, a)
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("junk after document element")
				}
				root = elem
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, elem)
			}
			stack = append(stack, elem)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, errors.New("document contains no elements")
	}
	return root, nil
}

// attr returns the named attribute's value. Attributes in this dialect are
// unqualified even inside namespaced documents, so only the local name is
// compared.
func (e *element) attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// finder resolves marker-element queries against the tree. When the
// document root is namespace-qualified the namespace URI is remembered and
// every query runs in two passes: qualified first, unqualified as the
// fallback. Mixed documents resolve either way.
type finder struct {
	ns string
}

func newFinder(root *element) finder {
	return finder{ns: root.name.Space}
}

// findAll returns e and every element beneath it whose name matches tag,
// in document order.
func (f finder) findAll(e *element, tag string) []*element {
	if f.ns != "" {
		if found := collect(e, xml.Name{Space: f.ns, Local: tag}, nil); len(found) > 0 {
			return found
		}
	}
	return collect(e, xml.Name{Local: tag}, nil)
}

// find returns the first match of findAll, or nil.
func (f finder) find(e *element, tag string) *element {
	if found := f.findAll(e, tag); len(found) > 0 {
		return found[0]
	}
	return nil
}

func collect(e *element, name xml.Name, acc []*element) []*element {
	if e.name == name {
		acc = append(acc, e)
	}
	for _, child := range e.children {
		acc = collect(child, name, acc)
	}
	return acc
}
