package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, doc string) *element {
	t.Helper()
	root, err := decodeTree(strings.NewReader(doc))
	require.NoError(t, err)
	return root
}

func TestDecodeTreeDocumentOrder(t *testing.T) {
	root := decode(t, `<R><A id="1"><B id="2"/></A><A id="3"/><C/></R>`)

	require.Len(t, root.children, 3)
	assert.Equal(t, "A", root.children[0].name.Local)
	assert.Equal(t, "A", root.children[1].name.Local)
	assert.Equal(t, "C", root.children[2].name.Local)

	lookup := newFinder(root)
	all := lookup.findAll(root, "A")
	require.Len(t, all, 2)
	first, _ := all[0].attr("id")
	second, _ := all[1].attr("id")
	assert.Equal(t, "1", first)
	assert.Equal(t, "3", second)
}

func TestDecodeTreeRejectsEmptyInput(t *testing.T) {
	_, err := decodeTree(strings.NewReader(""))
	require.Error(t, err)
}

func TestDecodeTreeRejectsSecondRoot(t *testing.T) {
	_, err := decodeTree(strings.NewReader(`<A/><B/>`))
	require.Error(t, err)
}

func TestDecodeTreeStripsNamespaceDeclarations(t *testing.T) {
	root := decode(t, `<R xmlns="urn:x" xmlns:pm="urn:y" NAME="kept"/>`)

	require.Len(t, root.attrs, 1)
	name, ok := root.attr("NAME")
	require.True(t, ok)
	assert.Equal(t, "kept", name)
}

func TestFinderPrefersQualifiedMatches(t *testing.T) {
	root := decode(t, `<R xmlns="urn:x"><M NAME="qualified"/></R>`)

	lookup := newFinder(root)
	m := lookup.find(root, "M")
	require.NotNil(t, m)
	name, _ := m.attr("NAME")
	assert.Equal(t, "qualified", name)
	assert.Equal(t, "urn:x", m.name.Space)
}

func TestFinderFallsBackToUnqualified(t *testing.T) {
	root := decode(t, `<pm:R xmlns:pm="urn:x"><M NAME="plain"/></pm:R>`)

	lookup := newFinder(root)
	require.Equal(t, "urn:x", lookup.ns)

	m := lookup.find(root, "M")
	require.NotNil(t, m)
	name, _ := m.attr("NAME")
	assert.Equal(t, "plain", name)
	assert.Empty(t, m.name.Space)
}

func TestFinderMissingTag(t *testing.T) {
	root := decode(t, `<R><A/></R>`)

	lookup := newFinder(root)
	assert.Nil(t, lookup.find(root, "ZZ"))
	assert.Empty(t, lookup.findAll(root, "ZZ"))
}
