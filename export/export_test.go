package export

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkalanidhi/maplens/mapping"
	"github.com/gkalanidhi/maplens/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportDoc = `<ROOT>
  <FOLDER NAME="HR"/>
  <MAPPING NAME="m_employees" DESCRIPTION="Loads employees">
    <TRANSFORMATION NAME="SRC_EMP" TYPE="Source Definition">
      <TRANSFORMFIELD NAME="EMP_ID" DATATYPE="number" PRECISION="10" SCALE="0" PORTTYPE="OUTPUT"/>
      <TRANSFORMFIELD NAME="FULL_NAME"/>
    </TRANSFORMATION>
    <TRANSFORMATION NAME="TGT_EMP" TYPE="Target Definition">
      <TRANSFORMFIELD NAME="EMP_ID" DATATYPE="number" PRECISION="10" PORTTYPE="INPUT"/>
      <TABLEATTRIBUTE NAME="Load Scope" VALUE="All"/>
    </TRANSFORMATION>
    <CONNECTOR FROMINSTANCE="SRC_EMP" FROMFIELD="EMP_ID" TOINSTANCE="TGT_EMP" TOFIELD="EMP_ID"/>
  </MAPPING>
</ROOT>`

func parsedMapping(t *testing.T) *mapping.Mapping {
	t.Helper()
	m, err := parser.ParseReader(strings.NewReader(exportDoc), "export.xml")
	require.NoError(t, err)
	return m
}

func TestMarshalJSONKeepsEveryField(t *testing.T) {
	data, err := Marshal(parsedMapping(t), FormatJSON)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"name": "m_employees"`)
	assert.Contains(t, text, `"description": "Loads employees"`)
	assert.Contains(t, text, `"folder": "HR"`)
	assert.Contains(t, text, `"port_type": "OUTPUT"`)
	assert.Contains(t, text, `"from_transformation": "SRC_EMP"`)
	assert.Contains(t, text, `"to_port": "EMP_ID"`)
	assert.Contains(t, text, `"Load Scope": "All"`)

	// Absent optionals are explicit nulls, never dropped keys.
	assert.Contains(t, text, `"expression": null`)
	assert.Contains(t, text, `"scale": null`)
	assert.NotContains(t, text, "omitempty")
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestMarshalJSONNullsForMissingOptionals(t *testing.T) {
	m := &mapping.Mapping{Name: "bare"}
	data, err := Marshal(m, FormatJSON)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"description": null`)
	assert.Contains(t, text, `"folder": null`)
}

func TestMarshalYAML(t *testing.T) {
	data, err := Marshal(parsedMapping(t), FormatYAML)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "name: m_employees")
	assert.Contains(t, text, "folder: HR")
	assert.Contains(t, text, "port_type: OUTPUT")
	assert.Contains(t, text, "expression: null")
	assert.Contains(t, text, "from_transformation: SRC_EMP")
}

func TestMarshalUnknownFormat(t *testing.T) {
	_, err := Marshal(&mapping.Mapping{}, "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, parsedMapping(t), FormatJSON))
	assert.Contains(t, buf.String(), `"m_employees"`)
}

func TestRoundTrip(t *testing.T) {
	m := parsedMapping(t)
	path := filepath.Join(t.TempDir(), "employees.json")

	require.NoError(t, WriteFile(m, path, FormatJSON))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, WriteFile(parsedMapping(t), path, FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old")
	assert.Contains(t, string(data), "m_employees")
}

func TestWriteFileUnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")

	err := WriteFile(parsedMapping(t), path, FormatJSON)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestDerivedPath(t *testing.T) {
	assert.Equal(t, "exports/orders.json", DerivedPath("exports/orders.xml", FormatJSON))
	assert.Equal(t, "orders.yaml", DerivedPath("orders.XML", FormatYAML))
	assert.Equal(t, "orders.json", DerivedPath("orders", FormatJSON))
	assert.Equal(t, "a.b.json", DerivedPath("a.b.xml", FormatJSON))
}
