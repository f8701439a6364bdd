package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gkalanidhi/maplens/mapping"
	"gopkg.in/yaml.v3"
)

// Formats understood by the exporter.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Marshal renders m in the given format. Every model field is present in
// the output, optional fields as explicit nulls; nothing is truncated.
func Marshal(m *mapping.Mapping, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding mapping: %v", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("encoding mapping: %v", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (expected json or yaml)", format)
	}
}

// Write streams the export to w.
func Write(w io.Writer, m *mapping.Mapping, format string) error {
	data, err := Marshal(m, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile exports m to path, overwriting an existing file.
func WriteFile(m *mapping.Mapping, path, format string) error {
	data, err := Marshal(m, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// Load reads a JSON export back into a Mapping. Together with WriteFile it
// round-trips a parsed mapping without loss.
func Load(path string) (*mapping.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export file: %w", err)
	}
	var m mapping.Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding export file %s: %v", path, err)
	}
	return &m, nil
}

// DerivedPath is the default export destination: the input path with its
// extension replaced by the format's.
func DerivedPath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
