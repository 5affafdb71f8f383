package roster

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format identifies the serialization of an input collection.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnsupportedFormat is returned for files whose extension is not a known collection format.
	ErrUnsupportedFormat = errors.New("unsupported collection format")
	// ErrNotCollection is returned when the input is not a sequence of records.
	ErrNotCollection = errors.New("input is not a sequence of records")
)

// FormatForPath infers the collection format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Load reads and decodes the collection at path. Read failures are returned
// unwrapped by os so callers can distinguish them from decode failures.
func Load(path string) ([]any, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, format)
}

// Decode parses a serialized collection into raw entries. Entries keep their
// decoded shape; non-object elements survive so Normalize can drop them.
func Decode(data []byte, format Format) ([]any, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func decodeJSON(data []byte) ([]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrNotCollection)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: top-level json value is %s", ErrNotCollection, doc.Type)
	}
	var raws []any
	doc.ForEach(func(_, value gjson.Result) bool {
		raws = append(raws, value.Value())
		return true
	})
	return raws, nil
}

func decodeYAML(data []byte) ([]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCollection, err)
	}
	if doc == nil {
		return nil, nil
	}
	raws, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level yaml value is %T", ErrNotCollection, doc)
	}
	return raws, nil
}
