package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/ytget/desktop-groups/internal/model"
)

// Format is the syntax of a group document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrInvalidEncoding is returned for documents that are not valid UTF-8
var ErrInvalidEncoding = errors.New("document is not valid UTF-8")

// File extensions recognised as YAML group files. Everything else is JSON.
var yamlExtensions = []string{".yaml", ".yml"}

// document mirrors the top level of a group file
type document struct {
	Group struct {
		Name  string        `json:"name"`
		Icon  string        `json:"icon"`
		Items []*model.Item `json:"items"`
	} `json:"group"`
}

// FormatForPath picks the document format from the file extension
func FormatForPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for _, yamlExt := range yamlExtensions {
		if ext == yamlExt {
			return FormatYAML
		}
	}
	return FormatJSON
}

// LoadFile reads, validates and materializes the group stored at path
func LoadFile(path string) (*model.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: KindRead, Path: path, Err: err}
	}

	group, err := Load(data, FormatForPath(path))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return group, nil
}

// Load validates a group document and builds the group it describes.
// Items are appended in document order with their fields unchanged.
func Load(data []byte, format Format) (*model.Group, error) {
	// The decoders would replace invalid bytes with U+FFFD
	if !utf8.Valid(data) {
		return nil, &LoadError{Kind: KindParse, Err: ErrInvalidEncoding}
	}

	tree, err := decodeTree(data, format)
	if err != nil {
		return nil, &LoadError{Kind: KindParse, Err: err}
	}

	if err := Validate(tree); err != nil {
		return nil, &LoadError{Kind: KindSchema, Err: err}
	}

	// The tree is plain JSON now, whatever the source format was
	normalized, err := json.Marshal(tree)
	if err != nil {
		return nil, &LoadError{Kind: KindParse, Err: err}
	}

	var doc document
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, &LoadError{Kind: KindSchema, Err: err}
	}

	group := model.NewGroup(doc.Group.Name, doc.Group.Icon)
	for _, item := range doc.Group.Items {
		group.AddItem(item.Name, item.Icon, item.Command)
	}

	return group, nil
}

// decodeTree parses data into the generic value tree expected by the
// schema validator: maps, slices, strings, float64, bool and nil
func decodeTree(data []byte, format Format) (interface{}, error) {
	switch format {
	case FormatYAML:
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, fmt.Errorf("empty document")
		}
		// YAML may produce ints, timestamps and the like; round-trip through
		// JSON to get the same value types as a JSON file would
		buf, err := json.Marshal(raw)
		if err != nil {
			return nil, err
		}
		return decodeJSON(buf)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return tree, nil
}
