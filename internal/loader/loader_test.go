package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ytget/desktop-groups/internal/model"
)

// ignoreIDs drops the runtime item IDs, which are not part of the file
var ignoreIDs = cmpopts.IgnoreFields(model.Item{}, "ID")

func writeGroupFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write group file: %v", err)
	}
	return path
}

func TestLoadFile_Tools(t *testing.T) {
	path := writeGroupFile(t, "tools.desktopgroup",
		`{"group":{"name":"Tools","items":[{"name":"Calc","command":"calc.exe"}]}}`)

	group, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if group.Name != "Tools" {
		t.Errorf("Expected group name 'Tools', got '%s'", group.Name)
	}
	if group.Icon != "" {
		t.Errorf("Expected no group icon, got '%s'", group.Icon)
	}
	if group.Len() != 1 {
		t.Fatalf("Expected 1 item, got %d", group.Len())
	}

	item := group.ItemAt(0)
	if item.Name != "Calc" {
		t.Errorf("Expected item 'Calc', got '%s'", item.Name)
	}
	if !item.Command.Equal(model.CommandLine("calc.exe")) {
		t.Errorf("Expected command 'calc.exe', got %v", item.Command)
	}
	if item.ID == "" {
		t.Error("Expected loaded item to have an ID")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	input := `{
  "group": {
    "name": "Office",
    "icon": "C:\\Icons\\office.png",
    "items": [
      {"name": "Writer", "icon": "writer.png", "command": "swriter"},
      {"name": "Calc", "command": ["scalc", "--norestore", "budget.ods"]},
      {"name": "Writer", "icon": "C:\\Program Files\\Writer\\writer.exe", "command": ["swriter", "-o"]}
    ]
  }
}`

	group, err := Load([]byte(input), FormatJSON)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := &model.Group{
		Name: "Office",
		Icon: `C:\Icons\office.png`,
		Items: []*model.Item{
			{Name: "Writer", Icon: "writer.png", Command: model.CommandLine("swriter")},
			{Name: "Calc", Command: model.CommandVector("scalc", "--norestore", "budget.ods")},
			{Name: "Writer", Icon: `C:\Program Files\Writer\writer.exe`, Command: model.CommandVector("swriter", "-o")},
		},
	}

	if diff := cmp.Diff(expected, group, ignoreIDs); diff != "" {
		t.Errorf("Loaded group mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyItems(t *testing.T) {
	inputs := []string{
		`{"group":{"name":"Empty","items":[]}}`,
		`{"group":{"name":"Empty"}}`,
	}

	for _, input := range inputs {
		group, err := Load([]byte(input), FormatJSON)
		if err != nil {
			t.Errorf("Load(%s) returned error: %v", input, err)
			continue
		}
		if !group.IsEmpty() {
			t.Errorf("Load(%s) expected empty group, got %d items", input, group.Len())
		}
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing group name", `{"group":{}}`},
		{"empty group name", `{"group":{"name":""}}`},
		{"missing group", `{}`},
		{"group not an object", `{"group":"Tools"}`},
		{"name not a string", `{"group":{"name":42}}`},
		{"icon not a string", `{"group":{"name":"G","icon":true}}`},
		{"items not an array", `{"group":{"name":"G","items":{}}}`},
		{"item without name", `{"group":{"name":"G","items":[{"command":"x"}]}}`},
		{"item without command", `{"group":{"name":"G","items":[{"name":"x"}]}}`},
		{"command is a number", `{"group":{"name":"G","items":[{"name":"x","command":1}]}}`},
		{"command is empty", `{"group":{"name":"G","items":[{"name":"x","command":""}]}}`},
		{"command vector is empty", `{"group":{"name":"G","items":[{"name":"x","command":[]}]}}`},
		{"command vector with numbers", `{"group":{"name":"G","items":[{"name":"x","command":["a",1]}]}}`},
		{"document is null", `null`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			group, err := Load([]byte(test.input), FormatJSON)
			if err == nil {
				t.Fatalf("Expected validation error, got group %+v", group)
			}
			if group != nil {
				t.Error("Expected no group on validation error")
			}

			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("Expected *LoadError, got %T", err)
			}
			if le.Kind != KindSchema {
				t.Errorf("Expected kind %s, got %s (%v)", KindSchema, le.Kind, err)
			}
		})
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	inputs := []string{
		``,
		`{"group":`,
		`{"group":{"name":"G"}} trailing`,
		`not json`,
		"{\"group\":{\"name\":\"T\xffools\"}}",
		"{\"group\":{\"name\":\"Tools\",\"items\":[{\"name\":\"Calc\",\"command\":\"ca\xfelc.exe\"}]}}",
	}

	for _, input := range inputs {
		group, err := Load([]byte(input), FormatJSON)
		if group != nil {
			t.Errorf("Load(%q) should not return a group", input)
		}

		var le *LoadError
		if !errors.As(err, &le) {
			t.Errorf("Load(%q) expected *LoadError, got %v", input, err)
			continue
		}
		if le.Kind != KindParse {
			t.Errorf("Load(%q) expected kind %s, got %s", input, KindParse, le.Kind)
		}
	}
}

func TestLoadFile_InvalidEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	data := []byte("{\"group\":{\"name\":\"T\xffools\",\"items\":[{\"name\":\"Calc\",\"command\":\"ca\xfelc.exe\"}]}}")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write group file: %v", err)
	}

	group, err := LoadFile(path)
	if group != nil {
		t.Fatalf("Expected no group, got %+v", group)
	}
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("Expected ErrInvalidEncoding, got %v", err)
	}

	var le *LoadError
	if !errors.As(err, &le) || le.Kind != KindParse || le.Path != path {
		t.Errorf("Expected parse error for %s, got %v", path, err)
	}
}

func TestLoad_YAMLInvalidEncoding(t *testing.T) {
	_, err := Load([]byte("group:\n  name: \"T\xffools\"\n"), FormatYAML)
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("Expected ErrInvalidEncoding, got %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.desktopgroup")

	group, err := LoadFile(path)
	if group != nil {
		t.Error("Expected no group for missing file")
	}

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Expected *LoadError, got %v", err)
	}
	if le.Kind != KindRead {
		t.Errorf("Expected kind %s, got %s", KindRead, le.Kind)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected error to wrap os.ErrNotExist")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error message to mention %s, got %s", path, err.Error())
	}
}

func TestLoadFile_ErrorCarriesPath(t *testing.T) {
	path := writeGroupFile(t, "broken.desktopgroup", `{"group":{}}`)

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("Expected error for group without name")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error message to mention %s, got %s", path, err.Error())
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeGroupFile(t, "tools.yaml", `
group:
  name: Tools
  icon: tools.png
  items:
    - name: Calc
      command: calc.exe
    - name: Editor
      icon: editor.png
      command: [code, --new-window]
`)

	group, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := &model.Group{
		Name: "Tools",
		Icon: "tools.png",
		Items: []*model.Item{
			{Name: "Calc", Command: model.CommandLine("calc.exe")},
			{Name: "Editor", Icon: "editor.png", Command: model.CommandVector("code", "--new-window")},
		},
	}

	if diff := cmp.Diff(expected, group, ignoreIDs); diff != "" {
		t.Errorf("Loaded group mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_YAMLValidatedToo(t *testing.T) {
	path := writeGroupFile(t, "broken.yml", "group:\n  icon: x.png\n")

	_, err := LoadFile(path)

	var le *LoadError
	if !errors.As(err, &le) || le.Kind != KindSchema {
		t.Errorf("Expected schema error for YAML group without name, got %v", err)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"tools.desktopgroup", FormatJSON},
		{"tools.json", FormatJSON},
		{"tools.yaml", FormatYAML},
		{"TOOLS.YML", FormatYAML},
		{"tools", FormatJSON},
	}

	for _, test := range tests {
		if got := FormatForPath(test.path); got != test.expected {
			t.Errorf("FormatForPath(%s) = %s, expected %s", test.path, got, test.expected)
		}
	}
}

func TestSchemaJSON(t *testing.T) {
	data := SchemaJSON()
	if !strings.Contains(string(data), SchemaURL) {
		t.Error("Bundled schema should declare its $id")
	}

	data[0] = 'x'
	if SchemaJSON()[0] == 'x' {
		t.Error("SchemaJSON should return a copy")
	}
}
