package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCommand_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected Command
	}{
		{`"calc.exe"`, CommandLine("calc.exe")},
		{`"firefox --private-window"`, CommandLine("firefox --private-window")},
		{`["code", "--new-window", "C:\\work"]`, CommandVector("code", "--new-window", `C:\work`)},
		{`[]`, CommandVector()},
	}

	for _, test := range tests {
		var c Command
		if err := json.Unmarshal([]byte(test.input), &c); err != nil {
			t.Errorf("Unmarshal(%s) returned error: %v", test.input, err)
			continue
		}
		if !c.Equal(test.expected) {
			t.Errorf("Unmarshal(%s) = %#v, expected %#v", test.input, c, test.expected)
		}
	}
}

func TestCommand_UnmarshalJSONRejectsOtherTypes(t *testing.T) {
	inputs := []string{`42`, `true`, `{"cmd": "x"}`, `[1, 2]`, `null`}

	for _, input := range inputs {
		var c Command
		err := json.Unmarshal([]byte(input), &c)
		if err == nil {
			t.Errorf("Unmarshal(%s) expected error, got %#v", input, c)
			continue
		}
		if !errors.Is(err, ErrInvalidCommand) {
			t.Errorf("Unmarshal(%s) error = %v, expected ErrInvalidCommand", input, err)
		}
	}
}

func TestCommand_MarshalKeepsForm(t *testing.T) {
	tests := []struct {
		command  Command
		expected string
	}{
		{CommandLine("calc.exe"), `"calc.exe"`},
		{CommandVector("notepad.exe", "todo.txt"), `["notepad.exe","todo.txt"]`},
		{CommandVector(), `[]`},
	}

	for _, test := range tests {
		data, err := json.Marshal(test.command)
		if err != nil {
			t.Fatalf("Marshal(%v) returned error: %v", test.command, err)
		}
		if string(data) != test.expected {
			t.Errorf("Marshal(%v) = %s, expected %s", test.command, data, test.expected)
		}
	}
}

func TestCommand_Accessors(t *testing.T) {
	line := CommandLine("calc.exe")
	if line.IsVector() || line.Args() != nil || line.Line() != "calc.exe" {
		t.Errorf("Unexpected accessors for command line: %#v", line)
	}

	vec := CommandVector("code", "--new-window")
	if !vec.IsVector() || vec.Line() != "code --new-window" {
		t.Errorf("Unexpected accessors for vector: %#v", vec)
	}

	args := vec.Args()
	args[0] = "changed"
	if vec.Args()[0] != "code" {
		t.Error("Args should return a copy")
	}
}

func TestCommand_IsZero(t *testing.T) {
	tests := []struct {
		command  Command
		expected bool
	}{
		{Command{}, true},
		{CommandLine(""), true},
		{CommandLine("   "), true},
		{CommandLine("calc.exe"), false},
		{CommandVector(), true},
		{CommandVector(""), false},
	}

	for _, test := range tests {
		if got := test.command.IsZero(); got != test.expected {
			t.Errorf("IsZero(%#v) = %v, expected %v", test.command, got, test.expected)
		}
	}
}
