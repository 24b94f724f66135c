package config

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, exitResult := Parse([]string{"opq", "a.b.c"})
	if exitResult != nil {
		t.Fatalf("Parse returned exit result: %+v", exitResult)
	}

	if cfg.Path != "a.b.c" {
		t.Fatalf("Path = %q, want a.b.c", cfg.Path)
	}
	if cfg.InputFile != "" {
		t.Fatalf("InputFile = %q, want stdin default", cfg.InputFile)
	}
	if cfg.InputFormat != "yaml" || cfg.OutputFormat != "yaml" {
		t.Fatalf("formats = %q/%q, want yaml/yaml", cfg.InputFormat, cfg.OutputFormat)
	}
	if cfg.JSONPath {
		t.Fatal("JSONPath = true, want false")
	}
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, exitResult := Parse([]string{
		"opq",
		"-f", "doc.json",
		"-t", "json",
		"-o", "json",
		"-jsonpath",
		"-var", "env=staging",
		"-var", "region=eu-west-1",
		"-secret", "token=t0p",
		"$.items[0]",
	})
	if exitResult != nil {
		t.Fatalf("Parse returned exit result: %+v", exitResult)
	}

	if cfg.InputFile != "doc.json" {
		t.Fatalf("InputFile = %q, want doc.json", cfg.InputFile)
	}
	if !cfg.JSONPath {
		t.Fatal("JSONPath = false, want true")
	}
	if got := cfg.Variables["env"]; got != "staging" {
		t.Fatalf("Variables[env] = %v, want staging", got)
	}
	if got := cfg.Variables["region"]; got != "eu-west-1" {
		t.Fatalf("Variables[region] = %v, want eu-west-1", got)
	}
	if got := cfg.Secrets["token"]; got != "t0p" {
		t.Fatalf("Secrets[token] = %v, want t0p", got)
	}
	if cfg.Path != "$.items[0]" {
		t.Fatalf("Path = %q, want $.items[0]", cfg.Path)
	}
}

func TestParseRendersVariableTemplates(t *testing.T) {
	t.Parallel()

	cfg, exitResult := Parse([]string{"opq", "-var", "request_id={{uuid}}", "a"})
	if exitResult != nil {
		t.Fatalf("Parse returned exit result: %+v", exitResult)
	}

	value, ok := cfg.Variables["request_id"].(string)
	if !ok {
		t.Fatalf("Variables[request_id] = %T, want string", cfg.Variables["request_id"])
	}
	if _, err := uuid.Parse(value); err != nil {
		t.Fatalf("request_id = %q, not a UUID: %v", value, err)
	}
}

func TestParseHelpExitsSuccessfully(t *testing.T) {
	t.Parallel()

	_, exitResult := Parse([]string{"opq", "-h"})
	if exitResult == nil {
		t.Fatal("Parse(-h) returned no exit result")
	}
	if exitResult.ExitCode != 0 {
		t.Fatalf("Parse(-h) exit code = %d, want 0", exitResult.ExitCode)
	}
	if !strings.Contains(exitResult.Message, "Usage") {
		t.Fatalf("Parse(-h) message %q does not contain usage", exitResult.Message)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no arguments",
			args: nil,
		},
		{
			name: "missing path",
			args: []string{"opq"},
		},
		{
			name: "too many paths",
			args: []string{"opq", "a", "b"},
		},
		{
			name: "bad input format",
			args: []string{"opq", "-t", "xml", "a"},
		},
		{
			name: "bad output format",
			args: []string{"opq", "-o", "toml", "a"},
		},
		{
			name: "malformed variable",
			args: []string{"opq", "-var", "novalue", "a"},
		},
		{
			name: "empty variable name",
			args: []string{"opq", "-var", "=x", "a"},
		},
		{
			name: "unknown flag",
			args: []string{"opq", "-bogus", "a"},
		},
		{
			name: "bad variable template",
			args: []string{"opq", "-var", "x={{unclosed", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, exitResult := Parse(tt.args)
			if exitResult == nil {
				t.Fatalf("Parse(%v) = %+v, want exit result", tt.args, cfg)
			}
			if exitResult.ExitCode == 0 {
				t.Fatalf("Parse(%v) exit code 0, want non-zero", tt.args)
			}
		})
	}
}
