// Package config parses command line arguments for the opq tool.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/jacoelho/objectpath/internal/exit"
	"github.com/jacoelho/objectpath/internal/template"
)

var (
	ErrNoArguments           = errors.New("no arguments provided")
	ErrNoPath                = errors.New("no path expression specified")
	ErrTooManyArguments      = errors.New("expected a single path expression")
	ErrInvalidInputFormat    = errors.New("input format must be yaml or json")
	ErrInvalidOutputFormat   = errors.New("output format must be yaml or json")
	ErrInvalidVariableFormat = errors.New("variable must be in format name=value")
	ErrEmptyVariableName     = errors.New("variable name cannot be empty")
)

// Config represents the complete configuration for the opq tool.
type Config struct {
	// Query
	Path     string
	JSONPath bool

	// Document source
	InputFile    string // empty means stdin
	InputFormat  string // yaml or json
	OutputFormat string // yaml or json

	// Stash seeding
	Variables map[string]any
	Secrets   map[string]any
}

// Parse builds a Config from command line arguments. It returns a
// non-nil exit result when parsing fails or usage should be printed.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("%v\n", ErrNoArguments)
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	var usage strings.Builder
	fs.SetOutput(&usage)
	fs.Usage = func() {
		fmt.Fprintf(&usage, "Usage: %s [options] <path>\n\nOptions:\n", args[0])
		fs.PrintDefaults()
	}

	var (
		variables stringList
		secrets   stringList
	)

	fs.Var(&variables, "var", "stash variable in name=value format (repeatable; value may use template functions)")
	fs.Var(&secrets, "secret", "like -var, but the value is redacted in output (repeatable)")
	inputFile := fs.String("f", "", "document file (default: stdin)")
	inputFormat := fs.String("t", "yaml", "input format: yaml or json")
	outputFormat := fs.String("o", "yaml", "output format: yaml or json")
	jsonPath := fs.Bool("jsonpath", false, "treat the expression as RFC 9535 JSONPath instead of a dotted path")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(usage.String())
		}
		return nil, exit.Error(usage.String())
	}

	switch len(fs.Args()) {
	case 0:
		return nil, exit.Errorf("%v\n", ErrNoPath)
	case 1:
	default:
		return nil, exit.Errorf("%v, got %d\n", ErrTooManyArguments, len(fs.Args()))
	}

	if !validFormat(*inputFormat) {
		return nil, exit.Errorf("%v, got %q\n", ErrInvalidInputFormat, *inputFormat)
	}
	if !validFormat(*outputFormat) {
		return nil, exit.Errorf("%v, got %q\n", ErrInvalidOutputFormat, *outputFormat)
	}

	cfg := &Config{
		Path:         fs.Args()[0],
		JSONPath:     *jsonPath,
		InputFile:    *inputFile,
		InputFormat:  *inputFormat,
		OutputFormat: *outputFormat,
		Variables:    make(map[string]any),
		Secrets:      make(map[string]any),
	}

	if err := parsePairs(variables, cfg.Variables); err != nil {
		return nil, exit.Errorf("%v\n", err)
	}
	if err := parsePairs(secrets, cfg.Secrets); err != nil {
		return nil, exit.Errorf("%v\n", err)
	}

	return cfg, nil
}

func validFormat(format string) bool {
	return format == "yaml" || format == "json"
}

// parsePairs splits name=value bindings and renders values through the
// template functions, so -var request_id='{{uuid}}' works.
func parsePairs(pairs []string, into map[string]any) error {
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("%w, got %q", ErrInvalidVariableFormat, pair)
		}
		if name == "" {
			return fmt.Errorf("%w: %q", ErrEmptyVariableName, pair)
		}

		rendered, err := template.Render(value)
		if err != nil {
			return fmt.Errorf("variable %s: %w", name, err)
		}

		into[name] = rendered
	}

	return nil
}

// stringList collects repeated flag values.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
