// Command opq evaluates dotted path expressions (or JSONPath) against
// JSON/YAML documents.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/objectpath"
	"github.com/jacoelho/objectpath/internal/config"
	"github.com/jacoelho/objectpath/internal/exit"
	"github.com/jacoelho/objectpath/stash"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	result := execute(cfg)
	result.Print()
	return result.ExitCode
}

func execute(cfg *config.Config) *exit.Result {
	payload, err := readDocument(cfg.InputFile)
	if err != nil {
		return exit.Errorf("read document: %v\n", err)
	}

	doc, err := decode(cfg.InputFormat, payload)
	if err != nil {
		return exit.Errorf("%v\n", err)
	}

	store := buildStash(cfg)

	if cfg.JSONPath {
		value, err := doc.JSONPath(cfg.Path)
		if err != nil {
			if objectpath.IsNotFound(err) {
				return exit.NotFound("null\n")
			}
			return exit.Errorf("%v\n", err)
		}
		return render(cfg, store, objectpath.NewNode(value))
	}

	node, err := doc.EvaluateWith(cfg.Path, store)
	if err != nil {
		return exit.Errorf("%v\n", err)
	}
	if node == nil {
		return exit.NotFound("null\n")
	}

	return render(cfg, store, node)
}

func readDocument(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func decode(format string, payload []byte) (*objectpath.ObjectPath, error) {
	if format == "json" {
		return objectpath.FromJSON(payload)
	}
	return objectpath.FromYAML(payload)
}

func buildStash(cfg *config.Config) *stash.Stash {
	store := stash.New()
	for name, value := range cfg.Variables {
		store.Set(name, value)
	}
	for name, value := range cfg.Secrets {
		store.SetSecret(name, value)
	}
	return store
}

func render(cfg *config.Config, store *stash.Stash, node *objectpath.Node) *exit.Result {
	payload, err := yaml.Marshal(node)
	if err != nil {
		return exit.Errorf("render result: %v\n", err)
	}

	if cfg.OutputFormat == "json" {
		payload, err = yaml.YAMLToJSON(payload)
		if err != nil {
			return exit.Errorf("render result: %v\n", err)
		}
	}

	out := string(payload)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	return exit.Success(redact(out, store.Secrets()))
}

// redact masks secret values in tool output.
func redact(out string, secrets []any) string {
	for _, secret := range secrets {
		needle := fmt.Sprintf("%v", secret)
		if needle == "" {
			continue
		}
		out = strings.ReplaceAll(out, needle, "[redacted]")
	}
	return out
}
