package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/lguibr/blockfall/game"
)

// Emits the JSON schema for the wire messages exchanged with clients, so
// non-Go frontends can validate their decoding.
func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	if err := writeSchema(outPath, buildSchema()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{}

	schema := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Blockfall Wire Messages",
		Description: "Messages exchanged between the blockfall server and its clients.",
		OneOf: []*jsonschema.Schema{
			reflector.Reflect(new(game.CommandMessage)),
			reflector.Reflect(new(game.SnapshotMessage)),
			reflector.Reflect(new(game.GameOverMessage)),
		},
	}
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}
