// Command decode is the CLI surface spec.md §6 asks for: a toml-test
// compatible decoder. It reads a TOML document from stdin (or -input),
// resolves it with the semantic core, and prints the BurntSushi
// tagged-value JSON schema on stdout. A semantic failure is reported on
// stderr, rendered the way render.Error formats it; a read or parse failure
// is reported on stderr with the underlying error's message. Every failure
// exits with a non-zero code.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/awsqed/toml-semantics/render"
	"github.com/awsqed/toml-semantics/semantics"
	"github.com/awsqed/toml-semantics/tagged"
	"github.com/awsqed/toml-semantics/tomlfront"
)

func main() {
	inputFile := flag.String("input", "", "Input TOML file (defaults to stdin)")
	indent := flag.String("indent", "  ", "JSON indentation string")

	flag.Parse()

	var data []byte
	var err error
	if *inputFile != "" {
		data, err = os.ReadFile(*inputFile)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	exprs, err := tomlfront.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing TOML: %v\n", err)
		os.Exit(1)
	}

	table, err := semantics.Semantics(exprs)
	if err != nil {
		if semErr, ok := err.(*semantics.SemanticError); ok {
			fmt.Fprintln(os.Stderr, render.Error(semErr))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	out := tagged.EncodeTable(table)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", *indent)
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
}
