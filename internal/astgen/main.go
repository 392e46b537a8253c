// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// astgen generates the node types in package ast, and the table that decodes
// them, from the node schema.
//
// To regenerate, use
//
//	//go:generate go run ../internal/astgen -schema nodes.yaml -ast nodes_gen.go -decode ../decode/nodes_gen.go
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

//go:embed ast.go.tmpl
var astTemplate string

//go:embed decode.go.tmpl
var decodeTemplate string

//go:embed header.txt
var header string

func main() {
	schemaPath := flag.String("schema", "nodes.yaml", "path to the node schema")
	astPath := flag.String("ast", "nodes_gen.go", "output path for node types")
	decodePath := flag.String("decode", "", "output path for the decode table")
	flag.Parse()

	if err := run(*schemaPath, *astPath, *decodePath); err != nil {
		fmt.Fprintln(os.Stderr, "astgen:", err)
		os.Exit(1)
	}
}

func run(schemaPath, astPath, decodePath string) error {
	text, err := os.ReadFile(schemaPath)
	if err != nil {
		return err
	}
	schema, err := ParseSchema(text)
	if err != nil {
		return fmt.Errorf("%s: %w", schemaPath, err)
	}

	if err := render(astPath, astTemplate, schema); err != nil {
		return err
	}
	if decodePath != "" {
		return render(decodePath, decodeTemplate, schema)
	}
	return nil
}

func render(path, text string, schema *Schema) error {
	tmpl, err := template.New(path).Funcs(template.FuncMap{
		"docs":   makeDocs,
		"header": func() string { return header },
	}).Parse(text)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, schema); err != nil {
		return err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting %s: %w", path, err)
	}
	return os.WriteFile(path, out, 0o644)
}

// makeDocs wraps text into doc comment lines of at most 80 columns.
func makeDocs(text, indent string) string {
	var out, line strings.Builder
	flush := func() {
		if line.Len() > 0 {
			fmt.Fprintf(&out, "%s// %s\n", indent, line.String())
			line.Reset()
		}
	}
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len(indent)+3+line.Len()+1+len(word) > 80 {
			flush()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	flush()
	return out.String()
}
