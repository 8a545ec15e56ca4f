// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// fileTemplate emits the whole generated file. The output is run
// through go/format before writing, so the template favors clarity
// over exact spacing.
var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"prefix":      constPrefix,
	"unitConst":   unitConst,
	"unitNoun":    unitNoun,
	"formatExpr":  formatExpr,
	"formatLabel": formatLabel,
}).Parse(`// Code generated by boundedgen. DO NOT EDIT.
// Source: {{.SourceName}}

package {{.Package}}

import (
	"github.com/bureau-foundation/bounded"
)
{{range .Strings}}{{$p := prefix .Name}}
// {{.Name}} bound constants. The guard constant below fails to
// compile if these are ever edited into an impossible order.
const (
	{{$p}}Min      = {{.Min}}
	{{$p}}Max      = {{.Max}}
	{{$p}}Capacity = {{.Capacity}}
)

const _ = uint64({{$p}}Min) + uint64({{$p}}Max-{{$p}}Min) + uint64({{$p}}Capacity{{if not .Spill}}-{{$p}}Max{{end}})

// {{.Name}}Schema configures {{.Name}}: {{unitNoun .}} in [{{.Min}}, {{.Max}}], capacity {{.Capacity}} bytes, format {{formatLabel .}}.
type {{.Name}}Schema struct{}

func ({{.Name}}Schema) Bounds() bounded.Bounds {
	return bounded.Bounds{Min: {{$p}}Min, Max: {{$p}}Max, Capacity: {{$p}}Capacity}
}

func ({{.Name}}Schema) Length() bounded.LengthUnit { return bounded.{{unitConst .}} }

func ({{.Name}}Schema) Format() bounded.Format { return {{formatExpr .}} }
{{if .Spill}}
func ({{.Name}}Schema) Spill() bool { return true }
{{end}}{{if .Sensitive}}
func ({{.Name}}Schema) Sensitive() bool { return true }
{{end}}
// {{.Name}} is {{if .Doc}}{{.Doc}}{{else}}a bounded string constrained by {{.Name}}Schema.{{end}}
type {{.Name}} = bounded.Str[{{.Name}}Schema]

// Parse{{.Name}} validates raw and returns it as a {{.Name}}.
func Parse{{.Name}}(raw string) ({{.Name}}, error) {
	return bounded.New[{{.Name}}Schema](raw)
}
{{end}}`))

// Generate renders the definition file to formatted Go source. The
// definitions must already have passed Validate.
func Generate(file *DefinitionFile) ([]byte, error) {
	var buffer bytes.Buffer
	if err := fileTemplate.Execute(&buffer, file); err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	source, err := format.Source(buffer.Bytes())
	if err != nil {
		// The template emitted invalid Go — a generator bug, but the
		// raw output is the only useful diagnostic, so keep it in the
		// error.
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buffer.Bytes())
	}
	return source, nil
}

// unitConst returns the bounded.LengthUnit constant name for a
// definition's length field.
func unitConst(d StringDefinition) string {
	if d.Length == "chars" {
		return "UnitChars"
	}
	return "UnitBytes"
}

// unitNoun returns the human word used in the schema doc comment.
func unitNoun(d StringDefinition) string {
	if d.Length == "chars" {
		return "characters"
	}
	return "bytes"
}

// formatExpr returns the Go expression for a definition's format
// policy. Custom formats refer to a handwritten package-level
// variable named after the type.
func formatExpr(d StringDefinition) string {
	switch d.Format {
	case "ascii":
		return "bounded.ASCII"
	case "custom":
		return constPrefix(d.Name) + "Format"
	default:
		return "bounded.AllowAll"
	}
}

// formatLabel returns the format name quoted for the doc comment.
func formatLabel(d StringDefinition) string {
	switch d.Format {
	case "ascii":
		return `"ascii"`
	case "custom":
		return fmt.Sprintf("custom (%sFormat)", constPrefix(d.Name))
	default:
		return `"allow-all"`
	}
}
