package main

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/sanjaiganesh/opent2t/pkg/schema"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"concat":      func(a, b string) string { return a + b },
	"firstLower":  firstLower,
	"goTitleCase": goTitleCase,
	"goTypeName":  goTypeName,
	"fullName":    fullName,
	"methodDecl":  methodDecl,
	"quote":       func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		constantsTmpl +
		contractTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// headerData holds data for the header template.
type headerData struct {
	Package string
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}// Code generated by opent2t-gen. DO NOT EDIT.

package {{.Package}}

import "context"

{{end}}`

const constantsTmpl = `{{define "constants"}}
{{- $name := .Name}}
// {{$name}}Interface is the full name of the {{$name}} contract.
const {{$name}}Interface = {{quote (fullName .)}}

{{if .Properties}}
// {{$name}} property names.
const (
{{- range .Properties}}
{{concat $name (concat "Prop" (goTitleCase .Name))}} = {{quote .Name}}
{{- end}}
)
{{end}}
{{- if .Methods}}
// {{$name}} method names.
const (
{{- range .Methods}}
{{concat $name (concat "Method" (goTitleCase .Name))}} = {{quote .Name}}
{{- end}}
)
{{end}}
{{- end}}`

const contractTmpl = `{{define "contract"}}
// {{.Name}} is the typed contract of the {{fullName .}} interface.
// Property accessors mirror the readable/writable halves of each
// property; methods carry their declared parameters plus a context.
type {{.Name}} interface {
{{- range .Properties}}
{{- if .Read}}
Get{{goTitleCase .Name}}(ctx context.Context) ({{goTypeName .Type}}, error)
{{- end}}
{{- if .Write}}
Set{{goTitleCase .Name}}(ctx context.Context, value {{goTypeName .Type}}) error
{{- end}}
{{- end}}
{{- range .Methods}}
{{methodDecl .}}
{{- end}}
}

{{end}}`

// --- Helper functions ---

// fullName returns the namespace-qualified interface name, falling back
// to the bare name when no namespace was declared.
func fullName(s *schema.InterfaceSchema) string {
	if s.FullName != "" {
		return s.FullName
	}
	return s.Name
}

// goTitleCase converts "ambientTemperature" to "AmbientTemperature".
func goTitleCase(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// firstLower converts "AmbientTemperature" to "ambientTemperature".
func firstLower(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// goTypeName maps a schema value-type tag to its Go type.
func goTypeName(typeTag string) string {
	switch typeTag {
	case schema.TypeBoolean:
		return "bool"
	case schema.TypeInteger:
		return "int64"
	case schema.TypeNumber:
		return "float64"
	case schema.TypeString:
		return "string"
	case schema.TypeArray:
		return "[]any"
	case schema.TypeObject:
		return "map[string]any"
	default:
		return "any"
	}
}

// methodDecl renders the full Go method declaration for a schema
// method, e.g. "TurnOn(ctx context.Context, level int64) (bool, error)".
func methodDecl(m schema.MethodSchema) string {
	var b strings.Builder
	b.WriteString(goTitleCase(m.Name))
	b.WriteString("(ctx context.Context")
	for _, p := range m.Inputs() {
		fmt.Fprintf(&b, ", %s %s", firstLower(p.Name), goTypeName(p.Type))
	}
	b.WriteString(")")
	if out, ok := m.Output(); ok {
		fmt.Fprintf(&b, " (%s, error)", goTypeName(out.Type))
	} else {
		b.WriteString(" error")
	}
	return b.String()
}
