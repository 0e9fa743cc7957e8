package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"builder-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the schema's package name when non-empty.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// RuntimeImport is the import path of the request runtime package that
	// finalize hands its field bundle to.
	RuntimeImport string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:     "./generated",
		RuntimeImport: "builder-generator/request",
	}
}

// Generator generates Go code from a resolved schema.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g. "put_page_blob.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates Go code from a ResolvedSchema.
// Returns a list of generated files: the shared marker file first, then one
// file per builder in schema order.
func (g *Generator) Generate(rs *plan.ResolvedSchema) ([]GeneratedFile, error) {
	if rs == nil {
		return nil, fmt.Errorf("resolved schema is nil")
	}

	if rs.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("cannot generate from a schema with errors: %w", rs.Diagnostics.Error())
	}

	pkg := rs.Package
	if g.config.PackageName != "" {
		pkg = g.config.PackageName
	}

	var files []GeneratedFile

	if len(rs.States) > 0 || len(rs.Opaques) > 0 {
		file, err := g.render(statesTemplate, "states.go", buildStatesData(pkg, rs))
		if err != nil {
			return files, err
		}

		files = append(files, *file)
	}

	for i := range rs.Builders {
		b := &rs.Builders[i]

		data := g.buildBuilderData(pkg, rs, b)

		file, err := g.render(builderTemplate, data.Filename, data)
		if err != nil {
			return files, fmt.Errorf("generating builder %s: %w", b.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// render executes a template and formats the result.
func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid
		// debugging. Intentionally non-fatal for the write attempt.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

var statesTemplate = template.Must(
	template.New("states").
		Parse(`// Code generated by builder-generator. DO NOT EDIT.

package {{.PackageName}}
{{range .States}}
// {{.Interface}} tracks whether the {{.FieldName}} field has been set.
type {{.Interface}} interface{ {{.TagMethod}}() }

// {{.Unset}} marks a builder whose {{.FieldName}} field is not yet set.
type {{.Unset}} struct{}

// {{.Set}} marks a builder whose {{.FieldName}} field has been set.
type {{.Set}} struct{}

func ({{.Unset}}) {{.TagMethod}}() {}
func ({{.Set}}) {{.TagMethod}}() {}
{{end}}{{range .Opaques}}
// {{.}} is an opaque identifier: carried as text, distinct from plain text.
type {{.}} string
{{end}}`))

var builderTemplate = template.Must(
	template.New("builder").
		Parse(`// Code generated by builder-generator. DO NOT EDIT.

package {{.PackageName}}

import (
	"{{.RuntimeImport}}"
)

// {{.FieldsType}} is the flat value store shared by every state of
// {{.BuilderType}}.
type {{.FieldsType}} struct {
{{range .CtorFields}}	{{.Name}} {{.Type}}
{{end}}{{range .StoreFields}}	{{.Name}} {{.Type}}
{{end}}}

// {{.BuilderType}} accumulates fields for a {{.Name}} request. Its type
// parameters track which required fields have been set; {{.FinalizeName}}
// accepts the builder only once all of them are.
type {{.BuilderType}}{{.DeclParams}} struct {
	f {{.FieldsType}}
}

// {{.ConstructorName}} returns a builder with every required field unset
// and every optional field absent or at its declared default.
func {{.ConstructorName}}({{.CtorParams}}) {{.BuilderType}}{{.AllUnsetUse}} {
	f := {{.FieldsType}}{{"{"}}{{.CtorInit}}{{"}"}}
{{range .Defaults}}	{{.Var}} := {{.Literal}}
	f.{{.Store}} = &{{.Var}}
{{end}}
	return {{.BuilderType}}{{.AllUnsetUse}}{f: f}
}
{{range .RequiredOps}}
// {{.SetterName}} records {{.WireName}}. It is available only while
// {{.WireName}} is unset; the returned builder has the field locked.
func {{.SetterName}}{{.DeclParams}}(b {{$.BuilderType}}{{.UnsetUse}}, v {{.GoType}}) {{$.BuilderType}}{{.SetUse}} {
	out := {{$.BuilderType}}{{.SetUse}}{f: b.f}
	out.f.{{.Store}} = v

	return out
}

// {{.AccessorName}} reads {{.WireName}} once it has been set.
func {{.AccessorName}}{{.DeclParams}}(b {{$.BuilderType}}{{.SetUse}}) {{.GoType}} {
	return b.f.{{.Store}}
}
{{end}}{{range .OptionalOps}}
// {{.SetterName}} sets {{.WireName}}. It may be called at any point and any
// number of times; the last write wins.
func (b {{$.BuilderType}}{{$.GenericUse}}) {{.SetterName}}(v {{.GoType}}) {{$.BuilderType}}{{$.GenericUse}} {
{{if .IsMap}}	b.f.{{.Store}} = v
{{else}}	b.f.{{.Store}} = &v
{{end}}
	return b
}

// {{.AccessorName}} reports the last value set for {{.WireName}}.
func (b {{$.BuilderType}}{{$.GenericUse}}) {{.AccessorName}}() ({{.GoType}}, bool) {
{{if .IsMap}}	return b.f.{{.Store}}, b.f.{{.Store}} != nil
{{else}}	if b.f.{{.Store}} == nil {
		var zero {{.GoType}}
		return zero, false
	}

	return *b.f.{{.Store}}, true
{{end}}}
{{end}}
// {{.FinalizeName}} assembles the immutable request value. Its parameter
// type fixes every marker to Set, so a missing required field is not a
// failure mode here; it is unrepresentable.
func {{.FinalizeName}}(b {{.BuilderType}}{{.AllSetUse}}) request.Request {
	fields := make([]request.Field, 0, {{.FieldCount}})
{{range .FinalizeFields}}{{if .Required}}	fields = append(fields, request.Field{Name: "{{.WireName}}", Value: b.f.{{.Store}}})
{{else}}{{if .IsMap}}	if b.f.{{.Store}} != nil {
		fields = append(fields, request.Field{Name: "{{.WireName}}", Value: b.f.{{.Store}}})
	}
{{else}}	if b.f.{{.Store}} != nil {
		fields = append(fields, request.Field{Name: "{{.WireName}}", Value: *b.f.{{.Store}}})
	}
{{end}}{{end}}{{end}}
	return request.New(fields)
}
`))
