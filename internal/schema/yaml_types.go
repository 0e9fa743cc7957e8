package schema

// File is the root of a parsed schema file.
type File struct {
	// Version of the schema format.
	Version string `yaml:"version,omitempty"`
	// Package is the Go package name for generated code.
	Package string `yaml:"package"`
	// Builders lists the builder definitions to generate.
	Builders []Builder `yaml:"builders"`
	// Types lists extra opaque type declarations beyond those referenced
	// by fields.
	Types []OpaqueType `yaml:"types,omitempty"`
}

// Builder describes one request builder: its constructor-only fields and
// its ordered field descriptors.
type Builder struct {
	// Name of the builder (e.g. "PutPageBlob"). Must be a Go-exportable
	// identifier.
	Name string `yaml:"name"`
	// Finalize is the exposed name of the finalize operation. Defaults to
	// "Build".
	Finalize string `yaml:"finalize,omitempty"`
	// Constructor lists constructor-only fields. They are fixed when the
	// builder is created, do not participate in typestate tracking, and are
	// not copied into the finalized request.
	Constructor []CtorField `yaml:"constructor,omitempty"`
	// Fields is the ordered list of field descriptors.
	Fields []Field `yaml:"fields"`
}

// CtorField is a constructor-only field, e.g. a handle to the calling
// client.
type CtorField struct {
	Name string `yaml:"name"`
	// GoType is the literal Go type of the argument (e.g. "*Client").
	GoType string `yaml:"go_type"`
}

// Field is one field descriptor within a builder.
type Field struct {
	// Name is the wire name of the field, unique within the builder
	// (e.g. "container_name").
	Name string `yaml:"name"`
	// Type is the value type: text, uint, map, or opaque.
	Type string `yaml:"type"`
	// Required marks the field as typestate-tracked.
	Required bool `yaml:"required,omitempty"`
	// Default is the textual default for an optional field. On a required
	// field only an "unset" sentinel ("" or "0") is accepted, and it is
	// never emitted; the field starts unset regardless.
	Default *string `yaml:"default,omitempty"`
	// OpaqueType names the generated string type for opaque fields.
	OpaqueType string `yaml:"opaque_type,omitempty"`
	// Setter overrides the exposed setter name. Defaults to "With" + the
	// field's Go name.
	Setter string `yaml:"setter,omitempty"`
	// Accessor overrides the exposed accessor name. Defaults to the field's
	// Go name.
	Accessor string `yaml:"accessor,omitempty"`
}

// OpaqueType declares a named string type emitted into the generated
// package.
type OpaqueType struct {
	Name string `yaml:"name"`
}

// ValueType returns the parsed value type of the field.
func (f *Field) ValueType() (ValueType, error) {
	return ParseValueType(f.Type)
}

// GoName returns the exported Go name derived from the field's wire name.
func (f *Field) GoName() string {
	return GoName(f.Name)
}

// RequiredFields returns the builder's required fields in schema order.
func (b *Builder) RequiredFields() []Field {
	var out []Field

	for _, f := range b.Fields {
		if f.Required {
			out = append(out, f)
		}
	}

	return out
}

// OptionalFields returns the builder's optional fields in schema order.
func (b *Builder) OptionalFields() []Field {
	var out []Field

	for _, f := range b.Fields {
		if !f.Required {
			out = append(out, f)
		}
	}

	return out
}

// FieldByName returns the field with the given wire name, or nil.
func (b *Builder) FieldByName(name string) *Field {
	for i := range b.Fields {
		if b.Fields[i].Name == name {
			return &b.Fields[i]
		}
	}

	return nil
}
