package plan

import (
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/schema"
)

// ResolvedSchema is the final output of the resolution pipeline. It
// contains everything needed for code generation.
type ResolvedSchema struct {
	// Package is the Go package name for generated code.
	Package string
	// Builders is the list of resolved builder descriptions, in schema
	// order.
	Builders []ResolvedBuilder
	// States is the deduplicated list of marker pairs for every required
	// field in the package, sorted by field name.
	States []StatePair
	// Opaques is the sorted list of opaque type names to declare.
	Opaques []string
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// StatePair is the marker pair tracking one required field at the type
// level. Builders sharing a field name share the pair.
type StatePair struct {
	// FieldName is the wire name of the tracked field.
	FieldName string
	// Interface is the state constraint interface (e.g. "ContainerNameState").
	Interface string
	// Unset is the marker type for "not yet set" (e.g. "ContainerNameUnset").
	Unset string
	// Set is the marker type for "set" (e.g. "ContainerNameSet").
	Set string
	// TagMethod is the unexported method tying the markers to the
	// constraint (e.g. "containerNameState").
	TagMethod string
}

// ResolvedArg is a constructor-only argument.
type ResolvedArg struct {
	Name   string
	GoType string
}

// ResolvedField is one field of a resolved builder.
type ResolvedField struct {
	// Name is the wire name.
	Name string
	// GoName is the exported Go identifier derived from Name.
	GoName string
	// StoreName is the unexported value-store field name.
	StoreName string
	// Value is the field's value type.
	Value schema.ValueType
	// GoType is the Go type of the field's value.
	GoType string
	// StoreType is the type of the value-store field; optional scalar
	// fields are stored behind a pointer so absence stays representable.
	StoreType string
	// Required marks the field as typestate-tracked.
	Required bool
	// Default is the textual default of an optional field, if any.
	Default *string
	// Setter is the exposed setter name.
	Setter string
	// Accessor is the exposed accessor name.
	Accessor string
	// StateIndex is the field's state type-parameter slot, or -1 for
	// optional fields.
	StateIndex int
}

// ResolvedBuilder is the full type description of one generated builder.
type ResolvedBuilder struct {
	// Name of the builder per the schema (e.g. "PutPageBlob").
	Name string
	// BuilderType is the generated generic struct name (e.g.
	// "PutPageBlobBuilder").
	BuilderType string
	// FieldsType is the unexported value-store struct name (e.g.
	// "putPageBlobFields").
	FieldsType string
	// ConstructorName is the generated constructor (e.g.
	// "NewPutPageBlobBuilder").
	ConstructorName string
	// FinalizeName is the generated finalize operation (e.g.
	// "BuildPutPageBlob").
	FinalizeName string
	// Constructor lists constructor-only arguments.
	Constructor []ResolvedArg
	// Fields is the ordered list of resolved fields.
	Fields []ResolvedField
}

// Required returns the builder's typestate-tracked fields in state order.
func (b *ResolvedBuilder) Required() []ResolvedField {
	var out []ResolvedField

	for _, f := range b.Fields {
		if f.Required {
			out = append(out, f)
		}
	}

	return out
}

// Optional returns the builder's free fields in schema order.
func (b *ResolvedBuilder) Optional() []ResolvedField {
	var out []ResolvedField

	for _, f := range b.Fields {
		if !f.Required {
			out = append(out, f)
		}
	}

	return out
}

// StateFor returns the marker pair for a required field name, or nil.
func (rs *ResolvedSchema) StateFor(fieldName string) *StatePair {
	for i := range rs.States {
		if rs.States[i].FieldName == fieldName {
			return &rs.States[i]
		}
	}

	return nil
}
