package schema

import (
	"fmt"

	"builder-generator/internal/diagnostic"
)

// Validate structurally validates a schema file. Problems accumulate as
// diagnostics so one run reports everything; any error aborts generation
// before code is emitted, and a builder caller never observes them.
func Validate(sf *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if sf == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	if sf.Package == "" {
		res.AddError("missing_package", "schema has no package name", "", "")
	} else if !ValidGoIdent(sf.Package) {
		res.AddError("bad_package", fmt.Sprintf("package name %q is not a valid Go identifier", sf.Package), "", "")
	}

	if len(sf.Builders) == 0 {
		res.AddError("empty_schema", "schema declares no builders", "", "")
	}

	seenBuilders := map[string]struct{}{}

	for i := range sf.Builders {
		b := &sf.Builders[i]

		if b.Name == "" {
			res.AddError("missing_builder_name", "builder has no name", "", "")
			continue
		}

		if !ValidGoIdent(b.Name) {
			res.AddError("bad_builder_name", fmt.Sprintf("builder name %q is not a valid Go identifier", b.Name), b.Name, "")
		}

		if _, ok := seenBuilders[b.Name]; ok {
			res.AddError("duplicate_builder", fmt.Sprintf("duplicate builder %q", b.Name), b.Name, "")
			continue
		}

		seenBuilders[b.Name] = struct{}{}

		validateBuilder(res, b)
	}

	for _, ot := range sf.Types {
		if !ValidGoIdent(ot.Name) {
			res.AddError("bad_opaque_type", fmt.Sprintf("opaque type name %q is not a valid Go identifier", ot.Name), "", "")
		}
	}

	return res
}

// validateBuilder validates a single builder definition.
func validateBuilder(res *diagnostic.Diagnostics, b *Builder) {
	if len(b.Fields) == 0 {
		res.AddError("no_fields", "builder declares no fields", b.Name, "")
	}

	if !ValidGoIdent(b.Finalize) {
		res.AddError("bad_finalize_name", fmt.Sprintf("finalize name %q is not a valid Go identifier", b.Finalize), b.Name, "")
	}

	seenCtor := map[string]struct{}{}

	for _, c := range b.Constructor {
		if !ValidGoIdent(c.Name) {
			res.AddError("bad_ctor_name", fmt.Sprintf("constructor field name %q is not a valid Go identifier", c.Name), b.Name, c.Name)
		}

		if c.GoType == "" {
			res.AddError("missing_ctor_type", "constructor field has no go_type", b.Name, c.Name)
		}

		if _, ok := seenCtor[c.Name]; ok {
			res.AddError("duplicate_ctor_field", fmt.Sprintf("duplicate constructor field %q", c.Name), b.Name, c.Name)
			continue
		}

		seenCtor[c.Name] = struct{}{}
	}

	seenFields := map[string]struct{}{}
	seenSetters := map[string]string{}
	seenAccessors := map[string]string{}

	for i := range b.Fields {
		f := &b.Fields[i]

		if !ValidWireName(f.Name) {
			res.AddError("bad_field_name", fmt.Sprintf("field name %q is not usable as an identifier", f.Name), b.Name, f.Name)
			continue
		}

		if _, ok := seenFields[f.Name]; ok {
			res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", f.Name), b.Name, f.Name)
			continue
		}

		seenFields[f.Name] = struct{}{}

		validateField(res, b, f)

		if f.Setter != "" {
			if prev, ok := seenSetters[f.Setter]; ok {
				res.AddError("duplicate_setter",
					fmt.Sprintf("setter name %q already used by field %q", f.Setter, prev), b.Name, f.Name)
			} else {
				seenSetters[f.Setter] = f.Name
			}
		}

		if f.Accessor != "" {
			if prev, ok := seenAccessors[f.Accessor]; ok {
				res.AddError("duplicate_accessor",
					fmt.Sprintf("accessor name %q already used by field %q", f.Accessor, prev), b.Name, f.Name)
			} else {
				seenAccessors[f.Accessor] = f.Name
			}
		}
	}
}

// validateField validates one field descriptor.
func validateField(res *diagnostic.Diagnostics, b *Builder, f *Field) {
	vt, err := f.ValueType()
	if err != nil {
		res.AddError("unknown_value_type", err.Error(), b.Name, f.Name)
		return
	}

	if vt == ValueOpaque {
		if f.OpaqueType == "" {
			res.AddError("missing_opaque_type", "opaque field has no opaque_type", b.Name, f.Name)
		} else if !ValidGoIdent(f.OpaqueType) {
			res.AddError("bad_opaque_type",
				fmt.Sprintf("opaque type name %q is not a valid Go identifier", f.OpaqueType), b.Name, f.Name)
		}
	} else if f.OpaqueType != "" {
		res.AddWarning("ignored_opaque_type", "opaque_type is ignored for non-opaque fields", b.Name, f.Name)
	}

	// A required field may only carry a default that represents "not yet a
	// real value"; anything else would blur explicitly-set and defaulted.
	if f.Required && f.Default != nil && !vt.UnsetSentinel(*f.Default) {
		res.AddError("bad_required_default",
			fmt.Sprintf("required field default %q is not an unset sentinel", *f.Default), b.Name, f.Name)
	}

	if !f.Required && f.Default != nil {
		if _, err := ParseDefault(vt, *f.Default); err != nil {
			res.AddError("bad_default", err.Error(), b.Name, f.Name)
		}
	}

	if f.Setter != "" && !ValidGoIdent(f.Setter) {
		res.AddError("bad_setter_name", fmt.Sprintf("setter name %q is not a valid Go identifier", f.Setter), b.Name, f.Name)
	}

	if f.Accessor != "" && !ValidGoIdent(f.Accessor) {
		res.AddError("bad_accessor_name", fmt.Sprintf("accessor name %q is not a valid Go identifier", f.Accessor), b.Name, f.Name)
	}
}
