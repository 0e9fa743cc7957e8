package plan

import (
	"fmt"
	"sort"

	"builder-generator/internal/schema"
)

// Resolve validates a schema file and resolves it into a ResolvedSchema.
// Callers must check Diagnostics before handing the result to generation.
func Resolve(sf *schema.File) *ResolvedSchema {
	rs := &ResolvedSchema{}

	d := schema.Validate(sf)
	rs.Diagnostics.Merge(*d)

	if rs.Diagnostics.HasErrors() {
		return rs
	}

	rs.Package = sf.Package

	states := map[string]StatePair{}
	opaques := map[string]struct{}{}

	for _, ot := range sf.Types {
		opaques[ot.Name] = struct{}{}
	}

	for i := range sf.Builders {
		b := &sf.Builders[i]
		rb := resolveBuilder(b, states, opaques)
		rs.Builders = append(rs.Builders, rb)
	}

	for _, sp := range states {
		rs.States = append(rs.States, sp)
	}

	sort.Slice(rs.States, func(i, j int) bool {
		return rs.States[i].FieldName < rs.States[j].FieldName
	})

	for name := range opaques {
		rs.Opaques = append(rs.Opaques, name)
	}

	sort.Strings(rs.Opaques)

	checkNameCollisions(rs)

	return rs
}

// resolveBuilder resolves one builder definition, recording marker pairs
// and opaque types into the package-wide collections.
func resolveBuilder(b *schema.Builder, states map[string]StatePair, opaques map[string]struct{}) ResolvedBuilder {
	rb := ResolvedBuilder{
		Name:            b.Name,
		BuilderType:     b.Name + "Builder",
		FieldsType:      schema.LowerFirst(b.Name) + "Fields",
		ConstructorName: "New" + b.Name + "Builder",
		FinalizeName:    b.Finalize + b.Name,
	}

	for _, c := range b.Constructor {
		rb.Constructor = append(rb.Constructor, ResolvedArg{
			Name:   c.Name,
			GoType: c.GoType,
		})
	}

	stateIdx := 0

	for j := range b.Fields {
		f := &b.Fields[j]

		// Validation already vetted the type; resolution assumes it parses.
		vt, err := f.ValueType()
		if err != nil {
			continue
		}

		if vt == schema.ValueOpaque {
			opaques[f.OpaqueType] = struct{}{}
		}

		rf := ResolvedField{
			Name:       f.Name,
			GoName:     f.GoName(),
			StoreName:  schema.LowerFirst(f.GoName()),
			Value:      vt,
			GoType:     vt.GoType(f.OpaqueType),
			Required:   f.Required,
			Setter:     f.Setter,
			Accessor:   f.Accessor,
			StateIndex: -1,
		}

		rf.StoreType = storeType(vt, rf.GoType, f.Required)

		if f.Required {
			rf.StateIndex = stateIdx
			stateIdx++

			if _, ok := states[f.Name]; !ok {
				states[f.Name] = statePairFor(f)
			}
		} else {
			rf.Default = f.Default
		}

		rb.Fields = append(rb.Fields, rf)
	}

	return rb
}

// statePairFor builds the marker pair names for a required field.
func statePairFor(f *schema.Field) StatePair {
	goName := f.GoName()

	return StatePair{
		FieldName: f.Name,
		Interface: goName + "State",
		Unset:     goName + "Unset",
		Set:       goName + "Set",
		TagMethod: schema.LowerFirst(goName) + "State",
	}
}

// storeType picks the value-store field type. Required fields are stored
// bare: the marker type proves presence. Optional scalars go behind a
// pointer; maps use nil for absence.
func storeType(vt schema.ValueType, goType string, required bool) string {
	if required || vt == schema.ValueMap {
		return goType
	}

	return "*" + goType
}

// checkNameCollisions verifies that every top-level name the generator
// will emit is distinct.
func checkNameCollisions(rs *ResolvedSchema) {
	owners := map[string]string{}

	claim := func(name, owner string) {
		if prev, ok := owners[name]; ok {
			rs.Diagnostics.AddError("name_collision",
				fmt.Sprintf("generated name %q claimed by both %s and %s", name, prev, owner), "", "")
			return
		}

		owners[name] = owner
	}

	for _, sp := range rs.States {
		owner := "state of " + sp.FieldName
		claim(sp.Interface, owner)
		claim(sp.Unset, owner)
		claim(sp.Set, owner)
	}

	for _, name := range rs.Opaques {
		claim(name, "opaque type "+name)
	}

	for i := range rs.Builders {
		b := &rs.Builders[i]
		owner := "builder " + b.Name
		claim(b.BuilderType, owner)
		claim(b.FieldsType, owner)
		claim(b.ConstructorName, owner)
		claim(b.FinalizeName, owner)

		for _, f := range b.Required() {
			claim(b.Name+f.Setter, owner)
			claim(b.Name+f.Accessor, owner)
		}
	}
}
