package gen

import (
	"fmt"
	"strconv"
	"strings"

	"builder-generator/internal/plan"
	"builder-generator/internal/schema"
)

// statesData holds all data needed for the shared marker file template.
type statesData struct {
	PackageName string
	States      []plan.StatePair
	Opaques     []string
}

// builderData holds all data needed for one builder file template.
type builderData struct {
	PackageName   string
	Filename      string
	RuntimeImport string

	Name            string
	BuilderType     string
	FieldsType      string
	ConstructorName string
	FinalizeName    string

	// DeclParams is the type parameter declaration of the builder struct,
	// brackets included ("[S0 ContainerNameState, S1 BlobNameState]"), or
	// empty when the builder has no required fields.
	DeclParams string
	// GenericUse instantiates the builder with its own type parameters
	// ("[S0, S1]"), or empty.
	GenericUse string
	// AllUnsetUse instantiates every marker at Unset, AllSetUse at Set.
	AllUnsetUse string
	AllSetUse   string

	CtorParams string
	CtorInit   string
	CtorFields []fieldDecl

	StoreFields []fieldDecl
	Defaults    []defaultInit

	RequiredOps []requiredOp
	OptionalOps []optionalOp

	FinalizeFields []finalizeField
	FieldCount     int
}

// fieldDecl is one declared struct field.
type fieldDecl struct {
	Name string
	Type string
}

// defaultInit seeds an optional field's declared default in the constructor.
type defaultInit struct {
	Var     string
	Literal string
	Store   string
}

// requiredOp is a state-gated setter/accessor pair for a required field.
type requiredOp struct {
	WireName     string
	SetterName   string
	AccessorName string
	GoType       string
	Store        string
	// DeclParams declares the type parameters of the other required fields,
	// brackets included, or empty when this is the only required field.
	DeclParams string
	// UnsetUse fixes this field's marker to Unset and leaves the others
	// generic; SetUse fixes it to Set.
	UnsetUse string
	SetUse   string
}

// optionalOp is an ungated setter/accessor pair for an optional field.
type optionalOp struct {
	WireName     string
	SetterName   string
	AccessorName string
	GoType       string
	Store        string
	IsMap        bool
}

// finalizeField is one field copied into the finalized request.
type finalizeField struct {
	WireName string
	Store    string
	Required bool
	IsMap    bool
}

// buildStatesData constructs the template data for the shared marker file.
func buildStatesData(pkg string, rs *plan.ResolvedSchema) *statesData {
	return &statesData{
		PackageName: pkg,
		States:      rs.States,
		Opaques:     rs.Opaques,
	}
}

// buildBuilderData constructs the template data for one builder file.
func (g *Generator) buildBuilderData(pkg string, rs *plan.ResolvedSchema, b *plan.ResolvedBuilder) *builderData {
	data := &builderData{
		PackageName:     pkg,
		Filename:        snakeCase(b.Name) + ".go",
		RuntimeImport:   g.config.RuntimeImport,
		Name:            b.Name,
		BuilderType:     b.BuilderType,
		FieldsType:      b.FieldsType,
		ConstructorName: b.ConstructorName,
		FinalizeName:    b.FinalizeName,
		FieldCount:      len(b.Fields),
	}

	required := b.Required()

	data.DeclParams = bracket(joinStates(required, rs, func(i int, sp *plan.StatePair) string {
		return stateVar(i) + " " + sp.Interface
	}))
	data.GenericUse = bracket(joinStates(required, rs, func(i int, sp *plan.StatePair) string {
		return stateVar(i)
	}))
	data.AllUnsetUse = bracket(joinStates(required, rs, func(i int, sp *plan.StatePair) string {
		return sp.Unset
	}))
	data.AllSetUse = bracket(joinStates(required, rs, func(i int, sp *plan.StatePair) string {
		return sp.Set
	}))

	var ctorParams, ctorInit []string
	for _, c := range b.Constructor {
		ctorParams = append(ctorParams, c.Name+" "+c.GoType)
		ctorInit = append(ctorInit, c.Name+": "+c.Name)
		data.CtorFields = append(data.CtorFields, fieldDecl{Name: c.Name, Type: c.GoType})
	}

	data.CtorParams = strings.Join(ctorParams, ", ")
	data.CtorInit = strings.Join(ctorInit, ", ")

	for _, f := range b.Fields {
		data.StoreFields = append(data.StoreFields, fieldDecl{Name: f.StoreName, Type: f.StoreType})

		data.FinalizeFields = append(data.FinalizeFields, finalizeField{
			WireName: f.Name,
			Store:    f.StoreName,
			Required: f.Required,
			IsMap:    f.Value == schema.ValueMap,
		})

		if f.Required {
			data.RequiredOps = append(data.RequiredOps, g.buildRequiredOp(rs, b, required, f))
			continue
		}

		data.OptionalOps = append(data.OptionalOps, optionalOp{
			WireName:     f.Name,
			SetterName:   f.Setter,
			AccessorName: f.Accessor,
			GoType:       f.GoType,
			Store:        f.StoreName,
			IsMap:        f.Value == schema.ValueMap,
		})

		if f.Default != nil {
			data.Defaults = append(data.Defaults, defaultInit{
				Var:     f.StoreName + "Default",
				Literal: defaultLiteral(f.Value, f.GoType, *f.Default),
				Store:   f.StoreName,
			})
		}
	}

	return data
}

// buildRequiredOp builds the gated operation pair for one required field.
func (g *Generator) buildRequiredOp(rs *plan.ResolvedSchema, b *plan.ResolvedBuilder, required []plan.ResolvedField, f plan.ResolvedField) requiredOp {
	op := requiredOp{
		WireName:     f.Name,
		SetterName:   b.Name + f.Setter,
		AccessorName: b.Name + f.Accessor,
		GoType:       f.GoType,
		Store:        f.StoreName,
	}

	own := rs.StateFor(f.Name)

	op.DeclParams = bracket(joinStates(required, rs, func(i int, sp *plan.StatePair) string {
		if i == f.StateIndex {
			return ""
		}

		return stateVar(i) + " " + sp.Interface
	}))
	op.UnsetUse = bracket(joinStates(required, rs, func(i int, sp *plan.StatePair) string {
		if i == f.StateIndex {
			return own.Unset
		}

		return stateVar(i)
	}))
	op.SetUse = bracket(joinStates(required, rs, func(i int, sp *plan.StatePair) string {
		if i == f.StateIndex {
			return own.Set
		}

		return stateVar(i)
	}))

	return op
}

// joinStates renders one comma-joined element per required field; empty
// elements are dropped.
func joinStates(required []plan.ResolvedField, rs *plan.ResolvedSchema, render func(int, *plan.StatePair) string) string {
	var parts []string

	for _, f := range required {
		sp := rs.StateFor(f.Name)
		if sp == nil {
			continue
		}

		if el := render(f.StateIndex, sp); el != "" {
			parts = append(parts, el)
		}
	}

	return strings.Join(parts, ", ")
}

// bracket wraps a non-empty type argument list in brackets.
func bracket(s string) string {
	if s == "" {
		return ""
	}

	return "[" + s + "]"
}

// stateVar names the i-th state type parameter.
func stateVar(i int) string {
	return "S" + strconv.Itoa(i)
}

// defaultLiteral renders a typed Go literal for an optional field default.
func defaultLiteral(vt schema.ValueType, goType, def string) string {
	switch vt {
	case schema.ValueUint:
		return fmt.Sprintf("uint64(%s)", def)
	default:
		return fmt.Sprintf("%s(%s)", goType, strconv.Quote(def))
	}
}

// snakeCase converts a CamelCase builder name into a snake_case filename
// stem (e.g. "PutPageBlob" -> "put_page_blob").
func snakeCase(name string) string {
	var sb strings.Builder

	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}

			sb.WriteRune(r - 'A' + 'a')

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
