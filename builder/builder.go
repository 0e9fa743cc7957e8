package builder

import (
	"fmt"
	"reflect"

	"builder-generator/internal/schema"
	"builder-generator/request"
)

// Builder accumulates field values for one request against a schema
// definition, tracking which required fields have been satisfied.
//
// The zero Builder is not usable; construct with New.
type Builder struct {
	def    *schema.Builder
	values map[string]any
	set    map[string]struct{}
}

// New returns a builder with every required field unset and every optional
// field absent or at its declared default. The definition is borrowed and
// must not change while builders use it.
func New(def *schema.Builder) (Builder, error) {
	if def == nil {
		return Builder{}, fmt.Errorf("builder definition is nil")
	}

	b := Builder{
		def:    def,
		values: map[string]any{},
		set:    map[string]struct{}{},
	}

	for _, f := range def.OptionalFields() {
		if f.Default == nil {
			continue
		}

		vt, err := f.ValueType()
		if err != nil {
			return Builder{}, fmt.Errorf("field %s: %w", f.Name, err)
		}

		v, err := schema.ParseDefault(vt, *f.Default)
		if err != nil {
			return Builder{}, fmt.Errorf("field %s: %w", f.Name, err)
		}

		b.values[f.Name] = v
	}

	return b, nil
}

// Set records a value for the named field and returns the updated builder.
// The receiver is left untouched: callers keep the returned value.
//
// Required fields are set-once; optional fields overwrite, last write wins.
// A rejected value never changes marker state.
func (b Builder) Set(name string, value any) (Builder, error) {
	f := b.def.FieldByName(name)
	if f == nil {
		return b, &UnknownFieldError{Field: name}
	}

	if f.Required {
		if _, done := b.set[name]; done {
			return b, &FieldAlreadySetError{Field: name}
		}
	}

	vt, err := f.ValueType()
	if err != nil {
		return b, &ValidationError{Field: name, Reason: err.Error()}
	}

	v, reason := conform(vt, value)
	if reason != "" {
		return b, &ValidationError{Field: name, Reason: reason}
	}

	out := b.clone()
	out.values[name] = v

	if f.Required {
		out.set[name] = struct{}{}
	}

	return out, nil
}

// Get reads the currently recorded value for a field. Required fields
// report false until set; optional fields report their default or last-set
// value, or false when absent.
func (b Builder) Get(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Finalize produces the immutable request value. Every required field must
// be set; otherwise a MissingRequiredFieldError names each missing field in
// schema order and no request is produced.
func (b Builder) Finalize() (request.Request, error) {
	var missing []string

	for _, f := range b.def.RequiredFields() {
		if _, ok := b.set[f.Name]; !ok {
			missing = append(missing, f.Name)
		}
	}

	if len(missing) > 0 {
		return request.Request{}, &MissingRequiredFieldError{Fields: missing}
	}

	fields := make([]request.Field, 0, len(b.def.Fields))

	for i := range b.def.Fields {
		name := b.def.Fields[i].Name
		if v, ok := b.values[name]; ok {
			fields = append(fields, request.Field{Name: name, Value: v})
		}
	}

	return request.New(fields), nil
}

// clone copies the builder's own state. Field values are borrowed, not
// deep-copied.
func (b Builder) clone() Builder {
	out := Builder{
		def:    b.def,
		values: make(map[string]any, len(b.values)+1),
		set:    make(map[string]struct{}, len(b.set)+1),
	}

	for k, v := range b.values {
		out.values[k] = v
	}

	for k := range b.set {
		out.set[k] = struct{}{}
	}

	return out
}

// conform checks a value against a value type and normalizes it for
// storage. It returns a non-empty reason on rejection.
func conform(vt schema.ValueType, value any) (any, string) {
	switch vt {
	case schema.ValueText:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Sprintf("expected text, got %T", value)
		}

		return s, ""

	case schema.ValueUint:
		switch n := value.(type) {
		case uint64:
			return n, ""
		case uint:
			return uint64(n), ""
		case int:
			if n < 0 {
				return nil, fmt.Sprintf("expected unsigned integer, got %d", n)
			}

			return uint64(n), ""
		case int64:
			if n < 0 {
				return nil, fmt.Sprintf("expected unsigned integer, got %d", n)
			}

			return uint64(n), ""
		default:
			return nil, fmt.Sprintf("expected unsigned integer, got %T", value)
		}

	case schema.ValueMap:
		m, ok := value.(map[string]string)
		if !ok {
			return nil, fmt.Sprintf("expected map of text to text, got %T", value)
		}

		return m, ""

	case schema.ValueOpaque:
		// Opaque values are text-like: plain strings and named string types
		// both conform, and named types keep their identity.
		if _, ok := value.(string); ok {
			return value, ""
		}

		if rv := reflect.ValueOf(value); rv.IsValid() && rv.Kind() == reflect.String {
			return value, ""
		}

		return nil, fmt.Sprintf("expected text-like opaque value, got %T", value)

	default:
		return nil, fmt.Sprintf("unsupported value type %s", vt)
	}
}
