// Package request holds the output side of a finalized builder: an
// immutable, ordered bundle of named field values, plus the assembler
// boundary that turns the bundle into a transport-ready payload.
//
// The package makes no assumption about the wire format beyond "every field
// has a name and a value of its declared type". Transport, signing, and
// retries live behind the Assembler on the caller's side.
package request

// Field is one named value in an assembled request.
type Field struct {
	Name  string
	Value any
}

// Request is the immutable, fully-populated output of a finalized builder.
// Field order follows the schema's field order.
type Request struct {
	fields []Field
	index  map[string]int
}

// New builds a Request from an ordered field list. The slice is copied;
// reference-typed field values (maps) stay borrowed.
func New(fields []Field) Request {
	r := Request{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	copy(r.fields, fields)

	for i, f := range r.fields {
		r.index[f.Name] = i
	}

	return r
}

// Len returns the number of fields present in the request.
func (r Request) Len() int {
	return len(r.fields)
}

// Fields returns a copy of the ordered field list.
func (r Request) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)

	return out
}

// Value returns the value recorded for a field name, and whether the field
// is present at all.
func (r Request) Value(name string) (any, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}

	return r.fields[i].Value, true
}

// Assembler converts a finalized request into a transport-ready payload.
// Implementations own serialization and any transport-specific framing.
type Assembler interface {
	Assemble(r Request) ([]byte, error)
}
