package request

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// JSONAssembler serializes a request as a single JSON object, preserving
// the request's field order.
type JSONAssembler struct{}

// Assemble renders the request as a JSON object. Field order is kept by
// emitting the object manually; values are encoded with go-json.
func (JSONAssembler) Assemble(r Request) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("encoding field name %s: %w", f.Name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding field %s: %w", f.Name, err)
		}

		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
