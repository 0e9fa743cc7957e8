package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseValid(t *testing.T, yaml string) *File {
	t.Helper()

	sf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return sf
}

func diagnosticCodes(sf *File) []string {
	res := Validate(sf)

	var codes []string
	for _, e := range res.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

func TestValidateOK(t *testing.T) {
	sf := parseValid(t, `
package: pageblob
builders:
  - name: PutPageBlob
    fields:
      - name: container_name
        type: text
        required: true
      - name: metadata
        type: map
`)

	res := Validate(sf)
	assert.True(t, res.IsValid())
	assert.NoError(t, res.Error())
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	require.True(t, res.HasErrors())
	assert.Equal(t, "schema_is_nil", res.Errors[0].Code)
}

func TestValidateDuplicateField(t *testing.T) {
	sf := parseValid(t, `
package: blob
builders:
  - name: GetBlob
    fields:
      - name: container_name
        type: text
        required: true
      - name: container_name
        type: text
`)

	assert.Contains(t, diagnosticCodes(sf), "duplicate_field")
}

func TestValidateDuplicateBuilder(t *testing.T) {
	sf := parseValid(t, `
package: blob
builders:
  - name: GetBlob
    fields:
      - name: container_name
        type: text
        required: true
  - name: GetBlob
    fields:
      - name: blob_name
        type: text
        required: true
`)

	assert.Contains(t, diagnosticCodes(sf), "duplicate_builder")
}

func TestValidateUnknownValueType(t *testing.T) {
	sf := parseValid(t, `
package: blob
builders:
  - name: GetBlob
    fields:
      - name: container_name
        type: varchar
        required: true
`)

	codes := diagnosticCodes(sf)
	require.Contains(t, codes, "unknown_value_type")

	// The diagnostic names the builder and field.
	res := Validate(sf)
	assert.Equal(t, "GetBlob", res.Errors[0].Builder)
	assert.Equal(t, "container_name", res.Errors[0].Field)
}

func TestValidateOpaqueNeedsTypeName(t *testing.T) {
	sf := parseValid(t, `
package: blob
builders:
  - name: LeaseBlob
    fields:
      - name: lease_id
        type: opaque
        required: true
`)

	assert.Contains(t, diagnosticCodes(sf), "missing_opaque_type")
}

func TestValidateRequiredDefaultSentinel(t *testing.T) {
	// "0" is a recognized unset sentinel for uint; a real value is not.
	sf := parseValid(t, `
package: blob
builders:
  - name: PutPageBlob
    fields:
      - name: content_length
        type: uint
        required: true
        default: "0"
`)
	assert.Empty(t, diagnosticCodes(sf))

	sf = parseValid(t, `
package: blob
builders:
  - name: PutPageBlob
    fields:
      - name: content_length
        type: uint
        required: true
        default: "4096"
`)
	assert.Contains(t, diagnosticCodes(sf), "bad_required_default")
}

func TestValidateBadOptionalDefault(t *testing.T) {
	sf := parseValid(t, `
package: blob
builders:
  - name: PutPageBlob
    fields:
      - name: blob_name
        type: text
        required: true
      - name: sequence_number
        type: uint
        default: "many"
`)

	assert.Contains(t, diagnosticCodes(sf), "bad_default")
}

func TestValidateDuplicateSetterNames(t *testing.T) {
	sf := parseValid(t, `
package: blob
builders:
  - name: LeaseBlob
    fields:
      - name: lease_id
        type: text
        required: true
        setter: WithLease
      - name: proposed_lease_id
        type: text
        setter: WithLease
`)

	assert.Contains(t, diagnosticCodes(sf), "duplicate_setter")
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	sf := parseValid(t, `
package: ""
builders:
  - name: GetBlob
    fields:
      - name: a
        type: nope
        required: true
      - name: 9bad
        type: text
`)

	res := Validate(sf)
	// One pass reports every problem, not just the first.
	assert.GreaterOrEqual(t, len(res.Errors), 3)
}

func TestValidateEmptySchema(t *testing.T) {
	sf := parseValid(t, "package: blob\n")
	assert.Contains(t, diagnosticCodes(sf), "empty_schema")
}
