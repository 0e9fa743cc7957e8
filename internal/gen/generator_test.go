package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/plan"
	"builder-generator/internal/schema"
)

func generateYAML(t *testing.T, yaml string) []GeneratedFile {
	t.Helper()

	sf, err := schema.Parse([]byte(yaml))
	require.NoError(t, err)

	rs := plan.Resolve(sf)
	require.True(t, rs.Diagnostics.IsValid(), rs.Diagnostics.Error())

	g := NewGenerator(DefaultGeneratorConfig())
	files, err := g.Generate(rs)
	require.NoError(t, err)

	return files
}

const pageBlobYAML = `
package: pageblob
builders:
  - name: PutPageBlob
    constructor:
      - name: client
        go_type: "*Client"
    fields:
      - name: container_name
        type: text
        required: true
      - name: blob_name
        type: text
        required: true
      - name: content_length
        type: uint
        required: true
      - name: sequence_number
        type: uint
      - name: metadata
        type: map
      - name: lease_id
        type: opaque
        opaque_type: LeaseID
        setter: WithLease
        accessor: Lease
`

func TestGenerator_Generate_PageBlob(t *testing.T) {
	files := generateYAML(t, pageBlobYAML)
	require.Len(t, files, 2)

	assert.Equal(t, "states.go", files[0].Filename)
	assert.Equal(t, "put_page_blob.go", files[1].Filename)

	states := string(files[0].Content)
	assert.Contains(t, states, "package pageblob")
	assert.Contains(t, states, "type ContainerNameState interface{ containerNameState() }")
	assert.Contains(t, states, "type ContainerNameUnset struct{}")
	assert.Contains(t, states, "type ContainerNameSet struct{}")
	assert.Contains(t, states, "type LeaseID string")

	content := string(files[1].Content)

	// Generic builder struct with one state parameter per required field.
	assert.Contains(t, content,
		"type PutPageBlobBuilder[S0 ContainerNameState, S1 BlobNameState, S2 ContentLengthState] struct {")

	// Constructor starts fully unset.
	assert.Contains(t, content,
		"func NewPutPageBlobBuilder(client *Client) PutPageBlobBuilder[ContainerNameUnset, BlobNameUnset, ContentLengthUnset] {")

	// Required setter consumes the Unset marker and produces Set.
	assert.Contains(t, content,
		"func PutPageBlobWithContainerName[S1 BlobNameState, S2 ContentLengthState](b PutPageBlobBuilder[ContainerNameUnset, S1, S2], v string) PutPageBlobBuilder[ContainerNameSet, S1, S2] {")

	// Required accessor only accepts the Set marker.
	assert.Contains(t, content,
		"func PutPageBlobContainerName[S1 BlobNameState, S2 ContentLengthState](b PutPageBlobBuilder[ContainerNameSet, S1, S2]) string {")

	// Optional setters are plain methods, generic over every state.
	assert.Contains(t, content,
		"func (b PutPageBlobBuilder[S0, S1, S2]) WithSequenceNumber(v uint64) PutPageBlobBuilder[S0, S1, S2] {")
	assert.Contains(t, content,
		"func (b PutPageBlobBuilder[S0, S1, S2]) WithLease(v LeaseID) PutPageBlobBuilder[S0, S1, S2] {")

	// Finalize accepts only the all-set point of the marker space.
	assert.Contains(t, content,
		"func BuildPutPageBlob(b PutPageBlobBuilder[ContainerNameSet, BlobNameSet, ContentLengthSet]) request.Request {")

	// Field values land in the request under their wire names.
	assert.Contains(t, content, `request.Field{Name: "container_name", Value: b.f.containerName}`)
	assert.Contains(t, content, `request.Field{Name: "lease_id", Value: *b.f.leaseId}`)
}

func TestGenerator_Generate_SingleRequiredField(t *testing.T) {
	files := generateYAML(t, `
package: api
builders:
  - name: Ping
    fields:
      - name: target
        type: text
        required: true
      - name: note
        type: text
`)

	require.Len(t, files, 2)
	content := string(files[1].Content)

	// With one required field the gated functions need no type parameters.
	assert.Contains(t, content, "func PingWithTarget(b PingBuilder[TargetUnset], v string) PingBuilder[TargetSet] {")
	assert.Contains(t, content, "func PingTarget(b PingBuilder[TargetSet]) string {")
	assert.Contains(t, content, "func BuildPing(b PingBuilder[TargetSet]) request.Request {")
}

func TestGenerator_Generate_NoRequiredFields(t *testing.T) {
	files := generateYAML(t, `
package: api
builders:
  - name: ListBlobs
    fields:
      - name: prefix
        type: text
      - name: max_results
        type: uint
`)

	// No markers to share, so only the builder file is emitted.
	require.Len(t, files, 1)
	content := string(files[0].Content)

	assert.Contains(t, content, "type ListBlobsBuilder struct {")
	assert.Contains(t, content, "func (b ListBlobsBuilder) WithPrefix(v string) ListBlobsBuilder {")
	assert.Contains(t, content, "func BuildListBlobs(b ListBlobsBuilder) request.Request {")
	assert.NotContains(t, content, "interface{")
}

func TestGenerator_Generate_OptionalDefault(t *testing.T) {
	files := generateYAML(t, `
package: api
builders:
  - name: PutPage
    fields:
      - name: blob_name
        type: text
        required: true
      - name: sequence_number
        type: uint
        default: "0"
`)

	content := string(files[1].Content)
	assert.Contains(t, content, "sequenceNumberDefault := uint64(0)")
	assert.Contains(t, content, "f.sequenceNumber = &sequenceNumberDefault")
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	first := generateYAML(t, pageBlobYAML)
	second := generateYAML(t, pageBlobYAML)

	require.Len(t, second, len(first))

	for i := range first {
		assert.Equal(t, first[i].Filename, second[i].Filename)
		assert.Equal(t, string(first[i].Content), string(second[i].Content))
	}
}

func TestGenerator_Generate_RejectsInvalidSchema(t *testing.T) {
	sf, err := schema.Parse([]byte(`
package: api
builders:
  - name: Broken
    fields:
      - name: f
        type: varchar
        required: true
`))
	require.NoError(t, err)

	rs := plan.Resolve(sf)
	require.True(t, rs.Diagnostics.HasErrors())

	g := NewGenerator(DefaultGeneratorConfig())
	_, err = g.Generate(rs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown_value_type")
}

func TestGenerator_Generate_RuntimeImportOverride(t *testing.T) {
	sf, err := schema.Parse([]byte(`
package: api
builders:
  - name: Ping
    fields:
      - name: target
        type: text
        required: true
`))
	require.NoError(t, err)

	rs := plan.Resolve(sf)
	require.True(t, rs.Diagnostics.IsValid())

	cfg := DefaultGeneratorConfig()
	cfg.RuntimeImport = "example.com/sdk/request"

	files, err := NewGenerator(cfg).Generate(rs)
	require.NoError(t, err)

	var builderFile string
	for _, f := range files {
		if strings.HasSuffix(f.Filename, "ping.go") {
			builderFile = string(f.Content)
		}
	}

	assert.Contains(t, builderFile, `"example.com/sdk/request"`)
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "put_page_blob", snakeCase("PutPageBlob"))
	assert.Equal(t, "get_blob", snakeCase("GetBlob"))
	assert.Equal(t, "ping", snakeCase("Ping"))
}
