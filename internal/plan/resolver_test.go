package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/schema"
)

func resolveYAML(t *testing.T, yaml string) *ResolvedSchema {
	t.Helper()

	sf, err := schema.Parse([]byte(yaml))
	require.NoError(t, err)

	return Resolve(sf)
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
      - name: access_tier
        type: text
      - name: metadata
        type: map
      - name: lease_id
        type: opaque
        opaque_type: LeaseID
        setter: WithLease
        accessor: Lease
  - name: GetBlob
    fields:
      - name: container_name
        type: text
        required: true
      - name: blob_name
        type: text
        required: true
      - name: snapshot
        type: text
`

func TestResolvePageBlob(t *testing.T) {
	rs := resolveYAML(t, pageBlobYAML)
	require.True(t, rs.Diagnostics.IsValid(), rs.Diagnostics.Error())

	assert.Equal(t, "pageblob", rs.Package)
	require.Len(t, rs.Builders, 2)

	put := rs.Builders[0]
	assert.Equal(t, "PutPageBlobBuilder", put.BuilderType)
	assert.Equal(t, "putPageBlobFields", put.FieldsType)
	assert.Equal(t, "NewPutPageBlobBuilder", put.ConstructorName)
	assert.Equal(t, "BuildPutPageBlob", put.FinalizeName)

	require.Len(t, put.Constructor, 1)
	assert.Equal(t, "*Client", put.Constructor[0].GoType)

	req := put.Required()
	require.Len(t, req, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{req[0].StateIndex, req[1].StateIndex, req[2].StateIndex})
	assert.Equal(t, "containerName", req[0].StoreName)
	assert.Equal(t, "string", req[0].StoreType) // required: bare store
	assert.Equal(t, "uint64", req[2].GoType)

	opt := put.Optional()
	require.Len(t, opt, 4)
	assert.Equal(t, "*uint64", opt[0].StoreType) // optional scalar: pointer
	assert.Equal(t, "map[string]string", opt[2].StoreType)
	assert.Equal(t, "*LeaseID", opt[3].StoreType)
	assert.Equal(t, "WithLease", opt[3].Setter)
	assert.Equal(t, -1, opt[0].StateIndex)
}

func TestResolveSharedStates(t *testing.T) {
	rs := resolveYAML(t, pageBlobYAML)
	require.True(t, rs.Diagnostics.IsValid())

	// container_name and blob_name are required by both builders but get
	// exactly one marker pair each, sorted by field name.
	require.Len(t, rs.States, 3)
	assert.Equal(t, "blob_name", rs.States[0].FieldName)
	assert.Equal(t, "container_name", rs.States[1].FieldName)
	assert.Equal(t, "content_length", rs.States[2].FieldName)

	sp := rs.StateFor("container_name")
	require.NotNil(t, sp)
	assert.Equal(t, "ContainerNameState", sp.Interface)
	assert.Equal(t, "ContainerNameUnset", sp.Unset)
	assert.Equal(t, "ContainerNameSet", sp.Set)
	assert.Equal(t, "containerNameState", sp.TagMethod)

	assert.Equal(t, []string{"LeaseID"}, rs.Opaques)
}

func TestResolveInvalidSchemaStops(t *testing.T) {
	rs := resolveYAML(t, `
package: blob
builders:
  - name: GetBlob
    fields:
      - name: container_name
        type: varchar
        required: true
`)

	assert.True(t, rs.Diagnostics.HasErrors())
	assert.Empty(t, rs.Builders)
}

func TestResolveNameCollision(t *testing.T) {
	// Opaque type name collides with a generated marker type.
	rs := resolveYAML(t, `
package: blob
builders:
  - name: GetBlob
    fields:
      - name: container_name
        type: text
        required: true
types:
  - name: ContainerNameSet
`)

	require.True(t, rs.Diagnostics.HasErrors())
	assert.Equal(t, "name_collision", rs.Diagnostics.Errors[0].Code)
}

func TestResolveNoRequiredFields(t *testing.T) {
	rs := resolveYAML(t, `
package: blob
builders:
  - name: ListBlobs
    fields:
      - name: prefix
        type: text
      - name: max_results
        type: uint
`)

	require.True(t, rs.Diagnostics.IsValid())
	require.Len(t, rs.Builders, 1)
	assert.Empty(t, rs.Builders[0].Required())
	assert.Empty(t, rs.States)
}
