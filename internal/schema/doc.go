// Package schema provides YAML schema definitions, parsing, and validation
// for request builder generation.
//
// The schema is the system's sole declarative input: it lists builders and
// their fields, and the generator turns each builder definition into a
// typestate-tracked Go builder type.
//
// # Schema Overview
//
// A schema file has the following structure:
//
//	version: "1"
//	package: pageblob
//	builders:
//	  - name: PutPageBlob
//	    finalize: Build          # name of the finalize operation (default Build)
//	    constructor:             # constructor-only fields, fixed at New time
//	      - name: client
//	        go_type: "*Client"
//	    fields:
//	      - name: container_name
//	        type: text
//	        required: true
//	      - name: content_length
//	        type: uint
//	        required: true
//	      - name: metadata
//	        type: map
//	      - name: lease_id
//	        type: opaque
//	        opaque_type: LeaseID
//	        setter: WithLease    # optional overrides for exposed names
//	        accessor: Lease
//	types:                       # extra opaque type declarations
//	  - name: SnapshotID
//
// # Value types
//
//   - text:   string
//   - uint:   uint64
//   - map:    map[string]string
//   - opaque: a named string type, declared once per generated package
//
// # Required vs optional
//
// Required fields participate in typestate tracking: the generated setter is
// available only while the field is unset, and finalize is reachable only
// once every required field is set. Optional fields get an always-available
// setter with last-write-wins semantics.
//
// Validation is structural and accumulates diagnostics: duplicate names,
// unknown value types, missing opaque type names, invalid identifiers, and
// required-field defaults that are not an "unset" sentinel all fail
// generation before any code is emitted.
package schema
